package domain

// Slot is a candidate bookable time on one calendar date. Slots are
// recomputed on every availability query and never persisted, so
// Available is a snapshot, not a reservation.
type Slot struct {
	Time      string `json:"time"`     // "15:04"
	Datetime  string `json:"datetime"` // RFC3339
	Available bool   `json:"available"`
}
