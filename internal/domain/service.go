package domain

type ServiceType string

const (
	ServiceSession ServiceType = "session"
	ServicePackage ServiceType = "package"
	ServiceDigital ServiceType = "digital"
)

// Service is a bookable offering. Services are defined in static
// configuration (internal/catalog) and never mutated at runtime.
type Service struct {
	ID              string      `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Duration        string      `json:"duration"`
	DurationMinutes int         `json:"duration_minutes"`
	Price           int64       `json:"price"` // pence
	PriceDisplay    string      `json:"price_display"`
	Type            ServiceType `json:"type"`

	// Cal.com event type id, empty for digital items.
	SchedulingID   string `json:"scheduling_id,omitempty"`
	SchedulingLink string `json:"scheduling_link,omitempty"`

	Features []string `json:"features,omitempty"`

	// Gated asset delivered after purchase, digital items only.
	ResourceID string `json:"resource_id,omitempty"`
}
