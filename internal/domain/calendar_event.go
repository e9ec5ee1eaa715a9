package domain

import "time"

// CalendarEvent is a transient value object derived from a service and a
// booking time, computed fresh for every email or confirmation render.
type CalendarEvent struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
}
