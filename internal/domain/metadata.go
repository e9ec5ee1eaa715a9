package domain

// Metadata keys carried on the checkout session. The metadata bag is the
// only channel connecting a payment event back to the selected service and
// slot; nothing else links the two.
const (
	MetaServiceID       = "service_id"
	MetaServiceSlug     = "service_slug"
	MetaSchedulerLink   = "scheduler_link"
	MetaBookingDate     = "booking_date"
	MetaBookingTime     = "booking_time"
	MetaBookingDatetime = "booking_datetime"
)

// BookingMetadata is the typed view over the string bag, parsed at the
// webhook boundary.
type BookingMetadata struct {
	ServiceID       string
	ServiceSlug     string
	SchedulerLink   string
	BookingDate     string
	BookingTime     string
	BookingDatetime string // RFC3339
}

// ParseBookingMetadata never fails; missing required fields are detected
// by the caller via HasServiceID, so a malformed event is skipped rather
// than crashing the webhook handler.
func ParseBookingMetadata(m map[string]string) BookingMetadata {
	if m == nil {
		return BookingMetadata{}
	}
	return BookingMetadata{
		ServiceID:       m[MetaServiceID],
		ServiceSlug:     m[MetaServiceSlug],
		SchedulerLink:   m[MetaSchedulerLink],
		BookingDate:     m[MetaBookingDate],
		BookingTime:     m[MetaBookingTime],
		BookingDatetime: m[MetaBookingDatetime],
	}
}

func (b BookingMetadata) HasServiceID() bool { return b.ServiceID != "" }

func (b BookingMetadata) HasBookingSlot() bool { return b.BookingDatetime != "" }
