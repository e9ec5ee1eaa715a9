package webhook

import (
	"context"

	"nurturebirth/internal/domain"
	"nurturebirth/internal/mailer"
	"nurturebirth/internal/scheduler"
)

type EmailSender interface {
	SendBookingConfirmation(ctx context.Context, p mailer.BookingConfirmation) error
	SendPurchaseConfirmation(ctx context.Context, p mailer.PurchaseConfirmation) error
}

type SchedulerClient interface {
	Configured() bool
	CreateBooking(ctx context.Context, req scheduler.CreateBookingRequest) (*scheduler.Booking, error)
}

// EventLedger deduplicates provider event deliveries.
type EventLedger interface {
	Record(ctx context.Context, ev *domain.WebhookEvent) error
}
