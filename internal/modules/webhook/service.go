package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/stripe/stripe-go/v79"
	stripewebhook "github.com/stripe/stripe-go/v79/webhook"

	"nurturebirth/internal/catalog"
	"nurturebirth/internal/domain"
	"nurturebirth/internal/mailer"
	"nurturebirth/internal/repository"
	"nurturebirth/internal/scheduler"
)

// ErrInvalidSignature is a hard reject: the event is never processed and
// the provider sees an error response.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type Service struct {
	emails    EmailSender
	scheduler SchedulerClient
	ledger    EventLedger
	loggerf   func(format string, args ...interface{})

	webhookSecret string
	baseURL       string
	loc           *time.Location
}

func NewService(emails EmailSender, sched SchedulerClient, ledger EventLedger, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.UTC
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Service{
		emails:        emails,
		scheduler:     sched,
		ledger:        ledger,
		loggerf:       loggerf,
		webhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		baseURL:       baseURL,
		loc:           loc,
	}
}

// ParseEvent authenticates and decodes the raw webhook payload. With a
// configured secret and a signature header present, verification failure
// is fatal. Without a secret the payload is trusted as-is; that mode
// exists for local development only and is logged as such.
func (s *Service) ParseEvent(payload []byte, sigHeader string) (stripe.Event, bool, error) {
	if s.webhookSecret != "" && sigHeader != "" {
		event, err := stripewebhook.ConstructEvent(payload, sigHeader, s.webhookSecret)
		if err != nil {
			return stripe.Event{}, false, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return event, true, nil
	}

	s.loggerf("level=warn msg=webhook secret not configured, trusting payload without verification")
	var event stripe.Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return stripe.Event{}, false, fmt.Errorf("decode webhook payload: %w", err)
	}
	return event, false, nil
}

// ProcessEvent runs fulfillment for one delivery. Business-level problems
// (missing metadata, unknown service, failed email or booking) are logged
// and absorbed so the provider still receives an acknowledgment and does
// not redeliver forever; only a returned error yields a non-2xx response.
func (s *Service) ProcessEvent(ctx context.Context, event stripe.Event, signatureValid bool) error {
	if event.ID != "" && s.ledger != nil {
		err := s.ledger.Record(ctx, &domain.WebhookEvent{
			EventID:        event.ID,
			EventType:      string(event.Type),
			Payload:        string(event.Data.Raw),
			SignatureValid: signatureValid,
		})
		switch {
		case errors.Is(err, repository.ErrDuplicateEvent):
			s.loggerf("level=info msg=duplicate webhook event skipped event_id=%s", event.ID)
			return nil
		case err != nil:
			// A broken ledger must not block fulfillment; this just
			// reverts to at-least-once semantics.
			s.loggerf("level=error msg=failed to record webhook event event_id=%s err=%v", event.ID, err)
		}
	}

	if event.Type != "checkout.session.completed" {
		s.loggerf("level=info msg=ignoring webhook event event_id=%s type=%s", event.ID, event.Type)
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		s.loggerf("level=error msg=failed to decode checkout session from event event_id=%s err=%v", event.ID, err)
		return nil
	}

	s.fulfillCheckout(ctx, &sess)
	return nil
}

func (s *Service) fulfillCheckout(ctx context.Context, sess *stripe.CheckoutSession) {
	md := domain.ParseBookingMetadata(sess.Metadata)
	email, name := customerContact(sess)

	if !md.HasServiceID() || email == "" {
		s.loggerf("level=error msg=checkout session missing service_id or customer email session_id=%s", sess.ID)
		return
	}

	svc := catalog.ServiceByID(md.ServiceID)
	if svc == nil {
		s.loggerf("level=error msg=unknown service in checkout metadata session_id=%s service_id=%s", sess.ID, md.ServiceID)
		return
	}

	if svc.Type == domain.ServiceDigital {
		s.fulfillDigital(ctx, sess, svc, email, name)
		return
	}

	if !md.HasBookingSlot() {
		// Package purchase: the customer schedules each session later
		// through the availability flow.
		s.loggerf("level=info msg=no booking slot in metadata, nothing to schedule session_id=%s service_id=%s", sess.ID, svc.ID)
		return
	}

	s.fulfillBooking(ctx, sess, svc, md, email, name)
}

func (s *Service) fulfillDigital(ctx context.Context, sess *stripe.CheckoutSession, svc *domain.Service, email, name string) {
	downloadRef := svc.ID + "_" + sess.ID
	downloadURL := fmt.Sprintf("%s/api/v1/downloads/%s?session=%s", s.baseURL, svc.ResourceID, sess.ID)

	err := s.emails.SendPurchaseConfirmation(ctx, mailer.PurchaseConfirmation{
		To:           email,
		Name:         name,
		ServiceTitle: svc.Title,
		DownloadRef:  downloadRef,
		DownloadURL:  downloadURL,
	})
	if err != nil {
		s.loggerf("level=error msg=purchase confirmation email failed session_id=%s err=%v", sess.ID, err)
		return
	}
	s.loggerf("level=info msg=purchase confirmation sent session_id=%s service_id=%s", sess.ID, svc.ID)
}

func (s *Service) fulfillBooking(ctx context.Context, sess *stripe.CheckoutSession, svc *domain.Service, md domain.BookingMetadata, email, name string) {
	start, parseErr := time.Parse(time.RFC3339, md.BookingDatetime)
	if parseErr != nil {
		s.loggerf("level=error msg=unparseable booking_datetime in metadata session_id=%s value=%q err=%v", sess.ID, md.BookingDatetime, parseErr)
	}

	// Calendar booking is best effort: payment already succeeded, so a
	// scheduler failure becomes a manual-reconciliation case and must not
	// stop the confirmation email.
	videoLink := ""
	if s.scheduler != nil && s.scheduler.Configured() && svc.SchedulingID != "" && parseErr == nil {
		booking, err := s.scheduler.CreateBooking(ctx, scheduler.CreateBookingRequest{
			SchedulingID:  svc.SchedulingID,
			Start:         start,
			AttendeeName:  name,
			AttendeeEmail: email,
		})
		if err != nil {
			s.loggerf("level=error msg=calendar booking failed, continuing with confirmation session_id=%s err=%v", sess.ID, err)
		} else {
			videoLink = booking.VideoCallURL
			s.loggerf("level=info msg=calendar booking created session_id=%s booking_uid=%s", sess.ID, booking.UID)
		}
	}

	dateStr := md.BookingDate
	timeStr := md.BookingTime
	if parseErr == nil {
		local := start.In(s.loc)
		if dateStr == "" {
			dateStr = local.Format("Monday, 2 January 2006")
		}
		if timeStr == "" {
			timeStr = local.Format("15:04")
		}
	}

	err := s.emails.SendBookingConfirmation(ctx, mailer.BookingConfirmation{
		To:           email,
		Name:         name,
		ServiceTitle: svc.Title,
		Date:         dateStr,
		Time:         timeStr,
		Duration:     svc.Duration,
		Start:        start,
		DurationMins: svc.DurationMinutes,
		VideoLink:    videoLink,
	})
	if err != nil {
		s.loggerf("level=error msg=booking confirmation email failed session_id=%s err=%v", sess.ID, err)
		return
	}
	s.loggerf("level=info msg=booking confirmation sent session_id=%s service_id=%s", sess.ID, svc.ID)
}

func customerContact(sess *stripe.CheckoutSession) (email, name string) {
	if sess.CustomerDetails != nil {
		email = sess.CustomerDetails.Email
		name = sess.CustomerDetails.Name
	}
	if email == "" {
		email = sess.CustomerEmail
	}
	return email, name
}
