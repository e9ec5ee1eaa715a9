package checkout

import (
	"context"
	"fmt"
	"os"

	"github.com/stripe/stripe-go/v79"

	"nurturebirth/internal/catalog"
	"nurturebirth/internal/domain"
)

type Service struct {
	sessions SessionAPI
	baseURL  string
	loggerf  func(format string, args ...interface{})
}

func NewService(sessions SessionAPI, loggerf func(format string, args ...interface{})) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Service{sessions: sessions, baseURL: baseURL, loggerf: loggerf}
}

// CreateSession opens an embedded-mode checkout session for a service.
// The metadata bag is the only link from the later payment event back to
// the selected service and slot, so everything fulfillment needs goes in
// here. Fails loudly when the processor returns no client secret; the
// caller has no fallback.
func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest) (*CreateSessionResponse, error) {
	svc := catalog.ServiceByID(req.ServiceID)
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	description := svc.Description
	if req.Booking != nil {
		description = fmt.Sprintf("%s Booked for %s at %s.", svc.Description, req.Booking.Date, req.Booking.Time)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		UIMode:    stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		ReturnURL: stripe.String(s.baseURL + "/booking/confirmation?session_id={CHECKOUT_SESSION_ID}"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyGBP)),
					UnitAmount: stripe.Int64(svc.Price),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(svc.Title),
						Description: stripe.String(description),
					},
				},
			},
		},
	}
	params.Context = ctx
	params.AddMetadata(domain.MetaServiceID, svc.ID)
	params.AddMetadata(domain.MetaServiceSlug, svc.Slug)
	params.AddMetadata(domain.MetaSchedulerLink, svc.SchedulingLink)
	if req.Booking != nil {
		params.AddMetadata(domain.MetaBookingDate, req.Booking.Date)
		params.AddMetadata(domain.MetaBookingTime, req.Booking.Time)
		params.AddMetadata(domain.MetaBookingDatetime, req.Booking.Datetime)
	}

	sess, err := s.sessions.Create(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if sess.ClientSecret == "" {
		return nil, ErrNoClientSecret
	}

	s.loggerf("level=info msg=checkout session created session_id=%s service_id=%s has_slot=%t", sess.ID, svc.ID, req.Booking != nil)
	return &CreateSessionResponse{SessionID: sess.ID, ClientSecret: sess.ClientSecret}, nil
}

// VerifySession resolves a completed session for the confirmation page.
// Anything short of a paid session with resolvable service metadata comes
// back nil; processor errors are logged, never propagated, because the
// page only distinguishes verified from not verified.
func (s *Service) VerifySession(ctx context.Context, sessionID string) *VerifiedOrder {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("customer_details")

	sess, err := s.sessions.Get(sessionID, params)
	if err != nil {
		s.loggerf("level=error msg=checkout session retrieve failed session_id=%s err=%v", sessionID, err)
		return nil
	}
	if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		return nil
	}

	md := domain.ParseBookingMetadata(sess.Metadata)
	if !md.HasServiceID() {
		return nil
	}
	svc := catalog.ServiceByID(md.ServiceID)
	if svc == nil {
		return nil
	}

	order := &VerifiedOrder{
		Service:         svc,
		BookingDate:     md.BookingDate,
		BookingTime:     md.BookingTime,
		BookingDatetime: md.BookingDatetime,
	}
	if sess.CustomerDetails != nil {
		order.CustomerEmail = sess.CustomerDetails.Email
		order.CustomerName = sess.CustomerDetails.Name
	}
	return order
}
