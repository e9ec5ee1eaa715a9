package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"nurturebirth/internal/domain"
)

type fakeSessionAPI struct {
	createParams *stripe.CheckoutSessionParams
	createResp   *stripe.CheckoutSession
	createErr    error

	getID     string
	getResp   *stripe.CheckoutSession
	getErr    error
	getCalls  int
	createTot int
}

func (f *fakeSessionAPI) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.createTot++
	f.createParams = params
	return f.createResp, f.createErr
}

func (f *fakeSessionAPI) Get(id string, _ *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.getCalls++
	f.getID = id
	return f.getResp, f.getErr
}

func newTestService(api SessionAPI) *Service {
	return &Service{sessions: api, baseURL: "https://nurturebirth.test", loggerf: func(string, ...interface{}) {}}
}

func TestCreateSession_MetadataCarriesBookingSlot(t *testing.T) {
	api := &fakeSessionAPI{createResp: &stripe.CheckoutSession{ID: "cs_123", ClientSecret: "cs_123_secret"}}
	svc := newTestService(api)

	resp, err := svc.CreateSession(context.Background(), CreateSessionRequest{
		ServiceID: "initial-consultation",
		Booking: &BookingSlot{
			Date:     "2026-09-10",
			Time:     "10:00",
			Datetime: "2026-09-10T10:00:00+01:00",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", resp.SessionID)
	assert.Equal(t, "cs_123_secret", resp.ClientSecret)

	md := api.createParams.Metadata
	assert.Equal(t, "initial-consultation", md[domain.MetaServiceID])
	assert.Equal(t, "initial-consultation", md[domain.MetaServiceSlug])
	assert.Equal(t, "2026-09-10", md[domain.MetaBookingDate])
	assert.Equal(t, "10:00", md[domain.MetaBookingTime])
	assert.Equal(t, "2026-09-10T10:00:00+01:00", md[domain.MetaBookingDatetime])
}

func TestCreateSession_NoSlotOmitsBookingMetadata(t *testing.T) {
	api := &fakeSessionAPI{createResp: &stripe.CheckoutSession{ID: "cs_124", ClientSecret: "sec"}}
	svc := newTestService(api)

	_, err := svc.CreateSession(context.Background(), CreateSessionRequest{ServiceID: "hypnobirthing-guide"})
	require.NoError(t, err)

	md := api.createParams.Metadata
	assert.Equal(t, "hypnobirthing-guide", md[domain.MetaServiceID])
	assert.NotContains(t, md, domain.MetaBookingDate)
	assert.NotContains(t, md, domain.MetaBookingTime)
	assert.NotContains(t, md, domain.MetaBookingDatetime)
}

func TestCreateSession_EmbeddedPaymentParams(t *testing.T) {
	api := &fakeSessionAPI{createResp: &stripe.CheckoutSession{ID: "cs_125", ClientSecret: "sec"}}
	svc := newTestService(api)

	_, err := svc.CreateSession(context.Background(), CreateSessionRequest{ServiceID: "birth-preparation"})
	require.NoError(t, err)

	p := api.createParams
	require.NotNil(t, p)
	assert.Equal(t, string(stripe.CheckoutSessionModePayment), stripe.StringValue(p.Mode))
	assert.Equal(t, string(stripe.CheckoutSessionUIModeEmbedded), stripe.StringValue(p.UIMode))
	assert.Equal(t, "https://nurturebirth.test/booking/confirmation?session_id={CHECKOUT_SESSION_ID}", stripe.StringValue(p.ReturnURL))

	require.Len(t, p.LineItems, 1)
	li := p.LineItems[0]
	assert.Equal(t, int64(1), stripe.Int64Value(li.Quantity))
	assert.Equal(t, string(stripe.CurrencyGBP), stripe.StringValue(li.PriceData.Currency))
	assert.Equal(t, int64(12000), stripe.Int64Value(li.PriceData.UnitAmount))
	assert.Equal(t, "Birth Preparation Session", stripe.StringValue(li.PriceData.ProductData.Name))
}

func TestCreateSession_UnknownService(t *testing.T) {
	api := &fakeSessionAPI{}
	svc := newTestService(api)

	_, err := svc.CreateSession(context.Background(), CreateSessionRequest{ServiceID: "reiki-healing"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Zero(t, api.createTot, "processor must not be called for unknown services")
}

func TestCreateSession_MissingClientSecret(t *testing.T) {
	api := &fakeSessionAPI{createResp: &stripe.CheckoutSession{ID: "cs_126"}}
	svc := newTestService(api)

	_, err := svc.CreateSession(context.Background(), CreateSessionRequest{ServiceID: "initial-consultation"})
	assert.ErrorIs(t, err, ErrNoClientSecret)
}

func TestVerifySession_PaidWithBooking(t *testing.T) {
	api := &fakeSessionAPI{getResp: &stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		Metadata: map[string]string{
			domain.MetaServiceID:       "initial-consultation",
			domain.MetaBookingDate:     "2026-09-10",
			domain.MetaBookingTime:     "10:00",
			domain.MetaBookingDatetime: "2026-09-10T10:00:00+01:00",
		},
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{Email: "jo@example.com", Name: "Jo Smith"},
	}}
	svc := newTestService(api)

	order := svc.VerifySession(context.Background(), "cs_200")
	require.NotNil(t, order)
	assert.Equal(t, "cs_200", api.getID)
	assert.Equal(t, "initial-consultation", order.Service.ID)
	assert.Equal(t, "jo@example.com", order.CustomerEmail)
	assert.Equal(t, "Jo Smith", order.CustomerName)
	assert.Equal(t, "2026-09-10", order.BookingDate)
	assert.Equal(t, "10:00", order.BookingTime)
}

func TestVerifySession_NilOutcomes(t *testing.T) {
	paidMD := map[string]string{domain.MetaServiceID: "initial-consultation"}

	cases := []struct {
		name string
		api  *fakeSessionAPI
	}{
		{"retrieve error", &fakeSessionAPI{getErr: errors.New("no such session")}},
		{"unpaid", &fakeSessionAPI{getResp: &stripe.CheckoutSession{
			PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
			Metadata:      paidMD,
		}}},
		{"missing service metadata", &fakeSessionAPI{getResp: &stripe.CheckoutSession{
			PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		}}},
		{"unknown service", &fakeSessionAPI{getResp: &stripe.CheckoutSession{
			PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
			Metadata:      map[string]string{domain.MetaServiceID: "retired-offering"},
		}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(tc.api)
			assert.Nil(t, svc.VerifySession(context.Background(), "cs_201"))
		})
	}
}

func TestVerifySession_MissingCustomerDetails(t *testing.T) {
	api := &fakeSessionAPI{getResp: &stripe.CheckoutSession{
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		Metadata:      map[string]string{domain.MetaServiceID: "hypnobirthing-guide"},
	}}
	svc := newTestService(api)

	order := svc.VerifySession(context.Background(), "cs_202")
	require.NotNil(t, order)
	assert.Empty(t, order.CustomerEmail)
	assert.Empty(t, order.CustomerName)
}
