package checkout

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"

	"nurturebirth/internal/domain"
)

func newCheckoutRouter(api SessionAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(newTestService(api)).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestCreateSessionEndpoint_OK(t *testing.T) {
	api := &fakeSessionAPI{createResp: &stripe.CheckoutSession{ID: "cs_300", ClientSecret: "sec_300"}}
	r := newCheckoutRouter(api)

	body := `{"service_id":"initial-consultation","booking":{"date":"2026-09-10","time":"10:00","datetime":"2026-09-10T10:00:00+01:00"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/session", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"client_secret":"sec_300"`)
	assert.Equal(t, "2026-09-10", api.createParams.Metadata[domain.MetaBookingDate])
}

func TestCreateSessionEndpoint_Validation(t *testing.T) {
	r := newCheckoutRouter(&fakeSessionAPI{})

	cases := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"empty body", `{}`, http.StatusBadRequest},
		{"partial booking", `{"service_id":"initial-consultation","booking":{"date":"2026-09-10"}}`, http.StatusBadRequest},
		{"unknown service", `{"service_id":"reiki-healing"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/session", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestVerifySessionEndpoint(t *testing.T) {
	paid := &fakeSessionAPI{getResp: &stripe.CheckoutSession{
		PaymentStatus:   stripe.CheckoutSessionPaymentStatusPaid,
		Metadata:        map[string]string{domain.MetaServiceID: "initial-consultation"},
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{Email: "jo@example.com"},
	}}
	r := newCheckoutRouter(paid)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout/verify?session_id=cs_301", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"jo@example.com"`)
}

func TestVerifySessionEndpoint_NotVerified(t *testing.T) {
	unpaid := &fakeSessionAPI{getResp: &stripe.CheckoutSession{PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid}}
	r := newCheckoutRouter(unpaid)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout/verify?session_id=cs_302", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SESSION_NOT_VERIFIED")
}

func TestVerifySessionEndpoint_MissingParam(t *testing.T) {
	r := newCheckoutRouter(&fakeSessionAPI{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/checkout/verify", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
