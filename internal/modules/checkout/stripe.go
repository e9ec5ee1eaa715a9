package checkout

import (
	"os"
	"sync"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

var stripeInit sync.Once

// StripeSessionAPI talks to Stripe through the stripe-go bindings. The
// API key is installed once per process on first use.
type StripeSessionAPI struct{}

func NewStripeSessionAPI() *StripeSessionAPI {
	return &StripeSessionAPI{}
}

func ensureKey() {
	stripeInit.Do(func() {
		stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	})
}

func (s *StripeSessionAPI) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	ensureKey()
	return session.New(params)
}

func (s *StripeSessionAPI) Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	ensureKey()
	return session.Get(id, params)
}
