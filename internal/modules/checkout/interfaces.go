package checkout

import "github.com/stripe/stripe-go/v79"

// SessionAPI is the slice of the payment processor's API this module
// touches. The production implementation is in stripe.go; tests supply
// fakes.
type SessionAPI interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}
