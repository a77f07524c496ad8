// Package gateway talks to the payment provider
package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ErrNotConfigured is returned when no Stripe secret key was provided
var ErrNotConfigured = errors.New("payment gateway not configured")

// StripeGateway creates payment intents through the Stripe API
type StripeGateway struct {
	api *client.API
}

// Option customizes the Stripe backend
type Option func(*stripe.BackendConfig)

// WithBaseURL points the client at another API host (used by tests)
func WithBaseURL(url string) Option {
	return func(c *stripe.BackendConfig) { c.URL = stripe.String(url) }
}

// WithHTTPClient replaces the HTTP client used for API calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *stripe.BackendConfig) { c.HTTPClient = hc }
}

// NewStripeGateway returns a gateway for secretKey. An empty key yields a
// gateway whose calls fail with ErrNotConfigured.
func NewStripeGateway(secretKey string, opts ...Option) *StripeGateway {
	if secretKey == "" {
		return &StripeGateway{}
	}

	cfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: 15 * time.Second},
		MaxNetworkRetries: stripe.Int64(0),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, cfg)

	return &StripeGateway{
		api: client.New(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}),
	}
}

// CreatePaymentIntent opens an intent for amount minor units and returns
// its client secret.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string, methodTypes []string) (string, error) {
	if g.api == nil {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice(methodTypes),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
