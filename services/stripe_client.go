package services

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// CheckoutSessionIn is everything the gateway needs to open a hosted
// checkout for one order intent.
type CheckoutSessionIn struct {
	CustomerEmail string
	ProductName   string
	AmountCents   int64
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

// PaymentGateway abstracts the payment provider so the pipeline and its
// tests never touch the SDK directly.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in *CheckoutSessionIn) (string, error)
	ParseWebhook(r *http.Request) (stripe.Event, error)
}

// StripeGateway is the production gateway. Constructed once at startup and
// injected; key handling stays out of package-level state.
type StripeGateway struct {
	SecretKey  string
	WebhookKey string
	client     *session.Client
}

func NewStripeGateway(secretKey, webhookKey string) *StripeGateway {
	backend := stripe.GetBackend(stripe.APIBackend)
	return &StripeGateway{
		SecretKey:  secretKey,
		WebhookKey: webhookKey,
		client:     &session.Client{B: backend, Key: secretKey},
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in *CheckoutSessionIn) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(in.CustomerEmail),
		SuccessURL:         stripe.String(in.SuccessURL),
		CancelURL:          stripe.String(in.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(in.ProductName),
					},
					UnitAmount: stripe.Int64(in.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := g.client.New(params)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

// ParseWebhook verifies the Stripe-Signature header before returning the
// event; an invalid signature is an error and nothing else is read.
func (g *StripeGateway) ParseWebhook(r *http.Request) (stripe.Event, error) {
	var event stripe.Event
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return event, err
	}
	r.Body = io.NopCloser(bytes.NewBuffer(payload))
	sigHeader := r.Header.Get("Stripe-Signature")
	return webhook.ConstructEvent(payload, sigHeader, g.WebhookKey)
}
