package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Checkout is the outcome of creating a Stripe subscription: the vendor-side
// ID, the normalized status, and the payment intent secret the frontend needs
// to confirm payment.
type Checkout struct {
	StripeSubscriptionID string
	Status               string
	ClientSecret         string
	CurrentPeriodEnd     time.Time
}

type WebhookEvent struct {
	Type             string
	SubscriptionID   string
	Status           string
	CurrentPeriodEnd time.Time
}

type Billing interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	CreateSubscription(ctx context.Context, customerID, priceID string) (*Checkout, error)
	CancelSubscription(ctx context.Context, subscriptionID string) error
	CreateSetupIntent(ctx context.Context, customerID string) (string, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

type StripeBilling struct {
	api           *client.API
	webhookSecret string
}

func NewStripeBilling(apiKey, webhookSecret string) *StripeBilling {
	if apiKey == "" {
		return nil
	}
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeBilling{api: api, webhookSecret: webhookSecret}
}

func (b *StripeBilling) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	cust, err := b.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}
	return cust.ID, nil
}

func (b *StripeBilling) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	attachParams := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	attachParams.Context = ctx
	if _, err := b.api.PaymentMethods.Attach(paymentMethodID, attachParams); err != nil {
		return fmt.Errorf("failed to attach payment method: %w", err)
	}

	updateParams := &stripe.CustomerParams{
		InvoiceSettings: &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}
	updateParams.Context = ctx
	if _, err := b.api.Customers.Update(customerID, updateParams); err != nil {
		return fmt.Errorf("failed to set default payment method: %w", err)
	}
	return nil
}

func (b *StripeBilling) CreateSubscription(ctx context.Context, customerID, priceID string) (*Checkout, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(priceID)},
		},
	}
	params.Context = ctx
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := b.api.Subscriptions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe subscription: %w", err)
	}

	checkout := &Checkout{
		StripeSubscriptionID: sub.ID,
		Status:               normalizeStripeStatus(sub.Status),
	}
	if sub.CurrentPeriodEnd > 0 {
		checkout.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0)
	}
	checkout.ClientSecret = b.extractClientSecret(ctx, sub)
	return checkout, nil
}

// extractClientSecret digs the payment intent secret out of the expanded
// invoice, re-fetching the intent when the expansion came back as a bare ID.
// A missing secret is not an error; the frontend simply skips confirmation.
func (b *StripeBilling) extractClientSecret(ctx context.Context, sub *stripe.Subscription) string {
	if sub.LatestInvoice == nil || sub.LatestInvoice.PaymentIntent == nil {
		return ""
	}
	pi := sub.LatestInvoice.PaymentIntent
	if pi.ClientSecret != "" {
		return pi.ClientSecret
	}
	if pi.ID == "" {
		return ""
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	full, err := b.api.PaymentIntents.Get(pi.ID, params)
	if err != nil {
		return ""
	}
	return full.ClientSecret
}

func (b *StripeBilling) CancelSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx
	if _, err := b.api.Subscriptions.Cancel(subscriptionID, params); err != nil {
		return fmt.Errorf("failed to cancel stripe subscription: %w", err)
	}
	return nil
}

func (b *StripeBilling) CreateSetupIntent(ctx context.Context, customerID string) (string, error) {
	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	si, err := b.api.SetupIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create setup intent: %w", err)
	}
	return si.ClientSecret, nil
}

func (b *StripeBilling) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, b.webhookSecret)
	if err != nil {
		return nil, err
	}

	we := &WebhookEvent{Type: string(event.Type)}
	if strings.HasPrefix(we.Type, "customer.subscription") {
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return nil, fmt.Errorf("failed to parse subscription payload: %w", err)
		}
		we.SubscriptionID = sub.ID
		we.Status = normalizeStripeStatus(sub.Status)
		if sub.CurrentPeriodEnd > 0 {
			we.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0)
		}
	}
	return we, nil
}

func normalizeStripeStatus(status stripe.SubscriptionStatus) string {
	switch status {
	case stripe.SubscriptionStatusActive:
		return StatusActive
	case stripe.SubscriptionStatusTrialing:
		return StatusTrial
	case stripe.SubscriptionStatusCanceled:
		return StatusCancelled
	case stripe.SubscriptionStatusIncompleteExpired:
		return StatusExpired
	case stripe.SubscriptionStatusPastDue, stripe.SubscriptionStatusUnpaid:
		return StatusPastDue
	default:
		return StatusPending
	}
}
