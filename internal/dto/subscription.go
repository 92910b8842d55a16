package dto

import "time"

type SubscriptionResponse struct {
	ID                   string     `json:"id" example:"sub_1a2b3c4d"`
	UserID               string     `json:"user_id" example:"user_9f8e7d6c"`
	Plan                 string     `json:"plan" example:"price_1NxyzAbc"`
	Status               string     `json:"status" example:"active"`
	StripeCustomerID     string     `json:"stripe_customer_id,omitempty" example:"cus_abc123"`
	StripeSubscriptionID string     `json:"stripe_subscription_id,omitempty" example:"sub_stripe123"`
	StartDate            *time.Time `json:"start_date,omitempty"`
	EndDate              *time.Time `json:"end_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

type CreateSubscriptionRequest struct {
	Plan   string `json:"plan" example:"monthly"`
	Status string `json:"status,omitempty" example:"trial"`
}

type CreateStripeSubscriptionRequest struct {
	PriceID         string `json:"price_id" example:"price_1NxyzAbc"`
	PaymentMethodID string `json:"payment_method_id,omitempty" example:"pm_1Nxyz"`
}

type StripeSubscriptionResponse struct {
	SubscriptionID       string `json:"subscription_id" example:"sub_1a2b3c4d"`
	StripeSubscriptionID string `json:"stripe_subscription_id" example:"sub_stripe123"`
	Status               string `json:"status" example:"pending"`
	ClientSecret         string `json:"client_secret,omitempty" example:"pi_secret_xyz"`
}

type SetupIntentResponse struct {
	ClientSecret string `json:"client_secret" example:"seti_secret_xyz"`
	CustomerID   string `json:"customer_id" example:"cus_abc123"`
}

type CancelSubscriptionResponse struct {
	Status         string `json:"status" example:"cancelled"`
	SubscriptionID string `json:"subscription_id" example:"sub_1a2b3c4d"`
}

type WebhookResponse struct {
	Status    string `json:"status" example:"success"`
	EventType string `json:"event_type" example:"customer.subscription.updated"`
}
