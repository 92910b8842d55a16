package subscription

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/caseprepared/backend/internal/auth"
	"github.com/caseprepared/backend/internal/dto"
	"github.com/caseprepared/backend/internal/shared"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store   *Store
	billing Billing
	logger  *slog.Logger
}

func NewHandler(store *Store, billing Billing, logger *slog.Logger) *Handler {
	return &Handler{
		store:   store,
		billing: billing,
		logger:  logger,
	}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.POST("/create-stripe-subscription", h.CreateStripeSubscription)
	g.POST("/create-setup-intent", h.CreateSetupIntent)
	g.POST("/cancel", h.Cancel)
}

// RegisterWebhook mounts the Stripe callback on an unauthenticated group;
// Stripe signs its requests instead of sending a bearer token.
func (h *Handler) RegisterWebhook(g *echo.Group) {
	g.POST("/subscriptions/webhook", h.Webhook)
}

// @Summary      List subscriptions
// @Description  Returns the authenticated user's subscription records
// @Tags         subscriptions
// @Produce      json
// @Param        skip   query  int  false  "Rows to skip"
// @Param        limit  query  int  false  "Max rows"
// @Success      200  {array}  dto.SubscriptionResponse
// @Failure      401  {object}  shared.APIError
// @Security     BearerAuth
// @Router       /subscriptions [get]
func (h *Handler) List(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	subs, err := h.store.ListByUserID(c.Request().Context(), claims.UserID, skip, limit)
	if err != nil {
		h.logger.Error("failed to list subscriptions", "error", err, "user_id", claims.UserID)
		return shared.InternalError("list_failed", "failed to list subscriptions")
	}

	out := make([]dto.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toResponse(&subs[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// @Summary      Create a subscription record
// @Description  Records a subscription without going through Stripe (manual and trial grants)
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateSubscriptionRequest  true  "Plan and optional status"
// @Success      201  {object}  dto.SubscriptionResponse
// @Failure      400  {object}  shared.APIError
// @Failure      409  {object}  shared.APIError  "User already has a subscription"
// @Security     BearerAuth
// @Router       /subscriptions [post]
func (h *Handler) Create(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	var req dto.CreateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.Plan == "" {
		return shared.BadRequest("missing_plan", "plan is required")
	}
	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !validStatus(status) {
		return shared.BadRequest("invalid_status", "unknown subscription status")
	}

	ctx := c.Request().Context()
	if _, err := h.store.GetByUserID(ctx, claims.UserID); err == nil {
		return shared.Conflict("subscription_exists", "user already has a subscription")
	} else if !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error("failed to check subscription", "error", err, "user_id", claims.UserID)
		return shared.InternalError("lookup_failed", "failed to check existing subscription")
	}

	now := time.Now()
	sub := &Subscription{
		UserID:    claims.UserID,
		Plan:      req.Plan,
		Status:    status,
		StartDate: &now,
	}
	if err := h.store.Create(ctx, sub); err != nil {
		h.logger.Error("failed to create subscription", "error", err, "user_id", claims.UserID)
		return shared.InternalError("create_failed", "failed to create subscription")
	}

	return c.JSON(http.StatusCreated, toResponse(sub))
}

// @Summary      Start a Stripe subscription
// @Description  Creates (or reuses) the Stripe customer, subscribes them to the price and returns the payment intent secret
// @Tags         subscriptions
// @Accept       json
// @Produce      json
// @Param        request  body  dto.CreateStripeSubscriptionRequest  true  "Price and optional payment method"
// @Success      200  {object}  dto.StripeSubscriptionResponse
// @Failure      400  {object}  shared.APIError
// @Failure      502  {object}  shared.APIError  "Stripe call failed"
// @Failure      503  {object}  shared.APIError  "Billing not configured"
// @Security     BearerAuth
// @Router       /subscriptions/create-stripe-subscription [post]
func (h *Handler) CreateStripeSubscription(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}
	if h.billing == nil {
		return shared.ServiceUnavailable("billing_unconfigured", "billing is not configured")
	}

	var req dto.CreateStripeSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return shared.BadRequest("invalid_request", "invalid request body")
	}
	if req.PriceID == "" {
		return shared.BadRequest("missing_price_id", "price_id is required")
	}

	ctx := c.Request().Context()
	existing, err := h.store.GetByUserID(ctx, claims.UserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error("failed to look up subscription", "error", err, "user_id", claims.UserID)
		return shared.InternalError("lookup_failed", "failed to look up subscription")
	}

	customerID, herr := h.ensureCustomer(c, existing, claims)
	if herr != nil {
		return herr
	}

	if req.PaymentMethodID != "" {
		if err := h.billing.AttachPaymentMethod(ctx, customerID, req.PaymentMethodID); err != nil {
			h.logger.Error("failed to attach payment method", "error", err, "user_id", claims.UserID)
			return shared.BadRequest("payment_method_failed", "failed to attach payment method")
		}
	}

	checkout, err := h.billing.CreateSubscription(ctx, customerID, req.PriceID)
	if err != nil {
		h.logger.Error("failed to create stripe subscription", "error", err, "user_id", claims.UserID)
		return shared.BadGateway("stripe_failed", "failed to create stripe subscription")
	}

	sub := existing
	if sub == nil {
		now := time.Now()
		sub = &Subscription{
			UserID:    claims.UserID,
			StartDate: &now,
		}
	}
	sub.Plan = req.PriceID
	sub.Status = checkout.Status
	sub.StripeCustomerID = customerID
	sub.StripeSubscriptionID = checkout.StripeSubscriptionID
	if !checkout.CurrentPeriodEnd.IsZero() {
		end := checkout.CurrentPeriodEnd
		sub.EndDate = &end
	}

	if existing == nil {
		err = h.store.Create(ctx, sub)
	} else {
		err = h.store.Update(ctx, sub)
	}
	if err != nil {
		h.logger.Error("failed to persist subscription", "error", err, "user_id", claims.UserID)
		return shared.InternalError("persist_failed", "failed to record subscription")
	}

	return c.JSON(http.StatusOK, dto.StripeSubscriptionResponse{
		SubscriptionID:       sub.ID,
		StripeSubscriptionID: checkout.StripeSubscriptionID,
		Status:               checkout.Status,
		ClientSecret:         checkout.ClientSecret,
	})
}

// @Summary      Create a setup intent
// @Description  Returns a SetupIntent client secret for collecting a payment method upfront
// @Tags         subscriptions
// @Produce      json
// @Success      200  {object}  dto.SetupIntentResponse
// @Failure      401  {object}  shared.APIError
// @Failure      502  {object}  shared.APIError  "Stripe call failed"
// @Failure      503  {object}  shared.APIError  "Billing not configured"
// @Security     BearerAuth
// @Router       /subscriptions/create-setup-intent [post]
func (h *Handler) CreateSetupIntent(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}
	if h.billing == nil {
		return shared.ServiceUnavailable("billing_unconfigured", "billing is not configured")
	}

	ctx := c.Request().Context()
	existing, err := h.store.GetByUserID(ctx, claims.UserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		h.logger.Error("failed to look up subscription", "error", err, "user_id", claims.UserID)
		return shared.InternalError("lookup_failed", "failed to look up subscription")
	}

	customerID, herr := h.ensureCustomer(c, existing, claims)
	if herr != nil {
		return herr
	}

	clientSecret, err := h.billing.CreateSetupIntent(ctx, customerID)
	if err != nil {
		h.logger.Error("failed to create setup intent", "error", err, "user_id", claims.UserID)
		return shared.BadGateway("stripe_failed", "failed to create setup intent")
	}

	if existing == nil {
		sub := &Subscription{
			UserID:           claims.UserID,
			Plan:             "pending",
			Status:           StatusPending,
			StripeCustomerID: customerID,
		}
		if err := h.store.Create(ctx, sub); err != nil {
			h.logger.Error("failed to record pending subscription", "error", err, "user_id", claims.UserID)
			return shared.InternalError("persist_failed", "failed to record subscription")
		}
	} else if existing.StripeCustomerID == "" {
		existing.StripeCustomerID = customerID
		if err := h.store.Update(ctx, existing); err != nil {
			h.logger.Error("failed to store customer id", "error", err, "user_id", claims.UserID)
			return shared.InternalError("persist_failed", "failed to record subscription")
		}
	}

	return c.JSON(http.StatusOK, dto.SetupIntentResponse{
		ClientSecret: clientSecret,
		CustomerID:   customerID,
	})
}

// @Summary      Cancel the subscription
// @Description  Cancels the user's Stripe subscription and marks the local record cancelled
// @Tags         subscriptions
// @Produce      json
// @Success      200  {object}  dto.CancelSubscriptionResponse
// @Failure      404  {object}  shared.APIError  "No active subscription"
// @Failure      502  {object}  shared.APIError  "Stripe call failed"
// @Security     BearerAuth
// @Router       /subscriptions/cancel [post]
func (h *Handler) Cancel(c echo.Context) error {
	claims := auth.GetClaims(c)
	if claims == nil {
		return shared.Unauthorized("auth_required", "authentication required")
	}

	ctx := c.Request().Context()
	sub, err := h.store.GetByUserID(ctx, claims.UserID)
	if err != nil || sub.StripeSubscriptionID == "" {
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			h.logger.Error("failed to look up subscription", "error", err, "user_id", claims.UserID)
			return shared.InternalError("lookup_failed", "failed to look up subscription")
		}
		return shared.NotFound("subscription_not_found", "active subscription not found")
	}
	if h.billing == nil {
		return shared.ServiceUnavailable("billing_unconfigured", "billing is not configured")
	}

	if err := h.billing.CancelSubscription(ctx, sub.StripeSubscriptionID); err != nil {
		h.logger.Error("failed to cancel stripe subscription", "error", err, "user_id", claims.UserID)
		return shared.BadGateway("stripe_failed", "failed to cancel stripe subscription")
	}

	now := time.Now()
	sub.Status = StatusCancelled
	sub.EndDate = &now
	if err := h.store.Update(ctx, sub); err != nil {
		h.logger.Error("failed to persist cancellation", "error", err, "user_id", claims.UserID)
		return shared.InternalError("persist_failed", "failed to record cancellation")
	}

	return c.JSON(http.StatusOK, dto.CancelSubscriptionResponse{
		Status:         sub.Status,
		SubscriptionID: sub.ID,
	})
}

// Webhook ingests Stripe subscription lifecycle events. Deliberately absent
// from the swagger surface; only Stripe calls it.
func (h *Handler) Webhook(c echo.Context) error {
	if h.billing == nil {
		return shared.ServiceUnavailable("billing_unconfigured", "billing is not configured")
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if signature == "" {
		return shared.BadRequest("missing_signature", "missing stripe signature header")
	}

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return shared.BadRequest("invalid_payload", "failed to read webhook payload")
	}

	event, err := h.billing.VerifyWebhook(payload, signature)
	if err != nil {
		h.logger.Warn("webhook verification failed", "error", err)
		return shared.BadRequest("verification_failed", "webhook verification failed")
	}

	ctx := c.Request().Context()
	if strings.HasPrefix(event.Type, "customer.subscription") && event.SubscriptionID != "" {
		sub, err := h.store.GetByStripeSubscriptionID(ctx, event.SubscriptionID)
		switch {
		case err == nil:
			switch event.Type {
			case "customer.subscription.created":
				sub.Status = StatusActive
			case "customer.subscription.updated":
				sub.Status = event.Status
			case "customer.subscription.deleted":
				sub.Status = StatusCancelled
			}
			if !event.CurrentPeriodEnd.IsZero() {
				end := event.CurrentPeriodEnd
				sub.EndDate = &end
			}
			if err := h.store.Update(ctx, sub); err != nil {
				h.logger.Error("failed to apply webhook", "error", err, "event_type", event.Type)
				return shared.InternalError("persist_failed", "failed to apply webhook")
			}
		case !errors.Is(err, shared.ErrNotFound):
			h.logger.Error("failed to look up subscription", "error", err, "stripe_id", event.SubscriptionID)
			return shared.InternalError("lookup_failed", "failed to look up subscription")
		default:
			// Row may not exist yet when Stripe races our own insert; ack and
			// let the next event catch up.
			h.logger.Warn("webhook for unknown subscription", "stripe_id", event.SubscriptionID, "event_type", event.Type)
		}
	}

	return c.JSON(http.StatusOK, dto.WebhookResponse{
		Status:    "success",
		EventType: event.Type,
	})
}

func (h *Handler) ensureCustomer(c echo.Context, existing *Subscription, claims *auth.Claims) (string, *echo.HTTPError) {
	if existing != nil && existing.StripeCustomerID != "" {
		return existing.StripeCustomerID, nil
	}

	customerID, err := h.billing.CreateCustomer(c.Request().Context(), claims.Email, claims.Name)
	if err != nil {
		h.logger.Error("failed to create stripe customer", "error", err, "user_id", claims.UserID)
		return "", shared.BadGateway("stripe_failed", "failed to create stripe customer")
	}
	return customerID, nil
}

func toResponse(s *Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:                   s.ID,
		UserID:               s.UserID,
		Plan:                 s.Plan,
		Status:               s.Status,
		StripeCustomerID:     s.StripeCustomerID,
		StripeSubscriptionID: s.StripeSubscriptionID,
		StartDate:            s.StartDate,
		EndDate:              s.EndDate,
		CreatedAt:            s.CreatedAt,
	}
}

func validStatus(status string) bool {
	switch status {
	case StatusActive, StatusTrial, StatusCancelled, StatusExpired, StatusPastDue, StatusPending:
		return true
	}
	return false
}
