// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/billing"
	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/middleware"
	"github.com/danielhkuo/exhibitly/models"
)

// maxWebhookBytes bounds the webhook payload read into memory
const maxWebhookBytes = 64 << 10

type BillingHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	provider billing.Provider
}

func NewBillingHandler(db *sql.DB, cfg cliparse.Config, provider billing.Provider) *BillingHandler {
	return &BillingHandler{db: db, cfg: cfg, provider: provider}
}

// CreateCheckout handles POST /api/checkout
func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Billing is not configured")
		return
	}

	var req models.CheckoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	params := billing.CheckoutParams{
		PriceID:    req.PriceID,
		Quantity:   req.Quantity,
		Mode:       req.Mode,
		SuccessURL: h.cfg.SiteURL + "/dashboard/billing?checkout=success",
		CancelURL:  h.cfg.SiteURL + "/dashboard/billing?checkout=canceled",
	}
	if err := params.Normalize(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Attach the buyer when signed in so the webhook can link the customer
	if s, ok := auth.SessionFromContext(r.Context()); ok {
		params.ClientReferenceID = s.UserID
		params.CustomerEmail = s.Email
		profile, err := db.ProfileByID(r.Context(), h.db, s.UserID)
		switch {
		case err == nil:
			params.CustomerEmail = profile.Email
			if profile.StripeCustomerID != nil {
				params.CustomerID = *profile.StripeCustomerID
			}
		case !errors.Is(err, db.ErrNotFound):
			slog.Error("failed to load profile for checkout", "user_id", s.UserID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
	}

	session, err := h.provider.CreateCheckoutSession(r.Context(), params)
	if err != nil {
		slog.Error("failed to create checkout session", "price_id", params.PriceID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to create checkout session")
		return
	}

	slog.Info("checkout session created", "session_id", session.ID, "mode", params.Mode)

	middleware.JSONResponse(w, http.StatusOK, models.CheckoutResponse{
		SessionID: session.ID,
		URL:       session.URL,
	})
}

// CreatePortal handles POST /api/billing-portal
func (h *BillingHandler) CreatePortal(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Billing is not configured")
		return
	}

	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	acct, err := loadAccount(r.Context(), h.db, r, s)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Profile not found")
		return
	}
	if err != nil {
		slog.Error("failed to load account", "user_id", s.UserID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if acct.Profile.StripeCustomerID == nil || *acct.Profile.StripeCustomerID == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, billing.ErrNoCustomer.Error())
		return
	}

	portal, err := h.provider.CreatePortalSession(r.Context(), *acct.Profile.StripeCustomerID,
		h.cfg.SiteURL+"/dashboard/billing")
	if err != nil {
		slog.Error("failed to create billing portal session", "profile_id", acct.Profile.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to open billing portal")
		return
	}

	slog.Info("billing portal session created", "profile_id", acct.Profile.ID)

	if !middleware.WantsJSON(r) {
		http.Redirect(w, r, portal.URL, http.StatusSeeOther)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.PortalResponse{URL: portal.URL})
}

// Webhook handles POST /api/webhooks/stripe
func (h *BillingHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Billing is not configured")
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBytes))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	event, err := h.provider.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		slog.Warn("rejected webhook", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, billing.ErrBadSignature.Error())
		return
	}

	if err := h.applyEvent(r, event); err != nil {
		// A 5xx makes Stripe retry the delivery
		slog.Error("failed to apply webhook event", "event_id", event.ID, "type", event.Type, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WebhookResponse{Received: true})
}

func (h *BillingHandler) applyEvent(r *http.Request, event *billing.Event) error {
	var err error
	switch event.Type {
	case billing.EventCheckoutCompleted:
		if event.ClientReferenceID == "" || event.CustomerID == "" {
			slog.Info("checkout completed without a linked profile", "event_id", event.ID)
			return nil
		}
		err = db.LinkStripeCustomer(r.Context(), h.db, event.ClientReferenceID, event.CustomerID, models.SubscriptionActive)

	case billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
		status := event.SubscriptionStatus
		if event.Type == billing.EventSubscriptionDeleted {
			status = models.SubscriptionCanceled
		}
		err = db.UpdateSubscriptionStatus(r.Context(), h.db, event.CustomerID, status)

	default:
		slog.Debug("ignoring webhook event", "event_id", event.ID, "type", event.Type)
		return nil
	}

	if errors.Is(err, db.ErrNotFound) {
		slog.Warn("webhook event matched no profile", "event_id", event.ID, "type", event.Type,
			"customer_id", event.CustomerID)
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("webhook event applied", "event_id", event.ID, "type", event.Type, "customer_id", event.CustomerID)
	return nil
}
