// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/exhibitly/models"
)

const MaxQuantity = 100

var (
	ErrInvalidPrice    = errors.New("price_id is required")
	ErrInvalidQuantity = fmt.Errorf("quantity must be between 1 and %d", MaxQuantity)
	ErrInvalidMode     = errors.New("mode must be subscription or payment")
	ErrNoCustomer      = errors.New("no billing account")
	ErrBadSignature    = errors.New("invalid webhook signature")
)

// Provider is the payment processor behind checkout and the billing portal.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*PortalSession, error)
	ParseWebhook(payload []byte, signature string) (*Event, error)
}

// CheckoutParams is a price/quantity selection plus where to send the buyer back.
type CheckoutParams struct {
	PriceID           string
	Quantity          int64
	Mode              string
	CustomerID        string
	CustomerEmail     string
	ClientReferenceID string
	SuccessURL        string
	CancelURL         string
}

// Normalize applies defaults and validates the selection.
func (p *CheckoutParams) Normalize() error {
	p.PriceID = strings.TrimSpace(p.PriceID)
	if p.PriceID == "" {
		return ErrInvalidPrice
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if p.Quantity < 1 || p.Quantity > MaxQuantity {
		return ErrInvalidQuantity
	}
	switch p.Mode {
	case "":
		p.Mode = models.CheckoutModeSubscription
	case models.CheckoutModeSubscription, models.CheckoutModePayment:
	default:
		return ErrInvalidMode
	}
	return nil
}

type CheckoutSession struct {
	ID  string
	URL string
}

type PortalSession struct {
	ID  string
	URL string
}

// Event kinds the server acts on
const (
	EventCheckoutCompleted   = "checkout.session.completed"
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Event is the subset of a verified webhook event the server needs.
type Event struct {
	ID                 string
	Type               string
	CustomerID         string
	ClientReferenceID  string
	SubscriptionStatus string
}

// Error wraps a payment processor failure with the operation that failed.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("billing.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
