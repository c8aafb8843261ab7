// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package billing forwards checkout and billing portal requests to the payment
processor.

# Provider

Handlers depend on the Provider interface; Stripe is the production
implementation:

	payments := billing.NewStripe(cfg.StripeSecretKey, cfg.StripeWebhookSecret, nil)

	cs, err := payments.CreateCheckoutSession(ctx, billing.CheckoutParams{
		PriceID:  "price_123",
		Quantity: 1,
	})
	// redirect the browser to cs.URL

	ps, err := payments.CreatePortalSession(ctx, customerID, returnURL)

CheckoutParams.Normalize defaults Quantity to 1 and Mode to subscription, and
rejects empty prices, quantities outside 1..MaxQuantity, and unknown modes.

# Webhooks

ParseWebhook verifies the Stripe-Signature header and reduces the event to
the fields the server stores: customer id, client reference id (the profile
id passed at checkout) and subscription status.

# Errors

Validation failures are sentinel errors (ErrInvalidPrice, ErrInvalidQuantity,
ErrInvalidMode, ErrNoCustomer, ErrBadSignature). Processor failures are
wrapped in *Error with the failing operation.
*/
package billing
