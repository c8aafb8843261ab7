// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Exhibitly server.

# Handler Types

Each handler is a struct with database and config dependencies, plus the
managed provider it forwards to:

  - BillingHandler: Stripe checkout, billing portal, and webhooks
  - UploadHandler: Presigned artwork upload URLs
  - ContactHandler: Contact form relay
  - SessionHandler: Session cookie exchange and sign-out
  - DashboardHandler: The signed-in dashboard shell
  - PortfolioHandler: Public portfolio pages

Handlers are created via constructor functions:

	billingHandler := handlers.NewBillingHandler(db, cfg, services.Billing)

A nil provider makes the handler answer 503 instead of failing at startup.

# Sessions

Routes are wrapped in middleware.WithSession, which attaches a validated
session to the request context. API routes that need one answer 401; the
dashboard redirects to the login page instead. Admins may act as another
profile through the impersonation cookie.

# Billing

	POST /api/checkout        → CreateCheckout (returns session_id, url)
	POST /api/billing-portal  → CreatePortal (JSON url, or 303 for form posts)
	POST /api/webhooks/stripe → Webhook (links customers, tracks status)

# Pages

	GET /dashboard, /dashboard/{section} → DashboardHandler.Show
	GET /{username}                      → PortfolioHandler.Show
	GET /{username}/artworks/{artworkID} → PortfolioHandler.ShowArtwork

Portfolio pages build a viewmodel.Portfolio with LoadPortfolio and render
views.PortfolioPage inside viewmodel.ProvideComponent.
*/
package handlers
