// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Exhibitly server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, handlers.Services{Billing: stripe, Mail: resend, Uploads: issuer})

# Endpoints

Health:

	GET /health

Billing:

	POST /api/checkout        - Start a Stripe Checkout session
	POST /api/billing-portal  - Open the customer portal (session required)
	POST /api/webhooks/stripe - Stripe event delivery

Uploads and contact:

	POST /api/upload-url - Presigned artwork upload (session required)
	POST /api/contact    - Relay a contact form message

Sessions:

	POST /auth/session - Exchange an access token for a cookie
	POST /auth/signout - Clear the session

Pages:

	GET /dashboard, /dashboard/{section} - Dashboard shell
	GET /{username}                      - Public portfolio
	GET /{username}/artworks/{artworkID} - Portfolio with an artwork selected

Routes that care about the caller are wrapped in middleware.WithSession.
*/
package router
