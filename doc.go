// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Exhibitly server.

Exhibitly lets artists and galleries publish portfolios, manage inventory,
and take payments. This server forwards billing to Stripe, contact form mail
to Resend, and artwork uploads to S3-compatible object storage, and renders
the public portfolio and dashboard pages.

# Starting the Server

The server reads a .env file if present, then environment variables, then
CLI flags:

	DATABASE_URL=file:exhibitly.db SESSION_SECRET=... IP_HASH_SALT=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string
  - SESSION_SECRET (-session-secret): HS256 secret shared with the auth provider
  - IP_HASH_SALT (-ip-salt): Salt for hashing contact form IPs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SITE_URL (-site-url), LOGIN_URL
  - STRIPE_SECRET_KEY, STRIPE_WEBHOOK_SECRET: enable billing
  - RESEND_API_KEY, CONTACT_FROM_ADDRESS: enable the contact relay
  - UPLOAD_BUCKET, UPLOAD_REGION, UPLOAD_ENDPOINT, UPLOAD_PUBLIC_BASE_URL,
    UPLOAD_URL_EXPIRY: enable upload URLs

A provider without credentials is disabled and its routes answer 503.

# Architecture

  - handlers: HTTP request handlers (billing, uploads, contact, sessions, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, sessions, JSON helpers
  - viewmodel: The request-scoped portfolio view model
  - views: templ components for portfolio and dashboard pages
  - billing, mail, uploads: Managed provider clients
  - models: Request/response and domain types
  - auth: Session tokens and cookies
  - db: Schema and queries
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
