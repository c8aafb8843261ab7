// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/handlers"
	"github.com/danielhkuo/exhibitly/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, services handlers.Services) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	billingHandler := handlers.NewBillingHandler(db, cfg, services.Billing)
	uploadHandler := handlers.NewUploadHandler(db, cfg, services.Uploads)
	contactHandler := handlers.NewContactHandler(db, cfg, services.Mail)
	sessionHandler := handlers.NewSessionHandler(db, cfg)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)
	portfolioHandler := handlers.NewPortfolioHandler(db, cfg)

	// withSession logs the request and attaches the caller's session, if any
	withSession := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithSession(cfg.SessionSecret, next))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Billing
	mux.HandleFunc("POST /api/checkout", withSession(billingHandler.CreateCheckout))
	mux.HandleFunc("POST /api/billing-portal", withSession(billingHandler.CreatePortal))
	mux.HandleFunc("POST /api/webhooks/stripe", middleware.WithLogging(billingHandler.Webhook))

	// Uploads and contact
	mux.HandleFunc("POST /api/upload-url", withSession(uploadHandler.CreateUploadURL))
	mux.HandleFunc("POST /api/contact", middleware.WithLogging(contactHandler.SendMessage))

	// Sessions
	mux.HandleFunc("POST /auth/session", middleware.WithLogging(sessionHandler.CreateSession))
	mux.HandleFunc("POST /auth/signout", withSession(sessionHandler.SignOut))

	// Dashboard
	mux.HandleFunc("GET /dashboard", withSession(dashboardHandler.Show))
	mux.HandleFunc("GET /dashboard/{section}", withSession(dashboardHandler.Show))

	// Public portfolios
	mux.HandleFunc("GET /{username}", middleware.WithLogging(portfolioHandler.Show))
	mux.HandleFunc("GET /{username}/artworks/{artworkID}", middleware.WithLogging(portfolioHandler.ShowArtwork))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Exhibitly"))
	})

	return mux
}
