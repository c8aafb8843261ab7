// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs one line per request: method, path, status, duration_ms and client IP.
Responses with a 5xx status are logged at error level.

# CORS Middleware

Allow the site's own origin to call the API with cookies:

	server := http.Server{
		Handler: middleware.CORS(cfg.SiteURL, mux),
	}

Only a matching Origin gets CORS headers (GET, POST, OPTIONS with
Content-Type and Authorization). Preflight requests get 204.

# Sessions

Attach the caller's session (if any) to the request context:

	mux.HandleFunc("GET /dashboard", middleware.WithLogging(middleware.WithSession(secret, h.Show)))

Invalid or missing tokens are not rejected here; handlers call
auth.SessionFromContext and decide.

# Content Negotiation

IsFormPost and WantsJSON let a handler answer HTML forms with a redirect and
API clients with JSON.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (capped at 1 MB):

	var req models.CheckoutRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used for IP hashing on contact form submissions.
*/
package middleware
