// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/middleware"
	"github.com/danielhkuo/exhibitly/models"
)

type SessionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewSessionHandler(db *sql.DB, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{db: db, cfg: cfg}
}

// CreateSession handles POST /auth/session
// Exchanges an access token from the auth provider for a session cookie.
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionRequest
	if middleware.IsFormPost(r) {
		req.AccessToken = r.PostFormValue("access_token")
	} else if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.AccessToken) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "access_token is required")
		return
	}

	s, err := auth.ParseSessionToken(req.AccessToken, h.cfg.SessionSecret)
	if err != nil {
		slog.Warn("rejected access token", "error", err)
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid access token")
		return
	}

	auth.SetSessionCookie(w, req.AccessToken, s, strings.HasPrefix(h.cfg.SiteURL, "https://"))

	slog.Info("session created", "user_id", s.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
	})
}

// SignOut handles POST /auth/signout
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)

	if s, ok := auth.SessionFromContext(r.Context()); ok {
		slog.Info("session cleared", "user_id", s.UserID)
	}

	if !middleware.WantsJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
