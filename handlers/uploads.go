// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/middleware"
	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/uploads"
)

type UploadHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	issuer UploadIssuer
}

func NewUploadHandler(db *sql.DB, cfg cliparse.Config, issuer UploadIssuer) *UploadHandler {
	return &UploadHandler{db: db, cfg: cfg, issuer: issuer}
}

// CreateUploadURL handles POST /api/upload-url
func (h *UploadHandler) CreateUploadURL(w http.ResponseWriter, r *http.Request) {
	if h.issuer == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Uploads are not configured")
		return
	}

	s, ok := requireSession(w, r)
	if !ok {
		return
	}

	var req models.UploadURLRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
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

	signed, err := h.issuer.Issue(r.Context(), uploads.Request{
		OwnerID:     acct.Profile.ID,
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Size:        req.Size,
	})
	switch {
	case errors.Is(err, uploads.ErrMissingFilename), errors.Is(err, uploads.ErrUnsupportedType),
		errors.Is(err, uploads.ErrInvalidSize):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, uploads.ErrTooLarge):
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case err != nil:
		slog.Error("failed to presign upload", "profile_id", acct.Profile.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to create upload URL")
		return
	}

	slog.Info("upload url issued", "profile_id", acct.Profile.ID, "key", signed.Key, "size", req.Size)

	middleware.JSONResponse(w, http.StatusOK, models.UploadURLResponse{
		UploadURL: signed.URL,
		Method:    signed.Method,
		Headers:   signed.Headers,
		Key:       signed.Key,
		PublicURL: signed.PublicURL,
		ExpiresAt: signed.ExpiresAt,
	})
}
