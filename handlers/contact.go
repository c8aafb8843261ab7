// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/mail"
	"github.com/danielhkuo/exhibitly/middleware"
	"github.com/danielhkuo/exhibitly/models"
)

const maxContactBytes = 32 << 10

type ContactHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	sender mail.Sender
}

func NewContactHandler(db *sql.DB, cfg cliparse.Config, sender mail.Sender) *ContactHandler {
	return &ContactHandler{db: db, cfg: cfg, sender: sender}
}

// SendMessage handles POST /api/contact
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	if h.sender == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Email is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBytes)

	var form models.ContactForm
	if middleware.IsFormPost(r) {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
			return
		}
		form = models.ContactForm{
			Recipient: r.PostForm.Get("recipient"),
			Name:      r.PostForm.Get("name"),
			Email:     r.PostForm.Get("email"),
			Message:   r.PostForm.Get("message"),
		}
	} else if err := middleware.ParseJSONBody(r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	form, err := mail.ValidateContactForm(form)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Only registered profiles receive mail through the relay
	profile, err := h.recipient(r, form.Recipient)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Recipient not found")
		return
	}
	if err != nil {
		slog.Error("failed to look up recipient", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	form.Recipient = profile.Email

	providerID, err := h.sender.Send(r.Context(), mail.ContactMessage(h.cfg.ContactFromAddress, form))
	if err != nil {
		slog.Error("failed to send contact message", "profile_id", profile.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, "Failed to send message")
		return
	}

	messageID := uuid.NewString()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	// The email is already out; a failed insert is logged, not surfaced
	err = db.InsertContactMessage(r.Context(), h.db, db.ContactMessage{
		ID:          messageID,
		ProfileID:   profile.ID,
		SenderName:  form.Name,
		SenderEmail: form.Email,
		Body:        form.Message,
		ProviderID:  providerID,
		IPHash:      ipHash,
	})
	if err != nil {
		slog.Error("failed to store contact message", "message_id", messageID, "error", err)
	}

	slog.Info("contact message sent", "message_id", messageID, "profile_id", profile.ID, "provider_id", providerID)

	if !middleware.WantsJSON(r) {
		http.Redirect(w, r, "/"+url.PathEscape(profile.Username)+"?contact=sent", http.StatusSeeOther)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.ContactResponse{
		MessageID: messageID,
		Status:    "sent",
	})
}

// recipient resolves the submitted recipient, a username or an email address,
// to a profile. Public pages post the username so addresses are never rendered.
func (h *ContactHandler) recipient(r *http.Request, recipient string) (models.Profile, error) {
	if strings.Contains(recipient, "@") {
		return db.ProfileByEmail(r.Context(), h.db, recipient)
	}
	if IsReservedUsername(recipient) {
		return models.Profile{}, db.ErrNotFound
	}
	return db.ProfileByUsername(r.Context(), h.db, recipient)
}
