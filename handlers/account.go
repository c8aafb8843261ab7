// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/billing"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/mail"
	"github.com/danielhkuo/exhibitly/middleware"
	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/uploads"
)

// UploadIssuer presigns artwork uploads. *uploads.Issuer implements it.
type UploadIssuer interface {
	Issue(ctx context.Context, req uploads.Request) (*uploads.SignedUpload, error)
}

// Services are the managed providers the handlers forward to.
// A nil service makes its routes answer 503.
type Services struct {
	Billing billing.Provider
	Mail    mail.Sender
	Uploads UploadIssuer
}

// account is the signed-in user and the profile they are acting as.
type account struct {
	Session       auth.Session
	Viewer        models.Profile
	Profile       models.Profile
	Impersonating bool
}

// loadAccount resolves the profile for a session. Admins may act as another
// profile through the impersonation cookie; for everyone else it is ignored.
// Returns db.ErrNotFound when the signed-in user has no profile yet.
func loadAccount(ctx context.Context, conn *sql.DB, r *http.Request, s auth.Session) (account, error) {
	viewer, err := db.ProfileByID(ctx, conn, s.UserID)
	if err != nil {
		return account{}, err
	}
	acct := account{Session: s, Viewer: viewer, Profile: viewer}

	target := auth.ImpersonationTarget(r)
	if target == "" || target == viewer.ID {
		return acct, nil
	}
	if !viewer.IsAdmin {
		slog.Warn("ignoring impersonation from non-admin", "user_id", viewer.ID, "target", target)
		return acct, nil
	}

	profile, err := db.ProfileByID(ctx, conn, target)
	if errors.Is(err, db.ErrNotFound) {
		slog.Warn("impersonation target not found", "admin_id", viewer.ID, "target", target)
		return acct, nil
	}
	if err != nil {
		return account{}, err
	}

	slog.Info("admin impersonating profile", "admin_id", viewer.ID, "profile_id", profile.ID)
	acct.Profile = profile
	acct.Impersonating = true
	return acct, nil
}

// requireSession writes a 401 and returns false when the request is anonymous.
func requireSession(w http.ResponseWriter, r *http.Request) (auth.Session, bool) {
	s, ok := auth.SessionFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return auth.Session{}, false
	}
	return s, true
}
