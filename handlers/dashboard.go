// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/views"
)

// OnboardingPath is where signed-in users without a profile are sent
const OnboardingPath = "/onboarding"

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDashboardHandler(db *sql.DB, cfg cliparse.Config) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg}
}

// Show handles GET /dashboard and GET /dashboard/{section}
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	s, ok := auth.SessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, h.loginURL(r), http.StatusSeeOther)
		return
	}

	acct, err := loadAccount(r.Context(), h.db, r, s)
	if errors.Is(err, db.ErrNotFound) {
		http.Redirect(w, r, OnboardingPath, http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to load account", "user_id", s.UserID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	section := r.PathValue("section")
	if section == "" {
		section = views.SectionOverview
	}
	// Gallery-only sections are hidden from other accounts
	if !views.HasSection(acct.Profile.AccountType, section) {
		http.NotFound(w, r)
		return
	}

	d := views.Dashboard{
		Profile:       acct.Profile,
		Viewer:        acct.Viewer,
		Impersonating: acct.Impersonating,
		Section:       section,
	}
	if err := h.loadSection(r, &d); err != nil {
		slog.Error("failed to load dashboard section", "profile_id", acct.Profile.ID, "section", section, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	renderPage(w, r, http.StatusOK, views.DashboardPage(d))
}

func (h *DashboardHandler) loadSection(r *http.Request, d *views.Dashboard) error {
	ctx := r.Context()
	profileID := d.Profile.ID

	settings, err := db.SiteSettings(ctx, h.db, profileID)
	if err != nil {
		return err
	}
	d.Settings = settings

	switch d.Section {
	case views.SectionOverview:
		stats, err := db.Stats(ctx, h.db, profileID)
		if err != nil {
			return err
		}
		d.Stats = views.DashboardStats(stats)
	case views.SectionArtworks:
		d.Artworks, err = db.Artworks(ctx, h.db, profileID)
	case views.SectionArtists:
		d.Artists, err = db.GalleryArtists(ctx, h.db, profileID)
	case views.SectionExhibitions:
		d.Exhibitions, err = db.Exhibitions(ctx, h.db, profileID)
	}
	return err
}

// loginURL adds the current request as the next parameter, keeping any
// query the configured login URL already carries.
func (h *DashboardHandler) loginURL(r *http.Request) string {
	u, err := url.Parse(h.cfg.LoginURL)
	if err != nil {
		slog.Error("invalid login url", "login_url", h.cfg.LoginURL, "error", err)
		return "/login?next=" + url.QueryEscape(r.URL.RequestURI())
	}
	q := u.Query()
	q.Set("next", r.URL.RequestURI())
	u.RawQuery = q.Encode()
	return u.String()
}
