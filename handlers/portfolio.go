// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/viewmodel"
	"github.com/danielhkuo/exhibitly/views"
)

// reservedUsernames collide with top-level routes and are never looked up
var reservedUsernames = map[string]bool{
	"admin":       true,
	"api":         true,
	"auth":        true,
	"billing":     true,
	"dashboard":   true,
	"favicon.ico": true,
	"health":      true,
	"login":       true,
	"logout":      true,
	"onboarding":  true,
	"robots.txt":  true,
	"settings":    true,
	"signup":      true,
	"static":      true,
}

// IsReservedUsername reports whether a username is taken by a route.
func IsReservedUsername(username string) bool {
	return reservedUsernames[strings.ToLower(username)]
}

type PortfolioHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPortfolioHandler(db *sql.DB, cfg cliparse.Config) *PortfolioHandler {
	return &PortfolioHandler{db: db, cfg: cfg}
}

// Show handles GET /{username}
func (h *PortfolioHandler) Show(w http.ResponseWriter, r *http.Request) {
	vm, ok := h.load(w, r)
	if !ok {
		return
	}
	h.render(w, r, vm)
}

// ShowArtwork handles GET /{username}/artworks/{artworkID}
func (h *PortfolioHandler) ShowArtwork(w http.ResponseWriter, r *http.Request) {
	vm, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := vm.SelectArtwork(r.PathValue("artworkID")); err != nil {
		http.NotFound(w, r)
		return
	}
	// Sold works hidden from the grid are not reachable by link either
	if a, _ := vm.Selected(); a.Sold && !vm.Settings.ShowSold {
		http.NotFound(w, r)
		return
	}
	h.render(w, r, vm)
}

func (h *PortfolioHandler) load(w http.ResponseWriter, r *http.Request) (*viewmodel.Portfolio, bool) {
	username := r.PathValue("username")
	if username == "" || IsReservedUsername(username) {
		http.NotFound(w, r)
		return nil, false
	}

	vm, err := LoadPortfolio(r.Context(), h.db, username, r.URL.Query().Get("view"))
	if errors.Is(err, db.ErrNotFound) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load portfolio", "username", username, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	return vm, true
}

func (h *PortfolioHandler) render(w http.ResponseWriter, r *http.Request, vm *viewmodel.Portfolio) {
	title := vm.Profile.DisplayName
	if a, ok := vm.Selected(); ok {
		title = a.Title + " | " + title
	}
	page := views.Layout(title, vm.Theme, viewmodel.ProvideComponent(vm, views.PortfolioPage()))
	renderPage(w, r, http.StatusOK, page)
}

// LoadPortfolio fetches everything a public portfolio page shows and builds
// its view model. Gallery profiles also get the roster or exhibitions for the
// requested view; unknown views fall back to works.
func LoadPortfolio(ctx context.Context, conn *sql.DB, username, view string) (*viewmodel.Portfolio, error) {
	profile, err := db.ProfileByUsername(ctx, conn, username)
	if err != nil {
		return nil, err
	}

	settings, err := db.SiteSettings(ctx, conn, profile.ID)
	if err != nil {
		return nil, err
	}

	artworks, err := db.Artworks(ctx, conn, profile.ID)
	if err != nil {
		return nil, err
	}

	vm := viewmodel.New(profile, settings, artworks)
	if !profile.IsGallery() {
		return vm, nil
	}

	switch view {
	case models.ViewArtists:
		vm.Artists, err = db.GalleryArtists(ctx, conn, profile.ID)
	case models.ViewExhibitions:
		vm.Exhibitions, err = db.Exhibitions(ctx, conn, profile.ID)
	default:
		view = models.ViewWorks
	}
	if err != nil {
		return nil, err
	}
	vm.View = view
	return vm, nil
}
