// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package viewmodel

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"

	"github.com/danielhkuo/exhibitly/models"
)

var (
	// ErrScopeMissing is returned when a component reads the portfolio without
	// an enclosing Provide.
	ErrScopeMissing = errors.New("viewmodel: portfolio read outside a viewmodel.Provide scope")

	ErrArtworkNotInCollection = errors.New("viewmodel: artwork is not part of this portfolio")
)

// Known themes; anything else renders as ThemeLight.
const (
	ThemeLight   = "light"
	ThemeDark    = "dark"
	ThemeMinimal = "minimal"
	ThemeGallery = "gallery"
)

// Portfolio is the view model shared by every component of a public portfolio page.
// It is built once per render by the page handler. SelectedArtwork is the only
// field that changes after construction, and only through SelectArtwork.
type Portfolio struct {
	Profile         models.Profile
	Settings        models.SiteSettings
	Artworks        []models.Artwork
	SelectedArtwork *models.Artwork
	Theme           string

	// Populated for gallery profiles only.
	View        string
	Artists     []models.Profile
	Exhibitions []models.Exhibition
}

// New builds a portfolio with the theme resolved from settings and no selection.
func New(profile models.Profile, settings models.SiteSettings, artworks []models.Artwork) *Portfolio {
	if artworks == nil {
		artworks = []models.Artwork{}
	}
	return &Portfolio{
		Profile:  profile,
		Settings: settings,
		Artworks: artworks,
		Theme:    ResolveTheme(settings),
	}
}

// ResolveTheme maps the stored theme name onto a known theme.
func ResolveTheme(settings models.SiteSettings) string {
	switch settings.Theme {
	case ThemeLight, ThemeDark, ThemeMinimal, ThemeGallery:
		return settings.Theme
	default:
		return ThemeLight
	}
}

// SelectArtwork focuses the artwork with the given id. An empty id clears the
// selection. Ids that are not in Artworks are rejected and the current
// selection is kept.
func (p *Portfolio) SelectArtwork(id string) error {
	if id == "" {
		p.SelectedArtwork = nil
		return nil
	}
	for i := range p.Artworks {
		if p.Artworks[i].ID == id {
			p.SelectedArtwork = &p.Artworks[i]
			return nil
		}
	}
	return ErrArtworkNotInCollection
}

// Selected returns a copy of the focused artwork, if any.
func (p *Portfolio) Selected() (models.Artwork, bool) {
	if p.SelectedArtwork == nil {
		return models.Artwork{}, false
	}
	return *p.SelectedArtwork, true
}

// IsSelected reports whether id is the focused artwork.
func (p *Portfolio) IsSelected(id string) bool {
	return p.SelectedArtwork != nil && p.SelectedArtwork.ID == id
}

type portfolioContextKey struct{}

// Provide returns a context in which FromContext yields p. Providing again on
// the returned context shadows p for everything rendered beneath it.
func Provide(ctx context.Context, p *Portfolio) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, portfolioContextKey{}, p)
}

// ProvideComponent renders children inside a Provide scope for p.
func ProvideComponent(p *Portfolio, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return children.Render(Provide(ctx, p), w)
	})
}

// FromContext returns the portfolio of the nearest enclosing Provide.
func FromContext(ctx context.Context) (*Portfolio, error) {
	if ctx == nil {
		return nil, ErrScopeMissing
	}
	p, _ := ctx.Value(portfolioContextKey{}).(*Portfolio)
	if p == nil {
		return nil, ErrScopeMissing
	}
	return p, nil
}

// MustFromContext is FromContext for callers that cannot return an error.
// It panics with ErrScopeMissing.
func MustFromContext(ctx context.Context) *Portfolio {
	p, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return p
}
