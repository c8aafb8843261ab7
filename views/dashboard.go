// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/exhibitly/models"
)

// Dashboard sections
const (
	SectionOverview    = "overview"
	SectionArtworks    = "artworks"
	SectionArtists     = "artists"
	SectionExhibitions = "exhibitions"
	SectionBilling     = "billing"
	SectionSettings    = "settings"
)

type NavItem struct {
	Section string
	Label   string
}

var (
	artistNav = []NavItem{
		{SectionOverview, "Overview"},
		{SectionArtworks, "Artworks"},
		{SectionBilling, "Billing"},
		{SectionSettings, "Settings"},
	}
	galleryNav = []NavItem{
		{SectionOverview, "Overview"},
		{SectionArtworks, "Artworks"},
		{SectionArtists, "Artists"},
		{SectionExhibitions, "Exhibitions"},
		{SectionBilling, "Billing"},
		{SectionSettings, "Settings"},
	}
)

// NavItems returns the sidebar entries available to an account type.
func NavItems(accountType string) []NavItem {
	if accountType == models.AccountGallery {
		return galleryNav
	}
	return artistNav
}

// HasSection reports whether the account type can open a dashboard section.
func HasSection(accountType, section string) bool {
	for _, item := range NavItems(accountType) {
		if item.Section == section {
			return true
		}
	}
	return false
}

// DashboardStats summarizes the account for the overview section.
type DashboardStats struct {
	ArtworkCount   int
	SoldCount      int
	InventoryCents int64
	MessageCount   int
	LastMessageAt  time.Time
}

// Dashboard is everything the dashboard shell renders for one request.
type Dashboard struct {
	Profile       models.Profile // the account being managed
	Viewer        models.Profile // the signed-in account
	Impersonating bool
	Section       string
	Stats         DashboardStats
	Artworks      []models.Artwork
	Artists       []models.Profile
	Exhibitions   []models.Exhibition
	Settings      models.SiteSettings
	Now           time.Time
}

// DashboardPage is the full dashboard document.
func DashboardPage(d Dashboard) templ.Component {
	title := "Dashboard"
	for _, item := range NavItems(d.Profile.AccountType) {
		if item.Section == d.Section {
			title = item.Label + " | Dashboard"
		}
	}
	return Layout(title, d.Settings.Theme, DashboardShell(d, SectionContent(d)))
}

// DashboardShell is the navigation chrome around a section.
func DashboardShell(d Dashboard, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="dashboard">`); err != nil {
			return err
		}
		if d.Impersonating {
			if err := ImpersonationBanner(d).Render(ctx, w); err != nil {
				return err
			}
		}
		if err := renderAll(ctx, w, Sidebar(d), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := writef(w, `<main class="dashboard-content">`); err != nil {
				return err
			}
			if err := content.Render(ctx, w); err != nil {
				return err
			}
			return writef(w, `</main>`)
		})); err != nil {
			return err
		}
		return writef(w, `</div>`)
	})
}

func ImpersonationBanner(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<div class="impersonation-banner" role="alert">Viewing as <strong>%s</strong> (@%s). Signed in as %s.</div>`,
			esc(d.Profile.DisplayName), esc(d.Profile.Username), esc(d.Viewer.DisplayName))
	})
}

func Sidebar(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<nav class="sidebar"><a class="brand" href="/dashboard">%s</a><ul>`, appName); err != nil {
			return err
		}
		for _, item := range NavItems(d.Profile.AccountType) {
			class := ""
			if item.Section == d.Section {
				class = ` class="active" aria-current="page"`
			}
			if err := writef(w, `<li><a href="/dashboard/%s"%s>%s</a></li>`, item.Section, class, item.Label); err != nil {
				return err
			}
		}
		return writef(w, `</ul><a class="view-site" href="/%s">View site</a>`+
			`<form method="post" action="/auth/signout"><button type="submit">Sign out</button></form></nav>`,
			esc(d.Profile.Username))
	})
}

// SectionContent picks the body for d.Section.
func SectionContent(d Dashboard) templ.Component {
	switch d.Section {
	case SectionArtworks:
		return artworksSection(d)
	case SectionArtists:
		return artistsSection(d)
	case SectionExhibitions:
		return exhibitionsSection(d)
	case SectionBilling:
		return billingSection(d)
	case SectionSettings:
		return settingsSection(d)
	default:
		return overviewSection(d)
	}
}

func overviewSection(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := d.Stats
		lastMessage := "never"
		if !s.LastMessageAt.IsZero() {
			lastMessage = humanize.RelTime(s.LastMessageAt, d.now(), "ago", "from now")
		}
		return writef(w, `<h1>Welcome back, %s</h1><dl class="stats">`+
			`<dt>Artworks</dt><dd>%s</dd>`+
			`<dt>Sold</dt><dd>%s</dd>`+
			`<dt>Available inventory</dt><dd>%s</dd>`+
			`<dt>Messages</dt><dd>%s (last %s)</dd></dl>`,
			esc(d.Profile.DisplayName),
			humanize.Comma(int64(s.ArtworkCount)),
			humanize.Comma(int64(s.SoldCount)),
			esc(FormatPrice(s.InventoryCents, "USD")),
			humanize.Comma(int64(s.MessageCount)), lastMessage)
	})
}

func artworksSection(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>Artworks</h1><form class="upload" data-upload-url="/api/upload-url">`+
			`<input type="file" accept="image/*"></form><table class="artworks"><tbody>`); err != nil {
			return err
		}
		for _, a := range d.Artworks {
			status := "Available"
			if a.Sold {
				status = "Sold"
			}
			if err := writef(w, `<tr><td>%s</td><td>%s</td><td>%s</td></tr>`,
				esc(a.Title), esc(FormatPrice(a.PriceCents, a.Currency)), status); err != nil {
				return err
			}
		}
		return writef(w, `</tbody></table>`)
	})
}

func artistsSection(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>Artists</h1><ul class="artists">`); err != nil {
			return err
		}
		for _, a := range d.Artists {
			if err := writef(w, `<li><a href="/%s">%s</a></li>`, esc(a.Username), esc(a.DisplayName)); err != nil {
				return err
			}
		}
		return writef(w, `</ul>`)
	})
}

func exhibitionsSection(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<h1>Exhibitions</h1><ul class="exhibitions">`); err != nil {
			return err
		}
		for _, e := range d.Exhibitions {
			if err := writef(w, `<li>%s <span class="dates">%s – %s</span></li>`,
				esc(e.Title), esc(e.StartsOn), esc(e.EndsOn)); err != nil {
				return err
			}
		}
		return writef(w, `</ul>`)
	})
}

func billingSection(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		status := d.Profile.SubscriptionStatus
		if status == "" {
			status = models.SubscriptionNone
		}
		if err := writef(w, `<h1>Billing</h1><p class="subscription status-%s">Subscription: %s</p>`,
			esc(status), esc(status)); err != nil {
			return err
		}
		if d.Profile.StripeCustomerID != nil {
			return writef(w, `<form method="post" action="/api/billing-portal"><button type="submit">Manage billing</button></form>`)
		}
		return writef(w, `<p>Choose a plan to start your subscription.</p>`)
	})
}

func settingsSection(d Dashboard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := d.Settings
		return writef(w, `<h1>Settings</h1><dl class="settings">`+
			`<dt>Theme</dt><dd>%s</dd><dt>Layout</dt><dd>%s</dd>`+
			`<dt>Show prices</dt><dd>%t</dd><dt>Show sold works</dt><dd>%t</dd>`+
			`<dt>Contact form</dt><dd>%t</dd></dl>`,
			esc(s.Theme), esc(s.Layout), s.ShowPrices, s.ShowSold, s.ShowContact)
	})
}

func (d Dashboard) now() time.Time {
	if d.Now.IsZero() {
		return time.Now()
	}
	return d.Now
}
