// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/viewmodel"
)

// PortfolioPage is the public portfolio body. Every part reads the portfolio
// provided by viewmodel.ProvideComponent; none takes it as a parameter.
func PortfolioPage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}

		if err := writef(w, `<div class="portfolio theme-%s layout-%s">`,
			esc(vm.Theme), esc(vm.Settings.Layout)); err != nil {
			return err
		}

		parts := []templ.Component{ProfileHeader()}
		if vm.Profile.IsGallery() {
			parts = append(parts, GalleryNav())
		}
		switch vm.View {
		case models.ViewArtists:
			parts = append(parts, ArtistList())
		case models.ViewExhibitions:
			parts = append(parts, ExhibitionList())
		default:
			parts = append(parts, ArtworkDetail(), ArtworkGrid())
		}
		if vm.Settings.ShowContact {
			parts = append(parts, ContactForm())
		}
		if err := renderAll(ctx, w, parts...); err != nil {
			return err
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

func ProfileHeader() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}
		p := vm.Profile

		if err := writef(w, `<header class="profile-header">`); err != nil {
			return err
		}
		if p.AvatarURL != "" {
			if err := writef(w, `<img class="avatar" src="%s" alt="%s">`, href(p.AvatarURL), esc(p.DisplayName)); err != nil {
				return err
			}
		}
		if err := writef(w, `<h1><a href="/%s">%s</a></h1>`, esc(p.Username), esc(p.DisplayName)); err != nil {
			return err
		}
		if p.Location != "" {
			if err := writef(w, `<p class="location">%s</p>`, esc(p.Location)); err != nil {
				return err
			}
		}
		if p.Bio != "" {
			if err := writef(w, `<p class="bio">%s</p>`, esc(p.Bio)); err != nil {
				return err
			}
		}
		if p.Website != "" {
			if err := writef(w, `<a class="website" href="%s" rel="noopener">%s</a>`, href(p.Website), esc(p.Website)); err != nil {
				return err
			}
		}
		return writef(w, `</header>`)
	})
}

// GalleryNav switches between the gallery views.
func GalleryNav() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}

		if err := writef(w, `<nav class="gallery-nav">`); err != nil {
			return err
		}
		for _, item := range []struct{ view, label string }{
			{models.ViewWorks, "Works"},
			{models.ViewArtists, "Artists"},
			{models.ViewExhibitions, "Exhibitions"},
		} {
			class := ""
			if vm.View == item.view || (vm.View == "" && item.view == models.ViewWorks) {
				class = ` class="active"`
			}
			if err := writef(w, `<a href="/%s?view=%s"%s>%s</a>`,
				esc(vm.Profile.Username), item.view, class, item.label); err != nil {
				return err
			}
		}
		return writef(w, `</nav>`)
	})
}

func ArtworkGrid() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}

		visible := 0
		if err := writef(w, `<section class="artwork-grid">`); err != nil {
			return err
		}
		for _, a := range vm.Artworks {
			if a.Sold && !vm.Settings.ShowSold {
				continue
			}
			visible++
			if err := ArtworkCard(a).Render(ctx, w); err != nil {
				return err
			}
		}
		if visible == 0 {
			if err := writef(w, `<p class="empty">No works yet.</p>`); err != nil {
				return err
			}
		}
		return writef(w, `</section>`)
	})
}

func ArtworkCard(a models.Artwork) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}

		class := "artwork-card"
		if vm.IsSelected(a.ID) {
			class += " selected"
		}
		if err := writef(w, `<article class="%s" id="artwork-%s"><a href="/%s/artworks/%s">`,
			class, esc(a.ID), esc(vm.Profile.Username), esc(a.ID)); err != nil {
			return err
		}
		if a.ImageURL != "" {
			if err := writef(w, `<img src="%s" alt="%s" loading="lazy">`, href(a.ImageURL), esc(a.Title)); err != nil {
				return err
			}
		}
		if err := writef(w, `<h3>%s</h3></a>`, esc(a.Title)); err != nil {
			return err
		}
		if err := PriceTag(a).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `</article>`)
	})
}

// PriceTag shows "Sold" or the price, depending on the site settings.
func PriceTag(a models.Artwork) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}
		switch {
		case a.Sold:
			return writef(w, `<span class="sold">Sold</span>`)
		case vm.Settings.ShowPrices && a.PriceCents > 0:
			return writef(w, `<span class="price">%s</span>`, esc(FormatPrice(a.PriceCents, a.Currency)))
		default:
			return nil
		}
	})
}

// ArtworkDetail renders the focused artwork, or nothing when none is selected.
func ArtworkDetail() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}
		a, ok := vm.Selected()
		if !ok {
			return nil
		}

		if err := writef(w, `<section class="artwork-detail" data-artwork="%s">`, esc(a.ID)); err != nil {
			return err
		}
		if a.ImageURL != "" {
			if err := writef(w, `<img src="%s" alt="%s">`, href(a.ImageURL), esc(a.Title)); err != nil {
				return err
			}
		}
		if err := writef(w, `<h2>%s</h2><dl>`, esc(a.Title)); err != nil {
			return err
		}
		for _, field := range []struct{ label, value string }{
			{"Year", a.Year},
			{"Medium", a.Medium},
			{"Dimensions", a.Dimensions},
		} {
			if field.value == "" {
				continue
			}
			if err := writef(w, `<dt>%s</dt><dd>%s</dd>`, field.label, esc(field.value)); err != nil {
				return err
			}
		}
		if err := writef(w, `</dl>`); err != nil {
			return err
		}
		if a.Description != "" {
			if err := writef(w, `<p>%s</p>`, esc(a.Description)); err != nil {
				return err
			}
		}
		if err := PriceTag(a).Render(ctx, w); err != nil {
			return err
		}
		return writef(w, `<a class="close" href="/%s">Close</a></section>`, esc(vm.Profile.Username))
	})
}

func ArtistList() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}

		if err := writef(w, `<section class="artist-list"><h2>Artists</h2><ul>`); err != nil {
			return err
		}
		for _, artist := range vm.Artists {
			if err := writef(w, `<li><a href="/%s">%s</a></li>`, esc(artist.Username), esc(artist.DisplayName)); err != nil {
				return err
			}
		}
		if len(vm.Artists) == 0 {
			if err := writef(w, `<li class="empty">No represented artists yet.</li>`); err != nil {
				return err
			}
		}
		return writef(w, `</ul></section>`)
	})
}

func ExhibitionList() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}

		if err := writef(w, `<section class="exhibition-list"><h2>Exhibitions</h2>`); err != nil {
			return err
		}
		for _, e := range vm.Exhibitions {
			if err := writef(w, `<article class="exhibition"><h3>%s</h3><p class="dates">%s – %s</p>`,
				esc(e.Title), esc(e.StartsOn), esc(e.EndsOn)); err != nil {
				return err
			}
			if e.Location != "" {
				if err := writef(w, `<p class="location">%s</p>`, esc(e.Location)); err != nil {
					return err
				}
			}
			if e.Description != "" {
				if err := writef(w, `<p>%s</p>`, esc(e.Description)); err != nil {
					return err
				}
			}
			if err := writef(w, `</article>`); err != nil {
				return err
			}
		}
		if len(vm.Exhibitions) == 0 {
			if err := writef(w, `<p class="empty">No exhibitions yet.</p>`); err != nil {
				return err
			}
		}
		return writef(w, `</section>`)
	})
}

// ContactForm posts to the contact relay. The recipient is the username; the
// relay looks up the address.
func ContactForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		vm, err := viewmodel.FromContext(ctx)
		if err != nil {
			return err
		}
		return writef(w, `<section class="contact"><h2>Contact %s</h2>`+
			`<form method="post" action="/api/contact">`+
			`<input type="hidden" name="recipient" value="%s">`+
			`<label>Name <input name="name"></label>`+
			`<label>Email <input type="email" name="email"></label>`+
			`<label>Message <textarea name="message" required></textarea></label>`+
			`<button type="submit">Send</button></form></section>`,
			esc(vm.Profile.DisplayName), esc(vm.Profile.Username))
	})
}
