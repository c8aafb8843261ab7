// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/exhibitly/models"
)

var ErrNotFound = errors.New("not found")

const profileColumns = `
	id, username, display_name, email, bio, avatar_url, location, website,
	account_type, is_admin, stripe_customer_id, subscription_status`

func scanProfile(row *sql.Row) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ID, &p.Username, &p.DisplayName, &p.Email, &p.Bio, &p.AvatarURL,
		&p.Location, &p.Website, &p.AccountType, &p.IsAdmin, &p.StripeCustomerID,
		&p.SubscriptionStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to scan profile: %w", err)
	}
	return p, nil
}

// ProfileByID loads a profile by its auth provider user id.
func ProfileByID(ctx context.Context, conn *sql.DB, id string) (models.Profile, error) {
	return scanProfile(conn.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profile WHERE id = $1`, id))
}

// ProfileByUsername loads a profile by its public username.
func ProfileByUsername(ctx context.Context, conn *sql.DB, username string) (models.Profile, error) {
	return scanProfile(conn.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profile WHERE username = $1`, username))
}

// ProfileByEmail loads a profile by its contact address.
func ProfileByEmail(ctx context.Context, conn *sql.DB, email string) (models.Profile, error) {
	return scanProfile(conn.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profile WHERE LOWER(email) = LOWER($1)`, email))
}

// SiteSettings loads the display settings for a profile. Profiles that never saved
// settings get the defaults the schema would have written.
func SiteSettings(ctx context.Context, conn *sql.DB, profileID string) (models.SiteSettings, error) {
	s := models.SiteSettings{ProfileID: profileID}
	err := conn.QueryRowContext(ctx, `
		SELECT theme, layout, show_prices, show_sold, show_contact, accent_color, hero_artwork_id
		FROM site_settings
		WHERE profile_id = $1
	`, profileID).Scan(&s.Theme, &s.Layout, &s.ShowPrices, &s.ShowSold, &s.ShowContact,
		&s.AccentColor, &s.HeroArtworkID)

	if errors.Is(err, sql.ErrNoRows) {
		s.Theme = "light"
		s.Layout = "grid"
		s.ShowSold = true
		s.ShowContact = true
		return s, nil
	}
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("failed to query site settings: %w", err)
	}
	return s, nil
}

// Artworks lists a profile's artworks in display order.
func Artworks(ctx context.Context, conn *sql.DB, profileID string) ([]models.Artwork, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, profile_id, title, year, medium, dimensions, description,
		       image_url, price_cents, currency, sold, position
		FROM artwork
		WHERE profile_id = $1
		ORDER BY position, id
	`, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	defer rows.Close()

	artworks := []models.Artwork{}
	for rows.Next() {
		var a models.Artwork
		if err := rows.Scan(&a.ID, &a.ProfileID, &a.Title, &a.Year, &a.Medium, &a.Dimensions,
			&a.Description, &a.ImageURL, &a.PriceCents, &a.Currency, &a.Sold, &a.Position); err != nil {
			return nil, fmt.Errorf("failed to scan artwork: %w", err)
		}
		artworks = append(artworks, a)
	}
	return artworks, rows.Err()
}

// GalleryArtists lists the artist profiles represented by a gallery.
func GalleryArtists(ctx context.Context, conn *sql.DB, galleryID string) ([]models.Profile, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT p.id, p.username, p.display_name, p.bio, p.avatar_url, p.location, p.account_type
		FROM gallery_artist ga
		JOIN profile p ON p.id = ga.artist_id
		WHERE ga.gallery_id = $1
		ORDER BY ga.position, p.display_name
	`, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gallery artists: %w", err)
	}
	defer rows.Close()

	artists := []models.Profile{}
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Username, &p.DisplayName, &p.Bio, &p.AvatarURL,
			&p.Location, &p.AccountType); err != nil {
			return nil, fmt.Errorf("failed to scan gallery artist: %w", err)
		}
		artists = append(artists, p)
	}
	return artists, rows.Err()
}

// Exhibitions lists a gallery's exhibitions, most recent first.
func Exhibitions(ctx context.Context, conn *sql.DB, galleryID string) ([]models.Exhibition, error) {
	rows, err := conn.QueryContext(ctx, `
		SELECT id, gallery_id, title, description, starts_on, ends_on, location
		FROM exhibition
		WHERE gallery_id = $1
		ORDER BY starts_on DESC
	`, galleryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exhibitions: %w", err)
	}
	defer rows.Close()

	exhibitions := []models.Exhibition{}
	for rows.Next() {
		var e models.Exhibition
		if err := rows.Scan(&e.ID, &e.GalleryID, &e.Title, &e.Description, &e.StartsOn,
			&e.EndsOn, &e.Location); err != nil {
			return nil, fmt.Errorf("failed to scan exhibition: %w", err)
		}
		exhibitions = append(exhibitions, e)
	}
	return exhibitions, rows.Err()
}
