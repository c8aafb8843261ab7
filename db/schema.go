// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to the subset shared by PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Profiles (artists and galleries); id is the auth provider's user id
CREATE TABLE IF NOT EXISTS profile (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    email TEXT NOT NULL,
    bio TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    location TEXT NOT NULL DEFAULT '',
    website TEXT NOT NULL DEFAULT '',
    account_type TEXT NOT NULL DEFAULT 'artist' CHECK (account_type IN ('artist', 'gallery')),
    is_admin BOOLEAN NOT NULL DEFAULT FALSE,
    stripe_customer_id TEXT UNIQUE,
    subscription_status TEXT NOT NULL DEFAULT 'none',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_profile_email ON profile(email);

-- Public site settings, one row per profile
CREATE TABLE IF NOT EXISTS site_settings (
    profile_id TEXT PRIMARY KEY REFERENCES profile(id) ON DELETE CASCADE,
    theme TEXT NOT NULL DEFAULT 'light',
    layout TEXT NOT NULL DEFAULT 'grid',
    show_prices BOOLEAN NOT NULL DEFAULT FALSE,
    show_sold BOOLEAN NOT NULL DEFAULT TRUE,
    show_contact BOOLEAN NOT NULL DEFAULT TRUE,
    accent_color TEXT NOT NULL DEFAULT '',
    hero_artwork_id TEXT NOT NULL DEFAULT ''
);

-- Artworks
CREATE TABLE IF NOT EXISTS artwork (
    id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    year TEXT NOT NULL DEFAULT '',
    medium TEXT NOT NULL DEFAULT '',
    dimensions TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    image_url TEXT NOT NULL DEFAULT '',
    price_cents BIGINT NOT NULL DEFAULT 0,
    currency TEXT NOT NULL DEFAULT 'USD',
    sold BOOLEAN NOT NULL DEFAULT FALSE,
    position INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_artwork_profile_position ON artwork(profile_id, position);

-- Gallery roster: artists represented by a gallery
CREATE TABLE IF NOT EXISTS gallery_artist (
    gallery_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
    artist_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
    position INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (gallery_id, artist_id)
);

-- Exhibitions
CREATE TABLE IF NOT EXISTS exhibition (
    id TEXT PRIMARY KEY,
    gallery_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    starts_on TEXT NOT NULL,
    ends_on TEXT NOT NULL,
    location TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_exhibition_gallery ON exhibition(gallery_id, starts_on);

-- Relayed contact form messages
CREATE TABLE IF NOT EXISTS contact_message (
    id TEXT PRIMARY KEY,
    profile_id TEXT NOT NULL REFERENCES profile(id) ON DELETE CASCADE,
    sender_name TEXT NOT NULL,
    sender_email TEXT NOT NULL,
    body TEXT NOT NULL,
    provider_id TEXT NOT NULL DEFAULT '',
    ip_hash TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_contact_message_profile ON contact_message(profile_id);
`
