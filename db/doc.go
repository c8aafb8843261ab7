// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the shared profile queries.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL runs unchanged on PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - profile: Artist or gallery identity, account type, Stripe customer link
  - site_settings: Public portfolio display configuration
  - artwork: Inventory per profile, ordered by position
  - gallery_artist: Artists represented by a gallery
  - exhibition: Gallery exhibitions
  - contact_message: Contact form submissions relayed by email

# Relationships

	profile 1──1 site_settings
	profile 1──* artwork
	profile *──* profile (via gallery_artist)
	profile 1──* exhibition
	profile 1──* contact_message

All foreign keys use ON DELETE CASCADE.

# Queries

Profile lookups used by several handlers live here:

	p, err := db.ProfileByID(ctx, conn, userID)
	p, err := db.ProfileByUsername(ctx, conn, "ada")

Both return ErrNotFound when no row matches.
*/
package db
