// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/testutil"
)

func TestCreateSchemaIsIdempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	// SetupTestDB already ran it once
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestProfileLookups(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	ctx := context.Background()

	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)

	byID, err := db.ProfileByID(ctx, conn, profile.ID)
	if err != nil {
		t.Fatalf("ProfileByID failed: %v", err)
	}
	if byID.Username != "ada" {
		t.Errorf("Expected username ada, got %s", byID.Username)
	}

	byEmail, err := db.ProfileByEmail(ctx, conn, "ADA@Example.com")
	if err != nil {
		t.Fatalf("ProfileByEmail failed: %v", err)
	}
	if byEmail.ID != profile.ID {
		t.Errorf("Expected email lookup to ignore case")
	}

	if _, err := db.ProfileByUsername(ctx, conn, "nobody"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestSiteSettingsDefaults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)

	s, err := db.SiteSettings(context.Background(), conn, profile.ID)
	if err != nil {
		t.Fatalf("SiteSettings failed: %v", err)
	}
	if s.Theme != "light" || s.Layout != "grid" {
		t.Errorf("Expected light/grid defaults, got %s/%s", s.Theme, s.Layout)
	}
	if s.ShowPrices || !s.ShowSold || !s.ShowContact {
		t.Errorf("Unexpected default toggles: %+v", s)
	}
}

func TestArtworksOrderedByPosition(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)
	testutil.AddTestArtwork(t, conn, profile.ID, "Third", 2, 0, false)
	testutil.AddTestArtwork(t, conn, profile.ID, "First", 0, 0, false)
	testutil.AddTestArtwork(t, conn, profile.ID, "Second", 1, 0, false)

	artworks, err := db.Artworks(context.Background(), conn, profile.ID)
	if err != nil {
		t.Fatalf("Artworks failed: %v", err)
	}
	want := []string{"First", "Second", "Third"}
	if len(artworks) != len(want) {
		t.Fatalf("Expected %d artworks, got %d", len(want), len(artworks))
	}
	for i, title := range want {
		if artworks[i].Title != title {
			t.Errorf("Position %d: expected %s, got %s", i, title, artworks[i].Title)
		}
	}
}

func TestSubscriptionUpdates(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	ctx := context.Background()

	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)

	if err := db.LinkStripeCustomer(ctx, conn, profile.ID, "cus_1", models.SubscriptionActive); err != nil {
		t.Fatalf("LinkStripeCustomer failed: %v", err)
	}
	if err := db.UpdateSubscriptionStatus(ctx, conn, "cus_1", models.SubscriptionCanceled); err != nil {
		t.Fatalf("UpdateSubscriptionStatus failed: %v", err)
	}

	p, err := db.ProfileByID(ctx, conn, profile.ID)
	if err != nil {
		t.Fatalf("ProfileByID failed: %v", err)
	}
	if p.StripeCustomerID == nil || *p.StripeCustomerID != "cus_1" || p.SubscriptionStatus != models.SubscriptionCanceled {
		t.Errorf("Unexpected billing state: %v/%v", p.StripeCustomerID, p.SubscriptionStatus)
	}

	// Unknown rows are reported, not silently ignored
	if err := db.UpdateSubscriptionStatus(ctx, conn, "cus_missing", models.SubscriptionActive); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown customer, got %v", err)
	}
	if err := db.LinkStripeCustomer(ctx, conn, "missing", "cus_2", models.SubscriptionActive); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown profile, got %v", err)
	}
}

func TestStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	ctx := context.Background()

	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)

	s, err := db.Stats(ctx, conn, profile.ID)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if s.ArtworkCount != 0 || s.MessageCount != 0 || !s.LastMessageAt.IsZero() {
		t.Errorf("Expected empty stats, got %+v", s)
	}

	testutil.AddTestArtwork(t, conn, profile.ID, "Blue Study", 0, 120000, false)
	testutil.AddTestArtwork(t, conn, profile.ID, "Red Study", 1, 80000, true)
	err = db.InsertContactMessage(ctx, conn, db.ContactMessage{
		ID:          "msg-1",
		ProfileID:   profile.ID,
		SenderName:  "Grace",
		SenderEmail: "grace@example.com",
		Body:        "Is Blue Study available?",
		ProviderID:  "email_1",
		IPHash:      "abc",
	})
	if err != nil {
		t.Fatalf("InsertContactMessage failed: %v", err)
	}

	s, err = db.Stats(ctx, conn, profile.ID)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if s.ArtworkCount != 2 || s.SoldCount != 1 {
		t.Errorf("Expected 2 artworks with 1 sold, got %d/%d", s.ArtworkCount, s.SoldCount)
	}
	if s.InventoryCents != 120000 {
		t.Errorf("Expected unsold inventory 120000, got %d", s.InventoryCents)
	}
	if s.MessageCount != 1 || s.LastMessageAt.IsZero() {
		t.Errorf("Expected one message with a timestamp, got %+v", s)
	}
}
