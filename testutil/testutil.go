// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/cliparse"
	"github.com/danielhkuo/exhibitly/db"
	"github.com/danielhkuo/exhibitly/models"
)

// TestDBURL is an in-memory SQLite database; each SetupTestDB call gets its own.
const TestDBURL = "file::memory:?_time_format=sqlite"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                3318,
		DatabaseURL:         TestDBURL,
		DatabaseType:        "sqlite",
		SessionSecret:       "test-session-secret",
		IPHashSalt:          "test-ip-salt",
		SiteURL:             "https://exhibitly.test",
		LoginURL:            "/login",
		ContactFromAddress:  "Exhibitly <contact@exhibitly.test>",
		UploadBucket:        "exhibitly-test",
		UploadRegion:        "us-east-1",
		UploadPublicBaseURL: "https://cdn.exhibitly.test",
		UploadURLExpiry:     15 * time.Minute,
	}
}

// CreateTestProfile inserts a profile and returns it.
// accountType should be models.AccountArtist or models.AccountGallery.
func CreateTestProfile(t *testing.T, conn *sql.DB, username, accountType string) models.Profile {
	t.Helper()

	p := models.Profile{
		ID:                 uuid.NewString(),
		Username:           username,
		DisplayName:        strings.ToUpper(username[:1]) + username[1:],
		Email:              username + "@example.com",
		AccountType:        accountType,
		SubscriptionStatus: models.SubscriptionNone,
	}
	_, err := conn.Exec(`
		INSERT INTO profile (id, username, display_name, email, account_type)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Username, p.DisplayName, p.Email, p.AccountType)
	if err != nil {
		t.Fatalf("Failed to create test profile: %v", err)
	}

	return p
}

// MakeAdmin grants the admin flag to a profile
func MakeAdmin(t *testing.T, conn *sql.DB, profileID string) {
	t.Helper()

	if _, err := conn.Exec(`UPDATE profile SET is_admin = TRUE WHERE id = $1`, profileID); err != nil {
		t.Fatalf("Failed to make admin: %v", err)
	}
}

// SetTestCustomer links a billing customer to a profile
func SetTestCustomer(t *testing.T, conn *sql.DB, profileID, customerID string) {
	t.Helper()

	_, err := conn.Exec(`
		UPDATE profile SET stripe_customer_id = $1, subscription_status = $2 WHERE id = $3
	`, customerID, models.SubscriptionActive, profileID)
	if err != nil {
		t.Fatalf("Failed to set test customer: %v", err)
	}
}

// SetTestSettings stores site settings for a profile
func SetTestSettings(t *testing.T, conn *sql.DB, s models.SiteSettings) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO site_settings (profile_id, theme, layout, show_prices, show_sold, show_contact, accent_color, hero_artwork_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, s.ProfileID, s.Theme, s.Layout, s.ShowPrices, s.ShowSold, s.ShowContact, s.AccentColor, s.HeroArtworkID)
	if err != nil {
		t.Fatalf("Failed to set test settings: %v", err)
	}
}

// AddTestArtwork adds an artwork at the given position and returns its ID
func AddTestArtwork(t *testing.T, conn *sql.DB, profileID, title string, position int, priceCents int64, sold bool) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO artwork (id, profile_id, title, price_cents, currency, sold, position)
		VALUES ($1, $2, $3, $4, 'USD', $5, $6)
	`, id, profileID, title, priceCents, sold, position)
	if err != nil {
		t.Fatalf("Failed to create test artwork: %v", err)
	}

	return id
}

// AddTestGalleryArtist adds an artist to a gallery's roster
func AddTestGalleryArtist(t *testing.T, conn *sql.DB, galleryID, artistID string, position int) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO gallery_artist (gallery_id, artist_id, position) VALUES ($1, $2, $3)
	`, galleryID, artistID, position)
	if err != nil {
		t.Fatalf("Failed to add gallery artist: %v", err)
	}
}

// AddTestExhibition adds an exhibition to a gallery and returns its ID
func AddTestExhibition(t *testing.T, conn *sql.DB, galleryID, title, startsOn, endsOn string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO exhibition (id, gallery_id, title, starts_on, ends_on) VALUES ($1, $2, $3, $4, $5)
	`, id, galleryID, title, startsOn, endsOn)
	if err != nil {
		t.Fatalf("Failed to create test exhibition: %v", err)
	}

	return id
}

// SessionToken issues a session token for a user id
func SessionToken(t *testing.T, cfg cliparse.Config, userID, email string) string {
	t.Helper()

	token, err := auth.IssueSessionToken(userID, email, cfg.SessionSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return token
}

// BearerHeader returns request headers carrying a session token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates an HTML form post
func MakeFormRequest(method, path string, form url.Values, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertRedirect checks for a 303 to the expected location
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	AssertStatus(t, w, http.StatusSeeOther)
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
