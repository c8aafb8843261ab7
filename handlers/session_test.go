// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/testutil"
)

func TestCreateSession(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(conn, cfg)

	valid := testutil.SessionToken(t, cfg, "user-1", "ada@example.com")
	expired, _ := auth.IssueSessionToken("user-1", "ada@example.com", cfg.SessionSecret, -time.Minute)
	foreign, _ := auth.IssueSessionToken("user-1", "ada@example.com", "another-secret", time.Hour)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{"valid token", models.SessionRequest{AccessToken: valid}, http.StatusOK},
		{"missing token", models.SessionRequest{}, http.StatusBadRequest},
		{"expired token", models.SessionRequest{AccessToken: expired}, http.StatusUnauthorized},
		{"wrong secret", models.SessionRequest{AccessToken: foreign}, http.StatusUnauthorized},
		{"garbage", models.SessionRequest{AccessToken: "abc.def.ghi"}, http.StatusUnauthorized},
		{"invalid JSON", "nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/auth/session", tt.body, nil)
			w := httptest.NewRecorder()
			handler.CreateSession(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			cookies := w.Result().Cookies()
			if tt.expectedStatus != http.StatusOK {
				if len(cookies) != 0 {
					t.Errorf("Expected no cookie, got %v", cookies)
				}
				return
			}

			var resp models.SessionResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.UserID != "user-1" {
				t.Errorf("Expected user-1, got %q", resp.UserID)
			}

			if len(cookies) != 1 {
				t.Fatalf("Expected 1 cookie, got %d", len(cookies))
			}
			c := cookies[0]
			if c.Name != auth.SessionCookie || c.Value != valid {
				t.Errorf("Unexpected cookie %s=%s", c.Name, c.Value)
			}
			if !c.HttpOnly || !c.Secure {
				t.Error("Session cookie should be HttpOnly and Secure on an https site")
			}
		})
	}
}

func TestCreateSession_FormPost(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewSessionHandler(conn, cfg)

	token := testutil.SessionToken(t, cfg, "user-1", "ada@example.com")
	req := testutil.MakeFormRequest("POST", "/auth/session", url.Values{"access_token": {token}}, nil)
	w := httptest.NewRecorder()
	handler.CreateSession(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestSignOut(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewSessionHandler(conn, testutil.GetTestConfig())

	t.Run("json", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/auth/signout", nil, nil)
		w := httptest.NewRecorder()
		handler.SignOut(w, req)

		testutil.AssertStatus(t, w, http.StatusNoContent)
		cleared := map[string]bool{}
		for _, c := range w.Result().Cookies() {
			if c.MaxAge < 0 {
				cleared[c.Name] = true
			}
		}
		if !cleared[auth.SessionCookie] || !cleared[auth.ImpersonateCookie] {
			t.Errorf("Expected session and impersonation cookies cleared, got %v", cleared)
		}
	})

	t.Run("form redirects home", func(t *testing.T) {
		req := testutil.MakeFormRequest("POST", "/auth/signout", url.Values{}, nil)
		w := httptest.NewRecorder()
		handler.SignOut(w, req)

		testutil.AssertRedirect(t, w, "/")
	})
}
