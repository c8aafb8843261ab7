// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/exhibitly/auth"
	"github.com/danielhkuo/exhibitly/models"
	"github.com/danielhkuo/exhibitly/testutil"
)

func TestSendMessage(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)

	tests := []struct {
		name           string
		form           models.ContactForm
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid",
			form:           models.ContactForm{Recipient: profile.Email, Name: "Grace", Email: "grace@example.com", Message: "Is the blue study available?"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "recipient matched case-insensitively",
			form:           models.ContactForm{Recipient: strings.ToUpper(profile.Email), Message: "Hello"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "recipient by username",
			form:           models.ContactForm{Recipient: profile.Username, Message: "Hello"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown username",
			form:           models.ContactForm{Recipient: "nobody", Message: "Hello"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "reserved username",
			form:           models.ContactForm{Recipient: "dashboard", Message: "Hello"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing recipient",
			form:           models.ContactForm{Name: "Grace", Email: "grace@example.com", Message: "Hello"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "recipient is required",
		},
		{
			name:           "invalid recipient",
			form:           models.ContactForm{Recipient: "ada@", Message: "Hello"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid sender",
			form:           models.ContactForm{Recipient: profile.Email, Email: "nope", Message: "Hello"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing message",
			form:           models.ContactForm{Recipient: profile.Email},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unregistered recipient",
			form:           models.ContactForm{Recipient: "someone@elsewhere.com", Message: "Hello"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &testutil.FakeMailer{}
			handler := NewContactHandler(conn, cfg, mailer)

			req := testutil.MakeRequest("POST", "/api/contact", tt.form, map[string]string{"X-Forwarded-For": "203.0.113.9"})
			w := httptest.NewRecorder()
			handler.SendMessage(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				if len(mailer.Sent) != 0 {
					t.Error("No email should be sent for a rejected submission")
				}
				if tt.expectedError != "" {
					var resp models.ErrorResponse
					testutil.AssertJSON(t, w, &resp)
					if resp.Message != tt.expectedError {
						t.Errorf("Expected message %q, got %q", tt.expectedError, resp.Message)
					}
				}
				return
			}

			var resp models.ContactResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Status != "sent" || resp.MessageID == "" {
				t.Errorf("Unexpected response %+v", resp)
			}

			if len(mailer.Sent) != 1 {
				t.Fatalf("Expected 1 email, got %d", len(mailer.Sent))
			}
			if got := mailer.Sent[0].To; len(got) != 1 || got[0] != profile.Email {
				t.Errorf("Expected email to %s, got %v", profile.Email, got)
			}
			if mailer.Sent[0].From != cfg.ContactFromAddress {
				t.Errorf("Expected from %q, got %q", cfg.ContactFromAddress, mailer.Sent[0].From)
			}

			var profileID, providerID, ipHash string
			err := conn.QueryRow(`
				SELECT profile_id, provider_id, ip_hash FROM contact_message WHERE id = $1
			`, resp.MessageID).Scan(&profileID, &providerID, &ipHash)
			if err != nil {
				t.Fatalf("Failed to load stored message: %v", err)
			}
			if profileID != profile.ID {
				t.Errorf("Expected message stored for %s, got %s", profile.ID, profileID)
			}
			if providerID != "email_test_123" {
				t.Errorf("Expected provider id email_test_123, got %q", providerID)
			}
			if ipHash != auth.HashIP("203.0.113.9", cfg.IPHashSalt) {
				t.Error("Expected salted hash of the client IP")
			}
		})
	}
}

func TestSendMessage_FormPostRedirects(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)
	handler := NewContactHandler(conn, cfg, &testutil.FakeMailer{})

	form := url.Values{
		"recipient": {profile.Username},
		"name":      {"Grace"},
		"message":   {"Hello from the form"},
	}
	req := testutil.MakeFormRequest("POST", "/api/contact", form, nil)
	w := httptest.NewRecorder()
	handler.SendMessage(w, req)

	testutil.AssertRedirect(t, w, "/ada?contact=sent")
}

func TestSendMessage_FormPostMissingRecipient(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewContactHandler(conn, testutil.GetTestConfig(), &testutil.FakeMailer{})

	req := testutil.MakeFormRequest("POST", "/api/contact", url.Values{"message": {"Hello"}}, nil)
	w := httptest.NewRecorder()
	handler.SendMessage(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestSendMessage_ProviderFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	profile := testutil.CreateTestProfile(t, conn, "ada", models.AccountArtist)
	handler := NewContactHandler(conn, cfg, &testutil.FakeMailer{Err: errors.New("resend: 500")})

	req := testutil.MakeRequest("POST", "/api/contact",
		models.ContactForm{Recipient: profile.Email, Message: "Hello"}, nil)
	w := httptest.NewRecorder()
	handler.SendMessage(w, req)

	testutil.AssertStatus(t, w, http.StatusBadGateway)

	var count int
	conn.QueryRow(`SELECT COUNT(*) FROM contact_message`).Scan(&count)
	if count != 0 {
		t.Errorf("Expected no stored messages, got %d", count)
	}
}
