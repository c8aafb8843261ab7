// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

const testWebhookSecret = "whsec_test"

// newTestStripe points the Stripe client at a local server.
func newTestStripe(t *testing.T, handler http.HandlerFunc) *Stripe {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripe("sk_test_123", testWebhookSecret, &stripe.Backends{API: backend})
}

func TestStripeCreateCheckoutSession(t *testing.T) {
	var form map[string]string
	s := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/checkout/sessions", r.URL.Path)
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"cs_test_1","object":"checkout.session","url":"https://checkout.stripe.com/c/pay/cs_test_1"}`)
	})

	cs, err := s.CreateCheckoutSession(context.Background(), CheckoutParams{
		PriceID:           "price_123",
		Quantity:          2,
		CustomerID:        "cus_1",
		ClientReferenceID: "user-1",
		SuccessURL:        "https://exhibitly.test/dashboard/billing?checkout=success",
		CancelURL:         "https://exhibitly.test/pricing",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", cs.ID)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_1", cs.URL)

	assert.Equal(t, "subscription", form["mode"])
	assert.Equal(t, "price_123", form["line_items[0][price]"])
	assert.Equal(t, "2", form["line_items[0][quantity]"])
	assert.Equal(t, "cus_1", form["customer"])
	assert.Equal(t, "user-1", form["client_reference_id"])
}

func TestStripeCreateCheckoutSession_ValidatesBeforeCalling(t *testing.T) {
	called := false
	s := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := s.CreateCheckoutSession(context.Background(), CheckoutParams{})
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.False(t, called)
}

func TestStripeCreateCheckoutSession_ProviderError(t *testing.T) {
	s := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"type":"invalid_request_error","message":"No such price: 'price_x'"}}`)
	})

	_, err := s.CreateCheckoutSession(context.Background(), CheckoutParams{PriceID: "price_x"})
	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "checkout", be.Op)
}

func TestStripeCreatePortalSession(t *testing.T) {
	s := newTestStripe(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "/v1/billing_portal/sessions", r.URL.Path)
		assert.Equal(t, "cus_9", r.PostForm.Get("customer"))
		assert.Equal(t, "https://exhibitly.test/dashboard/billing", r.PostForm.Get("return_url"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"bps_1","object":"billing_portal.session","url":"https://billing.stripe.com/p/session/bps_1"}`)
	})

	ps, err := s.CreatePortalSession(context.Background(), "cus_9", "https://exhibitly.test/dashboard/billing")
	require.NoError(t, err)
	assert.Equal(t, "https://billing.stripe.com/p/session/bps_1", ps.URL)

	_, err = s.CreatePortalSession(context.Background(), "", "https://exhibitly.test")
	assert.ErrorIs(t, err, ErrNoCustomer)
}

func signPayload(payload []byte, secret string, ts time.Time) string {
	unix := strconv.FormatInt(ts.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(unix))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "t=" + unix + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestStripeParseWebhook(t *testing.T) {
	s := NewStripe("sk_test_123", testWebhookSecret, nil)

	tests := []struct {
		name    string
		payload string
		want    Event
	}{
		{
			name: "checkout completed",
			payload: `{"id":"evt_1","object":"event","type":"checkout.session.completed",
				"data":{"object":{"id":"cs_1","object":"checkout.session","customer":"cus_1","client_reference_id":"user-1"}}}`,
			want: Event{ID: "evt_1", Type: EventCheckoutCompleted, CustomerID: "cus_1", ClientReferenceID: "user-1"},
		},
		{
			name: "subscription updated",
			payload: `{"id":"evt_2","object":"event","type":"customer.subscription.updated",
				"data":{"object":{"id":"sub_1","object":"subscription","customer":"cus_1","status":"past_due"}}}`,
			want: Event{ID: "evt_2", Type: EventSubscriptionUpdated, CustomerID: "cus_1", SubscriptionStatus: "past_due"},
		},
		{
			name: "unhandled type",
			payload: `{"id":"evt_3","object":"event","type":"invoice.paid",
				"data":{"object":{"id":"in_1","object":"invoice"}}}`,
			want: Event{ID: "evt_3", Type: "invoice.paid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := []byte(tt.payload)
			evt, err := s.ParseWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))
			require.NoError(t, err)
			assert.Equal(t, tt.want, *evt)
		})
	}
}

func TestStripeParseWebhook_BadSignature(t *testing.T) {
	s := NewStripe("sk_test_123", testWebhookSecret, nil)
	payload := []byte(`{"id":"evt_1","object":"event","type":"invoice.paid"}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"missing", ""},
		{"wrong secret", signPayload(payload, "whsec_other", time.Now())},
		{"stale timestamp", signPayload(payload, testWebhookSecret, time.Now().Add(-time.Hour))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ParseWebhook(payload, tt.signature)
			assert.ErrorIs(t, err, ErrBadSignature)
		})
	}
}
