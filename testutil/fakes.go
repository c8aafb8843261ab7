// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/danielhkuo/exhibitly/billing"
	"github.com/danielhkuo/exhibitly/mail"
)

// FakeBilling records calls and returns canned sessions and events
type FakeBilling struct {
	mu sync.Mutex

	Err      error
	Event    *billing.Event
	Checkout []billing.CheckoutParams
	Portal   []string // customer ids
}

func (f *FakeBilling) CreateCheckoutSession(ctx context.Context, p billing.CheckoutParams) (*billing.CheckoutSession, error) {
	if err := p.Normalize(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, &billing.Error{Op: "checkout", Err: f.Err}
	}
	f.Checkout = append(f.Checkout, p)
	return &billing.CheckoutSession{ID: "cs_test_123", URL: "https://checkout.stripe.test/cs_test_123"}, nil
}

func (f *FakeBilling) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*billing.PortalSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, &billing.Error{Op: "portal", Err: f.Err}
	}
	f.Portal = append(f.Portal, customerID)
	return &billing.PortalSession{ID: "bps_test_123", URL: "https://billing.stripe.test/p/session"}, nil
}

// ParseWebhook accepts the signature "valid" only
func (f *FakeBilling) ParseWebhook(payload []byte, signature string) (*billing.Event, error) {
	if signature != "valid" {
		return nil, billing.ErrBadSignature
	}
	return f.Event, nil
}

// FakeMailer records sent messages
type FakeMailer struct {
	mu sync.Mutex

	Err  error
	Sent []mail.Message
}

func (f *FakeMailer) Send(ctx context.Context, msg mail.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	f.Sent = append(f.Sent, msg)
	return "email_test_123", nil
}

// FakePresigner signs nothing; it echoes the key into a predictable URL
type FakePresigner struct {
	Err error
}

func (f *FakePresigner) PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return &v4.PresignedHTTPRequest{
		URL:    "https://uploads.exhibitly.test/" + aws.ToString(params.Key) + "?X-Amz-Signature=test",
		Method: http.MethodPut,
		SignedHeader: http.Header{
			"Host":         []string{"uploads.exhibitly.test"},
			"Content-Type": []string{aws.ToString(params.ContentType)},
		},
	}, nil
}
