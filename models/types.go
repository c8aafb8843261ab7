// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Account type constants
const (
	AccountArtist  = "artist"
	AccountGallery = "gallery"
)

// Subscription status constants (mirrors Stripe subscription statuses we care about)
const (
	SubscriptionNone     = "none"
	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// Checkout modes
const (
	CheckoutModeSubscription = "subscription"
	CheckoutModePayment      = "payment"
)

// Gallery portfolio views
const (
	ViewWorks       = "works"
	ViewArtists     = "artists"
	ViewExhibitions = "exhibitions"
)

// Request types

type CheckoutRequest struct {
	PriceID  string `json:"price_id"`
	Quantity int64  `json:"quantity"`
	Mode     string `json:"mode"`
}

type UploadURLRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type SessionRequest struct {
	AccessToken string `json:"access_token"`
}

// ContactForm is the set of fields submitted by the public contact form.
type ContactForm struct {
	Recipient string `json:"recipient"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

// Response types

type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type PortalResponse struct {
	URL string `json:"url"`
}

type UploadURLResponse struct {
	UploadURL string            `json:"upload_url"`
	Method    string            `json:"method"`
	Headers   map[string]string `json:"headers"`
	Key       string            `json:"key"`
	PublicURL string            `json:"public_url,omitempty"`
	ExpiresAt time.Time         `json:"expires_at"`
}

type ContactResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}

type SessionResponse struct {
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type WebhookResponse struct {
	Received bool `json:"received"`
}

// Domain types

type Profile struct {
	ID                 string  `json:"id"`
	Username           string  `json:"username"`
	DisplayName        string  `json:"display_name"`
	Email              string  `json:"-"` // Contact address, never rendered
	Bio                string  `json:"bio"`
	AvatarURL          string  `json:"avatar_url"`
	Location           string  `json:"location"`
	Website            string  `json:"website"`
	AccountType        string  `json:"account_type"`
	IsAdmin            bool    `json:"-"`
	StripeCustomerID   *string `json:"-"`
	SubscriptionStatus string  `json:"subscription_status"`
}

// IsGallery reports whether the profile belongs to a multi-artist gallery.
func (p Profile) IsGallery() bool {
	return p.AccountType == AccountGallery
}

type SiteSettings struct {
	ProfileID     string `json:"profile_id"`
	Theme         string `json:"theme"`
	Layout        string `json:"layout"` // grid, masonry, list
	ShowPrices    bool   `json:"show_prices"`
	ShowSold      bool   `json:"show_sold"`
	ShowContact   bool   `json:"show_contact"`
	AccentColor   string `json:"accent_color"`
	HeroArtworkID string `json:"hero_artwork_id,omitempty"`
}

type Artwork struct {
	ID          string `json:"id"`
	ProfileID   string `json:"profile_id"`
	Title       string `json:"title"`
	Year        string `json:"year,omitempty"`
	Medium      string `json:"medium,omitempty"`
	Dimensions  string `json:"dimensions,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	Sold        bool   `json:"sold"`
	Position    int    `json:"position"`
}

type Exhibition struct {
	ID          string `json:"id"`
	GalleryID   string `json:"gallery_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartsOn    string `json:"starts_on"` // YYYY-MM-DD
	EndsOn      string `json:"ends_on"`
	Location    string `json:"location,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
