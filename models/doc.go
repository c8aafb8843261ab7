// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the server.

# Request Types

Types for parsing incoming JSON and forms:

  - CheckoutRequest: price_id, quantity, mode
  - UploadURLRequest: filename, content_type, size
  - SessionRequest: access_token
  - ContactForm: recipient, name, email, message (form fields)

# Response Types

  - CheckoutResponse: session_id, url
  - PortalResponse: url
  - UploadURLResponse: upload_url, method, headers, key, public_url, expires_at
  - ContactResponse: message_id, status
  - WebhookResponse: received
  - ErrorResponse: error, message

# Domain Types

  - Profile: artist or gallery identity, account type, billing link
  - SiteSettings: theme and layout toggles for the public portfolio
  - Artwork: one piece of inventory, ordered by position
  - Exhibition: gallery exhibition listing

# Constants

Account types:

	AccountArtist  = "artist"
	AccountGallery = "gallery"

Subscription status:

	SubscriptionNone, SubscriptionActive, SubscriptionPastDue, SubscriptionCanceled

Gallery views:

	ViewWorks, ViewArtists, ViewExhibitions
*/
package models
