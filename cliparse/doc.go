// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Environment variables are read first (struct tags, caarlos0/env), then CLI
flags override them. main loads a .env file before calling ParseFlags.

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - SessionSecret: HS256 secret of the auth provider's access tokens (required)
  - IPHashSalt: Salt for hashing contact form IPs (required)
  - SiteURL, LoginURL: Public base URL and login redirect target
  - StripeSecretKey, StripeWebhookSecret: Billing
  - ResendAPIKey, ContactFromAddress: Email relay
  - UploadBucket, UploadRegion, UploadEndpoint, UploadPublicBaseURL,
    UploadURLExpiry: Object storage for artwork images

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	--site-url        Public base URL
	--session-secret  Session JWT secret
	--ip-salt         IP hash salt

# Environment Variables

	PORT, DATABASE_URL, DATABASE_TYPE, SITE_URL, LOGIN_URL,
	SESSION_SECRET, IP_HASH_SALT,
	STRIPE_SECRET_KEY, STRIPE_WEBHOOK_SECRET,
	RESEND_API_KEY, CONTACT_FROM_ADDRESS,
	UPLOAD_BUCKET, UPLOAD_REGION, UPLOAD_ENDPOINT,
	UPLOAD_PUBLIC_BASE_URL, UPLOAD_URL_EXPIRY

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - SESSION_SECRET and IP_HASH_SALT must be provided
  - UPLOAD_URL_EXPIRY must be a positive duration
*/
package cliparse
