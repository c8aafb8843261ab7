// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session handling and privacy helpers.

# Sessions

The auth provider issues HS256 JWT access tokens whose subject is the user id
(which is also the profile id). The server only validates them:

	s, err := auth.ParseSessionToken(token, cfg.SessionSecret)

Tokens are read from the Authorization header or the session cookie:

	token := auth.TokenFromRequest(r)

POST /auth/session stores a client-obtained token with SetSessionCookie, and
ClearSessionCookie signs the browser out.

Errors:

  - ErrMissingToken: no token supplied
  - ErrExpiredToken: token past its exp claim
  - ErrInvalidToken: bad signature, algorithm, or claims

# Impersonation

Admins may carry the impersonation cookie with a target profile id:

	target := auth.ImpersonationTarget(r)

The dashboard decides whether to honor it (admins only).

# Context

	ctx = auth.WithSession(ctx, s)
	s, ok := auth.SessionFromContext(ctx)

# IP Hashing

For privacy-preserving abuse tracking on the contact form:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
