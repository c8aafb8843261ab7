// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Cookie names
const (
	SessionCookie       = "exhibitly-session"
	ImpersonateCookie   = "exhibitly-impersonate"
	bearerPrefix        = "Bearer "
	sessionCookieMaxAge = 7 * 24 * time.Hour
)

// TokenFromRequest returns the access token from the Authorization header,
// falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// SetSessionCookie stores the access token in an HttpOnly cookie.
func SetSessionCookie(w http.ResponseWriter, token string, s Session, secure bool) {
	maxAge := int(sessionCookieMaxAge.Seconds())
	if !s.ExpiresAt.IsZero() {
		if remaining := int(time.Until(s.ExpiresAt).Seconds()); remaining < maxAge {
			maxAge = remaining
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session and impersonation cookies.
func ClearSessionCookie(w http.ResponseWriter) {
	for _, name := range []string{SessionCookie, ImpersonateCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// ImpersonationTarget returns the profile id an admin asked to act as, if any.
func ImpersonationTarget(r *http.Request) string {
	c, err := r.Cookie(ImpersonateCookie)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

type sessionContextKey struct{}

// WithSession stores a validated session in context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, s)
}

// SessionFromContext returns the session stored by WithSession.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionContextKey{}).(Session)
	return s, ok && s.UserID != ""
}
