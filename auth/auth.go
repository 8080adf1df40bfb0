// Package auth implements signed session cookies carrying the user id.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diewo77/go-quotes/httpx"
)

type ctxKey string

const (
	sessionCookieName = "session"
	userIDCtxKey      = ctxKey("userID")
	defaultSecret     = "devsessionsecret"
	defaultTTL        = 14 * 24 * time.Hour
)

// UserVerifier validates that a session's user still exists.
type UserVerifier func(ctx context.Context, uid uint) bool

// Sessions signs and verifies session cookies.
type Sessions struct {
	secret   []byte
	ttl      time.Duration
	verifier UserVerifier
}

// NewSessions creates a session manager. An empty secret falls back to a dev value.
func NewSessions(secret string) *Sessions {
	if secret == "" {
		secret = defaultSecret
	}
	return &Sessions{secret: []byte(secret), ttl: defaultTTL}
}

// SetUserVerifier configures the check run by RequireAuth on every request.
func (s *Sessions) SetUserVerifier(v UserVerifier) { s.verifier = v }

func (s *Sessions) sign(uid string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(uid))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Create sets a signed cookie with the user id.
func (s *Sessions) Create(w http.ResponseWriter, userID uint) {
	uidStr := strconv.FormatUint(uint64(userID), 10)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    uidStr + "." + s.sign(uidStr),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.ttl),
	})
}

// Clear deletes the session cookie.
func (s *Sessions) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// Parse validates the cookie and returns the user id.
func (s *Sessions) Parse(r *http.Request) (uint, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	uidStr, sig, ok := strings.Cut(c.Value, ".")
	if !ok || !hmac.Equal([]byte(sig), []byte(s.sign(uidStr))) {
		return 0, false
	}
	id64, err := strconv.ParseUint(uidStr, 10, 64)
	if err != nil || id64 == 0 {
		return 0, false
	}
	return uint(id64), true
}

// WithUserID stores user id in context.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// UserIDFromContext extracts user id.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDCtxKey).(uint)
	return id, ok
}

// Middleware attaches user id to request context if present.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := s.Parse(r); ok {
			r = r.WithContext(WithUserID(r.Context(), uid))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth answers 401 JSON unless the request carries a valid session
// for a user that still exists.
func (s *Sessions) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := UserIDFromContext(r.Context())
		if !ok {
			httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		if s.verifier != nil && !s.verifier(r.Context(), uid) {
			s.Clear(w)
			httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
