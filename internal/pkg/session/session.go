// Package session persists a provider's identity in a signed HTTP-only
// cookie. The cookie is the session; there is no server-side session
// table, so a leaked secret is bounded by the token TTL.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gideonbanks/needed/internal/pkg/token"
	"github.com/gideonbanks/needed/internal/utils"
)

// CookieName is the provider session cookie
const CookieName = "provider_session"

const contextKey = "provider_id"

// Store mints and reads provider session cookies
type Store struct {
	secret string
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store. secure should be true in production
// so the cookie is only sent over TLS.
func NewStore(secret string, ttl time.Duration, secure bool) *Store {
	return &Store{
		secret: secret,
		ttl:    ttl,
		secure: secure,
	}
}

// Set mints a session token for providerID and writes the cookie
func (s *Store) Set(c echo.Context, providerID uuid.UUID) error {
	payload := token.NewSessionPayload(providerID, s.ttl, time.Now())
	encoded, err := token.EncodeSession(payload, s.secret)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Get returns the provider id from the session cookie. Any decode failure
// reads as "no session"; callers never see token errors.
func (s *Store) Get(c echo.Context) (uuid.UUID, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return uuid.Nil, false
	}

	payload, err := token.DecodeSession(cookie.Value, s.secret, time.Now())
	if err != nil {
		return uuid.Nil, false
	}
	return payload.ProviderID, true
}

// Clear deletes the session cookie
func (s *Store) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Middleware rejects unauthenticated requests and stores the provider id
// on the Echo context for handlers.
func (s *Store) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			providerID, ok := s.Get(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "")
			}
			c.Set(contextKey, providerID)
			return next(c)
		}
	}
}

// ProviderID extracts the authenticated provider id set by Middleware
func ProviderID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(contextKey).(uuid.UUID)
	return id, ok
}
