package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const identityKey contextKey = "auth.identity"

// Identity is the authenticated caller attached to the request context by
// the bearer gate.
type Identity struct {
	ID       int64
	Username string
}

// UserResolver maps a verified token subject to a stored identity. A
// subject whose account no longer exists must come back as an error so
// the gate rejects the request.
type UserResolver interface {
	ResolveSubject(ctx context.Context, subject string) (*Identity, error)
}

// Middleware returns an Echo middleware that rejects requests lacking a
// valid bearer token. On success the resolved identity is placed on the
// request context for handlers downstream.
func Middleware(tokens *TokenService, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			identity, err := users.ResolveSubject(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown user")
			}

			ctx := context.WithValue(c.Request().Context(), identityKey, identity)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// CurrentIdentity extracts the authenticated identity from the request
// context. Returns nil outside the bearer gate.
func CurrentIdentity(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey).(*Identity)
	return id
}
