package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"campuskart/internal/domain/entity"
	"campuskart/pkg/errors"
	"campuskart/pkg/response"
)

const (
	uidKey     = "uid"
	sessionKey = "session"
)

// Authenticator turns a bearer token into a session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.Session, error)
}

type AuthMiddleware struct {
	authenticator Authenticator
}

func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
	}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return response.Error(c, err)
		}

		session, err := m.authenticator.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set(uidKey, session.UID)
		c.Set(sessionKey, session)

		return next(c)
	}
}

// bearerToken reads the Authorization header. Browsers cannot set headers on a
// WebSocket handshake, so the token query parameter is accepted as well.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		if token := c.QueryParam("token"); token != "" {
			return token, nil
		}
		return "", errors.Unauthorized("Authorization header is required", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.Unauthorized("Invalid authorization format", nil)
	}

	return parts[1], nil
}

// SessionFrom returns the session stored by Authenticate, or nil.
func SessionFrom(c echo.Context) *entity.Session {
	session, _ := c.Get(sessionKey).(*entity.Session)
	return session
}

// UIDFrom returns the authenticated user's id, or "".
func UIDFrom(c echo.Context) string {
	uid, _ := c.Get(uidKey).(string)
	return uid
}
