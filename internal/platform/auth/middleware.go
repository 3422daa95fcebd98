package auth

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// Principal is the authenticated identity making a request. Every service
// operation that needs authorization takes it as an explicit argument.
type Principal struct {
	ID       uuid.UUID
	Username string
}

// Claims is the JWT payload issued at login.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Middleware validates the Authorization bearer token and stores the
// principal on the request context. Tokens are HS256-signed with the
// server's shared secret.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return httperr.Unauthorized("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return httperr.Unauthorized("invalid authorization format")
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				return httperr.Unauthorized("invalid token")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return httperr.Unauthorized("invalid token subject")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, userIDKey, userID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// PrincipalFromContext returns the authenticated principal, or false when the
// context carries none (request did not pass the auth middleware).
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return Principal{}, false
	}
	username, _ := ctx.Value(usernameKey).(string)
	return Principal{ID: id, Username: username}, true
}

// WithPrincipal returns a context carrying the given principal. Tests use it
// to exercise services without the HTTP layer.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	ctx = context.WithValue(ctx, userIDKey, p.ID)
	return context.WithValue(ctx, usernameKey, p.Username)
}
