// Package auth provides the Bearer-token identity middleware for the HTTP
// API. Every order route requires an authenticated user; the middleware
// extracts the user's ID and display name from a signed JWT and stores them
// on the request context for handlers to consume.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"orders/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identityKey is the echo context key holding the authenticated Identity.
const identityKey = "auth.identity"

// ErrNoIdentity is returned by FromContext when the middleware did not run.
var ErrNoIdentity = errors.New("no authenticated identity on context")

// Identity describes the authenticated caller. DisplayName is stamped onto
// orders as the customer name on create and update.
type Identity struct {
	UserID      kernel.UUID
	DisplayName string
}

// Middleware validates the Authorization header and puts the caller's
// Identity on the context. Requests without a valid token receive 401 and
// never reach the handler.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			identity, err := identityFromRequest(ctx, secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Unauthenticated.",
				})
			}

			ctx.Set(identityKey, identity)
			return next(ctx)
		}
	}
}

// FromContext returns the Identity stored by Middleware.
func FromContext(ctx echo.Context) (Identity, error) {
	identity, ok := ctx.Get(identityKey).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return identity, nil
}

func identityFromRequest(ctx echo.Context, secret []byte) (Identity, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return Identity{}, errors.New("missing bearer token")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return Identity{}, errors.New("missing subject claim")
	}

	userID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return Identity{}, err
	}

	name, _ := claims["name"].(string)
	if name == "" {
		return Identity{}, errors.New("missing name claim")
	}

	return Identity{UserID: userID, DisplayName: name}, nil
}
