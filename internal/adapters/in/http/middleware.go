package http

import (
	"net/http"
	"strings"

	"transport/internal/identity"

	"github.com/labstack/echo/v4"
)

// claimsContextKey is the echo context key holding the authenticated claims.
const claimsContextKey = "authClaims"

// AuthMiddleware validates bearer tokens and stores the claims on the
// request context.
type AuthMiddleware struct {
	tokens *identity.TokenService
}

// NewAuthMiddleware creates the JWT authentication middleware.
func NewAuthMiddleware(tokens *identity.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate rejects requests without a valid Bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			return writeError(ctx, http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := m.tokens.Parse(raw)
		if err != nil {
			return writeError(ctx, http.StatusUnauthorized, "invalid token")
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// RequireRoles allows the request through only when the authenticated
// user's role is one of the given roles. Must run after Authenticate.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims := claimsFrom(ctx)
			if claims == nil {
				return writeError(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			for _, role := range roles {
				if claims.Role == role {
					return next(ctx)
				}
			}

			return writeError(ctx, http.StatusForbidden, "insufficient role")
		}
	}
}

// claimsFrom returns the authenticated claims, or nil when absent.
func claimsFrom(ctx echo.Context) *identity.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*identity.Claims)
	return claims
}
