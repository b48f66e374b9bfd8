package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	ProfessionalKey contextKey = "professional"
	ProfessionKey   contextKey = "profession"
	InstitutionKey  contextKey = "institution"
)

// JWTMiddleware authenticates bearer tokens and rejects revoked ones. The
// professional identity lands on the request context for the handlers.
func JWTMiddleware(cfg JWTConfig, store *TokenRevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}
			claims, err := ParseToken(cfg, parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if store != nil && store.IsRevoked(claims.ID) {
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			ctx := c.Request().Context()
			ctx = context.WithValue(ctx, ProfessionalKey, claims.Subject)
			ctx = context.WithValue(ctx, ProfessionKey, claims.Profession)
			ctx = context.WithValue(ctx, InstitutionKey, claims.Institution)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Set("claims", claims)

			return next(c)
		}
	}
}

func ProfessionalFromContext(ctx context.Context) string {
	p, _ := ctx.Value(ProfessionalKey).(string)
	return p
}

func ProfessionFromContext(ctx context.Context) string {
	p, _ := ctx.Value(ProfessionKey).(string)
	return p
}

func InstitutionFromContext(ctx context.Context) string {
	i, _ := ctx.Value(InstitutionKey).(string)
	return i
}
