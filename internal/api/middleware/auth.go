package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/peoplekit/employee-system/internal/core/ports"
)

// Context keys under which Auth stores the resolved claims.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth resolves the bearer token through the token service and injects the
// subject and carried role into the request context. Every failure mode is a
// plain 401; the middleware never distinguishes a malformed token from an
// expired or forged one.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.ExtractIdentity(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			role, _ := tokens.ExtractRole(parts[1])

			c.Set(CtxUsername, subject)
			c.Set(CtxRole, role)

			return next(c)
		}
	}
}
