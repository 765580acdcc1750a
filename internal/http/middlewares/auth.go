package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"todolist-api.com/todolist-api/internal/security"
)

const userIDContextKey = "userID"

// Auth rejects requests without a valid bearer token and stores the
// authenticated user id on the echo context for downstream handlers.
func Auth(issuer *security.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(
					http.StatusUnauthorized,
					"missing or invalid authorization header",
				)
			}

			claims, err := issuer.Parse(strings.TrimPrefix(header, prefix))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			// A validly signed token always carries a subject; treat a
			// missing or garbled one as unauthenticated rather than a fault.
			if claims.Subject == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "user id claim missing")
			}
			if _, err := uuid.Parse(claims.Subject); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user id claim invalid")
			}

			c.Set(userIDContextKey, claims.Subject)
			return next(c)
		}
	}
}

func UserID(c echo.Context) (string, bool) {
	id, ok := c.Get(userIDContextKey).(string)
	return id, ok && id != ""
}
