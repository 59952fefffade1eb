package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/metrics"
	"github.com/mercadito/catalog-api/internal/core/domain"
	"github.com/mercadito/catalog-api/internal/core/ports"
)

// UserContextKey is where Auth stores the resolved *domain.User on the
// echo context for downstream handlers.
const UserContextKey = "auth_user"

// Auth guards a route behind a valid bearer token. The header must read
// "Bearer <token>"; anything else fails closed before resolution. Every
// resolver error collapses into a generic 401 so the response does not
// reveal which check failed. On success the freshly resolved user is
// attached to the request context.
func Auth(resolver ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject(domain.ErrMissingCredential)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return reject(domain.ErrMissingCredential)
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				if !isAuthError(err) {
					// Credential store failure, not a bad token.
					return err
				}
				return reject(err)
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// reject records the rejection reason and returns the uniform 401.
func reject(err error) error {
	metrics.AuthRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing credentials")
}

func isAuthError(err error) bool {
	return errors.Is(err, domain.ErrMissingCredential) ||
		errors.Is(err, domain.ErrTokenMalformed) ||
		errors.Is(err, domain.ErrBadSignature) ||
		errors.Is(err, domain.ErrTokenExpired) ||
		errors.Is(err, domain.ErrUnknownSubject)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "missing_credential"
	case errors.Is(err, domain.ErrBadSignature):
		return "bad_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrUnknownSubject):
		return "unknown_subject"
	default:
		return "malformed"
	}
}
