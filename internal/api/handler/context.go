package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/catalog-api/internal/api/middleware"
	"github.com/mercadito/catalog-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. A
// missing value means the route was wired without the middleware; fail
// closed rather than proceed anonymously.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
