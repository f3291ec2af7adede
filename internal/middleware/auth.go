package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/category_service/internal/service"
)

type BearerAuth struct {
	Svc *service.AuthService
}

func NewBearerAuth(svc *service.AuthService) *BearerAuth {
	return &BearerAuth{Svc: svc}
}

// RequireAuth reads the Authorization header, verifies the bearer
// token and stores the resolved user under "user".
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return unauthorized(c)
		}

		user, err := m.Svc.VerifyAccessToken(c.Request().Context(), token)
		if err != nil {
			return unauthorized(c)
		}

		c.Set("user", user)
		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, echo.Map{
		"detail": echo.Map{"message": "Could not validate credentials"},
	})
}
