package httpserver

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/category_service/internal/service"
	"github.com/Skotchmaster/category_service/internal/transport"
	"github.com/Skotchmaster/category_service/pkg/logging"
)

type AuthHTTP struct {
	Svc       *service.AuthService
	SignupPin string
}

func (h *AuthHTTP) SignUp(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_signup")

	var req transport.SignUpRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	// the pin gate runs before field validation and any persistence
	if subtle.ConstantTimeCompare([]byte(req.Pin), []byte(h.SignupPin)) != 1 {
		l.Warn("signup_error", "status", 400, "reason", "wrong pin")
		return domainError(http.StatusBadRequest, "Wrong pin. Contact to admin!")
	}

	if err := c.Validate(&req); err != nil {
		l.Warn("signup_error", "status", 422, "error", err)
		return err
	}

	user, err := h.Svc.Register(ctx, req.Username, req.Email, req.FirstName, req.LastName, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			l.Warn("signup_error", "status", 400, "reason", "user already exists")
			return conflictError()
		}
		l.Error("signup_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create user")
	}

	l.Info("signup_success", "username", user.Username)
	return c.JSON(http.StatusCreated, transport.NewUserResponse(user))
}

func (h *AuthHTTP) Token(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_token")

	username := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.Svc.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("token_error", "status", 400, "reason", "invalid credentials")
			return domainError(http.StatusBadRequest, "Incorrect username or password")
		}
		l.Error("token_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot authenticate")
	}

	token, err := h.Svc.CreateAccessToken(user.Username, service.LoginTokenTTL)
	if err != nil {
		l.Error("token_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot issue token")
	}

	l.Info("token_issued", "username", user.Username)
	return c.JSON(http.StatusOK, transport.AccessTokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
