package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/category_service/internal/middleware"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	CategoryHandler *CategoryHTTP
	Auth            *middleware.BearerAuth
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "healthy"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/v1")

	auth := v1.Group("/auth")
	auth.POST("/signup", d.AuthHandler.SignUp)
	auth.POST("/token", d.AuthHandler.Token)

	categories := v1.Group("/categories")
	categories.GET("", d.CategoryHandler.GetCategories)
	categories.GET("/:id", d.CategoryHandler.GetCategory)

	private := categories.Group("", d.Auth.RequireAuth)
	private.POST("", d.CategoryHandler.CreateCategory)
	private.PUT("/:id", d.CategoryHandler.UpdateCategory)
	private.DELETE("/:id", d.CategoryHandler.DeleteCategory)
}
