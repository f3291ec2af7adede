package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/category_service/internal/service"
	"github.com/Skotchmaster/category_service/internal/transport"
	"github.com/Skotchmaster/category_service/internal/validation"
	"github.com/Skotchmaster/category_service/pkg/logging"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

// GetCategories returns the full list, or a single category when the
// name query parameter is present.
func (h *CategoryHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_categories")

	var q transport.ListCategoriesQuery
	if err := c.Bind(&q); err != nil {
		l.Warn("get_categories_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := validation.Struct(&q, "query"); err != nil {
		l.Warn("get_categories_error", "status", 422, "error", err)
		return err
	}

	if q.Name != "" {
		category, err := h.Svc.GetCategoryByName(ctx, q.Name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				l.Warn("get_categories_error", "status", 404, "name", q.Name)
				return notFoundByName(q.Name)
			}
			l.Error("get_categories_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot get category")
		}
		return c.JSON(http.StatusOK, category)
	}

	items, err := h.Svc.GetCategories(ctx, q.SortBy)
	if err != nil {
		l.Error("get_categories_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get categories")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.get_category")

	id, err := categoryID(c)
	if err != nil {
		l.Warn("get_category_error", "status", 422, "error", err)
		return err
	}

	category, err := h.Svc.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("get_category_error", "status", 404, "id", id)
			return notFoundByID(id)
		}
		l.Error("get_category_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get category")
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create_category")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("category_create_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("category_create_error", "status", 422, "error", err)
		return err
	}

	category, err := h.Svc.CreateCategory(ctx, req.Name)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			l.Warn("category_create_error", "status", 400, "reason", "name already exists")
			return conflictError()
		}
		l.Error("category_create_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create category")
	}

	l.Info("category_created", "id", category.ID, "name", category.Name)
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update_category")

	id, err := categoryID(c)
	if err != nil {
		l.Warn("category_update_error", "status", 422, "error", err)
		return err
	}

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("category_update_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("category_update_error", "status", 422, "error", err)
		return err
	}

	if err := h.Svc.UpdateCategory(ctx, id, req.Name); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			l.Warn("category_update_error", "status", 404, "id", id)
			return notFoundByID(id)
		case errors.Is(err, gorm.ErrDuplicatedKey):
			l.Warn("category_update_error", "status", 400, "reason", "name already exists")
			return conflictError()
		default:
			l.Error("category_update_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot update category")
		}
	}

	l.Info("category_updated", "id", id)
	return c.JSON(http.StatusOK, echo.Map{"status": "updated"})
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.delete_category")

	id, err := categoryID(c)
	if err != nil {
		l.Warn("category_delete_error", "status", 422, "error", err)
		return err
	}

	if err := h.Svc.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("category_delete_error", "status", 404, "id", id)
			return notFoundByID(id)
		}
		l.Error("category_delete_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete category")
	}

	l.Info("category_deleted", "id", id)
	return c.NoContent(http.StatusNoContent)
}
