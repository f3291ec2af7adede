package httpserver

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/category_service/internal/validation"
)

// domainError renders as {"detail": {"message": ...}}.
func domainError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, echo.Map{
		"detail": echo.Map{"message": message},
	})
}

func notFoundByID(id uint) *echo.HTTPError {
	return domainError(http.StatusNotFound, fmt.Sprintf("Item not found by id '%d'.", id))
}

func notFoundByName(name string) *echo.HTTPError {
	return domainError(http.StatusNotFound, fmt.Sprintf("Item not found by name '%s'.", name))
}

// conflictError deliberately does not reveal which field collided.
func conflictError() *echo.HTTPError {
	return domainError(http.StatusBadRequest, "Already exists!")
}

// categoryID parses the :id path parameter, which must be an integer
// strictly greater than zero.
func categoryID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{
			"detail": []validation.FieldError{{
				Type: "greater_than",
				Loc:  []string{"path", "category_id"},
				Msg:  "Input should be an integer greater than 0",
			}},
		})
	}
	return uint(id), nil
}
