package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var categoryNameRe = regexp.MustCompile(`^[a-z][a-z -]*[a-z]$`)

const passwordSymbols = "!@#$%^&*()-_=+[]{};:,.<>?/|~"

// FieldError is one entry of a 422 response body.
type FieldError struct {
	Type string   `json:"type"`
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			if name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]; name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("password", passwordRule)
	_ = v.RegisterValidation("category_name", categoryNameRule)
	return v
}

// CustomValidator plugs into echo; c.Validate reports all rule
// failures of a body at once.
type CustomValidator struct{}

func New() *CustomValidator { return &CustomValidator{} }

func (cv *CustomValidator) Validate(i interface{}) error {
	return Struct(i, "body")
}

// Struct evaluates every declared constraint and aggregates the
// failures into a single 422 error; loc names the request part the
// struct was bound from ("body", "query", "path").
func Struct(i interface{}, loc string) error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Type: fe.Tag(),
			Loc:  []string{loc, fe.Field()},
			Msg:  messageFor(fe),
		})
	}
	return echo.NewHTTPError(http.StatusUnprocessableEntity, echo.Map{"detail": details})
}

// passwordRule: at least 10 characters with one lowercase letter, one
// uppercase letter, one digit and one symbol from passwordSymbols.
func passwordRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 10 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// categoryNameRule checks the normalized form: trimmed and lowercased,
// 2-20 characters, starting and ending with a letter, interior letters,
// spaces or hyphens.
func categoryNameRule(fl validator.FieldLevel) bool {
	name := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if len(name) < 2 || len(name) > 20 {
		return false
	}
	return categoryNameRe.MatchString(name)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		return fmt.Sprintf("String should have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("String should have at most %s characters", fe.Param())
	case "email":
		return "value is not a valid email address"
	case "password":
		return "password must be at least 10 characters with a lowercase letter, an uppercase letter, a digit and a symbol"
	case "category_name":
		return "name must be 2-20 letters, spaces or hyphens, starting and ending with a letter"
	default:
		return fe.Error()
	}
}
