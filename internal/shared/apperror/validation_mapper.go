package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// full_name -> Full Name
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts the first validator failure into an AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(
			CodeInvalidInput,
			"Invalid input",
			http.StatusBadRequest,
		)
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	switch e.Tag() {
	case "required", "required_if", "required_without":
		return RequiredField(field)
	case "oneof":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be one of [%s]", field, e.Param()),
			http.StatusBadRequest,
		)
	case "min", "gte", "gt":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be at least %s", field, e.Param()),
			http.StatusBadRequest,
		)
	case "max", "lte", "lt":
		return New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be at most %s", field, e.Param()),
			http.StatusBadRequest,
		)
	default:
		return InvalidField(field)
	}
}
