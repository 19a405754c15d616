package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// validate is shared; validator.Validate caches struct metadata and is safe for concurrent use
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names so clients can map errors back
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("identifier", isIdentifier)
	_ = v.RegisterValidation("displayname", isDisplayName)
	return v
}

var fieldMessages = map[string]string{
	"required":    "This field is required",
	"identifier":  "Must not contain spaces or control characters",
	"displayname": "Must not contain control characters",
}

// FormatValidationError maps each failing field to a client-safe message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		msg, ok := fieldMessages[e.Tag()]
		switch {
		case ok:
		case e.Tag() == "max":
			msg = fmt.Sprintf("Must be at most %s characters", e.Param())
		case e.Tag() == "min":
			msg = fmt.Sprintf("Must be at least %s characters", e.Param())
		default:
			msg = "Invalid value"
		}
		out[e.Field()] = msg
	}
	return out
}

// isIdentifier accepts printable strings without whitespace.
// Empty values pass; pair with "required".
func isIdentifier(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	}) < 0
}

// isDisplayName allows inner spaces but no control characters
func isDisplayName(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}
