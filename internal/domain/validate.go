package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is shared by every props type in this package. validator.Validate
// caches struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their content key (json tag) rather than the Go name,
	// since that is what content authors see in frontmatter.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// validateStruct runs struct-tag validation over props and converts the first
// violation into a ValidationError for the given object.
func validateStruct(object string, props any) error {
	err := validate.Struct(props)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newValidationError(object, "", err.Error())
	}

	first := fieldErrs[0]
	return newValidationError(object, first.Field(), fieldErrorMessage(first))
}

// isValidURL reports whether s is an absolute URL with a scheme.
func isValidURL(s string) bool {
	return validate.Var(s, "required,url") == nil
}

// fieldErrorMessage maps a validator tag to a content-author friendly message.
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
