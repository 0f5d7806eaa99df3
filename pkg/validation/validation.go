package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Custom binding tags shared by the request structs.
const (
	TagRole      = "role"
	TagAppStatus = "appstatus"
)

// Checker funcs let the validator test enum values without importing the
// domain package.
type roleChecker func(string) bool

var (
	roleValid   roleChecker = func(string) bool { return true }
	statusValid roleChecker = func(string) bool { return true }
)

// Register wires the custom tags into gin's validator engine. The checker
// funcs come from the domain layer so the closed enumerations stay defined
// in one place.
func Register(v *validator.Validate, validRole, validStatus func(string) bool) error {
	roleValid = validRole
	statusValid = validStatus

	if err := v.RegisterValidation(TagRole, func(fl validator.FieldLevel) bool {
		return roleValid(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagAppStatus, func(fl validator.FieldLevel) bool {
		return statusValid(fl.Field().String())
	})
}

// FormatErrors converts validator.ValidationErrors to user-friendly messages.
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", field)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s: Must be at least %s", field, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", field, e.Param())
		}
		return fmt.Sprintf("%s: Must be at most %s", field, e.Param())
	case "email":
		return fmt.Sprintf("%s: Invalid email format", field)
	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", field, e.Param())
	case TagRole:
		return fmt.Sprintf("%s: Must be Admin, Employer or JobSeeker", field)
	case TagAppStatus:
		return fmt.Sprintf("%s: Invalid application status", field)
	default:
		return fmt.Sprintf("%s: Validation failed (%s)", field, e.Tag())
	}
}
