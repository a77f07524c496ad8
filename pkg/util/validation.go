package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxEmailLength = 254

var validate = validator.New()

// ValidateEmail checks that value is a plausible email address
func ValidateEmail(value string) error {
	if value == "" {
		return fmt.Errorf("email is required")
	}
	if len(value) > maxEmailLength {
		return fmt.Errorf("email must be no more than %d characters", maxEmailLength)
	}
	if err := validate.Var(value, "email"); err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// FormatValidationError renders validator errors as one readable line:
// "field Email is required, field Rent must be greater than 0".
// Errors of any other kind are returned as their message.
func FormatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", fe.Field(), fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be greater than %s", fe.Field(), fe.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least %s", fe.Field(), fe.Param()))
		case "lte", "max":
			msgs = append(msgs, fmt.Sprintf("field %s must be at most %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", fe.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
