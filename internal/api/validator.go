package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sunrintoday/mealapi/internal/apperrors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct returns an *apperrors.ValidationError naming the first
// failing field, with every failure joined into the message.
func ValidateStruct(s any) error {
	if err := validate.Struct(s); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var messages []string
			for _, fieldError := range validationErrors {
				messages = append(messages, formatValidationError(fieldError))
			}
			field := strings.ToLower(validationErrors[0].Field())
			return apperrors.NewValidationError(field, strings.Join(messages, "; "))
		}
		return err
	}
	return nil
}

func formatValidationError(err validator.FieldError) string {
	field := strings.ToLower(err.Field())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, err.Param())
	case "datetime":
		return fmt.Sprintf("%s must use the YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
