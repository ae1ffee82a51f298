package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/initi8now/waitlist/internal/app/models/dto"
)

// BindingErrorDetail turns a gin binding failure into an error detail. When
// the failure comes from a struct tag, the first offending field and a
// human-readable message are included; malformed JSON gets a generic detail.
func BindingErrorDetail(err error) *dto.ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, formatFieldError(fe)).WithField(fe.Field())
	}
	return dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
