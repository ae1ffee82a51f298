package middleware

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/initi8now/waitlist/internal/app/models/dto"
)

func TestBindingErrorDetailFieldErrors(t *testing.T) {
	validate := validator.New()

	type payload struct {
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	tests := []struct {
		name    string
		input   payload
		message string
		field   string
	}{
		{"missing email", payload{Password: "secret123"}, "Email is required", "Email"},
		{"bad email", payload{Email: "nope", Password: "secret123"}, "Email must be a valid email address", "Email"},
		{"short password", payload{Email: "a@b.co", Password: "abc"}, "Password must be at least 6", "Password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate.Struct(tc.input)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			detail := BindingErrorDetail(err)
			if detail.Code != dto.ErrorCodeValidationFailed {
				t.Errorf("code = %q", detail.Code)
			}
			if detail.Message != tc.message {
				t.Errorf("message = %q, want %q", detail.Message, tc.message)
			}
			if detail.Field != tc.field {
				t.Errorf("field = %q, want %q", detail.Field, tc.field)
			}
		})
	}
}

func TestBindingErrorDetailNonFieldError(t *testing.T) {
	detail := BindingErrorDetail(errors.New("unexpected EOF"))
	if detail.Message != "Invalid request format" {
		t.Errorf("message = %q", detail.Message)
	}
	if detail.Field != "" {
		t.Errorf("field should be empty, got %q", detail.Field)
	}
}
