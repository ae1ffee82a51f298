package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone pattern: digits plus the separators people actually type.
	// An empty value means "not provided" and is handled by the caller.
	PhonePattern = `^[0-9+\-\s()]*$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// ValidationError carries the human-readable message for the first violated
// rule of a submission. Rules are evaluated in declaration order and the
// first failure short-circuits.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

func newError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Required checks that a value is non-empty after trimming
func Required(field, value, message string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return newError(field, message)
	}
	return nil
}

// MaxLen checks an upper length bound in characters, not bytes. Empty values
// pass; pair with Required for mandatory fields.
func MaxLen(field, value string, max int, message string) *ValidationError {
	if utf8.RuneCountInString(value) > max {
		return newError(field, message)
	}
	return nil
}

// Email checks address shape on a trimmed value
func Email(field, value, message string) *ValidationError {
	if !CompiledPatterns.Email.MatchString(strings.TrimSpace(value)) {
		return newError(field, message)
	}
	return nil
}

// Phone validates an optional phone value. An explicitly empty string is
// "not provided", which is valid; any non-empty value must match the phone
// pattern.
func Phone(field, value string) *ValidationError {
	if value == "" {
		return nil
	}
	if !CompiledPatterns.Phone.MatchString(value) {
		return newError(field, "Invalid phone number")
	}
	return nil
}

// AbsoluteURL validates an optional URL value. When present it must be fully
// qualified (scheme and host).
func AbsoluteURL(field, value string) *ValidationError {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return newError(field, "Invalid URL")
	}
	return nil
}

// OneOf checks membership in a fixed enumeration
func OneOf(field, value string, allowed []string, message string) *ValidationError {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return newError(field, message)
}

// MinItems checks that a multi-valued selection has at least min entries
func MinItems(field string, items []string, min int, message string) *ValidationError {
	if len(items) < min {
		return newError(field, message)
	}
	return nil
}

// EachOneOf checks that every entry of a multi-valued selection belongs to a
// fixed enumeration
func EachOneOf(field string, items, allowed []string, message string) *ValidationError {
	for _, item := range items {
		if err := OneOf(field, item, allowed, message); err != nil {
			return err
		}
	}
	return nil
}

// First returns the first non-nil error of an ordered rule list
func First(errs ...*ValidationError) *ValidationError {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
