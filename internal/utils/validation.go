package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateInputLayout is the format demographic dates are entered in.
const DateInputLayout = "02-01-2006"

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateMPIN checks that an MPIN form value is 4 or 6 digits
func ValidateMPIN(mpin string) error {
	mpin = strings.TrimSpace(mpin)
	if mpin == "" {
		return ValidationError{Field: "mpin", Message: "MPIN is required"}
	}
	if len(mpin) != 4 && len(mpin) != 6 {
		return ValidationError{Field: "mpin", Message: "MPIN must be 4 or 6 digits"}
	}
	for i := 0; i < len(mpin); i++ {
		if mpin[i] < '0' || mpin[i] > '9' {
			return ValidationError{Field: "mpin", Message: "MPIN must contain only digits"}
		}
	}
	return nil
}

// ValidateDate checks an optional demographic date in DD-MM-YYYY format.
// An empty value is valid; the date is simply not provided.
func ValidateDate(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(DateInputLayout, value)
	if err != nil {
		return ValidationError{Field: field, Message: "date must be in DD-MM-YYYY format"}
	}
	if parsed.Before(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)) {
		return ValidationError{Field: field, Message: "date must be on or after 01-01-1900"}
	}
	if parsed.After(time.Now()) {
		return ValidationError{Field: field, Message: "date must not be in the future"}
	}
	return nil
}
