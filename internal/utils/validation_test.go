package utils

import (
	"testing"
)

func TestValidateMPIN(t *testing.T) {
	tests := []struct {
		name    string
		mpin    string
		wantErr bool
	}{
		{name: "valid 4 digits", mpin: "2749", wantErr: false},
		{name: "valid 6 digits", mpin: "274985", wantErr: false},
		{name: "empty", mpin: "", wantErr: true},
		{name: "whitespace only", mpin: "   ", wantErr: true},
		{name: "too short", mpin: "123", wantErr: true},
		{name: "five digits", mpin: "12345", wantErr: true},
		{name: "too long", mpin: "1234567", wantErr: true},
		{name: "letters", mpin: "12ab", wantErr: true},
		{name: "unicode digits", mpin: "１234", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMPIN(tt.mpin)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMPIN(%q) error = %v, wantErr %v", tt.mpin, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "empty is valid", value: "", wantErr: false},
		{name: "valid date", value: "15-06-1990", wantErr: false},
		{name: "wrong separator", value: "15/06/1990", wantErr: true},
		{name: "wrong order", value: "1990-06-15", wantErr: true},
		{name: "impossible day", value: "32-01-1990", wantErr: true},
		{name: "before 1900", value: "31-12-1899", wantErr: true},
		{name: "future date", value: "01-01-2100", wantErr: true},
		{name: "not a date", value: "hello", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate("dob", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidateMPIN("12")
	validationErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validationErr.Field != "mpin" {
		t.Errorf("Field = %v, want mpin", validationErr.Field)
	}
	if validationErr.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
