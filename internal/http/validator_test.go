package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStruct_ISBN13(t *testing.T) {
	type payload struct {
		ISBN string `validate:"isbn13"`
	}

	tests := []struct {
		name  string
		isbn  string
		valid bool
	}{
		{name: "bare digits", isbn: "9780306406157", valid: true},
		{name: "hyphenated", isbn: "978-0-306-40615-7", valid: true},
		{name: "spaced", isbn: "978 0306406157", valid: true},
		{name: "too short", isbn: "030640615", valid: false},
		{name: "ten digit isbn", isbn: "0306406152", valid: false},
		{name: "letters", isbn: "97803064061ab", valid: false},
		{name: "empty", isbn: "", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := ValidateStruct(payload{ISBN: tt.isbn})
			if tt.valid {
				assert.Empty(t, details)
			} else {
				assert.NotEmpty(t, details)
			}
		})
	}
}

func TestValidateStruct_PasswordStrength(t *testing.T) {
	type payload struct {
		Password string `validate:"password_strength"`
	}

	assert.Empty(t, ValidateStruct(payload{Password: "Sup3rSecret!"}))
	assert.NotEmpty(t, ValidateStruct(payload{Password: "weak"}))
}

func TestValidateStruct_FieldNamesAreLowerCamel(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	details := ValidateStruct(payload{})
	assert.Len(t, details, 1)
	assert.Equal(t, "email", details[0].Field)
	assert.Contains(t, details[0].Message, "required")
}
