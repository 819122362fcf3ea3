package schemavalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestSlugValidator(t *testing.T) {
	validate := validator.New()
	validate.RegisterValidation("slug", slugValidator)

	tests := []struct {
		input   string
		isValid bool
	}{
		{input: "acme", isValid: true},
		{input: "pla", isValid: true},
		{input: "carbon-fiber", isValid: true},
		{input: "3dfuel", isValid: true},
		{input: "-leading-hyphen", isValid: false},
		{input: "UpperCase", isValid: false},
		{input: "has space", isValid: false},
		{input: "has_underscore", isValid: false},
		{input: "", isValid: false},
	}

	for _, test := range tests {
		err := validate.Var(test.input, "slug")
		if (err == nil) != test.isValid {
			t.Errorf("Expected %v for input '%s', but got %v", test.isValid, test.input, err == nil)
		}
	}
}

func TestHexColorValidator(t *testing.T) {
	validate := validator.New()
	validate.RegisterValidation("hexColor", hexColorValidator)

	// Test cases
	tests := []struct {
		input    string
		expected bool
	}{
		{"#FF0000", true},   // uppercase
		{"#1a2b3c", true},   // lowercase
		{"#1A2b3C", true},   // mixed case
		{"FF0000", false},   // missing hash
		{"#FFF", false},     // shorthand form
		{"#FF0000AA", false}, // alpha channel
		{"#GG0000", false},  // non-hex digits
		{"blue", false},     // color name
		{"", false},         // empty string
	}

	for _, test := range tests {
		err := validate.Var(test.input, "hexColor")
		result := err == nil

		if result != test.expected {
			t.Errorf("Expected %v for input '%s', got %v", test.expected, test.input, result)
		}
	}
}

func TestSpoolStatusValidator(t *testing.T) {
	validate := validator.New()
	validate.RegisterValidation("spoolStatus", spoolStatusValidator)

	tests := []struct {
		input    string
		expected bool
	}{
		{"sealed", true},
		{"in_use", true},
		{"empty", true},
		{"in-use", false},
		{"SEALED", false},
		{"archived", false},
		{"", false},
	}

	for _, test := range tests {
		err := validate.Var(test.input, "spoolStatus")
		result := err == nil

		if result != test.expected {
			t.Errorf("Expected %v for input '%s', got %v", test.expected, test.input, result)
		}
	}
}
