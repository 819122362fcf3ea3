package errors

import "fmt"

func ErrMissingRequiredAttribute(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "missing required attribute",
	}
}

func ErrValueTooLong(attr string, maxLen int, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: fmt.Sprintf("must be at most %d characters", maxLen),
	}
}

func ErrInvalidSlugFormat(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must be a lowercase slug (letters, digits, hyphens)",
	}
}

func ErrInvalidHexColor(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must be a 6-digit hex color such as #1A2B3C",
	}
}

func ErrInvalidStatus(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must be one of: sealed, in_use, empty",
	}
}

func ErrNotPositive(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must be a positive number",
	}
}

func ErrInvalidDateFormat(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "must be an ISO date (YYYY-MM-DD)",
	}
}

func ErrValidationFailed(attr string, value ...any) ValidationError {
	return ValidationError{
		Field:  attr,
		Value:  value,
		ErrStr: "validation failed",
	}
}
