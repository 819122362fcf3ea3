package schemavalidator

import (
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/spooltrack/spooltrack/internal/spoolsrv/spoolcommon"
)

const slugRegex = `^[a-z0-9][a-z0-9-]*$`
const slugMaxLength = 63

// slugValidator checks if the given id follows our convention: lowercase
// alphanumerics and hyphens, starting with an alphanumeric.
func slugValidator(fl validator.FieldLevel) bool {
	str := fl.Field().String()

	if len(str) > slugMaxLength {
		return false
	}

	re := regexp.MustCompile(slugRegex)
	return re.MatchString(str)
}

const hexColorRegex = `^#[0-9A-Fa-f]{6}$`

// hexColorValidator checks for a 6-digit hex color with a leading hash.
// Shorthand (#FFF) and alpha (#RRGGBBAA) forms are rejected.
func hexColorValidator(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(hexColorRegex)
	return re.MatchString(fl.Field().String())
}

// spoolStatusValidator checks if the given status is a known lifecycle state.
func spoolStatusValidator(fl validator.FieldLevel) bool {
	status := spoolcommon.SpoolStatus(fl.Field().String())
	return slices.Contains(spoolcommon.SpoolStatuses(), status)
}

func ValidateSlug(id string) bool {
	if len(id) > slugMaxLength {
		return false
	}
	re := regexp.MustCompile(slugRegex)
	return re.MatchString(id)
}

func ValidateHexColor(hex string) bool {
	re := regexp.MustCompile(hexColorRegex)
	return re.MatchString(hex)
}

func init() {
	V().RegisterValidation("slugValidator", slugValidator)
	V().RegisterValidation("hexColor", hexColorValidator)
	V().RegisterValidation("spoolStatus", spoolStatusValidator)
}
