package validators

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsEmail reports whether s is a bare address. Display names
// ("Ann <ann@example.com>") and surrounding spaces are rejected.
func IsEmail(s string) bool {
	if s != strings.TrimSpace(s) {
		return false
	}
	return validate.Var(s, "required,email") == nil
}
