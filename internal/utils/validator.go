package utils

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns the request validator shared by all handlers.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("username", validateUsername)
	return v
}

// usernames are 3-30 characters of letters, digits, '.', '_' or '-'
func validateUsername(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if len(name) < 3 || len(name) > 30 {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("._-", r) {
			return false
		}
	}
	return true
}
