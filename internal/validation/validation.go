// Package validation holds the field predicates used during customer
// registration. They are deliberately loose: the registry only needs a
// plausible contact shape, not RFC compliance.
package validation

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Email reports whether s contains both an '@' and a '.'.
func Email(s string) bool {
	return strings.ContainsRune(s, '@') && strings.ContainsRune(s, '.')
}

// Phone reports whether s contains exactly 10 decimal digits. Separators
// and other non-digit characters are ignored, so "123-456-7890" passes.
func Phone(s string) bool {
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits == 10
}

// Address reports whether s contains at least one letter and at least one
// digit.
func Address(s string) bool {
	var hasLetter, hasDigit bool
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Register installs the predicates as custom tags on a validator engine so
// request structs can use them in binding tags.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return Email(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return Phone(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("street_address", func(fl validator.FieldLevel) bool {
		return Address(fl.Field().String())
	})
}
