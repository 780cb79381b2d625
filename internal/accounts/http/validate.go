package http

import (
	"net/mail"
	"unicode/utf8"

	"github.com/aussiebroadwan/tabaccounts/pkg/accountsdk"
)

const minPasswordLength = 8

// validateCredentials checks the shared {email, password} shape used by
// both registration and login. It returns one entry per failing field.
func validateCredentials(email, password string) []accountsdk.FieldError {
	var errs []accountsdk.FieldError

	if !validEmail(email) {
		errs = append(errs, accountsdk.FieldError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}

	if utf8.RuneCountInString(password) < minPasswordLength {
		errs = append(errs, accountsdk.FieldError{
			Field:   "password",
			Message: "must be at least 8 characters",
		})
	}

	return errs
}

// validEmail accepts only a bare RFC 5322 address, no display name.
func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
