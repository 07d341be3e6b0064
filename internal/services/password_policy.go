package services

import (
	"errors"
	"unicode"
)

const (
	minPasswordLength = 8
	// bcrypt refuses inputs longer than 72 bytes.
	maxPasswordBytes = 72
)

var (
	ErrWeakPassword    = errors.New("weak password")
	ErrPasswordTooLong = errors.New("password too long")
)

func ValidatePasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}

	if hasUpper && hasLower && hasDigit {
		return nil
	}
	return ErrWeakPassword
}
