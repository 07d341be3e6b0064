package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/terraincognita07/fertilitrack/internal/models"
)

var ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizeProfileInput trims the display name and checks the account role. An empty display
// name is allowed.
func NormalizeProfileInput(displayNameRaw string, role models.Role) (string, error) {
	if role != models.RoleOwner && role != models.RolePartner {
		return "", ErrInvalidRole
	}
	displayName := strings.TrimSpace(displayNameRaw)
	if len([]rune(displayName)) > maxDisplayNameLength {
		return "", ErrDisplayNameTooLong
	}
	return displayName, nil
}
