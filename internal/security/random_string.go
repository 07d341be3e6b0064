package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}

	return string(value), nil
}

const (
	passwordAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	minTemporaryPasswordLength = 8
	InviteCodeLength           = 10
)

// TemporaryPassword returns a password without look-alike characters. Lengths below 8 are raised to 8.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}
	return RandomString(length, passwordAlphabet)
}

// InviteCode returns an upper-case code a partner can type in by hand.
func InviteCode() (string, error) {
	return RandomString(InviteCodeLength, inviteCodeAlphabet)
}
