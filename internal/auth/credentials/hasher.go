package credentials

import (
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	HashVersionBcrypt = "bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with the stored value.
// Records written before hashing landed hold the password verbatim;
// those are compared in constant time.
func VerifyPassword(stored string, password string) error {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword(
			[]byte(stored),
			[]byte(password),
		)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		return errors.New("password mismatch")
	}

	return nil
}
