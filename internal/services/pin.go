package services

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"tillslip/internal/apperr"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

// PIN is the short numeric credential used to authenticate users: exactly
// four ASCII digits. It has its own hashing and verification contract so
// it is not funneled through a generic password abstraction. The clear
// value only lives for the duration of a request.
type PIN string

// ParsePIN validates a raw credential from user input.
func ParsePIN(raw string) (PIN, error) {
	if !pinPattern.MatchString(raw) {
		return "", fmt.Errorf("%w: PIN must be exactly 4 digits", apperr.ErrValidation)
	}
	return PIN(raw), nil
}

// Hash returns the salted bcrypt hash to store in place of the PIN.
func (p PIN) Hash() (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the PIN matches a stored hash.
func (p PIN) Verify(hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(p)) == nil
}
