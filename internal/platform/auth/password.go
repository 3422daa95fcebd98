package auth

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

// PasswordPolicy enforces credential strength at registration time.
// MinLength is configurable; the other rules are fixed: a password may not be
// entirely numeric and may not contain (or equal) the username or the local
// part of the email address.
type PasswordPolicy struct {
	MinLength int
}

// Check validates the candidate password against the policy. Violations are
// reported as field-scoped validation errors on "password".
func (p PasswordPolicy) Check(password, username, email string) error {
	if len(password) < p.MinLength {
		return httperr.Validation("password",
			"This password is too short. It must contain at least "+
				strconv.Itoa(p.MinLength)+" characters.")
	}

	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return httperr.Validation("password", "This password is entirely numeric.")
	}

	lower := strings.ToLower(password)
	if username != "" && strings.Contains(lower, strings.ToLower(username)) {
		return httperr.Validation("password", "The password is too similar to the username.")
	}
	if local, _, ok := strings.Cut(email, "@"); ok && len(local) >= 3 {
		if strings.Contains(lower, strings.ToLower(local)) {
			return httperr.Validation("password", "The password is too similar to the email address.")
		}
	}

	return nil
}

// HashPassword hashes a password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
