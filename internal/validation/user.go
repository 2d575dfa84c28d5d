// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail checks email format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 100 {
		return fmt.Errorf("email must not exceed 100 characters")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email must be a valid email address")
	}
	return nil
}

// ValidatePassword checks plaintext password length bounds. Strength
// rules beyond length are intentionally not enforced here.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	if len(password) > 100 {
		return fmt.Errorf("password must not exceed 100 characters")
	}
	return nil
}

// ValidateName checks a user's display name.
func ValidateName(name string) error {
	if len(name) < 2 {
		return fmt.Errorf("name must be at least 2 characters long")
	}
	if len(name) > 50 {
		return fmt.Errorf("name must not exceed 50 characters")
	}
	return nil
}

// ValidateBio checks the optional profile bio.
func ValidateBio(bio string) error {
	if len(bio) > 500 {
		return fmt.Errorf("bio must not exceed 500 characters")
	}
	return nil
}

// ValidateID checks that an identifier is a canonical UUID string.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("id must be a valid UUID")
	}
	return nil
}
