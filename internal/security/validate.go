package security

import (
	"fmt"
	"regexp"
	"unicode"
)

const MinPasswordLength = 8

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether email is well-formed and non-empty.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}
	return nil
}

// ValidatePassword enforces minimum length plus uppercase, lowercase, digit,
// and special-character requirements. On failure it returns every missing
// requirement, not just the first — matching validate_password's behavior of
// enumerating the whole list so the client can prompt once.
func ValidatePassword(password string) (missing []string, tooShort bool, err error) {
	if len(password) < MinPasswordLength {
		return []string{fmt.Sprintf("at least %d characters", MinPasswordLength)}, true,
			fmt.Errorf("password too short: %d characters (minimum: %d)", len(password), MinPasswordLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSpecial = true
		}
	}

	if !hasUpper {
		missing = append(missing, "uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "digit")
	}
	if !hasSpecial {
		missing = append(missing, "special character")
	}

	if len(missing) > 0 {
		return missing, false, fmt.Errorf("password missing requirements: %v", missing)
	}
	return nil, false, nil
}
