// Package validation holds the field rules for account registration.
package validation

import (
	"net/mail"
	"regexp"
	"strings"

	"smartcoach/internal/models"
)

// FieldErrors maps a field name to the first rule it violated.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// HasErrors reports whether any field failed validation.
func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

var usernameCharset = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// ValidateUsername checks the username shape rules: 4-20 characters
// from [A-Za-z0-9._], no leading or trailing '.'/'_' and no ".." or
// "__" anywhere. Uniqueness is checked against the store separately.
func ValidateUsername(username string) string {
	if len(username) < 4 || len(username) > 20 {
		return "Username must be 4-20 characters, can include letters, numbers, dot, underscore."
	}
	if !usernameCharset.MatchString(username) {
		return "Username must be 4-20 characters, can include letters, numbers, dot, underscore."
	}
	if strings.HasPrefix(username, ".") || strings.HasPrefix(username, "_") ||
		strings.HasSuffix(username, ".") || strings.HasSuffix(username, "_") {
		return "Username cannot start or end with dot or underscore."
	}
	if strings.Contains(username, "..") || strings.Contains(username, "__") {
		return "Username cannot contain consecutive dots or underscores."
	}
	return ""
}

// ValidateEmail checks email syntax only. The input must be a bare
// address; display-name forms like "Alice <a@example.com>" would
// otherwise be stored verbatim and handed to SMTP as a recipient.
func ValidateEmail(email string) string {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "Enter a valid email address."
	}
	return ""
}

const specialChars = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the password complexity rules.
func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long."
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(specialChars, r):
			hasSpecial = true
		}
	}
	if !hasUpper {
		return "Password must contain at least one uppercase letter."
	}
	if !hasLower {
		return "Password must contain at least one lowercase letter."
	}
	if !hasDigit {
		return "Password must contain at least one digit."
	}
	if !hasSpecial {
		return "Password must contain at least one special character."
	}
	return ""
}

// ValidateRegistration runs every passenger registration rule and
// collects all violations, one message per field.
func ValidateRegistration(username, email, password, confirmPassword, gender string) FieldErrors {
	errs := FieldErrors{}

	if msg := ValidateUsername(username); msg != "" {
		errs.Add("username", msg)
	}
	if msg := ValidateEmail(email); msg != "" {
		errs.Add("email", msg)
	}
	if msg := ValidatePassword(password); msg != "" {
		errs.Add("password", msg)
	}
	if password != confirmPassword {
		errs.Add("confirm_password", "Passwords do not match.")
	}
	if !models.ValidGender(gender) {
		errs.Add("gender", "Select a valid gender.")
	}
	return errs
}
