package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldErrors maps a form field name to its validation message.
// An empty map means the form is valid.
type FieldErrors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// ValidateEmail returns a human-readable message, or "" when the value is
// acceptable. The same contract applies to every validator below.
func ValidateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email"
	}

	return ""
}

func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < minPasswordLength {
		return "Password must be at least 6 characters"
	}

	return ""
}

func ValidateConfirmPassword(password, confirmPassword string) string {
	if confirmPassword == "" {
		return "Please confirm your password"
	}
	if password != confirmPassword {
		return "Passwords do not match"
	}

	return ""
}

func ValidateDisplayName(name string) string {
	if name == "" {
		return "Display name is required"
	}
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return "Display name must be at least 2 characters"
	}

	return ""
}

func ValidateSignInForm(email, password string) FieldErrors {
	errs := FieldErrors{}

	if msg := ValidateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidatePassword(password); msg != "" {
		errs["password"] = msg
	}

	return errs
}

func ValidateSignUpForm(email, password, confirmPassword, displayName string) FieldErrors {
	errs := ValidateSignInForm(email, password)

	if msg := ValidateConfirmPassword(password, confirmPassword); msg != "" {
		errs["confirmPassword"] = msg
	}
	if msg := ValidateDisplayName(displayName); msg != "" {
		errs["displayName"] = msg
	}

	return errs
}

func ValidateProfileForm(displayName, email string) FieldErrors {
	errs := FieldErrors{}

	if msg := ValidateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidateDisplayName(displayName); msg != "" {
		errs["displayName"] = msg
	}

	return errs
}
