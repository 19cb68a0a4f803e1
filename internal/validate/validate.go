// Package validate holds the registration field checks. Each check
// returns the full list of problems so forms can report everything at
// once rather than one error per submit.
package validate

import "regexp"

var (
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
	specialRe  = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	familyIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Password checks the password policy: at least 8 characters with upper,
// lower, digit, and special characters.
func Password(password string) []string {
	var errs []string
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long")
	}
	if !upperRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		errs = append(errs, "Password must contain at least one number")
	}
	if !specialRe.MatchString(password) {
		errs = append(errs, `Password must contain at least one special character (!@#$%^&*(),.?":{}|<>)`)
	}
	return errs
}

// Username checks length (3-20) and charset (letters, digits, underscore).
func Username(username string) []string {
	var errs []string
	if len(username) < 3 {
		errs = append(errs, "Username must be at least 3 characters long")
	}
	if len(username) > 20 {
		errs = append(errs, "Username must be no more than 20 characters long")
	}
	if !usernameRe.MatchString(username) {
		errs = append(errs, "Username can only contain letters, numbers, and underscores")
	}
	return errs
}

// FamilyID checks length (min 5) and charset (letters, digits,
// underscore, hyphen).
func FamilyID(familyID string) []string {
	var errs []string
	if len(familyID) < 5 {
		errs = append(errs, "Family ID must be at least 5 characters long")
	}
	if !familyIDRe.MatchString(familyID) {
		errs = append(errs, "Family ID can only contain letters, numbers, underscores, and hyphens")
	}
	return errs
}
