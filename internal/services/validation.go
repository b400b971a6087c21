package services

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Consolidated input policy. The field rules live here so register, profile
// update and password reset all enforce the same constraints.
var (
	emailRegexp  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegexp   = regexp.MustCompile(`^[a-zA-Z ]{2,50}$`)
	mobileRegexp = regexp.MustCompile(`^[0-9]{10,15}$`)

	mobileSeparators = strings.NewReplacer(" ", "", "-", "", "+", "", "(", "", ")", "")
)

func validEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

func validName(name string) bool {
	return nameRegexp.MatchString(name)
}

// validMobile checks for 10-15 digits after stripping common separators.
func validMobile(mobile string) bool {
	return mobileRegexp.MatchString(mobileSeparators.Replace(mobile))
}

// validPassword requires at least 6 characters with at least one letter and
// one digit.
func validPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

func validLocation(location string) bool {
	return len(location) >= 2 && len(location) <= 100
}

// parseDate accepts RFC 3339 timestamps and bare dates.
func parseDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// validAge reports whether the date of birth yields an age in [13, 120].
func validAge(dob time.Time, now time.Time) bool {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age >= 13 && age <= 120
}

// normalizeEmail lowercases and trims so email uniqueness is
// case-insensitive everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
