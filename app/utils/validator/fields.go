package validator

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field validators used by the registration flow. Each returns whether the
// value is acceptable and, when it is not, the message surfaced verbatim to
// the caller. Checks are ordered; the first failing check decides the message.

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	dobPattern   = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

	lowercasePattern = regexp.MustCompile(`[a-z]`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	numberPattern    = regexp.MustCompile(`[0-9]`)
	symbolPattern    = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidateName checks that a name is at least 2 characters long.
// Length is counted in characters, not bytes.
func ValidateName(name string) (bool, string) {
	if utf8.RuneCountInString(name) < 2 {
		return false, "Name must be at least 2 characters long."
	}
	return true, ""
}

// ValidateEmail checks the local@domain.extension shape. The extension must
// be at least two letters and neither part may contain whitespace.
func ValidateEmail(email string) (bool, string) {
	if !emailPattern.MatchString(email) {
		return false, "Invalid email format."
	}
	return true, ""
}

// ValidatePassword checks password complexity: at least 8 characters with one
// lowercase letter, one uppercase letter, one number and one symbol. The
// length check takes priority over the character-class checks.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long."
	}
	if !lowercasePattern.MatchString(password) {
		return false, "Password must include at least one lowercase letter."
	}
	if !uppercasePattern.MatchString(password) {
		return false, "Password must include at least one uppercase letter."
	}
	if !numberPattern.MatchString(password) {
		return false, "Password must include at least one number."
	}
	if !symbolPattern.MatchString(password) {
		return false, "Password must include at least one symbol."
	}
	return true, ""
}

// ValidateDateOfBirth checks the exact dd/mm/yyyy pattern first, then that
// the triple denotes a real calendar date. A malformed pattern and an
// impossible date produce distinct messages.
func ValidateDateOfBirth(dateStr string) (bool, string) {
	if !dobPattern.MatchString(dateStr) {
		return false, "Date must be in format dd/mm/yyyy."
	}

	parts := strings.Split(dateStr, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if !isRealDate(day, month, year) {
		return false, "Invalid date. Please use a valid date in format dd/mm/yyyy."
	}
	return true, ""
}

func isRealDate(day, month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > daysInMonth(month, year) {
		return false
	}
	return true
}

func daysInMonth(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// isLeapYear applies the proleptic Gregorian rule: divisible by 4, except
// centuries not divisible by 400.
func isLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}
