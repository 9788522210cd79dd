package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Date validation ("YYYY-MM-DD")
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

var monthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth checks a "YYYY-MM" billing/payment month key.
func IsValidMonth(monthStr string) bool {
	return monthRegex.MatchString(monthStr)
}

// DateInMonth reports whether an ISO date falls inside a YYYY-MM month key.
// The ledger deliberately uses a string-prefix match: "2024-01-07" is in
// "2024-01" and not in "2024-02".
func DateInMonth(dateStr, monthStr string) bool {
	return strings.HasPrefix(dateStr, monthStr)
}

var workerCodeRegex = regexp.MustCompile(`^W-\d{3,}$`)

// IsValidWorkerCode checks the site's custom worker code format (e.g. W-101).
func IsValidWorkerCode(code string) bool {
	return workerCodeRegex.MatchString(code)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// Username validation: 3-50 chars, A-Z, a-z, 0-9, ., _, -
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]{3,50}$`)

func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}
