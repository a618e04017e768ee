// Package validator holds the field-shape rules that gate what may
// enter the resident table. Predicates only check shape; they never
// normalize (callers fold case after validation passes).
package validator

import (
	"regexp"
	"strings"
	"time"
)

var (
	reRegistrationNo = regexp.MustCompile(`^[A-Z]{2,3}-?[0-9]{4,8}$`)
	reName           = regexp.MustCompile(`^[A-Za-z\s.\-]{2,50}$`)
	rePhone          = regexp.MustCompile(`^\+?[0-9\s\-]{10,15}$`)
	reEmail          = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	reRoom           = regexp.MustCompile(`^[A-Z0-9\-]{1,10}$`)
)

// IsValidRegistrationID accepts 2-3 letters, an optional hyphen and
// 4-8 digits, case-insensitively (the stored form is uppercase).
func IsValidRegistrationID(s string) bool {
	return reRegistrationNo.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}

func IsValidName(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && reName.MatchString(s)
}

func IsValidPhone(s string) bool {
	return rePhone.MatchString(strings.TrimSpace(s))
}

// IsValidEmail treats the empty string as valid; email is optional.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return reEmail.MatchString(s)
}

// IsValidDate accepts ISO calendar dates only. time.Parse rejects
// impossible dates such as 2023-02-30.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	return err == nil
}

func IsValidRoom(s string) bool {
	s = strings.ToUpper(strings.TrimSpace(s))
	return len(s) >= 1 && reRoom.MatchString(s)
}
