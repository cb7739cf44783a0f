package validation

import (
	"regexp"
	"strconv"
)

var (
	alphanumericSpacePattern = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	digitsPattern            = regexp.MustCompile(`^[0-9]+$`)
)

// IsAlphanumericSpace reports whether s consists only of ASCII letters,
// digits and spaces. The empty string is rejected.
func IsAlphanumericSpace(s string) bool {
	return alphanumericSpacePattern.MatchString(s)
}

// IsPositiveInteger reports whether s is a run of digits whose value is
// greater than zero and fits in an int64.
func IsPositiveInteger(s string) bool {
	n, ok := parseDigits(s)
	return ok && n > 0
}

// IsNonNegativeInteger is IsPositiveInteger with zero allowed.
func IsNonNegativeInteger(s string) bool {
	n, ok := parseDigits(s)
	return ok && n >= 0
}

func parseDigits(s string) (int64, bool) {
	if !digitsPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
