// Package format holds the pure presentation helpers shared by the doctor
// and appointment flows.
package format

import (
	"fmt"
	"strings"
	"unicode"
)

// GenerateAvatar derives a deterministic portrait URL for a doctor from
// their name and gender. The name is stripped of whitespace and lowercased
// to form the avatar username. Any gender other than FEMALE falls through
// to the "boy" variant.
func GenerateAvatar(baseURL, name, gender string) string {
	username := strings.ToLower(stripWhitespace(name))
	if gender == "FEMALE" {
		return fmt.Sprintf("%s/girl?username=%s", baseURL, username)
	}
	return fmt.Sprintf("%s/boy?username=%s", baseURL, username)
}

// FormatPhoneNumber normalizes a phone number to "XXXXX XXXXX". All
// non-digit characters are dropped first; five or fewer digits are
// returned as-is, and anything past ten digits is discarded.
func FormatPhoneNumber(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()
	if len(phone) <= 5 {
		return phone
	}

	first := phone[:5]
	rest := phone[5:]
	if len(rest) > 5 {
		rest = rest[:5]
	}
	return first + " " + rest
}

func stripWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
