package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAvatar(t *testing.T) {
	base := "https://avatar.iran.liara.run/public"

	tests := []struct {
		name     string
		doctor   string
		gender   string
		expected string
	}{
		{
			name:     "female doctor",
			doctor:   "Jane Doe",
			gender:   "FEMALE",
			expected: base + "/girl?username=janedoe",
		},
		{
			name:     "male doctor",
			doctor:   "John Smith",
			gender:   "MALE",
			expected: base + "/boy?username=johnsmith",
		},
		{
			name:     "unrecognized gender falls back to boy",
			doctor:   "Alex Roe",
			gender:   "OTHER",
			expected: base + "/boy?username=alexroe",
		},
		{
			name:     "internal and surrounding whitespace stripped",
			doctor:   "  Mary   Ann Lee ",
			gender:   "FEMALE",
			expected: base + "/girl?username=maryannlee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateAvatar(base, tt.doctor, tt.gender))
		})
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: ""},
		{name: "five or fewer digits unchanged", input: "12345", expected: "12345"},
		{name: "short number with separators", input: "1-2-3", expected: "123"},
		{name: "six digits split", input: "123456", expected: "12345 6"},
		{name: "full ten digits", input: "9876543210", expected: "98765 43210"},
		{name: "non-digits stripped before split", input: "(987) 654-3210", expected: "98765 43210"},
		{name: "digits beyond ten dropped", input: "987654321099999", expected: "98765 43210"},
		{name: "letters only", input: "abc", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPhoneNumber(tt.input))
		})
	}
}
