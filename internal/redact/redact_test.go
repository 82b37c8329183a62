package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/limud/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "Error 503, Message: The model is overloaded. Please try again later.",
			expected: "Error 503, Message: The model is overloaded. Please try again later.",
		},
		{
			name:     "google api key in url",
			input:    "Post \"https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key=AIzaSyA1234567890abcdefghijklmnopqrstu\": EOF",
			expected: "Post \"https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key=[REDACTED_KEY]\": EOF",
		},
		{
			name:     "api key assignment",
			input:    "using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "using [REDACTED_KEY] for authentication",
		},
		{
			name:     "header style key",
			input:    "x-goog-api-key: abcdef1234567890 rejected",
			expected: "[REDACTED_KEY] rejected",
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer ya29.a0AfH6SMBx3",
			expected: "Authorization: [REDACTED_TOKEN]",
		},
		{
			name:     "password parameter",
			input:    "request failed with password=secret123 in payload",
			expected: "request failed with [REDACTED_CREDENTIAL] in payload",
		},
		{
			name:     "plain words after key are kept",
			input:    "API key not valid. Please pass a valid API key.",
			expected: "API key not valid. Please pass a valid API key.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactStackTrace(t *testing.T) {
	input := "panic: runtime error\n\tmain.go:10\n\tmain.go:20"
	assert.Contains(t, redact.String(input), redact.RedactedStackPlaceholder)
	assert.NotContains(t, redact.String(input), "main.go:10")
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("generate: %w", errors.New("bad key=AIzaSyA1234567890abcdefghijklmnopqrstu"))
	assert.Equal(t, "generate: bad key=[REDACTED_KEY]", redact.Error(err))
}
