package middleware

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTextLength(t *testing.T) {
	assert.NoError(t, ValidateTextLength(""))
	assert.NoError(t, ValidateTextLength(strings.Repeat("a", maxTextLength)))
	assert.Error(t, ValidateTextLength(strings.Repeat("a", maxTextLength+1)))
}

func TestValidateAdLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{"empty is optional", "", false},
		{"http", "http://example.com/ad1", false},
		{"https", "https://example.com/ad1", false},
		{"javascript scheme", "javascript:alert(1)", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"no scheme", "example.com/ad1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdLink(tt.link)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  "))
	assert.Equal(t, "abc", SanitizeString("a\x00b\x01c"))
	assert.Equal(t, "line1\nline2", SanitizeString("line1\nline2"))
	assert.Equal(t, "tab\there", SanitizeString("tab\there"))
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 0, ValidateLimit(-1))
	assert.Equal(t, 0, ValidateLimit(0))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, 100, ValidateLimit(100))
	assert.Equal(t, 100, ValidateLimit(5000))
}
