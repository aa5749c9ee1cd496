package middleware

import (
	"fmt"
	"net/url"
	"strings"
)

// Input validation and sanitization utilities for the HTTP layer. These
// guard the transport boundary only; the domain rules never fail on any
// text they receive.

// maxTextLength bounds a single submission so one request cannot carry a
// megabyte of ad copy through the pipeline.
const maxTextLength = 10000

// ValidateTextLength rejects oversized submissions
func ValidateTextLength(text string) error {
	if len(text) > maxTextLength {
		return fmt.Errorf("text too long: %d bytes (max %d)", len(text), maxTextLength)
	}
	return nil
}

// ValidateAdLink checks an optional ad link is a plain http(s) URL
func ValidateAdLink(rawURL string) error {
	if rawURL == "" {
		return nil // Optional field
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid ad link format: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid ad link scheme: %s (allowed: http, https)", u.Scheme)
	}
	return nil
}

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateLimit clamps the recent-scans limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 0 // service default applies
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}
