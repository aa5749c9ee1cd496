package rules

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		text    string
		numbers []int64
	}{
		{
			name: "lowercases",
			in:   "Earn MONEY Fast",
			text: "earn money fast",
		},
		{
			name:    "extracts digit runs",
			in:      "invest 500 get 500000 in 30 days",
			text:    "invest 500 get 500000 in 30 days",
			numbers: []int64{500, 500000, 30},
		},
		{
			name:    "digits glued to letters still count",
			in:      "abc123def456",
			text:    "abc123def456",
			numbers: []int64{123, 456},
		},
		{
			name:    "trailing run is flushed",
			in:      "win 9000",
			text:    "win 9000",
			numbers: []int64{9000},
		},
		{
			name: "empty input",
			in:   "",
			text: "",
		},
		{
			name: "no digits",
			in:   "hello there",
			text: "hello there",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.numbers, got.Numbers)
		})
	}
}

func TestNormalizeClampsOverflow(t *testing.T) {
	got := Normalize("claim your 99999999999999999999 prize")
	assert.Equal(t, []int64{math.MaxInt64}, got.Numbers)
}

func TestNormalizeIsPure(t *testing.T) {
	const in = "Win 1000 NOW"
	first := Normalize(in)
	second := Normalize(in)
	assert.Equal(t, first, second)
}
