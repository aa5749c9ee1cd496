package rules

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Normalized is the lowercased view of an input text plus every embedded
// integer, ready for the category and heuristic rules. Derived once per
// request and shared by all rule evaluations.
type Normalized struct {
	Text    string
	Numbers []int64
}

// Normalize lowercases the text and extracts all maximal digit runs as
// integers. A run too large for int64 is clamped to MaxInt64 — for the
// rules such a number is simply "very large", failing would be wrong.
func Normalize(text string) Normalized {
	lower := strings.ToLower(text)
	return Normalized{Text: lower, Numbers: digitRuns(lower)}
}

func digitRuns(s string) []int64 {
	var nums []int64
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		n, err := strconv.ParseInt(s[start:end], 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			n = math.MaxInt64
		}
		nums = append(nums, n)
		start = -1
	}
	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(s))
	return nums
}
