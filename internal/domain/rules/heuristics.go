package rules

import "strings"

// Heuristic thresholds. Amounts beyond hugeAmount (8+ digits) read as
// implausible currency bait; lowIn/highOut frame the classic
// "invest 500, earn 500000" spread.
const (
	hugeAmount = 10_000_000
	lowIn      = 1_000
	highOut    = 100_000
)

// scamPhrases: any single hit forces a fake verdict.
var scamPhrases = []string{
	"lottery",
	"guaranteed",
	"double your money",
	"free money",
	"quick cash",
}

// bait/lure pairs: prize-style wording alone is not enough (people do write
// "congratulations"), it has to co-occur with an earnings hook. The two
// lists must not overlap as substrings or a single word would satisfy both
// ("winner" contains "win").
var (
	baitWords = []string{"lottery", "jackpot", "lucky draw", "prize"}
	lureWords = []string{"earn", "win", "profit", "reward", "claim"}
)

// Verdict is the outcome of the heuristic override engine. Triggered lists
// the names of the rules that fired, for audit logs and the explainer.
type Verdict struct {
	Forced    bool
	Triggered []string
}

// Evaluate runs every override rule against the normalized text. The rules
// are independent; any one firing forces a fake verdict. Total function,
// never fails.
func Evaluate(n Normalized) Verdict {
	var v Verdict
	if containsAny(n.Text, scamPhrases) {
		v.hit("scam_phrase")
	}
	if containsAny(n.Text, baitWords) && containsAny(n.Text, lureWords) {
		v.hit("bait_lure_combo")
	}
	if maxNumber(n.Numbers) >= hugeAmount {
		v.hit("unrealistic_amount")
	}
	if disproportionateReturn(n.Numbers) {
		v.hit("disproportionate_return")
	}
	return v
}

func (v *Verdict) hit(rule string) {
	v.Forced = true
	v.Triggered = append(v.Triggered, rule)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func maxNumber(nums []int64) int64 {
	var max int64
	for _, n := range nums {
		if n > max {
			max = n
		}
	}
	return max
}

// disproportionateReturn flags a small stake next to a huge payout. Equal
// min and max never trigger: two identical numbers carry no disproportion.
func disproportionateReturn(nums []int64) bool {
	if len(nums) < 2 {
		return false
	}
	min, max := nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return min < lowIn && max > highOut && min != max
}
