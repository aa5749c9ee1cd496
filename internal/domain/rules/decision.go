package rules

import domain "github.com/scamradar/scamradar/internal/domain/scans"

// ConfidenceFloor is the minimum probability reported when a heuristic
// forces a fake verdict: the rules are confident even when the model is
// not.
const ConfidenceFloor = 0.85

// Combine merges the statistical verdict with the heuristic one. The
// override is one-directional — rules can push a verdict to fake, they can
// never rescue a statistically fake text back to genuine.
func Combine(result domain.Result, probability float64, v Verdict) (domain.Result, float64) {
	if !v.Forced {
		return result, probability
	}
	if probability < ConfidenceFloor {
		probability = ConfidenceFloor
	}
	return domain.ResultFake, probability
}
