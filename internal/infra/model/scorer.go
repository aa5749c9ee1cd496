package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

// Scorer adapts the trained classifier artifacts to the Scorer port. The
// artifacts come out of the offline training pipeline: a fitted TF-IDF
// vectorizer (vocabulary + idf weights) and a fitted logistic regression
// (one coefficient per vocabulary slot + intercept). Both are read once at
// startup and never reloaded.
type Scorer struct {
	vec vectorizer
	clf classifier
}

type vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

type classifier struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// Load reads both artifacts and validates that they agree on vocabulary
// size. Any failure here is fatal for the process: serving predictions with
// a broken model would return garbage on every request.
func Load(modelPath, vectorizerPath string) (*Scorer, error) {
	s := &Scorer{}
	if err := readJSON(vectorizerPath, &s.vec); err != nil {
		return nil, fmt.Errorf("load vectorizer: %w", err)
	}
	if err := readJSON(modelPath, &s.clf); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if len(s.vec.Vocabulary) == 0 || len(s.vec.IDF) == 0 {
		return nil, fmt.Errorf("vectorizer %s: empty vocabulary", vectorizerPath)
	}
	if len(s.clf.Coef) != len(s.vec.IDF) {
		return nil, fmt.Errorf("model %s: %d coefficients for %d vocabulary terms",
			modelPath, len(s.clf.Coef), len(s.vec.IDF))
	}
	for term, idx := range s.vec.Vocabulary {
		if idx < 0 || idx >= len(s.vec.IDF) {
			return nil, fmt.Errorf("vectorizer %s: term %q maps outside idf table", vectorizerPath, term)
		}
	}
	return s, nil
}

func readJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

var (
	urlPattern      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	nonAlnumPattern = regexp.MustCompile(`[^a-z0-9\s]`)
)

// Score vectorizes the text (same cleaning the training pipeline applies:
// lowercase, strip URLs, strip punctuation) and runs the logistic model.
// The returned probability is the confidence in the returned label.
func (s *Scorer) Score(text string) (domain.Result, float64) {
	x := s.transform(text)

	z := s.clf.Intercept
	for idx, val := range x {
		z += s.clf.Coef[idx] * val
	}
	pFake := 1.0 / (1.0 + math.Exp(-z))

	if pFake >= 0.5 {
		return domain.ResultFake, pFake
	}
	return domain.ResultGenuine, 1.0 - pFake
}

// transform builds the sparse, L2-normalized tf-idf vector for one text.
func (s *Scorer) transform(text string) map[int]float64 {
	clean := strings.ToLower(text)
	clean = urlPattern.ReplaceAllString(clean, " ")
	clean = nonAlnumPattern.ReplaceAllString(clean, " ")

	x := make(map[int]float64)
	for _, tok := range strings.Fields(clean) {
		if idx, ok := s.vec.Vocabulary[tok]; ok {
			x[idx] += s.vec.IDF[idx]
		}
	}

	var norm float64
	for _, v := range x {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range x {
			x[idx] /= norm
		}
	}
	return x
}
