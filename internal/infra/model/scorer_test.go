package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

func writeArtifacts(t *testing.T, vectorizer, model string) (modelPath, vecPath string) {
	t.Helper()
	dir := t.TempDir()
	modelPath = filepath.Join(dir, "model.json")
	vecPath = filepath.Join(dir, "vectorizer.json")
	require.NoError(t, os.WriteFile(vecPath, []byte(vectorizer), 0o644))
	require.NoError(t, os.WriteFile(modelPath, []byte(model), 0o644))
	return modelPath, vecPath
}

const (
	// tiny fitted-artifact stand-ins: positive weights on scammy terms,
	// negative on a neutral one
	testVectorizer = `{"vocabulary":{"free":0,"money":1,"hello":2},"idf":[1.0,1.0,1.0]}`
	testModel      = `{"coef":[3.0,3.0,-2.0],"intercept":-1.0}`
)

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name       string
		vectorizer string
		model      string
	}{
		{"corrupt vectorizer", `{not json`, testModel},
		{"corrupt model", testVectorizer, `{not json`},
		{"empty vocabulary", `{"vocabulary":{},"idf":[]}`, testModel},
		{"coef length mismatch", testVectorizer, `{"coef":[1.0],"intercept":0}`},
		{"vocabulary index out of range", `{"vocabulary":{"free":5},"idf":[1.0]}`, `{"coef":[1.0],"intercept":0}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			modelPath, vecPath := writeArtifacts(t, tt.vectorizer, tt.model)
			_, err := Load(modelPath, vecPath)
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingArtifacts(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "model.json"), filepath.Join(dir, "vectorizer.json"))
	assert.Error(t, err)
}

func TestScoreLabels(t *testing.T) {
	modelPath, vecPath := writeArtifacts(t, testVectorizer, testModel)
	s, err := Load(modelPath, vecPath)
	require.NoError(t, err)

	result, prob := s.Score("FREE MONEY!!! visit http://spam.example now")
	assert.Equal(t, domain.ResultFake, result)
	assert.Greater(t, prob, 0.9)

	result, prob = s.Score("hello, is the bicycle still available?")
	assert.Equal(t, domain.ResultGenuine, result)
	assert.Greater(t, prob, 0.5)
}

func TestScoreUnknownTokensFallBackToIntercept(t *testing.T) {
	modelPath, vecPath := writeArtifacts(t, testVectorizer, testModel)
	s, err := Load(modelPath, vecPath)
	require.NoError(t, err)

	// nothing in vocabulary: z = intercept = -1 → genuine
	result, prob := s.Score("zzz qqq")
	assert.Equal(t, domain.ResultGenuine, result)
	assert.InDelta(t, 0.731, prob, 0.01)
}

func TestScoreProbabilityBounds(t *testing.T) {
	modelPath, vecPath := writeArtifacts(t, testVectorizer, testModel)
	s, err := Load(modelPath, vecPath)
	require.NoError(t, err)

	for _, text := range []string{"", "free", "money money money", "hello hello", "free money hello", "völlig unbekannt"} {
		result, prob := s.Score(text)
		assert.GreaterOrEqual(t, prob, 0.0)
		assert.LessOrEqual(t, prob, 1.0)
		// the label's own confidence is always at least a coin flip
		assert.GreaterOrEqual(t, prob, 0.5, "text %q result %s", text, result)
	}
}
