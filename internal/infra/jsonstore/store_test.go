package jsonstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

func record(id string, ts int64) *domain.Scan {
	return &domain.Scan{
		ID:          domain.ScanID(id),
		Text:        "some ad text",
		Result:      domain.ResultFake,
		Category:    domain.CategoryMoney,
		Probability: 0.9,
		Timestamp:   ts,
	}
}

func TestLoadMissingFileIsEmptyHistory(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "scans.json"))
	history, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAppendThenReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scans.json")
	ctx := context.Background()

	s := New(path)
	require.NoError(t, s.Append(ctx, record("a", 1)))
	require.NoError(t, s.Append(ctx, record("b", 2)))

	// fresh store instance = process restart
	history, err := New(path).Load(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.ScanID("a"), history[0].ID)
	assert.Equal(t, domain.ScanID("b"), history[1].ID)
}

func TestAppendGrowsByExactlyOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scans.json")
	ctx := context.Background()
	s := New(path)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Append(ctx, record(id, int64(i))))
		history, err := s.Load(ctx)
		require.NoError(t, err)
		require.Len(t, history, i+1)
		assert.Equal(t, domain.ScanID(id), history[len(history)-1].ID)
	}
}

func TestLoadCorruptFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scans.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).Load(context.Background())
	assert.Error(t, err)
}

func TestAppendRecoversFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scans.json")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
	ctx := context.Background()

	s := New(path)
	require.NoError(t, s.Append(ctx, record("fresh", 1)))

	history, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.ScanID("fresh"), history[0].ID)
}

// A crash between temp-file write and rename leaves a stray temp file but
// the target keeps its prior complete content.
func TestStrayTempFileDoesNotCorruptHistory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scans.json")
	ctx := context.Background()

	s := New(path)
	require.NoError(t, s.Append(ctx, record("a", 1)))

	// simulate the interrupted writer
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scans.json.tmp-123"), []byte(`[{"partial`), 0o644))

	history, err := New(path).Load(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.ScanID("a"), history[0].ID)
}

func TestAppendFailurePropagates(t *testing.T) {
	// target directory does not exist, temp file creation must fail
	s := New(filepath.Join(t.TempDir(), "missing", "scans.json"))
	err := s.Append(context.Background(), record("a", 1))
	assert.Error(t, err)
}

func TestOptionalFieldsTolerated(t *testing.T) {
	// records written before source/ad_link existed must decode cleanly
	path := filepath.Join(t.TempDir(), "scans.json")
	old := `[{"text":"old ad","result":"genuine","category":"general","probability":0.6,"timestamp":100}]`
	require.NoError(t, os.WriteFile(path, []byte(old), 0o644))

	history, err := New(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Empty(t, history[0].Source)
	assert.Empty(t, history[0].AdLink)
	assert.Empty(t, history[0].ID)
	assert.Equal(t, domain.ResultGenuine, history[0].Result)
}
