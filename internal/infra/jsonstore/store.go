package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

// Store keeps the scan history as one JSON array on disk. Every append
// rewrites the whole file through a temp file in the same directory plus an
// atomic rename, so a reader sees either the old or the new history, never
// a torn one. Cost per append is O(history) — acceptable at the target
// scan volumes, known bottleneck beyond that.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the full history in insertion order. A missing file is an
// empty history; an unreadable or corrupt file is reported as an error and
// the caller decides what that means.
func (s *Store) Load(ctx context.Context) ([]*domain.Scan, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var history []*domain.Scan
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return history, nil
}

// Append reads the current history, appends the record and atomically
// replaces the file. Appends serialize on the store mutex; without it two
// concurrent read-modify-rename sequences would silently drop a record.
// A corrupt existing file is treated as empty history here as well,
// otherwise one bad file would block all new scans forever.
func (s *Store) Append(ctx context.Context, scan *domain.Scan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.Load(ctx)
	if err != nil {
		history = nil
	}
	history = append(history, scan)

	data, err := json.MarshalIndent(history, "", "    ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return s.replace(data)
}

// replace writes data to a temp file next to the target and renames it over
// the target. Same-directory temp keeps the rename on one filesystem, which
// is what makes it atomic.
func (s *Store) replace(data []byte) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
