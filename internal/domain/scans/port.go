package scans

import "context"

// Repository port (interface untuk persistence).
//
// Load returns the full history in insertion order. Implementations return
// an error for an unreadable backend; the application layer decides whether
// that means "empty history" (it does, see the service).
//
// Append durably records one scan. A failed Append means the scan was not
// processed, even if the verdict was computed.
type Repository interface {
	Load(ctx context.Context) ([]*Scan, error)
	Append(ctx context.Context, s *Scan) error
}

// Scorer port (interface untuk statistical model).
// Probability is the model's confidence that the returned result is
// correct, in [0,1].
type Scorer interface {
	Score(text string) (Result, float64)
}

// ArchiveStore port (interface untuk export snapshot history, e.g. for the
// retraining pipeline).
type ArchiveStore interface {
	UploadJSON(ctx context.Context, key string, data []byte) (string, error)
}
