package postgres

import (
	"context"
	"database/sql"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

// ScanRepository keeps the history in Postgres; same contract as the mysql
// adapter, BIGSERIAL seq column preserves insertion order.
type ScanRepository struct{ db *sql.DB }

func NewScanRepository(db *sql.DB) *ScanRepository { return &ScanRepository{db: db} }

// Append insert satu record, append-only
func (r *ScanRepository) Append(ctx context.Context, s *domain.Scan) error {
	const q = `
INSERT INTO scam_scans
(id, text, result, category, probability, timestamp, source, ad_link)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8);`
	_, err := r.db.ExecContext(ctx, q,
		s.ID, s.Text, s.Result, s.Category, s.Probability, s.Timestamp,
		s.Source, s.AdLink,
	)
	return err
}

// Load full history in insertion order
func (r *ScanRepository) Load(ctx context.Context) ([]*domain.Scan, error) {
	const q = `
SELECT id, text, result, category, probability, timestamp, source, ad_link
FROM scam_scans
ORDER BY seq ASC;`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Scan
	for rows.Next() {
		var s domain.Scan
		if err := rows.Scan(
			&s.ID, &s.Text, &s.Result, &s.Category, &s.Probability, &s.Timestamp,
			&s.Source, &s.AdLink,
		); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
