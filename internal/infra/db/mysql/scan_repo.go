package mysql

import (
	"context"
	"database/sql"

	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

// ScanRepository is the MySQL-backed history store. Appends are plain
// inserts; insertion order is preserved by the auto-increment seq column,
// so Load returns the same ordered history the file store would.
type ScanRepository struct {
	db *sql.DB
}

func NewScanRepository(db *sql.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Schema:
//
//	CREATE TABLE scam_scans (
//	  seq BIGINT AUTO_INCREMENT PRIMARY KEY,
//	  id CHAR(36) NOT NULL,
//	  text TEXT NOT NULL,
//	  result VARCHAR(16) NOT NULL,
//	  category VARCHAR(64) NOT NULL,
//	  probability DOUBLE NOT NULL,
//	  timestamp BIGINT NOT NULL,
//	  source VARCHAR(32) NOT NULL DEFAULT '',
//	  ad_link VARCHAR(512) NOT NULL DEFAULT ''
//	);

// Append insert satu record, append-only (tidak ada update/delete)
func (r *ScanRepository) Append(ctx context.Context, s *domain.Scan) error {
	const q = `
INSERT INTO scam_scans
(id, text, result, category, probability, timestamp, source, ad_link)
VALUES (?,?,?,?,?,?,?,?);
`
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
ORDER BY seq ASC;
`
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
