package scans

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scamradar/scamradar/internal/application"
	"github.com/scamradar/scamradar/internal/domain/rules"
	domain "github.com/scamradar/scamradar/internal/domain/scans"
)

// recentTextLimit bounds the text shown in the recent-scans view. Display
// only — the stored record keeps up to domain.StoredTextLimit runes.
const recentTextLimit = 60

// Service implements use-cases untuk Scan: classify + append, user
// reports, dan semua dashboard views. Aggregations are recomputed from the
// repository on every call, there is no cached state here.
type Service struct {
	Repo    domain.Repository
	Scorer  domain.Scorer
	Archive domain.ArchiveStore // optional, nil when export is disabled
	Clock   application.Clock

	// RecentLimit is the default window for Recent when the caller does
	// not pass one.
	RecentLimit int
}

//
// ==== USE CASES ====
//

type ScanOutcome struct {
	Result      domain.Result   `json:"result"`
	Probability float64         `json:"probability"`
	Category    domain.Category `json:"category"`
}

// SubmitScan runs the full pipeline: normalize → categorize + heuristics +
// statistical score → combine → append. The scan only counts as processed
// once the record is durably stored.
func (s *Service) SubmitScan(ctx context.Context, text string) (ScanOutcome, error) {
	if strings.TrimSpace(text) == "" {
		return ScanOutcome{}, domain.ErrEmptyText
	}

	norm := rules.Normalize(text)
	category := rules.Categorize(norm)
	verdict := rules.Evaluate(norm)
	result, probability := s.Scorer.Score(text)
	result, probability = rules.Combine(result, probability, verdict)

	record := &domain.Scan{
		ID:          domain.ScanID(uuid.New().String()),
		Text:        domain.CapText(text),
		Result:      result,
		Category:    category,
		Probability: probability,
		Timestamp:   s.Clock.Now().Unix(),
	}
	if err := s.Repo.Append(ctx, record); err != nil {
		return ScanOutcome{}, fmt.Errorf("append scan: %w", err)
	}

	return ScanOutcome{Result: result, Probability: probability, Category: category}, nil
}

type ReportCommand struct {
	ScamType    string
	Description string
	AdLink      string
}

type ReportOutcome struct {
	ID       domain.ScanID   `json:"id"`
	Result   domain.Result   `json:"result"`
	Category domain.Category `json:"category"`
}

// SubmitReport records a user-submitted scam verbatim: no scorer, no
// heuristics, probability pinned to 1.0. The category is the user's scam
// type, trimmed and lowercased, kept outside the classifier taxonomy on
// purpose.
func (s *Service) SubmitReport(ctx context.Context, cmd ReportCommand) (ReportOutcome, error) {
	scamType := strings.TrimSpace(cmd.ScamType)
	description := strings.TrimSpace(cmd.Description)
	if scamType == "" || description == "" {
		return ReportOutcome{}, domain.ErrInvalidReport
	}

	record := &domain.Scan{
		ID:          domain.ScanID(uuid.New().String()),
		Text:        domain.CapText(description),
		Result:      domain.ResultFake,
		Category:    domain.Category(strings.ToLower(scamType)),
		Probability: 1.0,
		Timestamp:   s.Clock.Now().Unix(),
		Source:      domain.SourceUserReport,
		AdLink:      strings.TrimSpace(cmd.AdLink),
	}
	if err := s.Repo.Append(ctx, record); err != nil {
		return ReportOutcome{}, fmt.Errorf("append report: %w", err)
	}

	return ReportOutcome{ID: record.ID, Result: record.Result, Category: record.Category}, nil
}

//
// ==== DASHBOARD VIEWS ====
//

type SummaryView struct {
	TotalScans  int            `json:"total_scans"`
	Fake        int            `json:"fake"`
	Genuine     int            `json:"genuine"`
	Categories  map[string]int `json:"categories"`
	TopCategory string         `json:"top_category"`
}

// Summary counts the whole history. Top category is deterministic: ties go
// to the category that first appeared earliest in the history, because a
// later category only takes over with a strictly greater count.
func (s *Service) Summary(ctx context.Context) SummaryView {
	history := s.history(ctx)

	view := SummaryView{
		TotalScans:  len(history),
		Categories:  make(map[string]int, 8),
		TopCategory: "none",
	}

	var order []string
	for _, scan := range history {
		switch scan.Result {
		case domain.ResultFake:
			view.Fake++
		case domain.ResultGenuine:
			view.Genuine++
		}
		cat := string(scan.Category)
		if _, seen := view.Categories[cat]; !seen {
			order = append(order, cat)
		}
		view.Categories[cat]++
	}

	best := 0
	for _, cat := range order {
		if view.Categories[cat] > best {
			best = view.Categories[cat]
			view.TopCategory = cat
		}
	}
	return view
}

type BreakdownView struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
}

// CategoryBreakdown returns the histogram as parallel arrays for charting,
// labels in order of first occurrence in the history.
func (s *Service) CategoryBreakdown(ctx context.Context) BreakdownView {
	view := BreakdownView{Labels: []string{}, Counts: []int{}}
	index := make(map[string]int)

	for _, scan := range s.history(ctx) {
		cat := string(scan.Category)
		i, seen := index[cat]
		if !seen {
			index[cat] = len(view.Labels)
			view.Labels = append(view.Labels, cat)
			view.Counts = append(view.Counts, 1)
			continue
		}
		view.Counts[i]++
	}
	return view
}

type TimelineView struct {
	Dates   []string `json:"dates"`
	Fake    []int    `json:"fake"`
	Genuine []int    `json:"genuine"`
}

// Timeline buckets records per calendar date (server local time), dates
// ascending, each date once. Insertion-ordered history with
// non-decreasing timestamps means first occurrence order is already
// ascending, no sort needed.
func (s *Service) Timeline(ctx context.Context) TimelineView {
	view := TimelineView{Dates: []string{}, Fake: []int{}, Genuine: []int{}}
	index := make(map[string]int)

	for _, scan := range s.history(ctx) {
		date := time.Unix(scan.Timestamp, 0).Format("2006-01-02")
		i, seen := index[date]
		if !seen {
			i = len(view.Dates)
			index[date] = i
			view.Dates = append(view.Dates, date)
			view.Fake = append(view.Fake, 0)
			view.Genuine = append(view.Genuine, 0)
		}
		switch scan.Result {
		case domain.ResultFake:
			view.Fake[i]++
		case domain.ResultGenuine:
			view.Genuine[i]++
		}
	}
	return view
}

type RecentScan struct {
	Text        string          `json:"text"`
	Result      domain.Result   `json:"result"`
	Category    domain.Category `json:"category"`
	Probability float64         `json:"probability"`
	Timestamp   int64           `json:"timestamp"`
}

// Recent returns the newest records first, text shortened for display.
func (s *Service) Recent(ctx context.Context, limit int) []RecentScan {
	if limit <= 0 {
		limit = s.RecentLimit
	}
	if limit <= 0 {
		limit = 5
	}

	history := s.history(ctx)
	out := make([]RecentScan, 0, limit)
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		scan := history[i]
		out = append(out, RecentScan{
			Text:        shorten(scan.Text),
			Result:      scan.Result,
			Category:    scan.Category,
			Probability: scan.Probability,
			Timestamp:   scan.Timestamp,
		})
	}
	return out
}

// ExportHistory uploads a snapshot of the full history to the archive
// bucket, for the offline retraining pipeline.
func (s *Service) ExportHistory(ctx context.Context) (string, error) {
	if s.Archive == nil {
		return "", domain.ErrArchiveDisabled
	}
	history := s.history(ctx)
	data, err := json.Marshal(history)
	if err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}
	key := fmt.Sprintf("exports/scans-%d.json", s.Clock.Now().Unix())
	url, err := s.Archive.UploadJSON(ctx, key, data)
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return url, nil
}

// history loads the repository and makes the documented soft-fail choice:
// an unreadable or corrupt history reads as empty so new scans keep
// working. The downside — corruption silently loses history once the next
// append rewrites the file — is accepted and logged.
func (s *Service) history(ctx context.Context) []*domain.Scan {
	history, err := s.Repo.Load(ctx)
	if err != nil {
		log.Printf("scan history unreadable, treating as empty: %v", err)
		return nil
	}
	return history
}

func shorten(text string) string {
	r := []rune(text)
	if len(r) <= recentTextLimit {
		return text
	}
	return string(r[:recentTextLimit]) + "..."
}
