package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appai "github.com/scamradar/scamradar/internal/application/ai"
	appscans "github.com/scamradar/scamradar/internal/application/scans"
	domai "github.com/scamradar/scamradar/internal/domain/ai"
	domain "github.com/scamradar/scamradar/internal/domain/scans"
	"github.com/scamradar/scamradar/internal/middleware"
)

type Router struct {
	scansSvc *appscans.Service
	aiSvc    *appai.Service
	adminKey string
}

// NewRouter wires all routes. aiSvc may be nil (explain endpoint disabled),
// health is the prebuilt health handler from main.
func NewRouter(scansSvc *appscans.Service, aiSvc *appai.Service, adminKey string, health http.HandlerFunc) http.Handler {
	r := &Router{scansSvc: scansSvc, aiSvc: aiSvc, adminKey: adminKey}
	mux := chi.NewRouter()

	// dashboard frontend jalan dari origin lain
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)

	mux.Get("/health", health)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Post("/predict", r.wrap(r.handlePredict))
	mux.Post("/report", r.wrap(r.handleReport))

	mux.Route("/dashboard", func(rt chi.Router) {
		rt.Get("/summary", r.wrap(r.handleSummary))
		rt.Get("/categories", r.wrap(r.handleCategories))
		rt.Get("/timeline", r.wrap(r.handleTimeline))
		rt.Get("/recent", r.wrap(r.handleRecent))
	})

	mux.Post("/ai/explain", r.wrap(r.handleExplain))

	mux.Route("/admin", func(rt chi.Router) {
		rt.Use(middleware.AdminKeyAuth(adminKey))
		rt.Post("/export", r.wrap(r.handleExport))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

// wrap is the single place service errors become status codes: validation
// errors are the caller's to fix, everything else is on us.
func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		err := h(w, req)
		if err == nil {
			return
		}
		switch {
		case errors.Is(err, domain.ErrEmptyText), errors.Is(err, domain.ErrInvalidReport):
			writeError(w, http.StatusBadRequest, err)
		case errors.Is(err, domai.ErrQuotaExceeded):
			writeError(w, http.StatusTooManyRequests, err)
		case errors.Is(err, domain.ErrArchiveDisabled):
			writeError(w, http.StatusServiceUnavailable, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
	}
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(v)
}

// POST /predict
// Body: {"text": "..."}
func (r *Router) handlePredict(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrEmptyText
	}
	text := middleware.SanitizeString(body.Text)
	if err := middleware.ValidateTextLength(text); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil
	}

	outcome, err := r.scansSvc.SubmitScan(req.Context(), text)
	if err != nil {
		return err
	}
	middleware.IncrementScans(outcome.Result == domain.ResultFake)
	return writeJSON(w, outcome)
}

// POST /report
// Body: {"scam_type": "...", "description": "...", "ad_link": "..."}
func (r *Router) handleReport(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ScamType    string `json:"scam_type"`
		Description string `json:"description"`
		AdLink      string `json:"ad_link"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrInvalidReport
	}
	if err := middleware.ValidateAdLink(body.AdLink); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil
	}

	outcome, err := r.scansSvc.SubmitReport(req.Context(), appscans.ReportCommand{
		ScamType:    middleware.SanitizeString(body.ScamType),
		Description: middleware.SanitizeString(body.Description),
		AdLink:      body.AdLink,
	})
	if err != nil {
		return err
	}
	middleware.IncrementReports()
	return writeJSON(w, outcome)
}

// GET /dashboard/summary
func (r *Router) handleSummary(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, r.scansSvc.Summary(req.Context()))
}

// GET /dashboard/categories
func (r *Router) handleCategories(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, r.scansSvc.CategoryBreakdown(req.Context()))
}

// GET /dashboard/timeline
func (r *Router) handleTimeline(w http.ResponseWriter, req *http.Request) error {
	return writeJSON(w, r.scansSvc.Timeline(req.Context()))
}

// GET /dashboard/recent?limit=5
func (r *Router) handleRecent(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)
	return writeJSON(w, r.scansSvc.Recent(req.Context(), limit))
}

// POST /ai/explain
// Body: {"text": "..."}
func (r *Router) handleExplain(w http.ResponseWriter, req *http.Request) error {
	if r.aiSvc == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("ai explain not configured"))
		return nil
	}
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return domain.ErrEmptyText
	}
	text := middleware.SanitizeString(body.Text)
	if text == "" {
		return domain.ErrEmptyText
	}

	explanation, err := r.aiSvc.Explain(req.Context(), text)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write([]byte(explanation))
	return err
}

// POST /admin/export
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	url, err := r.scansSvc.ExportHistory(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, map[string]string{"url": url})
}
