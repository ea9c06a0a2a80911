// Package analyze provides the HTTP API: filing analysis and ad-hoc table
// annotation.
package analyze

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"statement_deltas/pkg/core/analyzer"
	"statement_deltas/pkg/core/delta"
	"statement_deltas/pkg/core/edgar"
)

// Analyzer runs a filing analysis.
type Analyzer interface {
	Run(ctx context.Context, ticker, form string) (*analyzer.Report, error)
}

// AnalyzeRequest is the query of GET /api/analyze.
type AnalyzeRequest struct {
	Ticker string `validate:"required,max=10"`
	Form   string `validate:"oneof=10-Q 10-K 6-K"`
}

// CellInput is one cell of a posted table.
type CellInput struct {
	Text   string `json:"text"`
	Header bool   `json:"header"`
}

// RowInput is one row of a posted table.
type RowInput struct {
	Cells []CellInput `json:"cells"`
}

// AnnotateRequest is the body of POST /api/annotate.
type AnnotateRequest struct {
	Kind string     `json:"kind" validate:"required"`
	Rows []RowInput `json:"rows" validate:"required"`
}

// AnnotateResponse is the annotated table with its badge counts.
type AnnotateResponse struct {
	Kind    delta.StatementKind `json:"kind"`
	Table   delta.Table         `json:"table"`
	Summary delta.Counts        `json:"summary"`
}

// AnnotateHTMLRequest is the body of POST /api/annotate/html.
type AnnotateHTMLRequest struct {
	Kind string `json:"kind" validate:"required"`
	HTML string `json:"html" validate:"required"`
}

// AnnotateHTMLResponse carries the annotated markup.
type AnnotateHTMLResponse struct {
	HTML    string       `json:"html"`
	Summary delta.Counts `json:"summary"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CacheClearer empties the filing cache.
type CacheClearer interface {
	Clear() error
	Dir() string
}

// Handler serves the API.
type Handler struct {
	analyzer Analyzer
	metrics  *Metrics
	cache    CacheClearer
	validate *validator.Validate
}

// NewHandler creates a Handler. metrics may be nil.
func NewHandler(a Analyzer, metrics *Metrics) *Handler {
	return &Handler{analyzer: a, metrics: metrics, validate: validator.New()}
}

// WithCache enables POST /api/cache/clear for the given filing cache.
func (h *Handler) WithCache(c CacheClearer) *Handler {
	h.cache = c
	return h
}

// Routes builds the router. allowedOrigins configures CORS.
func (h *Handler) Routes(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(CORS(allowedOrigins))
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Get("/", h.Root)
	// unprefixed path used by existing browser clients
	r.Get("/analyze", h.Analyze)
	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/analyze", h.Analyze)
		r.Post("/annotate", h.Annotate)
		r.Post("/annotate/html", h.AnnotateHTML)
		if h.cache != nil {
			r.Post("/cache/clear", h.ClearCache)
		}
	})
	return r
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"message": "SEC Analyzer API is running"})
}

// Analyze handles GET /api/analyze?ticker=AAPL&form=10-Q
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	req := AnalyzeRequest{
		Ticker: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("ticker"))),
		Form:   strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("form"))),
	}
	if req.Form == "" {
		req.Form = analyzer.DefaultForm
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	report, err := h.analyzer.Run(r.Context(), req.Ticker, req.Form)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, edgar.ErrTickerNotFound) || errors.Is(err, edgar.ErrNoFiling) {
			status = http.StatusNotFound
		}
		log.Printf("[API] analyze %s %s failed: %v", req.Ticker, req.Form, err)
		h.fail(w, r, status, err)
		return
	}

	if h.metrics != nil {
		for kind, counts := range report.Summary {
			h.metrics.RecordBadges(kind, counts)
		}
	}
	render.JSON(w, r, report)
}

// Annotate handles POST /api/annotate
func (h *Handler) Annotate(w http.ResponseWriter, r *http.Request) {
	var req AnnotateRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.fail(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	kind, err := delta.ParseStatementKind(req.Kind)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	annotated := delta.Annotate(req.table(), kind)
	summary := delta.Summary(annotated)
	if h.metrics != nil {
		h.metrics.RecordBadges(kind.String(), summary)
	}
	render.JSON(w, r, AnnotateResponse{Kind: kind, Table: annotated, Summary: summary})
}

// AnnotateHTML handles POST /api/annotate/html
func (h *Handler) AnnotateHTML(w http.ResponseWriter, r *http.Request) {
	var req AnnotateHTMLRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.fail(w, r, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}
	kind, err := delta.ParseStatementKind(req.Kind)
	if err != nil {
		h.fail(w, r, http.StatusBadRequest, err)
		return
	}

	out, summary, err := edgar.AnnotateHTMLSummary(req.HTML, kind)
	if err != nil {
		h.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordBadges(kind.String(), summary)
	}
	render.JSON(w, r, AnnotateHTMLResponse{HTML: out, Summary: summary})
}

// ClearCache handles POST /api/cache/clear
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Clear(); err != nil {
		log.Printf("[API] clear cache %s: %v", h.cache.Dir(), err)
		h.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	log.Printf("[API] cleared filing cache %s", h.cache.Dir())
	render.JSON(w, r, map[string]string{"message": "cache cleared"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}

func (req AnnotateRequest) table() delta.Table {
	t := delta.Table{Rows: make([]delta.Row, len(req.Rows))}
	for i, row := range req.Rows {
		cells := make([]delta.Cell, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = delta.Cell{Text: c.Text, Header: c.Header}
		}
		t.Rows[i] = delta.Row{Cells: cells}
	}
	t.Reindex()
	return t
}
