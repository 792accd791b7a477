// Package api provides the HTTP REST API server for EdgarAI.
//
// It exposes the tool suite over /api/v1: filings, facts, metric
// discovery, company search, SEC feeds, status and self-test.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/seenimoa/edgarai/internal/config"
	"github.com/seenimoa/edgarai/internal/tools"
	"github.com/seenimoa/edgarai/pkg/models"
)

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	cfg    *config.Config
	suite  *tools.Suite
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, suite *tools.Suite) *Server {
	srv := &Server{cfg: cfg, suite: suite}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-done:
	}
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		// Filings
		r.Get("/filings/{ticker}", s.handleFilings)
		r.Get("/filings/{ticker}/annual", s.handleAnnualReport)
		r.Get("/filings/{ticker}/quarterly", s.handleQuarterlyReport)
		r.Get("/filings/{ticker}/current", s.handleCurrentReports)
		r.Get("/filings/{ticker}/proxies", s.handleProxyStatements)
		r.Get("/filings/{ticker}/insiders", s.handleInsiderTransactions)
		r.Get("/filings/{ticker}/ownership", s.handleBeneficialOwnership)
		r.Get("/filings/{ticker}/content", s.handleFilingContent)

		// Facts
		r.Get("/facts/{ticker}", s.handleFacts)
		r.Get("/facts/{ticker}/concept/{concept}", s.handleConcept)
		r.Get("/facts/{ticker}/discover", s.handleDiscover)

		// Search, feeds, meta
		r.Get("/search", s.handleSearch)
		r.Get("/feeds/{source}", s.handleFeed)
		r.Get("/tools", s.handleTools)
		r.Get("/status", s.handleStatus)
		r.Get("/selftest", s.handleSelfTest)
	})

	return r
}

// APIResponse is the standard JSON envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ============================================================
// Handlers
// ============================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":  "ok",
			"service": "edgarai",
		},
	})
}

func (s *Server) handleFilings(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	q := r.URL.Query()
	s.writeToolResult(w, s.suite.CompanyFilings(r.Context(),
		ticker,
		q.Get("form_type"),
		queryInt(r, "limit"),
		q.Get("start_date"),
		q.Get("end_date"),
	))
}

func (s *Server) handleAnnualReport(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.LatestAnnualReport(r.Context(), chi.URLParam(r, "ticker")))
}

func (s *Server) handleQuarterlyReport(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.LatestQuarterlyReport(r.Context(), chi.URLParam(r, "ticker")))
}

func (s *Server) handleCurrentReports(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.RecentCurrentReports(r.Context(), chi.URLParam(r, "ticker"), queryInt(r, "limit")))
}

func (s *Server) handleProxyStatements(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.ProxyStatements(r.Context(), chi.URLParam(r, "ticker"), queryInt(r, "limit")))
}

func (s *Server) handleInsiderTransactions(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.InsiderTransactions(r.Context(), chi.URLParam(r, "ticker"), queryInt(r, "limit")))
}

func (s *Server) handleBeneficialOwnership(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.BeneficialOwnership(r.Context(), chi.URLParam(r, "ticker"), queryInt(r, "limit")))
}

func (s *Server) handleFilingContent(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.FilingContent(r.Context(),
		chi.URLParam(r, "ticker"),
		r.URL.Query().Get("filing_type"),
		tools.SplitMetrics(r.URL.Query().Get("metrics")),
	))
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.CompanyFacts(r.Context(),
		chi.URLParam(r, "ticker"),
		tools.SplitMetrics(r.URL.Query().Get("metrics")),
	))
}

func (s *Server) handleConcept(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.Concept(r.Context(),
		chi.URLParam(r, "ticker"),
		chi.URLParam(r, "concept"),
	))
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.DiscoverMetrics(r.Context(),
		chi.URLParam(r, "ticker"),
		r.URL.Query().Get("filter"),
	))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	s.writeToolResult(w, s.suite.SearchCompanies(r.Context(), query, queryInt(r, "limit")))
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.LatestFeed(r.Context(), chi.URLParam(r, "source"), queryInt(r, "limit")))
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: tools.Registry()})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeToolResult(w, s.suite.APIStatus(r.Context()))
}

func (s *Server) handleSelfTest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.suite.SelfTest(r.Context())})
}

// ============================================================
// Helpers
// ============================================================

// writeToolResult maps the suite's envelope onto the HTTP response:
// success envelopes are 200, error envelopes are 422 with the payload
// carried through so callers see the message and suggestion.
func (s *Server) writeToolResult(w http.ResponseWriter, result *models.ToolResult) {
	if result.OK() {
		writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: result.Data})
		return
	}
	writeJSON(w, http.StatusUnprocessableEntity, APIResponse{
		Success: false,
		Data:    result,
		Error:   result.Error,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, APIResponse{Success: false, Error: msg})
}

func queryInt(r *http.Request, name string) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.cfg.API.Host, s.cfg.API.Port)
}
