package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	stats "copulagof/adapters/stats/gof"
	"copulagof/domain/copula"
	"copulagof/domain/core"
	"copulagof/domain/gof"
	"copulagof/internal"
	"copulagof/internal/config"
	"copulagof/internal/preprocess"
	"copulagof/internal/report"
	"copulagof/ports"
)

// Server exposes the scoring core over HTTP
type Server struct {
	router   *chi.Mux
	engine   *stats.Engine
	ledger   ports.ScoreLedger // nil when persistence is not configured
	defaults config.ScoringConfig
	logger   *internal.Logger
}

// NewServer wires the HTTP surface around an engine and optional ledger
func NewServer(engine *stats.Engine, ledger ports.ScoreLedger, defaults config.ScoringConfig, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	s := &Server{
		router:   chi.NewRouter(),
		engine:   engine,
		ledger:   ledger,
		defaults: defaults,
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1/gof", func(r chi.Router) {
		r.Post("/score", s.handleScore)
		r.Post("/independence", s.handleIndependence)
		r.Get("/runs", s.handleListRuns)
		r.Get("/runs/{id}", s.handleGetRun)
		r.Get("/runs/{id}/report", s.handleRunReport)
	})
}

// Handler returns the root http.Handler
func (s *Server) Handler() http.Handler {
	return s.router
}

type scoreRequest struct {
	U          []float64 `json:"u"`
	V          []float64 `json:"v"`
	Families   []int     `json:"families,omitempty"`
	Alpha      *float64  `json:"alpha,omitempty"`
	Correction string    `json:"correction,omitempty"`
	Rotations  *bool     `json:"rotations,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params, err := s.buildParams(req)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, v, err := preprocess.Clean(req.U, req.V)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	matrix, err := s.engine.ScoreMatrix(r.Context(), u, v, params)
	if err != nil {
		s.logger.Error("scoring failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "scoring failed")
		return
	}

	run := gof.NewScoringRun(len(u), params, matrix)
	if s.ledger != nil {
		if err := s.ledger.SaveRun(r.Context(), run); err != nil {
			// The computed result is still worth returning
			s.logger.Warn("failed to persist run %s: %v", run.ID, err)
		}
	}

	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleIndependence(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, v, err := preprocess.Clean(req.U, req.V)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := stats.IndependenceTest(u, v)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		s.writeError(w, http.StatusNotFound, "persistence not configured")
		return
	}

	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	runs, err := s.ledger.ListRuns(r.Context(), limit)
	if err != nil {
		s.logger.Error("listing runs failed: %v", err)
		s.writeError(w, http.StatusInternalServerError, "listing runs failed")
		return
	}

	s.writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	run, ok := s.loadRun(w, r)
	if !ok {
		return
	}

	md := report.BuildMarkdown(run)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(report.RenderHTML(md))
}

func (s *Server) loadRun(w http.ResponseWriter, r *http.Request) (*gof.ScoringRun, bool) {
	if s.ledger == nil {
		s.writeError(w, http.StatusNotFound, "persistence not configured")
		return nil, false
	}

	id := core.RunID(chi.URLParam(r, "id"))
	run, err := s.ledger.GetRun(r.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			s.writeError(w, http.StatusNotFound, "run not found")
			return nil, false
		}
		s.logger.Error("loading run %s failed: %v", id, err)
		s.writeError(w, http.StatusInternalServerError, "loading run failed")
		return nil, false
	}
	return run, true
}

func (s *Server) buildParams(req scoreRequest) (gof.Params, error) {
	families := s.defaults.Families
	if len(req.Families) > 0 {
		families = make([]copula.Family, len(req.Families))
		for i, code := range req.Families {
			families[i] = copula.Family(code)
		}
	}

	alpha := s.defaults.Alpha
	if req.Alpha != nil {
		alpha = *req.Alpha
	}

	correction := s.defaults.Correction
	if req.Correction != "" {
		parsed, err := gof.ParseCorrection(req.Correction)
		if err != nil {
			return gof.Params{}, err
		}
		correction = parsed
	}

	rotations := s.defaults.Rotations
	if req.Rotations != nil {
		rotations = *req.Rotations
	}

	return gof.NewParams(families, correction, alpha, rotations)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding response failed: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
