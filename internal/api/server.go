// Package api exposes the approximation service over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"godrsa/app"
	"godrsa/domain/analysis"
	"godrsa/domain/core"
	"godrsa/internal"
	"godrsa/internal/report"
)

const maxUploadBytes = 32 << 20

// Server wires the approximation service into a chi router
type Server struct {
	router  *chi.Mux
	service *app.ApproximationService
	logger  *internal.Logger
}

// NewServer creates the HTTP server around the given service
func NewServer(service *app.ApproximationService, logger *internal.Logger) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		service: service,
		logger:  logger,
	}
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api/analyses", func(r chi.Router) {
		r.Post("/", s.handleAnalyze)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/report", s.handleReport)
		r.Delete("/{id}", s.handleDelete)
	})
}

// Handler returns the underlying HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts the server on the given port
func (s *Server) ListenAndServe(port string) error {
	s.logger.Info("listening on :%s", port)
	return http.ListenAndServe(":"+port, s.router)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze accepts a multipart table upload plus optional calculator
// settings and runs the full analysis
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("parsing upload: %w", err))
		return
	}
	file, header, err := r.FormFile("table")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("missing table file: %w", err))
		return
	}
	defer file.Close()

	calcKind := formValueOrDefault(r, "calculator", "classical")
	measure := formValueOrDefault(r, "measure", "rough_membership")
	threshold := 1.0
	if raw := r.FormValue("threshold"); raw != "" {
		threshold, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid threshold %q", raw))
			return
		}
	}
	calc, err := app.NewCalculatorFromSettings(calcKind, measure, threshold)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	// The reader works on paths, so spool the upload to a temp file keeping
	// the original extension for format dispatch
	path, cleanup, err := spoolUpload(file, header.Filename)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	defer cleanup()

	result, err := s.service.AnalyzeFile(r.Context(), path, calc)
	if err != nil {
		if core.IsInvalidValueError(err) {
			s.writeError(w, http.StatusBadRequest, err)
			return
		}
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseAnalysisID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.service.GetAnalysis(r.Context(), id)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseAnalysisID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	result, err := s.service.GetAnalysis(r.Context(), id)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	if r.URL.Query().Get("format") == "markdown" {
		md, err := report.RenderMarkdown(result)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, md)
		return
	}

	html, err := report.RenderHTML(result)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := queryIntOrDefault(r, "limit", 20)
	offset := queryIntOrDefault(r, "offset", 0)
	results, err := s.service.ListAnalyses(r.Context(), limit, offset)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	if results == nil {
		results = []*analysis.Result{}
	}
	s.writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := core.ParseAnalysisID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.service.DeleteAnalysis(r.Context(), id); err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && s.logger != nil {
		s.logger.Error("writing response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if s.logger != nil && status >= http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case core.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, core.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func formValueOrDefault(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func queryIntOrDefault(r *http.Request, key string, fallback int) int {
	if raw := r.URL.Query().Get(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			return v
		}
	}
	return fallback
}

func spoolUpload(file io.Reader, filename string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "table-*"+filepath.Ext(filename))
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("spooling upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}
	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}
