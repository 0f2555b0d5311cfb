// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/export"
	"github.com/bizdocai/bizdoc/internal/generator"
	"github.com/bizdocai/bizdoc/internal/state"
)

type Server struct {
	router    chi.Router
	state     *state.State
	generator *generator.Service
	exporter  export.Exporter
}

func NewServer(st *state.State, gen *generator.Service, exporter export.Exporter) (*Server, error) {
	if st == nil {
		return nil, errors.New("state required")
	}
	if gen == nil {
		return nil, errors.New("generator required")
	}
	srv := &Server{
		router:    chi.NewRouter(),
		state:     st,
		generator: gen,
		exporter:  exporter,
	}
	srv.routes()
	common.Logger().Info("api: server ready")
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/generate", s.handleGenerate)

	s.router.Get("/v1/clients", s.handleListClients)
	s.router.Post("/v1/clients", s.handleAddClient)
	s.router.Delete("/v1/clients/{id}", s.handleDeleteClient)

	s.router.Get("/v1/packages", s.handleListPackages)
	s.router.Post("/v1/packages", s.handleAddPackage)
	s.router.Delete("/v1/packages/{id}", s.handleDeletePackage)

	s.router.Get("/v1/profile", s.handleGetProfile)
	s.router.Put("/v1/profile", s.handlePutProfile)

	s.router.Get("/v1/logo", s.handleGetLogo)
	s.router.Put("/v1/logo", s.handlePutLogo)
	s.router.Delete("/v1/logo", s.handleDeleteLogo)

	s.router.Get("/v1/client-details", s.handleGetClientDetails)
	s.router.Put("/v1/client-details", s.handlePutClientDetails)

	s.router.Get("/v1/counters", s.handleCounters)

	s.router.Get("/v1/document-sets", s.handleListDocumentSets)
	s.router.Post("/v1/document-sets", s.handleSaveDocumentSet)
	s.router.Put("/v1/document-sets/{id}", s.handleUpdateDocumentSet)
	s.router.Delete("/v1/document-sets/{id}", s.handleDeleteDocumentSet)
	s.router.Post("/v1/document-sets/{id}/export", s.handleExportDocumentSet)

	s.router.Get("/v1/logs", s.handleLogs)
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"logs": common.LogEntries()})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
