// File path: internal/api/sets_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/bizdocai/bizdoc/internal/export"
	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/state"
)

func (s *Server) handleListDocumentSets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"documentSets": s.state.DocumentSets()})
}

func (s *Server) handleSaveDocumentSet(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Documents []model.Document `json:"documents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	set, err := s.generator.Archive(r.Context(), payload.Documents)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

func (s *Server) handleUpdateDocumentSet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var payload struct {
		Documents []model.Document `json:"documents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	set, err := s.generator.UpdateArchived(r.Context(), id, payload.Documents)
	if err != nil {
		if errors.Is(err, state.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleDeleteDocumentSet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.state.DeleteDocumentSet(r.Context(), id); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExportDocumentSet(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("export not configured"))
		return
	}
	id := chi.URLParam(r, "id")
	set, err := s.state.DocumentSet(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	var opts export.Options
	if r.Body != nil {
		// Options are optional; an empty body means the defaults.
		_ = json.NewDecoder(r.Body).Decode(&opts)
	}
	paths, err := s.exporter.ExportAll(r.Context(), set.Documents, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"files": paths})
}
