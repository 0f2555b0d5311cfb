// File path: internal/api/profile_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bizdocai/bizdoc/internal/model"
)

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state.Profile())
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var profile model.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	s.state.SetProfile(r.Context(), profile)
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleGetLogo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"logo": s.state.Logo()})
}

func (s *Server) handlePutLogo(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Logo string `json:"logo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	s.state.SetLogo(r.Context(), payload.Logo)
	writeJSON(w, http.StatusOK, map[string]string{"logo": payload.Logo})
}

func (s *Server) handleDeleteLogo(w http.ResponseWriter, r *http.Request) {
	s.state.SetLogo(r.Context(), "")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetClientDetails(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state.ClientDetails())
}

func (s *Server) handlePutClientDetails(w http.ResponseWriter, r *http.Request) {
	var details model.ClientDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	s.state.SetClientDetails(r.Context(), details)
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) handleCounters(w http.ResponseWriter, r *http.Request) {
	invoice, quote := s.state.Counters()
	writeJSON(w, http.StatusOK, map[string]int{"invoice": invoice, "quote": quote})
}
