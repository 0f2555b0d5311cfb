// File path: internal/api/generate_handler.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/generator"
	"github.com/bizdocai/bizdoc/internal/prompt"
	"github.com/bizdocai/bizdoc/internal/state"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	common.Logger().Info("api: generate requested",
		"sla", req.SLA, "quote", req.Quote, "invoice", req.Invoice, "package", req.PackageID != "")

	result, err := s.generator.Generate(r.Context(), req)
	if err != nil {
		var genErr *generator.GenerationError
		switch {
		case errors.As(err, &genErr):
			writeError(w, http.StatusBadGateway, genErr)
		case errors.Is(err, prompt.ErrNoSelection), errors.Is(err, state.ErrNotFound):
			writeError(w, http.StatusBadRequest, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	writeJSON(w, http.StatusOK, result)
}
