// File path: internal/generator/service.go
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/docparse"
	"github.com/bizdocai/bizdoc/internal/llm"
	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/prompt"
	"github.com/bizdocai/bizdoc/internal/state"
	"github.com/bizdocai/bizdoc/internal/template"
)

// GenerationError reports a failed generation: either the gateway call
// failed or the model returned an error payload instead of documents.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string { return e.Message }

// Request selects the documents to generate and the project scope. PackageID
// takes precedence over FreeText when both are set.
type Request struct {
	SLA       bool   `json:"sla"`
	Quote     bool   `json:"quote"`
	Invoice   bool   `json:"invoice"`
	PackageID string `json:"packageId,omitempty"`
	FreeText  string `json:"freeText,omitempty"`
}

// Result carries the parsed documents of a successful generation.
type Result struct {
	Documents []model.Document `json:"documents"`
}

// Service orchestrates prompt assembly, the gateway call and response
// parsing against the owning application state.
type Service struct {
	state    *state.State
	provider llm.Provider
}

func NewService(st *state.State, provider llm.Provider) *Service {
	return &Service{state: st, provider: provider}
}

// Generate runs one generation end to end: validate, build the prompt,
// consume counters, call the gateway, classify error payloads, parse.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	logger := common.Logger()

	var pkg *model.ItemPackage
	if strings.TrimSpace(req.PackageID) != "" {
		found, err := s.state.Package(req.PackageID)
		if err != nil {
			return Result{}, err
		}
		pkg = &found
	}

	invoiceCounter, quoteCounter := s.state.Counters()
	built, err := prompt.Build(prompt.Request{
		Selection:      prompt.Selection{SLA: req.SLA, Quote: req.Quote, Invoice: req.Invoice},
		Client:         s.state.ClientDetails(),
		Profile:        s.state.Profile(),
		Logo:           s.state.Logo(),
		Package:        pkg,
		FreeText:       req.FreeText,
		InvoiceCounter: invoiceCounter,
		QuoteCounter:   quoteCounter,
		Now:            time.Now(),
	})
	if err != nil {
		return Result{}, err
	}

	// Numbers are consumed as soon as they appear in a prompt, whether or
	// not the call succeeds.
	s.state.CommitCounters(ctx, built.InvoiceCounter, built.QuoteCounter)

	requestID := uuid.NewString()
	logger.Info("generator: calling provider",
		"request_id", requestID, "provider", s.provider.Name(), "prompt_len", len(built.Prompt))

	raw, err := s.provider.Generate(ctx, template.SystemPrompt, built.Prompt)
	if err != nil {
		logger.Error("generator: provider call failed", "request_id", requestID, "error", err)
		return Result{}, &GenerationError{Message: fmt.Sprintf("generation failed: %v", err)}
	}
	if docparse.IsErrorPayload(raw) {
		message := docparse.StripTags(raw)
		logger.Warn("generator: provider returned error payload", "request_id", requestID)
		return Result{}, &GenerationError{Message: message}
	}

	docs := docparse.Parse(raw)
	logger.Info("generator: generation complete", "request_id", requestID, "documents", len(docs))
	return Result{Documents: docs}, nil
}

// Archive saves a generated document set. The client-company label is
// extracted once, from the first document, and never recomputed afterwards.
func (s *Service) Archive(ctx context.Context, docs []model.Document) (model.SavedDocumentSet, error) {
	if len(docs) == 0 {
		return model.SavedDocumentSet{}, errors.New("generator: no documents to archive")
	}
	now := time.Now()
	set := model.SavedDocumentSet{
		ID:            model.NewID(now),
		SavedAt:       now,
		ClientCompany: docparse.ExtractClientCompany(docs[0].HTML),
		Documents:     docs,
	}
	s.state.AddDocumentSet(ctx, set)
	common.Logger().Info("generator: document set archived",
		"set_id", set.ID, "client", set.ClientCompany, "documents", len(docs))
	return set, nil
}

// UpdateArchived replaces the documents of an archived set after editing.
// Every date marker is re-stamped and savedAt is bumped; the client-company
// label stays as it was at archival.
func (s *Service) UpdateArchived(ctx context.Context, id string, docs []model.Document) (model.SavedDocumentSet, error) {
	existing, err := s.state.DocumentSet(id)
	if err != nil {
		return model.SavedDocumentSet{}, err
	}
	if len(docs) == 0 {
		docs = existing.Documents
	}

	now := time.Now()
	refreshed := make([]model.Document, len(docs))
	for i, doc := range docs {
		html, err := docparse.RefreshDates(doc.HTML, now)
		if err != nil {
			return model.SavedDocumentSet{}, fmt.Errorf("refresh dates: %w", err)
		}
		refreshed[i] = model.Document{Type: doc.Type, HTML: html}
	}

	existing.Documents = refreshed
	existing.SavedAt = now
	if err := s.state.ReplaceDocumentSet(ctx, existing); err != nil {
		return model.SavedDocumentSet{}, err
	}
	common.Logger().Info("generator: document set updated", "set_id", id)
	return existing, nil
}
