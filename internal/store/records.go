// File path: internal/store/records.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Fixed record keys. Each holds one JSON document, except the counters
// (plain decimal strings) and the logo (a raw data URL).
const (
	KeyClientDetails  = "bizdoc_client_details"
	KeyItemPackages   = "bizdoc_item_packages"
	KeyClients        = "bizdoc_clients"
	KeyInvoiceCounter = "bizdoc_invoice_counter"
	KeyQuoteCounter   = "bizdoc_quote_counter"
	KeyCompanyLogo    = "bizdoc_company_logo"
	KeyDocumentSets   = "bizdoc_saved_document_sets"
	KeyCompanyProfile = "bizdoc_company_profile"
)

// LoadJSON unmarshals the record under key into out. ErrNotFound passes
// through so callers can fall back to defaults.
func (s *Store) LoadJSON(ctx context.Context, key string, out any) error {
	value, err := s.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

// SaveJSON marshals v and stores it under key.
func (s *Store) SaveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	return s.Put(ctx, key, string(data))
}

// LoadCounter reads a numbering counter. Missing or unparseable values fall
// back to 1, the first number ever issued.
func (s *Store) LoadCounter(ctx context.Context, key string) (int, error) {
	value, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return 1, nil
	}
	if err != nil {
		return 1, err
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 1, nil
	}
	return n, nil
}

// SaveCounter stores a numbering counter as a plain decimal string.
func (s *Store) SaveCounter(ctx context.Context, key string, value int) error {
	return s.Put(ctx, key, strconv.Itoa(value))
}

// LoadText reads a raw text record, returning empty on a missing key.
func (s *Store) LoadText(ctx context.Context, key string) (string, error) {
	value, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return value, err
}

// SaveText stores a raw text record.
func (s *Store) SaveText(ctx context.Context, key, value string) error {
	return s.Put(ctx, key, value)
}
