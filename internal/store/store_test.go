// File path: internal/store/store_test.go
package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "bizdoc.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	if _, err := s.Get(ctx, KeyCompanyLogo); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Put(ctx, KeyCompanyLogo, "data:image/png;base64,AA"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	got, err := s.Get(ctx, KeyCompanyLogo)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "data:image/png;base64,AA" {
		t.Fatalf("get = %q", got)
	}

	if err := s.Put(ctx, KeyCompanyLogo, "updated"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	got, err = s.Get(ctx, KeyCompanyLogo)
	if err != nil || got != "updated" {
		t.Fatalf("upsert read = %q, %v", got, err)
	}

	if err := s.Delete(ctx, KeyCompanyLogo); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Get(ctx, KeyCompanyLogo); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	in := payload{Name: "starter", Count: 3}
	if err := s.SaveJSON(ctx, KeyItemPackages, in); err != nil {
		t.Fatalf("save json failed: %v", err)
	}
	var out payload
	if err := s.LoadJSON(ctx, KeyItemPackages, &out); err != nil {
		t.Fatalf("load json failed: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v", out)
	}

	var missing payload
	if err := s.LoadJSON(ctx, KeyClients, &missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCounterDefaultsAndRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	n, err := s.LoadCounter(ctx, KeyInvoiceCounter)
	if err != nil || n != 1 {
		t.Fatalf("missing counter = %d, %v; want 1", n, err)
	}
	if err := s.SaveCounter(ctx, KeyInvoiceCounter, 42); err != nil {
		t.Fatalf("save counter failed: %v", err)
	}
	n, err = s.LoadCounter(ctx, KeyInvoiceCounter)
	if err != nil || n != 42 {
		t.Fatalf("counter = %d, %v; want 42", n, err)
	}

	// Unparseable values fall back to the initial number.
	if err := s.Put(ctx, KeyQuoteCounter, "not a number"); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	n, err = s.LoadCounter(ctx, KeyQuoteCounter)
	if err != nil || n != 1 {
		t.Fatalf("corrupt counter = %d, %v; want 1", n, err)
	}
}

func TestConfigMergeAndDefaults(t *testing.T) {
	base := Config{Path: "a.db", MaxOpenConns: 2}
	merged := base.Merge(Config{Path: "  b.db  ", MaxIdleConns: 7})
	if merged.Path != "b.db" || merged.MaxOpenConns != 2 || merged.MaxIdleConns != 7 {
		t.Fatalf("merge result: %+v", merged)
	}

	cfg := Config{}
	cfg.applyDefaults()
	if cfg.Path == "" || cfg.MaxOpenConns <= 0 || cfg.BusyTimeout <= 0 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}
