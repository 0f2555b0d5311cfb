// File path: internal/docparse/dates_test.go
package docparse

import (
	"strings"
	"testing"
	"time"
)

func TestRefreshDatesRewritesMarkedElements(t *testing.T) {
	doc := `<div><p data-bizdoc-date="true">1 January 2020</p><p>untouched</p><span data-bizdoc-date="true">old</span></div>`
	now := time.Date(2025, time.June, 3, 9, 0, 0, 0, time.UTC)
	got, err := RefreshDates(doc, now)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if strings.Count(got, "3 June 2025") != 2 {
		t.Fatalf("expected both markers re-stamped, got %q", got)
	}
	if strings.Contains(got, "1 January 2020") || strings.Contains(got, ">old<") {
		t.Fatalf("stale date text survived: %q", got)
	}
	if !strings.Contains(got, "untouched") {
		t.Fatalf("unmarked content altered: %q", got)
	}
}

func TestRefreshDatesWithoutMarkersIsStable(t *testing.T) {
	doc := `<div><p>no markers</p></div>`
	got, err := RefreshDates(doc, time.Now())
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if !strings.Contains(got, "no markers") {
		t.Fatalf("content lost: %q", got)
	}
}
