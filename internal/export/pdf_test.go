// File path: internal/export/pdf_test.go
package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/template"
)

func TestExportWritesPDF(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPDFExporter(dir)

	doc := model.Document{
		Type: template.TypeInvoice,
		HTML: `<div><style>body{}</style><p>BILL TO</p><p>Acme Ltd</p><table><tr><td>Design</td><td>1500.00</td></tr></table></div>`,
	}
	path, err := exporter.Export(context.Background(), doc, Options{})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filepath.Base(path) != "Invoice.pdf" {
		t.Fatalf("filename = %q", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("empty pdf written")
	}
}

func TestExportAllIsSequentialAndOrdered(t *testing.T) {
	dir := t.TempDir()
	exporter := NewPDFExporter(dir)

	docs := []model.Document{
		{Type: template.TypeSLA, HTML: "<p>sla</p>"},
		{Type: template.TypeQuote, HTML: "<p>quote</p>"},
		{Type: template.TypeQuote, HTML: "<p>second quote</p>"},
	}
	paths, err := exporter.ExportAll(context.Background(), docs, Options{PageSize: "a4", Orientation: "landscape"})
	if err != nil {
		t.Fatalf("export all failed: %v", err)
	}
	want := []string{"Service Level Agreement.pdf", "Quotation.pdf", "Quotation 2.pdf"}
	if len(paths) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(paths))
	}
	for i, name := range want {
		if filepath.Base(paths[i]) != name {
			t.Fatalf("paths[%d] = %q, want %q", i, filepath.Base(paths[i]), name)
		}
	}
}

func TestExportAllStopsOnCancelledContext(t *testing.T) {
	exporter := NewPDFExporter(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	paths, err := exporter.ExportAll(ctx, []model.Document{{Type: template.TypeSLA, HTML: "<p>x</p>"}}, Options{})
	if err == nil {
		t.Fatalf("expected context error")
	}
	if len(paths) != 0 {
		t.Fatalf("files written after cancellation")
	}
}

func TestFlattenHTMLSkipsStyleAndBreaksBlocks(t *testing.T) {
	lines := flattenHTML(`<div><style>p{color:red}</style><p>one</p><p>two  three</p></div>`)
	if len(lines) != 2 || lines[0] != "one" || lines[1] != "two three" {
		t.Fatalf("lines = %#v", lines)
	}
}

func TestOptionsNormalize(t *testing.T) {
	opts := Options{PageSize: "A4", Orientation: "LANDSCAPE"}.normalize()
	if opts.PageSize != "a4" || opts.Orientation != "landscape" {
		t.Fatalf("normalize = %+v", opts)
	}
	opts = Options{PageSize: "bogus", Orientation: "sideways"}.normalize()
	if opts.PageSize != "letter" || opts.Orientation != "portrait" {
		t.Fatalf("defaults not applied: %+v", opts)
	}
}
