// File path: internal/export/pdf.go
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/net/html"

	"github.com/bizdocai/bizdoc/internal/common"
	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/template"
)

// Options control the page geometry of an export.
type Options struct {
	PageSize    string `json:"pageSize"`    // "letter" or "a4"
	Orientation string `json:"orientation"` // "portrait" or "landscape"
}

func (o Options) normalize() Options {
	out := o
	if strings.EqualFold(out.PageSize, "a4") {
		out.PageSize = "a4"
	} else {
		out.PageSize = "letter"
	}
	if strings.EqualFold(out.Orientation, "landscape") {
		out.Orientation = "landscape"
	} else {
		out.Orientation = "portrait"
	}
	return out
}

// Exporter renders documents to files on disk.
type Exporter interface {
	Export(ctx context.Context, doc model.Document, opts Options) (string, error)
	ExportAll(ctx context.Context, docs []model.Document, opts Options) ([]string, error)
}

// PDFExporter flattens document HTML to text and renders it with gofpdf.
type PDFExporter struct {
	dir string
}

func NewPDFExporter(dir string) *PDFExporter {
	if strings.TrimSpace(dir) == "" {
		dir = "exports"
	}
	return &PDFExporter{dir: dir}
}

// Export renders one document and returns the written file path.
func (e *PDFExporter) Export(ctx context.Context, doc model.Document, opts Options) (string, error) {
	return e.export(ctx, doc, opts, template.DisplayName(doc.Type)+".pdf")
}

// ExportAll renders documents strictly one at a time, in order. The first
// failure aborts the batch.
func (e *PDFExporter) ExportAll(ctx context.Context, docs []model.Document, opts Options) ([]string, error) {
	paths := make([]string, 0, len(docs))
	seen := make(map[string]int)
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		name := template.DisplayName(doc.Type)
		seen[name]++
		filename := name + ".pdf"
		if seen[name] > 1 {
			filename = fmt.Sprintf("%s %d.pdf", name, seen[name])
		}
		path, err := e.export(ctx, doc, opts, filename)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (e *PDFExporter) export(ctx context.Context, doc model.Document, opts Options, filename string) (string, error) {
	opts = opts.normalize()

	orientation := "P"
	if opts.Orientation == "landscape" {
		orientation = "L"
	}
	size := "Letter"
	if opts.PageSize == "a4" {
		size = "A4"
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	pdf := gofpdf.New(orientation, "mm", size, "")
	pdf.SetTitle(template.DisplayName(doc.Type), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, template.DisplayName(doc.Type), "", "L", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range flattenHTML(doc.HTML) {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}

	path := filepath.Join(e.dir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	common.Logger().Info("export: wrote pdf", "path", path)
	return path, nil
}

var blockTags = map[string]bool{
	"p": true, "div": true, "tr": true, "table": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "br": true,
	"thead": true, "tbody": true, "tfoot": true,
}

// flattenHTML reduces a document to text lines: tags are dropped, block
// elements break lines, style and script content is skipped entirely.
func flattenHTML(doc string) []string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return []string{doc}
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "style" || n.Data == "script") {
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			b.WriteString("\n")
		}
	}
	walk(root)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
