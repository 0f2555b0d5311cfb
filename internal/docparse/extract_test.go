// File path: internal/docparse/extract_test.go
package docparse

import "testing"

func TestExtractBillToSibling(t *testing.T) {
	doc := `<div>
          <p style="font-weight: bold;">BILL TO</p>
          <p contenteditable="true">Acme Ltd</p>
        </div>`
	if got := ExtractClientCompany(doc); got != "Acme Ltd" {
		t.Fatalf("got %q, want Acme Ltd", got)
	}
}

func TestExtractBillToIsCaseInsensitive(t *testing.T) {
	doc := `<div><p>bill to</p><p>Globex</p></div>`
	if got := ExtractClientCompany(doc); got != "Globex" {
		t.Fatalf("got %q, want Globex", got)
	}
}

func TestExtractToLabelSibling(t *testing.T) {
	doc := `<table><tr><td><strong>To:</strong><span>Initech</span></td></tr></table>`
	if got := ExtractClientCompany(doc); got != "Initech" {
		t.Fatalf("got %q, want Initech", got)
	}
}

func TestExtractClientLabelSibling(t *testing.T) {
	doc := `<div><strong>Client:</strong><em>Hooli Inc</em></div>`
	if got := ExtractClientCompany(doc); got != "Hooli Inc" {
		t.Fatalf("got %q, want Hooli Inc", got)
	}
}

func TestExtractOrderPrefersBillTo(t *testing.T) {
	doc := `<div>
          <p>BILL TO</p><p>First Corp</p>
          <strong>To:</strong><span>Second Corp</span>
        </div>`
	if got := ExtractClientCompany(doc); got != "First Corp" {
		t.Fatalf("got %q, want First Corp", got)
	}
}

func TestExtractUnreplacedPlaceholder(t *testing.T) {
	doc := `<div><span contenteditable="true">[[Client Company]]</span></div>`
	if got := ExtractClientCompany(doc); got != "[[Client Company]]" {
		t.Fatalf("got %q, want the literal placeholder", got)
	}
}

func TestExtractUnknownClient(t *testing.T) {
	doc := `<div><p>Nothing useful here</p></div>`
	if got := ExtractClientCompany(doc); got != UnknownClient {
		t.Fatalf("got %q, want %q", got, UnknownClient)
	}
}
