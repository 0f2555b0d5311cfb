// File path: internal/prompt/builder.go
package prompt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bizdocai/bizdoc/internal/model"
	"github.com/bizdocai/bizdoc/internal/template"
)

// ErrNoSelection is returned when a request selects no document type.
var ErrNoSelection = errors.New("prompt: no document types selected")

// Selection names the document types a single generation should produce.
type Selection struct {
	SLA     bool `json:"sla"`
	Quote   bool `json:"quote"`
	Invoice bool `json:"invoice"`
}

// None reports whether nothing is selected.
func (s Selection) None() bool { return !s.SLA && !s.Quote && !s.Invoice }

// Request carries everything the builder folds into a user prompt. Package
// and FreeText are mutually exclusive; Package wins when both are set.
type Request struct {
	Selection Selection
	Client    model.ClientDetails
	Profile   model.CompanyProfile
	Logo      string
	Package   *model.ItemPackage
	FreeText  string

	InvoiceCounter int
	QuoteCounter   int
	Now            time.Time
}

// Result is the assembled prompt plus the counter values after any numbering
// directives consumed them. A number that appears in a prompt is spent:
// callers commit the counters before dispatching the prompt, whether or not
// the generation succeeds.
type Result struct {
	Prompt         string
	InvoiceCounter int
	QuoteCounter   int
}

// Build assembles the user prompt deterministically: header, date, logo,
// company, client, scope, then numbering. Company and client sentences carry
// only populated fields and are dropped outright when every field is empty.
// Each selected numbered document consumes exactly one counter value.
func Build(req Request) (Result, error) {
	if req.Selection.None() {
		return Result{}, ErrNoSelection
	}

	var b strings.Builder
	b.WriteString("Generate the following document(s): ")
	b.WriteString(strings.Join(selectedNames(req.Selection), ", "))
	b.WriteString(".")

	fmt.Fprintf(&b, " All date fields, including %s, should be set to %q.",
		template.PlaceholderDate, template.FormatDate(req.Now))

	if strings.TrimSpace(req.Logo) != "" {
		fmt.Fprintf(&b, " Replace the %s placeholder with the following HTML: '<img src=%q alt=\"Company Logo\" style=\"max-height: 70px; width: auto; margin-bottom: 1rem;\" />'.",
			template.PlaceholderCompanyLogo, req.Logo)
	} else {
		fmt.Fprintf(&b, " The %s placeholder should be removed (replace with an empty string).",
			template.PlaceholderCompanyLogo)
	}

	if pairs := profilePairs(req.Profile); len(pairs) > 0 {
		b.WriteString(" Use the following company information for all placeholders like [[Company Name]], [[Bank Name]], etc.: ")
		b.WriteString(strings.Join(pairs, ", "))
		b.WriteString(".")
	}

	if pairs := clientPairs(req.Client); len(pairs) > 0 {
		b.WriteString(" Use the following client information: ")
		b.WriteString(strings.Join(pairs, ", "))
		b.WriteString(".")
	}

	if req.Package != nil {
		writePackageDirectives(&b, req.Selection, *req.Package)
	} else {
		fmt.Fprintf(&b, " Project Details: %s.", req.FreeText)
	}

	invoiceCounter := req.InvoiceCounter
	quoteCounter := req.QuoteCounter
	if req.Selection.Invoice {
		fmt.Fprintf(&b, " The Invoice Number is \"INV%04d\".", invoiceCounter)
		invoiceCounter++
	}
	if req.Selection.Quote {
		fmt.Fprintf(&b, " The Quotation Reference is \"INV-QT-%03d-%s\".",
			quoteCounter, req.Now.Format("2006/01/02"))
		quoteCounter++
	}

	return Result{
		Prompt:         b.String(),
		InvoiceCounter: invoiceCounter,
		QuoteCounter:   quoteCounter,
	}, nil
}

func selectedNames(s Selection) []string {
	var names []string
	if s.SLA {
		names = append(names, "SLA")
	}
	if s.Quote {
		names = append(names, "Quotation")
	}
	if s.Invoice {
		names = append(names, "Invoice")
	}
	return names
}

// profilePairs renders one labelled pair per populated profile field. Empty
// fields are omitted entirely.
func profilePairs(p model.CompanyProfile) []string {
	fields := []struct {
		label, value string
	}{
		{"Company Name", p.CompanyName},
		{"Company Address", p.Address},
		{"Company Phone", p.Phone},
		{"Company Email", p.Email},
		{"Company Representative Name", p.RepName},
		{"Company Representative Title", p.RepTitle},
		{"Bank Name", p.BankName},
		{"Account Name", p.AccountName},
		{"Account Number", p.AccountNumber},
		{"Branch Code", p.BranchCode},
		{"Account Type", p.AccountType},
		{"Swift Code", p.SwiftCode},
	}
	var pairs []string
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s: %q", field.label, field.value))
	}
	return pairs
}

func clientPairs(c model.ClientDetails) []string {
	fields := []struct {
		label, value string
	}{
		{"Client Name", c.Name},
		{"Client Company", c.Company},
		{"Client Address", c.Address},
	}
	var pairs []string
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s: %q", field.label, field.value))
	}
	return pairs
}

func writePackageDirectives(b *strings.Builder, sel Selection, pkg model.ItemPackage) {
	fmt.Fprintf(b, " Project Scope: %s.", pkg.Name)

	if sel.Quote {
		fmt.Fprintf(b, " For the QUOTE document, populate the \"Cost Breakdown\" table's <tbody> with the following exact HTML: '%s'.",
			quoteRows(pkg.Items))
	}
	if sel.Invoice {
		fmt.Fprintf(b, " For the INVOICE document, populate the items table's <tbody> with the following exact HTML, completely replacing any placeholder rows: '%s'.",
			invoiceRows(pkg.Items))
	}

	fmt.Fprintf(b, " The total project cost is R %s.", pkg.Total().StringFixed(2))
	b.WriteString(" The deposit is 40% and the final balance is 60%.")
}

// quoteRows renders the three-column cost-breakdown rows: item, description,
// right-aligned amount.
func quoteRows(items []model.Item) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b,
			`<tr><td style="padding: 0.75rem; border-bottom: 1px solid #eee;">%s</td><td style="padding: 0.75rem; border-bottom: 1px solid #eee;">%s</td><td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">%s</td></tr>`,
			item.Name, item.Description, item.Price.StringFixed(2))
	}
	return b.String()
}

// invoiceRows renders the four-column invoice rows: "name: description",
// rate, quantity 1, amount.
func invoiceRows(items []model.Item) string {
	var b strings.Builder
	for _, item := range items {
		price := item.Price.StringFixed(2)
		fmt.Fprintf(&b,
			`<tr><td style="padding: 0.75rem; border-bottom: 1px solid #eee;">%s: %s</td><td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">%s</td><td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">1</td><td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">%s</td></tr>`,
			item.Name, item.Description, price, price)
	}
	return b.String()
}
