// File path: internal/template/library.go
package template

import "time"

// Type identifies a category of generated business document.
type Type string

const (
	TypeSLA     Type = "SLA"
	TypeQuote   Type = "QUOTE"
	TypeInvoice Type = "INVOICE"
	// TypeFallback labels raw model output that carried no document delimiters.
	TypeFallback Type = "Document"
)

// Delimiter convention for document blocks inside a model response.
const (
	StartMarkerPrefix = "<!-- START_DOC:"
	EndMarkerPrefix   = "<!-- END_DOC:"
	MarkerSuffix      = " -->"
)

// Placeholder tokens referenced by the prompt builder and the extractor.
const (
	PlaceholderCompanyLogo   = "[[Company Logo]]"
	PlaceholderDate          = "[[Date]]"
	PlaceholderClientCompany = "[[Client Company]]"
)

// DateAttr marks elements whose text must be overwritten with the current
// date whenever a document set is saved after editing.
const DateAttr = "data-bizdoc-date"

// EditableAttr marks user-editable regions inside a rendered document.
const EditableAttr = "contenteditable"

// DateLayout renders dates as "2 January 2006", the format every date-bearing
// field in a document carries.
const DateLayout = "2 January 2006"

// FormatDate formats t using the document date convention.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DisplayName returns the human-readable title for a document type. Unknown
// types pass through unchanged.
func DisplayName(t Type) string {
	switch t {
	case TypeSLA:
		return "Service Level Agreement"
	case TypeQuote:
		return "Quotation"
	case TypeInvoice:
		return "Invoice"
	default:
		return string(t)
	}
}

// SystemPrompt is the fixed system instruction sent with every generation
// request: the behavioural rules plus the full template library.
var SystemPrompt = systemRules +
	"\n---\n" + InvoiceTemplate +
	"\n\n---\n" + QuoteTemplate +
	"\n\n---\n" + SLATemplate + "\n"

var systemRules = "\nYou are **BizDoc AI**, a professional documentation system designed to generate standardized, editable business documents.\n" +
	"\nYour core function is to generate one or more of the following document types upon request: Service Level Agreement (SLA), Quotation (Quote), or Invoice.\n" +
	"\n**CRITICAL INSTRUCTIONS:**\n" +
	"1.  You **MUST** use the exact HTML templates provided below for each document type. Do not deviate from the structure or styling.\n" +
	"2.  You **MUST** replace placeholders like `[[Client Name]]`, `[[Date]]`, etc., with the specific details provided in the user's prompt. If a detail is not provided, use a sensible default or leave the placeholder text.\n" +
	"3.  If a user provides HTML for a company logo via the `[[Company Logo]]` placeholder, you **MUST** insert it. If the instruction for the placeholder is to make it empty, you must remove it completely from the output.\n" +
	"4.  If a detailed \"Project Cost Breakdown\" is provided with line items and prices, you **MUST** use it to populate the tables in the Quote and Invoice. Calculate totals and deposits based on this breakdown.\n" +
	"5.  The output **MUST** be only the raw HTML of the requested document(s). Do not include any extra text, explanations, or markdown formatting like ```html.\n" +
	"6.  If multiple documents are requested, output them one after another, each as a complete, self-contained HTML block wrapped in the specified START_DOC and END_DOC comments.\n" +
	"7.  Pay close attention to making relevant text fields, paragraphs, and table cells editable by including the `contenteditable=\"true\"` attribute as shown in the templates.\n"

// InvoiceTemplate is the fixed INVOICE document fragment.
const InvoiceTemplate = `<!-- START_DOC:INVOICE -->
<div style="background-color: white; color: black; padding: 2rem; font-family: 'Inter', sans-serif; font-size: 10pt; max-width: 800px; margin: auto; border: 1px solid #eee;">
  <style>
    body {
      font-family: 'Inter', sans-serif;
      -webkit-font-smoothing: antialiased;
      -moz-osx-font-smoothing: grayscale;
    }
  </style>
  <!-- Header -->
  <div style="display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 2px solid #6366f1; padding-bottom: 1rem;">
    <div>
      [[Company Logo]]
      <h1 style="font-size: 24pt; font-weight: bold; color: #6366f1; margin: 0;">[[Company Name]]</h1>
      <p contenteditable="true" style="margin: 0; padding: 2px;">[[Company Address]]</p>
      <p contenteditable="true" style="margin: 0; padding: 2px;">[[Company Phone]]</p>
      <p contenteditable="true" style="margin: 0; padding: 2px;">[[Company Email]]</p>
    </div>
    <div style="text-align: right;">
      <h2 style="font-size: 20pt; font-weight: bold; margin: 0;">INVOICE</h2>
      <p contenteditable="true" style="margin: 0.5rem 0 0 0; padding: 2px;">[[Invoice Number]]</p>
      <p style="margin-top: 1rem; font-weight: bold;">DATE</p>
      <p data-bizdoc-date="true" contenteditable="true" style="margin: 0; padding: 2px;">[[Date]]</p>
      <p style="margin-top: 1rem; font-weight: bold;">DEPOSIT DUE DATE</p>
      <p contenteditable="true" style="margin: 0; padding: 2px;">[[Deposit Due Date]]</p>
    </div>
  </div>

  <!-- Bill To -->
  <div style="margin-top: 2rem;">
    <p style="font-weight: bold; color: #555;">BILL TO</p>
    <p contenteditable="true" style="font-size: 14pt; font-weight: bold; margin: 0; padding: 2px;">[[Client Company]]</p>
    <p contenteditable="true" style="margin: 0; padding: 2px;">[[Client Name]]</p>
    <p contenteditable="true" style="margin: 0; padding: 2px;">[[Client Address]]</p>
  </div>

  <!-- Items Table -->
  <table style="width: 100%; border-collapse: collapse; margin-top: 2rem;">
    <thead>
      <tr style="background-color: #f3f4f6; color: #374151;">
        <th style="text-align: left; padding: 0.75rem; border-bottom: 2px solid #ddd;">DESCRIPTION</th>
        <th style="text-align: right; padding: 0.75rem; border-bottom: 2px solid #ddd;">RATE</th>
        <th style="text-align: right; padding: 0.75rem; border-bottom: 2px solid #ddd;">QTY</th>
        <th style="text-align: right; padding: 0.75rem; border-bottom: 2px solid #ddd;">AMOUNT</th>
      </tr>
    </thead>
    <tbody contenteditable="true">
      <tr>
        <td style="padding: 0.75rem; border-bottom: 1px solid #eee;">[[Project Description]]</td>
        <td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">[[Rate]]</td>
        <td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">1</td>
        <td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">[[Total Amount]]</td>
      </tr>
    </tbody>
  </table>

  <!-- Totals -->
  <div style="display: flex; justify-content: flex-end; margin-top: 2rem;">
    <div style="width: 40%;">
      <div style="display: flex; justify-content: space-between; padding: 0.5rem 0;">
        <strong>TOTAL</strong>
        <span>R [[Total Amount]]</span>
      </div>
      <div style="display: flex; justify-content: space-between; padding: 1rem 0; border-top: 2px solid #ddd; font-size: 14pt; font-weight: bold;">
        <strong>DEPOSIT DUE</strong>
        <span>ZAR R [[Deposit Amount]]</span>
      </div>
    </div>
  </div>

  <!-- Payment Info -->
  <div style="margin-top: 3rem;">
    <h3 style="font-size: 16pt; font-weight: bold; border-bottom: 2px solid #6366f1; padding-bottom: 0.5rem;">Payment Info</h3>
    <p style="font-weight: bold; margin-top: 1rem;">PAYMENT INSTRUCTIONS</p>
    <div contenteditable="true">
      <p style="margin: 0.25rem 0; padding: 2px;">Bank: [[Bank Name]]</p>
      <p style="margin: 0.25rem 0; padding: 2px;">Account Holder: [[Account Name]]</p>
      <p style="margin: 0.25rem 0; padding: 2px;">Account Number: [[Account Number]]</p>
      <p style="margin: 0.25rem 0; padding: 2px;">Branch Code: [[Branch Code]]</p>
      <p style="margin: 0.25rem 0; padding: 2px;">Account Type: [[Account Type]]</p>
      <p style="margin: 0.25rem 0; padding: 2px;">Swift Code: [[Swift Code]]</p>
    </div>
  </div>

  <!-- Footer -->
  <div style="margin-top: 4rem; text-align: center; font-size: 9pt; color: #888; border-top: 1px solid #eee; padding-top: 1rem;">
    <p contenteditable="true">Thank you for your business!</p>
  </div>
</div>
<!-- END_DOC:INVOICE -->`

// QuoteTemplate is the fixed QUOTE document fragment. Its cost-breakdown
// tbody is intentionally empty and populated from the prompt.
const QuoteTemplate = `<!-- START_DOC:QUOTE -->
<div style="background-color: white; color: black; padding: 2rem; font-family: 'Inter', sans-serif; font-size: 10pt; max-width: 800px; margin: auto; border: 1px solid #eee;">
  <style>
    body {
      font-family: 'Inter', sans-serif;
      -webkit-font-smoothing: antialiased;
      -moz-osx-font-smoothing: grayscale;
    }
  </style>
  <!-- Header -->
  <div style="text-align: center; margin-bottom: 2rem;">
    [[Company Logo]]
    <h1 style="font-size: 24pt; font-weight: bold; color: #6366f1; margin: 0;">[[Company Name]]</h1>
    <div style="border: 1px solid #ccc; padding: 0.5rem; margin-top: 1rem;">
      <p contenteditable="true" style="margin: 0; padding: 2px;">[[Company Address]]</p>
      <p contenteditable="true" style="margin: 0; padding: 2px;">Email: [[Company Email]] | Phone: [[Company Phone]]</p>
    </div>
  </div>

  <h2 style="text-align: center; font-size: 20pt; font-weight: bold; margin: 2rem 0;">QUOTATION</h2>

  <!-- From/To Info -->
  <div style="border: 1px solid #ccc; padding: 1rem; margin-bottom: 2rem;">
    <table style="width: 100%; border-collapse: collapse;">
      <tbody>
        <tr>
          <td style="padding: 0.5rem 0; font-weight: bold; width: 100px;">From:</td>
          <td style="padding: 0.5rem 0; border-bottom: 1px solid #eee;" contenteditable="true">[[Company Name]]</td>
        </tr>
        <tr>
          <td style="padding: 0.5rem 0; font-weight: bold;">To:</td>
          <td style="padding: 0.5rem 0; border-bottom: 1px solid #eee;" contenteditable="true">[[Client Company]]</td>
        </tr>
        <tr>
          <td style="padding: 0.5rem 0; font-weight: bold;">Date:</td>
          <td style="padding: 0.5rem 0; border-bottom: 1px solid #eee;" data-bizdoc-date="true" contenteditable="true">[[Date]]</td>
        </tr>
        <tr>
          <td style="padding: 0.5rem 0; font-weight: bold;">Reference:</td>
          <td style="padding: 0.5rem 0;" contenteditable="true">[[Quote Number]]</td>
        </tr>
      </tbody>
    </table>
  </div>

  <!-- Section 1: Project Scope -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">1. Project Scope</div>
    <div style="border: 1px solid #ccc; border-top: none; padding: 1rem;" contenteditable="true">
      <p style="margin:0; padding: 2px;">[[Project Scope]]</p>
    </div>
  </div>

  <!-- Section 2: Cost Breakdown -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">2. Cost Breakdown</div>
    <table style="width: 100%; border: 1px solid #ccc; border-top: none; border-collapse: collapse;">
      <thead>
        <tr style="background-color: #f3f4f6;">
          <th style="text-align: left; padding: 0.75rem; border-bottom: 1px solid #ccc;">Item</th>
          <th style="text-align: left; padding: 0.75rem; border-bottom: 1px solid #ccc;">Description</th>
          <th style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #ccc;">Amount (R)</th>
        </tr>
      </thead>
      <tbody contenteditable="true">
        <!-- AI will populate this section with line items. -->
      </tbody>
      <tfoot>
        <tr style="background-color: #f3f4f6;">
          <td colspan="2" style="text-align: right; padding: 0.75rem; font-weight: bold; border-top: 1px solid #ccc;">Total Project Cost</td>
          <td style="text-align: right; padding: 0.75rem; font-weight: bold; border-top: 1px solid #ccc;">R [[Total Amount]]</td>
        </tr>
      </tfoot>
    </table>
  </div>

  <!-- Section 3: Quotation & Payment Terms -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">3. Quotation & Payment Terms</div>
    <div style="border: 1px solid #ccc; border-top: none; padding: 1rem;">
        <table style="width: 100%; border-collapse: collapse; margin-bottom: 1rem;">
            <thead>
                <tr style="background-color: #f3f4f6;">
                    <th style="text-align: left; padding: 0.75rem; border-bottom: 1px solid #ccc;">Description</th>
                    <th style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #ccc;">Amount (R)</th>
                </tr>
            </thead>
            <tbody contenteditable="true">
                <tr>
                    <td style="padding: 0.75rem; border-bottom: 1px solid #eee;">Deposit (40% upon approval of Spec Sheet)</td>
                    <td style="text-align: right; padding: 0.75rem; border-bottom: 1px solid #eee;">[[Deposit Amount]]</td>
                </tr>
                <tr>
                    <td style="padding: 0.75rem;">Final Balance (60% upon completion & delivery)</td>
                    <td style="text-align: right; padding: 0.75rem;">[[Final Balance Amount]]</td>
                </tr>
            </tbody>
        </table>
        <div contenteditable="true">
            <p style="font-size: 9pt; margin:0; padding: 2px;"><strong>Payment Notes:</strong> 40% deposit due within 3 business days of invoice receipt. Work commences only upon deposit confirmation. Final 60% due within 3 business days of completion notification.</p>
        </div>
    </div>
  </div>

  <!-- Section 4: Change Requests -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">4. Change Requests & Additional Work</div>
    <div style="border: 1px solid #ccc; border-top: none; padding: 1rem;" contenteditable="true">
      <p style="margin:0; padding: 2px;">Any work outside the approved Spec Sheet will be classified as a Change Request, subject to a separate quotation and prior approval. Pricing of additional work will depend on task complexity, integration needs, and development time.</p>
    </div>
  </div>

  <!-- Section 5: Support & Warranty -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">5. Support & Warranty</div>
    <div style="border: 1px solid #ccc; border-top: none; padding: 1rem;" contenteditable="true">
      <p style="margin:0; padding: 2px;">3 months free post-delivery technical support (downtime/maintenance). After the 3 months lapse, support will be charged based on complexity of queries.</p>
    </div>
  </div>

  <!-- Section 6: Intellectual Property -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">6. Intellectual Property</div>
    <div style="border: 1px solid #ccc; border-top: none; padding: 1rem;" contenteditable="true">
      <p style="margin:0; padding: 2px;">Upon final payment, all custom development work will be transferred in full ownership to [[Client Company]]. Third-party licenses remain subject to their respective terms.</p>
    </div>
  </div>

  <!-- Section 7: Validity of Quotation -->
  <div style="margin-bottom: 2rem;">
    <div style="background-color: #6366f1; color: white; padding: 0.75rem; font-weight: bold; font-size: 12pt;">7. Validity of Quotation</div>
    <div style="border: 1px solid #ccc; border-top: none; padding: 1rem;" contenteditable="true">
      <p style="margin:0; padding: 2px;">This quotation is valid for 30 days from the date of issue.</p>
    </div>
  </div>

  <!-- Authorized By -->
  <div style="margin-bottom: 2rem;">
    <p style="font-weight: bold; margin-bottom: 0.5rem;">Authorized By:</p>
    <div style="border: 1px solid #ccc; padding: 1rem;">
      <p style="margin: 0; padding: 2px;" contenteditable="true">[[Company Rep Name]]</p>
      <p style="margin: 0; padding: 2px;" contenteditable="true">[[Company Rep Title]]</p>
      <p style="margin: 0; padding: 2px;" contenteditable="true">[[Company Name]]</p>
    </div>
  </div>

  <!-- Signature -->
  <div style="display: flex; justify-content: space-between; align-items: center; margin-top: 3rem;">
    <p>Signature: <span style="display: inline-block; border-bottom: 1px solid black; width: 250px;"></span></p>
    <p>Date: <span data-bizdoc-date="true" contenteditable="true" style="display: inline-block; border-bottom: 1px solid black; min-width: 150px; text-align: center;">[[Date]]</span></p>
  </div>

  <!-- Footer -->
  <div style="margin-top: 4rem; text-align: center; font-size: 9pt; color: #888; border: 1px solid #ccc; padding: 0.5rem;">
    <p contenteditable="true" style="margin:0;">[[Company Name]] © [[Year]] | Confidential Quotation</p>
  </div>
</div>
<!-- END_DOC:QUOTE -->`

// SLATemplate is the fixed SLA document fragment.
const SLATemplate = `<!-- START_DOC:SLA -->
<div style="background-color: white; color: black; padding: 2rem; font-family: 'Inter', sans-serif; font-size: 10pt; max-width: 800px; margin: auto; border: 1px solid #eee;">
  <style>
    body {
      font-family: 'Inter', sans-serif;
      -webkit-font-smoothing: antialiased;
      -moz-osx-font-smoothing: grayscale;
    }
  </style>
  <!-- Header -->
  <div style="text-align: center; margin-bottom: 2rem;">
    [[Company Logo]]
    <h1 style="font-size: 24pt; font-weight: bold; color: #6366f1; margin: 0; margin-bottom: 0.5rem;">[[Company Name]]</h1>
    <h2 style="font-size: 20pt; font-weight: bold; margin: 0;">Service Terms of Agreement</h2>
  </div>

  <!-- Parties & Date -->
  <div style="margin-bottom: 2rem; border: 1px solid #eee; padding: 1rem; border-radius: 8px;">
    <table style="width: 100%; border-collapse: collapse;">
        <tbody>
            <tr>
                <td style="padding: 0.5rem; font-weight: bold;">Effective Date:</td>
                <td style="padding: 0.5rem; text-align: right; border-bottom: 1px dotted #999;" data-bizdoc-date="true" contenteditable="true">[[Date]]</td>
            </tr>
            <tr>
                <td style="padding: 0.5rem; font-weight: bold;">Service Provider:</td>
                <td style="padding: 0.5rem; text-align: right; border-bottom: 1px dotted #999;" contenteditable="true">[[Company Name]]</td>
            </tr>
            <tr>
                <td style="padding: 0.5rem; font-weight: bold;">Client:</td>
                <td style="padding: 0.5rem; text-align: right; border-bottom: 1px dotted #999;" contenteditable="true">[[Client Company]]</td>
            </tr>
        </tbody>
    </table>
  </div>

  <!-- Section 1: Project Scope and Specifications -->
  <div style="margin-bottom: 2rem;">
    <h3 style="font-size: 14pt; font-weight: bold; margin-bottom: 1rem; border-bottom: 1px solid #ddd; padding-bottom: 0.5rem;">1. Project Scope and Specifications</h3>
    <h4 style="font-size: 11pt; font-weight: bold; margin-bottom: 0.5rem;">1.1 Specification Document Requirement</h4>
    <div contenteditable="true" style="background-color: #f9fafb; border-left: 3px solid #6366f1; padding: 0.75rem 1rem; margin-bottom: 1rem;">
      <p style="margin: 0;">Prior to project commencement, the Client ([[Client Company]]) must provide a comprehensive specification document (the "Spec Sheet") that details all requirements, features, functionalities, and design elements for the project.</p>
    </div>
    <h4 style="font-size: 11pt; font-weight: bold; margin-bottom: 0.5rem;">1.2 Scope Definition</h4>
    <div contenteditable="true" style="background-color: #f9fafb; border-left: 3px solid #6366f1; padding: 0.75rem 1rem;">
      <p style="margin: 0;">All work will be performed strictly in accordance with the approved Spec Sheet. The Spec Sheet will serve as the definitive guide for project deliverables and will be considered the complete scope of work for this agreement.</p>
    </div>
  </div>

  <!-- Section 2: Payment Terms -->
  <div style="margin-bottom: 2rem;">
    <h3 style="font-size: 14pt; font-weight: bold; margin-bottom: 1rem; border-bottom: 1px solid #ddd; padding-bottom: 0.5rem;">2. Payment Terms</h3>
    <h4 style="font-size: 11pt; font-weight: bold; margin-bottom: 0.5rem;">2.1 Deposit Payment</h4>
    <div contenteditable="true" style="background-color: #f9fafb; border-left: 3px solid #6366f1; padding: 0.75rem 1rem; margin-bottom: 1rem;">
      <p style="margin: 0;">Upon approval of the Spec Sheet, the Client will be invoiced for a deposit of 40% of the total project cost. This deposit covers the procurement of necessary tooling, software licenses, development resources, and project initiation costs.</p>
    </div>
    <h4 style="font-size: 11pt; font-weight: bold; margin-bottom: 0.5rem;">2.2 Final Payment</h4>
    <div contenteditable="true" style="background-color: #f9fafb; border-left: 3px solid #6366f1; padding: 0.75rem 1rem;">
      <p style="margin: 0;">The remaining 60% balance is due upon completion and delivery of all requirements specified in the approved Spec Sheet. Final payment must be made within 3 business days of project completion notification.</p>
    </div>
  </div>

  <!-- Section 3: Change Management -->
  <div style="margin-bottom: 2rem;">
    <h3 style="font-size: 14pt; font-weight: bold; margin-bottom: 1rem; border-bottom: 1px solid #ddd; padding-bottom: 0.5rem;">3. Change Management and Additional Work</h3>
    <div contenteditable="true" style="background-color: #f9fafb; border-left: 3px solid #6366f1; padding: 0.75rem 1rem;">
      <p style="margin: 0;">Any work requested outside the scope of the approved Spec Sheet will be classified as a "Change Request" and will require separate authorization and payment. Change Requests will be charged based on task complexity and development time required.</p>
    </div>
  </div>

  <!-- Section 4: Intellectual Property -->
  <div style="margin-bottom: 2rem;">
    <h3 style="font-size: 14pt; font-weight: bold; margin-bottom: 1rem; border-bottom: 1px solid #ddd; padding-bottom: 0.5rem;">4. Intellectual Property</h3>
    <div contenteditable="true" style="background-color: #f9fafb; border-left: 3px solid #6366f1; padding: 0.75rem 1rem;">
      <p style="margin: 0;">Upon final payment, all custom development work specific to the Client's project will be transferred to the Client, and the software and application will be 100% owned by the client as their intellectual property. Third-party tools, licenses, and frameworks remain subject to their respective terms.</p>
    </div>
  </div>

  <!-- Section 5: Agreement Acceptance -->
  <div style="margin-bottom: 2rem;">
    <h3 style="font-size: 14pt; font-weight: bold; margin-bottom: 1rem; border-bottom: 1px solid #ddd; padding-bottom: 0.5rem;">5. Agreement Acceptance</h3>
    <p contenteditable="true">By signing below, both parties acknowledge they have read, understood, and agree to be bound by these terms and conditions.</p>
  </div>

  <!-- Signatures -->
  <div style="margin-top: 4rem; display: flex; justify-content: space-between; gap: 2rem;">
    <div style="width: 48%;">
      <p style="font-weight: bold; margin-bottom: 1rem;">Service Provider:</p>
      <div style="margin-bottom: 2rem; border-bottom: 1px solid #555; height: 3rem;"></div>
      <p>Name: <span contenteditable="true">[[Company Rep Name]]</span></p>
      <p>Title: <span contenteditable="true">[[Company Rep Title]]</span></p>
      <p>Date: <span data-bizdoc-date="true" contenteditable="true">[[Date]]</span></p>
    </div>
    <div style="width: 48%;">
      <p style="font-weight: bold; margin-bottom: 1rem;">Client:</p>
      <div style="margin-bottom: 2rem; border-bottom: 1px solid #555; height: 3rem;"></div>
      <p>Name: <span contenteditable="true">[[Client Name]]</span></p>
      <p>Title: <span contenteditable="true">[[Client Title]]</span></p>
      <p>Date: <span contenteditable="true" style="padding: 2px;"></span></p>
    </div>
  </div>
</div>
<!-- END_DOC:SLA -->`
