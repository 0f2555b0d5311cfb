// File path: internal/model/types.go
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizdocai/bizdoc/internal/template"
)

// ClientDetails is the ad-hoc recipient used when no saved client is chosen.
type ClientDetails struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Address string `json:"address"`
}

// Client is a saved, reusable client record.
type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Item is a single line in an item package.
type Item struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ItemPackage is a named, immutable bundle of line items.
type ItemPackage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Total sums the package's item prices.
func (p ItemPackage) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Price)
	}
	return total
}

// CompanyProfile holds the issuing company's identity and banking details.
type CompanyProfile struct {
	RepName       string `json:"repName"`
	RepTitle      string `json:"repTitle"`
	CompanyName   string `json:"companyName"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BranchCode    string `json:"branchCode"`
	AccountType   string `json:"accountType"`
	SwiftCode     string `json:"swiftCode"`
}

// Document is one parsed document block from a generation response.
type Document struct {
	Type template.Type `json:"type"`
	HTML string        `json:"html"`
}

// SavedDocumentSet is an archived generation result.
type SavedDocumentSet struct {
	ID            string     `json:"id"`
	SavedAt       time.Time  `json:"savedAt"`
	ClientCompany string     `json:"clientCompany"`
	Documents     []Document `json:"documents"`
}

// NewID returns an opaque identifier ordered by creation time. The uuid
// suffix keeps IDs minted within the same instant distinct.
func NewID(now time.Time) string {
	return now.UTC().Format(time.RFC3339Nano) + "-" + uuid.NewString()[:8]
}

// DefaultClientDetails seeds the recipient form for a fresh installation.
func DefaultClientDetails() ClientDetails {
	return ClientDetails{
		Name:    "Innovate Corp",
		Company: "Innovate Corporation",
		Address: "123 Tech Avenue, Silicon Valley, CA 94043",
	}
}

// DefaultCompanyProfile seeds the issuing company for a fresh installation.
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		RepName:       "Tonderai M M P Mlauzi",
		RepTitle:      "Director",
		CompanyName:   "Innovation Imperial",
		Address:       "Waterfall Ridge, Vorna Valley, Midrand, South Africa",
		Phone:         "+27 69 790 6374",
		Email:         "tonderai@innovationimperial.co.za",
		BankName:      "FNB",
		AccountName:   "Tonderai M M P Mlauzi",
		AccountNumber: "62719875932",
		BranchCode:    "250655",
		AccountType:   "Cheque",
		SwiftCode:     "FIRNZAJJ",
	}
}

// Validate checks the fields required before a client may be saved.
func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("client: name is required")
	}
	if strings.TrimSpace(c.Company) == "" {
		return fmt.Errorf("client: company is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("client: address is required")
	}
	return nil
}

// Validate checks that a package carries a name and at least one priced item.
func (p ItemPackage) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("package: name is required")
	}
	if len(p.Items) == 0 {
		return fmt.Errorf("package: at least one item is required")
	}
	for i, item := range p.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("package: item %d: name is required", i)
		}
		if !item.Price.IsPositive() {
			return fmt.Errorf("package: item %d: price must be greater than zero", i)
		}
	}
	return nil
}
