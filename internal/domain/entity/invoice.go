package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice statuses.
const (
	StatusDraft = "DRAFT"
	StatusSent  = "SENT"
	StatusPaid  = "PAID"
)

// ReverseChargeNote is printed on invoices issued under the reverse-charge
// scheme (intra-EU B2B, VAT accounted for by the buyer).
const ReverseChargeNote = "Reverse charge – Article 194 VAT Directive"

// Invoice is the header of one invoice. Totals and the number are derived
// once at creation time; editing an invoice re-derives everything from the
// lines, it never patches a total in place.
type Invoice struct {
	ID            string
	CustomerID    string
	CustomerName  string
	Number        string // FV-YYYY-MM-NNN, assigned from the monthly counter
	IssueDate     time.Time
	DueDate       time.Time
	Currency      string // always EUR
	Status        string
	TotalNet      decimal.Decimal
	TotalVAT      decimal.Decimal
	TotalGross    decimal.Decimal
	ReverseCharge bool
	VATNote       string // ReverseChargeNote when ReverseCharge is set
	QRPayload     string // EPC069-12 payload for the payment QR
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// InvoiceLine is one line of an invoice. LineNet/LineVAT/LineGross are the
// rounded amounts computed when the invoice was composed.
type InvoiceLine struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	VATRate     decimal.Decimal // nominal rate; 0 is charged when reverse charge applies
	LineNet     decimal.Decimal
	LineVAT     decimal.Decimal
	LineGross   decimal.Decimal
}
