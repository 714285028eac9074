package dto

import "github.com/shopspring/decimal"

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InvoiceLineRequest is one line of a create-invoice request.
type InvoiceLineRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VATRate     decimal.Decimal `json:"vat_rate"` // 0, 9 or 21
}

// CreateInvoiceRequest composes a new invoice. Customer data arrives already
// resolved by the caller; this service does not own client records.
type CreateInvoiceRequest struct {
	CustomerID    string               `json:"customer_id"`
	CustomerName  string               `json:"customer_name"`
	IssueDate     string               `json:"issue_date"` // YYYY-MM-DD, defaults to today
	ReverseCharge bool                 `json:"reverse_charge"`
	Lines         []InvoiceLineRequest `json:"lines"`
}

// InvoiceLineResponse is one computed line.
type InvoiceLineResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VATRate     decimal.Decimal `json:"vat_rate"`
	LineNet     decimal.Decimal `json:"line_net"`
	LineVAT     decimal.Decimal `json:"line_vat"`
	LineGross   decimal.Decimal `json:"line_gross"`
}

// InvoiceResponse is the full invoice as exposed to display layers and the
// document renderers.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	CustomerID    string                `json:"customer_id"`
	CustomerName  string                `json:"customer_name"`
	Number        string                `json:"number"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Week          int                   `json:"week"` // ISO-8601 week of the issue date
	Currency      string                `json:"currency"`
	Status        string                `json:"status"`
	TotalNet      decimal.Decimal       `json:"total_net"`
	TotalVAT      decimal.Decimal       `json:"total_vat"`
	TotalGross    decimal.Decimal       `json:"total_gross"`
	ReverseCharge bool                  `json:"reverse_charge"`
	VATNote       string                `json:"vat_note,omitempty"`
	QRPayload     string                `json:"qr_payload"`
	Lines         []InvoiceLineResponse `json:"lines"`
}
