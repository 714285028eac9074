package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/factuurpro/factuur-api/internal/domain"
	"github.com/factuurpro/factuur-api/internal/domain/entity"
	"github.com/factuurpro/factuur-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implements InvoiceRepository (usable with pool or tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository builds the adapter. Pass a pool or tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persists the invoice header.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	const q = `
		INSERT INTO invoices
			(id, customer_id, customer_name, number, issue_date, due_date, currency, status,
			 total_net, total_vat, total_gross, reverse_charge, vat_note, qr_payload,
			 created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, q,
		inv.ID, inv.CustomerID, inv.CustomerName, inv.Number, inv.IssueDate, inv.DueDate,
		inv.Currency, inv.Status, inv.TotalNet, inv.TotalVAT, inv.TotalGross,
		inv.ReverseCharge, inv.VATNote, inv.QRPayload, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: invoice number %s", domain.ErrDuplicate, inv.Number)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persists one invoice line.
func (r *InvoiceRepo) CreateLine(ctx context.Context, line *entity.InvoiceLine) error {
	const q = `
		INSERT INTO invoice_lines
			(id, invoice_id, description, quantity, unit_price, vat_rate,
			 line_net, line_vat, line_gross)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, q,
		line.ID, line.InvoiceID, line.Description, line.Quantity, line.UnitPrice,
		line.VATRate, line.LineNet, line.LineVAT, line.LineGross,
	)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID returns an invoice header or nil when it does not exist.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	const q = `
		SELECT id, customer_id, customer_name, number, issue_date, due_date, currency, status,
		       total_net, total_vat, total_gross, reverse_charge, vat_note, qr_payload,
		       created_at, updated_at
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return inv, nil
}

// GetLinesByInvoiceID returns the lines of one invoice in insertion order.
func (r *InvoiceRepo) GetLinesByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceLine, error) {
	const q = `
		SELECT id, invoice_id, description, quantity, unit_price, vat_rate,
		       line_net, line_vat, line_gross
		FROM invoice_lines WHERE invoice_id = $1
		ORDER BY id`
	rows, err := r.q.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.InvoiceLine
	for rows.Next() {
		l := &entity.InvoiceLine{}
		if err := rows.Scan(
			&l.ID, &l.InvoiceID, &l.Description, &l.Quantity, &l.UnitPrice, &l.VATRate,
			&l.LineNet, &l.LineVAT, &l.LineGross,
		); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// List returns all invoice headers, newest first.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	const q = `
		SELECT id, customer_id, customer_name, number, issue_date, due_date, currency, status,
		       total_net, total_vat, total_gross, reverse_charge, vat_note, qr_payload,
		       created_at, updated_at
		FROM invoices
		ORDER BY issue_date DESC, number DESC`
	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	inv := &entity.Invoice{}
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.CustomerName, &inv.Number, &inv.IssueDate, &inv.DueDate,
		&inv.Currency, &inv.Status, &inv.TotalNet, &inv.TotalVAT, &inv.TotalGross,
		&inv.ReverseCharge, &inv.VATNote, &inv.QRPayload, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return inv, nil
}
