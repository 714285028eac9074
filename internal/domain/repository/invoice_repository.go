package repository

import (
	"context"

	"github.com/factuurpro/factuur-api/internal/domain/entity"
)

// InvoiceRepository persists invoice headers and lines.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateLine(ctx context.Context, line *entity.InvoiceLine) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	GetLinesByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceLine, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
}
