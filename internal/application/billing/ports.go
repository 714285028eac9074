package billing

import (
	"context"

	"github.com/factuurpro/factuur-api/internal/application/dto"
	"github.com/factuurpro/factuur-api/internal/domain/repository"
)

// BillingTxRunner runs fn inside one transaction covering the invoice tables
// and the monthly counters, so number assignment and persistence commit or
// roll back together.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		seqRepo repository.SequenceRepository,
	) error) error
}

// DocumentRenderer renders an invoice as a printable document (PDF/HTML).
// Rendering is an external collaborator; this service only defines the seam.
type DocumentRenderer interface {
	RenderInvoice(ctx context.Context, invoice *dto.InvoiceResponse) ([]byte, error)
}

// QRImageEncoder turns an EPC069-12 payload string into QR image bytes.
// Image rendering is an external collaborator; this service only defines the
// seam and hands over the payload string.
type QRImageEncoder interface {
	EncodePNG(payload string, sizePx int) ([]byte, error)
}
