package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/factuurpro/factuur-api/internal/application/dto"
	"github.com/factuurpro/factuur-api/internal/domain"
	"github.com/factuurpro/factuur-api/internal/domain/calendar"
	"github.com/factuurpro/factuur-api/internal/domain/entity"
	"github.com/factuurpro/factuur-api/internal/domain/money"
	"github.com/factuurpro/factuur-api/internal/domain/repository"
	"github.com/factuurpro/factuur-api/internal/domain/sepa"
	"github.com/factuurpro/factuur-api/internal/domain/sequence"
)

// CreateInvoiceUseCase composes an invoice: per-line totals, invoice totals,
// the next number from the monthly counter and the SEPA payment payload, all
// persisted in a single transaction.
type CreateInvoiceUseCase struct {
	txRunner    BillingTxRunner
	invoiceRepo repository.InvoiceRepository
	encoder     *sepa.EncoderService
	company     entity.CompanyProfile
}

// NewCreateInvoiceUseCase builds the use case.
func NewCreateInvoiceUseCase(
	txRunner BillingTxRunner,
	invoiceRepo repository.InvoiceRepository,
	encoder *sepa.EncoderService,
	company entity.CompanyProfile,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		encoder:     encoder,
		company:     company,
	}
}

// CreateInvoice validates the request, derives every monetary value from the
// lines and assigns the invoice number inside the transaction so a rollback
// never burns persistence of the header without its counter update.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CustomerID == "" || in.CustomerName == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	issueDate := time.Now().UTC().Truncate(24 * time.Hour)
	if in.IssueDate != "" {
		d, err := calendar.ParseISODate(in.IssueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		issueDate = d
	}

	// Per-line totals. Quantity and price of 0 are fine (free lines), but
	// negatives are rejected; credit notes are separate documents.
	lineTotals := make([]money.LineTotals, len(in.Lines))
	for i, line := range in.Lines {
		if line.Quantity.IsNegative() || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if !money.ValidVATRate(line.VATRate) {
			return nil, fmt.Errorf("%w: line %d has rate %s", domain.ErrInvalidVATRate, i+1, line.VATRate.String())
		}
		rate := money.EffectiveVATRate(line.VATRate, in.ReverseCharge)
		lineTotals[i] = money.CalculateLineTotals(line.Quantity, line.UnitPrice, rate)
	}
	totals := money.CalculateInvoiceTotals(lineTotals)

	now := time.Now()
	dueDate := issueDate.AddDate(0, 0, uc.company.PaymentTermDays)

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Currency:      "EUR",
		Status:        entity.StatusDraft,
		TotalNet:      totals.Net,
		TotalVAT:      totals.VAT,
		TotalGross:    totals.Gross,
		ReverseCharge: in.ReverseCharge,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.ReverseCharge {
		inv.VATNote = entity.ReverseChargeNote
	}

	lines := make([]*entity.InvoiceLine, len(in.Lines))
	for i, line := range in.Lines {
		lines[i] = &entity.InvoiceLine{
			ID:          uuid.New().String(),
			InvoiceID:   inv.ID,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			VATRate:     line.VATRate,
			LineNet:     lineTotals[i].Net,
			LineVAT:     lineTotals[i].VAT,
			LineGross:   lineTotals[i].Gross,
		}
	}

	err := uc.txRunner.RunBilling(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		seqRepo repository.SequenceRepository,
	) error {
		// Number assignment is the serialized read-modify-write on the
		// monthly counter; it happens inside the tx so a failed insert
		// rolls the counter back with it, while a committed number is
		// never reused even if the invoice is deleted later.
		seq, err := seqRepo.NextSeq(ctx, issueDate.Year(), issueDate.Month())
		if err != nil {
			return fmt.Errorf("next invoice sequence: %w", err)
		}
		inv.Number = sequence.Format(issueDate.Year(), issueDate.Month(), seq)

		payload, err := uc.encoder.Encode(&sepa.QRData{
			BIC:       uc.company.BIC,
			Name:      uc.company.Name,
			IBAN:      uc.company.IBAN,
			Amount:    inv.TotalGross,
			Reference: inv.Number,
			Purpose:   "Invoice " + inv.Number,
		})
		if err != nil {
			return fmt.Errorf("build SEPA payload: %w", err)
		}
		inv.QRPayload = payload

		if err := invoiceRepo.Create(ctx, inv); err != nil {
			return err
		}
		for _, line := range lines {
			if err := invoiceRepo.CreateLine(ctx, line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.toResponse(inv, lines), nil
}

// GetInvoice fetches an invoice with its lines.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.invoiceRepo.GetLinesByInvoiceID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(inv, lines), nil
}

// ListInvoices returns every invoice header, without lines.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, uc.toResponse(inv, nil))
	}
	return out, nil
}

// GetQRPayload returns the stored EPC069-12 payload of an invoice.
func (uc *CreateInvoiceUseCase) GetQRPayload(ctx context.Context, id string) (string, error) {
	inv, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if inv == nil {
		return "", domain.ErrNotFound
	}
	return inv.QRPayload, nil
}

func (uc *CreateInvoiceUseCase) toResponse(inv *entity.Invoice, lines []*entity.InvoiceLine) *dto.InvoiceResponse {
	resp := &dto.InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Number:        inv.Number,
		IssueDate:     calendar.FormatISODate(inv.IssueDate),
		DueDate:       calendar.FormatISODate(inv.DueDate),
		Week:          calendar.ISOWeek(inv.IssueDate),
		Currency:      inv.Currency,
		Status:        inv.Status,
		TotalNet:      inv.TotalNet,
		TotalVAT:      inv.TotalVAT,
		TotalGross:    inv.TotalGross,
		ReverseCharge: inv.ReverseCharge,
		VATNote:       inv.VATNote,
		QRPayload:     inv.QRPayload,
		Lines:         make([]dto.InvoiceLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.InvoiceLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			VATRate:     l.VATRate,
			LineNet:     l.LineNet,
			LineVAT:     l.LineVAT,
			LineGross:   l.LineGross,
		})
	}
	return resp
}
