package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/factuurpro/factuur-api/internal/application/billing"
	"github.com/factuurpro/factuur-api/internal/domain/repository"
)

var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner runs billing work inside one pgx transaction. The repositories
// handed to fn share the tx, so the counter increment and the invoice insert
// commit or roll back as a unit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling begins a transaction, invokes fn with tx-bound repositories and
// commits; any error from fn rolls everything back.
func (t *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	seqRepo repository.SequenceRepository,
) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin billing tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }() // no-op after commit

	if err := fn(NewInvoiceRepository(tx), NewSequenceRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit billing tx: %w", err)
	}
	return nil
}
