package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/factuurpro/factuur-api/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo implements SequenceRepository on PostgreSQL. The single upsert
// is the serialized read-modify-write required for the monthly counter: the
// row lock taken by ON CONFLICT DO UPDATE orders concurrent callers on the
// same (year, month) key, so no sequence number is ever handed out twice.
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository builds the adapter. Pass a pool or tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// NextSeq atomically increments the counter for the key and returns the new
// value, starting at 1 for a month with no invoices yet. Counters only grow;
// deleting an invoice does not touch its row.
func (r *SequenceRepo) NextSeq(ctx context.Context, year int, month time.Month) (int, error) {
	const q = `
		INSERT INTO invoice_counters (year, month, last_seq)
		VALUES ($1, $2, 1)
		ON CONFLICT (year, month)
		DO UPDATE SET last_seq = invoice_counters.last_seq + 1
		RETURNING last_seq`
	var seq int
	if err := r.q.QueryRow(ctx, q, year, int(month)).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next invoice sequence for %d-%02d: %w", year, int(month), err)
	}
	return seq, nil
}
