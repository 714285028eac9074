package repository

import (
	"context"
	"time"
)

// SequenceRepository owns the persisted monthly invoice counters. NextSeq
// performs one atomic read-modify-write for the (year, month) key and returns
// the newly assigned sequence number, starting at 1 for a fresh month.
// Implementations must serialize concurrent calls on the same key so two
// invoices can never receive the same number; counters are never decremented.
type SequenceRepository interface {
	NextSeq(ctx context.Context, year int, month time.Month) (int, error)
}
