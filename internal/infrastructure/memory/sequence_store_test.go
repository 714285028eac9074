package memory_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurpro/factuur-api/internal/infrastructure/memory"
)

func TestSequenceStore_NextSeq(t *testing.T) {
	store := memory.NewSequenceStore()
	ctx := context.Background()

	s1, err := store.NextSeq(ctx, 2025, time.March)
	require.NoError(t, err)
	s2, err := store.NextSeq(ctx, 2025, time.March)
	require.NoError(t, err)
	s3, err := store.NextSeq(ctx, 2025, time.April)
	require.NoError(t, err)

	assert.Equal(t, 1, s1)
	assert.Equal(t, 2, s2)
	assert.Equal(t, 1, s3, "April starts its own counter")
}

// TestSequenceStore_ConcurrentCallersGetUniqueNumbers exercises the
// serialization contract: racing goroutines on the same (year, month) key
// must each receive a distinct sequence number.
func TestSequenceStore_ConcurrentCallersGetUniqueNumbers(t *testing.T) {
	store := memory.NewSequenceStore()
	ctx := context.Background()

	const n = 50
	results := make([]int, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			seq, err := store.NextSeq(ctx, 2025, time.June)
			assert.NoError(t, err)
			results[i] = seq
		}(i)
	}
	wg.Wait()

	sort.Ints(results)
	for i, seq := range results {
		assert.Equal(t, i+1, seq, "sequence numbers must be 1..n without gaps or duplicates")
	}
}
