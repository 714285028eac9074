package sequence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factuurpro/factuur-api/internal/domain/sequence"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "FV-2025-03-007", sequence.Format(2025, time.March, 7))
	assert.Equal(t, "FV-2025-12-001", sequence.Format(2025, time.December, 1))
	assert.Equal(t, "FV-2025-01-123", sequence.Format(2025, time.January, 123))
}

func TestNext_CountsUpWithinAMonth(t *testing.T) {
	state := sequence.State{}

	var a sequence.Assignment
	state, a = sequence.Next(state, date(2025, time.March, 3))
	assert.Equal(t, 1, a.Seq)
	assert.Equal(t, "FV-2025-03-001", a.Number)

	state, a = sequence.Next(state, date(2025, time.March, 10))
	assert.Equal(t, 2, a.Seq)

	_, a = sequence.Next(state, date(2025, time.March, 31))
	assert.Equal(t, 3, a.Seq)
	assert.Equal(t, "FV-2025-03-003", a.Number)
}

func TestNext_MonthsHaveIndependentCounters(t *testing.T) {
	state := sequence.State{}
	for i := 0; i < 3; i++ {
		state, _ = sequence.Next(state, date(2025, time.March, 5))
	}

	state, a := sequence.Next(state, date(2025, time.April, 1))
	assert.Equal(t, 1, a.Seq, "a new month restarts at 1, it does not continue the previous counter")
	assert.Equal(t, "FV-2025-04-001", a.Number)

	_, a = sequence.Next(state, date(2025, time.March, 20))
	assert.Equal(t, 4, a.Seq, "the old month's counter keeps its position")
}

func TestNext_DoesNotMutateInputState(t *testing.T) {
	original := sequence.State{
		{Year: 2025, Month: time.March}: 7,
	}

	next, a := sequence.Next(original, date(2025, time.March, 15))

	require.Equal(t, 8, a.Seq)
	assert.Equal(t, 7, original[sequence.Key{Year: 2025, Month: time.March}],
		"Next must return a new state, never mutate the one passed in")
	assert.Equal(t, 8, next[sequence.Key{Year: 2025, Month: time.March}])
}

func TestNext_SameMonthDifferentYears(t *testing.T) {
	state := sequence.State{}
	state, a := sequence.Next(state, date(2024, time.December, 31))
	assert.Equal(t, "FV-2024-12-001", a.Number)

	_, a = sequence.Next(state, date(2025, time.December, 1))
	assert.Equal(t, "FV-2025-12-001", a.Number,
		"December 2024 and December 2025 are distinct keys")
}
