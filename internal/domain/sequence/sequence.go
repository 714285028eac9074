// Package sequence assigns sequential invoice numbers. Numbering is per
// (year, month): the first invoice of a month gets 001 and the counter never
// rolls back, even when an invoice is later deleted. The transition itself is
// a pure function; persisting the returned state (and serializing concurrent
// transitions on the same key) is the caller's responsibility.
package sequence

import (
	"fmt"
	"time"
)

// Key identifies one monthly counter.
type Key struct {
	Year  int
	Month time.Month
}

// State maps monthly keys to the last assigned sequence number.
// A missing key means no invoice has been issued for that month yet.
type State map[Key]int

// Assignment is the result of one counter transition.
type Assignment struct {
	Number string
	Year   int
	Month  time.Month
	Seq    int
}

// Next derives the (year, month) key from the issue date, increments that
// counter and returns the new state together with the formatted number.
// The input state is never mutated.
func Next(state State, issueDate time.Time) (State, Assignment) {
	key := Key{Year: issueDate.Year(), Month: issueDate.Month()}

	next := make(State, len(state)+1)
	for k, v := range state {
		next[k] = v
	}
	seq := next[key] + 1
	next[key] = seq

	return next, Assignment{
		Number: Format(key.Year, key.Month, seq),
		Year:   key.Year,
		Month:  key.Month,
		Seq:    seq,
	}
}

// Format renders an invoice number as FV-YYYY-MM-NNN.
func Format(year int, month time.Month, seq int) string {
	return fmt.Sprintf("FV-%04d-%02d-%03d", year, int(month), seq)
}
