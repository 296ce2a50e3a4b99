// Package freqtable counts occurrences of every 12-bit value.
package freqtable

import (
	"github.com/usnistgov/binparser/packed"
)

// Table is a dense counter array indexed by value.
// The zero Table is empty and ready to use.
type Table struct {
	counts [packed.NValues]uint64
	total  uint64
}

// Insert increments the counter of v.
// v must be a valid 12-bit value.
func (t *Table) Insert(v packed.Value) {
	t.counts[v]++
	t.total++
}

// Count returns the number of times v has been inserted.
func (t *Table) Count(v packed.Value) uint64 {
	return t.counts[v]
}

// Total returns the number of insertions.
func (t *Table) Total() uint64 {
	return t.total
}

// Highest returns the largest value with a nonzero count.
// ok is false if the table is empty.
func (t *Table) Highest() (v packed.Value, ok bool) {
	for i := packed.MaxValue; i >= 0; i-- {
		if t.counts[i] > 0 {
			return packed.Value(i), true
		}
	}
	return 0, false
}
