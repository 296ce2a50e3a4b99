// Package history keeps the most recently observed values in arrival order.
package history

import (
	binutils "github.com/jfoster/binary-utilities"
	"github.com/pkg/math"
	"github.com/usnistgov/binparser/packed"
)

// Capacity is the number of values retained.
// It must be a power of two.
const Capacity = 32

const mask = Capacity - 1

func init() {
	if binutils.NextPowerOfTwo(Capacity) != Capacity {
		panic("history.Capacity must be a power of two")
	}
}

// Ring is a fixed-capacity circular buffer.
// Once full, each Push overwrites the oldest value.
// The zero Ring is empty and ready to use.
type Ring struct {
	values [Capacity]packed.Value
	cursor int
	count  int
}

// Push appends a value.
func (r *Ring) Push(v packed.Value) {
	r.values[r.cursor] = v
	r.cursor = (r.cursor + 1) & mask
	r.count = math.MinInt(r.count+1, Capacity)
}

// Len returns the number of retained values, at most Capacity.
func (r *Ring) Len() int {
	return r.count
}

// Drain returns retained values from oldest to newest.
// The Ring is not modified.
func (r *Ring) Drain() (list []packed.Value) {
	list = make([]packed.Value, r.count)
	start := (r.cursor - r.count) & mask
	for i := range list {
		list[i] = r.values[(start+i)&mask]
	}
	return list
}
