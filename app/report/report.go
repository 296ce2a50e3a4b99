// Package report renders the sorted and recent sections of a bin-parser report.
package report

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/math"
	"github.com/usnistgov/binparser/packed"
)

// OutputCount is the maximum number of values in each section.
const OutputCount = 32

// Section headers.
const (
	SortedHeader = "--Sorted Max 32 Values--"
	RecentHeader = "--Last 32 Values--"
)

const lineEnding = "\r\n"

// Counter provides occurrence counts of values.
type Counter interface {
	Count(v packed.Value) uint64
}

// Drainer provides recently observed values in arrival order.
type Drainer interface {
	Drain() []packed.Value
}

// Sorted selects the OutputCount largest observations, in ascending order.
// A value observed several times may appear several times, up to its count.
// max must be the largest observed value; values above it are not examined.
func Sorted(freq Counter, max packed.Value) (list []packed.Value) {
	var sum uint64
	start := int(max)
	for i := int(max); i >= 0 && sum < OutputCount; i-- {
		sum += freq.Count(packed.Value(i))
		start = i
	}

	list = make([]packed.Value, 0, math.MinInt(int(sum), OutputCount))
	for v := start; v <= int(max); v++ {
		n := freq.Count(packed.Value(v))
		if v == start && sum > OutputCount {
			n -= sum - OutputCount
		}
		for ; n > 0; n-- {
			list = append(list, packed.Value(v))
		}
	}
	return list
}

// Recent returns the most recent observations, oldest first.
func Recent(ring Drainer) []packed.Value {
	return ring.Drain()
}

// WriteSection writes a header line followed by one decimal value per line.
// Lines end with CRLF.
func WriteSection(w io.Writer, header string, values []packed.Value) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	bw.WriteString(lineEnding)
	for _, v := range values {
		bw.WriteString(strconv.Itoa(int(v)))
		bw.WriteString(lineEnding)
	}
	return bw.Flush()
}

// WriteSorted writes the sorted section.
func WriteSorted(w io.Writer, freq Counter, max packed.Value) error {
	return WriteSection(w, SortedHeader, Sorted(freq, max))
}

// WriteRecent writes the recent section.
func WriteRecent(w io.Writer, ring Drainer) error {
	return WriteSection(w, RecentHeader, Recent(ring))
}
