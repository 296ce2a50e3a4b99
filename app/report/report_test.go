package report_test

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/usnistgov/binparser/app/report"
	"github.com/usnistgov/binparser/container/freqtable"
	"github.com/usnistgov/binparser/container/history"
	"github.com/usnistgov/binparser/packed"
)

func fill(values ...packed.Value) (tbl *freqtable.Table, ring *history.Ring, max packed.Value) {
	tbl, ring = &freqtable.Table{}, &history.Ring{}
	for _, v := range values {
		tbl.Insert(v)
		ring.Push(v)
		if v > max {
			max = v
		}
	}
	return
}

func TestSortedSmall(t *testing.T) {
	assert, _ := makeAR(t)

	tbl, _, max := fill()
	assert.Len(report.Sorted(tbl, max), 0)

	tbl, _, max = fill(0x456, 0x123)
	assert.Equal([]packed.Value{0x123, 0x456}, report.Sorted(tbl, max))

	tbl, _, max = fill(0, 4095)
	assert.Equal([]packed.Value{0, 4095}, report.Sorted(tbl, max))

	tbl, _, max = fill(5, 5, 5, 0, 5)
	assert.Equal([]packed.Value{0, 5, 5, 5, 5}, report.Sorted(tbl, max))
}

func TestSortedTruncateStart(t *testing.T) {
	assert, _ := makeAR(t)

	var values []packed.Value
	for i := 0; i < 35; i++ {
		values = append(values, 100)
	}
	for i := 0; i < 10; i++ {
		values = append(values, 50)
	}
	values = append(values, 200, 300)
	tbl, _, max := fill(values...)

	list := report.Sorted(tbl, max)
	assert.Len(list, report.OutputCount)
	assert.Equal(packed.Value(100), list[0])
	assert.Equal(packed.Value(100), list[29])
	assert.Equal(packed.Value(200), list[30])
	assert.Equal(packed.Value(300), list[31])
}

func TestSortedProperty(t *testing.T) {
	assert, _ := makeAR(t)
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 31, 32, 33, 100, 5000} {
		for _, domain := range []int{1, 3, 40, packed.NValues} {
			values := make([]packed.Value, n)
			for i := range values {
				values[i] = packed.Value(rng.Intn(domain))
			}
			tbl, _, max := fill(values...)

			sorted := append([]packed.Value(nil), values...)
			sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
			want := sorted
			if len(want) > report.OutputCount {
				want = want[len(want)-report.OutputCount:]
			}

			assert.Equal(want, report.Sorted(tbl, max), "n=%d domain=%d", n, domain)
		}
	}
}

func TestRecent(t *testing.T) {
	assert, _ := makeAR(t)

	var values []packed.Value
	for i := 0; i < 50; i++ {
		values = append(values, packed.Value(4095-i))
	}
	_, ring, _ := fill(values...)
	assert.Equal(values[50-report.OutputCount:], report.Recent(ring))
}

func TestWrite(t *testing.T) {
	assert, require := makeAR(t)

	tbl, ring, max := fill(0x123, 0x456)
	var b bytes.Buffer
	require.NoError(report.WriteSorted(&b, tbl, max))
	require.NoError(report.WriteRecent(&b, ring))
	assert.Equal("--Sorted Max 32 Values--\r\n291\r\n1110\r\n--Last 32 Values--\r\n291\r\n1110\r\n", b.String())

	assert.Contains(report.SortedHeader, strconv.Itoa(report.OutputCount))
	assert.Contains(report.RecentHeader, strconv.Itoa(report.OutputCount))
	assert.Equal(report.OutputCount, history.Capacity)

	tbl, ring, max = fill()
	b.Reset()
	require.NoError(report.WriteSorted(&b, tbl, max))
	require.NoError(report.WriteRecent(&b, ring))
	assert.Equal(2, strings.Count(b.String(), "\r\n"))
}

type failWriter struct{}

var errFail = errors.New("disk full")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errFail
}

func TestWriteError(t *testing.T) {
	assert, _ := makeAR(t)

	tbl, ring, max := fill(1, 2, 3)
	assert.ErrorIs(report.WriteSorted(failWriter{}, tbl, max), errFail)
	assert.ErrorIs(report.WriteRecent(failWriter{}, ring), errFail)
}
