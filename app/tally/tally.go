// Package tally holds the state of one parsing run.
package tally

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/usnistgov/binparser/container/freqtable"
	"github.com/usnistgov/binparser/container/history"
	"github.com/usnistgov/binparser/core/logging"
	"github.com/usnistgov/binparser/packed"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var logger = logging.New("tally")

// Tally records every observed value in a frequency table and a recent-history ring.
// Both structures always reflect the same prefix of the input.
type Tally struct {
	freq   freqtable.Table
	recent history.Ring
	max    packed.Value
}

// New creates an empty Tally.
func New() *Tally {
	return &Tally{}
}

// Insert records a value.
func (t *Tally) Insert(v packed.Value) {
	t.freq.Insert(v)
	t.recent.Push(v)
	if v > t.max {
		t.max = v
	}
}

// Max returns the largest observed value, or 0 if nothing was observed.
func (t *Tally) Max() packed.Value {
	return t.max
}

// Total returns the number of observed values.
func (t *Tally) Total() uint64 {
	return t.freq.Total()
}

// Table returns the frequency table.
func (t *Tally) Table() *freqtable.Table {
	return &t.freq
}

// Recent returns the recent-history ring.
func (t *Tally) Recent() *history.Ring {
	return &t.recent
}

// ReadFrom decodes every value from r and inserts it.
// It returns the number of bytes consumed.
// On error, values decoded before the error remain inserted.
func (t *Tally) ReadFrom(r io.Reader) (n int64, e error) {
	u := packed.NewUnpacker(r)
	for {
		v, e := u.Next()
		if errors.Is(e, io.EOF) {
			return u.Offset(), nil
		}
		if e != nil {
			return u.Offset(), e
		}
		if ce := logger.Check(zap.DebugLevel, "value"); ce != nil {
			ce.Write(zap.Int64("offset", u.Offset()), zap.Uint16("value", uint16(v)))
		}
		t.Insert(v)
	}
}

// ParseFile opens a file and decodes every value in it.
func ParseFile(filename string) (t *Tally, e error) {
	file, e := os.Open(filename)
	if e != nil {
		return nil, e
	}
	defer func() { e = multierr.Append(e, file.Close()) }()

	t = New()
	n, e := t.ReadFrom(file)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", filename, e)
	}
	logger.Debug("input parsed",
		zap.String("filename", filename),
		zap.Int64("bytes", n),
		zap.Uint64("values", t.Total()),
		zap.Uint16("max", uint16(t.max)),
	)
	return t, nil
}
