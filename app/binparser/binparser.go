// Package binparser parses a file of packed 12-bit values and writes a text report.
package binparser

import (
	"github.com/usnistgov/binparser/core/logging"
)

var logger = logging.New("binparser")

// Config contains run configuration.
type Config struct {
	// Input is the binary input filename.
	Input string
	// Output is the report filename. It is truncated if it exists.
	Output string
}
