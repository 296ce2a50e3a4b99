package binparser

import (
	"io"
	"os"

	"github.com/usnistgov/binparser/app/report"
	"github.com/usnistgov/binparser/app/tally"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Run parses the input file, then writes the sorted section and the recent section to the output file.
// The input is fully parsed before the output file is opened.
func Run(cfg Config) error {
	t, e := tally.ParseFile(cfg.Input)
	if e != nil {
		logger.Error("input error", zap.String("input", cfg.Input), zap.Error(e))
		return &InputError{Filename: cfg.Input, Err: e}
	}

	if e := writeFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, func(w io.Writer) error {
		return report.WriteSorted(w, t.Table(), t.Max())
	}); e != nil {
		logger.Error("sorted section error", zap.String("output", cfg.Output), zap.Error(e))
		return &OutputError{Filename: cfg.Output, Err: e}
	}

	if e := writeFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, func(w io.Writer) error {
		return report.WriteRecent(w, t.Recent())
	}); e != nil {
		logger.Error("recent section error", zap.String("output", cfg.Output), zap.Error(e))
		return &OutputError{Filename: cfg.Output, Err: e}
	}

	logger.Info("report written",
		zap.String("input", cfg.Input),
		zap.String("output", cfg.Output),
		zap.Uint64("values", t.Total()),
		zap.Uint16("max", uint16(t.Max())),
	)
	return nil
}

func writeFile(filename string, flag int, f func(w io.Writer) error) (e error) {
	file, e := os.OpenFile(filename, flag, 0o644)
	if e != nil {
		return e
	}
	defer func() { e = multierr.Append(e, file.Close()) }()
	return f(file)
}
