// Command bin-parser reads a file of packed 12-bit values and writes a report of the largest and the last values.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"
	"github.com/usnistgov/binparser/app/binparser"
	"github.com/usnistgov/binparser/core/logging"
	"github.com/usnistgov/binparser/core/version"
	"go.uber.org/zap"
)

var logger = logging.New("main")

// Exit codes.
const (
	exitUsage  = 1
	exitInput  = 2
	exitOutput = 3
)

// Messages printed on standard output.
const (
	msgInputError  = "ERROR: Input file either doesn't exist or is invalid.\r\n"
	msgOutputError = "ERROR: Failed to write to output file.\r\n"
)

func newApp() *cli.App {
	return &cli.App{
		Name:            "bin-parser",
		Version:         version.V.String(),
		Usage:           "Report the largest and the last 12-bit values in a packed binary file.",
		ArgsUsage:       "<in-file> <out-file>",
		HideHelpCommand: true,
		Action:          action,
	}
}

func action(c *cli.Context) error {
	if c.NArg() != 2 {
		fmt.Fprintf(c.App.Writer, "usage: %s %s\n", c.App.Name, c.App.ArgsUsage)
		return cli.Exit("", exitUsage)
	}

	cfg := binparser.Config{
		Input:  c.Args().Get(0),
		Output: c.Args().Get(1),
	}
	e := binparser.Run(cfg)

	var inputError *binparser.InputError
	var outputError *binparser.OutputError
	switch {
	case e == nil:
		return nil
	case errors.As(e, &inputError):
		fmt.Fprint(c.App.Writer, msgInputError)
		return cli.Exit("", exitInput)
	case errors.As(e, &outputError):
		fmt.Fprint(c.App.Writer, msgOutputError)
		return cli.Exit("", exitOutput)
	default:
		return e
	}
}

func main() {
	logger.Debug("invoked", zap.String("cmdline", shellquote.Join(os.Args...)))

	e := newApp().Run(os.Args)
	if e != nil {
		log.Fatal(e)
	}
}
