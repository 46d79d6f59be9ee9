// Package cli contains the command-line interface scaffold, trimmed from the teacher's
// multi-command Commander down to this repository's single assemble command.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/asm10/asm10/internal/assembler"
	"github.com/asm10/asm10/internal/log"
	"github.com/asm10/asm10/internal/report"
)

// Command is the asm10 sub-command: assemble every stem given on the command line.
type Command struct {
	flags   *flag.FlagSet
	verbose bool
}

// New creates the asm10 command and its flag set.
func New() *Command {
	c := &Command{flags: flag.NewFlagSet("asm10", flag.ContinueOnError)}
	c.flags.BoolVar(&c.verbose, "v", false, "enable verbose (debug-level) logging")

	return c
}

// FlagSet returns the command's flag set.
func (c *Command) FlagSet() *flag.FlagSet { return c.flags }

// Description returns a brief summary of the command.
func (c *Command) Description() string {
	return "assemble one or more input stems into object/entry/extern files"
}

// Usage writes detailed usage documentation to out.
func (c *Command) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "usage: asm10 [-v] <stem1> [<stem2> ...]")
	return err
}

// Run parses args, which must be at least one input stem (without its ".as" extension), and
// assembles each in turn. It returns 0 if every stem assembled without error, 1 otherwise — which
// per spec.md §6.4 includes the case of no arguments at all.
func (c *Command) Run(args []string, out io.Writer) int {
	if err := c.flags.Parse(args); err != nil {
		return 1
	}

	stems := c.flags.Args()
	if len(stems) == 0 {
		c.Usage(out)
		return 1
	}

	level := log.Info
	if c.verbose {
		level = log.Debug
	}

	log.LogLevel.Set(level)
	logger := log.NewFormattedLogger(os.Stderr)

	printer := report.NewPrinter(out)

	status := 0

	for _, stem := range stems {
		ok := assembler.Assemble(stem, assembler.Options{Reporter: printer, Logger: logger})
		if !ok {
			status = 1
		}
	}

	return status
}
