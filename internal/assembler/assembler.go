// Package assembler orchestrates one input stem through the macro preprocessor, the first pass,
// and the second pass, writing the object/entry/extern files on success.
package assembler

import (
	"fmt"
	"io"
	"os"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/log"
	"github.com/asm10/asm10/internal/macro"
	"github.com/asm10/asm10/internal/pass1"
	"github.com/asm10/asm10/internal/pass2"
)

// Options configures a single-stem assembly run.
type Options struct {
	Reporter diag.Reporter // nil defaults to diag.Discard
	Logger   *log.Logger   // nil defaults to log.DefaultLogger()
}

// Assemble runs the full pipeline for stem (an input path without its ".as" extension): macro
// expansion to "<stem>.am", the first pass over the expanded source, and — if pass one reported no
// errors — the second pass and its output files. It returns true if the stem assembled cleanly.
func Assemble(stem string, opts Options) bool {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.Discard
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger()
	}

	srcPath := stem + ".as"
	amPath := stem + ".am"

	logger.Debug("assembling stem", "stem", stem)

	expander := macro.NewExpander(srcPath, reporter)
	if ok := expander.Run(srcPath, amPath); !ok {
		logger.Warn("macro preprocessing failed", "stem", stem, "errors", expander.Errors())
		return false
	}

	am, err := os.Open(amPath)
	if err != nil {
		reporter.Error(diag.Diagnostic{
			Code:    diag.ASMacroStageFailed,
			File:    amPath,
			Message: fmt.Sprintf("cannot open macro-expanded source: %v", err),
		})

		return false
	}
	defer am.Close()

	driver := pass1.NewDriver(amPath, reporter, logger)

	res, ok := driver.Run(am)
	if !ok {
		reporter.Error(diag.Diagnostic{
			Code:    diag.ASPassOneFailed,
			File:    amPath,
			Message: fmt.Sprintf("first pass reported %d error(s); second pass skipped", driver.Errors()),
		})

		return false
	}

	out := pass2.Run(res, logger)

	if problems := pass2.CheckEntries(amPath, out, res.Symbols, reporter); problems > 0 {
		logger.Warn("entry directives failed resolution", "stem", stem, "problems", problems)
		return false
	}

	return writeOutputs(stem, out, logger)
}

func writeOutputs(stem string, out pass2.Output, logger *log.Logger) bool {
	obPath := stem + ".ob"

	obFile, err := os.Create(obPath)
	if err != nil {
		logger.Error("cannot create object file", "path", obPath, "err", err)
		return false
	}

	writeErr := pass2.WriteObject(obFile, out)
	closeErr := obFile.Close()

	if writeErr != nil || closeErr != nil {
		logger.Error("failed writing object file", "path", obPath)
		return false
	}

	if err := writeConditional(stem+".ent", out, pass2.WriteEntries); err != nil {
		logger.Error("failed writing entry file", "stem", stem, "err", err)
		return false
	}

	if err := writeConditional(stem+".ext", out, pass2.WriteExterns); err != nil {
		logger.Error("failed writing extern file", "stem", stem, "err", err)
		return false
	}

	logger.Debug("assembly complete", "stem", stem)

	return true
}

func writeConditional(path string, out pass2.Output, write func(w io.Writer, out pass2.Output) (bool, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	wrote, werr := write(f, out)

	if closeErr := f.Close(); werr == nil {
		werr = closeErr
	}

	if werr != nil {
		return werr
	}

	if !wrote {
		return os.Remove(path)
	}

	return nil
}
