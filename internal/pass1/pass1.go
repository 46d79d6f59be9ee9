// Package pass1 implements the first-pass driver: it walks macro-expanded source, builds the
// symbol table, and lays out the code and data images, leaving instruction operand references
// unresolved for the second pass.
package pass1

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/directive"
	"github.com/asm10/asm10/internal/encoder"
	"github.com/asm10/asm10/internal/lexer"
	"github.com/asm10/asm10/internal/log"
	"github.com/asm10/asm10/internal/opcode"
	"github.com/asm10/asm10/internal/symtab"
	"github.com/asm10/asm10/internal/word"
)

// Result is everything the first pass produces for the second pass to consume.
type Result struct {
	Symbols *symtab.Table
	Externs *symtab.Externs
	Entries []symtab.EntryRecord // addresses are zero until pass two fills them in

	Code []word.Word
	Data []word.DataWord

	IC int // final instruction counter
	DC int // final data counter
}

// Driver runs the first pass over one macro-expanded source file.
type Driver struct {
	file    string
	logger  *log.Logger
	counter *diag.Counter

	symbols *symtab.Table
	externs *symtab.Externs
	entries []symtab.EntryRecord

	code []word.Word
	data []word.DataWord

	ic int
	dc int

	lineNo int
}

// NewDriver creates a Driver that reports diagnostics against file through r (which may be
// diag.Discard) and logs stage transitions to logger (which may be nil to discard logs).
func NewDriver(file string, r diag.Reporter, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	return &Driver{
		file:    file,
		logger:  logger,
		counter: diag.NewCounter(r),
		symbols: symtab.New(),
		externs: symtab.NewExterns(),
		ic:      symtab.StartIC,
	}
}

// Errors returns the number of errors reported while Run executed.
func (d *Driver) Errors() int { return d.counter.Errors() }

// Run reads r line by line and returns the pass's accumulated result. ok is false if any error was
// reported; Result is still returned (possibly partial) for diagnostic purposes.
func (d *Driver) Run(r io.Reader) (Result, bool) {
	d.logger.Debug("pass one starting", "file", d.file)

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		d.lineNo++
		d.processLine(scanner.Text())
	}

	d.logger.Debug("pass one counters final", log.Counters(d.ic, d.dc), "errors", d.counter.Errors())

	d.checkSize()

	d.symbols.FinalizeData(d.ic)

	// Data words follow the code image, matching the final DATA symbol values set above.
	for i := range d.data {
		d.data[i].Address += d.ic - symtab.StartIC
	}

	for _, w := range d.code {
		if w.SymbolRef == "" {
			continue
		}

		if _, found := d.symbols.Lookup(w.SymbolRef); !found {
			d.report("", 0, diag.ASUnknownSymbol, fmt.Sprintf("undefined symbol %q referenced at address %d", w.SymbolRef, w.Address))
		}
	}

	for _, ent := range d.entries {
		// Errors (undefined or external entry symbol) are left for pass2.CheckEntries, which has
		// the full picture once pass two has run; MarkEntry here only flags the symbol itself.
		_ = d.symbols.MarkEntry(ent.Name)
	}

	res := Result{
		Symbols: d.symbols,
		Externs: d.externs,
		Entries: d.entries,
		Code:    d.code,
		Data:    d.data,
		IC:      d.ic,
		DC:      d.dc,
	}

	return res, d.counter.Errors() == 0
}

func (d *Driver) processLine(raw string) {
	line := stripComment(raw)
	line = strings.TrimSpace(line)

	if line == "" {
		return
	}

	label, rest := extractLabel(line)

	rest = strings.TrimSpace(rest)

	first, tail := splitFirst(rest)
	if first == "" {
		return
	}

	switch {
	case strings.HasPrefix(first, "."):
		d.handleDirective(label, raw, strings.ToLower(first), tail)
	default:
		d.handleInstruction(label, raw, first, tail)
	}
}

func (d *Driver) handleDirective(label, source, name string, tail string) {
	switch name {
	case ".data":
		words, err := directive.ParseData(tail)
		if err != nil {
			d.reportDirective(source, err)
			return
		}

		d.defineLabel(label, source, symtab.Data)
		d.appendData(words)

	case ".string":
		words, err := directive.ParseString(tail)
		if err != nil {
			d.reportDirective(source, err)
			return
		}

		d.defineLabel(label, source, symtab.Data)
		d.appendData(words)

	case ".mat":
		words, err := directive.ParseMat(tail)
		if err != nil {
			d.reportDirective(source, err)
			return
		}

		d.defineLabel(label, source, symtab.Data)
		d.appendData(words)

	case ".entry":
		entryName, err := directive.ParseEntry(tail)
		if err != nil {
			d.reportDirective(source, err)
			return
		}

		d.entries = append(d.entries, symtab.EntryRecord{Name: entryName})

	case ".extern":
		externName, err := directive.ParseExtern(tail)
		if err != nil {
			d.reportDirective(source, err)
			return
		}

		d.externs.Declare(externName)

		if derr := d.symbols.Define(externName, 0, symtab.External); derr != nil {
			d.report(source, 1, diag.ASDuplicateLabel, derr.Error())
		}

	default:
		d.report(source, 1, diag.ASUnknownMnemonic, fmt.Sprintf("unknown directive %q", name))
	}
}

func (d *Driver) handleInstruction(label, source, mnemonic, tail string) {
	rule, ok := opcode.Lookup(mnemonic)
	if !ok {
		d.report(source, 1, diag.ASUnknownMnemonic, fmt.Sprintf("unknown mnemonic %q", mnemonic))
		return
	}

	d.defineLabel(label, source, symtab.Code)

	ins, err := encoder.Encode(rule, tail)
	if err != nil {
		d.reportEncode(source, err)
		return
	}

	words := encoder.Relocate(ins.Words(), d.ic)
	d.code = append(d.code, words...)
	d.ic += len(words)
}

func (d *Driver) defineLabel(label, source string, kind symtab.Kind) {
	if label == "" {
		return
	}

	var value int
	if kind == symtab.Code {
		value = d.ic
	} else {
		value = symtab.StartIC + d.dc
	}

	if err := d.symbols.Define(label, value, kind); err != nil {
		d.report(source, 1, diag.ASDuplicateLabel, err.Error())
		return
	}

	d.logger.Debug("label defined", "name", label, "value", value, "kind", kind)
}

func (d *Driver) appendData(words []word.DataWord) {
	for _, w := range words {
		w.Address = symtab.StartIC + d.dc
		d.data = append(d.data, w)
		d.dc++
	}
}

func (d *Driver) checkSize() {
	total := (d.ic - symtab.StartIC) + d.dc
	if total > 255 {
		d.report("", 0, diag.ASSizeBound, fmt.Sprintf("program size %d exceeds 255 words", total))
	}
}

func (d *Driver) reportDirective(source string, err *directive.Error) {
	d.report(source, err.Column, err.Code, err.Message)
}

func (d *Driver) reportEncode(source string, err error) {
	switch e := err.(type) {
	case *lexer.MatrixError:
		d.report(source, e.Column, e.Code, e.Error())
	case *encoder.Error:
		d.report(source, e.Column, e.Code, e.Message)
	default:
		switch {
		case errors.Is(err, encoder.ErrExtraComma):
			d.report(source, 1, diag.ASExtraComma, err.Error())
		case errors.Is(err, encoder.ErrEmptyOperand):
			d.report(source, 1, diag.ASEmptyOperand, err.Error())
		default:
			d.report(source, 1, diag.ASOperandCount, err.Error())
		}
	}
}

func (d *Driver) report(source string, col int, code diag.Code, msg string) {
	d.counter.Error(diag.Diagnostic{
		Code:    code,
		File:    d.file,
		Line:    d.lineNo,
		Column:  col,
		Source:  source,
		Span:    diag.Span{Start: col, End: col},
		Message: msg,
	})
}

// stripComment removes a ';'-to-end-of-line comment.
func stripComment(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		return line[:i]
	}

	return line
}

// extractLabel splits a "LABEL: rest" line into its label (without the colon) and the remainder.
// If the line has no label, label is "" and rest is the whole line.
func extractLabel(line string) (label, rest string) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", line
	}

	candidate := strings.TrimSpace(line[:i])
	if !lexer.IsLabel(candidate) {
		return "", line
	}

	return candidate, line[i+1:]
}

func splitFirst(s string) (first, rest string) {
	s = strings.TrimSpace(s)

	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}

	return s[:i], s[i+1:]
}

