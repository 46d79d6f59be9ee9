// Package pass2 resolves the code image's unresolved label references against the symbol table
// and extern list, completes entry-record addresses, and emits the object/entry/extern files.
package pass2

import (
	"fmt"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/log"
	"github.com/asm10/asm10/internal/pass1"
	"github.com/asm10/asm10/internal/symtab"
	"github.com/asm10/asm10/internal/word"
)

// Output is the fully resolved result of the second pass, ready for the object/entry/extern
// emitters.
type Output struct {
	Code    []word.Word
	Data    []word.DataWord
	Entries []symtab.EntryRecord
	Externs *symtab.Externs

	IC int
	DC int
}

// Run resolves every code-image word's SymbolRef against res.Symbols and res.Externs, completes
// entry addresses, and returns the resolved Output. It never fails: an unresolved symbol reference
// is a first-pass error surfaced earlier, and is left with a zero payload here per spec.md §4.6.
func Run(res pass1.Result, logger *log.Logger) Output {
	if logger == nil {
		logger = log.DefaultLogger()
	}

	logger.Debug("pass two starting", "code_words", len(res.Code), "entries", len(res.Entries))

	code := make([]word.Word, len(res.Code))
	copy(code, res.Code)

	for i := range code {
		resolveWord(&code[i], res.Symbols, res.Externs, logger)
	}

	entries := make([]symtab.EntryRecord, len(res.Entries))
	for i, ent := range res.Entries {
		if sym, ok := res.Symbols.Lookup(ent.Name); ok {
			ent.Address = sym.Value
		}

		entries[i] = ent
	}

	logger.Debug("pass two finished", log.Counters(res.IC, res.DC))

	return Output{
		Code:    code,
		Data:    res.Data,
		Entries: entries,
		Externs: res.Externs,
		IC:      res.IC,
		DC:      res.DC,
	}
}

func resolveWord(w *word.Word, symbols *symtab.Table, externs *symtab.Externs, logger *log.Logger) {
	if w.SymbolRef == "" {
		return
	}

	if sym, ok := symbols.Lookup(w.SymbolRef); ok && !sym.IsExternal() {
		w.Payload = uint8(sym.Value)
		w.Are = word.Relocatable

		return
	}

	if _, ok := externs.Lookup(w.SymbolRef); ok {
		w.Payload = 0
		w.Are = word.External
		externs.Use(w.SymbolRef, w.Address)

		return
	}

	logger.Warn("unresolved symbol reference survived pass one", "name", w.SymbolRef, "address", w.Address)
}

// CheckEntries reports a diagnostic through r for every entry whose name never resolved to a
// symbol, or whose symbol is external (spec.md testable property 4). Called after Run; kept
// separate so the orchestrator decides how and whether these are surfaced. Returns the number of
// problems reported.
func CheckEntries(file string, out Output, symbols *symtab.Table, r diag.Reporter) int {
	problems := 0

	for _, ent := range out.Entries {
		sym, ok := symbols.Lookup(ent.Name)

		switch {
		case !ok:
			r.Error(diag.Diagnostic{
				Code:    diag.ASUnknownSymbol,
				File:    file,
				Message: fmt.Sprintf("entry %q does not name a defined symbol", ent.Name),
			})
			problems++
		case sym.IsExternal():
			r.Error(diag.Diagnostic{
				Code:    diag.ASEntryExternal,
				File:    file,
				Message: fmt.Sprintf("entry %q names an external symbol", ent.Name),
			})
			problems++
		}
	}

	return problems
}

