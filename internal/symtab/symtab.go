// Package symtab implements the symbol table shared by both assembler passes: the first pass
// populates it, the second pass reads it (and appends to extern usage lists).
package symtab

import "fmt"

// Kind is a bitmask of the roles a symbol can play. A symbol defined in the code or data image may
// also be marked as an entry; an external symbol is never also CODE or DATA.
type Kind uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Kind -output kind_string.go

// Symbol kinds.
const (
	Code Kind = 1 << iota
	Data
	External
	Entry
)

// Symbol is a named location in a translation unit.
type Symbol struct {
	Name  string
	Value int
	Kind  Kind
}

// IsExternal reports whether the symbol was declared with .extern.
func (s Symbol) IsExternal() bool { return s.Kind&External != 0 }

// Table maps symbol names to their definitions. Names are case-sensitive and unique within a
// translation unit.
type Table struct {
	symbols map[string]*Symbol
	order   []string // insertion order, for deterministic iteration
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// DuplicateError is returned by Define when a symbol name is already present.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("symtab: duplicate symbol %q", e.Name)
}

// Define adds a new symbol. It returns a *DuplicateError if the name is already present; the
// existing definition is left untouched.
func (t *Table) Define(name string, value int, kind Kind) error {
	if _, ok := t.symbols[name]; ok {
		return &DuplicateError{Name: name}
	}

	t.symbols[name] = &Symbol{Name: name, Value: value, Kind: kind}
	t.order = append(t.order, name)

	return nil
}

// Lookup returns the symbol with the given name, if any.
func (t *Table) Lookup(name string) (Symbol, bool) {
	sym, ok := t.symbols[name]
	if !ok {
		return Symbol{}, false
	}

	return *sym, true
}

// MarkEntry sets the Entry bit on an existing, non-external symbol. It reports an error if the
// symbol does not exist or is external.
func (t *Table) MarkEntry(name string) error {
	sym, ok := t.symbols[name]
	if !ok {
		return fmt.Errorf("symtab: entry references undefined symbol %q", name)
	} else if sym.Kind&External != 0 {
		return fmt.Errorf("symtab: entry symbol %q is external", name)
	}

	sym.Kind |= Entry

	return nil
}

// StartIC is the first code-image address (IC's initial value).
const StartIC = 100

// FinalizeData turns every DATA symbol's provisional value (StartIC + DC at definition time, see
// pass1) into its final absolute address (icFinal + DC at definition time), once IC_final is
// known at the end of the first pass.
func (t *Table) FinalizeData(icFinal int) {
	for _, sym := range t.symbols {
		if sym.Kind&Data != 0 {
			sym.Value = sym.Value - StartIC + icFinal
		}
	}
}

// Each calls fn for every symbol in definition order.
func (t *Table) Each(fn func(Symbol)) {
	for _, name := range t.order {
		fn(*t.symbols[name])
	}
}

// Count returns the number of symbols in the table.
func (t *Table) Count() int { return len(t.symbols) }

// EntryRecord names a symbol exported from this translation unit and its resolved address.
type EntryRecord struct {
	Name    string
	Address int
}

// ExternRecord names a symbol imported by this translation unit and every code-image address at
// which it is referenced, in the order pass two discovers them.
type ExternRecord struct {
	Name string
	Uses []int
}

// Externs collects the extern declarations of a translation unit and records each use of them
// discovered during the second pass.
type Externs struct {
	records map[string]*ExternRecord
	order   []string
}

// NewExterns creates an empty extern collection.
func NewExterns() *Externs {
	return &Externs{records: make(map[string]*ExternRecord)}
}

// Declare registers name as an extern symbol. Declaring a name that is already registered is a
// no-op; rejecting duplicate .extern declarations is left to the caller, via the symbol table.
func (e *Externs) Declare(name string) {
	if _, ok := e.records[name]; ok {
		return
	}

	e.records[name] = &ExternRecord{Name: name}
	e.order = append(e.order, name)
}

// Lookup reports whether name was declared extern.
func (e *Externs) Lookup(name string) (*ExternRecord, bool) {
	rec, ok := e.records[name]
	return rec, ok
}

// Use appends an address to the extern's usage list.
func (e *Externs) Use(name string, address int) {
	rec, ok := e.records[name]
	if !ok {
		return
	}

	rec.Uses = append(rec.Uses, address)
}

// Each calls fn for every extern record in declaration order.
func (e *Externs) Each(fn func(ExternRecord)) {
	for _, name := range e.order {
		fn(*e.records[name])
	}
}
