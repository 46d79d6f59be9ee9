package pass1

import (
	"strings"
	"testing"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/symtab"
)

func TestBasicProgram(t *testing.T) {
	src := "MAIN: mov r1, r2\nstop\n"

	d := NewDriver("t.am", diag.Discard, nil)
	res, ok := d.Run(strings.NewReader(src))
	if !ok {
		t.Fatalf("expected success, got %d errors", d.Errors())
	}

	if res.IC != symtab.StartIC+3 {
		t.Errorf("IC = %d, want %d", res.IC, symtab.StartIC+3)
	}

	sym, found := res.Symbols.Lookup("MAIN")
	if !found || sym.Value != symtab.StartIC {
		t.Errorf("MAIN = %+v, found=%v", sym, found)
	}
}

func TestDataDirectiveAndLabel(t *testing.T) {
	src := "N: .data 1, 2, 3\n"

	d := NewDriver("t.am", diag.Discard, nil)
	res, ok := d.Run(strings.NewReader(src))
	if !ok {
		t.Fatalf("expected success, got %d errors", d.Errors())
	}

	if len(res.Data) != 3 {
		t.Fatalf("got %d data words, want 3", len(res.Data))
	}

	sym, found := res.Symbols.Lookup("N")
	if !found {
		t.Fatal("N not defined")
	}

	// After FinalizeData, a DATA symbol's value is icFinal + its DC-at-definition offset.
	if sym.Value != res.IC {
		t.Errorf("N = %d, want %d (icFinal, since N was defined at dc=0)", sym.Value, res.IC)
	}
}

func TestEntryAndExtern(t *testing.T) {
	src := ".extern FOO\n.entry BAR\nBAR: mov FOO, r1\n"

	d := NewDriver("t.am", diag.Discard, nil)
	res, ok := d.Run(strings.NewReader(src))
	if !ok {
		t.Fatalf("expected success, got %d errors", d.Errors())
	}

	if len(res.Entries) != 1 || res.Entries[0].Name != "BAR" {
		t.Fatalf("got entries %+v", res.Entries)
	}

	if _, ok := res.Externs.Lookup("FOO"); !ok {
		t.Error("FOO not registered as extern")
	}
}

func TestUnknownMnemonic(t *testing.T) {
	d := NewDriver("t.am", diag.Discard, nil)
	_, ok := d.Run(strings.NewReader("frobnicate r1\n"))

	if ok {
		t.Fatal("expected failure for unknown mnemonic")
	}
}

func TestDuplicateLabel(t *testing.T) {
	d := NewDriver("t.am", diag.Discard, nil)
	_, ok := d.Run(strings.NewReader("A: stop\nA: stop\n"))

	if ok {
		t.Fatal("expected failure for duplicate label")
	}
}

func TestCommentsAndBlankLines(t *testing.T) {
	src := "; a comment\n\nstop ; trailing comment\n"

	d := NewDriver("t.am", diag.Discard, nil)
	res, ok := d.Run(strings.NewReader(src))
	if !ok {
		t.Fatalf("expected success, got %d errors", d.Errors())
	}

	if len(res.Code) != 1 {
		t.Fatalf("got %d code words, want 1", len(res.Code))
	}
}

func TestSizeBoundExceeded(t *testing.T) {
	var b strings.Builder

	for i := 0; i < 90; i++ {
		b.WriteString("mov r1, r2\n") // register-pair optimization: 2 words each
	}

	for i := 0; i < 30; i++ {
		b.WriteString("mov #1, r2\n") // 3 words each
	}

	d := NewDriver("t.am", diag.Discard, nil)
	_, ok := d.Run(strings.NewReader(b.String()))

	if ok {
		t.Fatal("expected failure: program exceeds 255 words")
	}
}
