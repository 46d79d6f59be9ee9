package symtab

import (
	"errors"
	"testing"
)

func TestDefineDuplicate(t *testing.T) {
	tbl := New()

	if err := tbl.Define("LOOP", 100, Code); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	err := tbl.Define("LOOP", 101, Code)
	if err == nil {
		t.Fatal("expected duplicate error")
	}

	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateError, got %T", err)
	}
}

func TestFinalizeData(t *testing.T) {
	tbl := New()
	_ = tbl.Define("CODE1", 100, Code)
	_ = tbl.Define("DATA1", StartIC+0, Data)
	_ = tbl.Define("DATA2", StartIC+3, Data)

	tbl.FinalizeData(105) // IC_final = 105

	code, _ := tbl.Lookup("CODE1")
	if code.Value != 100 {
		t.Errorf("CODE1 value changed: got %d", code.Value)
	}

	d1, _ := tbl.Lookup("DATA1")
	if d1.Value != 105 {
		t.Errorf("DATA1 = %d, want 105", d1.Value)
	}

	d2, _ := tbl.Lookup("DATA2")
	if d2.Value != 108 {
		t.Errorf("DATA2 = %d, want 108", d2.Value)
	}
}

func TestMarkEntry(t *testing.T) {
	tbl := New()
	_ = tbl.Define("FOO", 100, Code)

	if err := tbl.MarkEntry("FOO"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	sym, _ := tbl.Lookup("FOO")
	if sym.Kind&Entry == 0 {
		t.Error("FOO not marked as entry")
	}

	if err := tbl.MarkEntry("BAR"); err == nil {
		t.Error("expected error marking undefined symbol as entry")
	}
}

func TestExternUses(t *testing.T) {
	ext := NewExterns()
	ext.Declare("W")
	ext.Use("W", 104)
	ext.Use("W", 110)

	rec, ok := ext.Lookup("W")
	if !ok {
		t.Fatal("extern W not found")
	}

	if len(rec.Uses) != 2 || rec.Uses[0] != 104 || rec.Uses[1] != 110 {
		t.Errorf("unexpected uses: %v", rec.Uses)
	}
}
