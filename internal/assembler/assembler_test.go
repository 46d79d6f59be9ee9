package assembler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStem(t *testing.T, dir, name, src string) string {
	t.Helper()

	stem := filepath.Join(dir, name)
	if err := os.WriteFile(stem+".as", []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	return stem
}

func TestAssembleSimpleProgram(t *testing.T) {
	dir := t.TempDir()
	stem := writeStem(t, dir, "prog", "STOP: stop\n")

	if ok := Assemble(stem, Options{}); !ok {
		t.Fatal("expected assembly to succeed")
	}

	ob, err := os.ReadFile(stem + ".ob")
	if err != nil {
		t.Fatalf("object file not written: %v", err)
	}

	if !strings.Contains(string(ob), "\t") {
		t.Errorf("object file missing header tab: %q", ob)
	}

	if _, err := os.Stat(stem + ".ent"); !os.IsNotExist(err) {
		t.Error("entry file should not exist when there are no entries")
	}

	if _, err := os.Stat(stem + ".ext"); !os.IsNotExist(err) {
		t.Error("extern file should not exist when there are no extern usages")
	}
}

func TestAssembleWithEntryAndExtern(t *testing.T) {
	dir := t.TempDir()
	src := ".entry MAIN\n.extern W\nMAIN: mov W, r1\nstop\n"
	stem := writeStem(t, dir, "prog", src)

	if ok := Assemble(stem, Options{}); !ok {
		t.Fatal("expected assembly to succeed")
	}

	ent, err := os.ReadFile(stem + ".ent")
	if err != nil {
		t.Fatalf("entry file not written: %v", err)
	}

	if !strings.Contains(string(ent), "MAIN") {
		t.Errorf("entry file missing MAIN: %q", ent)
	}

	ext, err := os.ReadFile(stem + ".ext")
	if err != nil {
		t.Fatalf("extern file not written: %v", err)
	}

	if !strings.Contains(string(ext), "W") {
		t.Errorf("extern file missing W: %q", ext)
	}
}

func TestAssembleWithMacro(t *testing.T) {
	dir := t.TempDir()
	src := "mcro double\nmov r1, r2\nmov r1, r2\nmcroend\ndouble\nstop\n"
	stem := writeStem(t, dir, "prog", src)

	if ok := Assemble(stem, Options{}); !ok {
		t.Fatal("expected assembly to succeed")
	}

	am, err := os.ReadFile(stem + ".am")
	if err != nil {
		t.Fatalf("macro-expanded file not written: %v", err)
	}

	if strings.Count(string(am), "mov r1, r2") != 2 {
		t.Errorf("macro expansion did not duplicate body: %q", am)
	}
}

func TestAssembleFailsOnUnknownMnemonic(t *testing.T) {
	dir := t.TempDir()
	stem := writeStem(t, dir, "prog", "frobnicate r1\n")

	if ok := Assemble(stem, Options{}); ok {
		t.Fatal("expected assembly to fail on unknown mnemonic")
	}

	if _, err := os.Stat(stem + ".ob"); !os.IsNotExist(err) {
		t.Error("object file should not be written when pass one fails")
	}
}

func TestAssembleFailsOnUnterminatedMacro(t *testing.T) {
	dir := t.TempDir()
	stem := writeStem(t, dir, "prog", "mcro m1\nstop\n")

	if ok := Assemble(stem, Options{}); ok {
		t.Fatal("expected assembly to fail on unterminated macro")
	}

	if _, err := os.Stat(stem + ".am"); !os.IsNotExist(err) {
		t.Error(".am should not exist after a failed macro pass")
	}
}
