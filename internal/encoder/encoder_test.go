package encoder

import (
	"testing"

	"github.com/asm10/asm10/internal/opcode"
)

func ruleFor(t *testing.T, mnemonic string) opcode.Rule {
	t.Helper()

	r, ok := opcode.Lookup(mnemonic)
	if !ok {
		t.Fatalf("mnemonic %q not found", mnemonic)
	}

	return r
}

func TestEncodeTwoRegisters(t *testing.T) {
	rule := ruleFor(t, "mov")

	ins, err := Encode(rule, "r2, r3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := ins.Words()
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2 (opcode word + packed register word)", len(words))
	}

	if words[1].Payload != 0x23 {
		t.Errorf("packed register word = %#02x, want 0x23", words[1].Payload)
	}
}

func TestEncodeImmediateToDirect(t *testing.T) {
	rule := ruleFor(t, "mov")

	ins, err := Encode(rule, "#7, LOOP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := ins.Words()
	if len(words) != 3 {
		t.Fatalf("got %d words, want 3 (opcode + immediate + label)", len(words))
	}

	if words[1].Payload != 7 {
		t.Errorf("immediate word payload = %d, want 7", words[1].Payload)
	}

	if words[2].SymbolRef != "LOOP" {
		t.Errorf("direct word SymbolRef = %q, want LOOP", words[2].SymbolRef)
	}
}

func TestEncodeMatrixOperand(t *testing.T) {
	rule := ruleFor(t, "lea")

	ins, err := Encode(rule, "M1[r1][r2], r4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := ins.Words()
	if len(words) != 4 {
		t.Fatalf("got %d words, want 4 (opcode + matrix label + matrix regs + dst register)", len(words))
	}

	if words[1].SymbolRef != "M1" {
		t.Errorf("matrix label word SymbolRef = %q, want M1", words[1].SymbolRef)
	}

	if words[2].Payload != 0x12 {
		t.Errorf("matrix register word = %#02x, want 0x12", words[2].Payload)
	}
}

func TestEncodeSingleOperand(t *testing.T) {
	rule := ruleFor(t, "clr")

	ins, err := Encode(rule, "r5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := ins.Words()
	if len(words) != 2 {
		t.Fatalf("got %d words, want 2", len(words))
	}

	if words[1].Payload != 0x05 {
		t.Errorf("register word = %#02x, want 0x05", words[1].Payload)
	}
}

func TestEncodeNoOperand(t *testing.T) {
	rule := ruleFor(t, "stop")

	ins, err := Encode(rule, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := ins.Words()
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}

	if words[0].Payload != 15<<4 {
		t.Errorf("stop first word = %#02x, want %#02x", words[0].Payload, uint8(15<<4))
	}
}

func TestEncodeWrongOperandCount(t *testing.T) {
	rule := ruleFor(t, "stop")

	if _, err := Encode(rule, "r1"); err == nil {
		t.Fatal("expected error: stop takes no operands")
	}
}

func TestEncodeIllegalMode(t *testing.T) {
	rule := ruleFor(t, "lea")

	// lea's source operand does not permit register mode.
	if _, err := Encode(rule, "r1, r2"); err == nil {
		t.Fatal("expected error: lea source cannot be a register")
	}
}

func TestRelocateAssignsAddresses(t *testing.T) {
	rule := ruleFor(t, "mov")

	ins, err := Encode(rule, "r1, r2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	words := Relocate(ins.Words(), 100)
	if words[0].Address != 100 || words[1].Address != 101 {
		t.Fatalf("got addresses %d, %d, want 100, 101", words[0].Address, words[1].Address)
	}
}
