// Package opcode holds the per-mnemonic rule table: operand count and the allowed-addressing-mode
// bitmask for each operand slot. Indexed by mnemonic; the opcode values assigned here (0..15) are
// the bit pattern the encoder packs into the first instruction word.
package opcode

import (
	"strings"

	"github.com/asm10/asm10/internal/lexer"
)

// Mode is a bitmask of addressing modes an operand slot may use.
type Mode uint8

//go:generate go run golang.org/x/tools/cmd/stringer -type Mode -output mode_string.go

// Addressing modes, matching the 2-bit code packed into the first instruction word (spec.md §4.4).
const (
	Immediate Mode = 1 << iota // I — code 0
	Direct                     // D — code 1
	Matrix                     // M — code 2
	Register                   // R — code 3

	None Mode = 0
)

// ModeCode returns the 2-bit addressing-mode code the encoder packs into the first word.
func ModeCode(m Mode) uint8 {
	switch m {
	case Immediate:
		return 0
	case Direct:
		return 1
	case Matrix:
		return 2
	case Register:
		return 3
	default:
		return 0
	}
}

// Rule describes one mnemonic: its opcode value, operand count, and the addressing modes allowed
// in the source and destination slots. Single-operand instructions use only Dst; Src is None.
type Rule struct {
	Mnemonic string
	Code     uint8
	Ops      int // 0, 1, or 2
	Src      Mode
	Dst      Mode
}

// Table is the full 16-entry opcode rule table, in opcode order, per spec.md §4.4. This is the
// classic opcode assignment consistent with the spec's own worked example (stop encodes to 15).
var Table = []Rule{
	{"mov", 0, 2, Immediate | Direct | Matrix | Register, Direct | Matrix | Register},
	{"cmp", 1, 2, Immediate | Direct | Matrix | Register, Immediate | Direct | Matrix | Register},
	{"add", 2, 2, Direct | Matrix | Register, Direct | Matrix | Register},
	{"sub", 3, 2, Direct | Matrix | Register, Direct | Matrix | Register},
	{"lea", 4, 2, Direct | Matrix, Direct | Matrix | Register},
	{"clr", 5, 1, None, Direct | Matrix | Register},
	{"not", 6, 1, None, Direct | Matrix | Register},
	{"inc", 7, 1, None, Direct | Matrix | Register},
	{"dec", 8, 1, None, Direct | Matrix | Register},
	{"jmp", 9, 1, None, Direct | Matrix | Register},
	{"bne", 10, 1, None, Direct | Matrix | Register},
	{"jsr", 11, 1, None, Direct | Matrix | Register},
	{"red", 12, 1, None, Direct | Matrix | Register},
	{"prn", 13, 1, None, Immediate | Direct | Matrix | Register},
	{"rts", 14, 0, None, None},
	{"stop", 15, 0, None, None},
}

var byName map[string]Rule

func init() {
	byName = make(map[string]Rule, len(Table))

	names := make([]string, 0, len(Table))
	for _, r := range Table {
		byName[strings.ToUpper(r.Mnemonic)] = r
		names = append(names, r.Mnemonic)
	}

	lexer.SetReserved(names)
	lexer.SetReserved([]string{"data", "string", "mat", "entry", "extern"})
}

// Names returns every mnemonic in the table, for registration as reserved words.
func Names() []string {
	names := make([]string, len(Table))
	for i, r := range Table {
		names[i] = r.Mnemonic
	}

	return names
}

// Lookup returns the rule for mnemonic (case-insensitive) and whether it was found.
func Lookup(mnemonic string) (Rule, bool) {
	r, ok := byName[strings.ToUpper(mnemonic)]
	return r, ok
}

// Allows reports whether mode is permitted for the given mask.
func Allows(mask Mode, mode Mode) bool {
	return mask&mode != 0
}
