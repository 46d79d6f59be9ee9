// Package lexer provides the small token-classification helpers shared by the directive parsers
// and the instruction encoder: register tokens, label tokens, and matrix operands.
package lexer

import "strings"

// MaxLabelLen is the maximum number of characters in a label or macro name.
const MaxLabelLen = 31

// reserved holds the mnemonics, registers and macro keywords that cannot be used as a label or
// macro name. Populated by SetReserved so that internal/opcode's table is the single source of
// truth for mnemonics without an import cycle.
var reserved = map[string]bool{
	"MCRO": true, "MCROEND": true,
	"R0": true, "R1": true, "R2": true, "R3": true,
	"R4": true, "R5": true, "R6": true, "R7": true,
}

// SetReserved registers additional reserved words (instruction mnemonics and directive names).
// Called once at program startup by the package that owns the opcode table.
func SetReserved(words []string) {
	for _, w := range words {
		reserved[strings.ToUpper(w)] = true
	}
}

// IsReserved reports whether name collides with an instruction mnemonic, a register name, or the
// macro keywords, case-insensitively.
func IsReserved(name string) bool {
	return reserved[strings.ToUpper(name)]
}

// IsRegister reports whether tok is exactly a register token: 'r' or 'R' followed by a digit
// 0..7.
func IsRegister(tok string) bool {
	_, ok := RegisterNumber(tok)
	return ok
}

// RegisterNumber returns the register number encoded by tok and true, if tok is a valid register
// token ('r'/'R' followed by a single digit 0..7).
func RegisterNumber(tok string) (int, bool) {
	if len(tok) != 2 {
		return 0, false
	}

	if tok[0] != 'r' && tok[0] != 'R' {
		return 0, false
	}

	d := tok[1]
	if d < '0' || d > '7' {
		return 0, false
	}

	return int(d - '0'), true
}

// IsLabel reports whether tok is syntactically a valid label: starts with a letter, contains only
// letters and digits thereafter, and is no longer than MaxLabelLen.
func IsLabel(tok string) bool {
	if tok == "" || len(tok) > MaxLabelLen {
		return false
	}

	if !isLetter(tok[0]) {
		return false
	}

	for i := 1; i < len(tok); i++ {
		if !isLetter(tok[i]) && !isDigit(tok[i]) {
			return false
		}
	}

	return true
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// EqualFold reports whether a and b are equal under ASCII case folding, used for mnemonic and
// directive comparisons (which are case-insensitive; symbol names are not).
func EqualFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
