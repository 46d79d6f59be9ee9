package encoder

import (
	"github.com/asm10/asm10/internal/opcode"
	"github.com/asm10/asm10/internal/word"
)

// extraWords builds the extra words (beyond the first opcode word) contributed by src and dst, per
// spec.md §4.4: Immediate operands contribute one word holding the value; Direct operands
// contribute one word carrying the unresolved SymbolRef for the second pass; a lone Register
// operand contributes one word with the register number in the high nibble if it is the source
// operand, the low nibble if it is the destination; Matrix operands contribute two words, a
// label-reference word followed by a packed-register word. When both operands are Register, they
// share a single packed word instead of two.
func extraWords(rule opcode.Rule, src, dst Operand) []word.Word {
	var extra []word.Word

	if rule.Ops == 2 && src.Mode == opcode.Register && dst.Mode == opcode.Register {
		extra = append(extra, registerPairWord(src.Register, dst.Register))
		return extra
	}

	if rule.Ops == 2 {
		extra = append(extra, operandWords(src, true)...)
	}

	extra = append(extra, operandWords(dst, false)...)

	return extra
}

// operandWords returns the word(s) a single operand contributes when it is not participating in
// the register-pair optimization. isSrc selects which nibble a lone register operand occupies.
func operandWords(op Operand, isSrc bool) []word.Word {
	switch op.Mode {
	case opcode.Immediate:
		return []word.Word{{Payload: uint8(op.Immediate) & 0xFF, Are: word.Absolute}}

	case opcode.Direct:
		return []word.Word{{SymbolRef: op.Label}}

	case opcode.Register:
		if isSrc {
			return []word.Word{registerWord(op.Register, 0)}
		}

		return []word.Word{registerWord(0, op.Register)}

	case opcode.Matrix:
		return []word.Word{
			{SymbolRef: op.Matrix.Label},
			registerWord(op.Matrix.Row, op.Matrix.Col),
		}

	default:
		return nil
	}
}

// registerWord packs a register pair (or a lone register, with the unused slot left at 0): the
// high nibble holds row/source, the low nibble holds col/destination.
func registerWord(row, col int) word.Word {
	return word.Word{Payload: uint8(row<<4 | col), Are: word.Absolute}
}

// registerPairWord packs two register operands (src, dst) into the single word emitted when both
// operands of a two-operand instruction are registers.
func registerPairWord(src, dst int) word.Word {
	return word.Word{Payload: uint8(src<<4 | dst), Are: word.Absolute}
}
