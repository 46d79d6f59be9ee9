package encoder

import (
	"fmt"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/opcode"
	"github.com/asm10/asm10/internal/word"
)

// Instruction is the result of encoding one assembly instruction line: the first word plus zero or
// more extra words contributed by its operands, in source order.
type Instruction struct {
	Rule  opcode.Rule
	Extra []word.Word

	srcMode opcode.Mode
	dstMode opcode.Mode
}

// Words returns the instruction's full word sequence (first word included), with addresses left
// at zero; Relocate assigns real addresses once the instruction's base address is known.
func (ins Instruction) Words() []word.Word {
	first := word.Word{Payload: ins.firstPayload(), Are: word.Absolute}
	out := make([]word.Word, 0, 1+len(ins.Extra))
	out = append(out, first)
	out = append(out, ins.Extra...)

	return out
}

func (ins Instruction) firstPayload() uint8 {
	src := opcode.ModeCode(ins.srcMode)
	dst := opcode.ModeCode(ins.dstMode)

	return ins.Rule.Code<<4 | src<<2 | dst
}

// Relocate stamps addresses, starting at base, onto the instruction's full word sequence.
func Relocate(words []word.Word, base int) []word.Word {
	out := make([]word.Word, len(words))
	for i, w := range words {
		w.Address = base + i
		out[i] = w
	}

	return out
}

// Encode parses tail (the text following the mnemonic) against rule and returns the instruction's
// encoded words, not yet relocated to a real address (Address fields are 0; Relocate assigns
// them). err's concrete type is *lexer.MatrixError, *Error, ErrExtraComma, or ErrEmptyOperand.
func Encode(rule opcode.Rule, tail string) (Instruction, error) {
	toks, err := SplitOperands(tail)
	if err != nil {
		return Instruction{}, err
	}

	if len(toks) != rule.Ops {
		return Instruction{}, &Error{
			Code:    diag.ASOperandCount,
			Column:  1,
			Message: fmt.Sprintf("%s takes %d operand(s), got %d", rule.Mnemonic, rule.Ops, len(toks)),
		}
	}

	var ops []Operand
	for _, tok := range toks {
		op, operr := ParseOperand(tok)
		if operr != nil {
			return Instruction{}, operr
		}

		ops = append(ops, op)
	}

	var src, dst Operand

	switch rule.Ops {
	case 2:
		src, dst = ops[0], ops[1]

		if !opcode.Allows(rule.Src, src.Mode) {
			return Instruction{}, &Error{
				Code:    diag.ASIllegalMode,
				Column:  1,
				Message: fmt.Sprintf("%s source operand %q: mode %s not allowed", rule.Mnemonic, src.Raw, src.Mode),
			}
		}

		if !opcode.Allows(rule.Dst, dst.Mode) {
			return Instruction{}, &Error{
				Code:    diag.ASIllegalMode,
				Column:  1,
				Message: fmt.Sprintf("%s destination operand %q: mode %s not allowed", rule.Mnemonic, dst.Raw, dst.Mode),
			}
		}
	case 1:
		dst = ops[0]

		if !opcode.Allows(rule.Dst, dst.Mode) {
			return Instruction{}, &Error{
				Code:    diag.ASIllegalMode,
				Column:  1,
				Message: fmt.Sprintf("%s operand %q: mode %s not allowed", rule.Mnemonic, dst.Raw, dst.Mode),
			}
		}
	}

	ins := Instruction{
		Rule:    rule,
		srcMode: src.Mode,
		dstMode: dst.Mode,
	}

	ins.Extra = extraWords(rule, src, dst)

	return ins, nil
}
