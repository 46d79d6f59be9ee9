package encoder

import (
	"fmt"
	"strconv"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/lexer"
	"github.com/asm10/asm10/internal/opcode"
)

// Error is an encoding failure anchored to a column within the instruction's operand text.
type Error struct {
	Code    diag.Code
	Column  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Operand is one fully classified and parsed instruction operand.
type Operand struct {
	Raw  string
	Mode opcode.Mode

	Immediate int           // valid when Mode == Immediate
	Register  int           // valid when Mode == Register
	Label     string        // valid when Mode == Direct
	Matrix    lexer.Matrix  // valid when Mode == Matrix
}

// DetectMode classifies tok per spec.md §4.4: leading '#' is Immediate, an exact register token
// is Register, anything containing '[' is treated as Matrix, otherwise Direct.
func DetectMode(tok string) opcode.Mode {
	switch {
	case len(tok) > 0 && tok[0] == '#':
		return opcode.Immediate
	case lexer.IsRegister(tok):
		return opcode.Register
	case lexer.LooksLikeMatrix(tok):
		return opcode.Matrix
	default:
		return opcode.Direct
	}
}

// ParseOperand classifies and parses tok into an Operand. Matrix- and immediate-mode operands are
// fully validated here; Direct-mode operands are only syntax-checked as labels (symbol existence
// is checked at the end of the first pass, once every label is known).
func ParseOperand(tok string) (Operand, error) {
	mode := DetectMode(tok)

	switch mode {
	case opcode.Immediate:
		n, err := strconv.Atoi(tok[1:])
		if err != nil {
			return Operand{}, &Error{
				Code:    diag.ASInvalidImmediate,
				Column:  2,
				Message: fmt.Sprintf("invalid immediate operand %q: %v", tok, err),
			}
		}

		return Operand{Raw: tok, Mode: opcode.Immediate, Immediate: n}, nil

	case opcode.Register:
		n, _ := lexer.RegisterNumber(tok)
		return Operand{Raw: tok, Mode: opcode.Register, Register: n}, nil

	case opcode.Matrix:
		m, merr := lexer.ParseMatrix(tok)
		if merr != nil {
			return Operand{}, merr
		}

		return Operand{Raw: tok, Mode: opcode.Matrix, Matrix: m}, nil

	default: // Direct
		if !lexer.IsLabel(tok) {
			return Operand{}, &Error{
				Code:    diag.ASInvalidLabel,
				Column:  1,
				Message: fmt.Sprintf("invalid label operand %q", tok),
			}
		}

		return Operand{Raw: tok, Mode: opcode.Direct, Label: tok}, nil
	}
}
