package lexer

import (
	"fmt"

	"github.com/asm10/asm10/internal/diag"
)

// Matrix is a parsed LABEL[rX][rY] matrix operand.
type Matrix struct {
	Label string
	Row   int // register number of the row index
	Col   int // register number of the column index
}

// MatrixError describes why ParseMatrix failed, with the column (1-based, relative to the start
// of the operand token) at which the problem was found.
type MatrixError struct {
	Code   diag.Code
	Column int
	Msg    string
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("matrix operand: column %d: %s", e.Column, e.Msg)
}

// ParseMatrix parses "LABEL[rX][rY]" and reports the specific error and column on failure.
func ParseMatrix(tok string) (Matrix, *MatrixError) {
	lb1 := indexByte(tok, '[')
	if lb1 < 0 {
		return Matrix{}, &MatrixError{diag.ASMatrixBrackets, len(tok) + 1, "missing '[' after label"}
	}

	label := tok[:lb1]
	if label == "" {
		return Matrix{}, &MatrixError{diag.ASMatrixEmptyLabel, 1, "empty label before '['"}
	}

	if !IsLabel(label) {
		if len(label) > MaxLabelLen {
			return Matrix{}, &MatrixError{diag.ASMatrixLabelTooLong, 1, "label too long"}
		}

		return Matrix{}, &MatrixError{diag.ASMatrixEmptyLabel, 1, "invalid label"}
	}

	rb1 := indexByte(tok[lb1:], ']')
	if rb1 < 0 {
		return Matrix{}, &MatrixError{diag.ASMatrixBrackets, len(tok) + 1, "missing ']' closing first index"}
	}
	rb1 += lb1

	row, err := parseIndexRegister(tok[lb1+1:rb1], lb1+2)
	if err != nil {
		return Matrix{}, err
	}

	if rb1+1 >= len(tok) || tok[rb1+1] != '[' {
		if rb1+1 < len(tok) {
			return Matrix{}, &MatrixError{diag.ASMatrixJunk, rb1 + 2, "unexpected characters between ']' and '['"}
		}

		return Matrix{}, &MatrixError{diag.ASMatrixBrackets, rb1 + 2, "missing second '[' index"}
	}

	lb2 := rb1 + 1

	rb2 := indexByte(tok[lb2:], ']')
	if rb2 < 0 {
		return Matrix{}, &MatrixError{diag.ASMatrixBrackets, len(tok) + 1, "missing ']' closing second index"}
	}
	rb2 += lb2

	col, err := parseIndexRegister(tok[lb2+1:rb2], lb2+2)
	if err != nil {
		return Matrix{}, err
	}

	if rb2+1 != len(tok) {
		return Matrix{}, &MatrixError{diag.ASMatrixJunk, rb2 + 2, "unexpected characters after matrix operand"}
	}

	return Matrix{Label: label, Row: row, Col: col}, nil
}

// parseIndexRegister validates the content of one bracket pair as a register token. col is the
// 1-based column of the bracket's content, used to anchor error reporting.
func parseIndexRegister(content string, col int) (int, *MatrixError) {
	if content == "" {
		return 0, &MatrixError{diag.ASMatrixBadIndex, col, "empty index"}
	}

	if n, ok := RegisterNumber(content); ok {
		return n, nil
	}

	if len(content) >= 1 && (content[0] == 'r' || content[0] == 'R') {
		return 0, &MatrixError{diag.ASMatrixBadIndex, col, fmt.Sprintf("invalid register %q", content)}
	}

	return 0, &MatrixError{diag.ASMatrixBadIndex, col, fmt.Sprintf("expected register, got %q", content)}
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}

	return -1
}

// LooksLikeMatrix reports whether tok contains a '[' at all, the quick addressing-mode-detection
// test from spec.md §4.4 (a full ParseMatrix call determines validity).
func LooksLikeMatrix(tok string) bool {
	return indexByte(tok, '[') >= 0
}
