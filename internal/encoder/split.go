// Package encoder parses instruction operands, determines addressing modes, and emits the one to
// five machine words each instruction produces.
package encoder

import (
	"errors"
	"strings"
)

// ErrExtraComma is returned by SplitOperands when more than one top-level comma separates the
// operand tail.
var ErrExtraComma = errors.New("encoder: more than one comma at the top level")

// ErrEmptyOperand is returned when a comma-separated slot trims to the empty string.
var ErrEmptyOperand = errors.New("encoder: empty operand")

// SplitOperands splits an instruction's operand tail on a single top-level comma. Commas nested
// inside matrix brackets "[...]" do not split. Each resulting token is trimmed of surrounding
// whitespace.
func SplitOperands(tail string) ([]string, error) {
	tail = strings.TrimSpace(tail)
	if tail == "" {
		return nil, nil
	}

	var (
		tokens []string
		depth  int
		start  int
	)

	for i := 0; i < len(tail); i++ {
		switch tail[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				tokens = append(tokens, tail[start:i])
				start = i + 1
			}
		}
	}

	tokens = append(tokens, tail[start:])

	if len(tokens) > 2 {
		return nil, ErrExtraComma
	}

	for i, tok := range tokens {
		tokens[i] = strings.TrimSpace(tok)
		if tokens[i] == "" {
			return nil, ErrEmptyOperand
		}
	}

	return tokens, nil
}
