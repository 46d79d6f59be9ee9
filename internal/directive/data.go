// Package directive parses the five assembler directives (.data, .string, .mat, .entry, .extern)
// into data-image words or deferred entry/extern records.
package directive

import (
	"strconv"
	"strings"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/word"
)

// Error is a directive-parsing failure anchored to a column within the directive's argument text.
type Error struct {
	Code    diag.Code
	Column  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ParseData parses a ".data" directive's comma-separated list of signed decimal values, each of
// which must fit in [-128, 127]. It returns one DataWord per value, unrelocated (Address left 0).
func ParseData(args string) ([]word.DataWord, *Error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, &Error{diag.ASDataInvalidNumber, 1, "data directive requires at least one value"}
	}

	if args[0] == ',' {
		return nil, &Error{diag.ASDataLeadingComma, 1, "unexpected leading comma"}
	}

	var (
		words []word.DataWord
		col   = 1
		start = 0
	)

	emit := func(raw string, rawCol int) *Error {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return &Error{diag.ASDataMissingComma, rawCol, "missing value between commas"}
		}

		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return &Error{diag.ASDataInvalidNumber, rawCol, "invalid decimal value " + strconv.Quote(trimmed)}
		}

		if n < -128 || n > 127 {
			return &Error{diag.ASDataOutOfRange, rawCol, "value out of range [-128, 127]: " + strconv.Itoa(n)}
		}

		words = append(words, word.DataWord{Payload: word.Mask10(n)})

		return nil
	}

	for i := 0; i < len(args); i++ {
		if args[i] != ',' {
			continue
		}

		if err := emit(args[start:i], col); err != nil {
			return nil, err
		}

		start = i + 1
		col = i + 2
	}

	if strings.TrimSpace(args[start:]) == "" {
		return nil, &Error{diag.ASDataTrailingComma, col, "unexpected trailing comma"}
	}

	if err := emit(args[start:], col); err != nil {
		return nil, err
	}

	return words, nil
}
