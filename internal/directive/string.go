package directive

import (
	"strings"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/word"
)

// ParseString parses a ".string" directive's quoted literal into one data word per byte plus a
// terminating zero word.
func ParseString(args string) ([]word.DataWord, *Error) {
	args = strings.TrimSpace(args)
	if args == "" || args[0] != '"' {
		return nil, &Error{diag.ASStringMissingQuote, 1, "string directive requires a quoted literal"}
	}

	end := strings.IndexByte(args[1:], '"')
	if end < 0 {
		return nil, &Error{diag.ASStringUnterminated, len(args) + 1, "unterminated string literal"}
	}
	end++ // index relative to args

	if trailing := strings.TrimSpace(args[end+1:]); trailing != "" {
		return nil, &Error{diag.ASStringUnterminated, end + 2, "unexpected characters after closing quote"}
	}

	body := args[1:end]

	words := make([]word.DataWord, 0, len(body)+1)
	for i := 0; i < len(body); i++ {
		words = append(words, word.DataWord{Payload: word.Mask10(int(body[i]))})
	}

	words = append(words, word.DataWord{Payload: 0})

	return words, nil
}
