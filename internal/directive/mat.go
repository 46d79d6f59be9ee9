package directive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/word"
)

// maxMatSize is the largest cell count a single .mat declaration may hold, matching the
// assembler's total code+data image budget (see pass1's size-bound check); a bigger matrix could
// never fit regardless of what else shares the image.
const maxMatSize = 255

// ParseMat parses a ".mat[rows][cols]" directive, with an optional comma-separated initializer
// list following the dimensions. Declared cells beyond the initializer list are zero-filled;
// more initializers than rows*cols is an error.
func ParseMat(args string) ([]word.DataWord, *Error) {
	args = strings.TrimSpace(args)

	rows, col1, rest, err := parseDim(args, 1)
	if err != nil {
		return nil, err
	}

	cols, col2, rest, err := parseDim(rest, col1)
	if err != nil {
		return nil, err
	}

	if rows <= 0 || cols <= 0 {
		return nil, &Error{diag.ASMatDimInvalid, 1, "matrix dimensions must be positive"}
	}

	if rows > maxMatSize/cols {
		return nil, &Error{diag.ASMatOverflow, col2, fmt.Sprintf("matrix size %d*%d exceeds the maximum of %d cells", rows, cols, maxMatSize)}
	}

	size := rows * cols

	rest = strings.TrimSpace(rest)

	words := make([]word.DataWord, size)

	if rest == "" {
		return words, nil
	}

	values, verr := splitMatValues(rest, col2)
	if verr != nil {
		return nil, verr
	}

	if len(values) > size {
		return nil, &Error{diag.ASMatTooManyInit, col2, "too many initializer values for declared matrix size"}
	}

	for i, v := range values {
		words[i] = word.DataWord{Payload: word.Mask10(v)}
	}

	return words, nil
}

// parseDim parses one "[N]" dimension starting at args, returning the parsed value, the 1-based
// column immediately following the closing bracket (for error anchoring of whatever comes next),
// and the remainder of args after the bracket.
func parseDim(args string, startCol int) (int, int, string, *Error) {
	if args == "" || args[0] != '[' {
		return 0, 0, "", &Error{diag.ASMatDimInvalid, startCol, "expected '[' to open matrix dimension"}
	}

	end := strings.IndexByte(args, ']')
	if end < 0 {
		return 0, 0, "", &Error{diag.ASMatDimInvalid, startCol + len(args), "missing ']' closing matrix dimension"}
	}

	raw := strings.TrimSpace(args[1:end])

	n, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, 0, "", &Error{diag.ASMatDimInvalid, startCol + 1, "invalid matrix dimension " + strconv.Quote(raw)}
	}

	return n, startCol + end + 1, args[end+1:], nil
}

func splitMatValues(s string, baseCol int) ([]int, *Error) {
	if strings.HasSuffix(strings.TrimRight(s, " \t"), ",") {
		return nil, &Error{diag.ASMatTrailingComma, baseCol + len(s), "unexpected trailing comma"}
	}

	parts := strings.Split(s, ",")

	values := make([]int, 0, len(parts))

	col := baseCol

	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			return nil, &Error{diag.ASMatMissingValue, col, "missing value between commas"}
		}

		n, verr := parseMatValue(trimmed, col)
		if verr != nil {
			return nil, verr
		}

		if n < -512 || n > 511 {
			return nil, &Error{diag.ASMatValueOutOfRange, col, "value out of range [-512, 511]: " + strconv.Itoa(n)}
		}

		values = append(values, n)
		col += len(p) + 1
	}

	return values, nil
}

// parseMatValue parses s as a signed decimal, distinguishing a wholly invalid token ("invalid
// decimal value") from one with valid leading digits followed by junk ("unexpected character
// after a value"), per spec.md §4.3's separate error codes for the two cases. col anchors the
// start of s within the directive's argument text.
func parseMatValue(s string, col int) (int, *Error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digitsStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == digitsStart {
		return 0, &Error{diag.ASMatInvalidNumber, col, "invalid decimal value " + strconv.Quote(s)}
	}

	if i != len(s) {
		return 0, &Error{diag.ASMatUnexpectedChar, col + i, "unexpected character after value " + strconv.Quote(s[:i])}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &Error{diag.ASMatInvalidNumber, col, "invalid decimal value " + strconv.Quote(s)}
	}

	return n, nil
}
