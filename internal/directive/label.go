package directive

import (
	"strconv"
	"strings"

	"github.com/asm10/asm10/internal/diag"
	"github.com/asm10/asm10/internal/lexer"
)

// ParseEntry parses a ".entry LABEL" directive's single-label argument.
func ParseEntry(args string) (string, *Error) {
	return parseSingleLabel(args, diag.ASEntryMissingLabel, diag.ASEntryLabelTooLong, diag.ASEntryInvalidName, diag.ASEntryTrailing)
}

// ParseExtern parses a ".extern LABEL" directive's single-label argument.
func ParseExtern(args string) (string, *Error) {
	return parseSingleLabel(args, diag.ASExternMissingLabel, diag.ASExternLabelTooLong, diag.ASExternInvalidName, diag.ASExternTrailing)
}

// parseSingleLabel parses the single-label argument shared by .entry and .extern, per spec.md
// §4.3's symmetric error taxonomy for the two directives: missing label, label too long,
// invalid/reserved name, extraneous characters after the label.
func parseSingleLabel(args string, missing, tooLong, invalid, trailing diag.Code) (string, *Error) {
	args = strings.TrimSpace(args)
	if args == "" {
		return "", &Error{missing, 1, "directive requires a label argument"}
	}

	fields := strings.Fields(args)
	name := fields[0]

	if len(fields) > 1 {
		return "", &Error{trailing, len(name) + 2, "unexpected characters after label"}
	}

	if len(name) > lexer.MaxLabelLen {
		return "", &Error{tooLong, 1, "label too long"}
	}

	if !lexer.IsLabel(name) || lexer.IsReserved(name) {
		return "", &Error{invalid, 1, "invalid label " + strconv.Quote(name)}
	}

	return name, nil
}
