// Package diag defines the diagnostic contract the assembler core consumes. The core never writes
// directly to stdout or any other stream; it reports through a Reporter, and a concrete
// implementation (internal/report) decides how diagnostics are formatted and displayed.
package diag

// Span is an inclusive, 1-based column range underlined by a diagnostic.
type Span struct {
	Start, End int
}

// Diagnostic carries everything needed to render one reported message.
type Diagnostic struct {
	Code    Code   // Stable error-code identifier, e.g. "MC001" or "AS301".
	File    string // Source file name; empty if the source is not a file.
	Line    int    // 1-based line number.
	Column  int    // 1-based column number where the diagnostic starts.
	Source  string // The offending source line, verbatim.
	Span    Span   // Column span to underline.
	Message string // Formatted, human-readable message.
}

// Code is a stable diagnostic identifier. Families are documented in spec families MC (macro
// preprocessor), AS001-AS050 (parsing/validation), AS101-AS102 (stage failures), AS110-AS114
// (matrix operand), AS301-AS323 (directive parsing).
type Code string

// Reporter receives diagnostics as a stage runs. Error advances the stage's error counter; Info
// does not.
type Reporter interface {
	// Info reports a non-error diagnostic: informational or advisory.
	Info(d Diagnostic)

	// Error reports an error diagnostic and advances the reporter's error counter.
	Error(d Diagnostic)
}

// Counter is a minimal Reporter that only tracks whether any error was reported, without
// formatting or displaying anything. Stages that need to decide "did anything go wrong" without
// caring about presentation can wrap a display Reporter with a Counter, or use one standalone in
// tests.
type Counter struct {
	Reporter        // wrapped reporter for display; may be nil
	errors   int
	diags    []Diagnostic
}

// NewCounter wraps an optional display Reporter (may be nil) with error counting.
func NewCounter(display Reporter) *Counter {
	return &Counter{Reporter: display}
}

func (c *Counter) Info(d Diagnostic) {
	c.diags = append(c.diags, d)

	if c.Reporter != nil {
		c.Reporter.Info(d)
	}
}

func (c *Counter) Error(d Diagnostic) {
	c.errors++
	c.diags = append(c.diags, d)

	if c.Reporter != nil {
		c.Reporter.Error(d)
	}
}

// Errors returns the number of Error calls made so far.
func (c *Counter) Errors() int { return c.errors }

// HasErrors reports whether any Error call has been made.
func (c *Counter) HasErrors() bool { return c.errors > 0 }

// Diagnostics returns every diagnostic reported so far, in report order.
func (c *Counter) Diagnostics() []Diagnostic { return c.diags }

// Discard is a Reporter that drops every diagnostic; useful as the base of a Counter when only
// the error count (not display) matters, e.g. in unit tests.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Info(Diagnostic)  {}
func (discard) Error(Diagnostic) {}
