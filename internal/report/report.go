// Package report implements the concrete diag.Reporter the CLI uses: it formats diagnostics to an
// io.Writer as "file:line:col: error: [code] message", followed by the offending source line and a
// caret span, wrapping long messages to the terminal width when stdout is a TTY.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/asm10/asm10/internal/diag"
)

const defaultWidth = 80

// Printer is a diag.Reporter that writes formatted diagnostics to Out.
type Printer struct {
	Out   io.Writer
	Width int // 0 selects automatic detection against Out, falling back to defaultWidth
}

// NewPrinter creates a Printer writing to out, detecting the terminal width of out when it is a
// *os.File connected to a TTY, and falling back to 80 columns otherwise.
func NewPrinter(out io.Writer) *Printer {
	width := defaultWidth

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return &Printer{Out: out, Width: width}
}

// Info writes a non-error diagnostic, labeled "note".
func (p *Printer) Info(d diag.Diagnostic) {
	p.print("note", d)
}

// Error writes an error diagnostic, labeled "error".
func (p *Printer) Error(d diag.Diagnostic) {
	p.print("error", d)
}

func (p *Printer) print(label string, d diag.Diagnostic) {
	header := fmt.Sprintf("%s:%d:%d: %s: [%s] %s", d.File, d.Line, d.Column, label, d.Code, d.Message)

	fmt.Fprintln(p.Out, wrap(header, p.width()))

	if d.Source == "" {
		return
	}

	fmt.Fprintln(p.Out, d.Source)
	fmt.Fprintln(p.Out, caret(d.Span, len(d.Source)))
}

func (p *Printer) width() int {
	if p.Width <= 0 {
		return defaultWidth
	}

	return p.Width
}

// wrap breaks s into width-wide lines on word boundaries, joined with newlines, so long diagnostic
// messages do not overrun narrow terminals.
func wrap(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}

	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder

	lineLen := 0

	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}

		b.WriteString(w)
		lineLen += len(w)
	}

	return b.String()
}

// caret renders a line of spaces and '^' characters underlining span within a line of length n.
func caret(span diag.Span, n int) string {
	start, end := span.Start, span.End
	if start < 1 {
		start = 1
	}

	if end < start {
		end = start
	}

	if end > n {
		end = n
	}

	if end < 1 {
		end = 1
	}

	var b strings.Builder

	for i := 1; i < start; i++ {
		b.WriteByte(' ')
	}

	for i := start; i <= end; i++ {
		b.WriteByte('^')
	}

	return b.String()
}
