package ninja

import (
	"io"
	"strings"
)

const defaultWidth = 78

// Writer emits ninja syntax with the canonical escaping and line-wrapping
// behavior, so repeated runs over the same graph produce byte-identical
// files. Write errors are sticky; check Err once after the last call.
type Writer struct {
	w     io.Writer
	width int
	err   error
}

// NewWriter returns a Writer emitting to w at the standard 78-column width.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, width: defaultWidth}
}

// Err returns the first write error encountered, if any.
func (nw *Writer) Err() error {
	return nw.err
}

// Comment emits a single comment line.
func (nw *Writer) Comment(text string) {
	nw.writeString("# " + text + "\n")
}

// Newline emits a blank separator line.
func (nw *Writer) Newline() {
	nw.writeString("\n")
}

// Rule declares a named rule. The rspfile and rspfile_content variables are
// emitted only when rspfile is non-empty.
func (nw *Writer) Rule(name, command, rspfile, rspfileContent string) {
	nw.line("rule "+name, 0)
	nw.line("command = "+command, 1)
	if rspfile != "" {
		nw.line("rspfile = "+rspfile, 1)
		nw.line("rspfile_content = "+rspfileContent, 1)
	}
}

// Build declares one edge. Paths are escaped here; the rule name is used
// verbatim.
func (nw *Writer) Build(outputs []string, rule string, inputs []string) {
	var b strings.Builder
	b.WriteString("build ")
	for i, out := range outputs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(EscapePath(out))
	}
	b.WriteString(": ")
	b.WriteString(rule)
	for _, in := range inputs {
		b.WriteByte(' ')
		b.WriteString(EscapePath(in))
	}
	nw.line(b.String(), 0)
}

// EscapePath escapes spaces and colons in a path for use in a build
// statement.
func EscapePath(path string) string {
	path = strings.ReplaceAll(path, "$ ", "$$ ")
	path = strings.ReplaceAll(path, " ", "$ ")
	return strings.ReplaceAll(path, ":", "$:")
}

// line writes text with ninja's wrapping convention: a long line breaks at
// an unescaped space, ends with the " $" continuation marker, and resumes
// two indent levels deeper.
func (nw *Writer) line(text string, indent int) {
	leading := strings.Repeat("  ", indent)
	for len(leading)+len(text) > nw.width {
		// Leave room for the trailing " $".
		available := nw.width - len(leading) - 2
		space := lastSpace(text, available)
		if space < 0 {
			space = nextSpace(text, available)
		}
		if space < 0 {
			break
		}
		nw.writeString(leading + text[:space] + " $\n")
		text = text[space+1:]
		leading = strings.Repeat("  ", indent+2)
	}
	nw.writeString(leading + text + "\n")
}

// lastSpace returns the index of the rightmost unescaped space at or before
// limit, or -1 when there is none.
func lastSpace(s string, limit int) int {
	if limit > len(s)-1 {
		limit = len(s) - 1
	}
	for i := limit; i > 0; i-- {
		if s[i] == ' ' && !isEscaped(s, i) {
			return i
		}
	}
	return -1
}

// nextSpace returns the index of the first unescaped space at or after
// from, or -1 when there is none.
func nextSpace(s string, from int) int {
	if from < 1 {
		from = 1
	}
	for i := from; i < len(s); i++ {
		if s[i] == ' ' && !isEscaped(s, i) {
			return i
		}
	}
	return -1
}

// isEscaped reports whether the byte at i sits behind an odd run of '$'.
func isEscaped(s string, i int) bool {
	dollars := 0
	for j := i - 1; j >= 0 && s[j] == '$'; j-- {
		dollars++
	}
	return dollars%2 == 1
}

func (nw *Writer) writeString(s string) {
	if nw.err != nil {
		return
	}
	_, nw.err = io.WriteString(nw.w, s)
}
