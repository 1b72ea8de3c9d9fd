// Package writer assembles generated source text with indentation
// tracking. Generators use it for the structural scaffolding around
// template-rendered blocks.
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates lines of generated code at the current indent level.
type Writer struct {
	sb     strings.Builder
	depth  int
	indent string
}

// New creates a writer using the given indent unit (e.g. "\t" or "  ").
func New(indent string) *Writer {
	return &Writer{indent: indent}
}

// Line writes s as a full line at the current indent. Empty strings
// produce a bare newline with no indent.
func (w *Writer) Line(s string) {
	if s != "" {
		w.sb.WriteString(strings.Repeat(w.indent, w.depth))
		w.sb.WriteString(s)
	}
	w.sb.WriteByte('\n')
}

// Linef writes a formatted line.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty separator line unless the output already ends
// with one.
func (w *Writer) Blank() {
	out := w.sb.String()
	if out != "" && !strings.HasSuffix(out, "\n\n") {
		w.sb.WriteByte('\n')
	}
}

// In increases the indent level for subsequent lines.
func (w *Writer) In() { w.depth++ }

// Out decreases the indent level.
func (w *Writer) Out() {
	if w.depth > 0 {
		w.depth--
	}
}

// Block writes opener, runs body one level deeper, then writes closer.
func (w *Writer) Block(opener, closer string, body func()) {
	w.Line(opener)
	w.In()
	body()
	w.Out()
	w.Line(closer)
}

// Raw appends pre-rendered text verbatim, normalizing a trailing newline.
func (w *Writer) Raw(s string) {
	w.sb.WriteString(s)
	if s != "" && !strings.HasSuffix(s, "\n") {
		w.sb.WriteByte('\n')
	}
}

// Comment writes a line comment at the current indent.
func (w *Writer) Comment(text string) {
	w.Linef("// %s", text)
}

// Doc writes a multi-line description as a doc comment. Empty
// descriptions write nothing.
func (w *Writer) Doc(description string) {
	if description == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSpace(description), "\n") {
		w.Comment(strings.TrimSpace(line))
	}
}

// String returns the accumulated output.
func (w *Writer) String() string { return w.sb.String() }

// Bytes returns the accumulated output as bytes.
func (w *Writer) Bytes() []byte { return []byte(w.sb.String()) }
