package format

import (
	"strings"
)

// Writer accumulates rendered lines. Every line it starts is prefixed with
// the base indentation plus one unit per indentation level; frozen lines of
// appended texts are copied as they are.
type Writer struct {
	base        string
	unit        string
	out         Text
	indentLevel int
	atLineStart bool
}

// NewWriter creates a writer whose lines start at base.
func NewWriter(base, unit string) *Writer {
	return &Writer{
		base: base,
		unit: unit,
		out:  Text{Lines: []string{""}, Keep: []bool{false}},
	}
}

// Text returns the accumulated output.
func (w *Writer) Text() Text {
	return w.out
}

func (w *Writer) indent() string {
	return w.base + strings.Repeat(w.unit, w.indentLevel)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	w.out.Lines[len(w.out.Lines)-1] += w.indent()
	w.atLineStart = false
}

// WriteString writes s, which must not contain a newline.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.out.Lines[len(w.out.Lines)-1] += s
}

// WriteText writes t at the current position. Its continuation lines are
// indented to the current level unless they are frozen; blank lines stay
// empty.
func (w *Writer) WriteText(t Text) {
	for i, line := range t.Lines {
		if i == 0 {
			w.WriteString(line)
			continue
		}
		if t.Keep[i] {
			w.out.Lines = append(w.out.Lines, line)
			w.out.Keep = append(w.out.Keep, true)
			w.atLineStart = false
			continue
		}
		w.Newline()
		if strings.TrimSpace(line) == "" {
			continue
		}
		w.WriteString(line)
	}
}

// Newline starts a new line.
func (w *Writer) Newline() {
	w.out.Lines = append(w.out.Lines, "")
	w.out.Keep = append(w.out.Keep, false)
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
