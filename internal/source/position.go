package source

import (
	"fmt"
	"strings"
)

// Position is a zero-based line/column pair. Columns count bytes.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before reports whether p comes strictly before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Range is a half-open text range: End points just past the last character.
type Range struct {
	Start Position
	End   Position
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Multiline reports whether the range spans more than one line.
func (r Range) Multiline() bool {
	return r.Start.Line != r.End.Line
}

// RangeError reports a range that does not fit the supplied lines.
type RangeError struct {
	Range Range
	Lines int
	Msg   string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range %s out of bounds (%d lines): %s", e.Range, e.Lines, e.Msg)
}

func checkRange(lines []string, r Range) error {
	fail := func(msg string) error {
		return &RangeError{Range: r, Lines: len(lines), Msg: msg}
	}
	if r.Start.Line < 0 || r.Start.Line >= len(lines) {
		return fail("start line")
	}
	if r.End.Line < 0 || r.End.Line >= len(lines) {
		return fail("end line")
	}
	if r.End.Before(r.Start) {
		return fail("end before start")
	}
	if r.Start.Column < 0 || r.Start.Column > len(lines[r.Start.Line]) {
		return fail("start column")
	}
	if r.End.Column < 0 || r.End.Column > len(lines[r.End.Line]) {
		return fail("end column")
	}
	return nil
}

// Extract returns the exact text covered by r. Lines of a multi-line range
// are joined with '\n'.
func Extract(lines []string, r Range) (string, error) {
	if err := checkRange(lines, r); err != nil {
		return "", err
	}
	if r.Start.Line == r.End.Line {
		return lines[r.Start.Line][r.Start.Column:r.End.Column], nil
	}

	parts := make([]string, 0, r.End.Line-r.Start.Line+1)
	parts = append(parts, lines[r.Start.Line][r.Start.Column:])
	parts = append(parts, lines[r.Start.Line+1:r.End.Line]...)
	parts = append(parts, lines[r.End.Line][:r.End.Column])
	return strings.Join(parts, "\n"), nil
}

// Splice replaces the text covered by r with text and returns the whole
// document joined with '\n'.
func Splice(lines []string, r Range, text string) (string, error) {
	if err := checkRange(lines, r); err != nil {
		return "", err
	}
	var b strings.Builder
	for i := 0; i < r.Start.Line; i++ {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	b.WriteString(lines[r.Start.Line][:r.Start.Column])
	b.WriteString(text)
	b.WriteString(lines[r.End.Line][r.End.Column:])
	for i := r.End.Line + 1; i < len(lines); i++ {
		b.WriteByte('\n')
		b.WriteString(lines[i])
	}
	return b.String(), nil
}

// Lines splits the file content on '\n'. A trailing newline yields a final
// empty line, so Join(Lines(), "\n") reproduces Content.
func (f *File) Lines() []string {
	return strings.Split(string(f.Content), "\n")
}

// Position converts a byte offset to a zero-based Position.
func (f *File) Position(off uint32) Position {
	lc := toLineCol(f.LineIdx, off)
	return Position{Line: int(lc.Line) - 1, Column: int(lc.Col) - 1}
}

// RangeOf converts a span of this file to a Range.
func (f *File) RangeOf(sp Span) Range {
	return Range{Start: f.Position(sp.Start), End: f.Position(sp.End)}
}

// Indent returns the leading blanks of the zero-based line.
func (f *File) Indent(line int) string {
	text := f.GetLine(uint32(line + 1))
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	return text[:i]
}
