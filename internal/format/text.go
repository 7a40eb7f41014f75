package format

import "strings"

// Text is rendered output split into lines. Keep marks lines that continue a
// literal spanning several lines; their leading blanks belong to the literal
// and are never re-indented. Keep[0] is always false.
type Text struct {
	Lines []string
	Keep  []bool
}

// Plain wraps s as a Text with no frozen lines.
func Plain(s string) Text {
	lines := strings.Split(s, "\n")
	return Text{Lines: lines, Keep: make([]bool, len(lines))}
}

func (t Text) String() string {
	return strings.Join(t.Lines, "\n")
}

// Multiline reports whether the text has more than one line.
func (t Text) Multiline() bool {
	return len(t.Lines) > 1
}

// appendString appends s; its first line continues the current last line.
// keep reports for every following line whether it is frozen.
func (t *Text) appendString(s string, keep func(line int) bool) {
	parts := strings.Split(s, "\n")
	t.appendLines(parts, func(i int) bool { return keep != nil && keep(i) })
}

// Append appends o; its first line continues the current last line.
func (t *Text) Append(o Text) {
	t.appendLines(o.Lines, func(i int) bool { return o.Keep[i] })
}

func (t *Text) appendLines(lines []string, keep func(int) bool) {
	if len(lines) == 0 {
		return
	}
	if len(t.Lines) == 0 {
		t.Lines = append(t.Lines, "")
		t.Keep = append(t.Keep, false)
	}
	t.Lines[len(t.Lines)-1] += lines[0]
	for i := 1; i < len(lines); i++ {
		t.Lines = append(t.Lines, lines[i])
		t.Keep = append(t.Keep, keep(i))
	}
}

// dedent removes base from the start of every line after the first that is
// not frozen. Lines indented less than base lose all their leading blanks.
func (t Text) dedent(base string) Text {
	if base == "" || len(t.Lines) < 2 {
		return t
	}
	out := Text{Lines: make([]string, len(t.Lines)), Keep: t.Keep}
	out.Lines[0] = t.Lines[0]
	for i := 1; i < len(t.Lines); i++ {
		line := t.Lines[i]
		if !t.Keep[i] {
			if rest, ok := strings.CutPrefix(line, base); ok {
				line = rest
			} else {
				line = strings.TrimLeft(line, " \t")
			}
		}
		out.Lines[i] = line
	}
	return out
}
