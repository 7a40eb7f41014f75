package directive

import (
	"strings"
)

// ParseComment recognizes a directive inside a complete comment, delimiters
// included. The marker must start a line of the comment; in block comments
// the directive body runs from that line to the end of the comment, so a
// JSDoc description may precede it. ok is false when no line starts with a
// marker. A comment that has a marker but an invalid body returns the
// *ConfigError.
func ParseComment(text string) (d Directive, ok bool, err error) {
	lines, _, isComment := commentLines(text)
	if !isComment {
		return Directive{}, false, nil
	}
	at := markerLine(lines)
	if at < 0 {
		return Directive{}, false, nil
	}
	kind, rest, _ := matchMarker(joinLines(lines[at:]))
	d, err = Parse(kind, rest)
	if err != nil {
		return Directive{}, true, err
	}
	return d, true, nil
}

// NormalizeComment rewrites a directive block comment whose directive spans
// several lines so that the directive sits on one line:
//
//	/**
//	 * Arrayfmt-elements-per-line: 2 1
//	 * 3
//	 */
//
// becomes "/** Arrayfmt-elements-per-line: 2 1 3 */". When description lines
// precede the marker they are kept as they are and only the directive lines
// are joined. Line comments, single-line block comments and comments
// without a directive are returned unchanged with changed=false.
func NormalizeComment(text string) (out string, changed bool) {
	if !strings.HasPrefix(text, "/*") || !strings.Contains(text, "\n") {
		return text, false
	}
	lines, opener, ok := commentLines(text)
	if !ok {
		return text, false
	}
	at := markerLine(lines)
	if at < 0 {
		return text, false
	}
	directive := joinLines(lines[at:])
	if joinLines(lines[:at]) == "" {
		return opener + " " + directive + " */", true
	}

	nonEmpty := 0
	for _, line := range lines[at:] {
		if line != "" {
			nonEmpty++
		}
	}
	if nonEmpty == 1 {
		return text, false
	}

	raw := strings.Split(text, "\n")
	prefix := raw[at][:strings.Index(raw[at], lines[at])]
	var b strings.Builder
	for _, line := range raw[:at] {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(prefix)
	b.WriteString(directive)
	if last := len(raw) - 1; last > at && lines[last] == "" {
		b.WriteByte('\n')
		b.WriteString(raw[last])
	} else {
		b.WriteString(" */")
	}
	return b.String(), true
}

// commentLines strips comment delimiters. For block comments it returns one
// entry per physical line, each without surrounding blanks and one leading
// '*'; a line comment yields a single entry.
func commentLines(text string) (lines []string, opener string, ok bool) {
	switch {
	case strings.HasPrefix(text, "//"):
		return []string{strings.TrimSpace(text[2:])}, "//", true

	case strings.HasPrefix(text, "/*"):
		opener = "/*"
		inner := text[2:]
		if strings.HasPrefix(inner, "*") && !strings.HasPrefix(inner, "*/") {
			opener = "/**"
			inner = inner[1:]
		}
		inner = strings.TrimSuffix(inner, "*/")

		lines = strings.Split(inner, "\n")
		for i, line := range lines {
			line = strings.TrimSpace(line)
			line = strings.TrimPrefix(line, "*")
			lines[i] = strings.TrimSpace(line)
		}
		return lines, opener, true
	}
	return nil, "", false
}

// markerLine returns the index of the first line starting with a marker, or
// -1.
func markerLine(lines []string) int {
	for i, line := range lines {
		if _, _, found := matchMarker(line); found {
			return i
		}
	}
	return -1
}

// joinLines joins the non-empty lines with single spaces.
func joinLines(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
