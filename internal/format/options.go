package format

import "strings"

// Options configure FormatFile. The zero value indents with four spaces and
// puts every element of a non-empty array on its own line.
type Options struct {
	IndentWidth int
	UseTabs     bool
	// WrapThreshold is the configured multilineArrayWrapThreshold.
	WrapThreshold int
	// ElementsPerLine is the configured multilineArrayElementsPerLine. When
	// set it overrides WrapThreshold; a directive overrides both.
	ElementsPerLine []int
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	return o
}

// Unit returns one level of indentation.
func (o Options) Unit() string {
	o = o.withDefaults()
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.IndentWidth)
}
