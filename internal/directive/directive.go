package directive

import "strings"

// Kind tells which layout rule a directive carries.
type Kind uint8

const (
	KindNone Kind = iota
	// PerLineCounts sets explicit element counts per line; the last count
	// repeats.
	PerLineCounts
	// WrapThreshold sets the element count up to which an array stays on
	// one line.
	WrapThreshold
)

func (k Kind) String() string {
	switch k {
	case PerLineCounts:
		return "elements-per-line"
	case WrapThreshold:
		return "wrap-threshold"
	default:
		return "none"
	}
}

const (
	ElementsPerLineMarker = "arrayfmt-elements-per-line:"
	WrapThresholdMarker   = "arrayfmt-wrap-threshold:"

	// Option names used in configuration error messages.
	ElementsPerLineOption = "multilineArrayElementsPerLine"
	WrapThresholdOption   = "multilineArrayWrapThreshold"
)

// Directive is a parsed layout instruction. Counts is set for
// PerLineCounts, Threshold for WrapThreshold.
type Directive struct {
	Kind      Kind
	Counts    []int
	Threshold int
}

// IsZero reports whether d carries no instruction.
func (d Directive) IsZero() bool {
	return d.Kind == KindNone
}

func (d Directive) String() string {
	switch d.Kind {
	case PerLineCounts:
		parts := make([]string, len(d.Counts))
		for i, c := range d.Counts {
			parts[i] = itoa(c)
		}
		return ElementsPerLineMarker + " " + strings.Join(parts, " ")
	case WrapThreshold:
		return WrapThresholdMarker + " " + itoa(d.Threshold)
	default:
		return ""
	}
}

type marker struct {
	text string
	kind Kind
}

// markers lists every accepted spelling. Matching is case-sensitive.
var markers = []marker{
	{ElementsPerLineMarker, PerLineCounts},
	{capitalize(ElementsPerLineMarker), PerLineCounts},
	{WrapThresholdMarker, WrapThreshold},
	{capitalize(WrapThresholdMarker), WrapThreshold},
}

// MarkerFor returns the canonical marker of kind.
func MarkerFor(kind Kind) string {
	switch kind {
	case PerLineCounts:
		return ElementsPerLineMarker
	case WrapThreshold:
		return WrapThresholdMarker
	}
	return ""
}

// matchMarker returns the kind and the remaining body when text starts with
// a known marker.
func matchMarker(text string) (Kind, string, bool) {
	for _, m := range markers {
		if rest, ok := strings.CutPrefix(text, m.text); ok {
			return m.kind, rest, true
		}
	}
	return KindNone, "", false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
