package directive_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"arrayfmt/internal/directive"
)

func TestParseComment(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
		want directive.Directive
	}{
		{
			name: "line per-line counts",
			text: "// arrayfmt-elements-per-line: 2 1 3",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2, 1, 3}},
		},
		{
			name: "commas",
			text: "// arrayfmt-elements-per-line: 2, 1, 3",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2, 1, 3}},
		},
		{
			name: "commas without spaces",
			text: "// arrayfmt-elements-per-line: 2,1,3",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2, 1, 3}},
		},
		{
			name: "threshold",
			text: "// arrayfmt-wrap-threshold: 3",
			ok:   true,
			want: directive.Directive{Kind: directive.WrapThreshold, Threshold: 3},
		},
		{
			name: "zero threshold",
			text: "//arrayfmt-wrap-threshold: 0",
			ok:   true,
			want: directive.Directive{Kind: directive.WrapThreshold, Threshold: 0},
		},
		{
			name: "threshold marker with a single count stays a threshold",
			text: "/* arrayfmt-wrap-threshold: 2 */",
			ok:   true,
			want: directive.Directive{Kind: directive.WrapThreshold, Threshold: 2},
		},
		{
			name: "per-line marker with a single count stays per-line",
			text: "// arrayfmt-elements-per-line: 2",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2}},
		},
		{
			name: "jsdoc spread over lines",
			text: "/**\n * Arrayfmt-elements-per-line: 2 1\n * 3\n */",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2, 1, 3}},
		},
		{
			name: "jsdoc description before the marker",
			text: "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2\n */",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2}},
		},
		{
			name: "description and directive over several lines",
			text: "/**\n * Lookup table.\n *\n * Arrayfmt-elements-per-line: 2\n * 1\n */",
			ok:   true,
			want: directive.Directive{Kind: directive.PerLineCounts, Counts: []int{2, 1}},
		},
		{
			name: "full-width digits",
			text: "// arrayfmt-wrap-threshold: ３",
			ok:   true,
			want: directive.Directive{Kind: directive.WrapThreshold, Threshold: 3},
		},
		{
			name: "plain comment",
			text: "// otherwise we are editing currently existing songs",
		},
		{
			name: "marker not at start",
			text: "// see arrayfmt-wrap-threshold: 3",
		},
		{
			name: "wrong case",
			text: "// ARRAYFMT-WRAP-THRESHOLD: 3",
		},
		{
			name: "not a comment",
			text: "arrayfmt-wrap-threshold: 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := directive.ParseComment(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("directive mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeparatorsAreEquivalent(t *testing.T) {
	spaced, err := directive.Parse(directive.PerLineCounts, "2 1 3")
	if err != nil {
		t.Fatal(err)
	}
	commas, err := directive.Parse(directive.PerLineCounts, "2, 1, 3")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(spaced, commas); diff != "" {
		t.Fatalf("\"2 1 3\" and \"2, 1, 3\" differ:\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "threshold words",
			text: "// arrayfmt-wrap-threshold: fifty two",
			want: `Invalid multilineArrayWrapThreshold value. Expected an integer, but received "fifty two".`,
		},
		{
			name: "threshold with two numbers",
			text: "// arrayfmt-wrap-threshold: 2 3",
			want: `Invalid multilineArrayWrapThreshold value. Expected an integer, but received "2 3".`,
		},
		{
			name: "negative threshold",
			text: "// arrayfmt-wrap-threshold: -1",
			want: `Invalid multilineArrayWrapThreshold value. Expected a non-negative integer, but received "-1".`,
		},
		{
			name: "zero count",
			text: "// arrayfmt-elements-per-line: 2 0 1",
			want: `Invalid multilineArrayElementsPerLine value. Expected a positive integer, but received "0".`,
		},
		{
			name: "word count",
			text: "/* arrayfmt-elements-per-line: 2 x */",
			want: `Invalid multilineArrayElementsPerLine value. Expected a positive integer, but received "x".`,
		},
		{
			name: "empty counts",
			text: "// arrayfmt-elements-per-line:",
			want: `Invalid multilineArrayElementsPerLine value. Expected a positive integer, but received "".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := directive.ParseComment(tt.text)
			if !ok {
				t.Fatal("marker not recognized")
			}
			var cfgErr *directive.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
			}
			if got := err.Error(); got != tt.want {
				t.Fatalf("message mismatch\nwant: %s\ngot:  %s", tt.want, got)
			}
		})
	}
}

func TestNormalizeComment(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		changed bool
	}{
		{
			name:    "jsdoc over several lines",
			text:    "/**\n            * Arrayfmt-elements-per-line: 2 1\n            * 3\n            */",
			want:    "/** Arrayfmt-elements-per-line: 2 1 3 */",
			changed: true,
		},
		{
			name:    "description is kept",
			text:    "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2 1\n * 3\n */",
			want:    "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2 1 3\n */",
			changed: true,
		},
		{
			name: "description and one-line directive",
			text: "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2\n */",
			want: "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2\n */",
		},
		{
			name:    "directive ends on the closing line",
			text:    "/* Lookup table.\n   arrayfmt-wrap-threshold:\n   4 */",
			want:    "/* Lookup table.\n   arrayfmt-wrap-threshold: 4 */",
			changed: true,
		},
		{
			name:    "plain block",
			text:    "/*\n arrayfmt-wrap-threshold: 4\n*/",
			want:    "/* arrayfmt-wrap-threshold: 4 */",
			changed: true,
		},
		{
			name: "already single line",
			text: "/** Arrayfmt-elements-per-line: 2 1 3 */",
			want: "/** Arrayfmt-elements-per-line: 2 1 3 */",
		},
		{
			name: "line comment",
			text: "// arrayfmt-elements-per-line: 2, 1, 3",
			want: "// arrayfmt-elements-per-line: 2, 1, 3",
		},
		{
			name: "unrelated block",
			text: "/**\n * Returns the items.\n */",
			want: "/**\n * Returns the items.\n */",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := directive.NormalizeComment(tt.text)
			if got != tt.want || changed != tt.changed {
				t.Fatalf("NormalizeComment() = %q, %v; want %q, %v", got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestDirectiveString(t *testing.T) {
	d := directive.Directive{Kind: directive.PerLineCounts, Counts: []int{1, 2}}
	if got := d.String(); got != "arrayfmt-elements-per-line: 1 2" {
		t.Fatalf("String() = %q", got)
	}
	if !(directive.Directive{}).IsZero() {
		t.Fatal("zero directive must report IsZero")
	}
}
