package source

import (
	"errors"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	lines := []string{
		"a b c d e f g h i j k l m n",
		"o p q r s",
		"t u v w x y",
		"z",
	}

	tests := []struct {
		name string
		r    Range
		want string
	}{
		{
			name: "multiple lines",
			r:    Range{Start: Position{0, 5}, End: Position{2, 3}},
			want: " d e f g h i j k l m n\no p q r s\nt u",
		},
		{
			name: "same line",
			r:    Range{Start: Position{0, 5}, End: Position{0, 7}},
			want: " d",
		},
		{
			name: "adjacent lines",
			r:    Range{Start: Position{1, 8}, End: Position{2, 0}},
			want: "s\n",
		},
		{
			name: "empty range",
			r:    Range{Start: Position{3, 1}, End: Position{3, 1}},
			want: "",
		},
		{
			name: "column at end of line",
			r:    Range{Start: Position{1, 9}, End: Position{3, 1}},
			want: "\nt u v w x y\nz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(lines, tt.r)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractOutOfBounds(t *testing.T) {
	lines := []string{"abc", "de"}
	bad := []Range{
		{Start: Position{0, 0}, End: Position{2, 0}},
		{Start: Position{-1, 0}, End: Position{0, 1}},
		{Start: Position{0, 4}, End: Position{1, 0}},
		{Start: Position{0, 0}, End: Position{1, 3}},
		{Start: Position{1, 1}, End: Position{0, 1}},
	}
	for _, r := range bad {
		_, err := Extract(lines, r)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Errorf("Extract(%s) error = %v, want *RangeError", r, err)
		}
	}
}

func TestExtractSpliceRoundTrip(t *testing.T) {
	doc := "const a = [\n    1, 2,\n    3,\n];\nfoo();\n"
	lines := strings.Split(doc, "\n")

	for sl := range lines {
		for sc := 0; sc <= len(lines[sl]); sc++ {
			for el := sl; el < len(lines); el++ {
				ec0 := 0
				if el == sl {
					ec0 = sc
				}
				for ec := ec0; ec <= len(lines[el]); ec++ {
					r := Range{Start: Position{sl, sc}, End: Position{el, ec}}
					text, err := Extract(lines, r)
					if err != nil {
						t.Fatalf("Extract(%s): %v", r, err)
					}
					got, err := Splice(lines, r, text)
					if err != nil {
						t.Fatalf("Splice(%s): %v", r, err)
					}
					if got != doc {
						t.Fatalf("round trip at %s changed document:\n%q", r, got)
					}
				}
			}
		}
	}
}

func TestFilePositions(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.js", []byte("x = [\n  1,\n];\n")))

	r := f.RangeOf(Span{File: f.ID, Start: 4, End: 12})
	want := Range{Start: Position{0, 4}, End: Position{2, 1}}
	if r != want {
		t.Fatalf("RangeOf = %s, want %s", r, want)
	}
	if !r.Multiline() {
		t.Error("expected multiline range")
	}
	text, err := Extract(f.Lines(), r)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if text != "[\n  1,\n]" {
		t.Errorf("Extract = %q", text)
	}
	if got := f.Indent(1); got != "  " {
		t.Errorf("Indent(1) = %q", got)
	}
}
