package format_test

import (
	"errors"
	"testing"

	"arrayfmt/internal/diag"
	"arrayfmt/internal/directive"
	"arrayfmt/internal/format"
	"arrayfmt/internal/source"
)

func newFile(name, input string) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(input)))
}

func formatString(t *testing.T, input string, opt format.Options) (string, *diag.Bag) {
	t.Helper()
	bag := diag.NewBag(0)
	out, err := format.FormatSource(newFile("test.ts", input), opt, diag.BagReporter{Bag: bag})
	if err != nil {
		t.Fatalf("FormatSource: %v", err)
	}
	return string(out), bag
}

func TestFormatSource(t *testing.T) {
	tests := []struct {
		name  string
		opt   format.Options
		input string
		want  string
	}{
		{
			name:  "one per line by default",
			input: "const a = [1, 2, 3];\n",
			want:  "const a = [\n    1,\n    2,\n    3,\n];\n",
		},
		{
			name:  "threshold keeps short single-line arrays",
			opt:   format.Options{WrapThreshold: 3},
			input: "const a = [1, 2, 3];\nconst b = [1, 2, 3, 4];\n",
			want:  "const a = [1, 2, 3];\nconst b = [\n    1,\n    2,\n    3,\n    4,\n];\n",
		},
		{
			name:  "threshold expands arrays already on several lines",
			opt:   format.Options{WrapThreshold: 3},
			input: "const a = [1,\n  2];\n",
			want:  "const a = [\n    1,\n    2,\n];\n",
		},
		{
			name:  "elements per line",
			opt:   format.Options{ElementsPerLine: []int{1, 2, 3}},
			input: "x = [a, b, c, d, e, f, g, h];\n",
			want:  "x = [\n    a,\n    b, c,\n    d, e, f,\n    g, h,\n];\n",
		},
		{
			name:  "nested arrays",
			input: "const a = [[1, 2], [3]];\n",
			want:  "const a = [\n    [\n        1,\n        2,\n    ],\n    [\n        3,\n    ],\n];\n",
		},
		{
			name:  "nested arrays under threshold",
			opt:   format.Options{WrapThreshold: 3},
			input: "const a = [[1, 2], [3]];\n",
			want:  "const a = [[1, 2], [3]];\n",
		},
		{
			name:  "array deep in a call",
			input: "foo(bar([3, 4]));\n",
			want:  "foo(bar([\n    3,\n    4,\n]));\n",
		},
		{
			name:  "indentation of the bracket line",
			opt:   format.Options{IndentWidth: 2},
			input: "function f() {\n  return [1, 2];\n}\n",
			want:  "function f() {\n  return [\n    1,\n    2,\n  ];\n}\n",
		},
		{
			name:  "tabs",
			opt:   format.Options{UseTabs: true},
			input: "if (x) {\n\ty = [1, 2];\n}\n",
			want:  "if (x) {\n\ty = [\n\t\t1,\n\t\t2,\n\t];\n}\n",
		},
		{
			name:  "multi-line template element",
			input: "const a = [`line1\n  line2`, b];\n",
			want:  "const a = [\n    `line1\n  line2`,\n    b,\n];\n",
		},
		{
			name:  "multi-line element is re-indented",
			opt:   format.Options{IndentWidth: 2},
			input: "const a = [f(\n  1,\n), 2];\n",
			want:  "const a = [\n  f(\n    1,\n  ),\n  2,\n];\n",
		},
		{
			name:  "empty array and type annotation",
			input: "const myVar1: string[] = [];\n",
			want:  "const myVar1: string[] = [];\n",
		},
		{
			name:  "index expressions are not arrays",
			input: "y = x[0] + m[1][2];\n",
			want:  "y = x[0] + m[1][2];\n",
		},
		{
			name:  "line directive with threshold",
			input: "// arrayfmt-wrap-threshold: 3\nconst a = ['hello'];\n",
			want:  "// arrayfmt-wrap-threshold: 3\nconst a = ['hello'];\n",
		},
		{
			name:  "directive overrides options",
			opt:   format.Options{ElementsPerLine: []int{1}},
			input: "/* arrayfmt-elements-per-line: 2 */\nconst a = [1, 2, 3];\n",
			want:  "/* arrayfmt-elements-per-line: 2 */\nconst a = [\n    1, 2,\n    3,\n];\n",
		},
		{
			name:  "jsdoc directive is collapsed",
			input: "/**\n * Arrayfmt-elements-per-line: 2 1 3\n */\nconst a = [1, 2, 3, 4, 5, 6];\n",
			want:  "/** Arrayfmt-elements-per-line: 2 1 3 */\nconst a = [\n    1, 2,\n    3,\n    4, 5, 6,\n];\n",
		},
		{
			name:  "jsdoc directive after a description",
			input: "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2\n */\nconst a = [1, 2, 3, 4];\n",
			want:  "/**\n * Lookup table.\n * arrayfmt-elements-per-line: 2\n */\nconst a = [\n    1, 2,\n    3, 4,\n];\n",
		},
		{
			name:  "trailing block directive inline",
			input: "const a = [/* arrayfmt-wrap-threshold: 5 */ 1, 2];\n",
			want:  "const a = [/* arrayfmt-wrap-threshold: 5 */ 1, 2];\n",
		},
		{
			name:  "trailing line directive",
			input: "const a = [ // arrayfmt-elements-per-line: 2\n  1, 2, 3];\n",
			want:  "const a = [ // arrayfmt-elements-per-line: 2\n    1, 2,\n    3,\n];\n",
		},
		{
			name:  "spread and holes",
			input: "const a = [...xs, 1];\nconst b = [1, , 2];\n",
			want:  "const a = [\n    ...xs,\n    1,\n];\nconst b = [1, , 2];\n",
		},
		{
			name:  "comments between elements",
			input: "const a = [1, /* one */ 2];\n",
			want:  "const a = [1, /* one */ 2];\n",
		},
		{
			name:  "rest pattern",
			input: "const [a, ...rest] = xs;\n",
			want:  "const [a, ...rest] = xs;\n",
		},
		{
			name:  "destructuring pattern",
			input: "let [a, b] = xs;\n",
			want:  "let [\n    a,\n    b,\n] = xs;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := formatString(t, tt.input, tt.opt)
			if got != tt.want {
				t.Fatalf("FormatSource() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestMemberBracketsAreUntouched(t *testing.T) {
	inputs := []string{
		"const o = {[k]: 1};\n",
		"const {[k]: v} = o;\n",
		"interface M { [key: string]: number }\n",
		"type R = { [K in keyof T]-?: T[K] };\n",
		"class A {\n    [Symbol.iterator]() {}\n    static [k] = 1;\n    get [g]() { return 1; }\n}\n",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, _ := formatString(t, input, format.Options{})
			if got != input {
				t.Fatalf("FormatSource() =\n%s\nwant unchanged", got)
			}
		})
	}

	got, _ := formatString(t, "const o = {[k]: [1, 2]};\n", format.Options{})
	if want := "const o = {[k]: [\n    1,\n    2,\n]};\n"; got != want {
		t.Fatalf("FormatSource() =\n%s\nwant\n%s", got, want)
	}
}

func TestFormatSourceIsIdempotent(t *testing.T) {
	inputs := []string{
		"const a = [[1, [2, 3]], `x\n  y`, f(\n  [4, 5],\n)];\n",
		"/**\n * arrayfmt-elements-per-line: 2\n */\nconst a = [1, 2, 3];\n",
		"const a = [ // arrayfmt-wrap-threshold: 9\n  1, 2];\n",
		"function f() {\n\treturn [a, [b, c]];\n}\n",
	}
	opts := []format.Options{{}, {WrapThreshold: 2}, {ElementsPerLine: []int{2, 1}}, {UseTabs: true}}
	for _, in := range inputs {
		for _, opt := range opts {
			once, _ := formatString(t, in, opt)
			twice, _ := formatString(t, once, opt)
			if once != twice {
				t.Fatalf("not idempotent for %q with %+v:\n%s\n---\n%s", in, opt, once, twice)
			}
		}
	}
}

func TestFrozenArraysReportInfo(t *testing.T) {
	_, bag := formatString(t, "const a = [1, , 2];\nconst b = [1, // c\n 2];\n", format.Options{})
	var got []diag.Code
	for _, d := range bag.Items() {
		if d.Severity != diag.SevInfo {
			t.Fatalf("unexpected severity %v for %v", d.Severity, d.Code)
		}
		got = append(got, d.Code)
	}
	if len(got) != 2 || got[0] != diag.SynSparseArray || got[1] != diag.SynCommentsInArray {
		t.Fatalf("unexpected codes %v", got)
	}
}

func TestDirectiveLineFreezesEnclosingArray(t *testing.T) {
	input := "x = [\n  // arrayfmt-elements-per-line: 2\n  [1, 2, 3],\n];\n"
	got, bag := formatString(t, input, format.Options{})
	want := "x = [\n  // arrayfmt-elements-per-line: 2\n  [\n      1, 2,\n      3,\n  ],\n];\n"
	if got != want {
		t.Fatalf("FormatSource() =\n%s\nwant\n%s", got, want)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynCommentsInArray {
		t.Fatalf("expected one SYN2102 info, got %d diagnostics", len(items))
	}
}

func TestFormatSourceInvalidDirective(t *testing.T) {
	sf := newFile("test.ts", "// arrayfmt-wrap-threshold: fifty two\nconst a = [1];\n")
	_, err := format.FormatSource(sf, format.Options{}, nil)
	var cfgErr *directive.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	want := `Invalid multilineArrayWrapThreshold value. Expected an integer, but received "fifty two".`
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestFormatSourceSyntaxError(t *testing.T) {
	sf := newFile("test.ts", "const a = [1, 2;\n")
	_, err := format.FormatSource(sf, format.Options{}, nil)
	if !errors.Is(err, format.ErrSyntax) {
		t.Fatalf("expected ErrSyntax, got %v", err)
	}
}

func TestFormatFileRejectsForeignTree(t *testing.T) {
	long := newFile("a.ts", "const a = [1, 2];\nconst b = [3, 4];\n")
	file, err := format.Parse(long, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	short := newFile("b.ts", "x\n")
	_, err = format.FormatFile(short, file, format.Options{}, nil)
	var rangeErr *source.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	inputs := map[string]string{
		"a.js":  "var a = [1, [2, 3], `x\n y`, /re]/g];\nfoo([a, b]);\n",
		"b.ts":  "const xs: number[] = [1, 2];\n",
		"c.cjs": "module.exports = [\n  1, 2,\n];\n",
	}
	for name, in := range inputs {
		if ok, msg := format.CheckRoundTrip(newFile(name, in), format.Options{ElementsPerLine: []int{2}}); !ok {
			t.Fatalf("%s: %s", name, msg)
		}
	}
}
