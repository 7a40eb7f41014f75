package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"arrayfmt/internal/diag"
	"arrayfmt/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("/home/user/project/src/test.ts", []byte("const a = 1;\nconst b = [1, , 2];\n"))
	bag := diag.NewBag(10)
	d := diag.New(diag.SevInfo, diag.SynSparseArray, source.Span{File: id, Start: 23, End: 31}, "array has holes; left unchanged")
	d.Notes = append(d.Notes, diag.Note{Span: source.Span{File: id, Start: 27, End: 29}, Msg: "hole here"})
	bag.Add(d)
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeRelative, BaseDir: "/home/user/project", ShowNotes: true})

	want := strings.Join([]string{
		"src/test.ts:2:11: INFO SYN2101: array has holes; left unchanged",
		" 1 | const a = 1;",
		" 2 | const b = [1, , 2];",
		"   |           ^~~~~~~~",
		"  note: src/test.ts:2:15: hole here",
		" 1 | const a = 1;",
		" 2 | const b = [1, , 2];",
		"   |               ^~",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("Pretty() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestPathModes(t *testing.T) {
	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.ts"},
		{"relative", PathModeRelative, "src/test.ts"},
		{"basename", PathModeBasename, "test.ts"},
		{"auto inside", PathModeAuto, "src/test.ts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayPath("/home/user/project/src/test.ts", tt.mode, "/home/user/project"); got != tt.want {
				t.Fatalf("displayPath() = %q, want %q", got, tt.want)
			}
		})
	}
	if got := displayPath("/etc/x.ts", PathModeAuto, "/home/user/project"); got != "/etc/x.ts" {
		t.Fatalf("auto outside base = %q", got)
	}
}

func TestBuildJSON(t *testing.T) {
	bag, fs := testBag(t)
	out := BuildJSON(bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true, PathMode: PathModeBasename})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("unexpected output %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2101" || d.Severity != "INFO" || d.Location.File != "test.ts" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Location.StartLine != 2 || d.Location.StartCol != 11 || d.Location.EndCol != 19 {
		t.Fatalf("unexpected location %+v", d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.StartCol != 15 {
		t.Fatalf("unexpected notes %+v", d.Notes)
	}

	cut := BuildJSON(bag, fs, JSONOpts{Max: 0})
	if cut.Diagnostics[0].Location.StartLine != 0 {
		t.Fatal("positions included without IncludePositions")
	}
}
