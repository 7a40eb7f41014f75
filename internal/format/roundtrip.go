package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dop251/goja"

	"arrayfmt/internal/diag"
	"arrayfmt/internal/lexer"
	"arrayfmt/internal/source"
	"arrayfmt/internal/token"
)

// CheckRoundTrip formats sf and verifies that the output keeps every
// significant token, that formatting it again is a no-op, and, for plain
// JavaScript files, that the output still compiles.
func CheckRoundTrip(sf *source.File, opt Options) (ok bool, msg string) {
	out, err := FormatSource(sf, opt, nil)
	if err != nil {
		return false, fmt.Sprintf("format: %v", err)
	}

	fs := source.NewFileSet()
	formatted := fs.Get(fs.AddVirtual(sf.Path, out))
	if ok, msg := sameTokens(sf, formatted); !ok {
		return false, msg
	}

	again, err := FormatSource(formatted, opt, nil)
	if err != nil {
		return false, fmt.Sprintf("reformat: %v", err)
	}
	if !bytes.Equal(again, out) {
		return false, "formatting is not idempotent"
	}

	if isScript(sf.Path) {
		if _, err := goja.Compile(sf.Path, string(sf.Content), false); err == nil {
			if _, err := goja.Compile(sf.Path, string(out), false); err != nil {
				return false, fmt.Sprintf("output does not compile: %v", err)
			}
		}
	}
	return true, ""
}

// sameTokens compares the significant tokens of a and b. Commas are
// skipped since layouts add and drop trailing commas.
func sameTokens(a, b *source.File) (ok bool, msg string) {
	ta := significant(a)
	tb := significant(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		if ta[i].Kind != tb[i].Kind || ta[i].Text != tb[i].Text {
			return false, fmt.Sprintf("token %d differs: %s %q vs %s %q", i, ta[i].Kind, ta[i].Text, tb[i].Kind, tb[i].Text)
		}
	}
	if len(ta) != len(tb) {
		return false, fmt.Sprintf("token count differs: %d vs %d", len(ta), len(tb))
	}
	return true, ""
}

func significant(f *source.File) []token.Token {
	lx := lexer.New(f, lexer.Options{Reporter: diag.NopReporter{}})
	all := lx.All()
	out := all[:0]
	for _, tok := range all {
		if tok.Kind == token.Comma || tok.Kind == token.EOF {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// isScript reports whether path is JavaScript that goja can compile.
func isScript(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".cjs":
		return true
	}
	return false
}
