package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"arrayfmt/internal/diag"
	"arrayfmt/internal/lexer"
	"arrayfmt/internal/source"
	"arrayfmt/internal/token"
)

// testReporter collects every diagnostic produced by the lexer.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter, *source.File) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.js", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter, file
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens checks kinds and texts of the token stream without EOF.
func expectTokens(t *testing.T, input string, kinds []token.Kind, texts []string) {
	t.Helper()
	lx, reporter, _ := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(kinds) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\nerrors: %v",
			len(kinds), len(tokens), input, tokensToString(tokens), reporter.codes())
	}
	for i, tok := range tokens {
		if tok.Kind != kinds[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, kinds[i], tok.Kind, tok.Text)
		}
		if texts != nil && tok.Text != texts[i] {
			t.Errorf("token %d: expected text %q, got %q", i, texts[i], tok.Text)
		}
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", reporter.codes())
	}
}

func TestArrayDeclaration(t *testing.T) {
	expectTokens(t, "const a = [1, 2];",
		[]token.Kind{
			token.Keyword, token.Ident, token.Punct, token.LBracket, token.Number,
			token.Comma, token.Number, token.RBracket, token.Punct,
		},
		[]string{"const", "a", "=", "[", "1", ",", "2", "]", ";"},
	)
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  token.Kind
	}{
		{"single quoted", `'a\'b'`, token.String},
		{"double quoted", `"x, y"`, token.String},
		{"line continuation", "'a\\\nb'", token.String},
		{"template", "`a ${b}`", token.Template},
		{"template braces", "`a ${ {b: \"}\"} } c`", token.Template},
		{"nested template", "`x ${`y ${z}`}`", token.Template},
		{"multiline template", "`a\n  [1, 2]\n`", token.Template},
		{"hex", "0x1F", token.Number},
		{"separator", "1_000", token.Number},
		{"exponent", "1.5e-3", token.Number},
		{"leading dot", ".5", token.Number},
		{"bigint", "10n", token.Number},
		{"regex", "/[/]+/g", token.Regex},
		{"unicode ident", "ñandú", token.Ident},
		{"dollar ident", "$el", token.Ident},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectTokens(t, tt.input, []token.Kind{tt.kind}, []string{tt.input})
		})
	}
}

func TestRegexVersusDivision(t *testing.T) {
	tests := []struct {
		input string
		kinds []token.Kind
	}{
		{"a / b / c", []token.Kind{token.Ident, token.Punct, token.Ident, token.Punct, token.Ident}},
		{"x = /ab+c/i", []token.Kind{token.Ident, token.Punct, token.Regex}},
		{"return /re/.test(s)", []token.Kind{
			token.Keyword, token.Regex, token.Punct, token.Ident, token.LParen, token.Ident, token.RParen,
		}},
		{"f(a) / 2", []token.Kind{token.Ident, token.LParen, token.Ident, token.RParen, token.Punct, token.Number}},
		{"[/a/, /b/]", []token.Kind{token.LBracket, token.Regex, token.Comma, token.Regex, token.RBracket}},
		{"i++ / 2", []token.Kind{token.Ident, token.Punct, token.Punct, token.Number}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectTokens(t, tt.input, tt.kinds, nil)
		})
	}
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "a?.[0]",
		[]token.Kind{token.Ident, token.Punct, token.LBracket, token.Number, token.RBracket},
		[]string{"a", "?.", "[", "0", "]"},
	)
	expectTokens(t, "a ? .5 : b",
		[]token.Kind{token.Ident, token.Punct, token.Number, token.Punct, token.Ident},
		[]string{"a", "?", ".5", ":", "b"},
	)
	expectTokens(t, "[...rest] === x",
		[]token.Kind{token.LBracket, token.Punct, token.Ident, token.RBracket, token.Punct, token.Ident},
		[]string{"[", "...", "rest", "]", "===", "x"},
	)
	expectTokens(t, "x => ({})",
		[]token.Kind{token.Ident, token.Punct, token.LParen, token.LBrace, token.RBrace, token.RParen},
		[]string{"x", "=>", "(", "{", "}", ")"},
	)
}

func TestLeadingTrivia(t *testing.T) {
	lx, _, _ := makeTestLexer("// note\n  [a] /* tail */")
	tok := lx.Next()
	if tok.Kind != token.LBracket {
		t.Fatalf("expected LBracket, got %v", tok.Kind)
	}
	wantKinds := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline, token.TriviaSpace}
	if len(tok.Leading) != len(wantKinds) {
		t.Fatalf("expected %d trivia, got %d", len(wantKinds), len(tok.Leading))
	}
	for i, k := range wantKinds {
		if tok.Leading[i].Kind != k {
			t.Errorf("trivia %d: expected %v, got %v", i, k, tok.Leading[i].Kind)
		}
	}
	if tok.Leading[0].Text != "// note" {
		t.Errorf("comment text = %q", tok.Leading[0].Text)
	}

	lx.Next() // a
	lx.Next() // ]
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	if !eof.HasComments() || eof.Leading[len(eof.Leading)-1].Text != "/* tail */" {
		t.Fatalf("trailing comment must be attached to EOF, got %+v", eof.Leading)
	}
	if again := lx.Next(); again.Kind != token.EOF {
		t.Fatalf("expected EOF after EOF, got %v", again.Kind)
	}
}

func TestHashbang(t *testing.T) {
	lx, _, _ := makeTestLexer("#!/usr/bin/env node\n[1]")
	tok := lx.Next()
	if tok.Kind != token.LBracket {
		t.Fatalf("expected LBracket, got %v", tok.Kind)
	}
	if tok.Leading[0].Kind != token.TriviaLineComment || tok.Leading[0].Text != "#!/usr/bin/env node" {
		t.Fatalf("unexpected hashbang trivia: %+v", tok.Leading[0])
	}
}

func TestPeek(t *testing.T) {
	lx, _, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek() = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next() after Peek() = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("Next() = %q", n.Text)
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"'abc", diag.LexUnterminatedString},
		{"'abc\n'", diag.LexUnterminatedString},
		{"`abc", diag.LexUnterminatedTemplate},
		{"`a ${b", diag.LexUnterminatedTemplate},
		{"a /* x", diag.LexUnterminatedBlockComment},
		{"x = /abc\n", diag.LexUnterminatedRegex},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, reporter, _ := makeTestLexer(tt.input)
			lx.All()
			if lx.Errors() == 0 {
				t.Fatalf("expected lexical errors")
			}
			if len(reporter.diagnostics) == 0 || reporter.diagnostics[0].Code != tt.code {
				t.Fatalf("expected %v, got %v", tt.code, reporter.codes())
			}
			if reporter.diagnostics[0].Severity != diag.SevError {
				t.Fatalf("expected error severity")
			}
		})
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "const m = [\n  [1, 'a'],\n  `t${x}`, /r/g, // c\n];\n"
	lx, reporter, file := makeTestLexer(input)
	for _, tok := range lx.All() {
		if got := string(file.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			t.Errorf("%v: span text %q != token text %q", tok.Kind, got, tok.Text)
		}
		for _, tv := range tok.Leading {
			if got := string(file.Content[tv.Span.Start:tv.Span.End]); got != tv.Text {
				t.Errorf("trivia span text %q != %q", got, tv.Text)
			}
		}
	}
	if len(reporter.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", reporter.codes())
	}
}
