package token_test

import (
	"testing"

	"arrayfmt/internal/source"
	"arrayfmt/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.Number, token.String, token.Template, token.Regex}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Keyword, token.Punct, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestEndsOperand(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want bool
	}{
		{token.Ident, true},
		{token.Number, true},
		{token.String, true},
		{token.Template, true},
		{token.Regex, true},
		{token.RParen, true},
		{token.RBracket, true},
		{token.RBrace, false},
		{token.Keyword, false},
		{token.Comma, false},
		{token.LBracket, false},
		{token.Punct, false},
		{token.EOF, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tok(tt.kind).EndsOperand(); got != tt.want {
				t.Fatalf("EndsOperand(%v) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestKeywords(t *testing.T) {
	for _, kw := range []string{"return", "typeof", "const", "let", "await", "yield", "in", "of"} {
		if !token.IsKeyword(kw) {
			t.Errorf("IsKeyword(%q) = false", kw)
		}
	}
	// value words and case variants are identifiers
	for _, id := range []string{"this", "super", "null", "true", "Return", "CONST", "items"} {
		if token.IsKeyword(id) {
			t.Errorf("IsKeyword(%q) = true", id)
		}
	}
}

func TestHasComments(t *testing.T) {
	tk := token.Token{
		Kind: token.Ident,
		Text: "a",
		Leading: []token.Trivia{
			{Kind: token.TriviaSpace, Text: " "},
			{Kind: token.TriviaNewline, Text: "\n"},
		},
	}
	if tk.HasComments() {
		t.Fatal("whitespace is not a comment")
	}
	tk.Leading = append(tk.Leading, token.Trivia{Kind: token.TriviaBlockComment, Text: "/* x */"})
	if !tk.HasComments() {
		t.Fatal("block comment not detected")
	}
}

func TestKindString(t *testing.T) {
	if got := token.LBracket.String(); got != "LBracket" {
		t.Fatalf("LBracket.String() = %q", got)
	}
	if got := token.Kind(200).String(); got != "Kind(?)" {
		t.Fatalf("out of range kind = %q", got)
	}
}
