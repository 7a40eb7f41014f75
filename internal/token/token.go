package token

import (
	"arrayfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number, string, template or
// regular-expression literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Number, String, Template, Regex:
		return true
	default:
		return false
	}
}

// EndsOperand reports whether the token can end an operand. A '[' right
// after such a token is an index or a type suffix, and a '/' is division.
func (t Token) EndsOperand() bool {
	switch t.Kind {
	case Ident, Number, String, Template, Regex, RParen, RBracket:
		return true
	default:
		return false
	}
}

// Is reports whether the token is punctuation with the given text.
func (t Token) Is(text string) bool {
	return t.Kind == Punct && t.Text == text
}

// HasComments reports whether any comment precedes the token.
func (t Token) HasComments() bool {
	for _, tv := range t.Leading {
		if tv.IsComment() {
			return true
		}
	}
	return false
}
