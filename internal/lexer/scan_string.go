package lexer

import (
	"arrayfmt/internal/diag"
	"arrayfmt/internal/token"
)

// scanString scans a '...' or "..." literal. Escapes are skipped without
// validation, so an escaped newline continues the literal.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	if !lx.skipString() {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
		return tok
	}
	return lx.emit(token.String, start)
}

func (lx *Lexer) skipString() bool {
	c := &lx.cursor
	quote := c.Bump()
	for !c.EOF() {
		switch b := c.Peek(); b {
		case quote:
			c.Bump()
			return true
		case '\\':
			c.Bump()
			c.Bump()
		case '\n':
			return false
		default:
			c.Bump()
		}
	}
	return false
}

// scanTemplate scans a whole template literal, substitutions included.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	if !lx.skipTemplate() {
		tok := lx.emit(token.Invalid, start)
		lx.errLex(diag.LexUnterminatedTemplate, tok.Span, "unterminated template literal")
		return tok
	}
	return lx.emit(token.Template, start)
}

func (lx *Lexer) skipTemplate() bool {
	c := &lx.cursor
	c.Bump() // opening '`'
	for !c.EOF() {
		switch b := c.Peek(); b {
		case '`':
			c.Bump()
			return true
		case '\\':
			c.Bump()
			c.Bump()
		case '$':
			c.Bump()
			if c.Peek() == '{' {
				c.Bump()
				if !lx.skipSubstitution() {
					return false
				}
			}
		default:
			c.Bump()
		}
	}
	return false
}

// skipSubstitution consumes the body of ${...} including the closing brace.
// Nested strings, templates and comments are skipped so their braces do not
// count.
func (lx *Lexer) skipSubstitution() bool {
	c := &lx.cursor
	depth := 1
	for !c.EOF() {
		switch b := c.Peek(); b {
		case '{':
			depth++
			c.Bump()
		case '}':
			depth--
			c.Bump()
			if depth == 0 {
				return true
			}
		case '"', '\'':
			if !lx.skipString() {
				return false
			}
		case '`':
			if !lx.skipTemplate() {
				return false
			}
		case '/':
			switch c.PeekAt(1) {
			case '/':
				lx.skipLine()
			case '*':
				if !lx.skipBlockComment() {
					return false
				}
			default:
				c.Bump()
			}
		default:
			c.Bump()
		}
	}
	return false
}

// scanRegex scans /body/flags. A character class may contain an unescaped
// '/'. A newline before the closing slash is an error.
func (lx *Lexer) scanRegex() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor
	c.Bump() // opening '/'
	inClass := false
	for !c.EOF() {
		b := c.Peek()
		switch {
		case b == '\n':
			goto unterminated
		case b == '\\':
			c.Bump()
			if c.Peek() == '\n' {
				goto unterminated
			}
			c.Bump()
		case b == '[':
			inClass = true
			c.Bump()
		case b == ']':
			inClass = false
			c.Bump()
		case b == '/' && !inClass:
			c.Bump()
			for isIdentContinueByte(c.Peek()) {
				c.Bump()
			}
			return lx.emit(token.Regex, start)
		default:
			c.Bump()
		}
	}

unterminated:
	tok := lx.emit(token.Invalid, start)
	lx.errLex(diag.LexUnterminatedRegex, tok.Span, "unterminated regular expression")
	return tok
}
