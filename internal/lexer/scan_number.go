package lexer

import (
	"arrayfmt/internal/token"
)

// scanNumber accepts 0x/0o/0b integers, decimals with an optional fraction
// and exponent, '_' separators and the BigInt 'n' suffix. Malformed numbers
// are not diagnosed; the token text stays exactly as written.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	c := &lx.cursor

	if c.Peek() == '0' {
		switch c.PeekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			c.Bump()
			c.Bump()
			for isHex(c.Peek()) || c.Peek() == '_' {
				c.Bump()
			}
			c.Eat('n')
			return lx.emit(token.Number, start)
		}
	}

	seenDot := false
digits:
	for {
		b := c.Peek()
		switch {
		case isDec(b) || b == '_':
			c.Bump()
		case b == '.' && !seenDot:
			seenDot = true
			c.Bump()
		default:
			break digits
		}
	}

	if b := c.Peek(); b == 'e' || b == 'E' {
		next := c.PeekAt(1)
		if isDec(next) || ((next == '+' || next == '-') && isDec(c.PeekAt(2))) {
			c.Bump()
			if next == '+' || next == '-' {
				c.Bump()
			}
			for isDec(c.Peek()) || c.Peek() == '_' {
				c.Bump()
			}
		}
	}
	if !seenDot {
		c.Eat('n')
	}
	return lx.emit(token.Number, start)
}
