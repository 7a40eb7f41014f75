package lexer

import (
	"arrayfmt/internal/token"
)

// operators are tried longest first.
var operators = []string{
	">>>=",
	"===", "!==", "**=", "...", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch lx.cursor.Peek() {
	case '[':
		lx.cursor.Bump()
		return lx.emit(token.LBracket, start)
	case ']':
		lx.cursor.Bump()
		return lx.emit(token.RBracket, start)
	case '(':
		lx.cursor.Bump()
		return lx.emit(token.LParen, start)
	case ')':
		lx.cursor.Bump()
		return lx.emit(token.RParen, start)
	case '{':
		lx.cursor.Bump()
		return lx.emit(token.LBrace, start)
	case '}':
		lx.cursor.Bump()
		return lx.emit(token.RBrace, start)
	case ',':
		lx.cursor.Bump()
		return lx.emit(token.Comma, start)
	case '?':
		// "?." is optional chaining unless a digit follows (a ? .5 : b)
		if lx.cursor.PeekAt(1) == '.' && !isDec(lx.cursor.PeekAt(2)) {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.Punct, start)
		}
	}

	for _, op := range operators {
		if lx.tryText(op) {
			return lx.emit(token.Punct, start)
		}
	}

	lx.bumpRune()
	return lx.emit(token.Punct, start)
}
