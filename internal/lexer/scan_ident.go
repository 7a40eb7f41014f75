package lexer

import (
	"arrayfmt/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies expression keywords.
// Non-identifier unicode runes fall back to punctuation.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(token.Invalid, start)
	}
	if r < utf8RuneSelf {
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) || lx.cursor.Peek() >= utf8RuneSelf {
			if lx.cursor.Peek() >= utf8RuneSelf {
				r2, _ := lx.peekRune()
				if !isIdentContinueRune(r2) {
					break
				}
				lx.bumpRune()
				continue
			}
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			lx.bumpRune()
			return lx.emit(token.Punct, start)
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	tok := lx.emit(token.Ident, start)
	if token.IsKeyword(tok.Text) {
		tok.Kind = token.Keyword
	}
	return tok
}
