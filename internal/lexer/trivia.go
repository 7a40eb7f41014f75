package lexer

import (
	"arrayfmt/internal/diag"
	"arrayfmt/internal/token"
)

// collectLeadingTrivia gathers the trivia in front of the next significant
// token:
//   - runs of ' ', '\t', '\r', '\v', '\f' become one TriviaSpace
//   - runs of '\n' become one TriviaNewline
//   - //... up to '\n' and a leading #! line become TriviaLineComment
//   - /* ... */ becomes TriviaBlockComment (unterminated ones are reported
//     and cut at EOF)
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue

		case b == '#' && lx.cursor.Off == 0 && lx.cursor.PeekAt(1) == '!':
			lx.skipLine()
			lx.pushTrivia(token.TriviaLineComment, start)
			continue

		case b == '/':
			if lx.scanCommentIntoHold() {
				continue
			}
		}
		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

// scanCommentIntoHold consumes a // or /* comment. It leaves the cursor
// untouched and returns false when the '/' is not a comment opener.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		lx.skipLine()
		lx.pushTrivia(token.TriviaLineComment, start)
		return true
	case '*':
		closed := lx.skipBlockComment()
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.pushTrivia(token.TriviaBlockComment, start)
		return true
	}
	return false
}

// skipBlockComment consumes "/* ... */" and reports whether it was closed.
func (lx *Lexer) skipBlockComment() bool {
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return true
		}
		lx.cursor.Bump()
	}
	return false
}
