package lexer

import (
	"arrayfmt/internal/diag"
	"arrayfmt/internal/source"
)

type Options struct {
	Reporter diag.Reporter // may be nil: errors are dropped but lexing continues
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}
