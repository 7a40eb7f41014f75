package parser

import (
	"arrayfmt/internal/ast"
	"arrayfmt/internal/diag"
	"arrayfmt/internal/directive"
	"arrayfmt/internal/token"
)

// comments handles the comments in front of tok: it records directives and
// marks arrays whose elements are separated by comments.
func (p *Parser) comments(tok token.Token) {
	g := p.top()
	// Comments in front of a comma, a closing bracket or the first token of
	// an element sit between elements of the innermost array.
	between := g != nil && g.array != nil &&
		(g.elemStart < 0 || tok.Kind == token.Comma || tok.Kind == token.RBracket)

	for _, tv := range tok.Leading {
		if !tv.IsComment() {
			continue
		}
		c := ast.Comment{Span: tv.Span, Text: tv.Text, Block: tv.Kind == token.TriviaBlockComment}

		value, ok, err := directive.ParseComment(tv.Text)
		if err != nil {
			p.setConfigErr(err, tv.Span)
		}
		if !ok || err != nil {
			if between {
				g.array.HasComments = true
			}
			continue
		}

		d := &ast.Directive{Comment: c, Value: value}
		p.out.Directives = append(p.out.Directives, d)

		if between && !g.sawToken && p.sameLine(g.open, c) {
			d.Trailing = true
			p.bind(d, g.array)
			continue
		}
		if between {
			g.array.HasComments = true
		}
		p.pending = append(p.pending, d)
	}
}

func (p *Parser) sameLine(open token.Token, c ast.Comment) bool {
	return p.file.Position(open.Span.Start).Line == p.file.Position(c.Span.Start).Line
}

// bindPending attaches pending directives to arr when the '[' sits on the
// line where the comment ends or on the next one. Every pending directive is
// resolved by the first array opened after it.
func (p *Parser) bindPending(arr *ast.ArrayLit, open token.Token) {
	if len(p.pending) == 0 {
		return
	}
	openLine := p.file.Position(open.Span.Start).Line
	for _, d := range p.pending {
		endLine := p.file.Position(d.Comment.Span.End).Line
		if openLine > endLine+1 {
			p.unbound(d)
			continue
		}
		p.bind(d, arr)
	}
	p.pending = p.pending[:0]
}

func (p *Parser) bind(d *ast.Directive, arr *ast.ArrayLit) {
	if arr.Directive != nil {
		diag.ReportWarning(p.opts.Reporter, diag.SynDuplicateDirective, d.Comment.Span,
			"array already has a directive; this one is ignored")
		return
	}
	d.Bound = arr
	arr.Directive = d
}

func (p *Parser) unbound(d *ast.Directive) {
	diag.ReportWarning(p.opts.Reporter, diag.SynUnboundDirective, d.Comment.Span,
		"directive is not followed by an array literal on the same or the next line")
}
