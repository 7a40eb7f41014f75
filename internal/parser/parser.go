// Package parser builds the array-literal tree of a source file from the
// token stream and binds directive comments to the arrays they steer.
package parser

import (
	"errors"
	"fmt"

	"arrayfmt/internal/ast"
	"arrayfmt/internal/diag"
	"arrayfmt/internal/directive"
	"arrayfmt/internal/lexer"
	"arrayfmt/internal/source"
	"arrayfmt/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	File *ast.File
	// ConfigErr is the first invalid directive in the file. The file must not
	// be reformatted when it is set.
	ConfigErr error
	// Errors counts syntax errors; lexical errors are counted by the lexer.
	Errors int
}

// group is an open bracket, paren or brace.
type group struct {
	open  token.Token
	array *ast.ArrayLit // nil unless the group is an array literal
	// classBody marks the braces of a class body, where every '[' at the
	// start of a member is a computed name.
	classBody bool
	// memberStart marks an array opened where an object or type member may
	// start. It is dropped again when the closing ']' turns out to be a
	// computed key or an index signature.
	memberStart bool
	sawIn       bool // "in" keyword at this level, for mapped types

	// element tracking, used only when array != nil
	elemStart  int
	elemEnd    uint32
	elemSpread bool
	sawToken   bool // any token after '['
}

type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	opts Options
	out  *ast.File

	stack    []*group
	pending  []*ast.Directive
	prev     token.Token
	prevPrev token.Token
	// closed is the array closed by the previous token, for pattern detection.
	closed *ast.ArrayLit
	// classDepth is the stack depth of a class header waiting for its body,
	// or -1.
	classDepth int

	configErr error
	errors    int
}

// ParseFile scans the whole file behind lx.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := &Parser{
		lx:   lx,
		file: lx.File(),
		opts: opts,
		out:  &ast.File{Source: lx.File()},

		classDepth: -1,
	}
	p.run()
	p.resolveRanges()
	return Result{File: p.out, ConfigErr: p.configErr, Errors: p.errors}
}

func (p *Parser) run() {
	for {
		tok := p.lx.Next()
		p.trackVerbatim(tok)
		p.comments(tok)

		if p.closed != nil {
			if tok.Is("=") {
				p.closed.Pattern = true
			}
			p.closed = nil
		}

		p.trackClass(tok)

		switch tok.Kind {
		case token.EOF:
			p.finish()
			return
		case token.LBracket:
			p.openBracket(tok)
		case token.LParen, token.LBrace:
			p.participate(tok)
			g := &group{open: tok, elemStart: -1}
			if tok.Kind == token.LBrace && p.classDepth == len(p.stack) {
				g.classBody = true
				p.classDepth = -1
			}
			p.stack = append(p.stack, g)
		case token.RBracket, token.RParen, token.RBrace:
			p.close(tok)
		case token.Comma:
			p.comma(tok)
		default:
			if tok.Kind == token.Keyword && tok.Text == "in" {
				if g := p.top(); g != nil {
					g.sawIn = true
				}
			}
			p.participate(tok)
		}

		p.prevPrev = p.prev
		p.prev = tok
	}
}

func (p *Parser) top() *group {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

// enclosingArray returns the innermost open array literal at any depth.
func (p *Parser) enclosingArray() *ast.ArrayLit {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].array != nil {
			return p.stack[i].array
		}
	}
	return nil
}

// participate extends the current element of the array on top of the
// stack with tok, starting a new element when needed.
func (p *Parser) participate(tok token.Token) {
	g := p.top()
	if g == nil || g.array == nil {
		return
	}
	g.sawToken = true
	if g.elemStart < 0 {
		g.elemStart = int(tok.Span.Start)
		g.elemSpread = tok.Is("...")
	}
	g.elemEnd = tok.Span.End
}

// operandBefore reports whether the previous tokens end an operand, which
// turns a following '[' into an index access.
func (p *Parser) operandBefore() bool {
	if p.prev.EndsOperand() || p.prev.Is("?.") {
		return true
	}
	// TypeScript non-null assertion: value![0]
	return p.prev.Is("!") && len(p.prev.Leading) == 0 && p.prevPrev.EndsOperand()
}

// trackClass notices class headers so that the following '{' is known to
// open a class body. "class" used as a property name is dropped at the ':'.
func (p *Parser) trackClass(tok token.Token) {
	if tok.Kind == token.Ident && tok.Text == "class" && !p.prev.Is(".") && !p.prev.Is("?.") {
		p.classDepth = len(p.stack)
		return
	}
	if p.classDepth < 0 {
		return
	}
	if len(p.stack) < p.classDepth ||
		(len(p.stack) == p.classDepth && (tok.Is(":") || tok.Is(";") || tok.Is("=") || tok.Is("=>"))) {
		p.classDepth = -1
	}
}

// memberPosition reports whether the previous token lets a member of the
// enclosing braces start here.
func (p *Parser) memberPosition() bool {
	if p.prev.Is("*") {
		// generator method: *[Symbol.iterator]() {}
		return separatesMembers(p.prevPrev)
	}
	return separatesMembers(p.prev)
}

func separatesMembers(tok token.Token) bool {
	switch tok.Kind {
	case token.LBrace, token.RBrace, token.Comma:
		return true
	}
	return tok.Is(";")
}

func (p *Parser) openBracket(tok token.Token) {
	isArray := !p.operandBefore()
	memberStart := false
	if g := p.top(); isArray && g != nil && g.open.Kind == token.LBrace && p.memberPosition() {
		if g.classBody {
			isArray = false
		} else {
			memberStart = true
		}
	}
	p.participate(tok)
	g := &group{open: tok, elemStart: -1, memberStart: memberStart}
	if isArray {
		arr := &ast.ArrayLit{
			Span:   tok.Span,
			Parent: p.enclosingArray(),
		}
		if arr.Parent != nil {
			arr.Parent.Children = append(arr.Parent.Children, arr)
		} else {
			p.out.Arrays = append(p.out.Arrays, arr)
		}
		if p.prev.Kind == token.Keyword {
			switch p.prev.Text {
			case "const", "let", "var":
				arr.Pattern = true
			}
		}
		g.array = arr
		p.bindPending(arr, tok)
	}
	p.stack = append(p.stack, g)
}

func (p *Parser) comma(tok token.Token) {
	g := p.top()
	if g == nil || g.array == nil {
		return
	}
	g.sawToken = true
	if g.elemStart < 0 {
		g.array.Sparse = true
		return
	}
	p.pushElement(g)
}

func (p *Parser) pushElement(g *group) {
	g.array.Elements = append(g.array.Elements, ast.Element{
		Span: source.Span{
			File:  p.file.ID,
			Start: uint32(g.elemStart), // #nosec G115 -- offsets come from uint32 spans
			End:   g.elemEnd,
		},
		Spread: g.elemSpread,
	})
	g.elemStart = -1
	g.elemSpread = false
}

func closerFor(open token.Kind) token.Kind {
	switch open {
	case token.LBracket:
		return token.RBracket
	case token.LParen:
		return token.RParen
	default:
		return token.RBrace
	}
}

func (p *Parser) close(tok token.Token) {
	g := p.top()
	if g == nil || closerFor(g.open.Kind) != tok.Kind {
		p.errorf(diag.SynUnexpectedCloser, tok.Span, "unexpected %q", tok.Text)
		return
	}
	p.stack = p.stack[:len(p.stack)-1]

	if arr := g.array; arr != nil && g.memberStart && p.memberName(g) {
		p.demote(arr)
		g.array = nil
	}

	if arr := g.array; arr != nil {
		switch {
		case g.elemStart >= 0:
			p.pushElement(g)
		case len(arr.Elements) > 0:
			arr.TrailingComma = true
		}
		arr.Span.End = tok.Span.End
		p.closed = arr
	}
	p.participate(tok)
}

// memberName reports whether the bracket group just closed is a computed
// property name, an index signature or a mapped type key. Only the token
// after ']' tells these apart from an array literal starting a statement.
func (p *Parser) memberName(g *group) bool {
	next := p.lx.Peek()
	switch {
	case next.Kind == token.LParen, next.Is(":"), next.Is("?"), next.Is("<"):
		return true
	case next.Is("-"), next.Is("+"):
		// mapped type modifier: [K in keyof T]-?: T[K]
		return g.sawIn
	}
	return false
}

// demote turns a tentative array back into a plain bracket group. Arrays
// nested in it move up to its parent, and its directive waits for the next
// array.
func (p *Parser) demote(arr *ast.ArrayLit) {
	siblings := &p.out.Arrays
	if arr.Parent != nil {
		siblings = &arr.Parent.Children
	}
	list := *siblings
	if n := len(list); n > 0 && list[n-1] == arr {
		list = list[:n-1]
	}
	for _, c := range arr.Children {
		c.Parent = arr.Parent
		list = append(list, c)
	}
	*siblings = list

	if d := arr.Directive; d != nil {
		d.Bound = nil
		d.Trailing = false
		arr.Directive = nil
		p.pending = append(p.pending, d)
	}
}

func (p *Parser) finish() {
	for _, d := range p.pending {
		p.unbound(d)
	}
	p.pending = nil
	for i := len(p.stack) - 1; i >= 0; i-- {
		g := p.stack[i]
		p.errorf(diag.SynUnclosedBracket, g.open.Span, "%q is never closed", g.open.Text)
	}
	p.stack = nil
}

func (p *Parser) trackVerbatim(tok token.Token) {
	switch tok.Kind {
	case token.String, token.Template, token.Regex, token.Invalid:
		for i := 0; i < len(tok.Text); i++ {
			if tok.Text[i] == '\n' {
				p.out.Verbatim = append(p.out.Verbatim, tok.Span)
				return
			}
		}
	}
}

func (p *Parser) resolveRanges() {
	p.out.Walk(func(a *ast.ArrayLit) bool {
		a.Range = p.file.RangeOf(a.Span)
		for i := range a.Elements {
			a.Elements[i].Range = p.file.RangeOf(a.Elements[i].Span)
		}
		return true
	})
}

func (p *Parser) errorf(code diag.Code, sp source.Span, format string, args ...any) {
	p.errors++
	diag.ReportError(p.opts.Reporter, code, sp, fmt.Sprintf(format, args...))
}

func (p *Parser) setConfigErr(err error, sp source.Span) {
	var cfgErr *directive.ConfigError
	if errors.As(err, &cfgErr) && p.configErr == nil {
		p.configErr = err
	}
	diag.ReportError(p.opts.Reporter, diag.CfgInvalidDirective, sp, err.Error())
}
