package format

import (
	"errors"
	"fmt"
	"sort"

	"arrayfmt/internal/ast"
	"arrayfmt/internal/diag"
	"arrayfmt/internal/directive"
	"arrayfmt/internal/layout"
	"arrayfmt/internal/lexer"
	"arrayfmt/internal/parser"
	"arrayfmt/internal/source"
)

// ErrSyntax is returned for files with lexical or syntax errors; such files
// are never rewritten. The diagnostics go to the reporter.
var ErrSyntax = errors.New("source has syntax errors")

type printer struct {
	sf       *source.File
	file     *ast.File
	lines    []string
	opt      Options
	renderer Renderer
	rep      diag.Reporter
}

// Parse scans and parses sf. It fails with ErrSyntax when the file has
// lexical or syntax errors and with a *directive.ConfigError when a
// directive comment is invalid.
func Parse(sf *source.File, rep diag.Reporter) (*ast.File, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	lx := lexer.New(sf, lexer.Options{Reporter: rep})
	res := parser.ParseFile(lx, parser.Options{Reporter: rep})
	if res.ConfigErr != nil {
		return nil, res.ConfigErr
	}
	if lx.Errors() > 0 || res.Errors > 0 {
		return nil, fmt.Errorf("%s: %w", sf.Path, ErrSyntax)
	}
	return res.File, nil
}

// FormatSource parses sf and formats it.
func FormatSource(sf *source.File, opt Options, rep diag.Reporter) ([]byte, error) {
	file, err := Parse(sf, rep)
	if err != nil {
		return nil, err
	}
	return FormatFile(sf, file, opt, rep)
}

// FormatFile returns the content of sf with every array literal of file laid
// out according to its plan. A *source.RangeError means file does not belong
// to sf.
func FormatFile(sf *source.File, file *ast.File, opt Options, rep diag.Reporter) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	if file == nil {
		return nil, errors.New("format: nil ast file")
	}
	opt = opt.withDefaults()
	p := printer{
		sf:       sf,
		file:     file,
		lines:    sf.Lines(),
		opt:      opt,
		renderer: NewRenderer(opt),
		rep:      rep,
	}

	var edits []edit
	for _, arr := range file.Arrays {
		text, err := p.render(arr)
		if err != nil {
			return nil, err
		}
		addEdit(&edits, sf.Content, int(arr.Span.Start), int(arr.Span.End), text.String())
	}
	p.directiveEdits(&edits)
	return applyEdits(sf.Content, edits), nil
}

// render returns the new text of arr's span. Children are rendered first.
func (p *printer) render(arr *ast.ArrayLit) (Text, error) {
	rendered := make(map[*ast.ArrayLit]Text, len(arr.Children))
	for _, c := range arr.Children {
		t, err := p.render(c)
		if err != nil {
			return Text{}, err
		}
		rendered[c] = t
	}

	if code, msg, frozen := frozenReason(arr); frozen {
		diag.ReportInfo(p.rep, code, arr.Span, msg)
		return p.compose(arr.Span, arr.Range, arr.Children, rendered)
	}

	elements := make([]Text, len(arr.Elements))
	for i, el := range arr.Elements {
		t, err := p.compose(el.Span, el.Range, childrenWithin(arr.Children, el.Span), rendered)
		if err != nil {
			return Text{}, err
		}
		elements[i] = t.dedent(p.sf.Indent(el.Range.Start.Line))
	}

	in := layout.Input{
		Elements:         len(arr.Elements),
		DefaultCounts:    p.opt.ElementsPerLine,
		DefaultThreshold: p.opt.WrapThreshold,
		Multiline:        arr.Multiline(),
	}
	var (
		trailing string
		block    bool
	)
	if d := arr.Directive; d != nil {
		in.Directive = d.Value
		if d.Trailing {
			trailing, _ = directive.NormalizeComment(d.Comment.Text)
			block = d.Comment.Block
			// a line comment cannot share its line with elements
			in.Multiline = in.Multiline || !d.Comment.Block
		}
	}
	plan := layout.Compute(in)

	indent := p.sf.Indent(arr.Range.Start.Line)
	text := p.renderer.RenderText(plan, elements, indent)
	if trailing != "" {
		text = withTrailingComment(text, trailing, block, plan.Inline, indent)
	}
	return text, nil
}

// withTrailingComment puts a directive comment back right after '['.
func withTrailingComment(t Text, comment string, block, inline bool, indent string) Text {
	first := t.Lines[0]
	if first == "[]" {
		if block {
			return Plain("[" + comment + "]")
		}
		return Plain("[ " + comment + "\n" + indent + "]")
	}
	if inline {
		t.Lines[0] = "[" + comment + " " + first[1:]
		return t
	}
	t.Lines[0] = "[ " + comment + first[1:]
	return t
}

// frozenReason tells why an array must keep its source text.
func frozenReason(arr *ast.ArrayLit) (diag.Code, string, bool) {
	switch {
	case arr.Sparse:
		return diag.SynSparseArray, "array has holes; left unchanged", true
	case arr.HasComments:
		return diag.SynCommentsInArray, "array has comments between elements; left unchanged", true
	case arr.Pattern && len(arr.Elements) > 0 && arr.Elements[len(arr.Elements)-1].Spread:
		return diag.SynRestPattern, "destructuring pattern ends with a rest element; left unchanged", true
	}
	return diag.UnknownCode, "", false
}

// compose returns the source text of sp, extracted from the line table, with
// the rendered text of every child substituted for the child's span.
func (p *printer) compose(sp source.Span, r source.Range, children []*ast.ArrayLit, rendered map[*ast.ArrayLit]Text) (Text, error) {
	raw, err := source.Extract(p.lines, r)
	if err != nil {
		return Text{}, err
	}

	var out Text
	pos := 0
	for _, c := range children {
		rel := int(c.Span.Start - sp.Start)
		p.appendSource(&out, raw[pos:rel], sp.Start+uint32(pos)) // #nosec G115 -- pos stays within the span
		out.Append(rendered[c])
		pos = int(c.Span.End - sp.Start)
	}
	p.appendSource(&out, raw[pos:], sp.Start+uint32(pos)) // #nosec G115 -- pos stays within the span
	return out, nil
}

// appendSource appends source text starting at byte offset off and freezes
// lines that begin inside a literal.
func (p *printer) appendSource(out *Text, s string, off uint32) {
	starts := lineStarts(s, off)
	out.appendString(s, func(i int) bool {
		return p.file.InVerbatim(starts[i])
	})
}

// lineStarts returns the absolute offset of every line of s.
func lineStarts(s string, off uint32) []uint32 {
	starts := []uint32{off}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, off+uint32(i)+1) // #nosec G115 -- i indexes a source slice
		}
	}
	return starts
}

func childrenWithin(children []*ast.ArrayLit, sp source.Span) []*ast.ArrayLit {
	var out []*ast.ArrayLit
	for _, c := range children {
		if sp.Contains(c.Span) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Span.Start < out[j].Span.Start })
	return out
}

// directiveEdits collapses multi-line directive block comments that sit
// outside every array literal onto one line.
func (p *printer) directiveEdits(edits *[]edit) {
	for _, d := range p.file.Directives {
		if d.Trailing || !d.Comment.Block || p.insideArray(d.Comment.Span) {
			continue
		}
		if text, changed := directive.NormalizeComment(d.Comment.Text); changed {
			addEdit(edits, p.sf.Content, int(d.Comment.Span.Start), int(d.Comment.Span.End), text)
		}
	}
}

func (p *printer) insideArray(sp source.Span) bool {
	for _, arr := range p.file.Arrays {
		if arr.Span.Contains(sp) {
			return true
		}
	}
	return false
}
