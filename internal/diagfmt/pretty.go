package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arrayfmt/internal/diag"
	"arrayfmt/internal/source"
)

// Pretty formats diagnostics for humans, in bag order (call bag.Sort()
// first). Every diagnostic prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with the span underlined ^~~~ and then the
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	p := prettyPrinter{w: w, fs: fs, opts: opts}
	for _, d := range bag.Items() {
		p.diagnostic(d)
	}
}

type prettyPrinter struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
}

func (p *prettyPrinter) paint(attrs []color.Attribute, s string) string {
	if !p.opts.Color {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func severityAttrs(sev diag.Severity) []color.Attribute {
	switch sev {
	case diag.SevError:
		return []color.Attribute{color.FgRed, color.Bold}
	case diag.SevWarning:
		return []color.Attribute{color.FgYellow, color.Bold}
	default:
		return []color.Attribute{color.FgCyan, color.Bold}
	}
}

func (p *prettyPrinter) diagnostic(d diag.Diagnostic) {
	f := p.fs.Get(d.Primary.File)
	start, end := p.fs.Resolve(d.Primary)
	path := displayPath(f.Path, p.opts.PathMode, p.opts.BaseDir)

	fmt.Fprintf(p.w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		p.paint(severityAttrs(d.Severity), d.Severity.String()),
		d.Code.ID(), d.Message)
	p.excerpt(f, start, end, severityAttrs(d.Severity))

	if !p.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := p.fs.Get(n.Span.File)
		ns, ne := p.fs.Resolve(n.Span)
		fmt.Fprintf(p.w, "  %s %s:%d:%d: %s\n",
			p.paint([]color.Attribute{color.FgBlue, color.Bold}, "note:"),
			displayPath(nf.Path, p.opts.PathMode, p.opts.BaseDir), ns.Line, ns.Col, n.Msg)
		p.excerpt(nf, ns, ne, []color.Attribute{color.FgBlue})
	}
}

// excerpt prints the context lines, the reported line and an underline of
// the span. Spans that run past the line are underlined to its end.
func (p *prettyPrinter) excerpt(f *source.File, start, end source.LineCol, attrs []color.Attribute) {
	first := uint32(1)
	if ctx := uint32(max(p.opts.Context, 0)); start.Line > ctx { // #nosec G115 -- non-negative
		first = start.Line - ctx
	}
	gutter := len(fmt.Sprint(start.Line))

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(p.w, " %*d | %s\n", gutter, ln, expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	pad := runewidth.StringWidth(expandTabs(line[:from]))
	width := max(runewidth.StringWidth(expandTabs(line[from:to])), 1)
	mark := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(p.w, " %*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), p.paint(attrs, mark))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
