package ast

import (
	"arrayfmt/internal/directive"
	"arrayfmt/internal/source"
)

// Comment is a line or block comment with its delimiters.
type Comment struct {
	Span  source.Span
	Text  string
	Block bool
}

// Directive is a directive comment found in the file.
type Directive struct {
	Comment Comment
	Value   directive.Directive
	// Trailing is set when the comment follows the '[' of its array on the
	// same line.
	Trailing bool
	// Bound is the array the directive applies to, nil when unbound.
	Bound *ArrayLit
}

// Element is one array element. Its span covers the first through the last
// token of the element; separating commas are not part of it.
type Element struct {
	Span   source.Span
	Range  source.Range
	Spread bool // starts with "..."
}

// ArrayLit is an array literal. Span covers the brackets.
type ArrayLit struct {
	Span     source.Span
	Range    source.Range
	Elements []Element
	// Children are the array literals nested anywhere inside this one.
	Children  []*ArrayLit
	Parent    *ArrayLit
	Directive *Directive

	Sparse        bool // has holes: [a, , b]
	HasComments   bool // comments between elements or around brackets
	TrailingComma bool
	// Pattern is set for destructuring targets: const [a, b] = ..., [a, b] = ...
	Pattern bool
}

// Multiline reports whether the literal spans several source lines.
func (a *ArrayLit) Multiline() bool {
	return a.Range.Multiline()
}

// Depth returns the nesting depth, 0 for outermost arrays.
func (a *ArrayLit) Depth() int {
	d := 0
	for p := a.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// File is the array tree of one source file.
type File struct {
	Source *source.File
	// Arrays are the outermost array literals in source order.
	Arrays []*ArrayLit
	// Directives are all recognized directive comments in source order.
	Directives []*Directive
	// Verbatim are spans of literals that contain a line break. Text inside
	// them must not be re-indented.
	Verbatim []source.Span
}

// Walk visits arrays in pre-order and stops descending when fn returns false.
func (f *File) Walk(fn func(*ArrayLit) bool) {
	var visit func([]*ArrayLit)
	visit = func(arrs []*ArrayLit) {
		for _, a := range arrs {
			if fn(a) {
				visit(a.Children)
			}
		}
	}
	visit(f.Arrays)
}

// Count returns the number of array literals in the file.
func (f *File) Count() int {
	n := 0
	f.Walk(func(*ArrayLit) bool {
		n++
		return true
	})
	return n
}

// InVerbatim reports whether off lies strictly inside a verbatim literal.
func (f *File) InVerbatim(off uint32) bool {
	for _, sp := range f.Verbatim {
		if off > sp.Start && off < sp.End {
			return true
		}
	}
	return false
}
