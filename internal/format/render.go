package format

import (
	"arrayfmt/internal/layout"
)

// Renderer turns a layout plan and element texts into array text.
type Renderer struct {
	// Unit is one level of indentation.
	Unit string
}

// NewRenderer returns a renderer using the indentation of opt.
func NewRenderer(opt Options) Renderer {
	return Renderer{Unit: opt.Unit()}
}

// Render lays out elements according to plan. indent is the indentation of
// the line holding the opening bracket. An empty plan yields "[]", an inline
// plan "[a, b]"; otherwise every group goes on its own line one unit deeper
// than indent, each line ends with a comma and "]" closes at indent.
func (r Renderer) Render(plan layout.Plan, elements []string, indent string) string {
	texts := make([]Text, len(elements))
	for i, e := range elements {
		texts[i] = Plain(e)
	}
	return r.RenderText(plan, texts, indent).String()
}

// RenderText is Render for elements that may carry frozen lines.
func (r Renderer) RenderText(plan layout.Plan, elements []Text, indent string) Text {
	if plan.Empty() || len(elements) == 0 {
		return Plain("[]")
	}

	w := NewWriter(indent, r.Unit)
	w.WriteString("[")

	if plan.Inline {
		for i, e := range elements {
			if i > 0 {
				w.WriteString(", ")
			}
			w.WriteText(e)
		}
		w.WriteString("]")
		return w.Text()
	}

	w.IndentPush()
	next := 0
	for _, size := range plan.Groups {
		if next >= len(elements) {
			break
		}
		w.Newline()
		for j := 0; j < size && next < len(elements); j++ {
			if j > 0 {
				w.WriteString(", ")
			}
			w.WriteText(elements[next])
			next++
		}
		w.WriteString(",")
	}
	// elements the plan did not place get a line each
	for ; next < len(elements); next++ {
		w.Newline()
		w.WriteText(elements[next])
		w.WriteString(",")
	}
	w.IndentPop()
	w.Newline()
	w.WriteString("]")
	return w.Text()
}
