// Package layout decides how many elements of an array literal go on each
// output line.
package layout

import (
	"arrayfmt/internal/directive"
)

// Plan lists the number of elements per output line. The sizes sum to the
// element count and are all positive. An empty plan renders "[]"; an Inline
// plan keeps its single group on the line of the brackets.
type Plan struct {
	Groups []int
	Inline bool
}

// Empty reports whether the plan has no groups.
func (p Plan) Empty() bool {
	return len(p.Groups) == 0
}

// Total returns the number of elements the plan places.
func (p Plan) Total() int {
	total := 0
	for _, g := range p.Groups {
		total += g
	}
	return total
}

// Input describes one array occurrence.
type Input struct {
	// Elements is the number of array elements.
	Elements int
	// Directive is the directive bound to the array, if any.
	Directive directive.Directive
	// DefaultCounts are the configured per-line counts; they apply when no
	// directive is bound and override the threshold.
	DefaultCounts []int
	// DefaultThreshold is the configured wrap threshold.
	DefaultThreshold int
	// Multiline is true when the array starts and ends on different source
	// lines.
	Multiline bool
}

// Compute returns the layout plan for in. A bound directive wins over the
// configured counts, which win over the configured threshold.
func Compute(in Input) Plan {
	if in.Elements <= 0 {
		return Plan{}
	}

	switch in.Directive.Kind {
	case directive.PerLineCounts:
		return Plan{Groups: fill(in.Directive.Counts, in.Elements)}
	case directive.WrapThreshold:
		return byThreshold(in.Elements, in.Directive.Threshold, in.Multiline)
	}

	if len(in.DefaultCounts) > 0 {
		return Plan{Groups: fill(in.DefaultCounts, in.Elements)}
	}
	return byThreshold(in.Elements, in.DefaultThreshold, in.Multiline)
}

// fill applies counts in order and repeats the last one until n elements are
// placed. The final group is cut short to hit n exactly.
func fill(counts []int, n int) []int {
	groups := make([]int, 0, len(counts)+1)
	for i, left := 0, n; left > 0; i++ {
		c := 1
		if len(counts) > 0 {
			c = counts[min(i, len(counts)-1)]
		}
		c = max(1, min(c, left))
		groups = append(groups, c)
		left -= c
	}
	return groups
}

// byThreshold keeps an array of at most threshold elements on one line when
// it was written on one line; otherwise every element gets its own line.
func byThreshold(n, threshold int, multiline bool) Plan {
	if n <= threshold && !multiline {
		return Plan{Groups: []int{n}, Inline: true}
	}
	groups := make([]int, n)
	for i := range groups {
		groups[i] = 1
	}
	return Plan{Groups: groups}
}
