// Package directive recognizes layout directives embedded in comments and
// validates the equivalent configuration options.
//
// Two marker vocabularies exist. A per-line marker is followed by one or more
// positive counts:
//
//	// arrayfmt-elements-per-line: 2 1 3
//
// A threshold marker is followed by exactly one non-negative integer:
//
//	// arrayfmt-wrap-threshold: 3
//
// The marker decides the directive kind; counts may be separated by spaces,
// commas or both. JSDoc style comments may capitalize the marker and spread
// the counts over several lines.
package directive
