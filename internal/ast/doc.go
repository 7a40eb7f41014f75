// Package ast holds the array-literal tree of a source file. Only array
// literals, their elements and the comments that steer their layout are
// modeled; everything else stays source text.
package ast
