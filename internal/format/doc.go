// Package format rewrites array literals of a parsed file according to their
// layout plans and leaves every other byte of the file untouched.
//
// Arrays are rendered bottom-up: a nested array is rendered first and its
// text replaces the array inside the element text of its parent. Only the
// outermost arrays produce edits, which are spliced into the original
// content from the end of the file backwards.
package format
