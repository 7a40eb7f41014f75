// Package diag defines the diagnostic model shared by the lexer, the array
// parser and the formatter.
//
// Diagnostic is the central record: severity, a compact numeric code with a
// stable string ID, a short message and the primary source.Span. Producers
// emit through a Reporter so they do not depend on storage; BagReporter
// collects into a Bag which supports sorting and deduplication.
//
// Package diag does no IO. Rendering for the CLI lives in FormatShort, which
// resolves spans through a source.FileSet.
package diag
