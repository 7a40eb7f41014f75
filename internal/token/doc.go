// Package token defines lexical token kinds and trivia for bracket-and-brace
// sources (JavaScript, TypeScript and their JSX dialects).
// Invariants:
//   - Token.Text is the exact source text of Token.Span.
//   - Comments and whitespace never appear in the token stream; they are
//     attached as Leading trivia to the next significant token (or EOF).
//   - Template literals are a single Template token, including every
//     ${...} substitution inside them.
//   - Only operator-like keywords (return, typeof, const, ...) are Keyword;
//     value words such as this or null are identifiers.
package token
