package token

// keywords lists the reserved words after which an expression starts. A '['
// or '/' following one of them opens an array or a regular expression.
var keywords = map[string]struct{}{
	"await":      {},
	"case":       {},
	"const":      {},
	"default":    {},
	"delete":     {},
	"do":         {},
	"else":       {},
	"export":     {},
	"extends":    {},
	"in":         {},
	"instanceof": {},
	"keyof":      {},
	"let":        {},
	"new":        {},
	"of":         {},
	"return":     {},
	"satisfies":  {},
	"throw":      {},
	"typeof":     {},
	"var":        {},
	"void":       {},
	"yield":      {},
}

// IsKeyword reports whether ident is an expression-introducing keyword.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
