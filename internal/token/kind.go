package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	Keyword
	Number
	String
	Template
	Regex

	LBracket // [
	RBracket // ]
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	Comma    // ,

	// Punct is any other operator or punctuation; Text tells which.
	Punct
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	EOF:      "EOF",
	Ident:    "Ident",
	Keyword:  "Keyword",
	Number:   "Number",
	String:   "String",
	Template: "Template",
	Regex:    "Regex",
	LBracket: "LBracket",
	RBracket: "RBracket",
	LParen:   "LParen",
	RParen:   "RParen",
	LBrace:   "LBrace",
	RBrace:   "RBrace",
	Comma:    "Comma",
	Punct:    "Punct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
