package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	LexUnterminatedString       Code = 1001
	LexUnterminatedTemplate     Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnterminatedRegex        Code = 1004

	SynUnclosedBracket    Code = 2001
	SynUnexpectedCloser   Code = 2002
	SynSparseArray        Code = 2101 // holes keep the array untouched
	SynCommentsInArray    Code = 2102 // comments between elements keep the array untouched
	SynDuplicateDirective Code = 2103
	SynUnboundDirective   Code = 2104
	SynRestPattern        Code = 2105 // a trailing comma after a rest element is invalid

	CfgInvalidDirective Code = 3001
	CfgInvalidOption    Code = 3002

	IOLoadFileError Code = 4001

	FmtRangeError      Code = 5001
	FmtRoundTripFailed Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedTemplate:     "Unterminated template literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnterminatedRegex:        "Unterminated regular expression",
	SynUnclosedBracket:          "Unclosed bracket",
	SynUnexpectedCloser:         "Unexpected closing bracket",
	SynSparseArray:              "Array with holes left unformatted",
	SynCommentsInArray:          "Array with comments left unformatted",
	SynDuplicateDirective:       "Array already has a directive",
	SynUnboundDirective:         "Directive comment is not attached to an array",
	SynRestPattern:              "Destructuring pattern with a rest element left unformatted",
	CfgInvalidDirective:         "Invalid directive",
	CfgInvalidOption:            "Invalid option value",
	IOLoadFileError:             "I/O error",
	FmtRangeError:               "Range out of bounds",
	FmtRoundTripFailed:          "Formatting round trip failed",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("FMT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
