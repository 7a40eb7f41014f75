package directive

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Parse interprets the body that follows a marker of the given kind.
func Parse(kind Kind, body string) (Directive, error) {
	fields := splitFields(body)
	switch kind {
	case PerLineCounts:
		counts, err := parseCounts(body, fields)
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: PerLineCounts, Counts: counts}, nil

	case WrapThreshold:
		if len(fields) != 1 {
			return Directive{}, thresholdError(strings.TrimSpace(body), "an integer")
		}
		n, err := parseThreshold(fields[0])
		if err != nil {
			return Directive{}, err
		}
		return Directive{Kind: WrapThreshold, Threshold: n}, nil
	}
	return Directive{}, nil
}

// splitFields splits on runs of whitespace and commas, so "2 1 3",
// "2,1,3" and "2, 1, 3" are the same list.
func splitFields(body string) []string {
	return strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseCounts(body string, fields []string) ([]int, error) {
	if len(fields) == 0 {
		return nil, perLineError(strings.TrimSpace(body))
	}
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := atoi(f)
		if err != nil || n <= 0 {
			return nil, perLineError(f)
		}
		counts = append(counts, n)
	}
	return counts, nil
}

func parseThreshold(field string) (int, error) {
	n, err := atoi(field)
	if err != nil {
		return 0, thresholdError(field, "an integer")
	}
	if n < 0 {
		return 0, thresholdError(field, "a non-negative integer")
	}
	return n, nil
}

// atoi accepts compatibility digits such as full-width numerals.
func atoi(s string) (int, error) {
	return strconv.Atoi(norm.NFKC.String(s))
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
