package diag

// Severity orders diagnostics from informational to fatal for the file.
type Severity uint8

const (
	// SevInfo notes a construct that was left as written, such as a frozen
	// array.
	SevInfo Severity = iota
	SevWarning
	// SevError keeps the file from being formatted.
	SevError
)

var severityNames = [...]struct{ upper, lower string }{
	SevInfo:    {"INFO", "info"},
	SevWarning: {"WARNING", "warning"},
	SevError:   {"ERROR", "error"},
}

// String returns the upper-case name used by pretty and JSON output.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s].upper
	}
	return "UNKNOWN"
}

// Label returns the lower-case name used by the short format.
func (s Severity) Label() string {
	if int(s) < len(severityNames) {
		return severityNames[s].lower
	}
	return "info"
}
