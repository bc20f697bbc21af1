package diag

import "strings"

// Severity defines the importance of a diagnostic. Lexical errors are
// always SevError; the lower levels exist for driver messages.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityLabels = [...]string{"info", "warning", "error"}

// String returns the upper-case name, e.g. "ERROR".
func (s Severity) String() string {
	if int(s) < len(severityLabels) {
		return strings.ToUpper(severityLabels[s])
	}
	return "UNKNOWN"
}

// SeverityLabel returns the lowercase label used in rendered output.
// Unknown severities render as "info".
func SeverityLabel(sev Severity) string {
	if int(sev) < len(severityLabels) {
		return severityLabels[sev]
	}
	return severityLabels[SevInfo]
}
