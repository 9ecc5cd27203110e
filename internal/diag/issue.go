package diag

import "routelint/internal/source"

// Issue is a single detected pattern occurrence in one file.
// Identified by (file, kind, occurrence); never deduplicated.
type Issue struct {
	Kind     Kind
	Severity Severity
	File     string // workspace-relative path
	Span     source.Span
	Message  string
	Pattern  string // sample of the matched text, when a rule anchors on one
	Count    int    // occurrence count, when a rule counts matches
	Fix      string // fix template ID, when one applies
}

// Recommendation is a suggested remediation, either scoped to one file or
// derived globally from aggregate thresholds.
type Recommendation struct {
	File     string // empty for global recommendations
	Priority Severity
	Message  string
	Action   string // optional copy-paste action or fix template reference
}
