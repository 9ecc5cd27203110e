package diag

// Severity ranks the assumed impact of an issue.
type Severity uint8

const (
	// SevLow marks hygiene findings that rarely cause remounts on their own.
	SevLow Severity = iota
	// SevMedium marks patterns that contribute to remount churn.
	SevMedium
	// SevHigh marks patterns known to force full route remounts.
	SevHigh
)

func (s Severity) String() string {
	switch s {
	case SevHigh:
		return "high"
	case SevMedium:
		return "medium"
	case SevLow:
		return "low"
	}
	return "unknown"
}

// ParseSeverity maps the three wire names back to a Severity.
func ParseSeverity(v string) (Severity, bool) {
	switch v {
	case "high":
		return SevHigh, true
	case "medium":
		return SevMedium, true
	case "low":
		return SevLow, true
	}
	return SevLow, false
}

// Severities lists all levels from most to least severe, the order every
// reporter groups by.
func Severities() []Severity {
	return []Severity{SevHigh, SevMedium, SevLow}
}
