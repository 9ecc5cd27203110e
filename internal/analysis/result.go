package analysis

import (
	"time"

	"routelint/internal/diag"
	"routelint/internal/source"
)

// FileStats counts candidates, analyzed files, and files with findings.
// Invariant: WithIssues <= Analyzed <= Total.
type FileStats struct {
	Total      int
	Analyzed   int
	WithIssues int
}

// Result is the root aggregate handed to every reporter.
type Result struct {
	Root        string
	GeneratedAt time.Time
	Stats       FileStats

	// Issues in insertion order: file discovery order, rule order within
	// a file.
	Bag             *diag.Bag
	Recommendations []diag.Recommendation

	// ByKind / BySeverity count issues per rule ID and per severity name.
	// BySeverity always carries all three keys, zero-initialized.
	ByKind     map[string]int
	BySeverity map[string]int

	// Extended-mode blocks; nil/empty otherwise.
	RouteConfigs []RouteFileConfig
	Dependencies []Dependency

	// FileSet resolves issue spans to line/column for the reporters.
	FileSet *source.FileSet
}

// Issues returns the ordered issue list.
func (r *Result) Issues() []diag.Issue {
	return r.Bag.Items()
}

// TotalIssues returns the issue count.
func (r *Result) TotalIssues() int {
	return r.Bag.Len()
}

// HasIssues reports whether the scan found anything.
func (r *Result) HasIssues() bool {
	return r.Bag.Len() > 0
}

// aggregate fills the count maps and, in extended mode, the global
// recommendations and the dependency table.
func (r *Result) aggregate(extended bool, unmemoizedFiles int) {
	r.ByKind = make(map[string]int)
	r.BySeverity = map[string]int{
		diag.SevHigh.String():   0,
		diag.SevMedium.String(): 0,
		diag.SevLow.String():    0,
	}
	for _, iss := range r.Bag.Items() {
		r.ByKind[iss.Kind.ID()]++
		r.BySeverity[iss.Severity.String()]++
	}

	if !extended {
		return
	}

	if r.Bag.HasSeverity(diag.SevHigh) {
		r.Recommendations = append(r.Recommendations, diag.Recommendation{
			Priority: diag.SevHigh,
			Message:  "address the high-severity routing issues immediately; they remount whole route trees",
		})
	}
	if r.Bag.CountSeverity(diag.SevMedium) > 3 {
		r.Recommendations = append(r.Recommendations, diag.Recommendation{
			Priority: diag.SevMedium,
			Message:  "consider a broader refactoring pass over the routing modules",
		})
	}
	if r.Stats.Analyzed > 10 && unmemoizedFiles > 5 {
		r.Recommendations = append(r.Recommendations, diag.Recommendation{
			Priority: diag.SevMedium,
			Message:  "memoize route arrays across the codebase; unmemoized routes are widespread",
		})
	}

	r.Dependencies = detectDependencies(r.RouteConfigs)
}
