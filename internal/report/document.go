// Package report renders an analysis.Result as console text, JSON, SARIF,
// or a self-contained HTML document.
package report

import (
	"time"

	"routelint/internal/analysis"
)

// ToolMeta identifies the tool in structured outputs.
type ToolMeta struct {
	Name    string
	Version string
}

// Summary is the stats block of the JSON and HTML outputs.
// TotalIssues always equals len(Document.Issues).
type Summary struct {
	TotalFiles      int            `json:"totalFiles"`
	AnalyzedFiles   int            `json:"analyzedFiles"`
	FilesWithIssues int            `json:"filesWithIssues"`
	TotalIssues     int            `json:"totalIssues"`
	ByKind          map[string]int `json:"byKind"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// IssueJSON is the wire shape of one issue.
type IssueJSON struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	File     string `json:"file"`
	Line     uint32 `json:"line,omitempty"`
	Col      uint32 `json:"col,omitempty"`
	Message  string `json:"message"`
	Pattern  string `json:"pattern,omitempty"`
	Count    int    `json:"count,omitempty"`
	Fix      string `json:"fix,omitempty"`
}

// RecommendationJSON is the wire shape of one recommendation.
type RecommendationJSON struct {
	File     string `json:"file,omitempty"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action,omitempty"`
}

// Document is the root of the JSON output and the data embedded into the
// HTML report.
type Document struct {
	Tool            string                     `json:"tool"`
	Version         string                     `json:"version"`
	GeneratedAt     string                     `json:"generatedAt"`
	Root            string                     `json:"root"`
	Summary         Summary                    `json:"summary"`
	Issues          []IssueJSON                `json:"issues"`
	Recommendations []RecommendationJSON       `json:"recommendations"`
	Dependencies    []analysis.Dependency      `json:"dependencies,omitempty"`
	RouteConfigs    []analysis.RouteFileConfig `json:"routeConfigs,omitempty"`
}

// BuildDocument shapes a Result for serialization. Diagnostics from the
// run itself (walk or read warnings) never appear here; those are console
// stderr only.
func BuildDocument(res *analysis.Result, meta ToolMeta) Document {
	doc := Document{
		Tool:            meta.Name,
		Version:         meta.Version,
		GeneratedAt:     res.GeneratedAt.Format(time.RFC3339),
		Root:            res.Root,
		Issues:          make([]IssueJSON, 0, res.TotalIssues()),
		Recommendations: make([]RecommendationJSON, 0, len(res.Recommendations)),
		Dependencies:    res.Dependencies,
		RouteConfigs:    res.RouteConfigs,
		Summary: Summary{
			TotalFiles:      res.Stats.Total,
			AnalyzedFiles:   res.Stats.Analyzed,
			FilesWithIssues: res.Stats.WithIssues,
			TotalIssues:     res.TotalIssues(),
			ByKind:          res.ByKind,
			BySeverity:      res.BySeverity,
		},
	}

	for _, iss := range res.Issues() {
		out := IssueJSON{
			Type:     iss.Kind.ID(),
			Severity: iss.Severity.String(),
			File:     iss.File,
			Message:  iss.Message,
			Pattern:  iss.Pattern,
			Count:    iss.Count,
			Fix:      iss.Fix,
		}
		if !iss.Span.Empty() {
			start, _ := res.FileSet.Resolve(iss.Span)
			out.Line = start.Line
			out.Col = start.Col
		}
		doc.Issues = append(doc.Issues, out)
	}

	for _, rec := range res.Recommendations {
		doc.Recommendations = append(doc.Recommendations, RecommendationJSON{
			File:     rec.File,
			Priority: rec.Priority.String(),
			Message:  rec.Message,
			Action:   rec.Action,
		})
	}
	return doc
}
