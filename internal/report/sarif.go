package report

import (
	"encoding/json"
	"io"

	"routelint/internal/analysis"
	"routelint/internal/diag"
	"routelint/internal/rules"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine"`
	StartColumn uint32 `json:"startColumn"`
	EndLine     uint32 `json:"endLine"`
	EndColumn   uint32 `json:"endColumn"`
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevHigh:
		return "error"
	case diag.SevMedium:
		return "warning"
	default:
		return "note"
	}
}

// Sarif writes a minimal SARIF 2.1.0 run: driver metadata, the rule
// table, and one result per issue.
func Sarif(w io.Writer, res *analysis.Result, meta ToolMeta) error {
	table := rules.All()
	sarifRules := make([]sarifRule, 0, len(table))
	for _, r := range table {
		sarifRules = append(sarifRules, sarifRule{
			ID:               r.Kind.ID(),
			ShortDescription: sarifMessage{Text: r.Summary},
		})
	}

	results := make([]sarifResult, 0, res.TotalIssues())
	for _, iss := range res.Issues() {
		result := sarifResult{
			RuleID:  iss.Kind.ID(),
			Level:   sarifLevel(iss.Severity),
			Message: sarifMessage{Text: iss.Message},
		}
		loc := sarifLocation{
			PhysicalLocation: sarifPhysicalLocation{
				ArtifactLocation: sarifArtifactLocation{URI: iss.File},
			},
		}
		if !iss.Span.Empty() {
			start, end := res.FileSet.Resolve(iss.Span)
			loc.PhysicalLocation.Region = &sarifRegion{
				StartLine:   start.Line,
				StartColumn: start.Col,
				EndLine:     end.Line,
				EndColumn:   end.Col,
			}
		}
		result.Locations = append(result.Locations, loc)
		results = append(results, result)
	}

	log := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:    meta.Name,
				Version: meta.Version,
				Rules:   sarifRules,
			}},
			Results: results,
		}},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}
