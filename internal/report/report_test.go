package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"routelint/internal/analysis"
	"routelint/internal/rules"
)

var testMeta = ToolMeta{Name: "routelint", Version: "0.1.0-test"}

func scanFixture(t *testing.T, extended bool) *analysis.Result {
	t.Helper()
	root := t.TempDir()
	content := `import { BrowserRouter } from "react-router-dom";
const Ctx = createContext(null);
const client = new QueryClient();
const el = routes.map(({ path, Component }) => null);
console.log(el);
export const App = () => <BrowserRouter>{el}</BrowserRouter>;
`
	if err := os.WriteFile(filepath.Join(root, "AppRoutes.tsx"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	s := &analysis.Scanner{Rules: rules.All(), Extended: extended}
	res, err := s.Run(root)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func emptyFixture(t *testing.T) *analysis.Result {
	t.Helper()
	s := &analysis.Scanner{Rules: rules.All()}
	res, err := s.Run(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestJSONRoundTrip(t *testing.T) {
	res := scanFixture(t, true)

	var buf bytes.Buffer
	if err := JSON(&buf, res, testMeta); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if doc.Summary.TotalIssues != len(doc.Issues) {
		t.Errorf("summary.totalIssues %d != len(issues) %d", doc.Summary.TotalIssues, len(doc.Issues))
	}
	sum := doc.Summary.BySeverity["high"] + doc.Summary.BySeverity["medium"] + doc.Summary.BySeverity["low"]
	if sum != len(doc.Issues) {
		t.Errorf("severity counts %d != issue count %d", sum, len(doc.Issues))
	}
	if doc.Root != res.Root {
		t.Errorf("root = %q, want %q", doc.Root, res.Root)
	}
	if len(doc.Dependencies) != 4 {
		t.Errorf("extended output must carry the dependency table, got %d entries", len(doc.Dependencies))
	}
	for _, iss := range doc.Issues {
		if iss.Line == 0 {
			t.Errorf("issue %s has no line anchor", iss.Type)
		}
	}
}

func TestJSONEmptyRunIsValid(t *testing.T) {
	res := emptyFixture(t)

	var buf bytes.Buffer
	if err := JSON(&buf, res, testMeta); err != nil {
		t.Fatal(err)
	}
	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("empty-summary output must still parse: %v", err)
	}
	if doc.Summary.TotalIssues != 0 || len(doc.Issues) != 0 {
		t.Errorf("expected empty issue list, got %+v", doc.Summary)
	}
	if doc.Summary.BySeverity["high"] != 0 {
		t.Error("severity keys must be present and zero")
	}
}

func TestConsoleReport(t *testing.T) {
	res := scanFixture(t, false)

	var buf bytes.Buffer
	Console(&buf, res, ConsoleOpts{Verbose: true})
	out := buf.String()

	for _, want := range []string{
		"routelint ",
		"per file",
		"high (",
		"dynamic-route-generation",
		"recommendations",
		"AppRoutes.tsx",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q\n%s", want, out)
		}
	}
	if !strings.Contains(out, "issue(s)") {
		t.Error("missing closing summary")
	}
}

func TestConsoleCleanRun(t *testing.T) {
	res := emptyFixture(t)

	var buf bytes.Buffer
	Console(&buf, res, ConsoleOpts{})
	if !strings.Contains(buf.String(), "no route remount issues found") {
		t.Errorf("expected the success line, got:\n%s", buf.String())
	}
}

func TestSarifOutput(t *testing.T) {
	res := scanFixture(t, false)

	var buf bytes.Buffer
	if err := Sarif(&buf, res, testMeta); err != nil {
		t.Fatal(err)
	}

	var log struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID string `json:"ruleId"`
				Level  string `json:"level"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &log); err != nil {
		t.Fatalf("SARIF output does not parse: %v", err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected log shape: version %q, %d runs", log.Version, len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "routelint" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Tool.Driver.Rules) != len(rules.All()) {
		t.Errorf("rule metadata count = %d, want %d", len(run.Tool.Driver.Rules), len(rules.All()))
	}
	if len(run.Results) != res.TotalIssues() {
		t.Errorf("result count %d != issue count %d", len(run.Results), res.TotalIssues())
	}
	for _, r := range run.Results {
		switch r.Level {
		case "error", "warning", "note":
		default:
			t.Errorf("unexpected level %q", r.Level)
		}
	}
}

func TestHTMLReportWritten(t *testing.T) {
	res := scanFixture(t, true)
	out := filepath.Join(t.TempDir(), "nested", "dir", "report.html")

	if err := HTML(res, testMeta, out); err != nil {
		t.Fatalf("HTML: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"window.__ROUTELINT_DATA__",
		"__routelintMonitor",
		"dynamic-route-generation",
		"Dependencies",
		"Debug Tools",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML report missing %q", want)
		}
	}
}

func TestHTMLEmptyRun(t *testing.T) {
	res := emptyFixture(t)
	out := filepath.Join(t.TempDir(), "report.html")
	if err := HTML(res, testMeta, out); err != nil {
		t.Fatalf("empty run must still render a valid document: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "No issues found.") {
		t.Error("expected the empty-issues placeholder")
	}
}

func TestDefaultHTMLPath(t *testing.T) {
	if got := DefaultHTMLPath("/scan", ""); got != filepath.Join("/scan", "route-analysis", "report.html") {
		t.Errorf("default path = %q", got)
	}
	if got := DefaultHTMLPath("/scan", "reports"); got != filepath.Join("/scan", "reports", "report.html") {
		t.Errorf("configured relative dir = %q", got)
	}
	if got := DefaultHTMLPath("/scan", "/abs/reports"); got != filepath.Join("/abs", "reports", "report.html") {
		t.Errorf("configured absolute dir = %q", got)
	}
}
