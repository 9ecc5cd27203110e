package report

import (
	_ "embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"routelint/internal/analysis"
)

//go:embed assets/report.html.tmpl
var htmlTemplateText string

//go:embed assets/monitor.js
var monitorJS string

// DefaultHTMLDir is the directory the HTML report lands in when no
// explicit output path is given, resolved under the scan root.
const DefaultHTMLDir = "route-analysis"

// DefaultHTMLName is the report file name inside DefaultHTMLDir.
const DefaultHTMLName = "report.html"

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateText))

type htmlData struct {
	Doc       Document
	MonitorJS template.JS
}

// HTML renders the self-contained report document to outPath, creating
// parent directories as needed.
func HTML(res *analysis.Result, meta ToolMeta, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	data := htmlData{
		Doc:       BuildDocument(res, meta),
		MonitorJS: template.JS(monitorJS), // #nosec G203 -- embedded asset, not user input
	}
	if err := htmlTemplate.Execute(f, data); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("failed to render report: %w", err)
	}
	return f.Close()
}

// DefaultHTMLPath resolves the default report location for a scan root,
// honoring a configured output directory.
func DefaultHTMLPath(root, configuredDir string) string {
	dir := configuredDir
	if dir == "" {
		dir = DefaultHTMLDir
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Join(dir, DefaultHTMLName)
}
