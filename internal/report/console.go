package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"routelint/internal/analysis"
	"routelint/internal/diag"
)

// ConsoleOpts configures the console reporter.
type ConsoleOpts struct {
	Color   bool
	Verbose bool
}

type palette struct {
	high    *color.Color
	medium  *color.Color
	low     *color.Color
	header  *color.Color
	success *color.Color
	dim     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		high:    color.New(color.FgRed, color.Bold),
		medium:  color.New(color.FgYellow),
		low:     color.New(color.FgCyan),
		header:  color.New(color.Bold),
		success: color.New(color.FgGreen, color.Bold),
		dim:     color.New(color.Faint),
	}
	if !enabled {
		for _, c := range []*color.Color{p.high, p.medium, p.low, p.header, p.success, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevHigh:
		return p.high
	case diag.SevMedium:
		return p.medium
	default:
		return p.low
	}
}

// Console prints the human-readable report: header, optional per-file
// breakdown, issues grouped by severity, recommendations, closing summary.
func Console(w io.Writer, res *analysis.Result, opts ConsoleOpts) {
	p := newPalette(opts.Color)

	fmt.Fprintln(w, p.header.Sprintf("routelint %s", res.Root))
	fmt.Fprintf(w, "scanned %d candidate files, analyzed %d\n\n", res.Stats.Total, res.Stats.Analyzed)

	if opts.Verbose {
		printPerFile(w, res, p)
	}

	if !res.HasIssues() {
		fmt.Fprintln(w, p.success.Sprint("no route remount issues found"))
		return
	}

	for _, sev := range diag.Severities() {
		printSeverityGroup(w, res, sev, p)
	}

	if len(res.Recommendations) > 0 {
		fmt.Fprintln(w, p.header.Sprint("recommendations"))
		for _, rec := range res.Recommendations {
			scope := "all"
			if rec.File != "" {
				scope = rec.File
			}
			fmt.Fprintf(w, "  [%s] %s: %s\n", p.severity(rec.Priority).Sprint(rec.Priority.String()), scope, rec.Message)
			if rec.Action != "" {
				fmt.Fprintf(w, "        %s\n", p.dim.Sprint(rec.Action))
			}
		}
		fmt.Fprintln(w)
	}

	files := res.Bag.Files()
	fmt.Fprintf(w, "found %s in %d file(s)\n",
		p.header.Sprintf("%d issue(s)", res.TotalIssues()), len(files))
}

func printPerFile(w io.Writer, res *analysis.Result, p palette) {
	counts := make(map[string]int)
	var order []string
	for _, iss := range res.Issues() {
		if counts[iss.File] == 0 {
			order = append(order, iss.File)
		}
		counts[iss.File]++
	}
	if len(order) == 0 {
		return
	}
	fmt.Fprintln(w, p.header.Sprint("per file"))
	for _, file := range order {
		fmt.Fprintf(w, "  %s: %d issue(s)\n", file, counts[file])
	}
	fmt.Fprintln(w)
}

func printSeverityGroup(w io.Writer, res *analysis.Result, sev diag.Severity, p palette) {
	var group []diag.Issue
	for _, iss := range res.Issues() {
		if iss.Severity == sev {
			group = append(group, iss)
		}
	}
	if len(group) == 0 {
		return
	}

	fmt.Fprintln(w, p.severity(sev).Sprintf("%s (%d)", sev.String(), len(group)))
	for _, iss := range group {
		loc := iss.File
		if !iss.Span.Empty() {
			start, _ := res.FileSet.Resolve(iss.Span)
			loc = fmt.Sprintf("%s:%d:%d", iss.File, start.Line, start.Col)
		}
		fmt.Fprintf(w, "  %s %s %s\n", loc, p.dim.Sprint(iss.Kind.ID()), iss.Message)
		if iss.Pattern != "" {
			fmt.Fprintf(w, "      pattern: %s\n", p.dim.Sprint(iss.Pattern))
		}
		if iss.Count > 1 {
			fmt.Fprintf(w, "      occurrences: %d\n", iss.Count)
		}
	}
	fmt.Fprintln(w)
}
