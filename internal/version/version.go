// Package version carries the routelint build fingerprint.
package version

import "github.com/fatih/color"

// Plain is the semantic version without terminal coloring. Structured
// outputs (JSON report metadata, SARIF driver block, version --format
// json) embed this form.
const Plain = "0.1.0-dev"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version renders Plain with each component colored for the terminal.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"
)

// Release metadata, injected at build time via -ldflags; empty in
// development builds.
var (
	GitCommit  = ""
	GitMessage = ""
	BuildDate  = ""
)
