package report

import (
	"encoding/json"
	"io"

	"routelint/internal/analysis"
)

// JSON writes the pretty-printed document to w.
func JSON(w io.Writer, res *analysis.Result, meta ToolMeta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDocument(res, meta))
}
