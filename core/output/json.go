// Package output - machine-readable JSON report
package output

import (
	"encoding/json"
	"io"

	"astrochart/core/engine"
)

// JSONFormatter renders the full result as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
