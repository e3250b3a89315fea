// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"

	"astrochart/core/engine"
	"astrochart/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *engine.Result) error
}

// RenderOptions controls which report sections are emitted
type RenderOptions struct {
	// ShowPatterns includes the pattern section
	ShowPatterns bool

	// ShowAshtakavarga includes the Ashtakavarga tables
	ShowAshtakavarga bool
}

// DefaultRenderOptions enables every section
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		ShowPatterns:     true,
		ShowAshtakavarga: true,
	}
}

// NewFormatter returns the formatter for a format type
func NewFormatter(format Format, opts RenderOptions) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &CLIFormatter{opts: opts}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.NotSupported("output format " + string(format))
	}
}
