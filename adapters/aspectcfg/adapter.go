// Package aspectcfg loads aspect definition tables from HCL files.
//
// A definitions file overrides the built-in table entirely:
//
//	aspect "conjunction" {
//	  angle = 0
//	  orb   = 10
//	}
package aspectcfg

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"astrochart/core/aspect"
	"astrochart/internal/errors"
)

// aspectBlock is one HCL aspect block
type aspectBlock struct {
	Name  string  `hcl:"name,label"`
	Angle float64 `hcl:"angle"`
	Orb   float64 `hcl:"orb"`
}

// fileBody is the decoded top-level structure
type fileBody struct {
	Aspects []aspectBlock `hcl:"aspect,block"`
}

// Load parses an aspect definitions file into a detection table
func Load(path string) ([]aspect.Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeNotFound, "aspect definitions file", err).
			WithContext("path", path)
	}
	return Decode(src, path)
}

// Decode parses HCL source into a detection table
func Decode(src []byte, filename string) ([]aspect.Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid aspect definitions file", diagError(diags))
	}

	var body fileBody
	if diags := gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, errors.Parsing("invalid aspect block", diagError(diags))
	}

	if len(body.Aspects) == 0 {
		return nil, errors.Input("aspect definitions file declares no aspects")
	}

	defs := make([]aspect.Definition, 0, len(body.Aspects))
	for _, block := range body.Aspects {
		defs = append(defs, aspect.Definition{
			Name:  aspect.Type(block.Name),
			Angle: block.Angle,
			Orb:   block.Orb,
		})
	}
	return defs, nil
}

// diagError reduces HCL diagnostics to a single error value
func diagError(diags hcl.Diagnostics) error {
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			return d
		}
	}
	return diags
}
