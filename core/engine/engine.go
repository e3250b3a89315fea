// Package engine provides the primary chart-analysis API.
// CLI is a thin wrapper around this engine.
package engine

import (
	"go.uber.org/zap"

	"astrochart/core/ashtakavarga"
	"astrochart/core/aspect"
	"astrochart/core/pattern"
	"astrochart/core/types"
	"astrochart/internal/errors"
	"astrochart/internal/logging"
)

// Options configures one analysis run
type Options struct {
	// AspectDefinitions overrides the default detection table.
	// Nil selects the defaults.
	AspectDefinitions []aspect.Definition

	// IncludeMinorAspects adds the minor aspect table when the
	// defaults are in use
	IncludeMinorAspects bool

	// StrengthThreshold replaces the mean when classifying
	// strongest/weakest Sarvashtakavarga signs
	StrengthThreshold *int
}

// AshtakavargaResult bundles the complete bindu scoring output
type AshtakavargaResult struct {
	// Bhinnashtakavarga maps each planet to its own distribution
	Bhinnashtakavarga map[types.Planet]ashtakavarga.Bhinna `json:"bhinnashtakavarga"`

	// Sarvashtakavarga is the combined distribution
	Sarvashtakavarga ashtakavarga.Sarva `json:"sarvashtakavarga"`

	// Summary holds the headline findings
	Summary ashtakavarga.Summary `json:"summary"`
}

// Result is the complete chart analysis output
type Result struct {
	// Aspects lists every detected pairwise relationship
	Aspects []aspect.Aspect `json:"aspects"`

	// Patterns lists every detected configuration
	Patterns []pattern.Pattern `json:"patterns"`

	// Ashtakavarga holds the bindu scoring output
	Ashtakavarga AshtakavargaResult `json:"ashtakavarga"`
}

// Engine computes chart analyses. It holds no per-chart state and is a
// pure function of its inputs given the fixed rule tables.
type Engine struct{}

// New creates an analysis engine
func New() *Engine {
	return &Engine{}
}

// Analyze validates the input and produces the full analysis. Either the
// complete result is returned or an error is raised before any output
// escapes; there is no partial-failure state.
func (e *Engine) Analyze(input *types.ChartInput, opts Options) (*Result, error) {
	if err := Validate(input, opts); err != nil {
		return nil, err
	}

	defs := opts.AspectDefinitions
	if defs == nil {
		defs = aspect.DefaultDefinitions(opts.IncludeMinorAspects)
	}

	detector := aspect.NewDetector(defs)
	aspects := detector.CalculateAll(input)

	recognizer := pattern.NewRecognizer()
	patterns := recognizer.DetectAll(aspects, input.Points)

	positions := input.SignPositions()
	ascendant := input.AscendantSign()
	bhinnas, sarva := ashtakavarga.CalculateAll(positions, &ascendant, opts.StrengthThreshold)

	logging.Debug("chart analysis complete",
		zap.Int("points", len(input.Points)),
		zap.Int("aspects", len(aspects)),
		zap.Int("patterns", len(patterns)),
		zap.Int("sarva_total", sarva.Total),
	)

	return &Result{
		Aspects:  aspects,
		Patterns: patterns,
		Ashtakavarga: AshtakavargaResult{
			Bhinnashtakavarga: bhinnas,
			Sarvashtakavarga:  sarva,
			Summary:           ashtakavarga.NewSummary(bhinnas, sarva, ascendant),
		},
	}, nil
}

// Validate fails fast on malformed input before any computation runs
func Validate(input *types.ChartInput, opts Options) error {
	if input == nil {
		return errors.Input("chart input is required")
	}

	for name, point := range input.Points {
		if name == "" {
			return errors.Input("point name must not be empty")
		}
		if point.Longitude < 0 || point.Longitude >= 360 {
			return errors.Inputf("point %s: longitude %.4f out of range [0, 360)", name, point.Longitude).
				WithContext("point", string(name))
		}
		if !point.Sign.IsValid() {
			return errors.Inputf("point %s: sign index %d out of range [0, 11]", name, point.Sign).
				WithContext("point", string(name))
		}
		if types.SignFromLongitude(point.Longitude) != point.Sign {
			return errors.Inputf("point %s: sign %s does not match longitude %.4f", name, point.Sign, point.Longitude).
				WithContext("point", string(name))
		}
	}

	for _, angle := range []struct {
		name  string
		value float64
	}{
		{"ascendant", input.Ascendant},
		{"midheaven", input.Midheaven},
	} {
		if angle.value < 0 || angle.value >= 360 {
			return errors.Inputf("%s longitude %.4f out of range [0, 360)", angle.name, angle.value)
		}
	}

	for _, def := range opts.AspectDefinitions {
		if def.Name == "" {
			return errors.Input("aspect definition name must not be empty")
		}
		if def.Angle < 0 || def.Angle > 180 {
			return errors.Inputf("aspect %s: angle %.2f out of range [0, 180]", def.Name, def.Angle)
		}
		if def.Orb < 0 {
			return errors.Inputf("aspect %s: orb %.2f must not be negative", def.Name, def.Orb)
		}
	}

	return nil
}
