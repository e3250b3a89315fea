// Package aspect detects pairwise angular relationships between chart points.
package aspect

import (
	"math"
	"sort"

	"astrochart/core/types"
)

// Aspect is one detected angular relationship between two points
type Aspect struct {
	// Point1 and Point2 name the pair, in detection order
	Point1 types.PointName `json:"point1"`
	Point2 types.PointName `json:"point2"`

	// Type is the matched aspect definition
	Type Type `json:"aspect_type"`

	// Angle is the actual angular separation, 0-180
	Angle float64 `json:"angle"`

	// Orb is the signed deviation from the exact aspect angle
	Orb float64 `json:"orb"`

	// OrbAbs is the absolute deviation
	OrbAbs float64 `json:"orb_abs"`

	// Applying reports whether the aspect is forming rather than
	// separating. Nil when velocity data is unavailable.
	Applying *bool `json:"applying"`
}

// Separation returns the angular separation between two longitudes,
// folded into 0-180 degrees
func Separation(long1, long2 float64) float64 {
	diff := math.Mod(long2-long1, 360)
	if diff < 0 {
		diff += 360
	}
	if diff > 180 {
		diff -= 360
	}
	return math.Abs(diff)
}

// Calculate tests a single pair of longitudes against one definition.
// The orb boundary is inclusive: a deviation exactly equal to the orb
// still matches.
func Calculate(long1, long2 float64, def Definition) (Aspect, bool) {
	angle := Separation(long1, long2)
	deviation := math.Abs(angle - def.Angle)
	if deviation > def.Orb {
		return Aspect{}, false
	}
	return Aspect{
		Type:   def.Name,
		Angle:  angle,
		Orb:    angle - def.Angle,
		OrbAbs: deviation,
	}, true
}

// Detector computes all aspects for a chart against a definition table
type Detector struct {
	definitions []Definition
}

// NewDetector creates a detector with the given definition table
func NewDetector(definitions []Definition) *Detector {
	return &Detector{definitions: definitions}
}

// positioned is a resolved point participating in detection
type positioned struct {
	name      types.PointName
	longitude float64
}

// CalculateAll evaluates every unordered point pair exactly once against
// every configured definition. The pool is the union of chart points and
// the ascendant/midheaven angles. More than one definition may match the
// same pair when orbs overlap; that is permitted, not deduplicated.
func (d *Detector) CalculateAll(input *types.ChartInput) []Aspect {
	pool := make([]positioned, 0, len(input.Points)+2)
	for name, point := range input.Points {
		pool = append(pool, positioned{name: name, longitude: point.Longitude})
	}
	pool = append(pool,
		positioned{name: types.PointAscendant, longitude: input.Ascendant},
		positioned{name: types.PointMidheaven, longitude: input.Midheaven},
	)

	// Map iteration order is random; sort for reproducible output
	sort.Slice(pool, func(i, j int) bool {
		return pool[i].name < pool[j].name
	})

	aspects := make([]Aspect, 0)
	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			for _, def := range d.definitions {
				aspect, ok := Calculate(pool[i].longitude, pool[j].longitude, def)
				if !ok {
					continue
				}
				aspect.Point1 = pool[i].name
				aspect.Point2 = pool[j].name
				aspects = append(aspects, aspect)
			}
		}
	}
	return aspects
}
