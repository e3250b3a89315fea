package aspect

import (
	"math"
	"testing"

	"astrochart/core/types"
)

// TestCalculateExactAngles verifies zero orb for exact separations
func TestCalculateExactAngles(t *testing.T) {
	tests := []struct {
		name  string
		long1 float64
		long2 float64
		def   Definition
	}{
		{name: "exact conjunction", long1: 45, long2: 45, def: Definition{Name: Conjunction, Angle: 0, Orb: 8}},
		{name: "exact trine", long1: 10, long2: 130, def: Definition{Name: Trine, Angle: 120, Orb: 8}},
		{name: "exact square", long1: 0, long2: 90, def: Definition{Name: Square, Angle: 90, Orb: 8}},
		{name: "exact opposition", long1: 0, long2: 180, def: Definition{Name: Opposition, Angle: 180, Orb: 8}},
		{name: "exact opposition reversed", long1: 180, long2: 0, def: Definition{Name: Opposition, Angle: 180, Orb: 8}},
		{name: "exact trine across zero", long1: 350, long2: 110, def: Definition{Name: Trine, Angle: 120, Orb: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aspect, ok := Calculate(tt.long1, tt.long2, tt.def)
			if !ok {
				t.Fatalf("expected a match")
			}
			if aspect.Orb != 0 {
				t.Errorf("expected orb 0, got %v", aspect.Orb)
			}
			if aspect.OrbAbs != 0 {
				t.Errorf("expected orbAbs 0, got %v", aspect.OrbAbs)
			}
			if aspect.Angle != tt.def.Angle {
				t.Errorf("expected angle %v, got %v", tt.def.Angle, aspect.Angle)
			}
		})
	}
}

// TestCalculateOrbBoundary verifies the inclusive orb boundary
func TestCalculateOrbBoundary(t *testing.T) {
	def := Definition{Name: Square, Angle: 90, Orb: 8}

	tests := []struct {
		name    string
		long2   float64
		matches bool
		orbAbs  float64
	}{
		{name: "inside orb", long2: 95, matches: true, orbAbs: 5},
		{name: "exactly at orb", long2: 98, matches: true, orbAbs: 8},
		{name: "just outside orb", long2: 98.5, matches: false},
		{name: "inside orb below", long2: 83, matches: true, orbAbs: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aspect, ok := Calculate(0, tt.long2, def)
			if ok != tt.matches {
				t.Fatalf("expected match=%v, got %v", tt.matches, ok)
			}
			if ok && aspect.OrbAbs != tt.orbAbs {
				t.Errorf("expected orbAbs %v, got %v", tt.orbAbs, aspect.OrbAbs)
			}
		})
	}
}

// TestCalculateSunSquareMoon covers the 10 Aries / 15 Cancer case:
// separation 95 degrees matches a square within an 8 degree orb
func TestCalculateSunSquareMoon(t *testing.T) {
	aspect, ok := Calculate(10, 105, Definition{Name: Square, Angle: 90, Orb: 8})
	if !ok {
		t.Fatal("expected a square")
	}
	if aspect.Angle != 95 {
		t.Errorf("expected separation 95, got %v", aspect.Angle)
	}
	if aspect.OrbAbs != 5 {
		t.Errorf("expected orbAbs 5, got %v", aspect.OrbAbs)
	}
	if aspect.Orb != 5 {
		t.Errorf("expected signed orb +5, got %v", aspect.Orb)
	}
	if aspect.Applying != nil {
		t.Errorf("expected unknown applying state, got %v", *aspect.Applying)
	}
}

// TestCalculateSymmetry verifies argument order does not change orbAbs
func TestCalculateSymmetry(t *testing.T) {
	defs := DefaultDefinitions(true)
	pairs := [][2]float64{
		{10, 105}, {0, 180}, {359, 1}, {250, 10}, {88.25, 1.5},
	}

	for _, pair := range pairs {
		for _, def := range defs {
			forward, okF := Calculate(pair[0], pair[1], def)
			backward, okB := Calculate(pair[1], pair[0], def)
			if okF != okB {
				t.Fatalf("asymmetric match for %v with %s", pair, def.Name)
			}
			if !okF {
				continue
			}
			if forward.OrbAbs != backward.OrbAbs {
				t.Errorf("asymmetric orbAbs for %v with %s: %v vs %v",
					pair, def.Name, forward.OrbAbs, backward.OrbAbs)
			}
			if forward.Angle != backward.Angle {
				t.Errorf("asymmetric angle for %v with %s", pair, def.Name)
			}
		}
	}
}

// TestSeparationWrapsAroundZero verifies no modulo edge errors
func TestSeparationWrapsAroundZero(t *testing.T) {
	tests := []struct {
		long1, long2, want float64
	}{
		{359, 1, 2},
		{1, 359, 2},
		{0, 0, 0},
		{0, 180, 180},
		{180, 0, 180},
		{270, 90, 180},
		{350, 110, 120},
	}

	for _, tt := range tests {
		if got := Separation(tt.long1, tt.long2); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", tt.long1, tt.long2, got, tt.want)
		}
	}
}

// TestCalculateAllPairEnumeration verifies every unordered pair is
// evaluated exactly once, with no self pairs
func TestCalculateAllPairEnumeration(t *testing.T) {
	input := &types.ChartInput{
		Points: map[types.PointName]types.CelestialPoint{
			"sun":  {Name: "sun", Longitude: 0, Sign: types.Aries},
			"moon": {Name: "moon", Longitude: 90, Sign: types.Cancer},
			"mars": {Name: "mars", Longitude: 180, Sign: types.Libra},
		},
		Ascendant: 270,
		Midheaven: 0,
	}

	// A single definition with a full-circle orb matches every pair,
	// so the aspect count equals the pair count: C(5,2) = 10
	detector := NewDetector([]Definition{{Name: Conjunction, Angle: 0, Orb: 180}})
	aspects := detector.CalculateAll(input)

	if len(aspects) != 10 {
		t.Fatalf("expected 10 pair evaluations, got %d", len(aspects))
	}

	seen := make(map[string]bool)
	for _, a := range aspects {
		if a.Point1 == a.Point2 {
			t.Errorf("self pair emitted: %s", a.Point1)
		}
		key1 := string(a.Point1) + "|" + string(a.Point2)
		key2 := string(a.Point2) + "|" + string(a.Point1)
		if seen[key1] || seen[key2] {
			t.Errorf("duplicate pair: %s-%s", a.Point1, a.Point2)
		}
		seen[key1] = true
	}
}

// TestCalculateAllOverlappingOrbs verifies a pair may match more than
// one definition when orbs overlap
func TestCalculateAllOverlappingOrbs(t *testing.T) {
	input := &types.ChartInput{
		Points: map[types.PointName]types.CelestialPoint{
			"sun":   {Name: "sun", Longitude: 0, Sign: types.Aries},
			"venus": {Name: "venus", Longitude: 42, Sign: types.Taurus},
		},
		Ascendant: 200,
		Midheaven: 290,
	}

	detector := NewDetector([]Definition{
		{Name: Semisquare, Angle: 45, Orb: 5},
		{Name: "wide_semisextile", Angle: 30, Orb: 15},
	})
	aspects := detector.CalculateAll(input)

	matched := 0
	for _, a := range aspects {
		if a.Point1 == "sun" && a.Point2 == "venus" {
			matched++
		}
	}
	if matched != 2 {
		t.Errorf("expected sun-venus to match both overlapping definitions, got %d", matched)
	}
}

// TestCalculateAllIncludesChartAngles verifies ascendant and midheaven
// participate in detection
func TestCalculateAllIncludesChartAngles(t *testing.T) {
	input := &types.ChartInput{
		Points: map[types.PointName]types.CelestialPoint{
			"sun": {Name: "sun", Longitude: 100, Sign: types.Cancer},
		},
		Ascendant: 100,
		Midheaven: 10,
	}

	detector := NewDetector(MajorDefinitions())
	aspects := detector.CalculateAll(input)

	foundAsc, foundMC := false, false
	for _, a := range aspects {
		if (a.Point1 == types.PointAscendant || a.Point2 == types.PointAscendant) && a.Type == Conjunction {
			foundAsc = true
		}
		if (a.Point1 == types.PointMidheaven || a.Point2 == types.PointMidheaven) && a.Type == Square {
			foundMC = true
		}
	}
	if !foundAsc {
		t.Error("expected sun conjunct ascendant")
	}
	if !foundMC {
		t.Error("expected a square to the midheaven")
	}
}
