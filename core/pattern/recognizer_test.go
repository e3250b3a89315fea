package pattern

import (
	"testing"

	"astrochart/core/aspect"
	"astrochart/core/types"
)

// trine builds a trine aspect between two points
func trine(p1, p2 types.PointName) aspect.Aspect {
	return aspect.Aspect{Point1: p1, Point2: p2, Type: aspect.Trine, Angle: 120}
}

func square(p1, p2 types.PointName) aspect.Aspect {
	return aspect.Aspect{Point1: p1, Point2: p2, Type: aspect.Square, Angle: 90}
}

func opposition(p1, p2 types.PointName) aspect.Aspect {
	return aspect.Aspect{Point1: p1, Point2: p2, Type: aspect.Opposition, Angle: 180}
}

// TestDetectGrandTrines verifies the three-point trine triangle
func TestDetectGrandTrines(t *testing.T) {
	tests := []struct {
		name     string
		aspects  []aspect.Aspect
		expected int
	}{
		{
			name: "complete triangle",
			aspects: []aspect.Aspect{
				trine("sun", "moon"), trine("moon", "jupiter"), trine("sun", "jupiter"),
			},
			expected: 1,
		},
		{
			name: "open triangle is not a grand trine",
			aspects: []aspect.Aspect{
				trine("sun", "moon"), trine("moon", "jupiter"),
			},
			expected: 0,
		},
		{
			name:     "fewer than three candidates",
			aspects:  []aspect.Aspect{trine("sun", "moon")},
			expected: 0,
		},
		{
			name:     "no trines at all",
			aspects:  []aspect.Aspect{square("sun", "moon"), opposition("mars", "venus")},
			expected: 0,
		},
		{
			name: "two overlapping triangles",
			aspects: []aspect.Aspect{
				trine("sun", "moon"), trine("moon", "jupiter"), trine("sun", "jupiter"),
				trine("sun", "venus"), trine("moon", "venus"),
			},
			// sun-moon-jupiter and sun-moon-venus both close
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecognizer()
			patterns := r.DetectGrandTrines(tt.aspects)
			if patterns == nil {
				t.Fatal("expected empty slice, got nil")
			}
			if len(patterns) != tt.expected {
				t.Fatalf("expected %d grand trines, got %d", tt.expected, len(patterns))
			}
			for _, p := range patterns {
				if p.Type != GrandTrine {
					t.Errorf("wrong pattern type: %s", p.Type)
				}
				if len(p.Points) != 3 {
					t.Errorf("expected 3 participants, got %d", len(p.Points))
				}
			}
		})
	}
}

// TestGrandTrineFromLongitudes runs the full detection path on three
// points 120 degrees apart
func TestGrandTrineFromLongitudes(t *testing.T) {
	input := &types.ChartInput{
		Points: map[types.PointName]types.CelestialPoint{
			"sun":     {Name: "sun", Longitude: 10, Sign: types.SignFromLongitude(10)},
			"moon":    {Name: "moon", Longitude: 130, Sign: types.SignFromLongitude(130)},
			"jupiter": {Name: "jupiter", Longitude: 250, Sign: types.SignFromLongitude(250)},
		},
		Ascendant: 40,
		Midheaven: 310,
	}

	detector := aspect.NewDetector([]aspect.Definition{{Name: aspect.Trine, Angle: 120, Orb: 8}})
	aspects := detector.CalculateAll(input)

	r := NewRecognizer()
	patterns := r.DetectGrandTrines(aspects)
	if len(patterns) != 1 {
		t.Fatalf("expected exactly one grand trine, got %d", len(patterns))
	}

	members := map[types.PointName]bool{}
	for _, p := range patterns[0].Points {
		members[p] = true
	}
	for _, want := range []types.PointName{"sun", "moon", "jupiter"} {
		if !members[want] {
			t.Errorf("missing participant %s", want)
		}
	}
}

// TestDetectTSquares verifies apex detection and canonical dedup
func TestDetectTSquares(t *testing.T) {
	t.Run("basic t-square", func(t *testing.T) {
		aspects := []aspect.Aspect{
			opposition("sun", "moon"),
			square("sun", "mars"),
			square("moon", "mars"),
		}
		r := NewRecognizer()
		patterns := r.DetectTSquares(aspects)
		if len(patterns) != 1 {
			t.Fatalf("expected 1 t-square, got %d", len(patterns))
		}
		if patterns[0].Apex != "mars" {
			t.Errorf("expected apex mars, got %s", patterns[0].Apex)
		}
	})

	t.Run("duplicate participant sets collapse", func(t *testing.T) {
		// Both oppositions describe the same participant set via
		// reversed endpoints
		aspects := []aspect.Aspect{
			opposition("sun", "moon"),
			opposition("moon", "sun"),
			square("sun", "mars"),
			square("moon", "mars"),
		}
		r := NewRecognizer()
		patterns := r.DetectTSquares(aspects)
		if len(patterns) != 1 {
			t.Fatalf("expected dedup to 1 t-square, got %d", len(patterns))
		}
	})

	t.Run("apex must square both ends", func(t *testing.T) {
		aspects := []aspect.Aspect{
			opposition("sun", "moon"),
			square("sun", "mars"),
		}
		r := NewRecognizer()
		patterns := r.DetectTSquares(aspects)
		if len(patterns) != 0 {
			t.Fatalf("expected no t-square, got %d", len(patterns))
		}
	})

	t.Run("no oppositions", func(t *testing.T) {
		r := NewRecognizer()
		patterns := r.DetectTSquares([]aspect.Aspect{square("sun", "mars")})
		if patterns == nil || len(patterns) != 0 {
			t.Fatalf("expected empty slice, got %v", patterns)
		}
	})
}

// TestDetectStelliums verifies sign grouping
func TestDetectStelliums(t *testing.T) {
	points := map[types.PointName]types.CelestialPoint{
		"sun":     {Name: "sun", Longitude: 5, Sign: types.Aries},
		"mercury": {Name: "mercury", Longitude: 12, Sign: types.Aries},
		"venus":   {Name: "venus", Longitude: 28, Sign: types.Aries},
		"moon":    {Name: "moon", Longitude: 95, Sign: types.Cancer},
		"mars":    {Name: "mars", Longitude: 100, Sign: types.Cancer},
	}

	r := NewRecognizer()
	patterns := r.DetectStelliums(points)

	if len(patterns) != 1 {
		t.Fatalf("expected exactly one stellium, got %d", len(patterns))
	}
	p := patterns[0]
	if p.Type != Stellium {
		t.Errorf("wrong type: %s", p.Type)
	}
	if p.Sign != "Aries" {
		t.Errorf("expected Aries stellium, got %s", p.Sign)
	}
	if len(p.Points) != 3 {
		t.Errorf("expected 3 participants, got %d", len(p.Points))
	}
}

// TestDetectStelliumsTwoSigns verifies one record per qualifying sign
func TestDetectStelliumsTwoSigns(t *testing.T) {
	points := map[types.PointName]types.CelestialPoint{
		"sun":     {Name: "sun", Longitude: 5, Sign: types.Aries},
		"mercury": {Name: "mercury", Longitude: 12, Sign: types.Aries},
		"venus":   {Name: "venus", Longitude: 28, Sign: types.Aries},
		"moon":    {Name: "moon", Longitude: 95, Sign: types.Cancer},
		"mars":    {Name: "mars", Longitude: 100, Sign: types.Cancer},
		"jupiter": {Name: "jupiter", Longitude: 110, Sign: types.Cancer},
		"saturn":  {Name: "saturn", Longitude: 119, Sign: types.Cancer},
	}

	r := NewRecognizer()
	patterns := r.DetectStelliums(points)
	if len(patterns) != 2 {
		t.Fatalf("expected two stelliums, got %d", len(patterns))
	}
	for _, p := range patterns {
		switch p.Sign {
		case "Aries":
			if len(p.Points) != 3 {
				t.Errorf("Aries stellium should have 3 points, got %d", len(p.Points))
			}
		case "Cancer":
			if len(p.Points) != 4 {
				t.Errorf("Cancer stellium should have 4 points, got %d", len(p.Points))
			}
		default:
			t.Errorf("unexpected stellium sign %s", p.Sign)
		}
	}
}

// TestUnimplementedDetectors verifies the stub contract: empty, not nil
func TestUnimplementedDetectors(t *testing.T) {
	r := NewRecognizer()
	aspects := []aspect.Aspect{
		opposition("sun", "moon"), square("sun", "mars"), square("moon", "mars"),
	}

	if got := r.DetectGrandCrosses(aspects); got == nil || len(got) != 0 {
		t.Errorf("grand cross stub should return empty slice, got %v", got)
	}
	if got := r.DetectYods(aspects); got == nil || len(got) != 0 {
		t.Errorf("yod stub should return empty slice, got %v", got)
	}
}
