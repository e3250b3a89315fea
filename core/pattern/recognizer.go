// Package pattern detects multi-point geometric configurations from the
// aspect set and raw sign positions.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"astrochart/core/aspect"
	"astrochart/core/types"
)

// Type names a pattern classification
type Type string

const (
	GrandTrine Type = "grand_trine"
	TSquare    Type = "t_square"
	Stellium   Type = "stellium"
	GrandCross Type = "grand_cross"
	Yod        Type = "yod"
)

// Pattern is one detected configuration
type Pattern struct {
	// Type is the pattern classification
	Type Type `json:"pattern_type"`

	// Points lists the participating points
	Points []types.PointName `json:"participant_points"`

	// Apex is the focal point, where the pattern has one
	Apex types.PointName `json:"apex,omitempty"`

	// Sign annotates sign-bound patterns (stellium)
	Sign string `json:"sign,omitempty"`

	// Description is a short human-readable summary
	Description string `json:"description"`
}

// Recognizer detects patterns from aspects and point positions
type Recognizer struct{}

// NewRecognizer creates a pattern recognizer
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// DetectAll runs every pattern detector and concatenates the results
func (r *Recognizer) DetectAll(aspects []aspect.Aspect, points map[types.PointName]types.CelestialPoint) []Pattern {
	patterns := make([]Pattern, 0)
	patterns = append(patterns, r.DetectGrandTrines(aspects)...)
	patterns = append(patterns, r.DetectTSquares(aspects)...)
	patterns = append(patterns, r.DetectStelliums(points)...)
	patterns = append(patterns, r.DetectGrandCrosses(aspects)...)
	patterns = append(patterns, r.DetectYods(aspects)...)
	return patterns
}

// pairKey canonicalizes an unordered point pair
func pairKey(a, b types.PointName) string {
	if b < a {
		a, b = b, a
	}
	return string(a) + "|" + string(b)
}

// participantKey canonicalizes an unordered participant set
func participantKey(points ...types.PointName) string {
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = string(p)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// DetectGrandTrines finds every triple of points whose three pairwise
// relations are all trines. The candidate pool is bounded by the chart
// size, so the cubic scan stays cheap.
func (r *Recognizer) DetectGrandTrines(aspects []aspect.Aspect) []Pattern {
	trined := make(map[string]bool)
	seen := make(map[types.PointName]bool)
	var pool []types.PointName

	for _, a := range aspects {
		if a.Type != aspect.Trine {
			continue
		}
		trined[pairKey(a.Point1, a.Point2)] = true
		for _, p := range []types.PointName{a.Point1, a.Point2} {
			if !seen[p] {
				seen[p] = true
				pool = append(pool, p)
			}
		}
	}

	patterns := make([]Pattern, 0)
	if len(pool) < 3 {
		return patterns
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })

	for i := 0; i < len(pool); i++ {
		for j := i + 1; j < len(pool); j++ {
			if !trined[pairKey(pool[i], pool[j])] {
				continue
			}
			for k := j + 1; k < len(pool); k++ {
				if trined[pairKey(pool[i], pool[k])] && trined[pairKey(pool[j], pool[k])] {
					trio := []types.PointName{pool[i], pool[j], pool[k]}
					patterns = append(patterns, Pattern{
						Type:        GrandTrine,
						Points:      trio,
						Description: fmt.Sprintf("Grand Trine between %s, %s and %s", trio[0], trio[1], trio[2]),
					})
				}
			}
		}
	}
	return patterns
}

// DetectTSquares finds opposition pairs with an apex point square to both
// ends. Equivalent participant sets are deduplicated with a canonical
// sorted key.
func (r *Recognizer) DetectTSquares(aspects []aspect.Aspect) []Pattern {
	squared := make(map[string]bool)
	squarePartners := make(map[types.PointName][]types.PointName)
	var oppositions []aspect.Aspect

	for _, a := range aspects {
		switch a.Type {
		case aspect.Square:
			squared[pairKey(a.Point1, a.Point2)] = true
			squarePartners[a.Point1] = append(squarePartners[a.Point1], a.Point2)
			squarePartners[a.Point2] = append(squarePartners[a.Point2], a.Point1)
		case aspect.Opposition:
			oppositions = append(oppositions, a)
		}
	}

	patterns := make([]Pattern, 0)
	emitted := make(map[string]bool)

	for _, opp := range oppositions {
		for _, apex := range squarePartners[opp.Point1] {
			if apex == opp.Point2 {
				continue
			}
			if !squared[pairKey(apex, opp.Point2)] {
				continue
			}
			key := participantKey(opp.Point1, opp.Point2, apex)
			if emitted[key] {
				continue
			}
			emitted[key] = true
			patterns = append(patterns, Pattern{
				Type:        TSquare,
				Points:      []types.PointName{opp.Point1, opp.Point2, apex},
				Apex:        apex,
				Description: fmt.Sprintf("T-Square with %s at the apex of the %s-%s opposition", apex, opp.Point1, opp.Point2),
			})
		}
	}
	return patterns
}

// DetectStelliums groups points by sign; any sign hosting three or more
// points emits one pattern listing all of them
func (r *Recognizer) DetectStelliums(points map[types.PointName]types.CelestialPoint) []Pattern {
	bySign := make(map[types.Sign][]types.PointName)
	for name, point := range points {
		bySign[point.Sign] = append(bySign[point.Sign], name)
	}

	patterns := make([]Pattern, 0)
	for sign := types.Aries; sign <= types.Pisces; sign++ {
		members := bySign[sign]
		if len(members) < 3 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
		patterns = append(patterns, Pattern{
			Type:        Stellium,
			Points:      members,
			Sign:        sign.String(),
			Description: fmt.Sprintf("Stellium of %d points in %s", len(members), sign),
		})
	}
	return patterns
}

// DetectGrandCrosses is not yet implemented and always returns an empty
// list. Callers may rely on the empty result.
func (r *Recognizer) DetectGrandCrosses(aspects []aspect.Aspect) []Pattern {
	return []Pattern{}
}

// DetectYods is not yet implemented and always returns an empty list.
// Callers may rely on the empty result.
func (r *Recognizer) DetectYods(aspects []aspect.Aspect) []Pattern {
	return []Pattern{}
}
