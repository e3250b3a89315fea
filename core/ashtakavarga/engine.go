// Package ashtakavarga computes the benefic-point (bindu) scoring system:
// per-planet Bhinnashtakavarga distributions, their Sarvashtakavarga sum,
// transit scoring and house-strength classification.
package ashtakavarga

import (
	"sort"

	"github.com/shopspring/decimal"

	"astrochart/core/types"
)

// Bhinna is one planet's 12-sign bindu distribution
type Bhinna struct {
	// Planet is the target planet
	Planet types.Planet `json:"planet"`

	// BindusBySign holds the bindu count per sign, 0-8 each
	BindusBySign [types.SignCount]int `json:"bindus_by_sign"`

	// Total is the sum over all signs
	Total int `json:"total"`

	// StrongestSigns and WeakestSigns hold the max/min scoring signs
	StrongestSigns []types.Sign `json:"strongest_signs"`
	WeakestSigns   []types.Sign `json:"weakest_signs"`
}

// Sarva is the combined distribution summed across all seven planets
type Sarva struct {
	// BindusBySign holds the summed bindu count per sign
	BindusBySign [types.SignCount]int `json:"bindus_by_sign"`

	// Total is the sum over all signs (337 for a complete chart)
	Total int `json:"total"`

	// Average is the mean bindus per sign
	Average decimal.Decimal `json:"average"`

	// StrongestSigns score above the threshold, WeakestSigns below
	StrongestSigns []types.Sign `json:"strongest_signs"`
	WeakestSigns   []types.Sign `json:"weakest_signs"`
}

// TransitQuality classifies a sign's transit score
type TransitQuality string

const (
	TransitExcellent    TransitQuality = "excellent"
	TransitGood         TransitQuality = "good"
	TransitAverage      TransitQuality = "average"
	TransitBelowAverage TransitQuality = "below_average"
	TransitDifficult    TransitQuality = "difficult"
)

// TransitScore is the classified transit outlook for one sign
type TransitScore struct {
	// Sign is the scored sign
	Sign types.Sign `json:"sign"`

	// Bindus is the Sarvashtakavarga count for the sign
	Bindus int `json:"bindus"`

	// Quality is the classical banding
	Quality TransitQuality `json:"quality"`

	// Description is a short human-readable summary
	Description string `json:"description"`
}

// HouseStrength classifies one house counted from the ascendant
type HouseStrength struct {
	// House is the house number, 1-12
	House int `json:"house"`

	// Sign is the sign occupying the house
	Sign types.Sign `json:"sign"`

	// Bindus is the Sarvashtakavarga count for that sign
	Bindus int `json:"bindus"`

	// Strength is the coarse classification
	Strength string `json:"strength"`
}

// BhinnaForPlanet computes the target planet's bindu vector. Each
// (target, reference, offset) triple contributes exactly one increment;
// references with no known sign are skipped.
func BhinnaForPlanet(target types.Planet, positions map[types.Planet]types.Sign, ascendant *types.Sign) [types.SignCount]int {
	var bindus [types.SignCount]int
	rules := Rules(target)

	for ref := RefSun; ref <= RefAscendant; ref++ {
		var refSign types.Sign
		if planet, ok := ref.Planet(); ok {
			sign, known := positions[planet]
			if !known {
				continue
			}
			refSign = sign
		} else {
			if ascendant == nil {
				continue
			}
			refSign = *ascendant
		}

		for _, offset := range rules[ref] {
			bindus[refSign.Add(offset-1)]++
		}
	}
	return bindus
}

// NewBhinna computes the full Bhinnashtakavarga record for one planet
func NewBhinna(target types.Planet, positions map[types.Planet]types.Sign, ascendant *types.Sign) Bhinna {
	vector := BhinnaForPlanet(target, positions, ascendant)

	total := 0
	maxBindus, minBindus := vector[0], vector[0]
	for _, b := range vector {
		total += b
		if b > maxBindus {
			maxBindus = b
		}
		if b < minBindus {
			minBindus = b
		}
	}

	bhinna := Bhinna{
		Planet:         target,
		BindusBySign:   vector,
		Total:          total,
		StrongestSigns: []types.Sign{},
		WeakestSigns:   []types.Sign{},
	}
	for sign, b := range vector {
		if b == maxBindus {
			bhinna.StrongestSigns = append(bhinna.StrongestSigns, types.Sign(sign))
		}
		if b == minBindus {
			bhinna.WeakestSigns = append(bhinna.WeakestSigns, types.Sign(sign))
		}
	}
	return bhinna
}

// CalculateAll computes every planet's Bhinna and the combined Sarva.
// An optional explicit threshold replaces the mean when classifying
// strongest/weakest signs; pass nil for the default.
func CalculateAll(positions map[types.Planet]types.Sign, ascendant *types.Sign, threshold *int) (map[types.Planet]Bhinna, Sarva) {
	bhinnas := make(map[types.Planet]Bhinna, types.PlanetCount)
	var sarva Sarva

	for _, planet := range types.Planets() {
		bhinna := NewBhinna(planet, positions, ascendant)
		bhinnas[planet] = bhinna
		for sign, b := range bhinna.BindusBySign {
			sarva.BindusBySign[sign] += b
		}
		sarva.Total += bhinna.Total
	}

	sarva.Average = decimal.NewFromInt(int64(sarva.Total)).
		Div(decimal.NewFromInt(types.SignCount)).Round(2)

	limit := decimal.NewFromInt(int64(sarva.Total)).Div(decimal.NewFromInt(types.SignCount))
	if threshold != nil {
		limit = decimal.NewFromInt(int64(*threshold))
	}

	sarva.StrongestSigns = []types.Sign{}
	sarva.WeakestSigns = []types.Sign{}
	for sign, b := range sarva.BindusBySign {
		count := decimal.NewFromInt(int64(b))
		if count.GreaterThanOrEqual(limit) {
			sarva.StrongestSigns = append(sarva.StrongestSigns, types.Sign(sign))
		} else {
			sarva.WeakestSigns = append(sarva.WeakestSigns, types.Sign(sign))
		}
	}
	return bhinnas, sarva
}

// transitBands are the fixed classical bindu boundaries. They are
// domain-standard and must not drift.
var transitBands = []struct {
	min         int
	quality     TransitQuality
	description string
}{
	{30, TransitExcellent, "highly favorable for new undertakings"},
	{28, TransitGood, "favorable, supports steady progress"},
	{25, TransitAverage, "mixed results, proceed with care"},
	{22, TransitBelowAverage, "obstacles likely, avoid major commitments"},
}

// GetTransitScore classifies one sign of a Sarvashtakavarga vector
// against the classical 30/28/25/22 bands
func GetTransitScore(sarva Sarva, sign types.Sign) TransitScore {
	bindus := sarva.BindusBySign[sign]
	score := TransitScore{
		Sign:        sign,
		Bindus:      bindus,
		Quality:     TransitDifficult,
		Description: "challenging period, patience required",
	}
	for _, band := range transitBands {
		if bindus >= band.min {
			score.Quality = band.quality
			score.Description = band.description
			break
		}
	}
	return score
}

// HouseStrengths classifies houses 1-12 counted from the ascendant sign,
// using the same bindu bands with coarser labels
func HouseStrengths(sarva Sarva, ascendant types.Sign) map[int]HouseStrength {
	strengths := make(map[int]HouseStrength, types.SignCount)
	for house := 1; house <= types.SignCount; house++ {
		sign := ascendant.Add(house - 1)
		bindus := sarva.BindusBySign[sign]

		label := "challenging"
		switch {
		case bindus >= 30:
			label = "excellent"
		case bindus >= 28:
			label = "good"
		case bindus >= 25:
			label = "average"
		}

		strengths[house] = HouseStrength{
			House:    house,
			Sign:     sign,
			Bindus:   bindus,
			Strength: label,
		}
	}
	return strengths
}

// Summary aggregates the headline findings across the full Ashtakavarga
type Summary struct {
	// StrongestPlanet and WeakestPlanet rank planets by Bhinna total
	StrongestPlanet types.Planet `json:"strongest_planet"`
	WeakestPlanet   types.Planet `json:"weakest_planet"`

	// StrongestSign and WeakestSign rank signs by Sarva count
	StrongestSign types.Sign `json:"strongest_sign"`
	WeakestSign   types.Sign `json:"weakest_sign"`

	// TransitFavorableSigns score good or better for transits
	TransitFavorableSigns []types.Sign `json:"transit_favorable_signs"`

	// HouseStrength classifies each house from the ascendant
	HouseStrength map[int]HouseStrength `json:"house_strength"`
}

// NewSummary derives the headline summary. Ties break toward the
// traditional planet order and the earlier sign.
func NewSummary(bhinnas map[types.Planet]Bhinna, sarva Sarva, ascendant types.Sign) Summary {
	summary := Summary{
		TransitFavorableSigns: []types.Sign{},
		HouseStrength:         HouseStrengths(sarva, ascendant),
	}

	planets := types.Planets()
	strongest, weakest := planets[0], planets[0]
	for _, planet := range planets[1:] {
		if bhinnas[planet].Total > bhinnas[strongest].Total {
			strongest = planet
		}
		if bhinnas[planet].Total < bhinnas[weakest].Total {
			weakest = planet
		}
	}
	summary.StrongestPlanet = strongest
	summary.WeakestPlanet = weakest

	summary.StrongestSign = types.Aries
	summary.WeakestSign = types.Aries
	for sign := types.Taurus; sign <= types.Pisces; sign++ {
		if sarva.BindusBySign[sign] > sarva.BindusBySign[summary.StrongestSign] {
			summary.StrongestSign = sign
		}
		if sarva.BindusBySign[sign] < sarva.BindusBySign[summary.WeakestSign] {
			summary.WeakestSign = sign
		}
	}

	for sign := types.Aries; sign <= types.Pisces; sign++ {
		score := GetTransitScore(sarva, sign)
		if score.Quality == TransitExcellent || score.Quality == TransitGood {
			summary.TransitFavorableSigns = append(summary.TransitFavorableSigns, sign)
		}
	}
	sort.Slice(summary.TransitFavorableSigns, func(i, j int) bool {
		return summary.TransitFavorableSigns[i] < summary.TransitFavorableSigns[j]
	})
	return summary
}
