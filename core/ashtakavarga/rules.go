// Package ashtakavarga - classical benefic rule tables
// The offsets below are the standard Parashari Ashtakavarga benefic
// places: for each target planet, the houses counted from each reference
// point (seven planets plus the ascendant) that award one bindu. The
// grand total across all seven tables is the classical 337.
package ashtakavarga

import "astrochart/core/types"

// Reference indexes a rule-table row: the seven planets in their
// types.Planet order, then the ascendant as the eighth row
type Reference int

const (
	RefSun Reference = iota
	RefMoon
	RefMars
	RefMercury
	RefJupiter
	RefVenus
	RefSaturn
	RefAscendant
)

// ReferenceCount is the number of reference points per target planet
const ReferenceCount = 8

var referenceNames = [ReferenceCount]string{
	"sun", "moon", "mars", "mercury", "jupiter", "venus", "saturn", "ascendant",
}

// String returns the reference point name
func (r Reference) String() string {
	if r >= RefSun && r <= RefAscendant {
		return referenceNames[r]
	}
	return "unknown"
}

// Planet returns the planet backing a planetary reference row.
// The second return is false for the ascendant row.
func (r Reference) Planet() (types.Planet, bool) {
	if r >= RefSun && r <= RefSaturn {
		return types.Planet(r), true
	}
	return 0, false
}

// RuleTable holds, for one target planet, the benefic house offsets
// (1-12) counted from each reference point
type RuleTable [ReferenceCount][]int

// beneficRules is indexed by target planet. Row order within each table
// matches the Reference constants.
var beneficRules = [types.PlanetCount]RuleTable{
	// Sun (48 bindus)
	types.Sun: {
		RefSun:       {1, 2, 4, 7, 8, 9, 10, 11},
		RefMoon:      {3, 6, 10, 11},
		RefMars:      {1, 2, 4, 7, 8, 9, 10, 11},
		RefMercury:   {3, 5, 6, 9, 10, 11, 12},
		RefJupiter:   {5, 6, 9, 11},
		RefVenus:     {6, 7, 12},
		RefSaturn:    {1, 2, 4, 7, 8, 9, 10, 11},
		RefAscendant: {3, 4, 6, 10, 11, 12},
	},
	// Moon (49 bindus)
	types.Moon: {
		RefSun:       {3, 6, 7, 8, 10, 11},
		RefMoon:      {1, 3, 6, 7, 10, 11},
		RefMars:      {2, 3, 5, 6, 9, 10, 11},
		RefMercury:   {1, 3, 4, 5, 7, 8, 10, 11},
		RefJupiter:   {1, 4, 7, 8, 10, 11, 12},
		RefVenus:     {3, 4, 5, 7, 9, 10, 11},
		RefSaturn:    {3, 5, 6, 11},
		RefAscendant: {3, 6, 10, 11},
	},
	// Mars (39 bindus)
	types.Mars: {
		RefSun:       {3, 5, 6, 10, 11},
		RefMoon:      {3, 6, 11},
		RefMars:      {1, 2, 4, 7, 8, 10, 11},
		RefMercury:   {3, 5, 6, 11},
		RefJupiter:   {6, 10, 11, 12},
		RefVenus:     {6, 8, 11, 12},
		RefSaturn:    {1, 4, 7, 8, 9, 10, 11},
		RefAscendant: {1, 3, 6, 10, 11},
	},
	// Mercury (54 bindus)
	types.Mercury: {
		RefSun:       {5, 6, 9, 11, 12},
		RefMoon:      {2, 4, 6, 8, 10, 11},
		RefMars:      {1, 2, 4, 7, 8, 9, 10, 11},
		RefMercury:   {1, 3, 5, 6, 9, 10, 11, 12},
		RefJupiter:   {6, 8, 11, 12},
		RefVenus:     {1, 2, 3, 4, 5, 8, 9, 11},
		RefSaturn:    {1, 2, 4, 7, 8, 9, 10, 11},
		RefAscendant: {1, 2, 4, 6, 8, 10, 11},
	},
	// Jupiter (56 bindus)
	types.Jupiter: {
		RefSun:       {1, 2, 3, 4, 7, 8, 9, 10, 11},
		RefMoon:      {2, 5, 7, 9, 11},
		RefMars:      {1, 2, 4, 7, 8, 10, 11},
		RefMercury:   {1, 2, 4, 5, 6, 9, 10, 11},
		RefJupiter:   {1, 2, 3, 4, 7, 8, 10, 11},
		RefVenus:     {2, 5, 6, 9, 10, 11},
		RefSaturn:    {3, 5, 6, 12},
		RefAscendant: {1, 2, 4, 5, 6, 7, 9, 10, 11},
	},
	// Venus (52 bindus)
	types.Venus: {
		RefSun:       {8, 11, 12},
		RefMoon:      {1, 2, 3, 4, 5, 8, 9, 11, 12},
		RefMars:      {3, 5, 6, 9, 11, 12},
		RefMercury:   {3, 5, 6, 9, 11},
		RefJupiter:   {5, 8, 9, 10, 11},
		RefVenus:     {1, 2, 3, 4, 5, 8, 9, 10, 11},
		RefSaturn:    {3, 4, 5, 8, 9, 10, 11},
		RefAscendant: {1, 2, 3, 4, 5, 8, 9, 11},
	},
	// Saturn (39 bindus)
	types.Saturn: {
		RefSun:       {1, 2, 4, 7, 8, 10, 11},
		RefMoon:      {3, 6, 11},
		RefMars:      {3, 5, 6, 10, 11, 12},
		RefMercury:   {6, 8, 9, 10, 11, 12},
		RefJupiter:   {5, 6, 11, 12},
		RefVenus:     {6, 11, 12},
		RefSaturn:    {3, 5, 6, 11},
		RefAscendant: {1, 3, 4, 6, 10, 11},
	},
}

// Rules returns the benefic rule table for a target planet
func Rules(target types.Planet) RuleTable {
	return beneficRules[target]
}

// MaxBindus returns the total bindus a complete chart awards the target
// planet, i.e. the sum of its rule-list lengths
func MaxBindus(target types.Planet) int {
	total := 0
	for _, offsets := range beneficRules[target] {
		total += len(offsets)
	}
	return total
}
