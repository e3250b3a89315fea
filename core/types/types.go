// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import (
	"fmt"
	"math"
)

// Sign is a zodiac sign index in the range 0-11 (Aries through Pisces)
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs
const SignCount = 12

// DegreesPerSign is the angular width of one sign
const DegreesPerSign = 30.0

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign name
func (s Sign) String() string {
	if s.IsValid() {
		return signNames[s]
	}
	return "unknown"
}

// IsValid checks if the sign index is in range
func (s Sign) IsValid() bool {
	return s >= Aries && s <= Pisces
}

// MarshalText encodes the sign as its name
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Add advances the sign by n places around the zodiac
func (s Sign) Add(n int) Sign {
	return Sign(((int(s)+n)%SignCount + SignCount) % SignCount)
}

// SignFromLongitude derives the sign index from an ecliptic longitude
func SignFromLongitude(longitude float64) Sign {
	return Sign(int(math.Floor(NormalizeLongitude(longitude) / DegreesPerSign)))
}

// NormalizeLongitude wraps a longitude into [0, 360)
func NormalizeLongitude(longitude float64) float64 {
	l := math.Mod(longitude, 360)
	if l < 0 {
		l += 360
	}
	return l
}

// Planet identifies one of the seven classical Ashtakavarga planets
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
)

// PlanetCount is the number of Ashtakavarga target planets
const PlanetCount = 7

var planetNames = [PlanetCount]string{
	"sun", "moon", "mars", "mercury", "jupiter", "venus", "saturn",
}

// String returns the lowercase planet name
func (p Planet) String() string {
	if p.IsValid() {
		return planetNames[p]
	}
	return "unknown"
}

// IsValid checks if the planet index is in range
func (p Planet) IsValid() bool {
	return p >= Sun && p <= Saturn
}

// MarshalText encodes the planet as its name; this also keys JSON maps
// by name rather than by index
func (p Planet) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a planet from its lowercase name
func (p *Planet) UnmarshalText(text []byte) error {
	planet, ok := ParsePlanet(string(text))
	if !ok {
		return fmt.Errorf("unknown planet: %s", text)
	}
	*p = planet
	return nil
}

// Planets lists the seven classical planets in traditional order
func Planets() [PlanetCount]Planet {
	return [PlanetCount]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
}

// ParsePlanet resolves a lowercase planet name
func ParsePlanet(name string) (Planet, bool) {
	for i, n := range planetNames {
		if n == name {
			return Planet(i), true
		}
	}
	return 0, false
}

// PointName identifies a celestial point or chart angle by name.
// Points beyond the classical planets (uranus, neptune, pluto, nodes)
// participate in aspects and patterns but not in Ashtakavarga.
type PointName string

const (
	PointAscendant PointName = "ascendant"
	PointMidheaven PointName = "midheaven"
)

// String returns the string representation
func (p PointName) String() string {
	return string(p)
}

// CelestialPoint is one positioned point on the chart, as supplied by
// the external position provider. Immutable per invocation.
type CelestialPoint struct {
	// Name identifies the point
	Name PointName `json:"name"`

	// Longitude is the ecliptic longitude in degrees, [0, 360)
	Longitude float64 `json:"longitude"`

	// Sign is the zodiac sign index, floor(longitude/30)
	Sign Sign `json:"sign"`

	// Retrograde indicates apparent retrograde motion
	Retrograde bool `json:"retrograde,omitempty"`
}

// ChartInput is the complete positional input for one chart analysis
type ChartInput struct {
	// Points maps point names to their positions
	Points map[PointName]CelestialPoint `json:"points"`

	// Ascendant is the ascendant longitude in degrees
	Ascendant float64 `json:"ascendant"`

	// Midheaven is the midheaven longitude in degrees
	Midheaven float64 `json:"midheaven"`
}

// SignPositions returns the sign of each classical planet present in the
// input. Absent planets are simply missing from the result.
func (c *ChartInput) SignPositions() map[Planet]Sign {
	positions := make(map[Planet]Sign, PlanetCount)
	for name, point := range c.Points {
		if planet, ok := ParsePlanet(string(name)); ok {
			positions[planet] = point.Sign
		}
	}
	return positions
}

// AscendantSign returns the sign hosting the ascendant
func (c *ChartInput) AscendantSign() Sign {
	return SignFromLongitude(c.Ascendant)
}
