// Package aspect - aspect definition tables
// Default orbs follow common Placidus-era practice: 8 degrees for the
// major angular aspects, 6 for the sextile, tighter orbs for minors.
package aspect

// Type names an aspect classification
type Type string

const (
	Conjunction    Type = "conjunction"
	Sextile        Type = "sextile"
	Square         Type = "square"
	Trine          Type = "trine"
	Opposition     Type = "opposition"
	Semisextile    Type = "semisextile"
	Semisquare     Type = "semisquare"
	Quintile       Type = "quintile"
	Sesquiquadrate Type = "sesquiquadrate"
	Quincunx       Type = "quincunx"
)

// Definition describes one configurable aspect: its exact angle and the
// orb tolerance within which a separation still counts as a match
type Definition struct {
	// Name is the aspect type
	Name Type `json:"name"`

	// Angle is the exact aspect angle in degrees, 0-180
	Angle float64 `json:"angle"`

	// Orb is the allowed deviation from the exact angle, in degrees
	Orb float64 `json:"orb"`
}

// MajorDefinitions returns the five Ptolemaic aspects
func MajorDefinitions() []Definition {
	return []Definition{
		{Name: Conjunction, Angle: 0, Orb: 8},
		{Name: Sextile, Angle: 60, Orb: 6},
		{Name: Square, Angle: 90, Orb: 8},
		{Name: Trine, Angle: 120, Orb: 8},
		{Name: Opposition, Angle: 180, Orb: 8},
	}
}

// MinorDefinitions returns the commonly used minor aspects
func MinorDefinitions() []Definition {
	return []Definition{
		{Name: Semisextile, Angle: 30, Orb: 2},
		{Name: Semisquare, Angle: 45, Orb: 2},
		{Name: Quintile, Angle: 72, Orb: 2},
		{Name: Sesquiquadrate, Angle: 135, Orb: 2},
		{Name: Quincunx, Angle: 150, Orb: 3},
	}
}

// DefaultDefinitions returns the default detection table, optionally
// including minor aspects
func DefaultDefinitions(includeMinor bool) []Definition {
	defs := MajorDefinitions()
	if includeMinor {
		defs = append(defs, MinorDefinitions()...)
	}
	return defs
}
