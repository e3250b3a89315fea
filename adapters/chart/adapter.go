// Package chart loads chart-position files produced by the external
// position provider into engine inputs.
package chart

import (
	"encoding/json"
	"os"

	"astrochart/core/types"
	"astrochart/internal/errors"
)

// pointRecord is the wire form of one positioned point. Longitude is a
// pointer so a point with no position data can be skipped rather than
// misread as 0 degrees.
type pointRecord struct {
	Longitude  *float64 `json:"longitude"`
	Sign       *int     `json:"sign"`
	Retrograde bool     `json:"retrograde"`
}

// fileRecord is the wire form of a chart-position file
type fileRecord struct {
	Points    map[string]pointRecord `json:"points"`
	Ascendant float64                `json:"ascendant"`
	Midheaven float64                `json:"midheaven"`
}

// Load reads a chart-position JSON file
func Load(path string) (*types.ChartInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeNotFound, "chart file", err).
			WithContext("path", path)
	}
	return Decode(data)
}

// Decode parses serialized chart positions. Points lacking a longitude
// are skipped; sign indexes are derived from the longitude when absent.
func Decode(data []byte) (*types.ChartInput, error) {
	var record fileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Parsing("invalid chart file", err)
	}

	input := &types.ChartInput{
		Points:    make(map[types.PointName]types.CelestialPoint, len(record.Points)),
		Ascendant: record.Ascendant,
		Midheaven: record.Midheaven,
	}

	for name, rec := range record.Points {
		if rec.Longitude == nil {
			continue
		}
		sign := types.SignFromLongitude(*rec.Longitude)
		if rec.Sign != nil {
			sign = types.Sign(*rec.Sign)
		}
		input.Points[types.PointName(name)] = types.CelestialPoint{
			Name:       types.PointName(name),
			Longitude:  *rec.Longitude,
			Sign:       sign,
			Retrograde: rec.Retrograde,
		}
	}
	return input, nil
}
