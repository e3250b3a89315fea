// Package output - human-readable CLI report
package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"astrochart/core/ashtakavarga"
	"astrochart/core/engine"
	"astrochart/core/types"
)

// CLIFormatter renders a plain-text report for terminals
type CLIFormatter struct {
	opts RenderOptions
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report
func (f *CLIFormatter) Render(w io.Writer, result *engine.Result) error {
	if err := f.renderAspects(w, result); err != nil {
		return err
	}
	if f.opts.ShowPatterns {
		if err := f.renderPatterns(w, result); err != nil {
			return err
		}
	}
	if f.opts.ShowAshtakavarga {
		if err := f.renderAshtakavarga(w, result); err != nil {
			return err
		}
	}
	return nil
}

func (f *CLIFormatter) renderAspects(w io.Writer, result *engine.Result) error {
	fmt.Fprintf(w, "Aspects (%d)\n", len(result.Aspects))
	for _, a := range result.Aspects {
		applying := ""
		if a.Applying != nil {
			if *a.Applying {
				applying = " applying"
			} else {
				applying = " separating"
			}
		}
		fmt.Fprintf(w, "  %-10s %-14s %-10s orb %+.2f°%s\n",
			a.Point1, a.Type, a.Point2, a.Orb, applying)
	}
	return nil
}

func (f *CLIFormatter) renderPatterns(w io.Writer, result *engine.Result) error {
	fmt.Fprintf(w, "\nPatterns (%d)\n", len(result.Patterns))
	for _, p := range result.Patterns {
		fmt.Fprintf(w, "  [%s] %s\n", p.Type, p.Description)
	}
	return nil
}

func (f *CLIFormatter) renderAshtakavarga(w io.Writer, result *engine.Result) error {
	av := result.Ashtakavarga
	fmt.Fprintf(w, "\nAshtakavarga\n")
	fmt.Fprintf(w, "  %-8s", "")
	for sign := types.Aries; sign <= types.Pisces; sign++ {
		fmt.Fprintf(w, " %3.3s", sign.String())
	}
	fmt.Fprintf(w, "  total\n")

	for _, planet := range types.Planets() {
		bhinna := av.Bhinnashtakavarga[planet]
		fmt.Fprintf(w, "  %-8s", planet)
		for _, b := range bhinna.BindusBySign {
			fmt.Fprintf(w, " %3d", b)
		}
		fmt.Fprintf(w, "  %5d\n", bhinna.Total)
	}

	sarva := av.Sarvashtakavarga
	fmt.Fprintf(w, "  %-8s", "sarva")
	for _, b := range sarva.BindusBySign {
		fmt.Fprintf(w, " %3d", b)
	}
	fmt.Fprintf(w, "  %5d\n", sarva.Total)
	fmt.Fprintf(w, "  average per sign: %s\n", sarva.Average.StringFixed(2))

	f.renderSummary(w, av)
	return nil
}

func (f *CLIFormatter) renderSummary(w io.Writer, av engine.AshtakavargaResult) {
	summary := av.Summary
	fmt.Fprintf(w, "\nSummary\n")
	fmt.Fprintf(w, "  strongest planet: %s   weakest planet: %s\n",
		summary.StrongestPlanet, summary.WeakestPlanet)
	fmt.Fprintf(w, "  strongest sign:   %s   weakest sign:   %s\n",
		summary.StrongestSign, summary.WeakestSign)

	favorable := make([]string, 0, len(summary.TransitFavorableSigns))
	for _, sign := range summary.TransitFavorableSigns {
		favorable = append(favorable, sign.String())
	}
	fmt.Fprintf(w, "  transit favorable: %v\n", favorable)

	fmt.Fprintf(w, "\nHouse strength\n")
	houses := make([]int, 0, len(summary.HouseStrength))
	for house := range summary.HouseStrength {
		houses = append(houses, house)
	}
	sort.Ints(houses)

	for _, house := range houses {
		hs := summary.HouseStrength[house]
		share := signShare(av.Sarvashtakavarga, hs.Sign)
		fmt.Fprintf(w, "  house %2d  %-12s %2d bindus (%s%%)  %s\n",
			hs.House, hs.Sign, hs.Bindus, share.StringFixed(1), hs.Strength)
	}
}

// signShare returns one sign's percentage of the Sarvashtakavarga total
func signShare(sarva ashtakavarga.Sarva, sign types.Sign) decimal.Decimal {
	if sarva.Total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(sarva.BindusBySign[sign])).
		Div(decimal.NewFromInt(int64(sarva.Total))).
		Mul(decimal.NewFromInt(100)).
		Round(1)
}
