// Package cmd - analyze command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"astrochart/adapters/aspectcfg"
	"astrochart/adapters/chart"
	"astrochart/core/aspect"
	"astrochart/core/engine"
	"astrochart/core/output"
	"astrochart/internal/config"
	"astrochart/internal/logging"
)

var (
	outputFormat string
	aspectsFile  string
	includeMinor bool
	threshold    int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <chart.json>",
	Short: "Analyze a chart-position file",
	Long: `Compute aspects, patterns and Ashtakavarga scores for a chart.

The argument is a JSON file of point positions as emitted by the
position provider.

Examples:
  astrochart analyze chart.json
  astrochart analyze --format json chart.json
  astrochart analyze --aspects orbs.hcl chart.json
  astrochart analyze --threshold 28 chart.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	analyzeCmd.Flags().StringVarP(&aspectsFile, "aspects", "a", "", "HCL file overriding the aspect definition table")
	analyzeCmd.Flags().BoolVarP(&includeMinor, "minor", "m", false, "include minor aspects")
	analyzeCmd.Flags().IntVarP(&threshold, "threshold", "t", 0, "explicit bindu threshold for strongest/weakest signs")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("chart file does not exist: %s", path)
	}

	input, err := chart.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load chart: %w", err)
	}
	logging.Info("loaded chart", zap.String("path", path), zap.Int("points", len(input.Points)))

	opts := engine.Options{
		IncludeMinorAspects: includeMinor || cfg.Aspects.IncludeMinor,
		StrengthThreshold:   cfg.Ashtakavarga.StrengthThreshold,
	}
	if cmd.Flags().Changed("threshold") {
		opts.StrengthThreshold = &threshold
	}

	if defs, err := loadAspectDefinitions(cfg); err != nil {
		return err
	} else if defs != nil {
		opts.AspectDefinitions = defs
	}

	result, err := engine.New().Analyze(input, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.NewFormatter(format, output.RenderOptions{
		ShowPatterns:     cfg.Output.ShowPatterns,
		ShowAshtakavarga: cfg.Output.ShowAshtakavarga,
	})
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, result)
}

// loadAspectDefinitions resolves the definition table override, flag
// first, then config. Nil means use the built-in defaults.
func loadAspectDefinitions(cfg *config.Config) ([]aspect.Definition, error) {
	path := aspectsFile
	if path == "" {
		path = cfg.Aspects.DefinitionsFile
	}
	if path == "" {
		return nil, nil
	}
	defs, err := aspectcfg.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load aspect definitions: %w", err)
	}
	return defs, nil
}
