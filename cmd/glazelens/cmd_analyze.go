package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glazelens/internal/glaze"
)

var analyzeFlags struct {
	colorant   string
	percentage float64
	flux       string
	atmosphere string
	cone       int
	runs       bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a glaze formulation and print its visual parameters",
	Long: `Analyze a glaze formulation and print the visual parameter bundle as
indented JSON.

Usage:
  glazelens analyze --colorant cobalt --percentage 2 --flux boron --atmosphere reduction --cone 10

Unknown colorant, flux, or atmosphere names do not fail; they fall back to
neutral defaults.`,
	RunE: runAnalyzeCmd,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeFlags.colorant, "colorant", "", "Colorant: iron, cobalt, copper, chrome, manganese, vanadium")
	f.Float64Var(&analyzeFlags.percentage, "percentage", 10.0, "Colorant percentage (typically 5-15)")
	f.StringVar(&analyzeFlags.flux, "flux", "", "Flux system: boron, alkaline, alkaline_earth, lead")
	f.StringVar(&analyzeFlags.atmosphere, "atmosphere", "neutral", "Kiln atmosphere: oxidation, reduction, neutral")
	f.IntVar(&analyzeFlags.cone, "cone", 6, "Firing temperature as cone number")
	f.BoolVar(&analyzeFlags.runs, "runs", false, "Whether the glaze is formulated to run and pool")
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	analysis, err := glaze.Analyze(glaze.Formulation{
		Colorant:           analyzeFlags.colorant,
		ColorantPercentage: analyzeFlags.percentage,
		Flux:               analyzeFlags.flux,
		Atmosphere:         analyzeFlags.atmosphere,
		Cone:               analyzeFlags.cone,
		Runs:               analyzeFlags.runs,
	})
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	return printJSON(analysis)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
