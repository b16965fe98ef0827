package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"glazelens/internal/glaze"
)

var enhanceFlags struct {
	colorant   string
	flux       string
	atmosphere string
	cone       int
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance [base prompt]",
	Short: "Enhance an image prompt with glaze aesthetics",
	Long: `Enhance an image generation prompt with the visual characteristics of a
glaze formulation. The original subject is preserved; the glaze aesthetic is
appended as a bracketed suffix.

Usage:
  glazelens enhance "a ceramic vase on a shelf" --colorant cobalt --flux boron --atmosphere reduction --cone 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEnhanceCmd,
}

func init() {
	f := enhanceCmd.Flags()
	f.StringVar(&enhanceFlags.colorant, "colorant", "", "Colorant: iron, cobalt, copper, chrome, manganese, vanadium")
	f.StringVar(&enhanceFlags.flux, "flux", "", "Flux system: boron, alkaline, alkaline_earth, lead")
	f.StringVar(&enhanceFlags.atmosphere, "atmosphere", "neutral", "Kiln atmosphere: oxidation, reduction, neutral")
	f.IntVar(&enhanceFlags.cone, "cone", 6, "Firing temperature as cone number")
}

func runEnhanceCmd(cmd *cobra.Command, args []string) error {
	basePrompt := strings.Join(args, " ")
	enhanced, err := glaze.EnhancePrompt(basePrompt, enhanceFlags.colorant, enhanceFlags.flux, enhanceFlags.atmosphere, enhanceFlags.cone)
	if err != nil {
		return fmt.Errorf("enhance: %w", err)
	}
	return printJSON(enhanced)
}
