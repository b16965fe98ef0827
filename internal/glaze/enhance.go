package glaze

import (
	"fmt"
	"strings"
)

// enhanceReferencePercentage is the colorant amount assumed when enhancing a
// prompt, where no explicit percentage is supplied.
const enhanceReferencePercentage = 10.0

const usageNote = "Use 'enhanced_prompt' directly with image generators, or extract 'enhancement_text' to blend manually"

// Enhancement is the result of weaving glaze aesthetics into an image prompt.
type Enhancement struct {
	OriginalPrompt  string   `json:"original_prompt"`
	GlazeAnalysis   Analysis `json:"glaze_analysis"`
	EnhancementText string   `json:"enhancement_text"`
	EnhancedPrompt  string   `json:"enhanced_prompt"`
	UsageNote       string   `json:"usage_note"`
}

// EnhancePrompt analyzes the given glaze at a typical colorant amount and
// appends six fixed-order descriptive clauses to the base prompt inside a
// bracketed suffix. The original subject is preserved; only the aesthetic
// framing is added.
func EnhancePrompt(basePrompt, colorant, flux, atmosphere string, cone int) (Enhancement, error) {
	analysis, err := Analyze(Formulation{
		Colorant:           colorant,
		ColorantPercentage: enhanceReferencePercentage,
		Flux:               flux,
		Atmosphere:         atmosphere,
		Cone:               cone,
		Runs:               false,
	})
	if err != nil {
		return Enhancement{}, fmt.Errorf("enhance prompt: %w", err)
	}

	vp := analysis.VisualParameters
	parts := make([]string, 0, 6)

	switch {
	case vp.OpticalIntensity > 7:
		parts = append(parts, "dark, concentrated optical quality")
	case vp.OpticalIntensity < 4:
		parts = append(parts, "bright, transparent, luminous quality")
	default:
		parts = append(parts, "balanced, medium-value optical quality")
	}

	switch {
	case vp.Reflectivity > 8:
		parts = append(parts, "glossy mirror-like surface with strong light reflection")
	case vp.Reflectivity < 3:
		parts = append(parts, "matte absorptive surface with diffuse light")
	default:
		parts = append(parts, "satin semi-gloss surface")
	}

	switch {
	case vp.Saturation > 8:
		parts = append(parts, "intensely saturated, vivid coloration")
	case vp.Saturation < 4:
		parts = append(parts, "subtly tinted, muted coloration")
	default:
		parts = append(parts, "balanced, clear coloration")
	}

	switch {
	case vp.HueTemperature > 7:
		parts = append(parts, "warm-toned, earthy character")
	case vp.HueTemperature < 3:
		parts = append(parts, "cool-toned, pure character")
	default:
		parts = append(parts, "neutral balanced coloration")
	}

	if vp.MaturationLevel > 8 {
		parts = append(parts, "fully matured, intentional finish")
	} else {
		parts = append(parts, "developing, slightly softer edges")
	}

	parts = append(parts, fmt.Sprintf("feels %s", analysis.SensoryIntention.FeelsLike))

	text := strings.Join(parts, "; ")

	return Enhancement{
		OriginalPrompt:  basePrompt,
		GlazeAnalysis:   analysis,
		EnhancementText: text,
		EnhancedPrompt:  fmt.Sprintf("%s [glaze aesthetic: %s]", basePrompt, text),
		UsageNote:       usageNote,
	}, nil
}
