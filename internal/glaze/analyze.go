// Package glaze maps pottery glaze chemistry (colorant, flux, firing
// atmosphere, cone temperature) onto visual parameters for image generation.
//
// Every operation is a pure function over the embedded response tables:
// no state, no I/O after init, safe for concurrent callers.
package glaze

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// referencePercentage is the colorant amount at which the amount factor
// reaches 1.0. Arbitrary tuning constant, kept as-is.
const referencePercentage = 8.0

// InvalidArgumentError reports a structurally invalid numeric input.
// Unrecognized category names are never errors; they degrade to defaults.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Reason)
}

// Formulation is one glaze recipe to analyze. Category names are
// case-insensitive; unknown names fall back to neutral defaults.
type Formulation struct {
	Colorant           string
	ColorantPercentage float64
	Flux               string
	Atmosphere         string
	Cone               int
	Runs               bool
}

// VisualParameters is the numeric half of an analysis. All fields are on a
// 0-10 scale, rounded to one decimal.
type VisualParameters struct {
	OpticalIntensity      float64 `json:"optical_intensity"`
	Saturation            float64 `json:"saturation"`
	Reflectivity          float64 `json:"reflectivity"`
	HueTemperature        float64 `json:"hue_temperature"`
	MaturationLevel       float64 `json:"maturation_level"`
	CrystallineDefinition float64 `json:"crystalline_definition"`
	SurfaceFlow           float64 `json:"surface_flow"`
}

// DescriptiveQualities is the canned-text half of an analysis.
type DescriptiveQualities struct {
	AtmosphereEffect  string `json:"atmosphere_effect"`
	SurfaceTexture    string `json:"surface_texture"`
	ColorantCharacter string `json:"colorant_character"`
	OverallImpression string `json:"overall_impression"`
}

// SensoryIntention describes what the glaze is meant to feel like.
type SensoryIntention struct {
	FeelsLike  string `json:"feels_like"`
	VisualMood string `json:"visual_mood"`
}

// Analysis is the full visual parameter bundle for one formulation.
type Analysis struct {
	GlazeName            string               `json:"glaze_name"`
	VisualParameters     VisualParameters     `json:"visual_parameters"`
	DescriptiveQualities DescriptiveQualities `json:"descriptive_qualities"`
	SensoryIntention     SensoryIntention     `json:"sensory_intention"`
}

// Analyze composes the four response tables into one visual parameter
// bundle. Deterministic and stateless: identical formulations always yield
// identical bundles. The only error condition is a structurally invalid
// number (NaN or infinite percentage); unknown category names never fail.
func Analyze(f Formulation) (Analysis, error) {
	if math.IsNaN(f.ColorantPercentage) || math.IsInf(f.ColorantPercentage, 0) {
		return Analysis{}, &InvalidArgumentError{
			Field:  "colorant_percentage",
			Reason: fmt.Sprintf("must be a finite number, got %v", f.ColorantPercentage),
		}
	}

	optIntensity, satMod, _ := AtmosphereResponse(f.Colorant, f.Atmosphere)
	reflectivity, surface := FluxResponse(f.Flux)
	maturation, crystallinity := TemperatureResponse(f.Cone)
	profile := ColorantProfileFor(f.Colorant)

	// Composite saturation: base saturation scaled by atmosphere and amount,
	// boosted by maturation, capped at 10. The amount factor saturates at
	// 1.5x the reference amount so huge percentages cannot run away.
	baseSat := profile.BaseSaturation
	amountFactor := 0.3 + math.Min(f.ColorantPercentage/referencePercentage, 1.5)*0.7
	maturationBoost := (maturation / 10.0) * 0.3
	saturation := math.Min(baseSat*satMod*amountFactor+baseSat*maturationBoost, 10.0)

	flow := reflectivity * 0.2
	if f.Runs {
		flow = reflectivity * 0.8
	}

	return Analysis{
		GlazeName: fmt.Sprintf("%s %s", capitalize(f.Atmosphere), capitalize(f.Colorant)),
		VisualParameters: VisualParameters{
			OpticalIntensity:      round1(optIntensity),
			Saturation:            round1(saturation),
			Reflectivity:          round1(reflectivity),
			HueTemperature:        round1(profile.HueTemperature),
			MaturationLevel:       round1(maturation),
			CrystallineDefinition: round1(crystallinity),
			SurfaceFlow:           round1(flow),
		},
		DescriptiveQualities: DescriptiveQualities{
			AtmosphereEffect:  fmt.Sprintf("%s firing", f.Atmosphere),
			SurfaceTexture:    surface,
			ColorantCharacter: profile.Description,
			OverallImpression: impression(optIntensity, saturation, reflectivity, maturation),
		},
		SensoryIntention: SensoryIntention{
			FeelsLike:  fmt.Sprintf("%s; %s", atmosphereIntent(f.Atmosphere), fluxIntent(f.Flux)),
			VisualMood: visualMood(optIntensity, saturation),
		},
	}, nil
}

// impression derives the overall-impression phrase from unrounded values.
func impression(intensity, saturation, reflectivity, maturation float64) string {
	var mood string
	switch {
	case intensity > 7 && saturation > 7:
		mood = "deep and saturated"
	case intensity < 4 && saturation < 5:
		mood = "bright and delicate"
	case reflectivity > 8:
		mood = "luminous and reflective"
	case reflectivity < 3:
		mood = "matte and earthy"
	default:
		mood = "balanced and intentional"
	}

	maturity := "developing"
	switch {
	case maturation > 8:
		maturity = "fully developed"
	case maturation > 6:
		maturity = "well-matured"
	}

	return mood + ", " + maturity
}

func visualMood(intensity, saturation float64) string {
	intensityMood := "medium"
	switch {
	case intensity > 7:
		intensityMood = "dark"
	case intensity < 4:
		intensityMood = "light"
	}

	saturationMood := "balanced"
	switch {
	case saturation > 8:
		saturationMood = "highly saturated"
	case saturation < 4:
		saturationMood = "muted"
	}

	return intensityMood + ", " + saturationMood
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// capitalize uppercases the first rune and lowercases the rest, so mixed-case
// input still yields a clean display name.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
