package glaze

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

// ColorantProfile holds the fixed response constants for one metal-oxide
// colorant. Score fields are on a 0-10 scale; hue shifts are in degrees and
// signed (negative shifts toward red/dark, positive toward yellow/light).
type ColorantProfile struct {
	BaseSaturation          float64 `yaml:"base_saturation" json:"base_saturation"`
	HueTemperature          float64 `yaml:"hue_temperature" json:"hue_temperature"`
	ColorPurity             float64 `yaml:"color_purity" json:"color_purity"`
	CharacteristicIntensity float64 `yaml:"characteristic_intensity" json:"characteristic_intensity"`
	Description             string  `yaml:"description" json:"description"`
	ReductionHueShift       float64 `yaml:"reduction_hue_shift" json:"reduction_hue_shift"`
	OxidationHueShift       float64 `yaml:"oxidation_hue_shift" json:"oxidation_hue_shift"`

	// Catalog fields, reported by the listing operations only.
	Oxide             string `yaml:"oxide" json:"-"`
	VisualCharacter   string `yaml:"visual_character" json:"-"`
	UnderOxidation    string `yaml:"under_oxidation" json:"-"`
	UnderReduction    string `yaml:"under_reduction" json:"-"`
	TypicalPercentage string `yaml:"typical_percentage" json:"-"`
	Note              string `yaml:"note" json:"-"`
}

// FluxProfile holds the fixed response constants for one flux system.
type FluxProfile struct {
	Reflectivity float64 `yaml:"reflectivity" json:"reflectivity"`
	Surface      string  `yaml:"surface" json:"surface"`
	Intent       string  `yaml:"intent" json:"intent"`

	// Catalog fields, reported by the listing operations only.
	Chemistry       string `yaml:"chemistry" json:"-"`
	MeltingBehavior string `yaml:"melting_behavior" json:"-"`
	SurfaceFinish   string `yaml:"surface_finish" json:"-"`
	RunningBehavior string `yaml:"running_behavior" json:"-"`
	TypicalUse      string `yaml:"typical_use" json:"-"`
	ConeRange       string `yaml:"cone_range" json:"-"`
	VisualEffect    string `yaml:"visual_effect" json:"-"`
	Note            string `yaml:"note" json:"-"`
}

// atmosphereProfile holds the optical constants one kiln atmosphere applies
// to every colorant.
type atmosphereProfile struct {
	OpticalIntensity   float64 `yaml:"optical_intensity"`
	SaturationModifier float64 `yaml:"saturation_modifier"`
	Intent             string  `yaml:"intent"`
}

// coneBand maps a cone ceiling to maturation constants. A nil MaxCone means
// the band is open-ended and must come last.
type coneBand struct {
	MaxCone       *int    `yaml:"max_cone"`
	Maturation    float64 `yaml:"maturation"`
	Crystallinity float64 `yaml:"crystallinity"`
}

type responseTables struct {
	Colorants       map[string]ColorantProfile   `yaml:"colorants"`
	UnknownColorant ColorantProfile              `yaml:"unknown_colorant"`
	Fluxes          map[string]FluxProfile       `yaml:"fluxes"`
	UnknownFlux     FluxProfile                  `yaml:"unknown_flux"`
	Atmospheres     map[string]atmosphereProfile `yaml:"atmospheres"`
	ConeBands       []coneBand                   `yaml:"cone_bands"`
}

// tables is the process-wide constant data. Loaded once here, never mutated.
var tables = mustLoadTables()

func mustLoadTables() responseTables {
	var t responseTables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		panic(fmt.Sprintf("glaze: parse embedded tables.yaml: %v", err))
	}
	if err := validateTables(t); err != nil {
		panic(fmt.Sprintf("glaze: invalid tables.yaml: %v", err))
	}
	return t
}

func validateTables(t responseTables) error {
	if len(t.Colorants) == 0 {
		return fmt.Errorf("no colorants defined")
	}
	if len(t.Fluxes) == 0 {
		return fmt.Errorf("no fluxes defined")
	}
	for _, name := range []string{"reduction", "oxidation", "neutral"} {
		if _, ok := t.Atmospheres[name]; !ok {
			return fmt.Errorf("atmosphere %q missing", name)
		}
	}
	if len(t.ConeBands) == 0 {
		return fmt.Errorf("no cone bands defined")
	}
	last := t.ConeBands[len(t.ConeBands)-1]
	if last.MaxCone != nil {
		return fmt.Errorf("final cone band must be open-ended")
	}
	prev := 0
	for i, b := range t.ConeBands[:len(t.ConeBands)-1] {
		if b.MaxCone == nil {
			return fmt.Errorf("cone band %d: only the final band may omit max_cone", i)
		}
		if i > 0 && *b.MaxCone <= prev {
			return fmt.Errorf("cone band %d: max_cone %d not ascending", i, *b.MaxCone)
		}
		prev = *b.MaxCone
	}
	return nil
}

// normalize lowercases a category name before table lookup. Lookups are
// case-insensitive by contract; unrecognized names degrade to defaults.
func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ColorantProfileFor returns the response constants for a colorant, or the
// neutral unknown-colorant profile when the name is not in the table.
func ColorantProfileFor(colorant string) ColorantProfile {
	if p, ok := tables.Colorants[normalize(colorant)]; ok {
		return p
	}
	return tables.UnknownColorant
}

// BaseSaturation returns the pre-atmosphere saturation constant for a
// colorant (6.0 for unknown colorants).
func BaseSaturation(colorant string) float64 {
	return ColorantProfileFor(colorant).BaseSaturation
}

// FluxResponse maps a flux system to its reflectivity constant and surface
// description. Unknown fluxes get (5.0, "balanced").
func FluxResponse(flux string) (reflectivity float64, surface string) {
	p, ok := tables.Fluxes[normalize(flux)]
	if !ok {
		p = tables.UnknownFlux
	}
	return p.Reflectivity, p.Surface
}

// AtmosphereResponse maps a colorant/atmosphere pair to the optical intensity
// and saturation modifier the atmosphere applies, plus the colorant's hue
// shift under that atmosphere. Unknown atmospheres behave as neutral.
func AtmosphereResponse(colorant, atmosphere string) (opticalIntensity, saturationModifier, hueShift float64) {
	profile := ColorantProfileFor(colorant)
	switch normalize(atmosphere) {
	case "reduction":
		a := tables.Atmospheres["reduction"]
		return a.OpticalIntensity, a.SaturationModifier, profile.ReductionHueShift
	case "oxidation":
		a := tables.Atmospheres["oxidation"]
		return a.OpticalIntensity, a.SaturationModifier, profile.OxidationHueShift
	default:
		a := tables.Atmospheres["neutral"]
		return a.OpticalIntensity, a.SaturationModifier, 0
	}
}

// TemperatureResponse buckets a cone number into its maturation band.
func TemperatureResponse(cone int) (maturation, crystallinity float64) {
	for _, b := range tables.ConeBands {
		if b.MaxCone == nil || cone <= *b.MaxCone {
			return b.Maturation, b.Crystallinity
		}
	}
	// Unreachable: validateTables guarantees an open-ended final band.
	last := tables.ConeBands[len(tables.ConeBands)-1]
	return last.Maturation, last.Crystallinity
}

func atmosphereIntent(atmosphere string) string {
	if a, ok := tables.Atmospheres[normalize(atmosphere)]; ok {
		return a.Intent
	}
	return "undefined"
}

func fluxIntent(flux string) string {
	if f, ok := tables.Fluxes[normalize(flux)]; ok {
		return f.Intent
	}
	return "undefined"
}
