package glaze

import "sort"

// ColorantInfo is the catalog view of one colorant. Scores are taken from
// the same table entry Analyze reads, so the catalog cannot drift from the
// computation constants.
type ColorantInfo struct {
	Description       string  `json:"description"`
	VisualCharacter   string  `json:"visual_character"`
	UnderOxidation    string  `json:"under_oxidation"`
	UnderReduction    string  `json:"under_reduction"`
	TypicalPercentage string  `json:"typical_percentage"`
	WarmthScore       float64 `json:"warmth_score"`
	Note              string  `json:"note"`
}

// FluxInfo is the catalog view of one flux system.
type FluxInfo struct {
	Chemistry         string  `json:"chemistry"`
	MeltingBehavior   string  `json:"melting_behavior"`
	SurfaceFinish     string  `json:"surface_finish"`
	ReflectivityScore float64 `json:"reflectivity_score"`
	RunningBehavior   string  `json:"running_behavior"`
	TypicalUse        string  `json:"typical_use"`
	ConeRange         string  `json:"cone_range"`
	VisualEffect      string  `json:"visual_effect"`
	Note              string  `json:"note"`
}

// Colorants returns the catalog of every supported colorant, keyed by the
// lowercase name Analyze matches against.
func Colorants() map[string]ColorantInfo {
	out := make(map[string]ColorantInfo, len(tables.Colorants))
	for name, p := range tables.Colorants {
		out[name] = ColorantInfo{
			Description:       p.Oxide,
			VisualCharacter:   p.VisualCharacter,
			UnderOxidation:    p.UnderOxidation,
			UnderReduction:    p.UnderReduction,
			TypicalPercentage: p.TypicalPercentage,
			WarmthScore:       p.HueTemperature,
			Note:              p.Note,
		}
	}
	return out
}

// Fluxes returns the catalog of every supported flux system, keyed by the
// lowercase name Analyze matches against.
func Fluxes() map[string]FluxInfo {
	out := make(map[string]FluxInfo, len(tables.Fluxes))
	for name, p := range tables.Fluxes {
		out[name] = FluxInfo{
			Chemistry:         p.Chemistry,
			MeltingBehavior:   p.MeltingBehavior,
			SurfaceFinish:     p.SurfaceFinish,
			ReflectivityScore: p.Reflectivity,
			RunningBehavior:   p.RunningBehavior,
			TypicalUse:        p.TypicalUse,
			ConeRange:         p.ConeRange,
			VisualEffect:      p.VisualEffect,
			Note:              p.Note,
		}
	}
	return out
}

// ColorantNames returns the supported colorant names in sorted order.
func ColorantNames() []string {
	return sortedKeys(tables.Colorants)
}

// FluxNames returns the supported flux names in sorted order.
func FluxNames() []string {
	return sortedKeys(tables.Fluxes)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
