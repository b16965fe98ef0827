package glaze_test

import (
	"testing"

	"glazelens/internal/glaze"

	"github.com/google/go-cmp/cmp"
)

func TestColorantNames(t *testing.T) {
	want := []string{"chrome", "cobalt", "copper", "iron", "manganese", "vanadium"}
	if diff := cmp.Diff(want, glaze.ColorantNames()); diff != "" {
		t.Errorf("ColorantNames mismatch:\n%s", diff)
	}
}

func TestFluxNames(t *testing.T) {
	want := []string{"alkaline", "alkaline_earth", "boron", "lead"}
	if diff := cmp.Diff(want, glaze.FluxNames()); diff != "" {
		t.Errorf("FluxNames mismatch:\n%s", diff)
	}
}

func TestBaseSaturation(t *testing.T) {
	cases := map[string]float64{
		"iron":       6.5,
		"cobalt":     8.5,
		"copper":     8.0,
		"chrome":     7.0,
		"manganese":  5.5,
		"vanadium":   6.0,
		"kryptonite": 6.0, // unknown colorant default
	}
	for colorant, want := range cases {
		if got := glaze.BaseSaturation(colorant); got != want {
			t.Errorf("BaseSaturation(%q) = %v, want %v", colorant, got, want)
		}
	}
}

func TestAtmosphereResponse_HueShifts(t *testing.T) {
	cases := []struct {
		colorant   string
		atmosphere string
		wantShift  float64
	}{
		{"copper", "reduction", -15},
		{"copper", "oxidation", 5},
		{"iron", "reduction", -8},
		{"iron", "oxidation", 8},
		{"cobalt", "reduction", -5},
		{"cobalt", "oxidation", 2},
		{"chrome", "reduction", 0},
		{"chrome", "oxidation", 0},
		{"manganese", "reduction", 3},
		{"manganese", "oxidation", -3},
		{"vanadium", "reduction", -10},
		{"vanadium", "oxidation", 5},
		{"copper", "neutral", 0},
		{"copper", "plasma", 0},
		{"mystery", "reduction", 0},
	}
	for _, tc := range cases {
		_, _, shift := glaze.AtmosphereResponse(tc.colorant, tc.atmosphere)
		if shift != tc.wantShift {
			t.Errorf("AtmosphereResponse(%q, %q) hue shift = %v, want %v",
				tc.colorant, tc.atmosphere, shift, tc.wantShift)
		}
	}
}

func TestAtmosphereResponse_Constants(t *testing.T) {
	cases := []struct {
		atmosphere string
		wantInt    float64
		wantMod    float64
	}{
		{"reduction", 8.5, 1.3},
		{"oxidation", 4.0, 0.7},
		{"neutral", 5.5, 1.0},
		{"", 5.5, 1.0},
		{"microwave", 5.5, 1.0},
	}
	for _, tc := range cases {
		intensity, mod, _ := glaze.AtmosphereResponse("copper", tc.atmosphere)
		if intensity != tc.wantInt || mod != tc.wantMod {
			t.Errorf("AtmosphereResponse(copper, %q) = (%v, %v), want (%v, %v)",
				tc.atmosphere, intensity, mod, tc.wantInt, tc.wantMod)
		}
	}
}

func TestTemperatureResponse_BandBoundaries(t *testing.T) {
	cases := []struct {
		cone              int
		wantMaturation    float64
		wantCrystallinity float64
	}{
		{-6, 3.5, 1.0},
		{2, 3.5, 1.0},
		{3, 7.0, 4.0},
		{6, 7.0, 4.0},
		{7, 9.5, 8.0},
		{13, 9.5, 8.0},
	}
	for _, tc := range cases {
		maturation, crystallinity := glaze.TemperatureResponse(tc.cone)
		if maturation != tc.wantMaturation || crystallinity != tc.wantCrystallinity {
			t.Errorf("TemperatureResponse(%d) = (%v, %v), want (%v, %v)",
				tc.cone, maturation, crystallinity, tc.wantMaturation, tc.wantCrystallinity)
		}
	}
}

// The catalogs must report the same constants Analyze computes with. They
// read the same table entries, so a drift here means the tables themselves
// are malformed.
func TestCatalog_MatchesResponseTables(t *testing.T) {
	colorants := glaze.Colorants()
	if len(colorants) != len(glaze.ColorantNames()) {
		t.Fatalf("catalog has %d colorants, want %d", len(colorants), len(glaze.ColorantNames()))
	}
	for name, info := range colorants {
		profile := glaze.ColorantProfileFor(name)
		if info.WarmthScore != profile.HueTemperature {
			t.Errorf("colorant %q: warmth score %v != hue temperature %v",
				name, info.WarmthScore, profile.HueTemperature)
		}
		if info.Description == "" || info.VisualCharacter == "" || info.Note == "" {
			t.Errorf("colorant %q: incomplete catalog entry: %+v", name, info)
		}
	}

	fluxes := glaze.Fluxes()
	if len(fluxes) != len(glaze.FluxNames()) {
		t.Fatalf("catalog has %d fluxes, want %d", len(fluxes), len(glaze.FluxNames()))
	}
	for name, info := range fluxes {
		reflectivity, _ := glaze.FluxResponse(name)
		if info.ReflectivityScore != reflectivity {
			t.Errorf("flux %q: reflectivity score %v != response constant %v",
				name, info.ReflectivityScore, reflectivity)
		}
		if info.Chemistry == "" || info.SurfaceFinish == "" || info.Note == "" {
			t.Errorf("flux %q: incomplete catalog entry: %+v", name, info)
		}
	}
}

func TestFluxResponse_Defaults(t *testing.T) {
	reflectivity, surface := glaze.FluxResponse("unobtainium")
	if reflectivity != 5.0 || surface != "balanced" {
		t.Errorf("unknown flux = (%v, %q), want (5.0, \"balanced\")", reflectivity, surface)
	}
}

func TestColorantProfileFor_UnknownDefault(t *testing.T) {
	p := glaze.ColorantProfileFor("neodymium")
	if p.HueTemperature != 5.0 || p.ColorPurity != 5.0 || p.CharacteristicIntensity != 5.0 {
		t.Errorf("unknown colorant profile = %+v, want all 5.0 scores", p)
	}
	if p.Description != "unknown colorant, assumed neutral" {
		t.Errorf("unknown colorant description = %q", p.Description)
	}
}
