package glaze_test

import (
	"strings"
	"testing"

	"glazelens/internal/glaze"
)

func TestEnhancePrompt_ReductionCobaltBoron(t *testing.T) {
	base := "a ceramic vase on a shelf"
	e, err := glaze.EnhancePrompt(base, "cobalt", "boron", "reduction", 10)
	if err != nil {
		t.Fatalf("EnhancePrompt: %v", err)
	}

	if e.OriginalPrompt != base {
		t.Errorf("OriginalPrompt = %q, want %q", e.OriginalPrompt, base)
	}

	wantText := strings.Join([]string{
		"dark, concentrated optical quality",
		"glossy mirror-like surface with strong light reflection",
		"intensely saturated, vivid coloration",
		"cool-toned, pure character",
		"fully matured, intentional finish",
		"feels mysterious, concentrated, sultry; luminous and flowing",
	}, "; ")
	if e.EnhancementText != wantText {
		t.Errorf("EnhancementText = %q, want %q", e.EnhancementText, wantText)
	}

	wantPrompt := base + " [glaze aesthetic: " + wantText + "]"
	if e.EnhancedPrompt != wantPrompt {
		t.Errorf("EnhancedPrompt = %q, want %q", e.EnhancedPrompt, wantPrompt)
	}

	if e.UsageNote == "" {
		t.Error("UsageNote is empty")
	}

	// The embedded analysis uses the fixed reference amount of 10%.
	if sat := e.GlazeAnalysis.VisualParameters.Saturation; sat != 10.0 {
		t.Errorf("embedded analysis saturation = %v, want capped 10.0", sat)
	}
}

func TestEnhancePrompt_MidRangeClauses(t *testing.T) {
	e, err := glaze.EnhancePrompt("a bowl", "iron", "alkaline", "oxidation", 4)
	if err != nil {
		t.Fatalf("EnhancePrompt: %v", err)
	}

	wantText := strings.Join([]string{
		"balanced, medium-value optical quality",
		"satin semi-gloss surface",
		"balanced, clear coloration",
		"warm-toned, earthy character",
		"developing, slightly softer edges",
		"feels clear, bright, direct; fluid and dynamic",
	}, "; ")
	if e.EnhancementText != wantText {
		t.Errorf("EnhancementText = %q, want %q", e.EnhancementText, wantText)
	}
}

func TestEnhancePrompt_UnknownNamesDegrade(t *testing.T) {
	e, err := glaze.EnhancePrompt("a plate", "mystery", "mystery", "mystery", 6)
	if err != nil {
		t.Fatalf("unknown names should not fail: %v", err)
	}
	if !strings.Contains(e.EnhancementText, "feels undefined; undefined") {
		t.Errorf("EnhancementText = %q, want undefined sensory clause", e.EnhancementText)
	}
	if !strings.HasPrefix(e.EnhancedPrompt, "a plate [glaze aesthetic: ") {
		t.Errorf("EnhancedPrompt = %q, want bracketed suffix after base", e.EnhancedPrompt)
	}
}

func TestEnhancePrompt_SixClauses(t *testing.T) {
	for _, colorant := range glaze.ColorantNames() {
		for _, flux := range glaze.FluxNames() {
			e, err := glaze.EnhancePrompt("x", colorant, flux, "neutral", 6)
			if err != nil {
				t.Fatalf("EnhancePrompt(%s, %s): %v", colorant, flux, err)
			}
			// The sensory clause itself contains one "; " separator.
			if got := len(strings.Split(e.EnhancementText, "; ")); got != 7 {
				t.Errorf("%s/%s: got %d clause segments, want 7: %q",
					colorant, flux, got, e.EnhancementText)
			}
		}
	}
}
