// Package mcp exposes the glaze analyzer as tools over the Model Context
// Protocol. The host runtime validates arguments against the declared
// schemas, calls a handler, and serializes the typed output back to the
// calling agent.
package mcp

import (
	"context"
	"fmt"

	"glazelens/internal/glaze"
	"glazelens/internal/logging"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server with the glaze analysis tools registered.
// All tools are stateless; concurrent calls need no coordination.
type Server struct {
	MCPServer *sdkmcp.Server
}

// NewServer creates an MCP server with the five glaze tools registered.
func NewServer(version string) *Server {
	s := &Server{}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "pottery-glazing-chemistry", Version: version},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze_glaze_formulation",
		Description: "Analyze a pottery glaze formulation and extract visual parameters for image generation. Unknown colorant/flux/atmosphere names fall back to neutral defaults.",
	}, s.handleAnalyze)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "enhance_image_prompt_from_glaze",
		Description: "Enhance an image generation prompt with the visual characteristics of a glaze formulation. The original subject is preserved; aesthetic qualities are appended in a bracketed suffix.",
	}, s.handleEnhancePrompt)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_available_colorants",
		Description: "List all supported metal oxide colorants with their visual characteristics, atmosphere responses, and typical usage notes.",
	}, s.handleListColorants)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_available_fluxes",
		Description: "List all supported flux systems with their melt behaviors, surface finishes, and visual effects.",
	}, s.handleListFluxes)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare_glaze_formulations",
		Description: "Compare two glaze formulations qualitatively. For precise parameter values use analyze_glaze_formulation with explicit chemistry.",
	}, s.handleCompare)
}

// --- Tool input/output types ---

type analyzeInput struct {
	Colorant           string  `json:"colorant" jsonschema:"metal oxide colorant (iron, cobalt, copper, chrome, manganese, vanadium)"`
	ColorantPercentage float64 `json:"colorant_percentage" jsonschema:"percentage of colorant in the formulation (typically 5-15)"`
	FluxType           string  `json:"flux_type" jsonschema:"primary flux system (boron, alkaline, alkaline_earth, lead)"`
	Atmosphere         string  `json:"atmosphere" jsonschema:"kiln atmosphere (oxidation, reduction, neutral)"`
	Cone               int     `json:"cone" jsonschema:"firing temperature as cone number (e.g. 6 or 10)"`
	Runs               bool    `json:"runs,omitempty" jsonschema:"whether the glaze is formulated to run and pool"`
}

type enhancePromptInput struct {
	BasePrompt string `json:"base_prompt" jsonschema:"original image generation prompt"`
	Colorant   string `json:"colorant" jsonschema:"metal oxide colorant (iron, cobalt, copper, chrome, manganese, vanadium)"`
	FluxType   string `json:"flux_type" jsonschema:"primary flux system (boron, alkaline, alkaline_earth, lead)"`
	Atmosphere string `json:"atmosphere" jsonschema:"kiln atmosphere (oxidation, reduction, neutral)"`
	Cone       int    `json:"cone" jsonschema:"firing temperature as cone number"`
}

type listInput struct{}

type listColorantsOutput struct {
	Colorants map[string]glaze.ColorantInfo `json:"colorants"`
}

type listFluxesOutput struct {
	Fluxes map[string]glaze.FluxInfo `json:"fluxes"`
}

type compareInput struct {
	Glaze1Description string `json:"glaze1_description" jsonschema:"description of the first glaze (e.g. 'reduction copper boron flux cone 10')"`
	Glaze2Description string `json:"glaze2_description" jsonschema:"description of the second glaze"`
}

type compareOutput struct {
	Analysis       string `json:"analysis"`
	Recommendation string `json:"recommendation"`
}

// --- Tool handlers ---

func (s *Server) handleAnalyze(ctx context.Context, _ *sdkmcp.CallToolRequest, input analyzeInput) (*sdkmcp.CallToolResult, glaze.Analysis, error) {
	analysis, err := glaze.Analyze(glaze.Formulation{
		Colorant:           input.Colorant,
		ColorantPercentage: input.ColorantPercentage,
		Flux:               input.FluxType,
		Atmosphere:         input.Atmosphere,
		Cone:               input.Cone,
		Runs:               input.Runs,
	})
	if err != nil {
		logging.New("mcp").Warn("analyze rejected", "error", err)
		return nil, glaze.Analysis{}, fmt.Errorf("analyze_glaze_formulation: %w", err)
	}
	return nil, analysis, nil
}

func (s *Server) handleEnhancePrompt(ctx context.Context, _ *sdkmcp.CallToolRequest, input enhancePromptInput) (*sdkmcp.CallToolResult, glaze.Enhancement, error) {
	enhanced, err := glaze.EnhancePrompt(input.BasePrompt, input.Colorant, input.FluxType, input.Atmosphere, input.Cone)
	if err != nil {
		logging.New("mcp").Warn("enhance rejected", "error", err)
		return nil, glaze.Enhancement{}, fmt.Errorf("enhance_image_prompt_from_glaze: %w", err)
	}
	return nil, enhanced, nil
}

func (s *Server) handleListColorants(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listInput) (*sdkmcp.CallToolResult, listColorantsOutput, error) {
	return nil, listColorantsOutput{Colorants: glaze.Colorants()}, nil
}

func (s *Server) handleListFluxes(ctx context.Context, _ *sdkmcp.CallToolRequest, _ listInput) (*sdkmcp.CallToolResult, listFluxesOutput, error) {
	return nil, listFluxesOutput{Fluxes: glaze.Fluxes()}, nil
}

func (s *Server) handleCompare(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareInput) (*sdkmcp.CallToolResult, compareOutput, error) {
	return nil, compareOutput{
		Analysis:       compareText(input.Glaze1Description, input.Glaze2Description),
		Recommendation: "Use analyze_glaze_formulation for precise parameter extraction",
	}, nil
}

// compareText is a documentation stub: it echoes both descriptions and points
// the caller at the quantitative tool. It performs no analysis.
func compareText(glaze1, glaze2 string) string {
	return fmt.Sprintf(`Glaze Comparison: Qualitative Analysis

Glaze 1: %s
Glaze 2: %s

This comparison tool provides qualitative sensory analysis. For precise visual
parameters, use analyze_glaze_formulation with explicit chemistry:
- colorant (iron, cobalt, copper, chrome, manganese, vanadium)
- flux_type (boron, alkaline, alkaline_earth, lead)
- atmosphere (oxidation, reduction, neutral)
- cone number

The comparison highlights how different chemistry choices create different
sensory intentions:
- Reduction vs oxidation: dramatic hue/saturation shifts
- Boron vs alkaline earth: gloss vs matte spectrum
- Iron vs cobalt: warm vs cool color character
- High fire vs mid fire: maturation and crystalline effects

Provide formulation details for quantitative analysis.`, glaze1, glaze2)
}
