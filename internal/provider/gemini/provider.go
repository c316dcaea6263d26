package gemini

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avastudio/avatar-api/internal/config"
	"github.com/avastudio/avatar-api/internal/domain"
	"github.com/avastudio/avatar-api/internal/provider"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemInstruction = `You are an expert SVG artist specialized in creating geometric, flat-design avatars.

STRICT RULES:
1. Output ONLY the raw SVG code. No markdown.
2. The SVG must be clean, semantic, and scalable.
3. MANDATORY: The root <svg> tag MUST have 'viewBox="0 0 512 512"' and 'preserveAspectRatio="xMidYMid meet"'.
4. IMPORTANT: Draw the subject fully visible within the center. Leave a 10% margin on all sides. DO NOT CROP THE HEAD.
5. The style should be: Flat Vector Art, Minimalist, Geometric shapes.
6. COLOR COMPLIANCE: If specific HEX colors are requested in the prompt, you MUST use ONLY those colors plus black and white.
7. DO NOT use <script> tags or onclick events.`

// Provider implements provider.Provider producing SVG markup directly
type Provider struct {
	apiKey string
	model  string
}

// NewProvider creates a new Gemini direct-SVG provider
func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) Kind() domain.ArtifactKind {
	return domain.ArtifactSVG
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// Generate issues the composed prompt plus the fixed SVG system instruction
// and returns exactly the <svg>...</svg> slice of the response.
func (p *Provider) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Artifact, error) {
	if !p.IsConfigured() {
		return nil, fmt.Errorf("%w: gemini (missing API key)", domain.ErrProviderNotConfigured)
	}

	model := p.model
	if model == "" {
		model = "gemini-2.5-flash-lite"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", domain.ErrProviderUnavailable, err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)
	generativeModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	tagsJSON, _ := json.Marshal(req.Tags)
	userMessage := fmt.Sprintf(
		"Generate an avatar based on this configuration:\nBase Prompt: %s\nStyle JSON: %s\n\nFocus on facial features, accessories, and expression.\n(request-id: %d)",
		req.Prompt, tagsJSON, req.Seed,
	)

	resp, err := generativeModel.GenerateContent(ctx, genai.Text(userMessage))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini generation error: %v", domain.ErrProviderUnavailable, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response from gemini", domain.ErrProviderUnavailable)
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	svg, err := provider.ExtractSVG(output)
	if err != nil {
		return nil, err
	}

	return &domain.Artifact{
		Kind: domain.ArtifactSVG,
		SVG:  svg,
	}, nil
}
