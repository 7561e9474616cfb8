package provider

import (
	"context"
	"strings"

	"google.golang.org/genai"

	"github.com/codforge/codforge"
	"github.com/codforge/codforge/imageutil"
)

// GeminiProvider implements AIProvider using the Gemini API.
type GeminiProvider struct {
	client     *genai.Client
	textModel  string
	imageModel string
}

// GeminiConfig holds configuration for the Gemini provider.
type GeminiConfig struct {
	APIKey     string // Gemini API key (required)
	TextModel  string // Model for copy generation (default: "gemini-2.5-flash")
	ImageModel string // Model for image generation (default: "gemini-2.5-flash-image-preview")
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, &codforge.ConfigurationError{Message: "Gemini API key is required"}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, &codforge.ConfigurationError{Message: "failed to create Gemini client", Cause: err}
	}

	textModel := cfg.TextModel
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image-preview"
	}

	return &GeminiProvider{
		client:     client,
		textModel:  textModel,
		imageModel: imageModel,
	}, nil
}

// GenerateJSON runs a text (optionally multimodal) request and returns
// the raw response body.
func (p *GeminiProvider) GenerateJSON(ctx context.Context, req JSONRequest) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(req.Prompt)}
	for _, img := range req.Images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	var config *genai.GenerateContentConfig
	if req.Structured {
		config = &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   toGenaiSchema(req.Schema),
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, p.textModel, contents, config)
	if err != nil {
		return "", &codforge.ProviderError{
			Message:   "Gemini API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	text := result.Text()
	if text == "" {
		return "", &codforge.ProviderError{Message: "no response from Gemini", Retryable: true}
	}
	return StripCodeFence(text), nil
}

// GenerateImages edits the reference image per the instruction and
// returns every produced image as a data URL.
func (p *GeminiProvider) GenerateImages(ctx context.Context, req ImageRequest) ([]string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(req.Image.Data, req.Image.MIMEType),
		genai.NewPartFromText(req.Instruction),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.imageModel, contents, config)
	if err != nil {
		return nil, &codforge.ProviderError{
			Message:   "Gemini image call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	var images []string
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				images = append(images, imageutil.EncodeDataURL(part.InlineData.MIMEType, part.InlineData.Data))
			}
		}
	}
	if len(images) == 0 {
		return nil, &codforge.ProviderError{Message: "no image in Gemini response", Retryable: true}
	}
	return images, nil
}

// toGenaiSchema translates a response schema into the Gemini
// constrained-decoding format. A nil schema stays nil, leaving the
// request in plain JSON mode.
func toGenaiSchema(s *codforge.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        toGenaiType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Items:       toGenaiSchema(s.Items),
		Required:    s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
	}
	return out
}

func toGenaiType(t codforge.SchemaType) genai.Type {
	switch t {
	case codforge.SchemaString:
		return genai.TypeString
	case codforge.SchemaInteger:
		return genai.TypeInteger
	case codforge.SchemaBoolean:
		return genai.TypeBoolean
	case codforge.SchemaArray:
		return genai.TypeArray
	case codforge.SchemaObject:
		return genai.TypeObject
	}
	return genai.TypeUnspecified
}

// StripCodeFence removes a Markdown code fence wrapper some models emit
// around JSON bodies.
func StripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// Verify GeminiProvider implements AIProvider
var _ AIProvider = (*GeminiProvider)(nil)
