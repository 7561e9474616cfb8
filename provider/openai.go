package provider

import (
	"context"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/codforge/codforge"
	"github.com/codforge/codforge/imageutil"
)

// OpenAIProvider implements AIProvider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	imageModel  string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Chat model to use (default: "gpt-4o-mini")
	ImageModel  string  // Image model to use (default: dall-e-3)
	Temperature float32 // Temperature for generation (default: 0.7)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &codforge.ConfigurationError{Message: "OpenAI API key is required"}
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = openai.CreateImageModelDallE3
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		imageModel:  imageModel,
		temperature: temperature,
	}, nil
}

// GenerateJSON runs a chat completion in JSON mode. Reference images
// attach as vision content parts.
func (p *OpenAIProvider) GenerateJSON(ctx context.Context, req JSONRequest) (string, error) {
	message := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if len(req.Images) == 0 {
		message.Content = req.Prompt
	} else {
		parts := []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
		}
		for _, img := range req.Images {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: imageutil.EncodeDataURL(img.MIMEType, img.Data),
				},
			})
		}
		message.MultiContent = parts
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    []openai.ChatCompletionMessage{message},
		Temperature: p.temperature,
	}
	if req.Structured {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", &codforge.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}
	if len(resp.Choices) == 0 {
		return "", &codforge.ProviderError{Message: "no response from OpenAI", Retryable: true}
	}
	return StripCodeFence(resp.Choices[0].Message.Content), nil
}

// GenerateImages produces one image from the instruction. The OpenAI
// image endpoint cannot edit an arbitrary reference image, so the
// reference only informs the instruction text built by the caller.
func (p *OpenAIProvider) GenerateImages(ctx context.Context, req ImageRequest) ([]string, error) {
	resp, err := p.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         req.Instruction,
		Model:          p.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, &codforge.ProviderError{
			Message:   "OpenAI image call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	var images []string
	for _, item := range resp.Data {
		if item.B64JSON != "" {
			images = append(images, "data:image/png;base64,"+item.B64JSON)
		}
	}
	if len(images) == 0 {
		return nil, &codforge.ProviderError{Message: "no image in OpenAI response", Retryable: true}
	}
	return images, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements AIProvider
var _ AIProvider = (*OpenAIProvider)(nil)
