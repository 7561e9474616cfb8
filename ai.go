package codforge

import "context"

// AIProvider is the interface for generative backends.
type AIProvider interface {
	// GenerateJSON runs a text prompt and returns the raw JSON payload
	// of the response.
	GenerateJSON(ctx context.Context, req JSONRequest) (string, error)
	// GenerateImages produces style-conditioned variants of a
	// reference image, returned as data URLs. Zero results without an
	// error is a valid outcome.
	GenerateImages(ctx context.Context, req ImageRequest) ([]string, error)
}

// JSONRequest contains the parameters for a structured text request.
type JSONRequest struct {
	Prompt string
	// Images are optional reference images attached to the prompt.
	Images []ReferenceImage
	// Structured requests JSON-mode output instead of free-form text.
	Structured bool
	// Schema constrains a structured response to an exact shape on
	// providers that support constrained decoding. Ignored when
	// Structured is false.
	Schema *Schema
}

// ReferenceImage is one inline image payload.
type ReferenceImage struct {
	MIMEType string
	Data     []byte
}

// ImageRequest contains the parameters for an image variant request.
type ImageRequest struct {
	Image       ReferenceImage
	Instruction string
}

// TranslationCache is the interface for caching translation payloads.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
