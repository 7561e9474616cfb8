package codforge

import "fmt"

// ConfigurationError indicates a required external credential or setting
// is missing. It is fatal to the operation and never retried.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates the generative service returned no usable
// page payload. The operation is aborted and document state is left
// untouched.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// TranslationError indicates the translation call returned no usable
// payload. Translation is all-or-nothing at the document level: no
// partial document is ever produced.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translation error: %s", e.Message)
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ImageGenerationError indicates an image-generation call failed. It is
// non-fatal: the gallery degrades to a partial or empty result and the
// error is logged only.
type ImageGenerationError struct {
	Message string
	Cause   error
}

func (e *ImageGenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("image generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("image generation error: %s", e.Message)
}

func (e *ImageGenerationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates a failure inside an AI backend call.
// Retryable marks transient failures such as rate limits and timeouts.
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates a translation payload carried a different
// number of features or testimonials than the source document.
type CountMismatchError struct {
	Field    string
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%s count mismatch: expected %d, got %d", e.Field, e.Expected, e.Got)
}
