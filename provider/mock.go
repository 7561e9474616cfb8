package provider

import "context"

// MockProvider is a scriptable AI provider for testing.
type MockProvider struct {
	JSONResponse string // Returned by GenerateJSON
	JSONErr      error
	ImageURLs    []string // Returned by GenerateImages
	ImagesErr    error

	JSONCalls        int
	ImageCalls       int
	LastJSONRequest  *JSONRequest
	LastImageRequest *ImageRequest
}

// NewMockProvider creates a mock provider with empty-object defaults.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		JSONResponse: "{}",
		ImageURLs:    []string{"data:image/png;base64,QUFB"},
	}
}

// GenerateJSON returns the scripted JSON response.
func (m *MockProvider) GenerateJSON(ctx context.Context, req JSONRequest) (string, error) {
	m.JSONCalls++
	m.LastJSONRequest = &req
	if m.JSONErr != nil {
		return "", m.JSONErr
	}
	return m.JSONResponse, nil
}

// GenerateImages returns the scripted image URLs.
func (m *MockProvider) GenerateImages(ctx context.Context, req ImageRequest) ([]string, error) {
	m.ImageCalls++
	m.LastImageRequest = &req
	if m.ImagesErr != nil {
		return nil, m.ImagesErr
	}
	return m.ImageURLs, nil
}

// Reset clears the call counters and captured requests.
func (m *MockProvider) Reset() {
	m.JSONCalls = 0
	m.ImageCalls = 0
	m.LastJSONRequest = nil
	m.LastImageRequest = nil
}

// Verify MockProvider implements AIProvider
var _ AIProvider = (*MockProvider)(nil)
