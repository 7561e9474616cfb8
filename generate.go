package codforge

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/codforge/codforge/imageutil"
)

// Defaults applied when the product brief leaves counts unset.
const (
	DefaultFeatureCount = 3
	DefaultReviewCount  = 10
)

// ImageStyle selects the instruction family for a gallery image
// variant.
type ImageStyle string

const (
	ImageStyleTechnical   ImageStyle = "technical"
	ImageStyleBeforeAfter ImageStyle = "before_after"
	ImageStyleLifestyle   ImageStyle = "human_use"
	ImageStyleCustom      ImageStyle = "custom"
)

// ImageVariant is one requested gallery image.
type ImageVariant struct {
	Style        ImageStyle
	CustomPrompt string // Used when Style is ImageStyleCustom
}

// ImageResult is one completed gallery image request, delivered on the
// enrichment channel. Failed requests carry Err and an empty Image.
type ImageResult struct {
	Image string
	Err   error
}

// Generator produces complete content documents from product briefs.
type Generator struct {
	provider AIProvider
	logger   *zap.Logger
	now      func() time.Time
	rng      *rand.Rand
}

// GeneratorOption is a functional option for configuring the Generator.
type GeneratorOption func(*Generator)

// WithGeneratorLogger sets the structured logger.
func WithGeneratorLogger(logger *zap.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithGeneratorClock overrides the clock used for synthetic review
// dates.
func WithGeneratorClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) {
		g.now = now
	}
}

// WithGeneratorRand overrides the randomness source. The default source
// is safe for concurrent use; a replacement must be too when the
// Generator is shared across goroutines.
func WithGeneratorRand(rng *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.rng = rng
	}
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider AIProvider, opts ...GeneratorOption) (*Generator, error) {
	if provider == nil {
		return nil, &ConfigurationError{Message: "provider is required"}
	}
	g := &Generator{
		provider: provider,
		logger:   zap.NewNop(),
		now:      time.Now,
		rng:      newConcurrentRand(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate produces a complete, locale-backfilled content document for
// the given product brief. Gallery image enrichment is not part of this
// call; see EnrichImages.
func (g *Generator) Generate(ctx context.Context, product ProductDetails, reviewCount int) (*ContentDocument, error) {
	language := product.Language
	if language == "" {
		language = DefaultLanguage
	}
	locale := GetLocale(language)

	featureCount := product.FeatureCount
	if featureCount <= 0 {
		featureCount = DefaultFeatureCount
	}
	if reviewCount <= 0 {
		reviewCount = DefaultReviewCount
	}

	prompt := buildGenerationPrompt(product, locale, featureCount, reviewCount)
	refs := g.referenceImages(product.Images)

	raw, err := g.provider.GenerateJSON(ctx, JSONRequest{
		Prompt:     prompt,
		Images:     refs,
		Structured: true,
		Schema:     generationSchema(locale, featureCount, reviewCount),
	})
	if err != nil {
		return nil, &GenerationError{Message: "content generation failed", Cause: err}
	}
	if raw == "" {
		return nil, &GenerationError{Message: "generation returned empty text"}
	}

	var doc ContentDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &GenerationError{Message: "generation returned non-JSON payload", Cause: err}
	}

	// The generator's output is advisory on list lengths: a count
	// mismatch is carried as-is and only logged.
	if len(doc.Features) != featureCount {
		g.logger.Warn("feature count differs from request",
			zap.Int("requested", featureCount),
			zap.Int("returned", len(doc.Features)))
	}
	if len(doc.Testimonials) != reviewCount {
		g.logger.Warn("review count differs from request",
			zap.Int("requested", reviewCount),
			zap.Int("returned", len(doc.Testimonials)))
	}

	now := g.now()
	for i := range doc.Testimonials {
		doc.Testimonials[i].Role = locale.VerifiedRole
		doc.Testimonials[i].Date = randomHistoricalDate(locale, now, g.rng)
	}
	if doc.Testimonial != nil {
		doc.Testimonial.Role = locale.VerifiedRole
		doc.Testimonial.Date = randomHistoricalDate(locale, now, g.rng)
	}

	doc.Language = language
	doc.Currency = locale.Currency
	doc.Niche = product.Niche
	doc.Price = defaultPrice
	doc.OriginalPrice = defaultOriginalPrice
	visible := true
	doc.ShowDiscount = &visible
	doc.ShippingCost = defaultShippingCost
	doc.EnableShippingCost = false
	badge := true
	doc.ShowSocialProofBadge = &badge

	completed := Complete(doc, locale)
	return &completed, nil
}

// reviewsPayload is the structured response of a review regeneration
// request.
type reviewsPayload struct {
	Testimonials []Testimonial `json:"testimonials"`
}

// GenerateReviews produces count fresh testimonials for an existing
// document, in its language, without touching the rest of the copy.
func (g *Generator) GenerateReviews(ctx context.Context, doc *ContentDocument, count int) ([]Testimonial, error) {
	if count <= 0 {
		count = DefaultReviewCount
	}
	locale := GetLocale(doc.Language)
	prompt := buildReviewsPrompt(doc, locale, count)

	raw, err := g.provider.GenerateJSON(ctx, JSONRequest{
		Prompt:     prompt,
		Structured: true,
		Schema:     reviewsSchema(locale, count),
	})
	if err != nil {
		return nil, &GenerationError{Message: "review generation failed", Cause: err}
	}
	if raw == "" {
		return nil, &GenerationError{Message: "review generation returned empty text"}
	}

	var payload reviewsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &GenerationError{Message: "review generation returned non-JSON payload", Cause: err}
	}

	now := g.now()
	for i := range payload.Testimonials {
		payload.Testimonials[i].Role = locale.VerifiedRole
		payload.Testimonials[i].Date = randomHistoricalDate(locale, now, g.rng)
	}
	return payload.Testimonials, nil
}

// EnrichImages requests one style-conditioned gallery image per variant
// and delivers completed results on the returned channel, which closes
// once every request has finished. Results arrive in completion order.
// Failures surface as ImageResult entries with Err set and never abort
// the remaining requests. Callers append successes to the document via
// AppendGalleryImage, which drops exact duplicates.
func (g *Generator) EnrichImages(ctx context.Context, heroDataURL string, variants []ImageVariant) <-chan ImageResult {
	results := make(chan ImageResult, len(variants))

	mime, data, err := imageutil.Normalize(heroDataURL)
	if err != nil {
		results <- ImageResult{Err: &ImageGenerationError{Message: "cannot process reference image", Cause: err}}
		close(results)
		return results
	}
	ref := ReferenceImage{MIMEType: mime, Data: data}

	var wg sync.WaitGroup
	for _, v := range variants {
		wg.Add(1)
		go func(v ImageVariant) {
			defer wg.Done()
			images, err := g.provider.GenerateImages(ctx, ImageRequest{
				Image:       ref,
				Instruction: imageStyleInstruction(v.Style, v.CustomPrompt),
			})
			if err != nil {
				g.logger.Warn("image generation failed", zap.String("style", string(v.Style)), zap.Error(err))
				results <- ImageResult{Err: &ImageGenerationError{Message: "image generation failed", Cause: err}}
				return
			}
			for _, img := range images {
				results <- ImageResult{Image: img}
			}
		}(v)
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

// referenceImages normalizes uploaded data-URL images for prompt
// attachment. Remote URLs and broken payloads are skipped with a
// warning.
func (g *Generator) referenceImages(images []string) []ReferenceImage {
	var refs []ReferenceImage
	for _, img := range images {
		mime, data, err := imageutil.Normalize(img)
		if err != nil {
			g.logger.Warn("skipping reference image", zap.Error(err))
			continue
		}
		refs = append(refs, ReferenceImage{MIMEType: mime, Data: data})
	}
	return refs
}
