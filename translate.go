package codforge

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Projection is the flat extract of every translatable string in a
// content document. Testimonial and feature entries keep their array
// positions so translated values can be spliced back in order.
// Testimonial names are excluded on the way out; the response carries a
// freshly generated target-locale name per entry instead.
type Projection struct {
	Headline            string                  `json:"headline"`
	Subheadline         string                  `json:"subheadline"`
	Benefits            []string                `json:"benefits"`
	Features            []ProjectionFeature     `json:"features"`
	CTAText             string                  `json:"ctaText"`
	CTASubtext          string                  `json:"ctaSubtext"`
	AnnouncementBarText string                  `json:"announcementBarText"`
	Testimonials        []ProjectionTestimonial `json:"testimonials"`
	BoxContent          *ProjectionBox          `json:"boxContent,omitempty"`
	FormLabels          []ProjectionFormLabel   `json:"formLabels"`

	InsuranceLabel       string `json:"insuranceLabel,omitempty"`
	InsuranceDescription string `json:"insuranceDescription"`
	GadgetLabel          string `json:"gadgetLabel,omitempty"`
	GadgetDescription    string `json:"gadgetDescription"`
	FreeLabel            string `json:"freeLabel"`
}

// ProjectionFeature is the translatable pair of one feature block.
type ProjectionFeature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectionTestimonial is the translatable subset of one testimonial.
// Name is populated only in translation responses.
type ProjectionTestimonial struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Name  string `json:"name,omitempty"`
}

// ProjectionBox is the translatable subset of the box-contents block.
type ProjectionBox struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ProjectionFormLabel pairs a form field ID with its visible label.
type ProjectionFormLabel struct {
	ID    FormFieldID `json:"id"`
	Label string      `json:"label"`
}

// ExtractProjection pulls every translatable string out of doc.
func ExtractProjection(doc *ContentDocument) Projection {
	labels := doc.Labels
	if labels == nil {
		l := GetLocale(doc.Language).Labels
		labels = &l
	}

	p := Projection{
		Headline:             doc.Headline,
		Subheadline:          doc.Subheadline,
		Benefits:             doc.Benefits,
		CTAText:              doc.CTAText,
		CTASubtext:           doc.CTASubtext,
		AnnouncementBarText:  doc.AnnouncementBarText,
		InsuranceDescription: labels.InsuranceDescription,
		GadgetDescription:    labels.GadgetDescription,
		FreeLabel:            labels.FreeLabel,
	}
	for _, f := range doc.Features {
		p.Features = append(p.Features, ProjectionFeature{Title: f.Title, Description: f.Description})
	}
	for _, t := range doc.Testimonials {
		p.Testimonials = append(p.Testimonials, ProjectionTestimonial{Title: t.Title, Text: t.Text})
	}
	if doc.BoxContent != nil && doc.BoxContent.Enabled {
		p.BoxContent = &ProjectionBox{Title: doc.BoxContent.Title, Items: doc.BoxContent.Items}
	}
	for _, f := range doc.FormConfiguration {
		p.FormLabels = append(p.FormLabels, ProjectionFormLabel{ID: f.ID, Label: f.Label})
	}
	if doc.InsuranceConfig != nil {
		p.InsuranceLabel = doc.InsuranceConfig.Label
	}
	if doc.GadgetConfig != nil {
		p.GadgetLabel = doc.GadgetConfig.Label
	}
	return p
}

// Translator clones content documents into new target locales.
type Translator struct {
	provider AIProvider
	cache    TranslationCache
	logger   *zap.Logger
	now      func() time.Time
	rng      *rand.Rand
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithTranslationCache enables cache-first translation lookups.
func WithTranslationCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithTranslatorLogger sets the structured logger.
func WithTranslatorLogger(logger *zap.Logger) TranslatorOption {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithTranslatorClock overrides the clock used for synthetic review
// dates.
func WithTranslatorClock(now func() time.Time) TranslatorOption {
	return func(t *Translator) {
		t.now = now
	}
}

// WithTranslatorRand overrides the randomness source. The default
// source is safe for concurrent use; a replacement must be too when the
// Translator is shared across goroutines.
func WithTranslatorRand(rng *rand.Rand) TranslatorOption {
	return func(t *Translator) {
		t.rng = rng
	}
}

// NewTranslator creates a Translator backed by the given provider.
func NewTranslator(provider AIProvider, opts ...TranslatorOption) (*Translator, error) {
	if provider == nil {
		return nil, &ConfigurationError{Message: "provider is required"}
	}
	t := &Translator{
		provider: provider,
		logger:   zap.NewNop(),
		now:      time.Now,
		rng:      newConcurrentRand(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Translate clones doc into targetLanguage. The returned document is a
// complete copy with every translatable string replaced, testimonial
// roles and dates rebuilt from the target locale, the target currency
// symbol, and a label bundle started from the target locale's defaults.
// Translation is all-or-nothing: any unusable payload fails with a
// TranslationError and doc is left untouched.
func (t *Translator) Translate(ctx context.Context, doc *ContentDocument, targetLanguage string) (*ContentDocument, error) {
	locale := GetLocale(targetLanguage)
	proj := ExtractProjection(doc)

	raw, err := t.fetchTranslation(ctx, proj, targetLanguage, locale)
	if err != nil {
		return nil, err
	}

	var translated Projection
	if err := json.Unmarshal([]byte(raw), &translated); err != nil {
		return nil, &TranslationError{Message: "translation returned non-JSON payload", Cause: err}
	}
	if err := checkCounts(proj, translated); err != nil {
		return nil, &TranslationError{Message: "translation changed array shapes", Cause: err}
	}

	out := *doc
	out.Language = targetLanguage
	out.Currency = locale.Currency
	out.Headline = nonEmpty(translated.Headline, doc.Headline)
	out.Subheadline = nonEmpty(translated.Subheadline, doc.Subheadline)
	out.CTAText = nonEmpty(translated.CTAText, doc.CTAText)
	out.CTASubtext = nonEmpty(translated.CTASubtext, doc.CTASubtext)
	out.AnnouncementBarText = nonEmpty(translated.AnnouncementBarText, doc.AnnouncementBarText)

	if len(translated.Benefits) > 0 {
		out.Benefits = translated.Benefits
	}

	out.Features = make([]Feature, len(doc.Features))
	for i, f := range doc.Features {
		nf := f
		nf.Title = nonEmpty(translated.Features[i].Title, f.Title)
		nf.Description = nonEmpty(translated.Features[i].Description, f.Description)
		out.Features[i] = nf
	}

	out.Testimonials = make([]Testimonial, len(doc.Testimonials))
	for i, src := range doc.Testimonials {
		nt := src
		tr := translated.Testimonials[i]
		nt.Name = nonEmpty(tr.Name, src.Name)
		nt.Title = nonEmpty(tr.Title, src.Title)
		nt.Text = nonEmpty(tr.Text, src.Text)
		nt.Role = locale.VerifiedRole
		nt.Date = randomHistoricalDate(locale, t.now(), t.rng)
		out.Testimonials[i] = nt
	}
	if len(out.Testimonials) > 0 {
		first := out.Testimonials[0]
		out.Testimonial = &first
	}

	if doc.BoxContent != nil {
		box := *doc.BoxContent
		if box.Enabled && translated.BoxContent != nil {
			box.Title = nonEmpty(translated.BoxContent.Title, box.Title)
			if len(translated.BoxContent.Items) > 0 {
				box.Items = translated.BoxContent.Items
			}
		}
		out.BoxContent = &box
	}

	// Label bundle restarts from the target locale's defaults so no
	// source-language microcopy leaks into untranslated UI areas. Only
	// the explicitly requested overrides are applied on top.
	labels := locale.Labels
	labels.InsuranceDescription = nonEmpty(translated.InsuranceDescription, labels.InsuranceDescription)
	labels.GadgetDescription = nonEmpty(translated.GadgetDescription, labels.GadgetDescription)
	labels.FreeLabel = nonEmpty(translated.FreeLabel, labels.FreeLabel)

	out.FormConfiguration = make([]FormField, len(doc.FormConfiguration))
	copy(out.FormConfiguration, doc.FormConfiguration)
	for _, tl := range translated.FormLabels {
		for i := range out.FormConfiguration {
			if out.FormConfiguration[i].ID == tl.ID && tl.Label != "" {
				out.FormConfiguration[i].Label = tl.Label
			}
		}
	}

	if doc.InsuranceConfig != nil {
		ins := *doc.InsuranceConfig
		ins.Label = nonEmpty(translated.InsuranceLabel, labels.ShippingInsurance)
		labels.ShippingInsurance = ins.Label
		out.InsuranceConfig = &ins
	}
	if doc.GadgetConfig != nil {
		gad := *doc.GadgetConfig
		gad.Label = nonEmpty(translated.GadgetLabel, labels.GadgetLabel)
		labels.GadgetLabel = gad.Label
		out.GadgetConfig = &gad
	}
	out.Labels = &labels

	if doc.ThankYouConfig != nil {
		ty := *doc.ThankYouConfig
		ty.SlugSuffix = locale.ThankYouSuffix
		out.ThankYouConfig = &ty
	}

	return &out, nil
}

func (t *Translator) fetchTranslation(ctx context.Context, proj Projection, targetLanguage string, locale LocaleConfig) (string, error) {
	projJSON, err := json.Marshal(proj)
	if err != nil {
		return "", &TranslationError{Message: "failed to encode projection", Cause: err}
	}

	key := CacheKey(HashProjection(proj), targetLanguage)
	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			t.logger.Debug("translation cache hit", zap.String("target", targetLanguage))
			return cached, nil
		}
	}

	prompt := buildTranslationPrompt(string(projJSON), targetLanguage, locale)
	raw, err := t.provider.GenerateJSON(ctx, JSONRequest{Prompt: prompt})
	if err != nil {
		return "", &TranslationError{Message: fmt.Sprintf("translation to %s failed", targetLanguage), Cause: err}
	}
	if raw == "" {
		return "", &TranslationError{Message: "translation returned empty text"}
	}

	if t.cache != nil {
		if err := t.cache.Set(key, raw); err != nil {
			t.logger.Warn("failed to cache translation", zap.Error(err))
		}
	}
	return raw, nil
}

func checkCounts(src, got Projection) error {
	if len(got.Features) != len(src.Features) {
		return &CountMismatchError{Field: "features", Expected: len(src.Features), Got: len(got.Features)}
	}
	if len(got.Testimonials) != len(src.Testimonials) {
		return &CountMismatchError{Field: "testimonials", Expected: len(src.Testimonials), Got: len(got.Testimonials)}
	}
	return nil
}

func nonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
