package codforge

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"
)

// mockTranslationCache records translation payloads in memory.
type mockTranslationCache struct {
	data   map[string]string
	setErr error
	hits   int
	sets   int
}

func newMockTranslationCache() *mockTranslationCache {
	return &mockTranslationCache{data: make(map[string]string)}
}

func (c *mockTranslationCache) Get(key string) (string, bool) {
	v, ok := c.data[key]
	if ok {
		c.hits++
	}
	return v, ok
}

func (c *mockTranslationCache) Set(key, value string) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	return nil
}

func italianSourceDoc() ContentDocument {
	doc := ContentDocument{
		Language:    "Italiano",
		Headline:    "Il Meglio della Tecnologia",
		Subheadline: "Qualità garantita",
		Benefits:    []string{"Veloce", "Affidabile"},
		CTAText:     "Ordina Ora",
		Features: []Feature{
			{Title: "Batteria", Description: "Dura tutto il giorno"},
			{Title: "Design", Description: "Compatto e leggero"},
		},
		Testimonials: []Testimonial{
			{Name: "Giulia", Title: "Fantastico", Text: "Lo uso ogni giorno", Rating: 5},
			{Name: "Marco", Title: "Consigliato", Text: "Arrivato in due giorni", Rating: 5},
			{Name: "Sara", Title: "Perfetto", Text: "Ottimo acquisto", Rating: 4},
		},
		Price: "49.90",
	}
	return Complete(doc, GetLocale("Italiano"))
}

// translatePayload builds a well-formed provider response for the given
// source document, with every string prefixed so splicing is visible.
func translatePayload(t *testing.T, doc *ContentDocument, prefix string) string {
	t.Helper()
	proj := ExtractProjection(doc)
	proj.Headline = prefix + proj.Headline
	proj.Subheadline = prefix + proj.Subheadline
	proj.CTAText = prefix + proj.CTAText
	benefits := make([]string, len(proj.Benefits))
	for i, b := range proj.Benefits {
		benefits[i] = prefix + b
	}
	proj.Benefits = benefits
	for i := range proj.Features {
		proj.Features[i].Title = prefix + proj.Features[i].Title
		proj.Features[i].Description = prefix + proj.Features[i].Description
	}
	for i := range proj.Testimonials {
		proj.Testimonials[i].Title = prefix + proj.Testimonials[i].Title
		proj.Testimonials[i].Text = prefix + proj.Testimonials[i].Text
		proj.Testimonials[i].Name = prefix + "Name"
	}
	for i := range proj.FormLabels {
		proj.FormLabels[i].Label = prefix + proj.FormLabels[i].Label
	}
	proj.InsuranceDescription = prefix + "insurance"
	proj.GadgetDescription = prefix + "gadget"
	proj.FreeLabel = prefix + "free"
	data, err := json.Marshal(proj)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func fixedTranslator(t *testing.T, provider AIProvider, opts ...TranslatorOption) *Translator {
	t.Helper()
	opts = append(opts,
		WithTranslatorClock(func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }),
		WithTranslatorRand(rand.New(rand.NewSource(7))),
	)
	tr, err := NewTranslator(provider, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestTranslateClonesIntoTargetLocale(t *testing.T) {
	src := italianSourceDoc()
	mock := &mockAI{jsonResponse: translatePayload(t, &src, "DE ")}
	tr := fixedTranslator(t, mock)

	out, err := tr.Translate(context.Background(), &src, "Tedesco")
	if err != nil {
		t.Fatal(err)
	}

	if out.Language != "Tedesco" || out.Currency != "€" {
		t.Errorf("target identity: %q %q", out.Language, out.Currency)
	}
	if !strings.HasPrefix(out.Headline, "DE ") {
		t.Errorf("headline not spliced: %q", out.Headline)
	}
	if len(out.Testimonials) != 3 {
		t.Fatalf("got %d testimonials", len(out.Testimonials))
	}
	locale := GetLocale("Tedesco")
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	for i, r := range out.Testimonials {
		if r.Role != locale.VerifiedRole {
			t.Errorf("testimonial %d role %q, want %q", i, r.Role, locale.VerifiedRole)
		}
		parsed, err := time.Parse(locale.DateLayout, r.Date)
		if err != nil {
			t.Fatalf("testimonial %d date %q: %v", i, r.Date, err)
		}
		age := now.Sub(parsed)
		if age < 6*24*time.Hour || age > 121*24*time.Hour {
			t.Errorf("testimonial %d date %q outside 7-120 day window", i, r.Date)
		}
		if r.Name != "DE Name" {
			t.Errorf("testimonial %d name %q not replaced", i, r.Name)
		}
	}
	if out.Testimonial == nil || out.Testimonial.Name != out.Testimonials[0].Name {
		t.Error("legacy testimonial not refreshed")
	}

	// The label bundle restarts from the target defaults; only the
	// description and free-label overrides survive.
	if out.Labels == nil {
		t.Fatal("labels missing")
	}
	if out.Labels.COD != locale.Labels.COD {
		t.Errorf("cod label %q, want target default %q", out.Labels.COD, locale.Labels.COD)
	}
	if out.Labels.InsuranceDescription != "DE insurance" {
		t.Errorf("insurance description %q", out.Labels.InsuranceDescription)
	}
	if out.Labels.GadgetDescription != "DE gadget" {
		t.Errorf("gadget description %q", out.Labels.GadgetDescription)
	}
	if out.Labels.FreeLabel != "DE free" {
		t.Errorf("free label %q", out.Labels.FreeLabel)
	}

	for _, f := range out.FormConfiguration {
		if !strings.HasPrefix(f.Label, "DE ") {
			t.Errorf("form label %q not spliced", f.Label)
		}
	}
	if out.ThankYouConfig == nil || out.ThankYouConfig.SlugSuffix != "-danke" {
		t.Error("thank-you suffix not rebuilt for target")
	}

	// Source document is untouched.
	if src.Language != "Italiano" || !strings.HasPrefix(src.Headline, "Il ") {
		t.Error("source document mutated")
	}
}

func TestTranslateKeepsTitlesTheModelOmits(t *testing.T) {
	src := italianSourceDoc()
	mock := &mockAI{respond: func(req JSONRequest) (string, error) {
		proj := ExtractProjection(&src)
		for i := range proj.Testimonials {
			proj.Testimonials[i].Title = ""
			proj.Testimonials[i].Text = "translated " + proj.Testimonials[i].Text
		}
		data, err := json.Marshal(proj)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}}
	tr := fixedTranslator(t, mock)

	out, err := tr.Translate(context.Background(), &src, "Spagnolo")
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range out.Testimonials {
		if r.Title != src.Testimonials[i].Title {
			t.Errorf("testimonial %d title %q, want source %q kept", i, r.Title, src.Testimonials[i].Title)
		}
		if !strings.HasPrefix(r.Text, "translated ") {
			t.Errorf("testimonial %d text not spliced: %q", i, r.Text)
		}
	}
}

func TestTranslateAtomicOnBadPayloads(t *testing.T) {
	src := italianSourceDoc()

	cases := map[string]*mockAI{
		"provider error": {jsonErr: errors.New("quota")},
		"empty":          {jsonResponse: ""},
		"non-json":       {jsonResponse: "sorry, here is your translation:"},
	}
	for name, mock := range cases {
		tr := fixedTranslator(t, mock)
		out, err := tr.Translate(context.Background(), &src, "Francese")
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var trErr *TranslationError
		if !errors.As(err, &trErr) {
			t.Errorf("%s: expected TranslationError, got %T", name, err)
		}
		if out != nil {
			t.Errorf("%s: expected nil document", name)
		}
	}
}

func TestTranslateRejectsShapeChanges(t *testing.T) {
	src := italianSourceDoc()

	short := ExtractProjection(&src)
	short.Testimonials = short.Testimonials[:1]
	data, err := json.Marshal(short)
	if err != nil {
		t.Fatal(err)
	}

	tr := fixedTranslator(t, &mockAI{jsonResponse: string(data)})
	if _, err := tr.Translate(context.Background(), &src, "Spagnolo"); err == nil {
		t.Fatal("expected error on testimonial count change")
	} else {
		var cm *CountMismatchError
		if !errors.As(err, &cm) {
			t.Fatalf("expected CountMismatchError in chain, got %v", err)
		}
		if cm.Field != "testimonials" || cm.Expected != 3 || cm.Got != 1 {
			t.Errorf("mismatch detail: %+v", cm)
		}
	}
}

func TestTranslateCache(t *testing.T) {
	src := italianSourceDoc()
	payload := translatePayload(t, &src, "SV ")
	mock := &mockAI{jsonResponse: payload}
	cache := newMockTranslationCache()
	tr := fixedTranslator(t, mock, WithTranslationCache(cache))

	if _, err := tr.Translate(context.Background(), &src, "Svedese"); err != nil {
		t.Fatal(err)
	}
	if mock.jsonCalls != 1 || cache.sets != 1 {
		t.Fatalf("first pass: %d calls, %d sets", mock.jsonCalls, cache.sets)
	}

	// Identical content and target hits the cache.
	if _, err := tr.Translate(context.Background(), &src, "Svedese"); err != nil {
		t.Fatal(err)
	}
	if mock.jsonCalls != 1 {
		t.Errorf("cache miss on identical request: %d calls", mock.jsonCalls)
	}

	// A different target language misses.
	mock.jsonResponse = translatePayload(t, &src, "EL ")
	if _, err := tr.Translate(context.Background(), &src, "Greco"); err != nil {
		t.Fatal(err)
	}
	if mock.jsonCalls != 2 {
		t.Errorf("expected provider call for new target: %d calls", mock.jsonCalls)
	}

	// Cache write failures degrade to a warning.
	failing := newMockTranslationCache()
	failing.setErr = errors.New("redis down")
	tr = fixedTranslator(t, &mockAI{jsonResponse: payload}, WithTranslationCache(failing))
	if _, err := tr.Translate(context.Background(), &src, "Svedese"); err != nil {
		t.Fatalf("cache write failure must not fail translation: %v", err)
	}
}

func TestExtractProjectionShape(t *testing.T) {
	src := italianSourceDoc()
	proj := ExtractProjection(&src)

	if proj.BoxContent != nil {
		t.Error("disabled box content must be excluded")
	}
	if len(proj.FormLabels) != len(src.FormConfiguration) {
		t.Errorf("form labels: %d, want %d", len(proj.FormLabels), len(src.FormConfiguration))
	}

	src.BoxContent = &BoxContent{Enabled: true, Title: "Nella confezione", Items: []string{"Cavo", "Manuale"}}
	proj = ExtractProjection(&src)
	if proj.BoxContent == nil || len(proj.BoxContent.Items) != 2 {
		t.Error("enabled box content must be projected")
	}

	data, err := json.Marshal(proj)
	if err != nil {
		t.Fatal(err)
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"headline", "benefits", "features", "testimonials", "boxContent", "formLabels", "insuranceDescription", "gadgetDescription", "freeLabel"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("projection missing key %q", want)
		}
	}
	if _, ok := keys["uiTranslation"]; ok {
		t.Error("full label bundle must never be projected")
	}
}
