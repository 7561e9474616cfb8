package codforge

import (
	"reflect"
	"testing"
)

func TestCompleteFillsDefaults(t *testing.T) {
	locale := GetLocale("Italiano")
	doc := Complete(ContentDocument{Headline: "Titolo"}, locale)

	if doc.Language != "Italiano" || doc.Currency != "€" {
		t.Errorf("locale identity not filled: %q %q", doc.Language, doc.Currency)
	}
	if doc.Labels == nil || doc.Labels.COD != locale.Labels.COD {
		t.Error("labels bundle not attached from locale")
	}
	if len(doc.FormConfiguration) != 7 {
		t.Fatalf("expected 7 form fields, got %d", len(doc.FormConfiguration))
	}
	order := []FormFieldID{FieldName, FieldPhone, FieldAddress, FieldCity, FieldPostal, FieldEmail, FieldNotes}
	for i, f := range doc.FormConfiguration {
		if f.ID != order[i] {
			t.Errorf("field %d: got %q, want %q", i, f.ID, order[i])
		}
	}
	email := doc.FormConfiguration[5]
	if email.ID != FieldEmail || email.Enabled || email.Required {
		t.Errorf("email field must start disabled and optional: %+v", email)
	}
	if doc.Typography == nil || doc.Typography.FontFamily != FontSans || doc.Typography.H1Size != SizeLG {
		t.Errorf("unexpected typography default: %+v", doc.Typography)
	}
	if doc.StockConfig == nil || doc.StockConfig.Enabled || doc.StockConfig.Quantity != 13 {
		t.Errorf("unexpected stock default: %+v", doc.StockConfig)
	}
	if doc.SocialProofConfig == nil || !doc.SocialProofConfig.Enabled ||
		doc.SocialProofConfig.IntervalSeconds != 10 || doc.SocialProofConfig.MaxShows != 4 {
		t.Errorf("unexpected social proof default: %+v", doc.SocialProofConfig)
	}
	if doc.InsuranceConfig == nil || doc.InsuranceConfig.Enabled || doc.InsuranceConfig.Cost != "4.99" {
		t.Errorf("unexpected insurance default: %+v", doc.InsuranceConfig)
	}
	if doc.GadgetConfig == nil || doc.GadgetConfig.Enabled || doc.GadgetConfig.Cost != "9.99" {
		t.Errorf("unexpected gadget default: %+v", doc.GadgetConfig)
	}
	if doc.ThankYouConfig == nil || doc.ThankYouConfig.SlugSuffix != "-grazie" {
		t.Errorf("unexpected thank-you default: %+v", doc.ThankYouConfig)
	}
}

func TestCompleteGalleryFromHero(t *testing.T) {
	locale := GetLocale("Inglese")

	withHero := Complete(ContentDocument{HeroImage: "data:image/png;base64,AAA"}, locale)
	if len(withHero.GalleryImages) != 1 || withHero.GalleryImages[0] != withHero.HeroImage {
		t.Errorf("gallery should seed from hero image: %v", withHero.GalleryImages)
	}

	withoutHero := Complete(ContentDocument{}, locale)
	if withoutHero.GalleryImages == nil || len(withoutHero.GalleryImages) != 0 {
		t.Errorf("gallery should default empty, got %v", withoutHero.GalleryImages)
	}

	existing := Complete(ContentDocument{
		HeroImage:     "data:image/png;base64,AAA",
		GalleryImages: []string{"data:image/png;base64,BBB"},
	}, locale)
	if len(existing.GalleryImages) != 1 || existing.GalleryImages[0] != "data:image/png;base64,BBB" {
		t.Errorf("existing gallery must be kept: %v", existing.GalleryImages)
	}
}

func TestCompletePreservesExplicitZeroValues(t *testing.T) {
	locale := GetLocale("Italiano")
	off := false
	doc := ContentDocument{
		StockConfig:          &StockConfig{Enabled: false, Quantity: 0},
		SocialProofConfig:    &SocialProofConfig{Enabled: false},
		InsuranceConfig:      &AddonConfig{Enabled: false, Cost: "0"},
		ShowSocialProofBadge: &off,
		ShowDiscount:         &off,
	}
	got := Complete(doc, locale)

	if got.StockConfig.Quantity != 0 {
		t.Errorf("explicit zero quantity overwritten: %d", got.StockConfig.Quantity)
	}
	if got.SocialProofConfig.Enabled {
		t.Error("explicitly disabled social proof re-enabled")
	}
	if got.InsuranceConfig.Cost != "0" {
		t.Errorf("explicit zero cost overwritten: %q", got.InsuranceConfig.Cost)
	}
	if got.SocialBadgeVisible() {
		t.Error("explicitly hidden badge became visible")
	}
	if got.DiscountVisible() {
		t.Error("explicitly hidden discount became visible")
	}
}

func TestCompleteIdempotent(t *testing.T) {
	locale := GetLocale("Francese")
	partial := ContentDocument{
		Headline:  "Titre",
		HeroImage: "data:image/png;base64,AAA",
		Labels:    &UILabels{Reviews: "Témoignages"},
	}
	once := Complete(partial, locale)
	twice := Complete(once, locale)
	if !reflect.DeepEqual(once, twice) {
		t.Error("Complete is not idempotent")
	}
	if once.Labels.Reviews != "Témoignages" {
		t.Errorf("label override lost: %q", once.Labels.Reviews)
	}
	if once.Labels.COD != locale.Labels.COD {
		t.Errorf("missing labels not filled from locale: %q", once.Labels.COD)
	}
}
