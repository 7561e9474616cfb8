package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/codforge/codforge"
)

func renderableDoc(t *testing.T, language string) codforge.ContentDocument {
	t.Helper()
	doc := codforge.ContentDocument{
		Language:            language,
		Headline:            "Orologio Smart X",
		Subheadline:         "Il tuo nuovo compagno",
		AnnouncementBarText: "SPEDIZIONE GRATUITA",
		Benefits:            []string{"Veloce", "Robusto"},
		Features: []codforge.Feature{
			{Title: "Batteria", Description: "Una settimana di autonomia"},
		},
		Testimonials: []codforge.Testimonial{
			{Name: "Giulia", Title: "Perfetto", Text: "Arrivato in due giorni", Rating: 5, Date: "01/02/2026"},
		},
		CTAText:       "Ordina Ora",
		Price:         "49.90",
		OriginalPrice: "99.90",
		HeroImage:     "data:image/png;base64,QUFB",
		StockConfig:   &codforge.StockConfig{Enabled: true, Quantity: 7},
	}
	return codforge.Complete(doc, codforge.GetLocale(language))
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestPageRendersCoreSections(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	doc := renderableDoc(t, "Italiano")

	html, err := r.Page(&doc, Site{Name: "CODForge Shop"})
	if err != nil {
		t.Fatal(err)
	}
	page := parse(t, html)

	if lang, _ := page.Find("html").Attr("lang"); lang != "it-IT" {
		t.Errorf("lang = %q", lang)
	}
	if got := page.Find("h1").Text(); got != "Orologio Smart X" {
		t.Errorf("headline %q", got)
	}
	if !strings.Contains(html, "SPEDIZIONE GRATUITA") {
		t.Error("announcement bar missing")
	}

	// Price with strikethrough original and the computed discount.
	if !strings.Contains(html, "49.90") || !strings.Contains(html, "99.90") {
		t.Error("prices missing")
	}
	if !strings.Contains(html, "-50%") {
		t.Error("discount percent missing")
	}

	// Scarcity with {x} resolved.
	scarcity := page.Find(".scarcity").Text()
	if !strings.Contains(scarcity, "7") || strings.Contains(scarcity, "{x}") {
		t.Errorf("scarcity %q", scarcity)
	}

	// Checkout form shows the enabled fields only (email disabled).
	if page.Find(`input[name="email"]`).Length() != 0 {
		t.Error("disabled email field rendered")
	}
	if page.Find(`input[name="name"]`).Length() != 1 || page.Find(`input[name="phone"]`).Length() != 1 {
		t.Error("core form fields missing")
	}
	if page.Find(`textarea[name="notes"]`).Length() != 1 {
		t.Error("notes textarea missing")
	}

	// Localized microcopy from the label bundle.
	labels := codforge.GetLocale("Italiano").Labels
	if !strings.Contains(html, labels.COD) {
		t.Error("COD payment label missing")
	}
	if !strings.Contains(html, labels.LegalDisclaimer[:40]) {
		t.Error("legal disclaimer missing")
	}

	if !strings.Contains(html, "Arrivato in due giorni") {
		t.Error("testimonial missing")
	}
}

func TestPageAddonRows(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	doc := renderableDoc(t, "Inglese")
	doc.InsuranceConfig.Enabled = true
	doc.GadgetConfig = &codforge.AddonConfig{Enabled: true, Label: "Free Gadget", Cost: "9.99", DefaultChecked: true}

	html, err := r.Page(&doc, Site{})
	if err != nil {
		t.Fatal(err)
	}
	page := parse(t, html)

	if page.Find("#addon-insurance").Length() != 1 {
		t.Error("insurance row missing")
	}
	if _, checked := page.Find("#addon-gadget").Attr("checked"); !checked {
		t.Error("gadget default-checked lost")
	}
	// English locale renders the symbol before the amount.
	if !strings.Contains(html, "€ 9.99") {
		t.Error("gadget cost not formatted for locale")
	}
}

func TestPageScriptSlotsInjectedRaw(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	doc := renderableDoc(t, "Italiano")
	doc.MetaLandingHTML = `<script id="meta-pixel">fbq('init')</script>`
	doc.ExtraLandingHTML = `<script id="extra">console.log(1)</script>`

	html, err := r.Page(&doc, Site{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `id="meta-pixel"`) || !strings.Contains(html, `id="extra"`) {
		t.Error("script slots escaped or dropped")
	}
}

func TestPageNotificationFeedScript(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	doc := renderableDoc(t, "Italiano")
	html, err := r.Page(&doc, Site{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "new EventSource") || !strings.Contains(html, "/events") {
		t.Error("page with social proof enabled must subscribe to the event stream")
	}
	if !strings.Contains(html, `id="proof-toast"`) {
		t.Error("notification toast missing")
	}
	// The scarcity line keeps its raw template so the script can
	// substitute live stock counts.
	scarcity := parse(t, html).Find("#scarcity")
	if tmpl, _ := scarcity.Attr("data-template"); !strings.Contains(tmpl, "{x}") {
		t.Errorf("scarcity template %q lacks {x} placeholder", tmpl)
	}

	doc.SocialProofConfig = &codforge.SocialProofConfig{Enabled: false}
	html, err = r.Page(&doc, Site{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "new EventSource") {
		t.Error("disabled social proof must not subscribe to the event stream")
	}
}

func TestThankYouPersonalization(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ty := codforge.ContentDocument{Language: "Inglese"}
	ty = codforge.Complete(ty, codforge.GetLocale("Inglese"))

	html, err := r.ThankYou(&ty, Site{}, "Anna", "555-0100")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "{name}") || strings.Contains(html, "{phone}") {
		t.Error("placeholders not substituted")
	}
	if !strings.Contains(html, "Anna") {
		t.Error("name not injected")
	}
	if lang, _ := parse(t, html).Find("html").Attr("lang"); lang != "en-IE" {
		t.Errorf("lang = %q", lang)
	}
}
