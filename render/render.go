// Package render turns content documents into public storefront HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/codforge/codforge"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer renders landing and thank-you pages from parsed templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded template set.
func New() (*Renderer, error) {
	tmpl := template.New("").Funcs(template.FuncMap{
		"raw": func(s string) template.HTML { return template.HTML(s) },
		"seq": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
	})
	tmpl, err := tmpl.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Site carries the site-wide values shown outside the document itself.
type Site struct {
	Name       string
	FooterText string
}

// pageView is the flattened data the landing template binds against.
type pageView struct {
	Doc    *codforge.ContentDocument
	Labels codforge.UILabels
	Site   Site

	Price           string
	OriginalPrice   string
	ShowDiscount    bool
	DiscountPercent int
	ShippingCost    string

	Gallery          []string
	ScarcityText     string
	ScarcityTemplate string
	ShowScarcity     bool
	ShowBadge        bool
	BadgeName        string
	ShowProofFeed    bool

	Insurance *addonView
	Gadget    *addonView

	FormFields []codforge.FormField

	MetaHTML  template.HTML
	TikTokTML template.HTML
	ExtraHTML template.HTML
}

type addonView struct {
	Label          string
	Description    string
	Cost           string
	DefaultChecked bool
}

// thankYouView is the data the thank-you template binds against.
type thankYouView struct {
	Doc    *codforge.ContentDocument
	Labels codforge.UILabels
	Site   Site

	Title   string
	Message string

	MetaHTML  template.HTML
	TikTokTML template.HTML
	ExtraHTML template.HTML
}

// scarcityTemplate returns the scarcity line with "{x}" left in place,
// so the notification script can substitute live stock counts.
func scarcityTemplate(doc *codforge.ContentDocument, labels codforge.UILabels) string {
	if doc.StockConfig != nil && doc.StockConfig.TextOverride != "" {
		return doc.StockConfig.TextOverride
	}
	return labels.OnlyLeft
}

func labelsFor(doc *codforge.ContentDocument) codforge.UILabels {
	if doc.Labels != nil {
		return *doc.Labels
	}
	return codforge.GetLocale(doc.Language).Labels
}

// Page renders the full storefront for doc.
func (r *Renderer) Page(doc *codforge.ContentDocument, site Site) (string, error) {
	labels := labelsFor(doc)

	view := pageView{
		Doc:          doc,
		Labels:       labels,
		Site:         site,
		Price:        money(doc.Price, doc.Currency, labels.CurrencyPos),
		ShowDiscount: doc.DiscountVisible() && doc.OriginalPrice != "",
		Gallery:      doc.GalleryImages,
		ShowBadge:    doc.SocialBadgeVisible(),
		BadgeName:    codforge.GetLocale(doc.Language).BadgeName,
		FormFields:   enabledFields(doc.FormConfiguration),
		MetaHTML:     template.HTML(doc.MetaLandingHTML),
		TikTokTML:    template.HTML(doc.TiktokLandingHTML),
		ExtraHTML:    template.HTML(doc.ExtraLandingHTML),
	}
	if view.ShowDiscount {
		view.OriginalPrice = money(doc.OriginalPrice, doc.Currency, labels.CurrencyPos)
		view.DiscountPercent = discountPercent(doc.Price, doc.OriginalPrice)
	}
	if doc.EnableShippingCost && doc.ShippingCost != "" {
		view.ShippingCost = money(doc.ShippingCost, doc.Currency, labels.CurrencyPos)
	}
	if doc.StockConfig != nil && doc.StockConfig.Enabled {
		view.ShowScarcity = true
		view.ScarcityText = codforge.ScarcityText(doc, doc.StockConfig.Quantity)
		view.ScarcityTemplate = scarcityTemplate(doc, labels)
	}
	view.ShowProofFeed = doc.SocialProofConfig != nil && doc.SocialProofConfig.Enabled
	if doc.InsuranceConfig != nil && doc.InsuranceConfig.Enabled {
		view.Insurance = &addonView{
			Label:          doc.InsuranceConfig.Label,
			Description:    labels.InsuranceDescription,
			Cost:           money(doc.InsuranceConfig.Cost, doc.Currency, labels.CurrencyPos),
			DefaultChecked: doc.InsuranceConfig.DefaultChecked,
		}
	}
	if doc.GadgetConfig != nil && doc.GadgetConfig.Enabled {
		view.Gadget = &addonView{
			Label:          doc.GadgetConfig.Label,
			Description:    labels.GadgetDescription,
			Cost:           money(doc.GadgetConfig.Cost, doc.Currency, labels.CurrencyPos),
			DefaultChecked: doc.GadgetConfig.DefaultChecked,
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.tmpl", view); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return setDocumentLanguage(buf.String(), doc.Language)
}

// ThankYou renders the paired thank-you page. Name and phone replace
// the {name} and {phone} placeholders of the localized templates.
func (r *Renderer) ThankYou(doc *codforge.ContentDocument, site Site, name, phone string) (string, error) {
	labels := labelsFor(doc)

	view := thankYouView{
		Doc:       doc,
		Labels:    labels,
		Site:      site,
		Title:     personalize(labels.ThankYouTitle, name, phone),
		Message:   personalize(labels.ThankYouMsg, name, phone),
		MetaHTML:  template.HTML(doc.MetaThankYouHTML),
		TikTokTML: template.HTML(doc.TiktokThankYouHTML),
		ExtraHTML: template.HTML(doc.ExtraThankYouHTML),
	}
	if doc.Headline != "" {
		view.Title = personalize(doc.Headline, name, phone)
	}
	if doc.Subheadline != "" {
		view.Message = personalize(doc.Subheadline, name, phone)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "thankyou.tmpl", view); err != nil {
		return "", fmt.Errorf("rendering thank-you page: %w", err)
	}
	return setDocumentLanguage(buf.String(), doc.Language)
}

func personalize(s, name, phone string) string {
	s = strings.ReplaceAll(s, "{name}", name)
	return strings.ReplaceAll(s, "{phone}", phone)
}

func enabledFields(fields []codforge.FormField) []codforge.FormField {
	var out []codforge.FormField
	for _, f := range fields {
		if f.Enabled {
			out = append(out, f)
		}
	}
	return out
}

func money(value, currency string, pos codforge.CurrencyPos) string {
	return codforge.FormatAmount(fmt.Sprintf("%.2f", codforge.ParsePrice(value)), currency, pos)
}

func discountPercent(price, original string) int {
	p := codforge.ParsePrice(price)
	o := codforge.ParsePrice(original)
	if o <= 0 || p >= o {
		return 0
	}
	return int(math.Round((1 - p/o) * 100))
}

// setDocumentLanguage stamps lang and dir on the html element from the
// document's locale tag.
func setDocumentLanguage(html, language string) (string, error) {
	locale := codforge.GetLocale(language)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing rendered page: %w", err)
	}
	doc.Find("html").SetAttr("lang", locale.LocaleTag)
	doc.Find("html").SetAttr("dir", "ltr")

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing rendered page: %w", err)
	}
	return out, nil
}
