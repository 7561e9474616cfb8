package codforge

// PageTone controls the register of the generated marketing copy.
type PageTone string

const (
	// ToneProfessional uses measured, benefit-led copy.
	ToneProfessional PageTone = "Professional"
	// ToneUrgent uses scarcity and hype framing.
	ToneUrgent PageTone = "Urgent/Hype"
	// ToneFriendly uses first-person, conversational copy.
	ToneFriendly PageTone = "Friendly/Personal"
	// ToneLuxury uses premium, understated copy.
	ToneLuxury PageTone = "Luxury"
)

// TemplateID selects the storefront layout a document is rendered with.
type TemplateID string

// TemplateGadgetCOD is the cash-on-delivery gadget storefront layout.
const TemplateGadgetCOD TemplateID = "gadget-cod"

// ProductDetails is the operator-supplied brief a page is generated from.
type ProductDetails struct {
	Name           string
	Niche          string
	Description    string
	TargetAudience string
	Tone           PageTone
	Language       string   // Target language name (e.g. "Italiano", "Polacco")
	Images         []string // Reference images as data URLs
	FeatureCount   int      // Number of feature paragraphs to request (default 3)
}

// FormFieldID identifies one of the fixed checkout form fields.
type FormFieldID string

const (
	FieldName    FormFieldID = "name"
	FieldPhone   FormFieldID = "phone"
	FieldAddress FormFieldID = "address"
	FieldCity    FormFieldID = "city"
	FieldPostal  FormFieldID = "cap"
	FieldEmail   FormFieldID = "email"
	FieldNotes   FormFieldID = "notes"
)

// InputKind is the HTML input type a form field renders as.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTel      InputKind = "tel"
	InputEmail    InputKind = "email"
	InputTextarea InputKind = "textarea"
)

// FormField configures one checkout form field.
type FormField struct {
	ID       FormFieldID `json:"id"`
	Label    string      `json:"label"`
	Enabled  bool        `json:"enabled"`
	Required bool        `json:"required"`
	Kind     InputKind   `json:"type"`
}

// Testimonial is one customer review owned by a content document.
// Role and Date are never trusted from AI output; the pipelines
// overwrite them from the owning locale's configuration.
type Testimonial struct {
	Name   string `json:"name"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"text"`
	Role   string `json:"role"`
	Rating int    `json:"rating,omitempty"`
	Date   string `json:"date,omitempty"`
	Image  string `json:"image,omitempty"`
}

// Feature is one feature paragraph block.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	ShowCTA     bool   `json:"showCta,omitempty"`
}

// FontFamily is the page font family token.
type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

// SizeStep is a coarse typography size token.
type SizeStep string

const (
	SizeSM  SizeStep = "sm"
	SizeMD  SizeStep = "md"
	SizeLG  SizeStep = "lg"
	SizeXL  SizeStep = "xl"
	Size2XL SizeStep = "2xl"
)

// TypographyConfig holds the coarse typography tokens for a page.
type TypographyConfig struct {
	FontFamily FontFamily `json:"fontFamily"`
	H1Size     SizeStep   `json:"h1Size"`
	H2Size     SizeStep   `json:"h2Size"`
	BodySize   SizeStep   `json:"bodySize"`
}

// CustomTypography holds optional per-element pixel size overrides.
type CustomTypography struct {
	H1    string `json:"h1,omitempty"`
	H2    string `json:"h2,omitempty"`
	H3    string `json:"h3,omitempty"`
	Body  string `json:"body,omitempty"`
	Small string `json:"small,omitempty"`
	CTA   string `json:"cta,omitempty"`
}

// PriceStyles holds optional price display overrides.
type PriceStyles struct {
	Color    string `json:"color,omitempty"`    // Hex color override
	FontSize string `json:"fontSize,omitempty"` // Pixel size override
}

// StockConfig configures the scarcity counter.
type StockConfig struct {
	Enabled  bool `json:"enabled"`
	Quantity int  `json:"quantity"`
	// TextOverride is a custom scarcity message; "{x}" is replaced
	// with the remaining quantity.
	TextOverride string `json:"textOverride,omitempty"`
}

// SocialProofConfig configures the periodic purchase notifications.
type SocialProofConfig struct {
	Enabled         bool `json:"enabled"`
	IntervalSeconds int  `json:"intervalSeconds"`
	MaxShows        int  `json:"maxShows"`
}

// AddonConfig configures an optional paid checkout extra
// (shipping insurance, gadget bundle).
type AddonConfig struct {
	Enabled        bool   `json:"enabled"`
	Label          string `json:"label"`
	Cost           string `json:"cost"`
	DefaultChecked bool   `json:"defaultChecked"`
}

// BoxContent is the optional "what you receive" block.
type BoxContent struct {
	Enabled bool     `json:"enabled"`
	Title   string   `json:"title"`
	Items   []string `json:"items"`
	Image   string   `json:"image,omitempty"`
}

// ThankYouConfig configures the paired thank-you page.
type ThankYouConfig struct {
	Enabled    bool   `json:"enabled"`
	SlugSuffix string `json:"slugSuffix,omitempty"`
}

// ContentDocument is the full record describing one landing page (or its
// paired thank-you page): copy, pricing, media, and configuration. It is
// persisted and replaced as a whole unit.
//
// Optional sub-configurations are pointers so that "absent" (to be
// backfilled by Complete) stays distinguishable from an explicit zero
// value, which is always preserved.
type ContentDocument struct {
	TemplateID TemplateID `json:"templateId,omitempty"`
	Language   string     `json:"language,omitempty"`
	Currency   string     `json:"currency,omitempty"`

	Headline        string `json:"headline"`
	Subheadline     string `json:"subheadline"`
	HeroImagePrompt string `json:"heroImagePrompt,omitempty"`
	HeroImage       string `json:"heroImageBase64,omitempty"`

	// GalleryImages is the deduplicated image gallery. Use
	// AppendGalleryImage to preserve the no-duplicates invariant.
	GalleryImages []string `json:"generatedImages,omitempty"`

	AnnouncementBarText string `json:"announcementBarText,omitempty"`

	StockConfig       *StockConfig       `json:"stockConfig,omitempty"`
	SocialProofConfig *SocialProofConfig `json:"socialProofConfig,omitempty"`

	ShowFeatureIcons     bool  `json:"showFeatureIcons,omitempty"`
	ShowSocialProofBadge *bool `json:"showSocialProofBadge,omitempty"` // nil means visible

	Benefits []string  `json:"benefits"`
	Features []Feature `json:"features"`

	// ReviewsPosition is the feature index the reviews section is
	// inserted after; nil places reviews at the bottom.
	ReviewsPosition *int `json:"reviewsPosition,omitempty"`

	Testimonial  *Testimonial  `json:"testimonial,omitempty"` // Legacy single review
	Testimonials []Testimonial `json:"testimonials,omitempty"`

	BoxContent *BoxContent `json:"boxContent,omitempty"`

	CTAText    string `json:"ctaText"`
	CTASubtext string `json:"ctaSubtext,omitempty"`

	ColorScheme     string `json:"colorScheme,omitempty"`
	ButtonColor     string `json:"buttonColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`

	Niche string `json:"niche,omitempty"`

	Price              string `json:"price,omitempty"`
	OriginalPrice      string `json:"originalPrice,omitempty"`
	ShowDiscount       *bool  `json:"showDiscount,omitempty"` // nil means visible
	ShippingCost       string `json:"shippingCost,omitempty"`
	EnableShippingCost bool   `json:"enableShippingCost,omitempty"`

	InsuranceConfig *AddonConfig `json:"insuranceConfig,omitempty"`
	GadgetConfig    *AddonConfig `json:"gadgetConfig,omitempty"`

	PriceStyles      *PriceStyles      `json:"priceStyles,omitempty"`
	CustomTypography *CustomTypography `json:"customTypography,omitempty"`

	WebhookURL string `json:"webhookUrl,omitempty"`

	// Ad-platform script injection slots, split by destination page.
	MetaLandingHTML    string `json:"metaLandingHtml,omitempty"`
	TiktokLandingHTML  string `json:"tiktokLandingHtml,omitempty"`
	MetaThankYouHTML   string `json:"metaThankYouHtml,omitempty"`
	TiktokThankYouHTML string `json:"tiktokThankYouHtml,omitempty"`
	ExtraLandingHTML   string `json:"extraLandingHtml,omitempty"`
	ExtraThankYouHTML  string `json:"extraThankYouHtml,omitempty"`

	// CustomThankYouURL redirects checkout completion to an external
	// page, bypassing the built-in thank-you page entirely.
	CustomThankYouURL string `json:"customThankYouUrl,omitempty"`

	FormConfiguration []FormField       `json:"formConfiguration,omitempty"`
	Typography        *TypographyConfig `json:"typography,omitempty"`

	// Labels is the document's own copy of the locale microcopy
	// bundle, allowing per-document overrides independent of the
	// shared locale table.
	Labels *UILabels `json:"uiTranslation,omitempty"`

	ThankYouConfig *ThankYouConfig `json:"thankYouConfig,omitempty"`

	CustomFooterCopyrightText string `json:"customFooterCopyrightText,omitempty"`
}

// Reviews returns the testimonial list, falling back to the legacy
// single testimonial when the list is empty.
func (d *ContentDocument) Reviews() []Testimonial {
	if len(d.Testimonials) > 0 {
		return d.Testimonials
	}
	if d.Testimonial != nil {
		return []Testimonial{*d.Testimonial}
	}
	return nil
}

// SocialBadgeVisible reports whether the persistent "N people bought"
// badge is shown. The badge defaults to visible.
func (d *ContentDocument) SocialBadgeVisible() bool {
	return d.ShowSocialProofBadge == nil || *d.ShowSocialProofBadge
}

// DiscountVisible reports whether the strikethrough discount display is
// shown. Discounts default to visible.
func (d *ContentDocument) DiscountVisible() bool {
	return d.ShowDiscount == nil || *d.ShowDiscount
}

// SiteConfig holds the site-wide settings edited in the admin panel.
type SiteConfig struct {
	SiteName   string `json:"siteName"`
	FooterText string `json:"footerText"`
}
