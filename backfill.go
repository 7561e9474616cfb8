package codforge

// Default values substituted by Complete when a document does not
// define the corresponding field.
const (
	defaultStockQuantity  = 13
	defaultSocialInterval = 10
	defaultSocialMaxShows = 4
	defaultInsuranceCost  = "4.99"
	defaultGadgetCost     = "9.99"
	defaultPrice          = "49.90"
	defaultOriginalPrice  = "99.90"
	defaultShippingCost   = "0"
)

// DefaultTypography returns the typography tokens applied to documents
// that carry none.
func DefaultTypography() TypographyConfig {
	return TypographyConfig{
		FontFamily: FontSans,
		H1Size:     SizeLG,
		H2Size:     SizeMD,
		BodySize:   SizeMD,
	}
}

// DefaultFormConfig returns the localized checkout form in canonical
// order. Email stays disabled and postal code and notes stay optional
// until the operator decides otherwise.
func DefaultFormConfig(locale LocaleConfig) []FormField {
	l := locale.FormLabels
	return []FormField{
		{ID: FieldName, Label: l[FieldName], Enabled: true, Required: true, Kind: InputText},
		{ID: FieldPhone, Label: l[FieldPhone], Enabled: true, Required: true, Kind: InputTel},
		{ID: FieldAddress, Label: l[FieldAddress], Enabled: true, Required: true, Kind: InputText},
		{ID: FieldCity, Label: l[FieldCity], Enabled: true, Required: true, Kind: InputText},
		{ID: FieldPostal, Label: l[FieldPostal], Enabled: true, Required: false, Kind: InputText},
		{ID: FieldEmail, Label: l[FieldEmail], Enabled: false, Required: false, Kind: InputEmail},
		{ID: FieldNotes, Label: l[FieldNotes], Enabled: true, Required: false, Kind: InputTextarea},
	}
}

// Complete fills every absent optional field of doc with a locale or
// scheme derived default and returns the completed document. Fields the
// document already defines are kept as-is, including explicit zero
// values: an empty string, a zero cost or a disabled flag inside a
// present sub-config is an operator decision, not a gap. Complete is
// idempotent.
func Complete(doc ContentDocument, locale LocaleConfig) ContentDocument {
	out := doc

	if out.Language == "" {
		out.Language = locale.Name
	}
	if out.Currency == "" {
		out.Currency = locale.Currency
	}
	if out.TemplateID == "" {
		out.TemplateID = TemplateGadgetCOD
	}
	if out.AnnouncementBarText == "" {
		out.AnnouncementBarText = locale.Announcement
	}
	if out.CTASubtext == "" {
		out.CTASubtext = locale.CTASubtext
	}

	if out.Labels == nil {
		labels := locale.Labels
		out.Labels = &labels
	} else {
		merged := MergeLabels(locale.Labels, *out.Labels)
		out.Labels = &merged
	}

	if len(out.FormConfiguration) == 0 {
		out.FormConfiguration = DefaultFormConfig(locale)
	}

	if out.GalleryImages == nil {
		if out.HeroImage != "" {
			out.GalleryImages = []string{out.HeroImage}
		} else {
			out.GalleryImages = []string{}
		}
	}

	if out.Typography == nil {
		t := DefaultTypography()
		out.Typography = &t
	}
	if out.StockConfig == nil {
		out.StockConfig = &StockConfig{Enabled: false, Quantity: defaultStockQuantity}
	}
	if out.SocialProofConfig == nil {
		out.SocialProofConfig = &SocialProofConfig{
			Enabled:         true,
			IntervalSeconds: defaultSocialInterval,
			MaxShows:        defaultSocialMaxShows,
		}
	}
	if out.InsuranceConfig == nil {
		out.InsuranceConfig = &AddonConfig{
			Label: out.Labels.ShippingInsurance,
			Cost:  defaultInsuranceCost,
		}
	}
	if out.GadgetConfig == nil {
		out.GadgetConfig = &AddonConfig{
			Label: out.Labels.GadgetLabel,
			Cost:  defaultGadgetCost,
		}
	}
	if out.ThankYouConfig == nil {
		out.ThankYouConfig = &ThankYouConfig{
			Enabled:    true,
			SlugSuffix: locale.ThankYouSuffix,
		}
	}

	return out
}
