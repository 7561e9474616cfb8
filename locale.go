package codforge

import (
	"reflect"
	"sort"
)

// CurrencyPos controls whether the currency symbol is rendered before or
// after the amount.
type CurrencyPos string

const (
	CurrencyBefore CurrencyPos = "before"
	CurrencyAfter  CurrencyPos = "after"
)

// UILabels is the flat bundle of every user-facing microcopy string a
// rendered page needs. Every locale record defines every field; lookups
// never fall through to an empty bundle.
//
// ThankYouTitle and ThankYouMsg may contain {name} and {phone}
// placeholders; OnlyLeft and SocialProof may contain {x}.
type UILabels struct {
	Reviews          string      `json:"reviews"`
	Offer            string      `json:"offer"`
	OnlyLeft         string      `json:"onlyLeft"`
	Secure           string      `json:"secure"`
	Returns          string      `json:"returns"`
	Original         string      `json:"original"`
	Express          string      `json:"express"`
	Warranty         string      `json:"warranty"`
	CheckoutHeader   string      `json:"checkoutHeader"`
	PaymentMethod    string      `json:"paymentMethod"`
	COD              string      `json:"cod"`
	Card             string      `json:"card"`
	ShippingInfo     string      `json:"shippingInfo"`
	CompleteOrder    string      `json:"completeOrder"`
	OrderReceived    string      `json:"orderReceived"`
	OrderReceivedMsg string      `json:"orderReceivedMsg"`
	TechDesign       string      `json:"techDesign"`
	DiscountLabel    string      `json:"discountLabel"`
	Certified        string      `json:"certified"`
	CurrencyPos      CurrencyPos `json:"currencyPos"`
	LegalDisclaimer  string      `json:"legalDisclaimer"`
	PrivacyPolicy    string      `json:"privacyPolicy"`
	TermsConditions  string      `json:"termsConditions"`
	CookiePolicy     string      `json:"cookiePolicy"`
	RightsReserved   string      `json:"rightsReserved"`
	GeneratedNote    string      `json:"generatedPageNote"`

	// Simulated card-payment fallback flow.
	CardErrorTitle string `json:"cardErrorTitle"`
	CardErrorMsg   string `json:"cardErrorMsg"`
	SwitchToCOD    string `json:"switchToCod"`
	MostPopular    string `json:"mostPopular"`
	GiveUpOffer    string `json:"giveUpOffer"`
	ConfirmCOD     string `json:"confirmCod"`

	// Thank-you page personalization.
	ThankYouTitle string `json:"thankYouTitle"`
	ThankYouMsg   string `json:"thankYouMsg"`
	BackToShop    string `json:"backToShop"`

	SocialProof string `json:"socialProof"`

	// Checkout add-ons.
	ShippingInsurance    string `json:"shippingInsurance"`
	GadgetLabel          string `json:"gadgetLabel"`
	InsuranceDescription string `json:"shippingInsuranceDescription"`
	GadgetDescription    string `json:"gadgetDescription"`
	FreeLabel            string `json:"freeLabel"`

	// Order summary rows.
	SummaryProduct   string `json:"summaryProduct"`
	SummaryShipping  string `json:"summaryShipping"`
	SummaryInsurance string `json:"summaryInsurance"`
	SummaryGadget    string `json:"summaryGadget"`
	SummaryTotal     string `json:"summaryTotal"`
}

// LocaleConfig is the static per-language record: currency, country
// context for prompts, cultural name pools for synthetic purchase
// notifications, localized form labels and the full UI label bundle.
type LocaleConfig struct {
	Name           string
	Currency       string
	LocaleTag      string // BCP 47 tag, e.g. "it-IT"
	DateLayout     string // time layout used for review dates
	CountryContext string // free text used in generation prompts
	VerifiedRole   string // role attached to every testimonial
	Announcement   string
	CTASubtext     string
	ThankYouSuffix string // slug suffix for the paired thank-you page
	BadgeName      string // name shown in the persistent social badge

	FormLabels map[FormFieldID]string

	// Cultural pools for synthetic "X from Y just bought" popups.
	Names    []string
	Cities   []string
	Action   string // e.g. "just purchased"
	FromWord string // preposition between name and city

	Labels UILabels
}

// DefaultLanguage is the fallback for unrecognized language names.
const DefaultLanguage = "Italiano"

// GetLocale returns the configuration for the named language. Unknown
// names fall back to the default locale; the call never fails.
func GetLocale(name string) LocaleConfig {
	if cfg, ok := locales[name]; ok {
		return cfg
	}
	return locales[DefaultLanguage]
}

// SupportedLanguages returns the supported language names in sorted
// order.
func SupportedLanguages() []string {
	names := make([]string, 0, len(locales))
	for name := range locales {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsSupportedLanguage reports whether name has its own locale record.
func IsSupportedLanguage(name string) bool {
	_, ok := locales[name]
	return ok
}

// MergeLabels overlays override onto base field by field. Non-empty
// override fields win; empty fields keep the base value. Used both for
// per-document label overrides and for splicing translated label
// subsets onto a target locale's defaults.
func MergeLabels(base UILabels, override UILabels) UILabels {
	out := base
	ov := reflect.ValueOf(override)
	dst := reflect.ValueOf(&out).Elem()
	for i := 0; i < ov.NumField(); i++ {
		if s := ov.Field(i).String(); s != "" {
			dst.Field(i).SetString(s)
		}
	}
	return out
}

// LabelFieldCount returns the number of microcopy keys in the bundle.
// Every locale record must populate all of them.
func LabelFieldCount() int {
	return reflect.TypeOf(UILabels{}).NumField()
}
