package codforge

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice extracts a numeric amount from free-form price copy.
// Every character that is not a digit, comma or period is stripped, a
// comma is treated as a decimal separator, and anything unparseable
// coerces to 0. It never fails.
func ParsePrice(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Replace(b.String(), ",", ".", 1)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

// AddonSelections records which optional checkout extras the customer
// ticked.
type AddonSelections struct {
	Insurance bool
	Gadget    bool
}

// CalculateTotal sums the order: base price, shipping when enabled, and
// each add-on only when it is both enabled on the document and selected
// by the customer. The result is formatted to two decimal places.
func CalculateTotal(doc *ContentDocument, sel AddonSelections) string {
	total := ParsePrice(doc.Price)
	if doc.EnableShippingCost && doc.ShippingCost != "" {
		total += ParsePrice(doc.ShippingCost)
	}
	if sel.Insurance && doc.InsuranceConfig != nil && doc.InsuranceConfig.Enabled && doc.InsuranceConfig.Cost != "" {
		total += ParsePrice(doc.InsuranceConfig.Cost)
	}
	if sel.Gadget && doc.GadgetConfig != nil && doc.GadgetConfig.Enabled && doc.GadgetConfig.Cost != "" {
		total += ParsePrice(doc.GadgetConfig.Cost)
	}
	return fmt.Sprintf("%.2f", total)
}

// FormatAmount renders an amount with its currency symbol positioned
// per the document's label bundle.
func FormatAmount(amount, currency string, pos CurrencyPos) string {
	if pos == CurrencyBefore {
		return currency + " " + amount
	}
	return amount + " " + currency
}
