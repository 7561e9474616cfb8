package codforge

import "testing"

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"49.90", 49.9},
		{"49,90", 49.9},
		{"€ 49,90", 49.9},
		{"49.90 zł", 49.9},
		{"1299", 1299},
		{"", 0},
		{"free", 0},
		{"€", 0},
	}
	for _, tc := range cases {
		if got := ParsePrice(tc.in); got != tc.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCalculateTotal(t *testing.T) {
	doc := &ContentDocument{
		Price:              "39.00",
		ShippingCost:       "4.99",
		EnableShippingCost: true,
		InsuranceConfig:    &AddonConfig{Enabled: true, Cost: "4.99"},
		GadgetConfig:       &AddonConfig{Enabled: false, Cost: "9.99"},
	}

	got := CalculateTotal(doc, AddonSelections{Insurance: true, Gadget: true})
	if got != "48.98" {
		t.Errorf("total = %q, want 48.98", got)
	}

	// A selected but disabled add-on never charges.
	if got := CalculateTotal(doc, AddonSelections{Gadget: true}); got != "43.99" {
		t.Errorf("total = %q, want 43.99", got)
	}

	// Shipping only counts while enabled.
	doc.EnableShippingCost = false
	if got := CalculateTotal(doc, AddonSelections{}); got != "39.00" {
		t.Errorf("total = %q, want 39.00", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := FormatAmount("49.90", "€", CurrencyBefore); got != "€ 49.90" {
		t.Errorf("before: %q", got)
	}
	if got := FormatAmount("49.90", "zł", CurrencyAfter); got != "49.90 zł" {
		t.Errorf("after: %q", got)
	}
}
