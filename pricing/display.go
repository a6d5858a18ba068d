package pricing

import (
	"sort"

	"github.com/eringen/tourweb/content"
)

// Visible returns the plans sorted by their order field, as shown on the
// landing page.
func Visible(plans []content.PricingPlan) []content.PricingPlan {
	out := append([]content.PricingPlan(nil), plans...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// GridColumns returns the desktop column count for n plans: two for up to
// two plans, three for three, four otherwise, never more than the
// configured plans per row.
func GridColumns(n int, settings content.PricingSettings) int {
	cols := 4
	switch {
	case n <= 2:
		cols = 2
	case n == 3:
		cols = 3
	}
	if settings.PlansPerRow > 0 && cols > settings.PlansPerRow {
		cols = settings.PlansPerRow
	}
	return cols
}

// CTALabel returns the button text of a plan card.
func CTALabel(plan content.PricingPlan) string {
	switch {
	case plan.CTAText != "":
		return plan.CTAText
	case plan.PriceIsCustom():
		return "Contact Us"
	default:
		return "Get Started"
	}
}

// FeatureLimit is how many features a card lists before the rest collapse
// on small screens. The table layout always lists every feature.
func FeatureLimit(settings content.PricingSettings) int {
	if settings.Layout != content.LayoutCards {
		return 0
	}
	return settings.Responsive.Mobile.ShowFeatures
}

// Features returns at most limit features of plan; limit < 1 means all.
func Features(plan content.PricingPlan, limit int) []string {
	if limit < 1 || limit >= len(plan.Features) {
		return plan.Features
	}
	return plan.Features[:limit]
}
