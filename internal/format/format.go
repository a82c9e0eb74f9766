// Package format renders aggregation results into display-ready strings:
// rupee amounts, percentages and the color lookups consumed by the
// presentation layer. Formatting is bit-exact by contract: one decimal place
// for percentages, thousands-grouped rupees, zero never rendered as NaN.
package format

import (
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Rupees formats an amount as "₹1,234.56". Conversion to float happens only
// at the display boundary; aggregation stays decimal throughout.
func Rupees(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return "₹" + humanize.CommafWithDigits(f, 2)
}

// RupeesWhole formats an amount as "₹1,234", used by chart annotations and
// pivot cost columns.
func RupeesWhole(amount decimal.Decimal) string {
	f, _ := amount.Round(0).Float64()
	return "₹" + humanize.CommafWithDigits(f, 0)
}

// Percent formats a percentage with one decimal place, e.g. "12.3%".
// A zero value renders as "0.0%", never NaN.
func Percent(p decimal.Decimal) string {
	return p.StringFixed(1) + "%"
}

// AmountWithShare renders a category cell of the dealer summary:
// "₹1,234 (12.3%)" for a positive amount, "-" otherwise.
func AmountWithShare(amount, percent decimal.Decimal) string {
	if !amount.IsPositive() {
		return "-"
	}
	return RupeesWhole(amount) + " (" + Percent(percent) + ")"
}

// PivotCell renders a quantity cell: blank for zero, plain number otherwise.
// The underlying pivot value remains a real zero for downstream sums.
func PivotCell(quantity decimal.Decimal) string {
	if quantity.IsZero() {
		return ""
	}
	return quantity.String()
}

// CategoryColors maps categories to the chart palette of the dealer dashboard.
var CategoryColors = map[string]string{
	models.CategoryBioFertilizers:  "#1f77b4",
	models.CategoryMicronutrients:  "#ff7f0e",
	models.CategoryChelated:        "#2ca02c",
	models.CategoryBioStimulants:   "#d62728",
	models.CategoryOtherBulkOrders: "#9467bd",
	models.CategoryUncategorized:   "#8c564b",
}

// CategoryRowColors maps categories to the pale row backgrounds of the
// quantity pivot table.
var CategoryRowColors = map[string]string{
	models.CategoryBioFertilizers:  "#E8F8F5",
	models.CategoryMicronutrients:  "#FEF9E7",
	models.CategoryChelated:        "#FDEDEC",
	models.CategoryBioStimulants:   "#EBF5FB",
	models.CategoryOtherBulkOrders: "#F9EBEA",
	models.CategoryUncategorized:   "#F4F6F6",
}

// TierColors maps customer tiers to row highlight colors.
var TierColors = map[string]string{
	models.TierGold:   "#FFFACD",
	models.TierSilver: "#D3D3D3",
	models.TierBronze: "#F5DEB3",
	models.TierCopper: "#ADD8E6",
}

// CategoryColor returns the chart color for a category, defaulting to grey.
func CategoryColor(category string) string {
	if color, ok := CategoryColors[category]; ok {
		return color
	}
	return "#cccccc"
}

// TierColor returns the highlight color for a tier, defaulting to white.
func TierColor(tierName string) string {
	if color, ok := TierColors[tierName]; ok {
		return color
	}
	return "#FFFFFF"
}
