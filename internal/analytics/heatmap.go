package analytics

import (
	"sort"

	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// HeatmapOptions tunes heatmap construction.
type HeatmapOptions struct {
	// ExcludeCategories drops rows of these categories before pivoting.
	// The product timeline dashboard excludes Other Bulk Orders so bulk
	// commodity volumes do not swamp the color scale.
	ExcludeCategories []string
}

// Heatmap is the item × month quantity matrix for one customer tier.
// Cells hold real zeros; renderers give zero a distinct color outside the
// gradient, so the distinction between zero and non-zero is preserved here.
type Heatmap struct {
	Tier   string
	Items  []string
	Months []models.Month
	Cells  [][]decimal.Decimal // [item][month]
}

// IsEmpty reports whether the heatmap has no rows.
func (h Heatmap) IsEmpty() bool {
	return len(h.Items) == 0
}

// MaxValue returns the largest cell value, the top of the color gradient.
func (h Heatmap) MaxValue() decimal.Decimal {
	max := decimal.Zero
	for _, row := range h.Cells {
		for _, cell := range row {
			if cell.GreaterThan(max) {
				max = cell
			}
		}
	}
	return max
}

// HeatmapForTier builds the quantity heatmap for one customer tier over the
// filtered subset. Months are ordered chronologically by the underlying
// date, never by label; items whose quantities are all zero are dropped.
func HeatmapForTier(t *dataset.Table, f dataset.Filter, tierName string, opts HeatmapOptions) Heatmap {
	excluded := make(map[string]bool, len(opts.ExcludeCategories))
	for _, category := range opts.ExcludeCategories {
		excluded[category] = true
	}

	f.Tier = tierName

	monthSeen := make(map[models.Month]bool)
	quantities := make(map[string]map[models.Month]decimal.Decimal)
	for _, tx := range t.Select(f) {
		if excluded[tx.Category] || tx.Month.IsZero() {
			continue
		}
		if quantities[tx.ItemName] == nil {
			quantities[tx.ItemName] = make(map[models.Month]decimal.Decimal)
		}
		quantities[tx.ItemName][tx.Month] = quantities[tx.ItemName][tx.Month].Add(tx.Quantity)
		monthSeen[tx.Month] = true
	}

	months := make([]models.Month, 0, len(monthSeen))
	for m := range monthSeen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	items := make([]string, 0, len(quantities))
	for item := range quantities {
		items = append(items, item)
	}
	sort.Strings(items)

	h := Heatmap{Tier: tierName, Months: months}
	for _, item := range items {
		row := make([]decimal.Decimal, len(months))
		rowTotal := decimal.Zero
		for i, m := range months {
			row[i] = quantities[item][m]
			rowTotal = rowTotal.Add(row[i])
		}
		if !rowTotal.IsPositive() {
			continue
		}
		h.Items = append(h.Items, item)
		h.Cells = append(h.Cells, row)
	}
	return h
}

// Heatmaps builds one heatmap per tier, skipping tiers with no data.
func Heatmaps(t *dataset.Table, f dataset.Filter, opts HeatmapOptions) []Heatmap {
	var out []Heatmap
	for _, tierName := range t.Tiers() {
		h := HeatmapForTier(t, f, tierName, opts)
		if !h.IsEmpty() {
			out = append(out, h)
		}
	}
	return out
}
