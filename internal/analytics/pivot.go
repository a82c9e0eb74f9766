package analytics

import (
	"sort"

	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// PivotRow is one (category, item) row of the quantity pivot.
// Quantities aligns with Pivot.Months; a zero cell is a real zero, rendered
// blank only at display time so downstream sums stay correct.
type PivotRow struct {
	Category   string
	ItemName   string
	Quantities []decimal.Decimal
	TotalQty   decimal.Decimal
	TotalCost  decimal.Decimal // Item total across the subset ignoring the date range
}

// Pivot is the (category, item) × month quantity matrix.
type Pivot struct {
	Months []models.Month
	Rows   []PivotRow
}

// QuantityPivot builds the quantity-by-month matrix for the filtered subset.
// Per-row total cost intentionally ignores the filter's date range so an
// item's cost column covers all months of the otherwise-filtered subset.
func QuantityPivot(t *dataset.Table, f dataset.Filter) Pivot {
	type key struct {
		category string
		item     string
	}

	subset := t.Select(f)

	// Items whose rows all lack a month bucket get no pivot row; they only
	// show up in views that do not group by month.
	monthSeen := make(map[models.Month]bool)
	quantities := make(map[key]map[models.Month]decimal.Decimal)
	for _, tx := range subset {
		if tx.Month.IsZero() {
			continue
		}
		k := key{category: tx.Category, item: tx.ItemName}
		if quantities[k] == nil {
			quantities[k] = make(map[models.Month]decimal.Decimal)
		}
		quantities[k][tx.Month] = quantities[k][tx.Month].Add(tx.Quantity)
		monthSeen[tx.Month] = true
	}

	// Total cost per item over the month-unfiltered subset
	costs := make(map[string]decimal.Decimal)
	for _, tx := range t.Select(f.WithoutMonths()) {
		costs[tx.ItemName] = costs[tx.ItemName].Add(tx.ItemTotal)
	}

	months := make([]models.Month, 0, len(monthSeen))
	for m := range monthSeen {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	keys := make([]key, 0, len(quantities))
	for k := range quantities {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].item < keys[j].item
	})

	pivot := Pivot{Months: months}
	for _, k := range keys {
		row := PivotRow{
			Category:   k.category,
			ItemName:   k.item,
			Quantities: make([]decimal.Decimal, len(months)),
			TotalCost:  costs[k.item],
		}
		for i, m := range months {
			row.Quantities[i] = quantities[k][m]
			row.TotalQty = row.TotalQty.Add(quantities[k][m])
		}
		pivot.Rows = append(pivot.Rows, row)
	}
	return pivot
}

// ColumnTotals sums every pivot column: one entry per month, then the total
// quantity and total cost across all rows.
func (p Pivot) ColumnTotals() (monthTotals []decimal.Decimal, totalQty, totalCost decimal.Decimal) {
	monthTotals = make([]decimal.Decimal, len(p.Months))
	for _, row := range p.Rows {
		for i, q := range row.Quantities {
			monthTotals[i] = monthTotals[i].Add(q)
		}
		totalQty = totalQty.Add(row.TotalQty)
		totalCost = totalCost.Add(row.TotalCost)
	}
	return monthTotals, totalQty, totalCost
}
