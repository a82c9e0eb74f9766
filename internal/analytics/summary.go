// Package analytics computes the derived views over the transaction table:
// dealer summaries, category shares, monthly breakdowns, quantity pivots,
// tier summaries and heatmap matrices. Every function is a pure computation
// over an immutable table plus a filter, so results are deterministic and
// repeatable.
package analytics

import (
	"sort"

	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DealerRow is one customer's line in the dealer summary.
type DealerRow struct {
	CustomerName string
	TotalSales   decimal.Decimal
	TotalOrders  int // Count of distinct challan numbers
	Tier         string
}

// DealerSummary aggregates sales and distinct order counts per customer.
// Rows are sorted by total sales descending with a stable ascending
// tie-break on customer name.
func DealerSummary(t *dataset.Table, f dataset.Filter) []DealerRow {
	sales := make(map[string]decimal.Decimal)
	challans := make(map[string]map[string]bool)
	tiers := make(map[string]string)

	for _, tx := range t.Select(f) {
		sales[tx.CustomerName] = sales[tx.CustomerName].Add(tx.ItemTotal)
		if challans[tx.CustomerName] == nil {
			challans[tx.CustomerName] = make(map[string]bool)
		}
		challans[tx.CustomerName][tx.ChallanNumber] = true
		tiers[tx.CustomerName] = tx.Tier
	}

	rows := make([]DealerRow, 0, len(sales))
	for name, total := range sales {
		rows = append(rows, DealerRow{
			CustomerName: name,
			TotalSales:   total,
			TotalOrders:  len(challans[name]),
			Tier:         tiers[name],
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TotalSales.Equal(rows[j].TotalSales) {
			return rows[i].TotalSales.GreaterThan(rows[j].TotalSales)
		}
		return rows[i].CustomerName < rows[j].CustomerName
	})
	return rows
}

// ShareRow is one category's slice of a subset's sales.
type ShareRow struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal // One decimal place; 0 when the subset total is zero
}

// CategoryShare sums item totals per category for the filtered subset and
// computes each category's percentage of the subset total. Categories with
// no rows in the subset are omitted; a zero subset total short-circuits every
// percentage to 0 instead of dividing by zero.
func CategoryShare(t *dataset.Table, f dataset.Filter) []ShareRow {
	amounts := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, tx := range t.Select(f) {
		amounts[tx.Category] = amounts[tx.Category].Add(tx.ItemTotal)
		total = total.Add(tx.ItemTotal)
	}

	var rows []ShareRow
	for _, category := range t.Categories() {
		amount, present := amounts[category]
		if !present {
			continue
		}
		percent := decimal.Zero
		if total.IsPositive() {
			percent = amount.Div(total).Mul(hundred).Round(1)
		}
		rows = append(rows, ShareRow{Category: category, Amount: amount, Percent: percent})
	}
	return rows
}

// MonthlyCell is the sales of one category in one month.
type MonthlyCell struct {
	Month    models.Month
	Category string
	Amount   decimal.Decimal
}

// MonthlyTotal is a month's sales across all categories, used for chart
// annotation above stacked bars.
type MonthlyTotal struct {
	Month  models.Month
	Amount decimal.Decimal
}

// MonthlyBreakdown groups the filtered subset's sales by (month, category)
// and also returns per-month grand totals. Months are ordered by calendar
// date, never by label. Rows without a month bucket are excluded here; they
// still count in views that do not group by month.
func MonthlyBreakdown(t *dataset.Table, f dataset.Filter) ([]MonthlyCell, []MonthlyTotal) {
	type key struct {
		month    models.Month
		category string
	}
	sums := make(map[key]decimal.Decimal)
	totals := make(map[models.Month]decimal.Decimal)

	for _, tx := range t.Select(f) {
		if tx.Month.IsZero() {
			continue
		}
		k := key{month: tx.Month, category: tx.Category}
		sums[k] = sums[k].Add(tx.ItemTotal)
		totals[tx.Month] = totals[tx.Month].Add(tx.ItemTotal)
	}

	months := make([]models.Month, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	var cells []MonthlyCell
	var grandTotals []MonthlyTotal
	for _, m := range months {
		for _, category := range t.Categories() {
			if amount, ok := sums[key{month: m, category: category}]; ok {
				cells = append(cells, MonthlyCell{Month: m, Category: category, Amount: amount})
			}
		}
		grandTotals = append(grandTotals, MonthlyTotal{Month: m, Amount: totals[m]})
	}
	return cells, grandTotals
}
