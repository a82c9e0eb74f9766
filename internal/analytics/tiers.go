package analytics

import (
	"sort"

	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"

	"github.com/shopspring/decimal"
)

// TierRow summarizes one customer tier across the filtered subset.
type TierRow struct {
	Tier        string
	Customers   int // Distinct customers in the tier
	TotalOrders int // Sum of distinct challan counts
	TotalAmount decimal.Decimal
}

// TierSummary groups the dealer summary by customer tier. Rows come back in
// tier order (Gold first); tiers with no customers in the subset are omitted.
func TierSummary(t *dataset.Table, f dataset.Filter) []TierRow {
	byTier := make(map[string]*TierRow)
	for _, dealer := range DealerSummary(t, f) {
		row := byTier[dealer.Tier]
		if row == nil {
			row = &TierRow{Tier: dealer.Tier}
			byTier[dealer.Tier] = row
		}
		row.Customers++
		row.TotalOrders += dealer.TotalOrders
		row.TotalAmount = row.TotalAmount.Add(dealer.TotalSales)
	}

	var rows []TierRow
	for _, name := range t.Tiers() {
		if row, ok := byTier[name]; ok {
			rows = append(rows, *row)
		}
	}
	return rows
}

// CategoryAmount is a per-category cell of the dealer tier summary:
// the amount and its share of the dealer's total.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// DealerTierRow is one dealer's line in the tier-classified summary table,
// with a cell per configured category.
type DealerTierRow struct {
	CustomerName string
	TotalOrders  int
	TotalAmount  decimal.Decimal
	Tier         string
	ByCategory   []CategoryAmount // Aligned with Table.Categories()
}

// DealerTierSummary builds the tier-classified dealer table: per dealer the
// distinct order count, total amount, tier, and a per-category amount with
// its share of the dealer's own total. Rows are sorted by customer name.
func DealerTierSummary(t *dataset.Table, f dataset.Filter) []DealerTierRow {
	categories := t.Categories()

	type acc struct {
		orders     map[string]bool
		total      decimal.Decimal
		tier       string
		byCategory map[string]decimal.Decimal
	}
	dealers := make(map[string]*acc)

	for _, tx := range t.Select(f) {
		a := dealers[tx.CustomerName]
		if a == nil {
			a = &acc{
				orders:     make(map[string]bool),
				byCategory: make(map[string]decimal.Decimal),
			}
			dealers[tx.CustomerName] = a
		}
		a.orders[tx.ChallanNumber] = true
		a.total = a.total.Add(tx.ItemTotal)
		a.tier = tx.Tier
		a.byCategory[tx.Category] = a.byCategory[tx.Category].Add(tx.ItemTotal)
	}

	names := make([]string, 0, len(dealers))
	for name := range dealers {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]DealerTierRow, 0, len(names))
	for _, name := range names {
		a := dealers[name]
		row := DealerTierRow{
			CustomerName: name,
			TotalOrders:  len(a.orders),
			TotalAmount:  a.total,
			Tier:         a.tier,
		}
		for _, category := range categories {
			amount := a.byCategory[category]
			percent := decimal.Zero
			if a.total.IsPositive() {
				percent = amount.Div(a.total).Mul(hundred).Round(1)
			}
			row.ByCategory = append(row.ByCategory, CategoryAmount{
				Category: category,
				Amount:   amount,
				Percent:  percent,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// DealerTierTotals folds a set of dealer tier rows into one grand-total row.
// Category percentages are recomputed against the combined total, with the
// usual zero-total short circuit.
func DealerTierTotals(rows []DealerTierRow, categories []string) DealerTierRow {
	total := DealerTierRow{CustomerName: "Total", Tier: "-"}
	byCategory := make(map[string]decimal.Decimal)

	for _, row := range rows {
		total.TotalOrders += row.TotalOrders
		total.TotalAmount = total.TotalAmount.Add(row.TotalAmount)
		for _, cell := range row.ByCategory {
			byCategory[cell.Category] = byCategory[cell.Category].Add(cell.Amount)
		}
	}

	for _, category := range categories {
		amount := byCategory[category]
		percent := decimal.Zero
		if total.TotalAmount.IsPositive() {
			percent = amount.Div(total.TotalAmount).Mul(hundred).Round(1)
		}
		total.ByCategory = append(total.ByCategory, CategoryAmount{
			Category: category,
			Amount:   amount,
			Percent:  percent,
		})
	}
	return total
}
