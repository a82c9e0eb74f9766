// Package dataset builds the canonical in-memory transaction table: raw rows
// are normalized, annotated with category and customer tier, and frozen.
// Every view is a read-only projection over one Table; nothing mutates it
// after Build returns.
package dataset

import (
	"sort"

	"github.com/Shaikhmohddanish/challan-analytics/internal/classifier"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"
	"github.com/Shaikhmohddanish/challan-analytics/internal/tier"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Table is the canonical transaction table for one dataset load.
// It is immutable after Build; filtered views never modify it.
type Table struct {
	rows          []models.Transaction
	customerSpend map[string]decimal.Decimal
	categories    []string
	tierNames     []string
	months        []models.Month
	unknownMonths int
}

// Build constructs the table from raw transactions. Rows are normalized and
// classified, then customer tiers are derived from each customer's total
// spend across the entire dataset. Tier assignment always uses the full
// dataset's totals, never a filtered subset's.
func Build(raw []models.Transaction, cls *classifier.Classifier, tc *tier.Classifier) *Table {
	rows := make([]models.Transaction, len(raw))
	copy(rows, raw)

	// Normalize before classification; classifying an un-normalized name is
	// undefined behavior we guard against here even if the loader already did it.
	for i := range rows {
		rows[i].Normalize()
		rows[i].Category = cls.Classify(rows[i].ItemName)
	}

	// Full-dataset spend per customer drives tier assignment
	spend := make(map[string]decimal.Decimal)
	for _, tx := range rows {
		spend[tx.CustomerName] = spend[tx.CustomerName].Add(tx.ItemTotal)
	}
	for i := range rows {
		rows[i].Tier = tc.Classify(spend[rows[i].CustomerName])
	}

	t := &Table{
		rows:          rows,
		customerSpend: spend,
		categories:    cls.Categories(),
		tierNames:     tc.Names(),
	}
	t.collectMonths()

	log.WithFields(logrus.Fields{
		"rows":      len(rows),
		"customers": len(spend),
		"months":    len(t.months),
	}).Info("Built transaction table")
	return t
}

func (t *Table) collectMonths() {
	seen := make(map[models.Month]bool)
	for _, tx := range t.rows {
		if tx.Month.IsZero() {
			t.unknownMonths++
			continue
		}
		if !seen[tx.Month] {
			seen[tx.Month] = true
			t.months = append(t.months, tx.Month)
		}
	}
	// Calendar order, not label order: "Dec 23" must precede "Jan 24"
	sort.Slice(t.months, func(i, j int) bool {
		return t.months[i].Before(t.months[j])
	})
}

// Rows returns the table's rows. Callers must treat the slice as read-only.
func (t *Table) Rows() []models.Transaction {
	return t.rows
}

// Len returns the number of rows in the table.
func (t *Table) Len() int {
	return len(t.rows)
}

// Categories returns the configured category names in display order
// (file order, then Uncategorized).
func (t *Table) Categories() []string {
	return t.categories
}

// Tiers returns tier names from highest to lowest.
func (t *Table) Tiers() []string {
	return t.tierNames
}

// Months returns the distinct known months in chronological order.
// Rows with unparseable dates are not represented here.
func (t *Table) Months() []models.Month {
	return t.months
}

// UnknownMonthRows returns how many rows carry no month bucket.
func (t *Table) UnknownMonthRows() int {
	return t.unknownMonths
}

// CustomerSpend returns a customer's total item-total across the full
// dataset, or zero if the customer is unknown.
func (t *Table) CustomerSpend(name string) decimal.Decimal {
	return t.customerSpend[name]
}

// Customers returns all customer names sorted ascending.
func (t *Table) Customers() []string {
	names := make([]string, 0, len(t.customerSpend))
	for name := range t.customerSpend {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the rows matching the filter as a fresh slice.
// The projection is read-only with respect to the table.
func (t *Table) Select(f Filter) []models.Transaction {
	var out []models.Transaction
	for _, tx := range t.rows {
		if f.Matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
