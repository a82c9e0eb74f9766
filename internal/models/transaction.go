// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents one line item of a delivery challan.
// A challan number is shared by every line item on the same challan, so it is
// not unique across transactions.
type Transaction struct {
	ChallanNumber string          // Delivery challan number, shared across line items
	ChallanDate   time.Time       // Zero when the source date was unparseable
	CustomerName  string          // Trimmed customer name
	ItemName      string          // Lowercased item name
	Quantity      decimal.Decimal // Quantity ordered, non-negative
	ItemTotal     decimal.Decimal // Line item amount in rupees

	// Derived during dataset build
	Category string // One of the configured categories or CategoryUncategorized
	Month    Month  // Year-month bucket of ChallanDate; zero when date unknown
	Tier     string // Customer tier from the customer's full-dataset spend
}

// NormalizeCustomerName trims surrounding whitespace from a customer name.
// Classification and grouping require normalized names.
func NormalizeCustomerName(name string) string {
	return strings.TrimSpace(name)
}

// NormalizeItemName lowercases and trims an item name for category lookup.
func NormalizeItemName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Normalize applies name normalization and derives the month bucket.
// It does not classify; classification happens during dataset build.
func (t *Transaction) Normalize() {
	t.CustomerName = NormalizeCustomerName(t.CustomerName)
	t.ItemName = NormalizeItemName(t.ItemName)
	if !t.ChallanDate.IsZero() {
		t.Month = MonthOf(t.ChallanDate)
	}
}

// IsCategorized returns true if the transaction has a real category assigned.
func (t *Transaction) IsCategorized() bool {
	return t.Category != "" && t.Category != CategoryUncategorized
}
