package dataset

import (
	"strings"
	"time"

	"github.com/Shaikhmohddanish/challan-analytics/internal/models"
)

// Filter selects a subset of the transaction table. Conditions combine with
// logical AND; zero-valued conditions match everything, so the zero Filter
// is the full dataset. Substring matches are case-insensitive and an empty
// search string is a no-op, not an empty result.
type Filter struct {
	Customer      string    // Substring of customer name
	CustomerExact string    // Exact customer name; for per-dealer drill-downs
	Item          string    // Substring of item name
	Category      string    // Exact category
	Tier          string    // Exact tier
	From          time.Time // Inclusive lower bound on challan date
	To            time.Time // Inclusive upper bound on challan date
}

// WithoutMonths returns the filter minus its date range. The quantity pivot
// uses it so per-item total cost covers every month of the otherwise-filtered
// subset.
func (f Filter) WithoutMonths() Filter {
	f.From = time.Time{}
	f.To = time.Time{}
	return f
}

// Matches reports whether a transaction satisfies every condition.
func (f Filter) Matches(tx models.Transaction) bool {
	if f.Customer != "" &&
		!strings.Contains(strings.ToLower(tx.CustomerName), strings.ToLower(f.Customer)) {
		return false
	}
	if f.CustomerExact != "" && tx.CustomerName != f.CustomerExact {
		return false
	}
	if f.Item != "" &&
		!strings.Contains(tx.ItemName, strings.ToLower(f.Item)) {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.Tier != "" && tx.Tier != f.Tier {
		return false
	}
	if !f.From.IsZero() && (tx.ChallanDate.IsZero() || tx.ChallanDate.Before(f.From)) {
		return false
	}
	if !f.To.IsZero() && (tx.ChallanDate.IsZero() || tx.ChallanDate.After(f.To)) {
		return false
	}
	return true
}

// IsZero reports whether the filter selects the full dataset.
func (f Filter) IsZero() bool {
	return f.Customer == "" && f.CustomerExact == "" && f.Item == "" &&
		f.Category == "" && f.Tier == "" && f.From.IsZero() && f.To.IsZero()
}
