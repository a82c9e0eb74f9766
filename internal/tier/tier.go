// Package tier classifies customers into spend tiers (Gold, Silver, Bronze,
// Copper) from their cumulative item-total across the full dataset.
package tier

import (
	"fmt"

	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// Classifier assigns a tier from total spend using ordered thresholds.
// A customer qualifies for the first tier whose threshold their spend
// strictly exceeds. Immutable after construction.
type Classifier struct {
	tiers []models.TierConfig
}

// NewClassifier creates a tier classifier from ordered threshold config.
// Thresholds must be ordered from highest to lowest; the last entry is the
// catch-all lowest tier.
func NewClassifier(tiers []models.TierConfig) (*Classifier, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("tier configuration is empty")
	}
	for i := 1; i < len(tiers); i++ {
		if tiers[i].MinSpend.GreaterThan(tiers[i-1].MinSpend) {
			return nil, fmt.Errorf("tier thresholds out of order: %s (%s) above %s (%s)",
				tiers[i].Name, tiers[i].MinSpend, tiers[i-1].Name, tiers[i-1].MinSpend)
		}
	}
	return &Classifier{tiers: tiers}, nil
}

// Classify returns the tier for a customer's total spend. Pure and total:
// negative totals fall through to the lowest tier rather than failing.
func (c *Classifier) Classify(totalSpend decimal.Decimal) string {
	for _, t := range c.tiers {
		if totalSpend.GreaterThan(t.MinSpend) {
			return t.Name
		}
	}
	return c.tiers[len(c.tiers)-1].Name
}

// Names returns the tier names from highest to lowest.
func (c *Classifier) Names() []string {
	names := make([]string, len(c.tiers))
	for i, t := range c.tiers {
		names[i] = t.Name
	}
	return names
}
