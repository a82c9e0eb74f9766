// Package classifier maps normalized item names to product categories using
// exact lookup against the configured category map. There is no fuzzy or
// partial matching: a near-miss string yields Uncategorized, which is a
// defined outcome rather than an error.
package classifier

import (
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Duplicate records an item name that appears under more than one category
// in the configuration. This is a configuration-integrity problem to report,
// not a runtime error.
type Duplicate struct {
	ItemName string
	First    string // Category that first claimed the item
	Second   string // Category that overwrote it (the one in effect)
}

// Classifier performs exact-match item-name to category lookup.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	itemToCategory map[string]string
	categories     []string // Category names in configuration order
	duplicates     []Duplicate
}

// NewClassifier builds the lookup table from category configuration.
// Item names are normalized (lowercased, trimmed) before insertion.
// When the same item name appears under two categories, the later entry in
// configuration order wins (last-write-wins) and the conflict is recorded.
func NewClassifier(configs []models.CategoryConfig) *Classifier {
	c := &Classifier{
		itemToCategory: make(map[string]string),
	}

	for _, cfg := range configs {
		c.categories = append(c.categories, cfg.Name)
		for _, item := range cfg.Items {
			name := models.NormalizeItemName(item)
			if prev, exists := c.itemToCategory[name]; exists && prev != cfg.Name {
				c.duplicates = append(c.duplicates, Duplicate{
					ItemName: name,
					First:    prev,
					Second:   cfg.Name,
				})
				log.Warnf("Item %q mapped to both %q and %q, keeping %q", name, prev, cfg.Name, cfg.Name)
			}
			c.itemToCategory[name] = cfg.Name
		}
	}

	log.Debugf("Built classifier with %d items across %d categories",
		len(c.itemToCategory), len(c.categories))
	return c
}

// Classify returns the category for a normalized item name, or
// CategoryUncategorized when no entry matches. Pure and total.
func (c *Classifier) Classify(itemName string) string {
	if category, found := c.itemToCategory[itemName]; found {
		return category
	}
	return models.CategoryUncategorized
}

// Categories returns the configured category names in file order, followed
// by Uncategorized. Views use this for stable column ordering.
func (c *Classifier) Categories() []string {
	out := make([]string, 0, len(c.categories)+1)
	out = append(out, c.categories...)
	return append(out, models.CategoryUncategorized)
}

// Duplicates returns the item names claimed by more than one category.
func (c *Classifier) Duplicates() []Duplicate {
	return c.duplicates
}

// ItemCount returns the number of distinct item names in the lookup table.
func (c *Classifier) ItemCount() int {
	return len(c.itemToCategory)
}
