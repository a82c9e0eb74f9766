package models

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// CategoryConfig represents one category entry in the categories YAML file.
// Items are the exact (lowercase) item names that belong to the category.
type CategoryConfig struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// TierConfig represents one tier threshold in the tiers YAML file.
// A customer whose total spend is strictly greater than MinSpend qualifies
// for the tier.
type TierConfig struct {
	Name     string          `yaml:"name"`
	MinSpend decimal.Decimal `yaml:"min_spend"`
}

type rawTierConfig struct {
	Name     string `yaml:"name"`
	MinSpend string `yaml:"min_spend"`
}

// UnmarshalYAML parses a tier entry, accepting the threshold as either a
// quoted string or a bare number.
func (tc *TierConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw rawTierConfig
	if err := value.Decode(&raw); err != nil {
		return err
	}

	minSpend, err := decimal.NewFromString(raw.MinSpend)
	if err != nil {
		return fmt.Errorf("tier %q: invalid min_spend %q: %w", raw.Name, raw.MinSpend, err)
	}

	tc.Name = raw.Name
	tc.MinSpend = minSpend
	return nil
}

// MarshalYAML writes the threshold as a plain decimal string.
func (tc TierConfig) MarshalYAML() (interface{}, error) {
	return rawTierConfig{Name: tc.Name, MinSpend: tc.MinSpend.String()}, nil
}

// TiersConfig represents the structure of the tiers YAML file.
// Tiers must be ordered from highest to lowest threshold.
type TiersConfig struct {
	Tiers []TierConfig `yaml:"tiers"`
}
