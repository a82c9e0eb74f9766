// Package common contains shared functionality for command handlers
package common

import (
	"fmt"

	"github.com/Shaikhmohddanish/challan-analytics/cmd/root"
	"github.com/Shaikhmohddanish/challan-analytics/internal/challancsv"
	"github.com/Shaikhmohddanish/challan-analytics/internal/classifier"
	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/store"
	"github.com/Shaikhmohddanish/challan-analytics/internal/tier"
)

// LoadTable performs the one-time batch dataset load: read the challan CSV,
// build the classifiers from configuration, and freeze the transaction table.
// Every view command starts here.
func LoadTable() (*dataset.Table, *classifier.Classifier, error) {
	s := store.NewStore(root.Cfg.Data.CategoriesFile, root.Cfg.Data.TiersFile)

	categories, err := s.LoadCategories()
	if err != nil {
		return nil, nil, fmt.Errorf("loading categories: %w", err)
	}
	cls := classifier.NewClassifier(categories)

	tiers, err := s.LoadTiers()
	if err != nil {
		return nil, nil, fmt.Errorf("loading tiers: %w", err)
	}
	tierClassifier, err := tier.NewClassifier(tiers)
	if err != nil {
		return nil, nil, fmt.Errorf("building tier classifier: %w", err)
	}

	transactions, err := challancsv.LoadTransactions(root.DataFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading challan data: %w", err)
	}

	return dataset.Build(transactions, cls, tierClassifier), cls, nil
}
