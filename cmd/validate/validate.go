// Package validate checks configuration integrity and dataset quality:
// duplicate item names across categories, unparseable dates and
// uncategorized items.
package validate

import (
	"github.com/Shaikhmohddanish/challan-analytics/cmd/common"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/root"
	"github.com/Shaikhmohddanish/challan-analytics/internal/store"

	"github.com/spf13/cobra"
)

var writeDefaults bool

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate classification config and dataset quality",
	Run:   validateFunc,
}

func init() {
	Cmd.Flags().BoolVar(&writeDefaults, "write-defaults", false, "Write the built-in category map to categories.yaml for editing")
}

func validateFunc(cmd *cobra.Command, args []string) {
	if writeDefaults {
		s := store.NewStore(root.Cfg.Data.CategoriesFile, root.Cfg.Data.TiersFile)
		if err := s.SaveCategories(store.DefaultCategories()); err != nil {
			root.Log.Fatalf("Error writing default categories: %v", err)
		}
	}

	table, cls, err := common.LoadTable()
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	// Config integrity: an item name under two categories silently resolves
	// last-write-wins, so surface the conflicts here.
	duplicates := cls.Duplicates()
	for _, d := range duplicates {
		root.Log.Warnf("Item %q appears under both %q and %q; %q is in effect",
			d.ItemName, d.First, d.Second, d.Second)
	}
	if len(duplicates) == 0 {
		root.Log.Info("No duplicate item names across categories")
	}

	uncategorized := make(map[string]bool)
	for _, tx := range table.Rows() {
		if !tx.IsCategorized() {
			uncategorized[tx.ItemName] = true
		}
	}
	for item := range uncategorized {
		root.Log.Warnf("Uncategorized item: %q", item)
	}

	root.Log.Infof("Dataset: %d rows, %d customers, %d months, %d rows without month, %d uncategorized items",
		table.Len(), len(table.Customers()), len(table.Months()), table.UnknownMonthRows(), len(uncategorized))
}
