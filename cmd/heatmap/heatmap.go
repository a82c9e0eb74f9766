// Package heatmap renders per-tier item-by-month quantity matrices.
package heatmap

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Shaikhmohddanish/challan-analytics/cmd/common"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/root"
	"github.com/Shaikhmohddanish/challan-analytics/internal/analytics"
	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/format"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the heatmap command
var Cmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show per-tier product quantity heatmaps",
	Long: `Show one item-by-month quantity matrix per customer tier. Months are in
calendar order, all-zero rows are dropped, and zero cells render blank so
they stay distinct from the gradient.`,
	Run: heatmapFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Filter by product category")
	Cmd.Flags().StringVarP(&root.Tier, "tier", "t", "", "Show only one customer tier")
	Cmd.Flags().StringVarP(&root.Search, "search", "s", "", "Filter by product name substring")
}

func heatmapFunc(cmd *cobra.Command, args []string) {
	table, _, err := common.LoadTable()
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	filter := dataset.Filter{Category: root.Category, Item: root.Search}
	opts := analytics.HeatmapOptions{
		ExcludeCategories: []string{models.CategoryOtherBulkOrders},
	}

	var maps []analytics.Heatmap
	if root.Tier != "" {
		h := analytics.HeatmapForTier(table, filter, root.Tier, opts)
		if !h.IsEmpty() {
			maps = append(maps, h)
		}
	} else {
		maps = analytics.Heatmaps(table, filter, opts)
	}
	if len(maps) == 0 {
		root.Log.Warn("No heatmap data matches the filter.")
		return
	}

	for _, h := range maps {
		fmt.Printf("\n%s Customers - Quantity Ordered (max %s)\n", h.Tier, h.MaxValue())
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		header := "Item Name"
		for _, m := range h.Months {
			header += "\t" + m.Label()
		}
		fmt.Fprintln(w, header)
		for i, item := range h.Items {
			line := item
			for _, cell := range h.Cells[i] {
				line += "\t" + format.PivotCell(cell)
			}
			fmt.Fprintln(w, line)
		}
		if err := w.Flush(); err != nil {
			root.Log.Warnf("Failed to flush output: %v", err)
		}
	}
}
