// Package timeline renders the product quantity pivot: quantity ordered per
// item per month, with row totals and per-item cost.
package timeline

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Shaikhmohddanish/challan-analytics/cmd/common"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/root"
	"github.com/Shaikhmohddanish/challan-analytics/internal/analytics"
	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/format"

	"github.com/spf13/cobra"
)

// Cmd represents the timeline command
var Cmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the product quantity timeline pivot",
	Long: `Show quantity ordered per (category, item) per month. Zero cells render
blank; the Total Cost column covers the filtered subset across all months.`,
	Run: timelineFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Category, "category", "c", "", "Filter by product category")
	Cmd.Flags().StringVarP(&root.Tier, "tier", "t", "", "Filter by customer tier")
	Cmd.Flags().StringVarP(&root.Search, "search", "s", "", "Filter by product name substring")
}

func timelineFunc(cmd *cobra.Command, args []string) {
	table, _, err := common.LoadTable()
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	filter := dataset.Filter{
		Category: root.Category,
		Tier:     root.Tier,
		Item:     root.Search,
	}
	pivot := analytics.QuantityPivot(table, filter)
	if len(pivot.Rows) == 0 {
		root.Log.Warn("No rows match the filter.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := "Product Category\tItem Name"
	for _, m := range pivot.Months {
		header += "\t" + m.Label()
	}
	header += "\tTotal Qty\tTotal Cost"
	fmt.Fprintln(w, header)

	for _, row := range pivot.Rows {
		line := row.Category + "\t" + row.ItemName
		for _, q := range row.Quantities {
			line += "\t" + format.PivotCell(q)
		}
		line += "\t" + row.TotalQty.String() + "\t" + format.RupeesWhole(row.TotalCost)
		fmt.Fprintln(w, line)
	}

	monthTotals, totalQty, totalCost := pivot.ColumnTotals()
	line := "Total\t"
	for _, q := range monthTotals {
		line += "\t" + q.String()
	}
	line += "\t" + totalQty.String() + "\t" + format.RupeesWhole(totalCost)
	fmt.Fprintln(w, line)

	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
