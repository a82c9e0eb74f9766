// Package summary renders the tier-classified dealer summary table and the
// cross-summary grouped by customer tier.
package summary

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

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the tier-classified dealer summary",
	Long: `Show per-dealer order counts, totals and per-category amounts with share,
plus a cross-summary by customer tier. Filter with --tier and --customer.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Tier, "tier", "t", "", "Filter by customer tier (Gold, Silver, Bronze, Copper)")
	Cmd.Flags().StringVarP(&root.Customer, "customer", "c", "", "Filter by customer name substring")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	table, _, err := common.LoadTable()
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	filter := dataset.Filter{Tier: root.Tier, Customer: root.Customer}
	rows := analytics.DealerTierSummary(table, filter)
	if len(rows) == 0 {
		root.Log.Warn("No dealers match the filter.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	header := "Customer Name\tTotal Orders\tTotal Order Amount\tCustomer Type"
	for _, category := range table.Categories() {
		header += "\t" + category
	}
	fmt.Fprintln(w, header)

	printRow := func(row analytics.DealerTierRow) {
		line := fmt.Sprintf("%s\t%d\t%s\t%s",
			row.CustomerName, row.TotalOrders, format.Rupees(row.TotalAmount), row.Tier)
		for _, cell := range row.ByCategory {
			line += "\t" + format.AmountWithShare(cell.Amount, cell.Percent)
		}
		fmt.Fprintln(w, line)
	}

	for _, row := range rows {
		printRow(row)
	}
	printRow(analytics.DealerTierTotals(rows, table.Categories()))
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}

	// The cross-summary honors the same filter as the table above, so the
	// two stay consistent when --tier or --customer narrows the view.
	fmt.Println("\nSummary by Customer Type")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Customer Type\tNo. of Customers\tTotal No. of Orders\tTotal Amount of Order")
	for _, row := range analytics.TierSummary(table, filter) {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
			row.Tier, row.Customers, row.TotalOrders, format.Rupees(row.TotalAmount))
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
