// Package dealers renders the dealer dashboard: per-dealer sales totals,
// order counts and category share, with an optional monthly breakdown.
package dealers

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

var showMonths bool

// Cmd represents the dealers command
var Cmd = &cobra.Command{
	Use:   "dealers",
	Short: "Show the dealer summary dashboard",
	Long: `Show per-dealer total sales, distinct order counts and category share,
sorted by total sales. Use --search to filter dealers by name substring.`,
	Run: dealersFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Search, "search", "s", "", "Filter dealers by name substring (case-insensitive)")
	Cmd.Flags().BoolVarP(&showMonths, "months", "m", false, "Include the monthly breakdown per dealer")
}

func dealersFunc(cmd *cobra.Command, args []string) {
	table, _, err := common.LoadTable()
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	filter := dataset.Filter{Customer: root.Search}
	dealers := analytics.DealerSummary(table, filter)
	if len(dealers) == 0 {
		root.Log.Warn("No dealers found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tCustomer Name\tOrders\tTotal Sales\tCategory Share")
	for i, dealer := range dealers {
		// Exact match here: a substring filter would fold in other dealers
		// whose names contain this one.
		shares := analytics.CategoryShare(table, dataset.Filter{CustomerExact: dealer.CustomerName})
		shareText := ""
		for _, share := range shares {
			if shareText != "" {
				shareText += ", "
			}
			shareText += fmt.Sprintf("%s %s", share.Category, format.Percent(share.Percent))
		}
		fmt.Fprintf(w, "%d.\t%s\t%d\t%s\t%s\n",
			i+1, dealer.CustomerName, dealer.TotalOrders, format.Rupees(dealer.TotalSales), shareText)
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}

	if showMonths {
		for _, dealer := range dealers {
			printMonthlyBreakdown(table, dealer.CustomerName)
		}
	}
}

func printMonthlyBreakdown(table *dataset.Table, customer string) {
	cells, totals := analytics.MonthlyBreakdown(table, dataset.Filter{CustomerExact: customer})
	if len(totals) == 0 {
		return
	}

	fmt.Printf("\nMonthly sales for %s\n", customer)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Month\tCategory\tAmount")
	for _, cell := range cells {
		fmt.Fprintf(w, "%s\t%s\t%s\n", cell.Month.Label(), cell.Category, format.Rupees(cell.Amount))
	}
	for _, total := range totals {
		fmt.Fprintf(w, "%s\t%s\t%s\n", total.Month.Label(), "All", format.RupeesWhole(total.Amount))
	}
	if err := w.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
