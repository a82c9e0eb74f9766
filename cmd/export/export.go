// Package export writes the computed views to a JSON or Excel report.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Shaikhmohddanish/challan-analytics/cmd/common"
	"github.com/Shaikhmohddanish/challan-analytics/cmd/root"
	"github.com/Shaikhmohddanish/challan-analytics/internal/analytics"
	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the views as a JSON or Excel report",
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Output, "output", "o", "", "Output file (defaults to report directory from config)")
	Cmd.Flags().StringVarP(&root.Format, "format", "f", "", "Report format: json or xlsx (defaults to config)")
}

func exportFunc(cmd *cobra.Command, args []string) {
	table, _, err := common.LoadTable()
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	reportFormat := root.Format
	if reportFormat == "" {
		reportFormat = root.Cfg.Report.Format
	}
	outPath := root.Output
	if outPath == "" {
		name := fmt.Sprintf("challan-report-%s.%s", time.Now().Format("2006-01-02"), reportFormat)
		outPath = filepath.Join(root.Cfg.Report.Directory, name)
	}

	r := &report.Report{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Dealers:     analytics.DealerSummary(table, dataset.Filter{}),
		Tiers:       analytics.TierSummary(table, dataset.Filter{}),
		Pivot:       analytics.QuantityPivot(table, dataset.Filter{}),
	}

	generator := report.NewGenerator(root.Log)
	if err := generator.Generate(r, reportFormat, outPath); err != nil {
		root.Log.Fatalf("Error generating report: %v", err)
	}
	root.Log.Infof("Report written to %s", outPath)
}
