// Package report exports the computed views as JSON or Excel workbooks.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Shaikhmohddanish/challan-analytics/internal/analytics"
	"github.com/Shaikhmohddanish/challan-analytics/internal/format"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// Report bundles the exportable views of one dataset load.
type Report struct {
	GeneratedAt string                `json:"generated_at"`
	Dealers     []analytics.DealerRow `json:"dealers"`
	Tiers       []analytics.TierRow   `json:"tiers"`
	Pivot       analytics.Pivot       `json:"quantity_pivot"`
}

// Generator writes reports in the supported formats.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{logger: logger}
}

// Generate renders the report in the requested format ("json" or "xlsx") and
// writes it to outPath, creating the parent directory when needed.
func (g *Generator) Generate(r *Report, reportFormat, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating report directory: %w", err)
	}

	switch reportFormat {
	case "json":
		return g.writeJSON(r, outPath)
	case "xlsx":
		return g.writeExcel(r, outPath)
	default:
		return fmt.Errorf("unsupported report format: %s", reportFormat)
	}
}

func (g *Generator) writeJSON(r *Report, outPath string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		g.logger.Errorf("Failed to marshal JSON report: %v", err)
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	if err := os.WriteFile(outPath, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	g.logger.WithField("file", outPath).Info("Wrote JSON report")
	return nil
}

func (g *Generator) writeExcel(r *Report, outPath string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := g.writeDealerSheet(f, r.Dealers); err != nil {
		return err
	}
	if err := g.writeTierSheet(f, r.Tiers); err != nil {
		return err
	}
	if err := g.writePivotSheet(f, r.Pivot); err != nil {
		return err
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	g.logger.WithField("file", outPath).Info("Wrote Excel report")
	return nil
}

func (g *Generator) writeDealerSheet(f *excelize.File, dealers []analytics.DealerRow) error {
	const sheet = "Dealer Summary"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"Customer Name", "Total Sales", "Total Orders", "Customer Type"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, dealer := range dealers {
		values := []interface{}{
			dealer.CustomerName,
			format.Rupees(dealer.TotalSales),
			dealer.TotalOrders,
			dealer.Tier,
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeTierSheet(f *excelize.File, tiers []analytics.TierRow) error {
	const sheet = "Tier Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{"Customer Type", "No. of Customers", "Total No. of Orders", "Total Amount of Order"}
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}
	for i, row := range tiers {
		values := []interface{}{
			row.Tier,
			row.Customers,
			row.TotalOrders,
			format.Rupees(row.TotalAmount),
		}
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writePivotSheet(f *excelize.File, pivot analytics.Pivot) error {
	const sheet = "Quantity Pivot"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []interface{}{"Product Category", "Item Name"}
	for _, m := range pivot.Months {
		headers = append(headers, m.Label())
	}
	headers = append(headers, "Total Qty", "Total Cost")
	if err := setRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, row := range pivot.Rows {
		values := []interface{}{row.Category, row.ItemName}
		for _, q := range row.Quantities {
			// Blank cells for zero quantities, matching the dashboard table
			values = append(values, format.PivotCell(q))
		}
		values = append(values, row.TotalQty.String(), format.RupeesWhole(row.TotalCost))
		if err := setRow(f, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow[T any](f *excelize.File, sheet string, row int, values []T) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
