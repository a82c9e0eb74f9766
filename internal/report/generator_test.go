package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Shaikhmohddanish/challan-analytics/internal/analytics"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *Report {
	return &Report{
		GeneratedAt: "2024-03-01T12:00:00Z",
		Dealers: []analytics.DealerRow{
			{CustomerName: "Agro Traders", TotalSales: decimal.NewFromInt(1500), TotalOrders: 2, Tier: models.TierCopper},
		},
		Tiers: []analytics.TierRow{
			{Tier: models.TierCopper, Customers: 1, TotalOrders: 2, TotalAmount: decimal.NewFromInt(1500)},
		},
		Pivot: analytics.Pivot{
			Months: []models.Month{{Year: 2024, Mon: 1}},
			Rows: []analytics.PivotRow{
				{
					Category:   models.CategoryBioStimulants,
					ItemName:   "simba",
					Quantities: []decimal.Decimal{decimal.NewFromInt(2)},
					TotalQty:   decimal.NewFromInt(2),
					TotalCost:  decimal.NewFromInt(1500),
				},
			},
		},
	}
}

func TestGenerateJSON(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "reports", "report.json")

	g := NewGenerator(nil)
	require.NoError(t, g.Generate(sampleReport(), "json", outPath))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "2024-03-01T12:00:00Z", decoded["generated_at"])
	assert.Contains(t, decoded, "dealers")
	assert.Contains(t, decoded, "tiers")
	assert.Contains(t, decoded, "quantity_pivot")
}

func TestGenerateExcel(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "report.xlsx")

	g := NewGenerator(nil)
	require.NoError(t, g.Generate(sampleReport(), "xlsx", outPath))

	f, err := excelize.OpenFile(outPath)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	assert.ElementsMatch(t, []string{"Dealer Summary", "Tier Summary", "Quantity Pivot"}, f.GetSheetList())

	name, err := f.GetCellValue("Dealer Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Agro Traders", name)

	label, err := f.GetCellValue("Quantity Pivot", "C1")
	require.NoError(t, err)
	assert.Equal(t, "Jan 24", label)
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	g := NewGenerator(nil)
	err := g.Generate(sampleReport(), "pdf", filepath.Join(t.TempDir(), "report.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
