package analytics

import (
	"testing"

	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeatmapForTier(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "2", "1000"),
		tx("DC-002", "2024-02-10", "A", "simba", "3", "1500"),
		tx("DC-003", "2023-12-20", "A", "zumbaa", "1", "500"),
	})

	h := HeatmapForTier(table, dataset.Filter{}, models.TierCopper, HeatmapOptions{})
	require.False(t, h.IsEmpty())
	assert.Equal(t, models.TierCopper, h.Tier)

	// Months in calendar order across the year boundary
	require.Len(t, h.Months, 3)
	assert.Equal(t, "Dec 23", h.Months[0].Label())
	assert.Equal(t, "Jan 24", h.Months[1].Label())
	assert.Equal(t, "Feb 24", h.Months[2].Label())

	require.Equal(t, []string{"simba", "zumbaa"}, h.Items)
	require.Len(t, h.Cells, 2)

	// simba row: zero in Dec, 2 in Jan, 3 in Feb
	assert.True(t, h.Cells[0][0].IsZero())
	assert.True(t, h.Cells[0][1].Equal(decimal.NewFromInt(2)))
	assert.True(t, h.Cells[0][2].Equal(decimal.NewFromInt(3)))

	assert.True(t, h.MaxValue().Equal(decimal.NewFromInt(3)))
}

func TestHeatmapDropsAllZeroRows(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "0", "1000"),
		tx("DC-002", "2024-01-06", "A", "zumbaa", "2", "500"),
	})

	h := HeatmapForTier(table, dataset.Filter{}, models.TierCopper, HeatmapOptions{})
	assert.Equal(t, []string{"zumbaa"}, h.Items)
}

func TestHeatmapExcludesCategories(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "2", "1000"),
		tx("DC-002", "2024-01-06", "A", "nandi choona", "50", "8000"),
	})

	opts := HeatmapOptions{ExcludeCategories: []string{models.CategoryOtherBulkOrders}}
	h := HeatmapForTier(table, dataset.Filter{}, models.TierCopper, opts)

	assert.Equal(t, []string{"simba"}, h.Items)
}

func TestHeatmapAppliesTierFilter(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "Gold Dealer", "simba", "2", "1200000"),
		tx("DC-002", "2024-01-06", "Copper Dealer", "zumbaa", "1", "500"),
	})

	h := HeatmapForTier(table, dataset.Filter{}, models.TierGold, HeatmapOptions{})
	assert.Equal(t, []string{"simba"}, h.Items)

	empty := HeatmapForTier(table, dataset.Filter{}, models.TierSilver, HeatmapOptions{})
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.MaxValue().IsZero())
}

func TestHeatmapsSkipEmptyTiers(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "Gold Dealer", "simba", "2", "1200000"),
		tx("DC-002", "2024-01-06", "Copper Dealer", "zumbaa", "1", "500"),
	})

	maps := Heatmaps(table, dataset.Filter{}, HeatmapOptions{})
	require.Len(t, maps, 2)
	assert.Equal(t, models.TierGold, maps[0].Tier)
	assert.Equal(t, models.TierCopper, maps[1].Tier)
}
