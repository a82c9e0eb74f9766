package dataset

import (
	"testing"
	"time"

	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterZeroSelectsEverything(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "Agro Traders", "simba", "1", "100"),
		tx("DC-002", "", "Krishi Kendra", "zumbaa", "1", "200"),
	})

	assert.True(t, Filter{}.IsZero())
	assert.Len(t, table.Select(Filter{}), 2)
}

func TestFilterCustomerSubstring(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "Agro Traders", "simba", "1", "100"),
		tx("DC-002", "2024-01-06", "Krishi Kendra", "simba", "1", "200"),
	})

	tests := []struct {
		name     string
		search   string
		expected int
	}{
		{"Empty search is a no-op", "", 2},
		{"Case-insensitive match", "AGRO", 1},
		{"Partial word", "endr", 1},
		{"No match is empty", "xyz", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, table.Select(Filter{Customer: tc.search}), tc.expected)
		})
	}
}

func TestFilterCustomerExact(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "Agro", "simba", "1", "1000"),
		tx("DC-002", "2024-01-06", "Agro Traders", "jackpot kit", "1", "3000"),
	})

	// The substring filter matches both names; the exact filter must not
	subset := table.Select(Filter{Customer: "Agro"})
	assert.Len(t, subset, 2)

	subset = table.Select(Filter{CustomerExact: "Agro"})
	require.Len(t, subset, 1)
	assert.Equal(t, "DC-001", subset[0].ChallanNumber)

	// Exact means exact: no case folding, no trimming
	assert.Empty(t, table.Select(Filter{CustomerExact: "agro"}))
	assert.False(t, Filter{CustomerExact: "Agro"}.IsZero())
}

func TestFilterItemSubstring(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "1", "100"),
		tx("DC-002", "2024-01-06", "A", "jackpot kit", "1", "200"),
	})

	// Item names are stored lowercase; the search term is lowered to match
	assert.Len(t, table.Select(Filter{Item: "SIMBA"}), 1)
	assert.Len(t, table.Select(Filter{Item: "kit"}), 1)
	assert.Len(t, table.Select(Filter{Item: ""}), 2)
}

func TestFilterConditionsCombineWithAnd(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "Agro Traders", "simba", "1", "100"),
		tx("DC-002", "2024-01-06", "Agro Traders", "jackpot kit", "1", "200"),
		tx("DC-003", "2024-01-07", "Krishi Kendra", "simba", "1", "300"),
	})

	subset := table.Select(Filter{
		Customer: "agro",
		Category: models.CategoryBioStimulants,
	})
	require.Len(t, subset, 1)
	assert.Equal(t, "DC-001", subset[0].ChallanNumber)
}

func TestFilterExactCategoryAndTier(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "1", "100"),
		tx("DC-002", "2024-01-06", "A", "nandi choona", "1", "200"),
	})

	assert.Len(t, table.Select(Filter{Category: models.CategoryBioStimulants}), 1)
	assert.Len(t, table.Select(Filter{Category: models.CategoryOtherBulkOrders}), 1)
	assert.Len(t, table.Select(Filter{Tier: models.TierCopper}), 2)
	assert.Empty(t, table.Select(Filter{Tier: models.TierGold}))
}

func TestFilterDateBoundsInclusive(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "1", "100"),
		tx("DC-002", "2024-01-31", "A", "simba", "1", "100"),
		tx("DC-003", "2024-02-01", "A", "simba", "1", "100"),
	})

	from := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	subset := table.Select(Filter{From: from, To: to})
	require.Len(t, subset, 2)
	assert.Equal(t, "DC-001", subset[0].ChallanNumber)
	assert.Equal(t, "DC-002", subset[1].ChallanNumber)
}

func TestFilterDateBoundsExcludeUnknownDates(t *testing.T) {
	table := buildTable(t, []models.Transaction{
		tx("DC-001", "2024-01-05", "A", "simba", "1", "100"),
		tx("DC-002", "", "A", "simba", "1", "100"),
	})

	// Rows without a parseable date stay in unbounded views but drop out of
	// any date-bounded one.
	assert.Len(t, table.Select(Filter{}), 2)

	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Len(t, table.Select(Filter{From: from}), 1)
}

func TestFilterWithoutMonths(t *testing.T) {
	f := Filter{
		Customer: "agro",
		From:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	stripped := f.WithoutMonths()
	assert.True(t, stripped.From.IsZero())
	assert.True(t, stripped.To.IsZero())
	assert.Equal(t, "agro", stripped.Customer)

	// Original is untouched
	assert.False(t, f.From.IsZero())
}
