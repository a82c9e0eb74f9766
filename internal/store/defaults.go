package store

import (
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultCategories returns the built-in product category map.
// Item names are stored lowercase; lookup is exact match.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: models.CategoryBioFertilizers,
			Items: []string{
				"peek sanjivani - consortia", "bio surakshak - tryka (trichoderma)",
				"peek sanjivani - p (psb)", "sanjivani kit (5 ltrs)", "peek sanjivani - k (kmb)",
				"peek sanjivani - p (azotobacter)", "bio surakshak - ryzia (metarhizium)",
				"bio surakshak - rekha (psudomonas)", "peek sanjivani - n (azotobacter)",
				"sanjivani granules", "rhizo-vishwa (200 gm)",
			},
		},
		{
			Name: models.CategoryMicronutrients,
			Items: []string{
				"nutrisac kit - (50 kg)", "nutrisac kit - (25 kg)", "nutrisac kit - (10 kg)",
				"dimond kit 50kg", "micromax kit (50 kg)", "ferrous sulphate (feso4) - 20 kg",
				"nutrisac mg -20kg", "nutrisac fe - 10 kg", "nutrisac mg - 10 kg",
				"nutrisac fe  - 20 kg", "jackpot kit", "orient kit - (50 kg)",
				"magnesium sulphate (mgso4) - 20 kg", "orient kit - (53 kg)", "diamond kit 50kg",
				"ferrous sulphate - feso4 (20 kg bag)",
			},
		},
		{
			Name: models.CategoryChelated,
			Items: []string{
				"iron man - eddha ferrous (500 gm)", "micro man - fe (500 gm)",
				"micro man - fe (250 gm)", "micro man - zn (250 gm)", "micro man - zn (500 gm)",
				"micro man - pro (1 ltr)", "micro man - pro (500 ml)", "micro man pro (250 ml)",
				"iron man - eddha ferrous (1 kg)",
			},
		},
		{
			Name: models.CategoryBioStimulants,
			Items: []string{
				"titanic kit - (25 kg)", "jeeto - 95 (100 ml)", "jeeto - 95 (200 ml)",
				"flora - 95 (100 ml)", "flora - 95 (200 ml)", "mantra humic acid (500 gm)",
				"mantra humic acid (250 gm)", "mantra humic acid (1 kg)", "jeeto - 95 (400 ml)",
				"pickup - 99 (100 ml)", "pickup - 99 (200 ml)", "pickup - 99 (400 ml)",
				"micro man plus (250 gm)", "micro man plus (500 gm)", "flora - 95 (400 ml)",
				"boomer - 90 (100 ml)", "boomer - 90 (200 ml)", "boomer - 90 (400 ml)",
				"bingo 100 ml", "bingo 200 ml", "bingo 400 ml", "rainbow 200", "rainbow 400",
				"rainbow 100ml", "mantra humic acid (100 gm)", "zumbaa", "turma max", "simba",
				"captain (100 ml)", "ferrari (200 ml)", "ferrari (400 ml)", "bio stimulant - f",
				"bio stimulant - j", "ozone power (10 kg bucket)", "fountain 1 liter",
				"fountain 500 ml",
			},
		},
		{
			Name: models.CategoryOtherBulkOrders,
			Items: []string{
				"biomass briquette", "nandi choona", "calcimag",
			},
		},
	}
}

// DefaultTiers returns the built-in customer tier thresholds, ordered from
// highest to lowest. A customer qualifies for the first tier whose threshold
// their total spend strictly exceeds; anyone else is Copper.
func DefaultTiers() []models.TierConfig {
	return []models.TierConfig{
		{Name: models.TierGold, MinSpend: decimal.NewFromInt(1_000_000)},
		{Name: models.TierSilver, MinSpend: decimal.NewFromInt(500_000)},
		{Name: models.TierBronze, MinSpend: decimal.NewFromInt(100_000)},
		{Name: models.TierCopper, MinSpend: decimal.Zero},
	}
}
