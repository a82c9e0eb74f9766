package models

// Product categories
const (
	CategoryBioFertilizers  = "Bio-Fertilizers"
	CategoryMicronutrients  = "Micronutrients"
	CategoryChelated        = "Chelated Micronutrients"
	CategoryBioStimulants   = "Bio-Stimulants"
	CategoryOtherBulkOrders = "Other Bulk Orders"
	CategoryUncategorized   = "Uncategorized"
)

// Customer tiers
const (
	TierGold   = "Gold"
	TierSilver = "Silver"
	TierBronze = "Bronze"
	TierCopper = "Copper"
)

// TierNames lists all tiers from highest to lowest spend.
var TierNames = []string{TierGold, TierSilver, TierBronze, TierCopper}

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionReportFile = 0644
	PermissionDirectory  = 0750
)
