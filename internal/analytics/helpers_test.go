package analytics

import (
	"testing"
	"time"

	"github.com/Shaikhmohddanish/challan-analytics/internal/classifier"
	"github.com/Shaikhmohddanish/challan-analytics/internal/dataset"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"
	"github.com/Shaikhmohddanish/challan-analytics/internal/store"
	"github.com/Shaikhmohddanish/challan-analytics/internal/tier"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T, raw []models.Transaction) *dataset.Table {
	t.Helper()
	cls := classifier.NewClassifier(store.DefaultCategories())
	tc, err := tier.NewClassifier(store.DefaultTiers())
	require.NoError(t, err)
	return dataset.Build(raw, cls, tc)
}

func tx(challan, date, customer, item, quantity, total string) models.Transaction {
	transaction := models.Transaction{
		ChallanNumber: challan,
		CustomerName:  customer,
		ItemName:      item,
		Quantity:      decimal.RequireFromString(quantity),
		ItemTotal:     decimal.RequireFromString(total),
	}
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			panic(err)
		}
		transaction.ChallanDate = parsed
	}
	return transaction
}
