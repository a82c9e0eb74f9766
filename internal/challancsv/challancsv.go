// Package challancsv reads delivery challan exports into transaction records.
// Malformed numeric fields are surfaced as data-quality errors at load time;
// unparseable dates are tolerated and leave the row without a month bucket.
package challancsv

import (
	"fmt"
	"os"

	"github.com/Shaikhmohddanish/challan-analytics/internal/dateutils"
	"github.com/Shaikhmohddanish/challan-analytics/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Row maps one line of the delivery challan CSV export.
// Numeric fields stay strings here so parse failures can be reported with
// row context instead of failing deep inside the CSV decoder.
type Row struct {
	ChallanNumber string `csv:"Delivery Challan Number"`
	ChallanDate   string `csv:"Challan Date"`
	CustomerName  string `csv:"Customer Name"`
	ItemName      string `csv:"Item Name"`
	Quantity      string `csv:"QuantityOrdered"`
	ItemTotal     string `csv:"Item Total"`
}

// ReadCSVFile reads CSV data into a slice of structs using gocsv.
func ReadCSVFile[TCSVRow any](filePath string) ([]TCSVRow, error) {
	log.WithField("file", filePath).Info("Reading CSV file")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []TCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("Failed to parse CSV file")
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}

	log.WithField("count", len(rows)).Info("Successfully read CSV data")
	return rows, nil
}

// LoadTransactions reads and converts a challan CSV file.
// The returned transactions are raw: normalized names and month buckets only,
// no category or tier annotation. Rows with unparseable dates are kept.
func LoadTransactions(filePath string) ([]models.Transaction, error) {
	rows, err := ReadCSVFile[Row](filePath)
	if err != nil {
		return nil, err
	}
	return ConvertRows(rows)
}

// ConvertRows converts raw CSV rows into normalized transactions.
func ConvertRows(rows []Row) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(rows))
	badDates := 0

	for i, row := range rows {
		// Row 1 is the header line in the source file
		line := i + 2

		quantity, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q: %w", line, row.Quantity, err)
		}

		itemTotal, err := decimal.NewFromString(row.ItemTotal)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid item total %q: %w", line, row.ItemTotal, err)
		}

		tx := models.Transaction{
			ChallanNumber: row.ChallanNumber,
			CustomerName:  row.CustomerName,
			ItemName:      row.ItemName,
			Quantity:      quantity,
			ItemTotal:     itemTotal,
		}

		if date, _, err := dateutils.ParseDate(row.ChallanDate); err == nil {
			tx.ChallanDate = date
		} else {
			badDates++
			log.WithFields(logrus.Fields{
				"row":  line,
				"date": row.ChallanDate,
			}).Warn("Unparseable challan date, row kept without month")
		}

		tx.Normalize()
		transactions = append(transactions, tx)
	}

	if badDates > 0 {
		log.WithField("count", badDates).Warn("Some rows have no month bucket due to unparseable dates")
	}

	log.WithField("count", len(transactions)).Info("Converted challan rows")
	return transactions, nil
}
