// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Shaikhmohddanish/challan-analytics/internal/models"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutIndian   = "02-01-2006"
	DateLayoutSlash    = "02/01/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
	DateLayoutMonthDay = "2-Jan-2006"
)

// CommonFormats is a list of standard formats to try when parsing challan dates.
// Day-first layouts come before month-first since the source data is Indian.
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutIndian,
	DateLayoutSlash,
	DateLayoutFull,
	DateLayoutMonthDay,
	"02.01.2006",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
// Returns the parsed time and the detected format.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, "", fmt.Errorf("empty date string")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)

	// Collapse multiple spaces to a single space
	re := regexp.MustCompile(`\s+`)
	dateStr = re.ReplaceAllString(dateStr, " ")

	return dateStr
}

// MonthOf returns the year-month bucket for a date.
func MonthOf(t time.Time) models.Month {
	return models.MonthOf(t)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}
