package models

import "time"

// Month is a year-month bucket derived from the challan date.
// The zero value means the challan date could not be parsed; rows with an
// unknown month still participate in totals that do not group by month.
type Month struct {
	Year int
	Mon  time.Month
}

// MonthOf returns the month bucket for a date.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Mon: t.Month()}
}

// IsZero reports whether the month is unknown.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Mon == 0
}

// Before reports whether m is chronologically before other.
// Unknown months sort before every known month.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Mon < other.Mon
}

// Label renders the month the way the dashboards show it, e.g. "Jan 24".
// Unknown months render as "Unknown".
func (m Month) Label() string {
	if m.IsZero() {
		return "Unknown"
	}
	return time.Date(m.Year, m.Mon, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

// String implements fmt.Stringer.
func (m Month) String() string {
	return m.Label()
}
