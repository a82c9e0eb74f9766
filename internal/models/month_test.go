package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthBefore(t *testing.T) {
	dec23 := Month{Year: 2023, Mon: time.December}
	jan24 := Month{Year: 2024, Mon: time.January}
	feb24 := Month{Year: 2024, Mon: time.February}

	// Calendar order, even though "Dec 23" sorts after "Jan 24" lexically
	assert.True(t, dec23.Before(jan24))
	assert.True(t, jan24.Before(feb24))
	assert.False(t, feb24.Before(jan24))
	assert.False(t, jan24.Before(jan24))

	// Unknown months sort first
	assert.True(t, Month{}.Before(dec23))
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "Jan 24", Month{Year: 2024, Mon: time.January}.Label())
	assert.Equal(t, "Dec 23", Month{Year: 2023, Mon: time.December}.Label())
	assert.Equal(t, "Unknown", Month{}.Label())
}

func TestMonthOf(t *testing.T) {
	m := MonthOf(time.Date(2024, time.February, 10, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, Month{Year: 2024, Mon: time.February}, m)
	assert.False(t, m.IsZero())
	assert.True(t, Month{}.IsZero())
}
