package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCalendar_DayNumber(t *testing.T) {
	cal := NewCalendar(date(2026, time.February, 18), 40)

	tests := []struct {
		name    string
		date    time.Time
		wantDay int
		wantOK  bool
	}{
		{"first day", date(2026, time.February, 18), 1, true},
		{"second day", date(2026, time.February, 19), 2, true},
		{"last day", date(2026, time.March, 29), 40, true},
		{"day after campaign", date(2026, time.March, 30), 0, false},
		{"day before campaign", date(2026, time.February, 17), 0, false},
		{"long after campaign", date(2026, time.June, 1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok := cal.DayNumber(tt.date)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDay, day)
		})
	}
}

func TestCalendar_DayNumberIgnoresTimeOfDay(t *testing.T) {
	cal := NewCalendar(
		time.Date(2026, time.February, 18, 15, 30, 0, 0, time.UTC),
		40,
	)

	day, ok := cal.DayNumber(time.Date(2026, time.February, 18, 23, 59, 59, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 1, day)

	day, ok = cal.DayNumber(time.Date(2026, time.February, 19, 0, 0, 1, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 2, day)
}

func TestCalendar_Offset(t *testing.T) {
	cal := NewCalendar(date(2026, time.February, 18), 40)

	assert.Equal(t, 1, cal.Offset(date(2026, time.February, 18)))
	assert.Equal(t, 40, cal.Offset(date(2026, time.March, 29)))
	assert.Equal(t, 41, cal.Offset(date(2026, time.March, 30)))
	assert.Equal(t, 0, cal.Offset(date(2026, time.February, 17)))
	assert.Equal(t, -9, cal.Offset(date(2026, time.February, 8)))
}

func TestCalendar_OffsetAcrossDST(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// clocks move forward on 2026-03-29 in Europe/Paris
	cal := NewCalendar(time.Date(2026, time.March, 28, 0, 0, 0, 0, paris), 40)

	assert.Equal(t, 2, cal.Offset(time.Date(2026, time.March, 29, 12, 0, 0, 0, paris)))
	assert.Equal(t, 3, cal.Offset(time.Date(2026, time.March, 30, 0, 0, 0, 0, paris)))
}
