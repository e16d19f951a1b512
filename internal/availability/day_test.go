package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smartappt/booking-service/internal/domain"
)

func TestForDay(t *testing.T) {
	// 2026-03-02 - понедельник
	today := time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	weekHours := map[int]domain.OpeningHours{
		1: hours("09:00", "17:00"), // понедельник
		2: hours("09:00", "17:00"), // вторник
	}

	tests := []struct {
		name         string
		date         time.Time
		holidays     map[string]bool
		bookedCounts map[string]int
		wantOpen     bool
		wantFree     bool
	}{
		{
			name:     "past day is closed",
			date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			wantOpen: false,
		},
		{
			name:     "today is open even though the clock is past midnight",
			date:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			wantOpen: true,
			wantFree: true,
		},
		{
			name:     "holiday is closed",
			date:     time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			holidays: map[string]bool{"2026-03-03": true},
			wantOpen: false,
		},
		{
			name:     "weekday without opening hours is closed",
			date:     time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), // среда, часов нет
			wantOpen: false,
		},
		{
			name:         "open day with remaining capacity",
			date:         time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			bookedCounts: map[string]int{"2026-03-03": 15},
			wantOpen:     true,
			wantFree:     true,
		},
		{
			name:         "fully booked day has no free slots",
			date:         time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
			bookedCounts: map[string]int{"2026-03-03": 16},
			wantOpen:     true,
			wantFree:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForDay(tt.date, today, tt.holidays, weekHours, 30, tt.bookedCounts)

			assert.Equal(t, tt.date.Day(), got.Day)
			assert.Equal(t, tt.wantOpen, got.IsOpen)
			assert.Equal(t, tt.wantFree, got.HasFreeSlots)
		})
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-05", DateKey(time.Date(2026, 3, 5, 23, 59, 59, 0, time.UTC)))
}
