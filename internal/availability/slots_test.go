package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartappt/booking-service/internal/domain"
	"github.com/smartappt/booking-service/pkg/types"
)

func hours(open, close string) domain.OpeningHours {
	return domain.OpeningHours{
		DayOfWeek: 1,
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name        string
		open        string
		close       string
		durationMin int
		wantCount   int
		wantFirst   string
		wantLast    string
	}{
		{
			name:        "standard working day with 30 minute slots",
			open:        "09:00",
			close:       "17:00",
			durationMin: 30,
			wantCount:   16,
			wantFirst:   "09:00",
			wantLast:    "16:30",
		},
		{
			name:        "last slot must fit entirely before closing",
			open:        "10:00",
			close:       "12:00",
			durationMin: 45,
			wantCount:   2,
			wantFirst:   "10:00",
			wantLast:    "10:45",
		},
		{
			name:        "window shorter than service duration",
			open:        "09:00",
			close:       "09:20",
			durationMin: 30,
			wantCount:   0,
		},
		{
			name:        "window equal to service duration gives one slot",
			open:        "09:00",
			close:       "10:00",
			durationMin: 60,
			wantCount:   1,
			wantFirst:   "09:00",
			wantLast:    "09:00",
		},
		{
			name:        "slot crossing midnight does not fit",
			open:        "23:30",
			close:       "23:59",
			durationMin: 75,
			wantCount:   0,
		},
		{
			name:        "late window keeps slots that fit before midnight",
			open:        "23:00",
			close:       "23:59",
			durationMin: 30,
			wantCount:   1,
			wantFirst:   "23:00",
			wantLast:    "23:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := Grid(hours(tt.open, tt.close), tt.durationMin)
			require.NoError(t, err)
			require.Len(t, slots, tt.wantCount)

			if tt.wantCount > 0 {
				assert.Equal(t, tt.wantFirst, slots[0].String())
				assert.Equal(t, tt.wantLast, slots[len(slots)-1].String())
			}
		})
	}
}

// Емкость дня всегда совпадает с длиной сетки слотов
func TestCapacity_MatchesGridLength(t *testing.T) {
	cases := []struct {
		open        string
		close       string
		durationMin int
	}{
		{"09:00", "17:00", 30},
		{"10:00", "12:00", 45},
		{"09:00", "09:20", 30},
		{"08:30", "20:00", 15},
		{"08:00", "22:00", 60},
		{"23:30", "23:59", 75},
	}

	for _, tc := range cases {
		h := hours(tc.open, tc.close)

		slots, err := Grid(h, tc.durationMin)
		require.NoError(t, err)

		capacity, err := Capacity(h, tc.durationMin)
		require.NoError(t, err)

		assert.Equal(t, len(slots), capacity,
			"window %s-%s with duration %d", tc.open, tc.close, tc.durationMin)
	}
}

func TestCapacity_DegenerateWindows(t *testing.T) {
	capacity, err := Capacity(hours("17:00", "09:00"), 30)
	require.NoError(t, err)
	assert.Zero(t, capacity)

	capacity, err = Capacity(hours("09:00", "17:00"), 0)
	require.NoError(t, err)
	assert.Zero(t, capacity)
}

func TestISOWeekday(t *testing.T) {
	// 2026-03-02 - понедельник, 2026-03-01 - воскресенье
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, ISOWeekday(monday))
	assert.Equal(t, 7, ISOWeekday(sunday))
	assert.Equal(t, 4, ISOWeekday(monday.AddDate(0, 0, 3)))
}

func TestWindowContains(t *testing.T) {
	h := hours("09:00", "17:00")
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "interval inside window",
			start: day.Add(10 * time.Hour),
			end:   day.Add(10*time.Hour + 30*time.Minute),
			want:  true,
		},
		{
			name:  "interval exactly matching window bounds",
			start: day.Add(9 * time.Hour),
			end:   day.Add(17 * time.Hour),
			want:  true,
		},
		{
			name:  "start before opening",
			start: day.Add(8*time.Hour + 30*time.Minute),
			end:   day.Add(9 * time.Hour),
			want:  false,
		},
		{
			name:  "end after closing",
			start: day.Add(16*time.Hour + 45*time.Minute),
			end:   day.Add(17*time.Hour + 15*time.Minute),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WindowContains(h, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOnGridBoundary(t *testing.T) {
	h := hours("09:00", "17:00")
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		start       time.Time
		durationMin int
		want        bool
	}{
		{
			name:        "opening time is on the grid",
			start:       day.Add(9 * time.Hour),
			durationMin: 30,
			want:        true,
		},
		{
			name:        "second slot boundary",
			start:       day.Add(9*time.Hour + 30*time.Minute),
			durationMin: 30,
			want:        true,
		},
		{
			name:        "misaligned 09:15 with 30 minute grid",
			start:       day.Add(9*time.Hour + 15*time.Minute),
			durationMin: 30,
			want:        false,
		},
		{
			name:        "start before opening",
			start:       day.Add(8*time.Hour + 30*time.Minute),
			durationMin: 30,
			want:        false,
		},
		{
			name:        "sub-minute offset is off the grid",
			start:       day.Add(9*time.Hour + 30*time.Second),
			durationMin: 30,
			want:        false,
		},
		{
			name:        "non-positive duration never matches",
			start:       day.Add(9 * time.Hour),
			durationMin: 0,
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OnGridBoundary(h, tt.start, tt.durationMin)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
