package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinServiceDurationMin = 1
	MaxNotesLength        = 500

	// ISO weekday bounds (Monday=1 .. Sunday=7)
	MinDayOfWeek = 1
	MaxDayOfWeek = 7
)
