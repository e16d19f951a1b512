package domain

// DayAvailability describes one day of the monthly calendar
type DayAvailability struct {
	Day          int
	IsOpen       bool
	HasFreeSlots bool
}

// MonthlyCalendar is the day-by-day availability view for one month
type MonthlyCalendar struct {
	Month int
	Year  int
	Days  []DayAvailability
}
