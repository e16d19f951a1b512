package monthly_calendar

// Request модель запроса месячного календаря услуги
type Request struct {
	BusinessID int64 // ID бизнеса-владельца услуги
	ServiceID  int64 // ID услуги
	Year       int   // Год (например, 2026)
	Month      int   // Месяц 1-12
}

// DayResponse доступность одного дня месяца
type DayResponse struct {
	Day          int  `json:"day"`
	IsOpen       bool `json:"isOpen"`
	HasFreeSlots bool `json:"hasFreeSlots"`
}

// Response модель ответа с календарем на месяц
type Response struct {
	ServiceID int64         `json:"serviceId"`
	Year      int           `json:"year"`
	Month     int           `json:"month"`
	Days      []DayResponse `json:"days"`
}
