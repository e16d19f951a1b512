package decide_booking

// DecideBookingRequest тело запроса с решением по заявке
type DecideBookingRequest struct {
	BusinessID int64  `json:"businessId"` // бизнес, принимающий решение
	Action     string `json:"action"`     // "confirm" | "cancel"
}
