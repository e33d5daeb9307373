package models

// Booking represents a confirmed seat reservation record. Every field is a
// string because the record round-trips through the widget's local list and is
// echoed back verbatim on the next request.
type Booking struct {
	ID         string `json:"id"`         // Time-derived unique identifier (e.g., "BK-1735689600000")
	Name       string `json:"name"`       // Full name as captured from the conversation
	Email      string `json:"email"`      // Contact email
	SeatNumber string `json:"seatNumber"` // Seat code, e.g. "A1"
	Date       string `json:"date"`       // Booking date in "YYYY-MM-DD" format
	Time       string `json:"time"`       // Start time in 24-hour "HH:MM" format
	Duration   string `json:"duration"`   // Free text, e.g. "2 hours"
	Purpose    string `json:"purpose"`    // Free text, e.g. "a meeting"
}
