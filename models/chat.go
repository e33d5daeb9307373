package models

// Message is a single turn in the conversation transcript.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload the widget posts to /api/chat. The client owns
// all state: it sends the full transcript and its current booking list with
// every request.
type ChatRequest struct {
	Messages []Message `json:"messages"`
	Bookings []Booking `json:"bookings"`
}

// ChatResponse carries the assistant reply and, when a booking was created on
// this turn, the new booking for the widget to merge into its local list.
type ChatResponse struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking,omitempty"`
}
