package assistant

import "seatwise/models"

// AssistantService turns a chat request (transcript plus current booking
// list) into a reply and, optionally, a newly created booking. Implementations
// must be pure functions of their input: no hidden session state.
type AssistantService interface {
	Reply(req models.ChatRequest) (models.ChatResponse, error)
}
