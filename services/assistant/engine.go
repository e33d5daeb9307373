package assistant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"seatwise/models"
	"seatwise/services/inventory"
	"seatwise/utils"

	"go.uber.org/zap"
)

// ErrEmptyTranscript is returned when the request carries no messages at all.
var ErrEmptyTranscript = errors.New("assistant: transcript has no messages")

const (
	defaultDuration = "2 hours"
	defaultPurpose  = "General booking"

	// maxListedSeats caps how many free seats an availability reply names.
	maxListedSeats = 10
)

// DefaultAssistantService is the regex-driven extraction and dialogue engine.
// Now is injectable so tests can pin the current date.
type DefaultAssistantService struct {
	Now func() time.Time
}

func NewDefaultAssistantService() *DefaultAssistantService {
	return &DefaultAssistantService{Now: time.Now}
}

// intentRule pairs a containment predicate with its handler. Rules are
// evaluated in order and the first match wins, so classification priority is
// visible in one place and independently testable.
type intentRule struct {
	intent string
	match  func(lower string) bool
	handle func(s *DefaultAssistantService, req models.ChatRequest) models.ChatResponse
}

var intentRules = []intentRule{
	{"availability", containsAny("available", "availability", "free seat"), (*DefaultAssistantService).handleAvailability},
	{"booking", containsAny("book", "reserve", "schedule"), (*DefaultAssistantService).handleBooking},
	{"cancel", containsAny("cancel", "modify", "change"), (*DefaultAssistantService).handleCancel},
	{"view", containsAny("my booking", "show booking", "view booking"), (*DefaultAssistantService).handleView},
	{"help", containsAny("help", "how", "what can"), (*DefaultAssistantService).handleHelp},
	{"greeting", containsAny("hello", "hi", "hey"), (*DefaultAssistantService).handleGreeting},
}

func containsAny(keywords ...string) func(string) bool {
	return func(lower string) bool {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
		return false
	}
}

// Reply classifies the latest user message and produces the assistant reply.
// All state travels in the request; repeating an identical request yields the
// same extracted fields and the same chosen seat.
func (s *DefaultAssistantService) Reply(req models.ChatRequest) (models.ChatResponse, error) {
	if len(req.Messages) == 0 {
		return models.ChatResponse{}, ErrEmptyTranscript
	}

	latest := strings.ToLower(req.Messages[len(req.Messages)-1].Content)
	for _, rule := range intentRules {
		if rule.match(latest) {
			utils.GetLogger().Debug("classified message", zap.String("intent", rule.intent))
			return rule.handle(s, req), nil
		}
	}
	utils.GetLogger().Debug("classified message", zap.String("intent", "default"))
	return models.ChatResponse{Message: defaultReply()}, nil
}

// transcript concatenates every message so extraction can pick up fields the
// user supplied on earlier turns.
func transcript(messages []models.Message) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, " ")
}

func (s *DefaultAssistantService) handleAvailability(req models.ChatRequest) models.ChatResponse {
	free := inventory.Available(req.Bookings)
	if len(free) == 0 {
		return models.ChatResponse{
			Message: "I'm sorry, all seats are currently booked. Would you like me to let you know about cancellations?",
		}
	}

	listed := free
	suffix := ""
	if len(listed) > maxListedSeats {
		listed = listed[:maxListedSeats]
		suffix = ", ..."
	}

	msg := fmt.Sprintf("We currently have %d seat(s) available: %s%s. Would you like to book one?",
		len(free), strings.Join(listed, ", "), suffix)
	return models.ChatResponse{Message: msg}
}

func (s *DefaultAssistantService) handleBooking(req models.ChatRequest) models.ChatResponse {
	details := ExtractBookingDetails(transcript(req.Messages), s.Now())

	missing := missingFields(details)
	if len(missing) > 0 {
		var b strings.Builder
		b.WriteString("I'd be happy to book a seat for you! I just need a few more details:\n")
		for _, field := range missing {
			b.WriteString("- " + field + "\n")
		}
		b.WriteString("Please share them and I'll get you booked in.")
		return models.ChatResponse{Message: b.String()}
	}

	if details.Duration == "" {
		details.Duration = defaultDuration
	}
	if details.Purpose == "" {
		details.Purpose = defaultPurpose
	}

	booking := models.Booking{
		ID:         fmt.Sprintf("BK-%d", s.Now().UnixMilli()),
		Name:       details.Name,
		Email:      details.Email,
		SeatNumber: inventory.FirstAvailable(req.Bookings),
		Date:       details.Date,
		Time:       details.Time,
		Duration:   details.Duration,
		Purpose:    details.Purpose,
	}

	msg := fmt.Sprintf("Your seat is booked! Here are the details:\n"+
		"- Booking ID: %s\n- Name: %s\n- Email: %s\n- Seat: %s\n- Date: %s\n- Time: %s\n- Duration: %s\n- Purpose: %s\n"+
		"See you then!",
		booking.ID, booking.Name, booking.Email, booking.SeatNumber,
		booking.Date, booking.Time, booking.Duration, booking.Purpose)

	return models.ChatResponse{Message: msg, Booking: &booking}
}

// missingFields lists the required fields not yet extracted, in the order they
// are reported to the user. Duration and purpose are optional.
func missingFields(d BookingDetails) []string {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "Your full name")
	}
	if d.Email == "" {
		missing = append(missing, "Your email address")
	}
	if d.Date == "" {
		missing = append(missing, "The date you'd like (e.g., tomorrow, Friday)")
	}
	if d.Time == "" {
		missing = append(missing, "The time (e.g., 2pm, 14:00)")
	}
	return missing
}

// handleCancel acknowledges the intent but performs no lookup or mutation.
// This mirrors the original behavior: the branch is a recognized no-op.
func (s *DefaultAssistantService) handleCancel(req models.ChatRequest) models.ChatResponse {
	return models.ChatResponse{
		Message: "I can help with changes to an existing booking. Could you share your booking ID or the email address you booked with?",
	}
}

func (s *DefaultAssistantService) handleView(req models.ChatRequest) models.ChatResponse {
	if len(req.Bookings) == 0 {
		return models.ChatResponse{
			Message: "You don't have any bookings yet. Would you like to make one?",
		}
	}
	return models.ChatResponse{
		Message: fmt.Sprintf("You have %d booking(s). You can see the details in the bookings panel on the right.", len(req.Bookings)),
	}
}

func (s *DefaultAssistantService) handleHelp(req models.ChatRequest) models.ChatResponse {
	return models.ChatResponse{
		Message: "I can help you with:\n" +
			"- Checking seat availability\n" +
			"- Booking a seat (just tell me your name, email, date and time)\n" +
			"- Viewing your bookings\n" +
			"- Cancelling or changing a booking\n" +
			"Our operating hours are " + utils.OperatingHours + ".",
	}
}

func (s *DefaultAssistantService) handleGreeting(req models.ChatRequest) models.ChatResponse {
	return models.ChatResponse{
		Message: "Hello! Welcome to Seatwise. I can check availability, book a seat, or show your bookings. How can I help you today?",
	}
}

func defaultReply() string {
	return "I'm not sure I understood that. I can help you:\n" +
		"- Check seat availability\n" +
		"- Book a seat\n" +
		"- View your bookings\n" +
		"- Cancel a booking\n" +
		"What would you like to do?"
}
