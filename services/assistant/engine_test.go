package assistant

import (
	"strings"
	"testing"
	"time"

	"seatwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
}

func newTestService() *DefaultAssistantService {
	return &DefaultAssistantService{Now: fixedClock}
}

func userSays(content string) models.ChatRequest {
	return models.ChatRequest{Messages: []models.Message{{Role: "user", Content: content}}}
}

func TestReply_EmptyTranscript(t *testing.T) {
	_, err := newTestService().Reply(models.ChatRequest{})
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestReply_AvailabilityListsFreeSeats(t *testing.T) {
	req := userSays("Which seats are available?")
	req.Bookings = []models.Booking{{SeatNumber: "A1"}}

	resp, err := newTestService().Reply(req)
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	assert.Contains(t, resp.Message, "19 seat(s)")
	assert.Contains(t, resp.Message, "A2, A3, A4, A5, A6, A7, A8, A9, A10, B1")
	assert.Contains(t, resp.Message, "...")
}

func TestReply_AvailabilityNoEllipsisAtTenOrFewer(t *testing.T) {
	req := userSays("any free seat left?")
	for _, seat := range []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9", "A10"} {
		req.Bookings = append(req.Bookings, models.Booking{SeatNumber: seat})
	}

	resp, err := newTestService().Reply(req)
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "B1, B2, B3, B4, B5, B6, B7, B8, B9, B10")
	assert.NotContains(t, resp.Message, "...")
}

func TestReply_AvailabilityBeatsBooking(t *testing.T) {
	// "available" and "book" in the same message: first matching rule wins.
	resp, err := newTestService().Reply(userSays("Is anything available to book?"))
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	assert.Contains(t, resp.Message, "Would you like to book one?")
}

func TestReply_BookingMissingEmail(t *testing.T) {
	resp, err := newTestService().Reply(userSays("My name is Bob Stone, I want to book a seat for tomorrow at 2pm"))
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	assert.Contains(t, resp.Message, "- Your email address")
	assert.NotContains(t, resp.Message, "Your full name")
}

func TestReply_BookingMissingEverything(t *testing.T) {
	resp, err := newTestService().Reply(userSays("I'd like to reserve a seat"))
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	for _, field := range []string{"Your full name", "Your email address", "The date", "The time"} {
		assert.Contains(t, resp.Message, field)
	}
}

func TestReply_CompleteBooking(t *testing.T) {
	resp, err := newTestService().Reply(userSays(
		"My name is John Smith, john.smith@example.com, book for tomorrow at 3pm for 2 hours for a meeting"))
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	b := resp.Booking
	assert.True(t, strings.HasPrefix(b.ID, "BK-"))
	assert.Equal(t, "John Smith", b.Name)
	assert.Equal(t, "john.smith@example.com", b.Email)
	assert.Equal(t, "A1", b.SeatNumber)
	assert.Equal(t, "2026-03-15", b.Date)
	assert.Equal(t, "15:00", b.Time)
	assert.Equal(t, "2 hours", b.Duration)
	assert.Contains(t, b.Purpose, "meeting")
	assert.Contains(t, resp.Message, "Seat: A1")
}

func TestReply_BookingUsesDefaults(t *testing.T) {
	resp, err := newTestService().Reply(userSays(
		"book a seat, my name is Jane Doe, jane@example.org, on monday at 9am"))
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "2 hours", resp.Booking.Duration)
	assert.Equal(t, "General booking", resp.Booking.Purpose)
	assert.Equal(t, "2026-03-14", resp.Booking.Date)
	assert.Equal(t, "09:00", resp.Booking.Time)
}

func TestReply_BookingFromEarlierTurns(t *testing.T) {
	// Fields supplied across earlier turns are re-scanned on every request.
	req := models.ChatRequest{Messages: []models.Message{
		{Role: "user", Content: "Hello, my name is Jane Doe"},
		{Role: "assistant", Content: "Hello! How can I help you today?"},
		{Role: "user", Content: "you can reach me at jane@example.org"},
		{Role: "user", Content: "book a seat for tomorrow at 4pm"},
	}}

	resp, err := newTestService().Reply(req)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "Jane Doe", resp.Booking.Name)
	assert.Equal(t, "jane@example.org", resp.Booking.Email)
	assert.Equal(t, "2026-03-15", resp.Booking.Date)
	assert.Equal(t, "16:00", resp.Booking.Time)
}

func TestReply_BookingSkipsTakenSeats(t *testing.T) {
	req := userSays("My name is John Smith, john.smith@example.com, book for tomorrow at 3pm")
	req.Bookings = []models.Booking{{SeatNumber: "A1"}}

	resp, err := newTestService().Reply(req)
	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "A2", resp.Booking.SeatNumber)
}

func TestReply_Deterministic(t *testing.T) {
	svc := newTestService()
	req := userSays("My name is John Smith, john.smith@example.com, book for tomorrow at 3pm")

	first, err := svc.Reply(req)
	require.NoError(t, err)
	second, err := svc.Reply(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReply_CancelIsRecognizedButNoOp(t *testing.T) {
	req := userSays("I need to cancel, reference BK-12345")
	req.Bookings = []models.Booking{{ID: "BK-12345", SeatNumber: "A3"}}

	resp, err := newTestService().Reply(req)
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	assert.Contains(t, resp.Message, "booking ID")
}

func TestReply_BookingShadowsViewKeywords(t *testing.T) {
	// Every view trigger contains "book", so the higher-priority booking rule
	// always wins for messages like "show booking". Priority order is fixed.
	resp, err := newTestService().Reply(userSays("show booking list please"))
	require.NoError(t, err)
	assert.Nil(t, resp.Booking)
	assert.Contains(t, resp.Message, "- Your full name")
}

func TestHandleView(t *testing.T) {
	svc := newTestService()

	resp := svc.handleView(models.ChatRequest{})
	assert.Contains(t, resp.Message, "don't have any bookings")

	resp = svc.handleView(models.ChatRequest{
		Bookings: []models.Booking{{SeatNumber: "A1"}, {SeatNumber: "B2"}},
	})
	assert.Contains(t, resp.Message, "2 booking(s)")
}

func TestReply_Help(t *testing.T) {
	resp, err := newTestService().Reply(userSays("what can you do?"))
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "9:00 AM - 6:00 PM")
}

func TestReply_Greeting(t *testing.T) {
	resp, err := newTestService().Reply(userSays("hello!"))
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "Welcome")
}

func TestReply_Default(t *testing.T) {
	resp, err := newTestService().Reply(userSays("tell me a joke"))
	require.NoError(t, err)
	assert.Contains(t, resp.Message, "What would you like to do?")
}
