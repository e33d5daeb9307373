package inventory

import (
	"fmt"

	"seatwise/models"
)

const (
	seatsPerRow  = 10
	fallbackSeat = "A1"
)

var rows = []string{"A", "B"}

// seats is the fixed inventory, built once in allocation order: A1..A10, B1..B10.
var seats = buildSeats()

func buildSeats() []string {
	out := make([]string, 0, len(rows)*seatsPerRow)
	for _, row := range rows {
		for n := 1; n <= seatsPerRow; n++ {
			out = append(out, fmt.Sprintf("%s%d", row, n))
		}
	}
	return out
}

// Seats returns the full inventory in allocation order.
func Seats() []string {
	out := make([]string, len(seats))
	copy(out, seats)
	return out
}

// Available returns the seats not referenced by any booking in the given list,
// in inventory order. Availability is recomputed on every call, never cached.
func Available(bookings []models.Booking) []string {
	taken := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		taken[b.SeatNumber] = true
	}

	var free []string
	for _, seat := range seats {
		if !taken[seat] {
			free = append(free, seat)
		}
	}
	return free
}

// FirstAvailable returns the first free seat in inventory order. When the
// inventory is exhausted it falls back to "A1" without re-checking for
// conflicts, matching the original allocation policy.
func FirstAvailable(bookings []models.Booking) string {
	free := Available(bookings)
	if len(free) == 0 {
		return fallbackSeat
	}
	return free[0]
}
