// Package availability turns the bookings of one date into per-room seat counts.
// Everything here is recomputed on every call; nothing is cached.
package availability

import (
	bookingModel "roomcal/internal/domains/booking/model"
	roomModel "roomcal/internal/domains/room/model"
)

// WarningThreshold is the remaining-seat count below which a room is nearly full.
const WarningThreshold = 30

type Level string

const (
	LevelAvailable Level = "available"
	LevelWarning   Level = "warning"
	LevelFull      Level = "full"
)

// Summary is the seat state of one room on one date.
type Summary struct {
	Room      string `json:"room"`
	Label     string `json:"label"`
	Marker    string `json:"marker"`
	Capacity  int    `json:"capacity"`
	Used      int    `json:"used"`
	Remaining int    `json:"remaining"`
	Level     Level  `json:"level"`
}

// UsedSeats sums participants of the bookings made for room.
func UsedSeats(room string, bookings []bookingModel.Booking) int {
	used := 0
	for _, booking := range bookings {
		if booking.Room == room {
			used += booking.Participants
		}
	}

	return used
}

// RemainingSeats is capacity minus the seats used in room. It goes negative when overbooked.
func RemainingSeats(capacity int, room string, bookings []bookingModel.Booking) int {
	return capacity - UsedSeats(room, bookings)
}

func Classify(remaining int) Level {
	switch {
	case remaining <= 0:
		return LevelFull
	case remaining < WarningThreshold:
		return LevelWarning
	default:
		return LevelAvailable
	}
}

// Summarize reports each of rooms, in the given order, against bookingsOnDate.
// Rooms outside the registry have capacity 0.
func Summarize(registry *roomModel.Registry, rooms []string, bookingsOnDate []bookingModel.Booking) []Summary {
	summaries := make([]Summary, 0, len(rooms))

	for _, name := range rooms {
		room, ok := registry.Get(name)
		if !ok {
			room = roomModel.Room{Name: name, Label: name, Marker: roomModel.MarkerUnknown}
		}

		capacity := registry.Capacity(name)
		used := UsedSeats(name, bookingsOnDate)
		remaining := RemainingSeats(capacity, name, bookingsOnDate)

		summaries = append(summaries, Summary{
			Room:      name,
			Label:     room.Label,
			Marker:    room.Marker,
			Capacity:  capacity,
			Used:      used,
			Remaining: remaining,
			Level:     Classify(remaining),
		})
	}

	return summaries
}
