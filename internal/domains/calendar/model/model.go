package model

import (
	"roomcal/internal/domains/availability"
	bookingModel "roomcal/internal/domains/booking/model"
)

// GridSize is the number of cells in a month view: six weeks of seven days.
const GridSize = 42

// RoomMarker is one indicator dot on a cell, one per distinct room booked that day.
type RoomMarker struct {
	Room   string `json:"room"`
	Marker string `json:"marker"`
}

// Cell is one day of the month grid. Filler cells from the neighbouring months only
// carry a day number.
type Cell struct {
	Day          int                    `json:"day"`
	OtherMonth   bool                   `json:"other_month"`
	Today        bool                   `json:"today"`
	Date         string                 `json:"date,omitempty"`
	Bookings     []bookingModel.Booking `json:"bookings,omitempty"`
	BookingCount int                    `json:"booking_count"`
	Seats        []availability.Summary `json:"seats,omitempty"`
	Rooms        []RoomMarker           `json:"rooms,omitempty"`
}

func (c Cell) HasBookings() bool {
	return c.BookingCount > 0
}

// Month is a rendered month. Month is 0-based, January is 0.
type Month struct {
	Year        int      `json:"year"`
	Month       int      `json:"month"`
	Label       string   `json:"label"`
	Weekdays    []string `json:"weekdays"`
	ActiveRooms []string `json:"active_rooms"`
	Cells       []Cell   `json:"cells"`
}

// DetailItem is one booking line of the day detail view.
type DetailItem struct {
	Name         string `json:"name"`
	Room         string `json:"room"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TimeRange    string `json:"time_range"`
	Participants int    `json:"participants"`
	Purpose      string `json:"purpose"`
	Status       string `json:"status"`
}

// Detail summarizes one date across every registered room, ignoring filters.
type Detail struct {
	Date     string                 `json:"date"`
	Label    string                 `json:"label"`
	Seats    []availability.Summary `json:"seats"`
	Bookings []DetailItem           `json:"bookings"`
}
