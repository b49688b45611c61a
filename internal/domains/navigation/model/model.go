package model

import (
	bookingModel "roomcal/internal/domains/booking/model"
)

type Page string

const (
	PageBooking  Page = "booking"
	PageCalendar Page = "calendar"
)

func ParsePage(value string) (Page, bool) {
	switch Page(value) {
	case PageBooking, PageCalendar:
		return Page(value), true
	default:
		return "", false
	}
}

// Status is the outcome message of the last submission.
type Status struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// State is the whole navigable view state. Month is 0-based. Filters are kept in
// registry order. The in-flight counters drive the loading flags.
type State struct {
	Page          Page
	Year          int
	Month         int
	Filters       []string
	Bookings      []bookingModel.Booking
	Fetching      int
	Submitting    int
	Status        *Status
	CalendarError string
}

// StepMonth moves the displayed month by step, wrapping December and January into
// the neighbouring year.
func (s *State) StepMonth(step int) {
	s.Month += step

	if s.Month < 0 {
		s.Month = 11
		s.Year--
	}

	if s.Month > 11 {
		s.Month = 0
		s.Year++
	}
}

// ToggleFilter adds room to the active filters, or removes it when already active.
// It reports whether the room is active afterwards.
func (s *State) ToggleFilter(room string) bool {
	for i, name := range s.Filters {
		if name == room {
			s.Filters = append(s.Filters[:i:i], s.Filters[i+1:]...)

			return false
		}
	}

	s.Filters = append(s.Filters, room)

	return true
}
