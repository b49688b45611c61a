package dto

import (
	calendarModel "roomcal/internal/domains/calendar/model"
	"roomcal/internal/domains/navigation/model"
)

type Loading struct {
	Fetch  bool `json:"fetch"`
	Submit bool `json:"submit"`
}

// ViewResponse is a snapshot of the navigation state. Grid is only present on the
// calendar page and is replaced by CalendarError when the last fetch failed.
type ViewResponse struct {
	Page          model.Page           `json:"page"`
	Year          int                  `json:"year"`
	Month         int                  `json:"month"`
	Label         string               `json:"label"`
	ActiveFilters []string             `json:"active_filters"`
	Loading       Loading              `json:"loading"`
	Status        *model.Status        `json:"status,omitempty"`
	CalendarError string               `json:"calendar_error,omitempty"`
	BookingCount  int                  `json:"booking_count"`
	Grid          *calendarModel.Month `json:"grid,omitempty"`
}
