package model

import "fmt"

const (
	EntityName = "booking"

	// StatusPendingReview is assigned when the backend row carries no status.
	StatusPendingReview = "รอตรวจสอบ"
)

// Keys of a raw booking record as produced by the backend sheet.
const (
	FieldFullName       = "fullName"
	FieldEmail          = "email"
	FieldDepartment     = "department"
	FieldParticipants   = "participants"
	FieldBookingDate    = "bookingDate"
	FieldStartTime      = "startTime"
	FieldEndTime        = "endTime"
	FieldPurpose        = "purpose"
	FieldRoom           = "room"
	FieldAdditionalInfo = "additionalInfo"
	FieldBreakTime      = "breakTime"
	FieldStatus         = "status"
)

// Booking is the canonical, normalized booking. Date is YYYY-MM-DD or empty.
type Booking struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Department     string `json:"department"`
	Participants   int    `json:"participants"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Purpose        string `json:"purpose"`
	Room           string `json:"room"`
	AdditionalInfo string `json:"additional_info"`
	BreakTime      string `json:"break_time"`
	Status         string `json:"status"`
}

// OnDate returns the bookings dated date, in their original order. An empty date matches nothing.
func OnDate(bookings []Booking, date string) []Booking {
	if date == "" {
		return nil
	}

	var matched []Booking
	for _, booking := range bookings {
		if booking.Date == date {
			matched = append(matched, booking)
		}
	}

	return matched
}

// InMonth returns the bookings dated inside the given year and 1-based month.
func InMonth(bookings []Booking, year, month int) []Booking {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var matched []Booking
	for _, booking := range bookings {
		if len(booking.Date) == len("2006-01-02") && booking.Date[:len(prefix)] == prefix {
			matched = append(matched, booking)
		}
	}

	return matched
}
