package dto

import "fmt"

// MonthRequest selects a month grid. Month is 1-based here, as in URLs. A nil Rooms
// means the default filters; an empty, non-nil Rooms means no filters.
type MonthRequest struct {
	Year  int
	Month int
	Rooms []string
}

type ICSFile struct {
	Name    string
	Content string
}

func ICSFileName(year, month int) string {
	return fmt.Sprintf("bookings-%04d-%02d.ics", year, month)
}
