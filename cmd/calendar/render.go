package main

import (
	"fmt"
	"roomcal/internal/domains/calendar/model"
	"strings"
	"text/tabwriter"
)

const (
	cellWidth = 6
	weekDays  = 7
)

// RenderMonth draws the grid as text. Booked days carry their booking count, today is
// bracketed and days of the neighbouring months are dimmed with a dot.
func RenderMonth(month model.Month) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", month.Label)

	for _, weekday := range month.Weekdays {
		fmt.Fprintf(&b, "%-*s", cellWidth, weekday)
	}

	b.WriteString("\n")

	for i, cell := range month.Cells {
		fmt.Fprintf(&b, "%-*s", cellWidth, cellText(cell))

		if (i+1)%weekDays == 0 {
			b.WriteString("\n")
		}
	}

	for _, cell := range month.Cells {
		if !cell.HasBookings() {
			continue
		}

		fmt.Fprintf(&b, "\n%s:", cell.Date)

		for _, seat := range cell.Seats {
			fmt.Fprintf(&b, " %s %d/%d (%s)", seat.Label, seat.Remaining, seat.Capacity, seat.Level)
		}
	}

	if strings.HasSuffix(b.String(), "\n") {
		return b.String()
	}

	return b.String() + "\n"
}

func cellText(cell model.Cell) string {
	text := fmt.Sprintf("%d", cell.Day)

	switch {
	case cell.OtherMonth:
		text = "." + text
	case cell.Today:
		text = "[" + text + "]"
	}

	if cell.HasBookings() {
		text += fmt.Sprintf("*%d", cell.BookingCount)
	}

	return text
}

// RenderDetail prints the seat summary of every room followed by the bookings of the day.
func RenderDetail(detail model.Detail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", detail.Label)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	for _, seat := range detail.Seats {
		fmt.Fprintf(w, "%s\t%d/%d\t%s\n", seat.Room, seat.Remaining, seat.Capacity, seat.Level)
	}

	_ = w.Flush()

	if len(detail.Bookings) == 0 {
		return b.String()
	}

	b.WriteString("\n")

	w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	for _, item := range detail.Bookings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n", item.TimeRange, item.Room, item.Name, item.Participants, item.Purpose, item.Status)
	}

	_ = w.Flush()

	return b.String()
}
