package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"roomcal/internal/domains/availability"
	"roomcal/internal/domains/calendar/model"
)

func TestRenderMonth(t *testing.T) {
	cells := make([]model.Cell, model.GridSize)
	for i := range cells {
		cells[i] = model.Cell{Day: i%28 + 1}
	}

	cells[0].OtherMonth = true
	cells[3] = model.Cell{Day: 3, Today: true, Date: "2024-01-03"}
	cells[5] = model.Cell{
		Day:          5,
		Date:         "2024-01-05",
		BookingCount: 2,
		Seats:        []availability.Summary{{Label: "A", Capacity: 60, Remaining: 20, Level: availability.LevelWarning}},
	}

	out := RenderMonth(model.Month{
		Label:    "January 2024",
		Weekdays: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		Cells:    cells,
	})

	lines := strings.Split(out, "\n")
	assert.Equal(t, "January 2024", lines[0])
	assert.Contains(t, lines[2], ".1")
	assert.Contains(t, lines[2], "[3]")
	assert.Contains(t, lines[2], "5*2")
	assert.Contains(t, out, "2024-01-05: A 20/60 (warning)")
}

func TestRenderDetail(t *testing.T) {
	out := RenderDetail(model.Detail{
		Label: "5 January 2024",
		Seats: []availability.Summary{{Room: "Hall", Capacity: 500, Remaining: 400, Level: availability.LevelAvailable}},
		Bookings: []model.DetailItem{
			{Name: "assembly", Room: "Hall", TimeRange: "09:00 - 12:00", Participants: 100},
		},
	})

	assert.True(t, strings.HasPrefix(out, "5 January 2024\n"))
	assert.Contains(t, out, "400/500")
	assert.Contains(t, out, "assembly")
}
