package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomcal/internal/domains/availability"
	bookingModel "roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/calendar/builder"
	"roomcal/internal/domains/calendar/model"
	roomModel "roomcal/internal/domains/room/model"
)

const (
	roomA = "ห้องประชุม A"
	roomB = "ห้องประชุม B"
	hall  = "หอประชุม"
)

func newBuilder(t *testing.T, locale string) *builder.Builder {
	t.Helper()

	registry, err := roomModel.NewRegistry(roomModel.DefaultRooms()...)
	require.NoError(t, err)

	return builder.New(registry, locale)
}

func monthCells(cells []model.Cell) []model.Cell {
	var current []model.Cell
	for _, cell := range cells {
		if !cell.OtherMonth {
			current = append(current, cell)
		}
	}

	return current
}

func TestBuildMonth_Layout(t *testing.T) {
	tests := []struct {
		name         string
		year, month  int
		leading      int
		firstLeading int
		days         int
	}{
		{name: "january 2024 starts on monday", year: 2024, month: 0, leading: 1, firstLeading: 31, days: 31},
		{name: "leap february", year: 2024, month: 1, leading: 4, firstLeading: 28, days: 29},
		{name: "non leap february", year: 2023, month: 1, leading: 3, firstLeading: 29, days: 28},
		{name: "february starting on sunday", year: 2015, month: 1, leading: 0, days: 28},
		{name: "december", year: 2023, month: 11, leading: 5, firstLeading: 26, days: 31},
	}

	b := newBuilder(t, "th")

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			month, err := b.BuildMonth(tt.year, tt.month, nil, nil, "")
			require.NoError(t, err)

			require.Len(t, month.Cells, model.GridSize)

			for i := 0; i < tt.leading; i++ {
				assert.True(t, month.Cells[i].OtherMonth)
				assert.Empty(t, month.Cells[i].Date)
			}

			if tt.leading > 0 {
				assert.Equal(t, tt.firstLeading, month.Cells[0].Day)
			}

			current := monthCells(month.Cells)
			require.Len(t, current, tt.days)
			assert.Equal(t, 1, current[0].Day)
			assert.Equal(t, tt.days, current[len(current)-1].Day)

			trailing := month.Cells[tt.leading+tt.days:]
			assert.Len(t, trailing, model.GridSize-tt.leading-tt.days)

			for i, cell := range trailing {
				assert.True(t, cell.OtherMonth)
				assert.Equal(t, i+1, cell.Day)
			}
		})
	}
}

func TestBuildMonth_Dates(t *testing.T) {
	month, err := newBuilder(t, "th").BuildMonth(2024, 1, nil, nil, "2024-02-14")
	require.NoError(t, err)

	current := monthCells(month.Cells)
	assert.Equal(t, "2024-02-01", current[0].Date)
	assert.Equal(t, "2024-02-29", current[28].Date)

	for _, cell := range current {
		assert.Equal(t, cell.Date == "2024-02-14", cell.Today, cell.Date)
	}
}

func TestBuildMonth_TodayOutsideMonth(t *testing.T) {
	month, err := newBuilder(t, "th").BuildMonth(2024, 1, nil, nil, "2024-03-14")
	require.NoError(t, err)

	for _, cell := range month.Cells {
		assert.False(t, cell.Today)
	}
}

func TestBuildMonth_Bookings(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Name: "hall meeting", Room: hall, Participants: 480, Date: "2024-01-05"},
		{Name: "training", Room: roomA, Participants: 25, Date: "2024-01-05"},
		{Name: "workshop", Room: roomA, Participants: 15, Date: "2024-01-05"},
		{Name: "other day", Room: roomB, Participants: 300, Date: "2024-01-06"},
		{Name: "undated", Room: roomB, Participants: 10},
		{Name: "next month", Room: roomA, Participants: 10, Date: "2024-02-05"},
	}

	month, err := newBuilder(t, "th").BuildMonth(2024, 0, bookings, []string{hall, roomA}, "")
	require.NoError(t, err)

	assert.Equal(t, []string{roomA, hall}, month.ActiveRooms)

	cell := month.Cells[5]
	require.Equal(t, "2024-01-05", cell.Date)
	assert.True(t, cell.HasBookings())
	assert.Equal(t, 3, cell.BookingCount)
	assert.Equal(t, "hall meeting", cell.Bookings[0].Name)

	require.Len(t, cell.Seats, 2)
	assert.Equal(t, roomA, cell.Seats[0].Room)
	assert.Equal(t, 20, cell.Seats[0].Remaining)
	assert.Equal(t, availability.LevelWarning, cell.Seats[0].Level)
	assert.Equal(t, hall, cell.Seats[1].Room)
	assert.Equal(t, 20, cell.Seats[1].Remaining)

	assert.Equal(t, []model.RoomMarker{{Room: hall, Marker: "hall"}, {Room: roomA, Marker: "room-a"}}, cell.Rooms)

	full := month.Cells[6]
	require.Equal(t, "2024-01-06", full.Date)
	assert.Equal(t, 1, full.BookingCount)
	require.Len(t, full.Seats, 2, "every active room is summarized, booked or not")
	assert.Equal(t, roomA, full.Seats[0].Room)
	assert.Equal(t, 60, full.Seats[0].Remaining)
	assert.Equal(t, availability.LevelAvailable, full.Seats[0].Level)
	assert.Equal(t, hall, full.Seats[1].Room)
	assert.Equal(t, 500, full.Seats[1].Remaining)
	assert.Equal(t, availability.LevelAvailable, full.Seats[1].Level)

	booked := 0
	for _, c := range month.Cells {
		booked += c.BookingCount
	}

	assert.Equal(t, 4, booked, "undated and next month bookings never land in the grid")
}

func TestBuildMonth_EmptyFilters(t *testing.T) {
	bookings := []bookingModel.Booking{{Room: roomA, Participants: 60, Date: "2024-01-05"}}

	month, err := newBuilder(t, "th").BuildMonth(2024, 0, bookings, nil, "")
	require.NoError(t, err)

	cell := month.Cells[5]
	assert.Equal(t, 1, cell.BookingCount)
	assert.Empty(t, cell.Seats)
	assert.Len(t, cell.Rooms, 1)
}

func TestBuildMonth_UnknownRoomMarker(t *testing.T) {
	bookings := []bookingModel.Booking{{Room: "ห้องสมุด", Participants: 5, Date: "2024-01-05"}}

	month, err := newBuilder(t, "th").BuildMonth(2024, 0, bookings, []string{"ห้องสมุด"}, "")
	require.NoError(t, err)

	cell := month.Cells[5]
	assert.Empty(t, cell.Seats, "filters outside the registry are dropped")
	assert.Equal(t, []model.RoomMarker{{Room: "ห้องสมุด", Marker: roomModel.MarkerUnknown}}, cell.Rooms)
}

func TestBuildMonth_InvalidMonth(t *testing.T) {
	b := newBuilder(t, "th")

	_, err := b.BuildMonth(2024, 12, nil, nil, "")
	assert.ErrorIs(t, err, builder.ErrMonthOutOfRange)

	_, err = b.BuildMonth(2024, -1, nil, nil, "")
	assert.ErrorIs(t, err, builder.ErrMonthOutOfRange)
}

func TestBuildMonth_Labels(t *testing.T) {
	thai, err := newBuilder(t, "th").BuildMonth(2024, 0, nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "มกราคม 2567", thai.Label)
	assert.Equal(t, []string{"อา", "จ", "อ", "พ", "พฤ", "ศ", "ส"}, thai.Weekdays)

	english, err := newBuilder(t, "en").BuildMonth(2024, 11, nil, nil, "")
	require.NoError(t, err)
	assert.Equal(t, "December 2024", english.Label)
	assert.Equal(t, "Sun", english.Weekdays[0])
}

func TestBuildDetail(t *testing.T) {
	bookings := []bookingModel.Booking{
		{Name: "training", Room: roomA, Participants: 40, StartTime: "09:00", EndTime: "12:00", Purpose: "onboarding"},
		{Name: "assembly", Room: hall, Participants: 520, StartTime: "13:00", EndTime: "16:00"},
	}

	detail := newBuilder(t, "th").BuildDetail("2024-01-05", bookings)

	assert.Equal(t, "2024-01-05", detail.Date)
	assert.Equal(t, "5 มกราคม 2567", detail.Label)

	require.Len(t, detail.Seats, 3)
	assert.Equal(t, 20, detail.Seats[0].Remaining)
	assert.Equal(t, 300, detail.Seats[1].Remaining)
	assert.Equal(t, availability.LevelAvailable, detail.Seats[1].Level)
	assert.Equal(t, -20, detail.Seats[2].Remaining)
	assert.Equal(t, availability.LevelFull, detail.Seats[2].Level)

	require.Len(t, detail.Bookings, 2)
	assert.Equal(t, "training", detail.Bookings[0].Name)
	assert.Equal(t, "09:00 - 12:00", detail.Bookings[0].TimeRange)
	assert.Equal(t, "onboarding", detail.Bookings[0].Purpose)
	assert.Equal(t, "assembly", detail.Bookings[1].Name)
}

func TestBuildDetail_NoBookings(t *testing.T) {
	detail := newBuilder(t, "en").BuildDetail("2024-01-05", nil)

	assert.Equal(t, "5 January 2024", detail.Label)
	assert.Empty(t, detail.Bookings)

	for _, seat := range detail.Seats {
		assert.Equal(t, seat.Capacity, seat.Remaining)
	}
}

func TestDateLabel_Invalid(t *testing.T) {
	assert.Equal(t, "not-a-date", builder.DateLabel("th", "not-a-date"))
}
