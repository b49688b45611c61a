package builder

import (
	"errors"
	"fmt"
	"roomcal/internal/domains/availability"
	bookingModel "roomcal/internal/domains/booking/model"
	"roomcal/internal/domains/calendar/model"
	roomModel "roomcal/internal/domains/room/model"
	"roomcal/shared/constant"
	"time"
)

var ErrMonthOutOfRange = errors.New("month must be between 0 and 11")

// Builder renders month grids and day details against a room registry. It holds no
// state besides the registry and locale, so one instance is safe to share.
type Builder struct {
	registry *roomModel.Registry
	locale   string
}

func New(registry *roomModel.Registry, locale string) *Builder {
	return &Builder{
		registry: registry,
		locale:   locale,
	}
}

func (b *Builder) Locale() string {
	return b.locale
}

// BuildMonth lays out year/month (0-based) as 42 cells: trailing days of the previous
// month, every day of this month, then leading days of the next. Seat summaries cover
// activeRooms only, in registry order; today is an ISO date.
func (b *Builder) BuildMonth(year, month int, bookings []bookingModel.Booking, activeRooms []string, today string) (model.Month, error) {
	if month < 0 || month > 11 {
		return model.Month{}, fmt.Errorf("%w: got %d", ErrMonthOutOfRange, month)
	}

	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	leading := int(first.Weekday())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	prevDays := first.AddDate(0, 0, -1).Day()

	active := b.registry.Ordered(activeRooms)

	cells := make([]model.Cell, 0, model.GridSize)

	for i := leading - 1; i >= 0; i-- {
		cells = append(cells, model.Cell{Day: prevDays - i, OtherMonth: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC).Format(constant.ISODateFormat)
		cells = append(cells, b.dayCell(day, date, date == today, bookings, active))
	}

	for day := 1; len(cells) < model.GridSize; day++ {
		cells = append(cells, model.Cell{Day: day, OtherMonth: true})
	}

	return model.Month{
		Year:        year,
		Month:       month,
		Label:       MonthLabel(b.locale, year, month),
		Weekdays:    Weekdays(b.locale),
		ActiveRooms: active,
		Cells:       cells,
	}, nil
}

func (b *Builder) dayCell(day int, date string, isToday bool, bookings []bookingModel.Booking, active []string) model.Cell {
	cell := model.Cell{Day: day, Date: date, Today: isToday}

	onDate := bookingModel.OnDate(bookings, date)
	if len(onDate) == 0 {
		return cell
	}

	cell.Bookings = onDate
	cell.BookingCount = len(onDate)
	cell.Seats = availability.Summarize(b.registry, active, onDate)
	cell.Rooms = b.distinctRooms(onDate)

	return cell
}

// distinctRooms lists each booked room once, in first-seen order.
func (b *Builder) distinctRooms(bookings []bookingModel.Booking) []model.RoomMarker {
	seen := make(map[string]bool, len(bookings))
	markers := make([]model.RoomMarker, 0, len(bookings))

	for _, booking := range bookings {
		if seen[booking.Room] {
			continue
		}

		seen[booking.Room] = true
		markers = append(markers, model.RoomMarker{Room: booking.Room, Marker: b.registry.Marker(booking.Room)})
	}

	return markers
}

// BuildDetail summarizes date for every registered room and lists bookingsOnDate in the
// order received.
func (b *Builder) BuildDetail(date string, bookingsOnDate []bookingModel.Booking) model.Detail {
	items := make([]model.DetailItem, len(bookingsOnDate))
	for i, booking := range bookingsOnDate {
		items[i] = model.DetailItem{
			Name:         booking.Name,
			Room:         booking.Room,
			StartTime:    booking.StartTime,
			EndTime:      booking.EndTime,
			TimeRange:    booking.StartTime + " - " + booking.EndTime,
			Participants: booking.Participants,
			Purpose:      booking.Purpose,
			Status:       booking.Status,
		}
	}

	return model.Detail{
		Date:     date,
		Label:    DateLabel(b.locale, date),
		Seats:    availability.Summarize(b.registry, b.registry.Names(), bookingsOnDate),
		Bookings: items,
	}
}
