package builder

import (
	"fmt"
	bookingModel "roomcal/internal/domains/booking/model"
	"roomcal/shared/constant"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const icsDateTimeLayout = constant.ISODateFormat + " " + constant.ClockFormat

// BuildICS exports the dated bookings of year/month (0-based) as an iCalendar feed.
// Bookings with a usable time range become timed events in loc; the rest are all-day.
func (b *Builder) BuildICS(service string, year, month int, bookings []bookingModel.Booking, loc *time.Location, now time.Time) (string, error) {
	if month < 0 || month > 11 {
		return "", fmt.Errorf("%w: got %d", ErrMonthOutOfRange, month)
	}

	cal := ical.NewCalendarFor(service)
	cal.SetMethod(ical.MethodPublish)
	cal.SetXWRCalName(MonthLabel(b.locale, year, month))
	cal.SetXWRTimezone(loc.String())

	for _, booking := range bookingModel.InMonth(bookings, year, month+1) {
		event := cal.AddEvent(eventUID(booking))
		event.SetDtStampTime(now)
		event.SetSummary(eventSummary(booking))
		event.SetLocation(booking.Room)
		event.SetDescription(b.eventDescription(booking))

		if booking.Status == bookingModel.StatusPendingReview {
			event.SetStatus(ical.ObjectStatusTentative)
		} else {
			event.SetStatus(ical.ObjectStatusConfirmed)
		}

		start, end, timed := eventTimes(booking, loc)
		if timed {
			event.SetStartAt(start)
			event.SetEndAt(end)

			continue
		}

		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
	}

	return cal.Serialize(), nil
}

// eventUID is stable across exports so calendar clients update events instead of duplicating them.
func eventUID(booking bookingModel.Booking) string {
	key := strings.Join([]string{booking.Date, booking.Room, booking.StartTime, booking.EndTime, booking.Name}, "|")

	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String() + "@roomcal"
}

func eventSummary(booking bookingModel.Booking) string {
	if booking.Purpose == constant.Empty {
		return fmt.Sprintf("%s (%s)", booking.Room, booking.Name)
	}

	return fmt.Sprintf("%s: %s (%s)", booking.Room, booking.Purpose, booking.Name)
}

func (b *Builder) eventDescription(booking bookingModel.Booking) string {
	lines := []string{
		fmt.Sprintf("%s: %d", participantsLabel(b.locale), booking.Participants),
		booking.Status,
	}

	if booking.Department != constant.Empty {
		lines = append(lines, booking.Department)
	}

	if booking.AdditionalInfo != constant.Empty {
		lines = append(lines, booking.AdditionalInfo)
	}

	return strings.Join(lines, "\n")
}

func participantsLabel(locale string) string {
	if locale == constant.LocaleEnglish {
		return "Participants"
	}

	return "ผู้เข้าร่วม"
}

// eventTimes parses the booking's wall clock range in loc. timed is false when either end
// is missing or the range is not increasing; start then holds the date at midnight.
func eventTimes(booking bookingModel.Booking, loc *time.Location) (start, end time.Time, timed bool) {
	day, _ := time.ParseInLocation(constant.ISODateFormat, booking.Date, loc)

	start, err := time.ParseInLocation(icsDateTimeLayout, booking.Date+" "+strings.TrimSpace(booking.StartTime), loc)
	if err != nil {
		return day, time.Time{}, false
	}

	end, err = time.ParseInLocation(icsDateTimeLayout, booking.Date+" "+strings.TrimSpace(booking.EndTime), loc)
	if err != nil || !end.After(start) {
		return day, time.Time{}, false
	}

	return start, end, true
}
