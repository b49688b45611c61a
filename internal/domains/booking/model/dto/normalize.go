package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"roomcal/internal/domains/booking/model"
	"roomcal/shared/constant"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

const (
	// maxParticipants bounds a head count so seat arithmetic cannot overflow.
	maxParticipants = math.MaxInt32

	minYear = 1
	maxYear = 9999
)

var (
	minEpochMillis = time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxEpochMillis = time.Date(maxYear, time.December, 31, 23, 59, 59, 999_000_000, time.UTC).UnixMilli()
)

// RawBooking is one record as returned by the fetch endpoint, decoded with json.Decoder.UseNumber.
type RawBooking map[string]any

// Normalize maps a raw record onto the canonical booking. Malformed fields never fail,
// they fall back to their zero value.
func Normalize(raw RawBooking) model.Booking {
	status := text(raw, model.FieldStatus)
	if status == constant.Empty {
		status = model.StatusPendingReview
	}

	return model.Booking{
		Name:           text(raw, model.FieldFullName),
		Email:          text(raw, model.FieldEmail),
		Department:     text(raw, model.FieldDepartment),
		Participants:   Participants(raw[model.FieldParticipants]),
		Date:           NormalizeDate(raw[model.FieldBookingDate]),
		StartTime:      text(raw, model.FieldStartTime),
		EndTime:        text(raw, model.FieldEndTime),
		Purpose:        text(raw, model.FieldPurpose),
		Room:           text(raw, model.FieldRoom),
		AdditionalInfo: text(raw, model.FieldAdditionalInfo),
		BreakTime:      text(raw, model.FieldBreakTime),
		Status:         status,
	}
}

func NormalizeAll(raws []RawBooking) []model.Booking {
	bookings := make([]model.Booking, 0, len(raws))
	for _, raw := range raws {
		bookings = append(bookings, Normalize(raw))
	}

	return bookings
}

// text renders the value under key as a string. Missing, null, false and numeric zero are absent.
func text(raw RawBooking, key string) string {
	value, ok := raw[key]
	if !ok || value == nil {
		return constant.Empty
	}

	switch v := value.(type) {
	case string:
		return v
	case bool:
		if !v {
			return constant.Empty
		}

		return strconv.FormatBool(v)
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return constant.Empty
		}

		return v.String()
	case float64:
		if v == 0 {
			return constant.Empty
		}

		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(encoded)
	}
}

// Participants coerces a JSON number or numeric string to a head count. Fractions truncate
// toward zero; negative, non-numeric, missing and implausibly large values are 0.
func Participants(value any) int {
	var (
		f   float64
		err error
	)

	switch v := value.(type) {
	case json.Number:
		f, err = v.Float64()
	case float64:
		f = v
	case int:
		f = float64(v)
	case string:
		// strconv rather than cast: cast reads "010" as octal.
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0
	}

	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > maxParticipants {
		return 0
	}

	return int(math.Trunc(f))
}

// NormalizeDate converts the backend's date representations to YYYY-MM-DD.
// Slash dates are D/M/Y, or Y/M/D when the first part has four digits, with any
// trailing time ignored. Other strings keep the date portion as written. Numbers are
// epoch milliseconds in UTC. Anything that is not a real calendar date yields "".
func NormalizeDate(value any) string {
	switch v := value.(type) {
	case string:
		v = strings.TrimSpace(v)
		if v == constant.Empty {
			return constant.Empty
		}

		if strings.Contains(v, "/") {
			return slashDate(v)
		}

		t, err := cast.ToTimeInDefaultLocationE(v, time.UTC)
		if err != nil || t.Year() < minYear || t.Year() > maxYear {
			return constant.Empty
		}

		return t.Format(constant.ISODateFormat)
	case json.Number:
		ms, err := v.Float64()
		if err != nil {
			return constant.Empty
		}

		return epochDate(ms)
	case float64:
		return epochDate(v)
	default:
		return constant.Empty
	}
}

// epochDate formats ms as a UTC date. Values outside years 1..9999 have no YYYY-MM-DD form.
func epochDate(ms float64) string {
	if ms == 0 || math.IsNaN(ms) || math.IsInf(ms, 0) || ms < float64(minEpochMillis) || ms > float64(maxEpochMillis) {
		return constant.Empty
	}

	return time.UnixMilli(int64(ms)).UTC().Format(constant.ISODateFormat)
}

func slashDate(value string) string {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return constant.Empty
	}

	first := strings.TrimSpace(parts[0])
	second := strings.TrimSpace(parts[1])

	third := strings.Fields(parts[2])
	if len(third) == 0 {
		return constant.Empty
	}

	year, month, day := third[0], second, first
	if len(first) == 4 {
		year, day = first, third[0]
	}

	if len(year) != 4 || len(month) > 2 || len(day) > 2 {
		return constant.Empty
	}

	candidate := year + "-" + pad(month) + "-" + pad(day)

	if _, err := time.Parse(constant.ISODateFormat, candidate); err != nil {
		return constant.Empty
	}

	return candidate
}

func pad(part string) string {
	if len(part) == 1 {
		return "0" + part
	}

	return part
}
