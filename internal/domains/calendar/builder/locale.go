package builder

import (
	"fmt"
	"roomcal/shared/constant"
	"time"
)

// buddhistEraOffset converts a Gregorian year to the Thai solar calendar year.
const buddhistEraOffset = 543

var (
	thaiMonths = [12]string{
		"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน",
		"กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม",
	}
	thaiWeekdays    = []string{"อา", "จ", "อ", "พ", "พฤ", "ศ", "ส"}
	englishWeekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
)

// Weekdays returns the grid column headers, Sunday first.
func Weekdays(locale string) []string {
	if locale == constant.LocaleEnglish {
		return append([]string(nil), englishWeekdays...)
	}

	return append([]string(nil), thaiWeekdays...)
}

// MonthLabel renders "มกราคม 2567" for th and "January 2024" for en. month is 0-based.
func MonthLabel(locale string, year, month int) string {
	if locale == constant.LocaleEnglish {
		return fmt.Sprintf("%s %d", time.Month(month+1).String(), year)
	}

	return fmt.Sprintf("%s %d", thaiMonths[month], year+buddhistEraOffset)
}

// DateLabel renders an ISO date as "5 มกราคม 2567" or "5 January 2024". Unparseable input is returned as is.
func DateLabel(locale, date string) string {
	t, err := time.Parse(constant.ISODateFormat, date)
	if err != nil {
		return date
	}

	return fmt.Sprintf("%d %s", t.Day(), MonthLabel(locale, t.Year(), int(t.Month())-1))
}
