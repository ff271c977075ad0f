package daypicker

import (
	"fmt"
	"strings"
	"time"
)

const DefaultLocale = "en"

// LocaleProvider formats captions and weekday headers. Weekday indexes
// follow time.Weekday: 0 is Sunday.
type LocaleProvider interface {
	FormatMonthTitle(m Month, locale string) string
	FormatWeekdayShort(weekday int, locale string) string
	FormatWeekdayLong(weekday int, locale string) string
	FirstDayOfWeek(locale string) time.Weekday
}

// English is the built-in provider. Regional English locales other than
// en-US start the week on Monday.
type English struct{}

var weekdaysShort = [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

func (English) FormatMonthTitle(m Month, _ string) string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (English) FormatWeekdayShort(weekday int, _ string) string {
	return weekdaysShort[weekdayIndex(weekday)]
}

func (English) FormatWeekdayLong(weekday int, _ string) string {
	return time.Weekday(weekdayIndex(weekday)).String()
}

// weekdayIndex folds any integer onto 0 (Sunday) .. 6.
func weekdayIndex(weekday int) int {
	return (weekday%7 + 7) % 7
}

func (English) FirstDayOfWeek(locale string) time.Weekday {
	switch strings.ToLower(locale) {
	case "", "en", "en-us", "en_us":
		return time.Sunday
	default:
		return time.Monday
	}
}

// Months lists the month names, January first.
func (English) Months() [12]string {
	var out [12]string
	for i := range out {
		out[i] = time.Month(i + 1).String()
	}
	return out
}
