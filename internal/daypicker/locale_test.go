package daypicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishWeekdayNamesWrap(t *testing.T) {
	tests := []struct {
		weekday int
		short   string
		long    string
	}{
		{0, "Su", "Sunday"},
		{6, "Sa", "Saturday"},
		{7, "Su", "Sunday"},
		{-1, "Sa", "Saturday"},
		{-8, "Sa", "Saturday"},
	}
	var en English
	for _, tt := range tests {
		assert.Equal(t, tt.short, en.FormatWeekdayShort(tt.weekday, "en"), "weekday %d", tt.weekday)
		assert.Equal(t, tt.long, en.FormatWeekdayLong(tt.weekday, "en"), "weekday %d", tt.weekday)
	}
}
