package daypicker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGridInvariants(t *testing.T) {
	start := mustMonth(t, "2023-01")
	for i := 0; i < 36; i++ {
		m := start.AddMonths(i)
		for f := time.Sunday; f <= time.Saturday; f++ {
			g := BuildGrid(m, f)
			require.NotEmpty(t, g.Weeks)

			days := g.Days()
			assert.Len(t, days, len(g.Weeks)*7)
			for j := 1; j < len(days); j++ {
				require.Equal(t, days[j-1].AddDays(1), days[j], "%s/%d contiguous at %d", m, f, j)
			}
			assert.Equal(t, f, days[0].Weekday(), "%s/%d first weekday", m, f)

			first, last := g.Weeks[0], g.Weeks[len(g.Weeks)-1]
			assert.True(t, weekTouches(first, m), "%s/%d first week", m, f)
			assert.True(t, weekTouches(last, m), "%s/%d last week", m, f)
			assert.False(t, m.First().Before(days[0]))
			assert.False(t, days[len(days)-1].Before(m.Last()))
		}
	}
}

func weekTouches(w Week, m Month) bool {
	for _, d := range w {
		if m.Contains(d) {
			return true
		}
	}
	return false
}

func TestBuildGridWeekCountIsComputed(t *testing.T) {
	tests := []struct {
		month string
		first time.Weekday
		weeks int
	}{
		{"2015-02", time.Sunday, 4},
		{"2024-03", time.Sunday, 6},
		{"2024-03", time.Monday, 5},
		{"2024-06", time.Sunday, 6},
		{"2024-09", time.Sunday, 5},
	}
	for _, tt := range tests {
		g := BuildGrid(mustMonth(t, tt.month), tt.first)
		assert.Len(t, g.Weeks, tt.weeks, "%s first=%s", tt.month, tt.first)
	}
}

func TestBuildGridMarksOutsideDays(t *testing.T) {
	g := BuildGrid(mustMonth(t, "2024-03"), time.Sunday)
	assert.Equal(t, "2024-02-25", g.Weeks[0][0].String())
	assert.True(t, g.Outside(g.Weeks[0][0]))
	assert.False(t, g.Outside(mustDate(t, "2024-03-01")))
	assert.True(t, g.Outside(mustDate(t, "2024-04-06")))

	w, c, ok := g.Locate(mustDate(t, "2024-03-31"))
	require.True(t, ok)
	assert.Equal(t, 5, w)
	assert.Equal(t, 0, c)

	_, _, ok = g.Locate(mustDate(t, "2024-04-07"))
	assert.False(t, ok)
}

func TestBuildGridIsDeterministic(t *testing.T) {
	m := mustMonth(t, "2024-07")
	assert.Equal(t, BuildGrid(m, time.Wednesday), BuildGrid(m, time.Wednesday))
}
