package daypicker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsOverYear(t *testing.T) {
	b := Bounds{From: mustMonth(t, "2024-01"), To: mustMonth(t, "2024-12")}
	for m := mustMonth(t, "2024-01"); MonthsDiff(m, b.To) >= 0; m = m.AddMonths(1) {
		assert.Equal(t, m != b.From, b.AllowPrevious(m), "previous at %s", m)
		assert.Equal(t, m != b.To, b.AllowNext(m, 1), "next at %s", m)
		assert.True(t, b.AllowMonth(m))
	}
	assert.False(t, b.AllowMonth(mustMonth(t, "2023-12")))
	assert.False(t, b.AllowMonth(mustMonth(t, "2025-01")))
}

func TestBoundsOpenSides(t *testing.T) {
	var b Bounds
	m := mustMonth(t, "1900-01")
	assert.True(t, b.AllowPrevious(m))
	assert.True(t, b.AllowNext(m, 12))
	assert.True(t, b.AllowMonth(m))

	b = Bounds{To: mustMonth(t, "2024-06")}
	assert.True(t, b.AllowPrevious(m))
	assert.False(t, b.AllowMonth(mustMonth(t, "2024-07")))
}

func TestBoundsAllowNextCountsWindow(t *testing.T) {
	b := Bounds{To: mustMonth(t, "2024-12")}
	assert.True(t, b.AllowNext(mustMonth(t, "2024-10"), 2))
	assert.False(t, b.AllowNext(mustMonth(t, "2024-11"), 2))
	assert.False(t, b.AllowNext(mustMonth(t, "2024-10"), 3))
}

func TestBoundsValidate(t *testing.T) {
	require.NoError(t, Bounds{}.Validate())
	require.NoError(t, Bounds{From: mustMonth(t, "2024-05"), To: mustMonth(t, "2024-05")}.Validate())
	err := Bounds{From: mustMonth(t, "2024-06"), To: mustMonth(t, "2024-05")}.Validate()
	require.ErrorIs(t, err, ErrInvalidBounds)
}
