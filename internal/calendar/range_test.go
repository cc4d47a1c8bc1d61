package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	view, err := ParseView("week")
	require.NoError(t, err)
	assert.Equal(t, ViewWeek, view)

	view, err = ParseView("")
	require.NoError(t, err)
	assert.Equal(t, ViewMonth, view)

	_, err = ParseView("year")
	require.Error(t, err)
}

func TestComputeRangeMonth(t *testing.T) {
	reference := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	r := ComputeRange(reference, ViewMonth)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.Local), r.End)
}

func TestComputeRangeWeekStartsSunday(t *testing.T) {
	// 2024-03-15 is a Friday; its week runs Sunday the 10th through
	// Saturday the 16th.
	reference := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	r := ComputeRange(reference, ViewWeek)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, time.Weekday(time.Sunday), r.Start.Weekday())
	assert.Equal(t, time.Date(2024, 3, 16, 23, 59, 59, 999999999, time.Local), r.End)
}

func TestComputeRangeDay(t *testing.T) {
	reference := time.Date(2024, 3, 15, 23, 30, 0, 0, time.Local)
	r := ComputeRange(reference, ViewDay)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.Local), r.End)
}

func TestMonthGridRangeCoversLeadingAndTrailingCells(t *testing.T) {
	// March 2024's grid opens Sunday February 25th and closes Saturday
	// April 6th, wider than the month range on both sides.
	reference := time.Date(2024, 3, 15, 10, 30, 0, 0, time.Local)
	r := MonthGridRange(reference)

	assert.Equal(t, time.Date(2024, 2, 25, 0, 0, 0, 0, time.Local), r.Start)
	assert.Equal(t, time.Date(2024, 4, 6, 23, 59, 59, 999999999, time.Local), r.End)

	month := ComputeRange(reference, ViewMonth)
	assert.True(t, r.Start.Before(month.Start))
	assert.True(t, r.End.After(month.End))
}

func TestComputeRangeContainsReference(t *testing.T) {
	references := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 12, 0, 0, 0, time.Local),
		time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local),
		time.Date(2025, 6, 15, 8, 45, 0, 0, time.Local),
	}
	for _, reference := range references {
		for _, view := range []View{ViewMonth, ViewWeek, ViewDay} {
			r := ComputeRange(reference, view)
			assert.False(t, reference.Before(r.Start), "%s %s: reference before range start", reference, view)
			assert.False(t, reference.After(r.End), "%s %s: reference after range end", reference, view)
		}
	}
}

func TestNavigationSteps(t *testing.T) {
	reference := time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

	assert.Equal(t, time.Date(2024, 4, 15, 0, 0, 0, 0, time.Local), Next(reference, ViewMonth))
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.Local), Previous(reference, ViewMonth))
	assert.Equal(t, time.Date(2024, 3, 22, 0, 0, 0, 0, time.Local), Next(reference, ViewWeek))
	assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.Local), Previous(reference, ViewWeek))
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.Local), Next(reference, ViewDay))
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.Local), Previous(reference, ViewDay))
}

func TestNavigationRoundTrip(t *testing.T) {
	reference := time.Date(2024, 7, 4, 0, 0, 0, 0, time.Local)
	for _, view := range []View{ViewMonth, ViewWeek, ViewDay} {
		assert.Equal(t, reference, Previous(Next(reference, view), view))
	}
}
