package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gotham/pkg/utils"
)

func TestSetDateRangeExpandsCalendarDays(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-03")

	require.Len(t, st.Days, 3)
	assert.Equal(t, "2025-06-01", st.Days[0].Date)
	assert.Equal(t, "2025-06-02", st.Days[1].Date)
	assert.Equal(t, "2025-06-03", st.Days[2].Date)
	assert.Equal(t, 0, st.ActiveDayIndex)
}

func TestSetDateRangeCoversFullRangeInclusive(t *testing.T) {
	var st State
	st.SetDateRange("2025-02-26", "2025-03-04") // crosses a month boundary

	require.Len(t, st.Days, 7)
	assert.Equal(t, "2025-02-26", st.Days[0].Date)
	assert.Equal(t, "2025-03-04", st.Days[6].Date)

	for i := 1; i < len(st.Days); i++ {
		prev, err := utils.ParseDate(st.Days[i-1].Date)
		require.NoError(t, err)
		cur, err := utils.ParseDate(st.Days[i].Date)
		require.NoError(t, err)
		assert.Equal(t, prev.AddDate(0, 0, 1), cur, "dates must increase by one calendar day")
	}
}

func TestSetDateRangeSingleDay(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-01")

	require.Len(t, st.Days, 1)
	assert.Equal(t, "2025-06-01", st.Days[0].Date)
}

func TestSetDateRangeInvalidYieldsEmptyDays(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"end before start", "2025-06-03", "2025-06-01"},
		{"unparseable start", "not-a-date", "2025-06-01"},
		{"unparseable end", "2025-06-01", "junk"},
		{"both empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var st State
			st.SetDateRange(tc.start, tc.end)

			assert.Empty(t, st.Days)
			assert.Equal(t, 0, st.ActiveDayIndex)
		})
	}
}

func TestSetDateRangeDiscardsPriorAssignments(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-03")
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x", Name: "Empire State"}))

	st.SetDateRange("2025-06-02", "2025-06-04")

	for _, day := range st.Days {
		assert.Empty(t, day.Items)
	}
	assert.Equal(t, 0, st.ActiveDayIndex)
}

func TestAddToActiveDayIsIdempotent(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-03")

	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x", Name: "Empire State"}))
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x", Name: "Empire State"}))

	assert.Len(t, st.Days[0].Items, 1)
}

func TestAddToActiveDayTargetsActiveDayOnly(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-03")

	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x"}))

	assert.Len(t, st.Days[0].Items, 1)
	assert.Equal(t, "x", st.Days[0].Items[0].ID)
	assert.Empty(t, st.Days[1].Items)
	assert.Empty(t, st.Days[2].Items)
}

func TestAddToActiveDayPreservesInsertionOrder(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-01")

	require.NoError(t, st.AddToActiveDay(Attraction{ID: "a"}))
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "b"}))
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "c"}))

	ids := make([]string, 0, 3)
	for _, item := range st.Days[0].Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestAddToActiveDayWithoutDays(t *testing.T) {
	var st State
	err := st.AddToActiveDay(Attraction{ID: "x"})
	assert.ErrorIs(t, err, utils.ErrScheduleEmpty)
}

func TestSetActiveDayValidatesBounds(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-03")

	assert.ErrorIs(t, st.SetActiveDay(-1), utils.ErrDayOutOfRange)
	assert.ErrorIs(t, st.SetActiveDay(3), utils.ErrDayOutOfRange)

	require.NoError(t, st.SetActiveDay(2))
	assert.Equal(t, 2, st.ActiveDayIndex)
}

func TestRemoveThenReAddRestoresSingleEntry(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-02")

	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x"}))
	require.NoError(t, st.RemoveFromDay(0, "x"))
	require.Empty(t, st.Days[0].Items)

	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x"}))
	assert.Len(t, st.Days[0].Items, 1)
}

func TestRemoveFromDayValidatesBounds(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-02")

	assert.ErrorIs(t, st.RemoveFromDay(5, "x"), utils.ErrDayOutOfRange)
	assert.ErrorIs(t, st.RemoveFromDay(-1, "x"), utils.ErrDayOutOfRange)
}

func TestRemoveMissingIDIsNoOp(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-01")
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "a"}))

	require.NoError(t, st.RemoveFromDay(0, "nope"))
	assert.Len(t, st.Days[0].Items, 1)
}

func TestReset(t *testing.T) {
	var st State
	st.SetDateRange("2025-06-01", "2025-06-03")
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x"}))
	require.NoError(t, st.SetActiveDay(1))

	st.Reset()

	assert.Empty(t, st.StartDate)
	assert.Empty(t, st.EndDate)
	assert.Empty(t, st.Days)
	assert.Equal(t, 0, st.ActiveDayIndex)
}

func TestHasItems(t *testing.T) {
	var st State
	assert.False(t, st.HasItems())

	st.SetDateRange("2025-06-01", "2025-06-02")
	assert.False(t, st.HasItems())

	require.NoError(t, st.SetActiveDay(1))
	require.NoError(t, st.AddToActiveDay(Attraction{ID: "x"}))
	assert.True(t, st.HasItems())
}
