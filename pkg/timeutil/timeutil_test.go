package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	tests := map[int]bool{
		1900: false,
		2000: true,
		2023: false,
		2024: true,
		2100: false,
	}
	for year, want := range tests {
		assert.Equal(t, want, IsLeapYear(year), "year %d", year)
	}
}

func TestAnniversaryIn(t *testing.T) {
	leapDay := Date(2000, time.February, 29)

	assert.Equal(t, Date(2023, time.February, 28), AnniversaryIn(leapDay, 2023))
	assert.Equal(t, Date(2024, time.February, 29), AnniversaryIn(leapDay, 2024))
	assert.Equal(t, Date(2024, time.January, 3), AnniversaryIn(Date(1990, time.January, 3), 2024))
}

func TestInRange_Inclusive(t *testing.T) {
	from := Date(2024, time.January, 1)
	to := AddDays(from, 7)

	assert.True(t, InRange(from, from, to))
	assert.True(t, InRange(to, from, to))
	assert.False(t, InRange(AddDays(to, 1), from, to))
	assert.False(t, InRange(AddDays(from, -1), from, to))
}

func TestToday_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	clock := FixedClock(time.Date(2024, time.March, 10, 23, 45, 0, 0, loc))

	today := Today(clock)

	assert.Equal(t, Date(2024, time.March, 10), today)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("03.01.1990")
	require.NoError(t, err)
	assert.Equal(t, Date(1990, time.January, 3), got)

	got, err = ParseDate("3.1.1990")
	require.NoError(t, err)
	assert.Equal(t, Date(1990, time.January, 3), got)

	for _, bad := range []string{"31.02.2020", "29.02.2023", "2020-01-01", "", "1.13.2020"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "03.01.1990", FormatDate(Date(1990, time.January, 3)))
}
