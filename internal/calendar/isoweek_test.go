package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestISOWeek(t *testing.T) {
	cases := []struct {
		date time.Time
		want int
	}{
		{day(2024, time.March, 4), 10},     // a Monday mid-year
		{day(2024, time.January, 1), 1},    // 2024 starts on a Monday
		{day(2024, time.December, 31), 1},  // Tuesday, belongs to 2025-W01
		{day(2021, time.January, 1), 53},   // Friday, belongs to 2020-W53
		{day(2020, time.December, 31), 53}, // 2020 is a 53-week year
		{day(2023, time.January, 1), 52},   // Sunday, still 2022-W52
		{day(2015, time.December, 31), 53},
		{day(2024, time.March, 10), 10}, // Sunday closes the same week
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ISOWeek(tc.date), "week of %s", tc.date.Format("2006-01-02"))
	}
}

func TestISOWeek_MatchesStdlib(t *testing.T) {
	// Sweep a few years day by day and cross-check against the standard
	// library's ISO week implementation.
	d := day(2019, time.January, 1)
	end := day(2026, time.January, 1)
	for d.Before(end) {
		wantYear, wantWeek := d.ISOWeek()
		gotYear, gotWeek := ISOYearWeek(d)
		require.Equal(t, wantWeek, gotWeek, "week of %s", d.Format("2006-01-02"))
		require.Equal(t, wantYear, gotYear, "iso year of %s", d.Format("2006-01-02"))
		d = d.AddDate(0, 0, 1)
	}
}

func TestISOYearWeek_YearBoundary(t *testing.T) {
	year, week := ISOYearWeek(day(2024, time.December, 30))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 1, week)

	year, week = ISOYearWeek(day(2021, time.January, 2))
	assert.Equal(t, 2020, year)
	assert.Equal(t, 53, week)
}

func TestWeeksInYear(t *testing.T) {
	cases := map[int]int{
		2015: 53,
		2020: 53,
		2021: 52,
		2022: 52,
		2023: 52,
		2024: 52, // Dec 31 falls in next year's week 1; Dec 24 probe yields 52
		2025: 52,
		2026: 53,
	}
	for year, want := range cases {
		assert.Equal(t, want, WeeksInYear(year), "year %d", year)
	}
}

func TestWeeksInYear_BoundsEverySessionWeek(t *testing.T) {
	for year := 2019; year <= 2026; year++ {
		weeks := WeeksInYear(year)
		require.True(t, weeks == 52 || weeks == 53)

		d := day(year, time.January, 1)
		for d.Year() == year {
			w := ISOWeek(d)
			assert.GreaterOrEqual(t, w, 1)
			assert.LessOrEqual(t, w, 53)
			d = d.AddDate(0, 0, 1)
		}
	}
}

func TestMonthForWeek(t *testing.T) {
	assert.Equal(t, time.January, MonthForWeek(2024, 1))
	assert.Equal(t, time.December, MonthForWeek(2024, 52))
	assert.Equal(t, time.March, MonthForWeek(2024, 10))
}

func TestMonthBlocks(t *testing.T) {
	blocks := MonthBlocks(2024)
	require.NotEmpty(t, blocks)

	assert.Equal(t, time.January, blocks[0].Month)
	assert.Equal(t, 1, blocks[0].StartWeek)

	// Blocks partition the whole year contiguously.
	total := 0
	next := 1
	for _, b := range blocks {
		assert.Equal(t, next, b.StartWeek)
		assert.Greater(t, b.Span, 0)
		next += b.Span
		total += b.Span
	}
	assert.Equal(t, WeeksInYear(2024), total)
}
