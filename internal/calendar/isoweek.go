// Package calendar holds the ISO-8601 week arithmetic shared by every
// statistics view. Week numbering, week counts per year and the
// week-to-month display mapping live here so the individual views never
// reimplement the boundary math.
package calendar

import "time"

// ISOWeek returns the ISO-8601 week number (1..53) of the day
// containing t. The computation shifts to the Thursday of the
// containing week and measures whole weeks from that Thursday's
// year-start, which keeps the year-boundary cases right: Dec 31 can be
// week 1 of the next ISO year, Jan 1 can be week 52/53 of the previous
// one.
func ISOWeek(t time.Time) int {
	_, week := ISOYearWeek(t)
	return week
}

// ISOYearWeek returns the ISO week number of t together with the ISO
// year that owns the week. The two differ from the calendar year only
// around New Year: the days Dec 29..31 may already belong to week 1 of
// the next ISO year, and Jan 1..3 may still belong to week 52/53 of the
// previous one.
func ISOYearWeek(t time.Time) (year, week int) {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	weekday := int(d.Weekday())
	if weekday == 0 { // ISO weeks run Monday(1)..Sunday(7)
		weekday = 7
	}

	thursday := d.AddDate(0, 0, 4-weekday)
	yearStart := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(thursday.Sub(yearStart).Hours() / 24)
	return thursday.Year(), days/7 + 1
}

// WeeksInYear returns the number of ISO weeks (52 or 53) in the given
// year. Dec 31 is probed first; when it already belongs to week 1 of
// the following ISO year, Dec 24 is guaranteed to sit in the true last
// week and is probed instead. A naive Dec 31 check alone misclassifies
// those years.
func WeeksInYear(year int) int {
	w := ISOWeek(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC))
	if w == 1 {
		return ISOWeek(time.Date(year, time.December, 24, 0, 0, 0, 0, time.UTC))
	}
	return w
}

// MonthForWeek maps a week index of a year to a representative calendar
// month by materializing a date near that week and reading its month.
// Display-only heuristic: a week spanning two months is attributed to a
// single one.
func MonthForWeek(year, week int) time.Month {
	d := time.Date(year, time.January, 1+(week-1)*7, 0, 0, 0, 0, time.UTC)
	return d.Month()
}

// MonthBlock is a run of contiguous weeks attributed to the same month,
// used for the season matrix header.
type MonthBlock struct {
	Month     time.Month `json:"month"`
	Name      string     `json:"name"`
	StartWeek int        `json:"startWeek"`
	Span      int        `json:"span"`
}

// MonthBlocks groups the weeks 1..WeeksInYear(year) into contiguous
// same-month runs.
func MonthBlocks(year int) []MonthBlock {
	var blocks []MonthBlock
	for week := 1; week <= WeeksInYear(year); week++ {
		m := MonthForWeek(year, week)
		if len(blocks) == 0 || blocks[len(blocks)-1].Month != m {
			blocks = append(blocks, MonthBlock{
				Month:     m,
				Name:      m.String(),
				StartWeek: week,
				Span:      1,
			})
			continue
		}
		blocks[len(blocks)-1].Span++
	}
	return blocks
}
