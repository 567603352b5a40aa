package stats

import (
	"sort"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/calendar"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
)

// Accumulator is the per-group fold result shared by every aggregate
// view: session count, summed duration and distance, and the RPE sum
// the average is derived from.
type Accumulator struct {
	Count           int     `json:"count"`
	DurationMinutes int     `json:"durationMinutes"`
	DistanceKm      float64 `json:"distanceKm"`
	RPESum          int     `json:"rpeSum"`
}

// Add folds one session into the accumulator. A missing distance
// contributes zero.
func (a *Accumulator) Add(s *domain.TrainingSession) {
	a.Count++
	a.DurationMinutes += s.DurationMinutes
	a.DistanceKm += s.Distance()
	a.RPESum += s.RPE
}

// AvgRPE returns the group's average RPE, or exactly 0 for an empty
// group. Callers never see NaN.
func (a *Accumulator) AvgRPE() float64 {
	if a.Count == 0 {
		return 0
	}
	return float64(a.RPESum) / float64(a.Count)
}

// AggregateByDiscipline groups sessions by discipline and folds each
// group into an accumulator. The result is sparse: disciplines with no
// sessions in the input are absent, and the presentation layer decides
// which zero entries to display.
//
// Sessions carrying a discipline outside the closed enumeration are
// skipped rather than failing the whole aggregation; the number of
// skipped sessions is returned so the caller can flag the bad records.
func AggregateByDiscipline(sessions []domain.TrainingSession) (map[domain.Discipline]Accumulator, int) {
	byDiscipline := make(map[domain.Discipline]Accumulator)
	skipped := 0
	for i := range sessions {
		s := &sessions[i]
		if !domain.IsValidDiscipline(s.Discipline) {
			skipped++
			continue
		}
		acc := byDiscipline[s.Discipline]
		acc.Add(s)
		byDiscipline[s.Discipline] = acc
	}
	return byDiscipline, skipped
}

// WeekCell is one cell of the season matrix: the numeric accumulator
// plus the literal contributing sessions, kept so the season view can
// drill into a cell. Both are produced by the same routing, so they
// stay consistent by construction.
type WeekCell struct {
	Accumulator
	Sessions []domain.TrainingSession `json:"sessions"`
}

// YearMatrix is the dense (discipline, ISO week) aggregation for one
// calendar year.
type YearMatrix struct {
	Year  int                              `json:"year"`
	Weeks int                              `json:"weeks"` // 52 or 53
	Cells map[domain.Discipline][]WeekCell `json:"cells"` // index 0 is week 1
}

// Cell returns the cell for a discipline and 1-based week index, or nil
// when either is out of range.
func (m *YearMatrix) Cell(d domain.Discipline, week int) *WeekCell {
	row, ok := m.Cells[d]
	if !ok || week < 1 || week > len(row) {
		return nil
	}
	return &row[week-1]
}

// BuildYearMatrix routes every in-year session to
// cells[discipline][ISOWeek(date)] and folds it in. The matrix is
// dense: every discipline of the enumeration gets a zeroed cell for
// every week 1..WeeksInYear(year), whether or not sessions exist for
// it. Sessions outside the year, with malformed dates or with unknown
// disciplines are ignored. Per-cell session lists come out sorted by
// date.
func BuildYearMatrix(sessions []domain.TrainingSession, year int) *YearMatrix {
	weeks := calendar.WeeksInYear(year)
	matrix := &YearMatrix{
		Year:  year,
		Weeks: weeks,
		Cells: make(map[domain.Discipline][]WeekCell, len(domain.AllDisciplines)),
	}
	for _, d := range domain.AllDisciplines {
		matrix.Cells[d] = make([]WeekCell, weeks)
	}

	for i := range sessions {
		s := &sessions[i]
		day, ok := s.Day()
		if !ok || day.Year() != year {
			continue
		}
		row, ok := matrix.Cells[s.Discipline]
		if !ok {
			continue
		}
		isoYear, week := calendar.ISOYearWeek(day)
		if isoYear != year || week < 1 || week > weeks {
			// Year-boundary days owned by the neighboring ISO year have
			// no column in this matrix.
			continue
		}
		cell := &row[week-1]
		cell.Add(s)
		cell.Sessions = append(cell.Sessions, *s)
	}

	for _, row := range matrix.Cells {
		for i := range row {
			sortSessionsByDate(row[i].Sessions)
		}
	}
	return matrix
}

// DailyRPE is one point of the daily-intensity time series: the average
// RPE over every session recorded on one date, with the contributing
// sessions retained for drill-down.
type DailyRPE struct {
	Date     string                   `json:"date"`
	AvgRPE   float64                  `json:"avgRpe"`
	Sessions []domain.TrainingSession `json:"sessions"`
}

// AggregateDailyRPE groups sessions by exact date and computes the
// per-day RPE average. The series is sorted ascending by date, which is
// safe because dates are stored in the lexicographically sortable
// YYYY-MM-DD form.
func AggregateDailyRPE(sessions []domain.TrainingSession) []DailyRPE {
	type group struct {
		rpeSum   int
		count    int
		sessions []domain.TrainingSession
	}
	groups := make(map[string]*group)
	for i := range sessions {
		s := &sessions[i]
		g, ok := groups[s.Date]
		if !ok {
			g = &group{}
			groups[s.Date] = g
		}
		g.rpeSum += s.RPE
		g.count++
		g.sessions = append(g.sessions, *s)
	}

	dates := make([]string, 0, len(groups))
	for date := range groups {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	series := make([]DailyRPE, 0, len(dates))
	for _, date := range dates {
		g := groups[date]
		avg := 0.0
		if g.count > 0 {
			avg = float64(g.rpeSum) / float64(g.count)
		}
		series = append(series, DailyRPE{Date: date, AvgRPE: avg, Sessions: g.sessions})
	}
	return series
}

func sortSessionsByDate(sessions []domain.TrainingSession) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date < sessions[j].Date
	})
}
