package stats

import "github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"

// SummaryOptions configures the named roll-ups. Laser Run is a combined
// run/shoot variant of Running; whether its distance and count are
// folded into the Running figures differs per view, so the behaviour is
// an option here rather than a branch inside the aggregator.
type SummaryOptions struct {
	FoldCombinedRun bool
}

// WeekSummary is the fixed roll-up the season dashboard shows for one
// focused week.
type WeekSummary struct {
	Week              int     `json:"week"`
	SwimKm            float64 `json:"swimKm"`
	RunKm             float64 `json:"runKm"`
	LaserRunKm        float64 `json:"laserRunKm"`
	ObstacleCount     int     `json:"obstacleCount"`
	ShootingCount     int     `json:"shootingCount"`
	FencingCount      int     `json:"fencingCount"`
	PhysicalPrepCount int     `json:"physicalPrepCount"`
	TotalSessions     int     `json:"totalSessions"`
	AvgRPE            float64 `json:"avgRpe"`
}

// ComposeWeekSummary reshapes one week column of the season matrix into
// the named dashboard figures. It introduces no new aggregation: every
// figure is selected or summed from accumulators the matrix already
// holds. The combined average RPE spans all disciplines and is
// zero-guarded.
func ComposeWeekSummary(matrix *YearMatrix, week int, opts SummaryOptions) WeekSummary {
	summary := WeekSummary{Week: week}
	rpeSum := 0

	for _, d := range domain.AllDisciplines {
		cell := matrix.Cell(d, week)
		if cell == nil {
			continue
		}

		switch d {
		case domain.DisciplineSwimming:
			summary.SwimKm += cell.DistanceKm
		case domain.DisciplineRunning:
			summary.RunKm += cell.DistanceKm
		case domain.DisciplineLaserRun:
			summary.LaserRunKm += cell.DistanceKm
			if opts.FoldCombinedRun {
				summary.RunKm += cell.DistanceKm
			}
		case domain.DisciplineObstacle:
			summary.ObstacleCount += cell.Count
		case domain.DisciplineShooting:
			summary.ShootingCount += cell.Count
		case domain.DisciplineFencing:
			summary.FencingCount += cell.Count
		case domain.DisciplinePhysicalPrep:
			summary.PhysicalPrepCount += cell.Count
		}

		summary.TotalSessions += cell.Count
		rpeSum += cell.RPESum
	}

	if summary.TotalSessions > 0 {
		summary.AvgRPE = float64(rpeSum) / float64(summary.TotalSessions)
	}
	return summary
}

// DisciplineTotal is one row of the per-discipline statistics table.
type DisciplineTotal struct {
	Discipline      domain.Discipline `json:"discipline"`
	Label           string            `json:"label"`
	HasDistance     bool              `json:"hasDistance"`
	DurationMinutes int               `json:"durationMinutes"`
	DistanceKm      float64           `json:"distanceKm"`
	Count           int               `json:"count"`
}

// DisciplineTotals folds the filtered subset into one totals row per
// discipline of the enumeration, in display order. Rows are dense here;
// the presentation layer only renders rows with Count > 0.
func DisciplineTotals(sessions []domain.TrainingSession) []DisciplineTotal {
	byDiscipline, _ := AggregateByDiscipline(sessions)

	totals := make([]DisciplineTotal, 0, len(domain.AllDisciplines))
	for _, d := range domain.AllDisciplines {
		profile, _ := domain.ProfileFor(d)
		acc := byDiscipline[d]
		totals = append(totals, DisciplineTotal{
			Discipline:      d,
			Label:           profile.Label,
			HasDistance:     profile.HasDistance,
			DurationMinutes: acc.DurationMinutes,
			DistanceKm:      acc.DistanceKm,
			Count:           acc.Count,
		})
	}
	return totals
}

// CurrentWeekSummary is the athlete dashboard roll-up over the running
// week: total volume plus the per-discipline figures, with Laser Run
// distance always folded into the running total and also reported on
// its own.
type CurrentWeekSummary struct {
	TotalMinutes  int     `json:"totalMinutes"`
	TotalSessions int     `json:"totalSessions"`
	RunKm         float64 `json:"runKm"` // running + laser run combined
	LaserRunKm    float64 `json:"laserRunKm"`
	SwimKm        float64 `json:"swimKm"`
	ObstacleCount int     `json:"obstacleCount"`
	ShootingCount int     `json:"shootingCount"`
	FencingCount  int     `json:"fencingCount"`
	PhysicalCount int     `json:"physicalCount"`
	MedicalCount  int     `json:"medicalCount"`
}

// ComposeCurrentWeek folds an already-filtered week of sessions into
// the athlete dashboard figures.
func ComposeCurrentWeek(sessions []domain.TrainingSession) CurrentWeekSummary {
	summary := CurrentWeekSummary{TotalSessions: len(sessions)}
	for i := range sessions {
		s := &sessions[i]
		summary.TotalMinutes += s.DurationMinutes

		switch s.Discipline {
		case domain.DisciplineRunning:
			summary.RunKm += s.Distance()
		case domain.DisciplineLaserRun:
			summary.RunKm += s.Distance()
			summary.LaserRunKm += s.Distance()
		case domain.DisciplineSwimming:
			summary.SwimKm += s.Distance()
		case domain.DisciplineObstacle:
			summary.ObstacleCount++
		case domain.DisciplineShooting:
			summary.ShootingCount++
		case domain.DisciplineFencing:
			summary.FencingCount++
		case domain.DisciplinePhysicalPrep:
			summary.PhysicalCount++
		case domain.DisciplineMedical:
			summary.MedicalCount++
		}
	}
	return summary
}
