package stats

import (
	"testing"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func weekSessions() []domain.TrainingSession {
	alice := primitive.NewObjectID()
	run := session(alice, domain.DisciplineRunning, "2024-03-05") // ISO week 10
	run.DistanceKm = floatPtr(10)
	run.RPE = 8

	laser := session(alice, domain.DisciplineLaserRun, "2024-03-06")
	laser.DistanceKm = floatPtr(5)
	laser.RPE = 6

	swim := session(alice, domain.DisciplineSwimming, "2024-03-07")
	swim.DistanceKm = floatPtr(2.5)
	swim.RPE = 4

	shoot := session(alice, domain.DisciplineShooting, "2024-03-07")
	shoot.RPE = 2

	return []domain.TrainingSession{run, laser, swim, shoot}
}

func TestComposeWeekSummary_FoldCombinedRun(t *testing.T) {
	matrix := BuildYearMatrix(weekSessions(), 2024)

	folded := ComposeWeekSummary(matrix, 10, SummaryOptions{FoldCombinedRun: true})
	assert.Equal(t, 15.0, folded.RunKm, "laser run distance folds into the running total")
	assert.Equal(t, 5.0, folded.LaserRunKm, "combined discipline keeps its own figure")

	separate := ComposeWeekSummary(matrix, 10, SummaryOptions{FoldCombinedRun: false})
	assert.Equal(t, 10.0, separate.RunKm)
	assert.Equal(t, 5.0, separate.LaserRunKm)
}

func TestComposeWeekSummary_Figures(t *testing.T) {
	matrix := BuildYearMatrix(weekSessions(), 2024)
	summary := ComposeWeekSummary(matrix, 10, SummaryOptions{FoldCombinedRun: true})

	assert.Equal(t, 10, summary.Week)
	assert.Equal(t, 2.5, summary.SwimKm)
	assert.Equal(t, 1, summary.ShootingCount)
	assert.Zero(t, summary.ObstacleCount)
	assert.Zero(t, summary.FencingCount)
	assert.Equal(t, 4, summary.TotalSessions)
	assert.Equal(t, 5.0, summary.AvgRPE, "(8+6+4+2)/4")
}

func TestComposeWeekSummary_EmptyWeekZeroGuarded(t *testing.T) {
	matrix := BuildYearMatrix(weekSessions(), 2024)
	summary := ComposeWeekSummary(matrix, 20, SummaryOptions{FoldCombinedRun: true})

	assert.Zero(t, summary.TotalSessions)
	assert.Equal(t, 0.0, summary.AvgRPE, "empty week averages to exactly 0")
}

func TestDisciplineTotals(t *testing.T) {
	totals := DisciplineTotals(weekSessions())
	require.Len(t, totals, len(domain.AllDisciplines))

	byDiscipline := make(map[domain.Discipline]DisciplineTotal)
	for _, row := range totals {
		byDiscipline[row.Discipline] = row
	}

	run := byDiscipline[domain.DisciplineRunning]
	assert.Equal(t, 1, run.Count)
	assert.Equal(t, 10.0, run.DistanceKm)
	assert.Equal(t, 60, run.DurationMinutes)
	assert.True(t, run.HasDistance)

	// Dense output: zero-count rows present, the UI hides them.
	medical := byDiscipline[domain.DisciplineMedical]
	assert.Zero(t, medical.Count)
	assert.False(t, medical.HasDistance)
	assert.Equal(t, "Medical", medical.Label)
}

func TestComposeCurrentWeek(t *testing.T) {
	summary := ComposeCurrentWeek(weekSessions())

	assert.Equal(t, 4, summary.TotalSessions)
	assert.Equal(t, 240, summary.TotalMinutes)
	assert.Equal(t, 15.0, summary.RunKm, "laser run always folds into the dashboard running total")
	assert.Equal(t, 5.0, summary.LaserRunKm)
	assert.Equal(t, 2.5, summary.SwimKm)
	assert.Equal(t, 1, summary.ShootingCount)
	assert.Zero(t, summary.MedicalCount)
}

func TestComposeCurrentWeek_Empty(t *testing.T) {
	summary := ComposeCurrentWeek(nil)
	assert.Zero(t, summary.TotalSessions)
	assert.Zero(t, summary.TotalMinutes)
}
