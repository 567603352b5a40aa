package stats

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func floatPtr(v float64) *float64 { return &v }

func TestAggregateByDiscipline_Scenario(t *testing.T) {
	alice := primitive.NewObjectID()
	sessions := []domain.TrainingSession{
		{
			AthleteID:       alice,
			Discipline:      domain.DisciplineSwimming,
			Date:            "2024-03-04",
			DurationMinutes: 60,
			DistanceKm:      floatPtr(2.5),
			RPE:             6,
		},
		{
			AthleteID:       alice,
			Discipline:      domain.DisciplineRunning,
			Date:            "2024-03-04",
			DurationMinutes: 40,
			DistanceKm:      floatPtr(8),
			RPE:             8,
		},
	}

	byDiscipline, skipped := AggregateByDiscipline(sessions)
	require.Zero(t, skipped)
	require.Len(t, byDiscipline, 2)

	swim := byDiscipline[domain.DisciplineSwimming]
	assert.Equal(t, 1, swim.Count)
	assert.Equal(t, 60, swim.DurationMinutes)
	assert.Equal(t, 2.5, swim.DistanceKm)
	assert.Equal(t, 6.0, swim.AvgRPE())

	run := byDiscipline[domain.DisciplineRunning]
	assert.Equal(t, 1, run.Count)
	assert.Equal(t, 40, run.DurationMinutes)
	assert.Equal(t, 8.0, run.DistanceKm)
	assert.Equal(t, 8.0, run.AvgRPE())
}

func TestAggregateByDiscipline_PartitionProperty(t *testing.T) {
	faker := gofakeit.New(42)
	alice := primitive.NewObjectID()

	sessions := make([]domain.TrainingSession, 0, 500)
	for i := 0; i < 500; i++ {
		d := domain.AllDisciplines[faker.Number(0, len(domain.AllDisciplines)-1)]
		s := domain.TrainingSession{
			AthleteID:       alice,
			Discipline:      d,
			Date:            faker.DateRange(date(2024, time.January, 1), date(2024, time.December, 31)).Format(domain.DateLayout),
			DurationMinutes: faker.Number(0, 180),
			RPE:             faker.Number(1, 10),
		}
		if profile, _ := domain.ProfileFor(d); profile.HasDistance {
			s.DistanceKm = floatPtr(faker.Float64Range(0, 15))
		}
		sessions = append(sessions, s)
	}

	byDiscipline, skipped := AggregateByDiscipline(sessions)
	require.Zero(t, skipped)

	// Every session lands in exactly one discipline bucket.
	total := 0
	for _, acc := range byDiscipline {
		total += acc.Count
	}
	assert.Equal(t, len(sessions), total)
}

func TestAggregateByDiscipline_SparseAndIdempotent(t *testing.T) {
	alice := primitive.NewObjectID()
	sessions := []domain.TrainingSession{
		session(alice, domain.DisciplineFencing, "2024-03-04"),
	}

	first, _ := AggregateByDiscipline(sessions)
	second, _ := AggregateByDiscipline(sessions)

	assert.Equal(t, first, second, "same input must yield structurally equal results")

	// Sparse map: disciplines without sessions are absent, not zeroed.
	_, ok := first[domain.DisciplineSwimming]
	assert.False(t, ok)
}

func TestAggregateByDiscipline_UnknownDisciplineSkipped(t *testing.T) {
	alice := primitive.NewObjectID()
	sessions := []domain.TrainingSession{
		session(alice, domain.DisciplineFencing, "2024-03-04"),
		session(alice, domain.Discipline("underwater-chess"), "2024-03-04"),
	}

	byDiscipline, skipped := AggregateByDiscipline(sessions)
	assert.Equal(t, 1, skipped)
	require.Len(t, byDiscipline, 1)
	assert.Equal(t, 1, byDiscipline[domain.DisciplineFencing].Count)
}

func TestAccumulator_ZeroGuardedAverage(t *testing.T) {
	var acc Accumulator
	assert.Equal(t, 0.0, acc.AvgRPE(), "empty group averages to exactly 0, never NaN")
}

func TestAccumulator_MissingDistanceContributesZero(t *testing.T) {
	var acc Accumulator
	s := session(primitive.NewObjectID(), domain.DisciplineObstacle, "2024-03-04")
	acc.Add(&s)

	assert.Equal(t, 1, acc.Count)
	assert.Equal(t, 0.0, acc.DistanceKm)
}

func TestBuildYearMatrix_DenseCompleteness(t *testing.T) {
	matrix := BuildYearMatrix(nil, 2024)

	assert.Equal(t, 52, matrix.Weeks)
	require.Len(t, matrix.Cells, len(domain.AllDisciplines))
	for _, d := range domain.AllDisciplines {
		row := matrix.Cells[d]
		require.Len(t, row, matrix.Weeks)
		for week := 1; week <= matrix.Weeks; week++ {
			cell := matrix.Cell(d, week)
			require.NotNil(t, cell)
			assert.Zero(t, cell.Count)
			assert.Empty(t, cell.Sessions)
		}
	}
}

func TestBuildYearMatrix_RoutesByISOWeek(t *testing.T) {
	alice := primitive.NewObjectID()
	sessions := []domain.TrainingSession{
		{
			AthleteID:       alice,
			Discipline:      domain.DisciplineSwimming,
			Date:            "2024-03-06", // Wednesday of ISO week 10
			DurationMinutes: 60,
			DistanceKm:      floatPtr(3),
			RPE:             7,
		},
		{
			AthleteID:       alice,
			Discipline:      domain.DisciplineSwimming,
			Date:            "2024-03-04", // Monday of the same week
			DurationMinutes: 45,
			DistanceKm:      floatPtr(2),
			RPE:             5,
		},
		session(alice, domain.DisciplineFencing, "2023-12-20"), // out of year
		session(alice, domain.Discipline("nope"), "2024-03-06"),
	}

	matrix := BuildYearMatrix(sessions, 2024)

	cell := matrix.Cell(domain.DisciplineSwimming, 10)
	require.NotNil(t, cell)
	assert.Equal(t, 2, cell.Count)
	assert.Equal(t, 105, cell.DurationMinutes)
	assert.Equal(t, 5.0, cell.DistanceKm)
	assert.Equal(t, 6.0, cell.AvgRPE())

	// The retained session list matches the accumulator and is sorted
	// by date.
	require.Len(t, cell.Sessions, 2)
	assert.Equal(t, "2024-03-04", cell.Sessions[0].Date)
	assert.Equal(t, "2024-03-06", cell.Sessions[1].Date)

	// The fencing session dated 2023 contributed nowhere.
	for week := 1; week <= matrix.Weeks; week++ {
		assert.Zero(t, matrix.Cell(domain.DisciplineFencing, week).Count)
	}
}

func TestBuildYearMatrix_YearBoundaryDaysSkipped(t *testing.T) {
	alice := primitive.NewObjectID()
	// Dec 30-31 2024 belong to ISO week 1 of 2025: they have no column
	// in the 2024 matrix and must not be misfiled in week 52.
	sessions := []domain.TrainingSession{
		session(alice, domain.DisciplineRunning, "2024-12-30"),
	}

	matrix := BuildYearMatrix(sessions, 2024)
	for week := 1; week <= matrix.Weeks; week++ {
		assert.Zero(t, matrix.Cell(domain.DisciplineRunning, week).Count)
	}
}

func TestBuildYearMatrix_CellOutOfRange(t *testing.T) {
	matrix := BuildYearMatrix(nil, 2024)
	assert.Nil(t, matrix.Cell(domain.DisciplineRunning, 0))
	assert.Nil(t, matrix.Cell(domain.DisciplineRunning, 53))
	assert.Nil(t, matrix.Cell(domain.Discipline("nope"), 1))
}

func TestAggregateDailyRPE(t *testing.T) {
	alice := primitive.NewObjectID()
	mk := func(day string, rpe int) domain.TrainingSession {
		s := session(alice, domain.DisciplineRunning, day)
		s.RPE = rpe
		return s
	}

	sessions := []domain.TrainingSession{
		mk("2024-03-05", 4),
		mk("2024-03-04", 7),
		mk("2024-03-05", 6),
		mk("2024-03-05", 8),
	}

	series := AggregateDailyRPE(sessions)
	require.Len(t, series, 2)

	// Ascending by date.
	assert.Equal(t, "2024-03-04", series[0].Date)
	assert.Equal(t, "2024-03-05", series[1].Date)

	assert.Equal(t, 7.0, series[0].AvgRPE)
	require.Len(t, series[0].Sessions, 1)

	// Three sessions with RPE 4, 6, 8 average to exactly 6.
	assert.Equal(t, 6.0, series[1].AvgRPE)
	require.Len(t, series[1].Sessions, 3)
}

func TestAggregateDailyRPE_Empty(t *testing.T) {
	assert.Empty(t, AggregateDailyRPE(nil))
}
