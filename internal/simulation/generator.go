package simulation

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChunkSize is the batch size used when persisting generated sessions.
const ChunkSize = 100

// SimulationFocus marks generated sessions so they can be told apart
// from real entries.
const SimulationFocus = "Simulation automatique"

// Options controls a season generation run. Zero-value From and To
// default to the 2023 season start and today.
type Options struct {
	AthleteID primitive.ObjectID
	From      time.Time
	To        time.Time
	Seed      int64
}

type vacation struct {
	start time.Time
	end   time.Time
}

// Club closure windows. Generated plans produce no sessions on these
// days, same as Sundays.
var vacations = []vacation{
	{day(2023, time.December, 24), day(2023, time.December, 28)},
	{day(2024, time.April, 10), day(2024, time.April, 14)},
	{day(2024, time.August, 5), day(2024, time.August, 10)},
	{day(2024, time.December, 22), day(2024, time.December, 27)},
	{day(2025, time.March, 15), day(2025, time.March, 20)},
	{day(2025, time.July, 20), day(2025, time.July, 25)},
	{day(2025, time.December, 23), day(2025, time.December, 28)},
}

var notes = []string{
	"Bonnes sensations aujourd'hui.",
	"Un peu de fatigue en fin de séance.",
	"Focus sur la technique réussi.",
	"Séance intense mais productive.",
	"Besoin de plus de récupération.",
	"Très bon rythme sur les séries.",
	"Travail spécifique intéressant.",
	"Météo difficile mais bon mental.",
	"Progression visible sur les chronos.",
	"Léger manque de précision au début.",
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func isVacation(t time.Time) bool {
	for _, v := range vacations {
		if !t.Before(v.start) && !t.After(v.end) {
			return true
		}
	}
	return false
}

// GenerateSeason produces a plausible training history for one athlete:
// two to four sessions on every training day, no Sundays, no club
// closures, with volumes drifting upward over the period. Runs with the
// same options are reproducible.
func GenerateSeason(opts Options) []domain.TrainingSession {
	from := opts.From
	if from.IsZero() {
		from = day(2023, time.September, 1)
	}
	to := opts.To
	if to.IsZero() {
		to = time.Now().UTC()
	}
	from = day(from.Year(), from.Month(), from.Day())
	to = day(to.Year(), to.Month(), to.Day())

	faker := gofakeit.New(opts.Seed)
	totalDays := int(to.Sub(from).Hours()/24) + 1
	createdAt := time.Now().UTC()

	var sessions []domain.TrainingSession
	for i := 0; i < totalDays; i++ {
		current := from.AddDate(0, 0, i)
		if current.Weekday() == time.Sunday || isVacation(current) {
			continue
		}

		progression := float64(i+1) / float64(totalDays)

		dayDisciplines := make([]domain.Discipline, len(domain.AllDisciplines))
		copy(dayDisciplines, domain.AllDisciplines)
		faker.ShuffleAnySlice(dayDisciplines)
		dayDisciplines = dayDisciplines[:faker.Number(2, 4)]

		for _, discipline := range dayDisciplines {
			// Medical sessions happen once or twice a month, not daily.
			if discipline == domain.DisciplineMedical && faker.Float64Range(0, 1) > 0.1 {
				continue
			}
			sessions = append(sessions, buildSession(faker, opts.AthleteID, discipline, current, progression, createdAt))
		}
	}
	return sessions
}

func buildSession(faker *gofakeit.Faker, athleteID primitive.ObjectID, discipline domain.Discipline, current time.Time, progression float64, createdAt time.Time) domain.TrainingSession {
	var (
		duration int
		distance *float64
	)
	rpe := faker.Number(4, 9)

	switch discipline {
	case domain.DisciplineSwimming:
		duration = faker.Number(60, 89)
		distance = km(2.5 + faker.Float64Range(0, 2)*progression)
	case domain.DisciplineRunning:
		duration = faker.Number(40, 79)
		distance = km(5 + faker.Float64Range(0, 10)*progression)
	case domain.DisciplineLaserRun:
		duration = faker.Number(45, 74)
		distance = km(3 + faker.Float64Range(0, 3))
	case domain.DisciplineFencing:
		duration = faker.Number(90, 149)
	case domain.DisciplineObstacle:
		duration = faker.Number(60, 89)
	case domain.DisciplinePhysicalPrep:
		duration = faker.Number(45, 89)
	case domain.DisciplineShooting:
		duration = faker.Number(30, 59)
	case domain.DisciplineMedical:
		duration = faker.Number(30, 44)
		rpe = faker.Number(2, 3)
	}

	return domain.TrainingSession{
		AthleteID:       athleteID,
		Discipline:      discipline,
		Date:            current.Format(domain.DateLayout),
		DurationMinutes: duration,
		DistanceKm:      distance,
		RPE:             rpe,
		WorkTypes:       pickWorkTypes(faker, discipline),
		Notes:           faker.RandomString(notes),
		Focus:           SimulationFocus,
		CreatedAt:       createdAt,
	}
}

// pickWorkTypes selects one tag from the discipline vocabulary, with an
// occasional second distinct tag.
func pickWorkTypes(faker *gofakeit.Faker, discipline domain.Discipline) []string {
	profile, ok := domain.ProfileFor(discipline)
	if !ok || len(profile.WorkTypes) == 0 {
		return nil
	}
	selected := []string{faker.RandomString(profile.WorkTypes)}
	if len(profile.WorkTypes) > 1 && faker.Float64Range(0, 1) > 0.7 {
		second := faker.RandomString(profile.WorkTypes)
		if second != selected[0] {
			selected = append(selected, second)
		}
	}
	return selected
}

func km(v float64) *float64 {
	rounded := float64(int(v*100+0.5)) / 100
	return &rounded
}
