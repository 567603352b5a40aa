package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/briceloubet2001-web/PentaTrack-v4/internal/calendar"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/domain"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/repository"
	"github.com/briceloubet2001-web/PentaTrack-v4/internal/stats"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrAthleteNotFound = errors.New("athlete not found")
	ErrAccessDenied    = errors.New("access denied to this athlete's data")
	ErrInvalidPeriod   = errors.New("invalid statistics period")
	ErrInvalidWeek     = errors.New("week index out of range for year")
)

// Actor identifies the authenticated account a request runs as. The
// role only gates which athlete's data is visible; it never changes how
// aggregation behaves.
type Actor struct {
	ID   primitive.ObjectID
	Role domain.Role
	Club string
}

// StatsQuery carries the scope selection of a statistics request.
type StatsQuery struct {
	Period      stats.Period
	Reference   time.Time
	CustomStart time.Time
	CustomEnd   time.Time
	AthleteID   primitive.ObjectID // requested subject; ignored for athlete actors
}

// DisciplineBreakdown is the per-scope distribution view: the sparse
// per-discipline fold plus the dense totals table.
type DisciplineBreakdown struct {
	Scope           stats.Scope                             `json:"scope"`
	Label           string                                  `json:"label"`
	ByDiscipline    map[domain.Discipline]stats.Accumulator `json:"byDiscipline"`
	Totals          []stats.DisciplineTotal                 `json:"totals"`
	SessionCount    int                                     `json:"sessionCount"`
	SkippedSessions int                                     `json:"skippedSessions"`
}

// SeasonOverview is the dense year matrix plus the month header blocks
// the season view renders above it.
type SeasonOverview struct {
	Matrix      *stats.YearMatrix     `json:"matrix"`
	MonthBlocks []calendar.MonthBlock `json:"monthBlocks"`
}

// --- Service Interface ---
type StatsService interface {
	DisciplineBreakdown(ctx context.Context, actor Actor, q StatsQuery) (*DisciplineBreakdown, error)
	DailyRPE(ctx context.Context, actor Actor, q StatsQuery) ([]stats.DailyRPE, error)
	SeasonOverview(ctx context.Context, actor Actor, athleteID primitive.ObjectID, year int) (*SeasonOverview, error)
	WeekSummary(ctx context.Context, actor Actor, athleteID primitive.ObjectID, year, week int, foldCombinedRun bool) (*stats.WeekSummary, error)
	Dashboard(ctx context.Context, actor Actor) (*stats.CurrentWeekSummary, error)
}

// --- Service Implementation ---

// statsService fetches session snapshots from the repository and runs
// the pure aggregation core over them. Aggregates are recomputed from
// scratch on every call; there is no cache to invalidate.
type statsService struct {
	sessionRepo repository.SessionRepository
	athleteRepo repository.AthleteRepository
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(sessionRepo repository.SessionRepository, athleteRepo repository.AthleteRepository) StatsService {
	return &statsService{
		sessionRepo: sessionRepo,
		athleteRepo: athleteRepo,
	}
}

// resolveTarget decides whose sessions a request may see. Athletes are
// always pinned to themselves. Coaches view the athlete they asked for,
// restricted to their own club; no selection yet is a valid state and
// resolves to the nil ID (which yields empty aggregates downstream).
func (s *statsService) resolveTarget(ctx context.Context, actor Actor, requested primitive.ObjectID) (primitive.ObjectID, error) {
	if actor.Role == domain.RoleAthlete {
		return actor.ID, nil
	}

	if requested == primitive.NilObjectID {
		return primitive.NilObjectID, nil
	}

	athlete, err := s.athleteRepo.GetByID(ctx, requested)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrAthleteNotFound
		}
		return primitive.NilObjectID, err
	}
	if athlete.Club != actor.Club {
		return primitive.NilObjectID, ErrAccessDenied
	}
	return requested, nil
}

// fetchScoped fetches the target athlete's full session snapshot and
// narrows it to the resolved scope. A nil target yields an empty
// subset.
func (s *statsService) fetchScoped(ctx context.Context, target primitive.ObjectID, scope stats.Scope) ([]domain.TrainingSession, error) {
	if target == primitive.NilObjectID {
		return nil, nil
	}
	all, err := s.sessionRepo.GetByAthleteID(ctx, target)
	if err != nil {
		return nil, err
	}
	return stats.FilterSessions(all, target, scope), nil
}

func (s *statsService) DisciplineBreakdown(ctx context.Context, actor Actor, q StatsQuery) (*DisciplineBreakdown, error) {
	if !stats.IsValidPeriod(q.Period) {
		return nil, ErrInvalidPeriod
	}
	target, err := s.resolveTarget(ctx, actor, q.AthleteID)
	if err != nil {
		return nil, err
	}

	scope := stats.ResolveScope(q.Period, q.Reference, q.CustomStart, q.CustomEnd)
	subset, err := s.fetchScoped(ctx, target, scope)
	if err != nil {
		return nil, err
	}

	byDiscipline, skipped := stats.AggregateByDiscipline(subset)
	if skipped > 0 {
		log.Printf("WARN: %d session(s) with unknown discipline skipped for athlete %s", skipped, target.Hex())
	}

	return &DisciplineBreakdown{
		Scope:           scope,
		Label:           stats.PeriodLabel(q.Period, q.Reference, scope),
		ByDiscipline:    byDiscipline,
		Totals:          stats.DisciplineTotals(subset),
		SessionCount:    len(subset),
		SkippedSessions: skipped,
	}, nil
}

func (s *statsService) DailyRPE(ctx context.Context, actor Actor, q StatsQuery) ([]stats.DailyRPE, error) {
	if !stats.IsValidPeriod(q.Period) {
		return nil, ErrInvalidPeriod
	}
	target, err := s.resolveTarget(ctx, actor, q.AthleteID)
	if err != nil {
		return nil, err
	}

	scope := stats.ResolveScope(q.Period, q.Reference, q.CustomStart, q.CustomEnd)
	subset, err := s.fetchScoped(ctx, target, scope)
	if err != nil {
		return nil, err
	}
	return stats.AggregateDailyRPE(subset), nil
}

func (s *statsService) SeasonOverview(ctx context.Context, actor Actor, athleteID primitive.ObjectID, year int) (*SeasonOverview, error) {
	target, err := s.resolveTarget(ctx, actor, athleteID)
	if err != nil {
		return nil, err
	}

	scope := stats.ResolveScope(stats.PeriodYear, time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), time.Time{}, time.Time{})
	subset, err := s.fetchScoped(ctx, target, scope)
	if err != nil {
		return nil, err
	}

	return &SeasonOverview{
		Matrix:      stats.BuildYearMatrix(subset, year),
		MonthBlocks: calendar.MonthBlocks(year),
	}, nil
}

func (s *statsService) WeekSummary(ctx context.Context, actor Actor, athleteID primitive.ObjectID, year, week int, foldCombinedRun bool) (*stats.WeekSummary, error) {
	if week < 1 || week > calendar.WeeksInYear(year) {
		return nil, ErrInvalidWeek
	}

	overview, err := s.SeasonOverview(ctx, actor, athleteID, year)
	if err != nil {
		return nil, err
	}

	summary := stats.ComposeWeekSummary(overview.Matrix, week, stats.SummaryOptions{FoldCombinedRun: foldCombinedRun})
	return &summary, nil
}

func (s *statsService) Dashboard(ctx context.Context, actor Actor) (*stats.CurrentWeekSummary, error) {
	scope := stats.ResolveScope(stats.PeriodWeek, time.Now().UTC(), time.Time{}, time.Time{})
	subset, err := s.fetchScoped(ctx, actor.ID, scope)
	if err != nil {
		return nil, err
	}

	summary := stats.ComposeCurrentWeek(subset)
	return &summary, nil
}
