// Package stats implements the training-log aggregation engine: the
// scope resolver, the session filter, the grouped folds feeding the
// charts, and the summary compositor. Everything in this package is a
// pure function of its inputs; nothing here touches storage or holds
// state between calls.
package stats

import "time"

// Period selects the kind of time window a statistics query covers.
type Period string

const (
	PeriodDay    Period = "day"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
)

// IsValidPeriod reports whether p is one of the known period kinds.
func IsValidPeriod(p Period) bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodCustom:
		return true
	}
	return false
}

// Scope is a resolved inclusive [Start, End] window. Ephemeral:
// recomputed on every query, never persisted.
type Scope struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window, bounds included.
func (s Scope) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// ResolveScope computes the concrete window for a period kind anchored
// at ref. Weeks run Monday 00:00:00.000 through Sunday 23:59:59.999,
// with Sunday counting as day 7 of its week. For PeriodCustom the
// caller-supplied bounds are used and normalized to whole days; the
// other arguments are ignored for the non-custom kinds.
func ResolveScope(p Period, ref time.Time, customStart, customEnd time.Time) Scope {
	switch p {
	case PeriodDay:
		return Scope{Start: startOfDay(ref), End: endOfDay(ref)}

	case PeriodWeek:
		weekday := int(ref.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := startOfDay(ref).AddDate(0, 0, 1-weekday)
		return Scope{Start: monday, End: endOfDay(monday.AddDate(0, 0, 6))}

	case PeriodMonth:
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		return Scope{Start: first, End: endOfDay(first.AddDate(0, 1, -1))}

	case PeriodYear:
		return Scope{
			Start: time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, ref.Location()),
			End:   endOfDay(time.Date(ref.Year(), time.December, 31, 0, 0, 0, 0, ref.Location())),
		}

	case PeriodCustom:
		return Scope{Start: startOfDay(customStart), End: endOfDay(customEnd)}
	}

	// Unknown period kinds degrade to the single reference day.
	return Scope{Start: startOfDay(ref), End: endOfDay(ref)}
}

// Direction of period navigation.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// Advance shifts the reference date by exactly one unit of the period
// kind. Custom scopes are not navigable and return ref unchanged.
func Advance(p Period, ref time.Time, dir Direction) time.Time {
	step := int(dir)
	switch p {
	case PeriodDay:
		return ref.AddDate(0, 0, step)
	case PeriodWeek:
		return ref.AddDate(0, 0, 7*step)
	case PeriodMonth:
		return ref.AddDate(0, step, 0)
	case PeriodYear:
		return ref.AddDate(step, 0, 0)
	}
	return ref
}
