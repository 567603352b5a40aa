package stats

import (
	"fmt"
	"time"
)

// FormatDuration renders a minute total the way the UI displays it:
// "0min", "45min", "2h", "1h05".
func FormatDuration(totalMinutes int) string {
	if totalMinutes == 0 {
		return "0min"
	}
	hours := totalMinutes / 60
	minutes := totalMinutes % 60

	if hours == 0 {
		return fmt.Sprintf("%dmin", minutes)
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%02d", hours, minutes)
}

// PeriodLabel renders the navigation header label for a resolved scope.
func PeriodLabel(p Period, ref time.Time, scope Scope) string {
	switch p {
	case PeriodDay:
		return ref.Format("January 2, 2006")
	case PeriodWeek:
		return fmt.Sprintf("Week of %s to %s",
			scope.Start.Format("January 2"), scope.End.Format("January 2"))
	case PeriodMonth:
		return ref.Format("January 2006")
	case PeriodYear:
		return fmt.Sprintf("Year %d", ref.Year())
	}
	return "Custom period"
}
