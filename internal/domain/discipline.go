package domain

// Discipline identifies one of the club's training disciplines.
// The enumeration is closed: sessions carrying any other value are
// data-entry errors and are skipped by the aggregation layer.
type Discipline string

const (
	DisciplineFencing      Discipline = "fencing"
	DisciplineSwimming     Discipline = "swimming"
	DisciplineObstacle     Discipline = "obstacle"
	DisciplineRunning      Discipline = "running"
	DisciplineShooting     Discipline = "shooting"
	DisciplineLaserRun     Discipline = "laser_run"
	DisciplinePhysicalPrep Discipline = "physical_prep"
	DisciplineMedical      Discipline = "medical"
)

// AllDisciplines lists every discipline in display order. Dense
// aggregates (the season matrix, the totals table) iterate this slice
// so their output covers the full enumeration.
var AllDisciplines = []Discipline{
	DisciplineFencing,
	DisciplineSwimming,
	DisciplineObstacle,
	DisciplineRunning,
	DisciplineShooting,
	DisciplineLaserRun,
	DisciplinePhysicalPrep,
	DisciplineMedical,
}

// DisciplineProfile describes the static attributes of a discipline:
// which measurement dimensions it carries and which work-type tags are
// allowed on its sessions. This is read-only configuration; nothing in
// the application mutates it.
type DisciplineProfile struct {
	Label       string
	HasDistance bool
	HasDuration bool
	WorkTypes   []string
}

var disciplineProfiles = map[Discipline]DisciplineProfile{
	DisciplineFencing: {
		Label:       "Fencing",
		HasDuration: true,
		WorkTypes:   []string{"Bouts", "Footwork", "Lesson"},
	},
	DisciplineSwimming: {
		Label:       "Swimming",
		HasDistance: true,
		HasDuration: true,
		WorkTypes:   []string{"Technique", "Speed", "Aerobic", "Recovery"},
	},
	DisciplineObstacle: {
		Label:       "Obstacle",
		HasDuration: true,
		WorkTypes:   []string{"Technique", "Sequencing", "Test", "Endurance", "Repetition"},
	},
	DisciplineRunning: {
		Label:       "Running",
		HasDistance: true,
		HasDuration: true,
		WorkTypes:   []string{"Easy Run", "Threshold 1", "Threshold 2", "Short Intervals", "Long Intervals"},
	},
	DisciplineShooting: {
		Label:       "Shooting",
		HasDuration: true,
		WorkTypes:   []string{"Individual Session", "Group Session", "Match Play"},
	},
	DisciplineLaserRun: {
		Label:       "Laser Run",
		HasDistance: true,
		HasDuration: true,
		WorkTypes:   []string{"Easy Run", "Threshold 1", "Threshold 2", "Short Intervals", "Long Intervals"},
	},
	DisciplinePhysicalPrep: {
		Label:       "Physical Prep",
		HasDuration: true,
		WorkTypes:   []string{},
	},
	DisciplineMedical: {
		Label:       "Medical",
		HasDuration: true,
		WorkTypes:   []string{"Physio", "Psych", "Mental Prep", "Osteo"},
	},
}

// ProfileFor returns the static profile of a discipline. The second
// return value is false for values outside the closed enumeration.
func ProfileFor(d Discipline) (DisciplineProfile, bool) {
	profile, ok := disciplineProfiles[d]
	return profile, ok
}

// IsValidDiscipline reports whether d belongs to the closed enumeration.
func IsValidDiscipline(d Discipline) bool {
	_, ok := disciplineProfiles[d]
	return ok
}

// AllowsWorkType reports whether tag is part of the discipline's
// work-type vocabulary. Disciplines with an empty vocabulary (physical
// prep) accept no tags.
func AllowsWorkType(d Discipline, tag string) bool {
	profile, ok := disciplineProfiles[d]
	if !ok {
		return false
	}
	for _, t := range profile.WorkTypes {
		if t == tag {
			return true
		}
	}
	return false
}

// BaseDiscipline resolves the base discipline a combined variant rolls
// up into for display purposes. Laser Run is a specialization of
// Running; every other discipline is its own base.
func BaseDiscipline(d Discipline) Discipline {
	if d == DisciplineLaserRun {
		return DisciplineRunning
	}
	return d
}
