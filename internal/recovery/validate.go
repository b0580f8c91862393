package recovery

import (
	"fmt"

	"github.com/meltforce/fitcoach/internal/models"
	"go.uber.org/multierr"
)

// Input bounds for a screening.
const (
	MaxSleepHours    = 12.0
	MinStressLevel   = 1
	MaxStressLevel   = 10
	MinAvailableTime = 1
	MaxAvailableTime = 240
)

// Validate rejects out-of-range screening input. All violations are reported
// together; use multierr.Errors to split them.
func Validate(a models.RecoveryAssessment) error {
	var err error
	if a.SleepHours < 0 || a.SleepHours > MaxSleepHours {
		err = multierr.Append(err, fmt.Errorf("sleep_hours must be between 0 and %.0f, got %.1f", MaxSleepHours, a.SleepHours))
	}
	if a.StressLevel < MinStressLevel || a.StressLevel > MaxStressLevel {
		err = multierr.Append(err, fmt.Errorf("stress_level must be between %d and %d, got %d", MinStressLevel, MaxStressLevel, a.StressLevel))
	}
	if a.AvailableTimeMinutes < MinAvailableTime || a.AvailableTimeMinutes > MaxAvailableTime {
		err = multierr.Append(err, fmt.Errorf("available_time_minutes must be between %d and %d, got %d", MinAvailableTime, MaxAvailableTime, a.AvailableTimeMinutes))
	}
	if !a.MenstrualCyclePhase.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown menstrual_cycle_phase %q", a.MenstrualCyclePhase))
	}
	if a.MenstrualCyclePhase != "" && !a.IsFemale {
		err = multierr.Append(err, fmt.Errorf("menstrual_cycle_phase requires is_female"))
	}
	for _, area := range a.InjuryAreas {
		if !area.Valid() {
			err = multierr.Append(err, fmt.Errorf("unknown injury area %q", area))
		}
	}
	if len(a.InjuryAreas) > 0 && !a.HasInjury {
		err = multierr.Append(err, fmt.Errorf("injury_areas requires has_injury"))
	}
	return err
}

// Normalize maps localized injury area names to canonical areas in place of
// the originals. Unknown names are kept so Validate can report them.
func Normalize(a models.RecoveryAssessment) models.RecoveryAssessment {
	if len(a.InjuryAreas) == 0 {
		return a
	}
	areas := make([]models.BodyArea, len(a.InjuryAreas))
	for i, raw := range a.InjuryAreas {
		areas[i], _ = models.NormalizeBodyArea(string(raw))
	}
	a.InjuryAreas = areas
	return a
}
