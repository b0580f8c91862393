package recovery_test

import (
	"testing"

	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate_Valid(t *testing.T) {
	for _, minutes := range models.TimePresets {
		a := neutral()
		a.AvailableTimeMinutes = minutes
		assert.NoError(t, recovery.Validate(a), "preset %d", minutes)
	}

	a := neutral()
	a.IsFemale = true
	a.MenstrualCyclePhase = models.CyclePhaseLuteal
	a.HasInjury = true
	a.InjuryAreas = []models.BodyArea{models.BodyAreaKnee}
	assert.NoError(t, recovery.Validate(a))
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	a := models.RecoveryAssessment{
		SleepHours:           13,
		StressLevel:          0,
		AvailableTimeMinutes: 0,
		MenstrualCyclePhase:  "winter",
		InjuryAreas:          []models.BodyArea{"spleen"},
	}
	err := recovery.Validate(a)
	require.Error(t, err)

	errs := multierr.Errors(err)
	// sleep, stress, time, unknown phase, phase without is_female, unknown area, areas without has_injury
	assert.Len(t, errs, 7)
	assert.ErrorContains(t, err, "sleep_hours")
	assert.ErrorContains(t, err, "stress_level")
	assert.ErrorContains(t, err, "available_time_minutes")
}

func TestValidate_NegativeSleep(t *testing.T) {
	a := neutral()
	a.SleepHours = -1
	assert.ErrorContains(t, recovery.Validate(a), "sleep_hours")
}

func TestNormalize_LocalizedAreas(t *testing.T) {
	a := neutral()
	a.HasInjury = true
	a.InjuryAreas = []models.BodyArea{"Ginocchio", "spalla", "spleen"}

	got := recovery.Normalize(a)
	assert.Equal(t, []models.BodyArea{models.BodyAreaKnee, models.BodyAreaShoulder, "spleen"}, got.InjuryAreas)
	// The input is not modified.
	assert.Equal(t, models.BodyArea("Ginocchio"), a.InjuryAreas[0])
	assert.Error(t, recovery.Validate(got))
}
