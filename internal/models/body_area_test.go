package models

import (
	"slices"
	"testing"
)

// TestNormalizeBodyArea_English verifies that canonical English names pass
// through unchanged, confirming the alias map covers every area.
func TestNormalizeBodyArea_English(t *testing.T) {
	for _, area := range BodyAreas {
		got, known := NormalizeBodyArea(string(area))
		if !known {
			t.Errorf("NormalizeBodyArea(%q): expected known=true", area)
		}
		if got != area {
			t.Errorf("NormalizeBodyArea(%q) = %q, want %q", area, got, area)
		}
	}
}

// TestNormalizeBodyArea_Italian verifies that Italian area names (as typed in
// the onboarding pain picker) are normalized correctly.
func TestNormalizeBodyArea_Italian(t *testing.T) {
	cases := []struct {
		input string
		want  BodyArea
	}{
		{"Spalla", BodyAreaShoulder},
		{"schiena", BodyAreaBack},
		{"Ginocchia", BodyAreaKnee},
		{"polso", BodyAreaWrist},
		{"  Caviglia ", BodyAreaAnkle},
	}
	for _, tc := range cases {
		got, known := NormalizeBodyArea(tc.input)
		if !known {
			t.Errorf("NormalizeBodyArea(%q): expected known=true", tc.input)
		}
		if got != tc.want {
			t.Errorf("NormalizeBodyArea(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// TestNormalizeBodyArea_Unknown verifies that unrecognized names are returned
// as-is with known=false, so callers can reject them.
func TestNormalizeBodyArea_Unknown(t *testing.T) {
	got, known := NormalizeBodyArea("pinky toe")
	if known {
		t.Error("expected known=false for unknown area")
	}
	if got != "pinky toe" {
		t.Errorf("expected original string returned, got %q", got)
	}
}

// TestMatchInjuryAreas verifies substring matching against the it/en
// vocabulary and the fixed output order.
func TestMatchInjuryAreas(t *testing.T) {
	cases := []struct {
		details string
		want    []BodyArea
	}{
		{"dolore al ginocchio destro", []BodyArea{BodyAreaKnee}},
		{"KNEE and Shoulder", []BodyArea{BodyAreaShoulder, BodyAreaKnee}},
		{"fastidio al dorso e al polso", []BodyArea{BodyAreaBack, BodyAreaWrist}},
		{"lower back tightness", []BodyArea{BodyAreaBack}},
		{"mal di testa", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := MatchInjuryAreas(tc.details)
		if !slices.Equal(got, tc.want) {
			t.Errorf("MatchInjuryAreas(%q) = %v, want %v", tc.details, got, tc.want)
		}
	}
}

// TestExcludedExercisesKnee verifies the knee exclusion set and that the
// returned slice does not alias the table.
func TestExcludedExercisesKnee(t *testing.T) {
	got := ExcludedExercises(BodyAreaKnee)
	want := []string{"Squat", "Leg Press", "Lunge", "Jump Squat"}
	if !slices.Equal(got, want) {
		t.Fatalf("ExcludedExercises(knee) = %v, want %v", got, want)
	}
	got[0] = "mutated"
	if ExcludedExercises(BodyAreaKnee)[0] != "Squat" {
		t.Error("ExcludedExercises returned a slice aliasing the exclusion table")
	}
}

// TestBodyAreaValid verifies enum membership.
func TestBodyAreaValid(t *testing.T) {
	if !BodyAreaHip.Valid() {
		t.Error("hip should be valid")
	}
	if BodyArea("spalla").Valid() {
		t.Error("localized names are not canonical areas")
	}
}
