package models

import (
	"slices"
	"strings"
)

// BodyArea is a structured injury or pain location.
type BodyArea string

// Canonical body areas.
const (
	BodyAreaShoulder BodyArea = "shoulder"
	BodyAreaBack     BodyArea = "back"
	BodyAreaKnee     BodyArea = "knee"
	BodyAreaWrist    BodyArea = "wrist"
	BodyAreaHip      BodyArea = "hip"
	BodyAreaAnkle    BodyArea = "ankle"
	BodyAreaElbow    BodyArea = "elbow"
	BodyAreaNeck     BodyArea = "neck"
)

// BodyAreas lists every known area in a stable order.
var BodyAreas = []BodyArea{
	BodyAreaShoulder,
	BodyAreaBack,
	BodyAreaKnee,
	BodyAreaWrist,
	BodyAreaHip,
	BodyAreaAnkle,
	BodyAreaElbow,
	BodyAreaNeck,
}

// injuryKeywords maps lowercased Italian and English words found in free-text
// injury notes to a body area. Matching is by substring, so the order of
// keywordAreas decides the order of matched areas.
var injuryKeywords = map[BodyArea][]string{
	BodyAreaShoulder: {"spalla", "shoulder"},
	BodyAreaBack:     {"schiena", "back", "dorso"},
	BodyAreaKnee:     {"ginocchio", "knee"},
	BodyAreaWrist:    {"polso", "wrist"},
}

var keywordAreas = []BodyArea{BodyAreaShoulder, BodyAreaBack, BodyAreaKnee, BodyAreaWrist}

// exclusions lists exercises that load an injured area. Names must match the
// exercise catalog exactly.
var exclusions = map[BodyArea][]string{
	BodyAreaShoulder: {"Overhead Press", "Military Press", "Lateral Raise", "Upright Row", "Dips"},
	BodyAreaBack:     {"Deadlift", "Barbell Row", "Good Morning", "Back Extension"},
	BodyAreaKnee:     {"Squat", "Leg Press", "Lunge", "Jump Squat"},
	BodyAreaWrist:    {"Push-up", "Front Squat", "Wrist Curl"},
	BodyAreaHip:      {"Hip Thrust", "Sumo Deadlift", "Bulgarian Split Squat"},
	BodyAreaAnkle:    {"Jump Squat", "Box Jump", "Calf Raise"},
	BodyAreaElbow:    {"Skull Crusher", "Triceps Dip", "Chin-up"},
	BodyAreaNeck:     {"Shrug", "Upright Row"},
}

// bodyAreaAliases maps localized area names to canonical areas.
var bodyAreaAliases = map[string]BodyArea{
	// English
	"shoulder": BodyAreaShoulder,
	"back":     BodyAreaBack,
	"knee":     BodyAreaKnee,
	"wrist":    BodyAreaWrist,
	"hip":      BodyAreaHip,
	"ankle":    BodyAreaAnkle,
	"elbow":    BodyAreaElbow,
	"neck":     BodyAreaNeck,

	// English plurals and variants
	"shoulders":  BodyAreaShoulder,
	"lower back": BodyAreaBack,
	"knees":      BodyAreaKnee,
	"wrists":     BodyAreaWrist,

	// Italian
	"spalla":    BodyAreaShoulder,
	"spalle":    BodyAreaShoulder,
	"schiena":   BodyAreaBack,
	"dorso":     BodyAreaBack,
	"lombare":   BodyAreaBack,
	"ginocchio": BodyAreaKnee,
	"ginocchia": BodyAreaKnee,
	"polso":     BodyAreaWrist,
	"polsi":     BodyAreaWrist,
	"anca":      BodyAreaHip,
	"caviglia":  BodyAreaAnkle,
	"gomito":    BodyAreaElbow,
	"collo":     BodyAreaNeck,
}

// NormalizeBodyArea maps a possibly-localized area name to its canonical
// value. Returns the canonical area and true if recognized, or the input
// unchanged and false if unknown.
func NormalizeBodyArea(raw string) (BodyArea, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if area, ok := bodyAreaAliases[lower]; ok {
		return area, true
	}
	return BodyArea(raw), false
}

// Valid reports whether a is a canonical body area.
func (a BodyArea) Valid() bool {
	return slices.Contains(BodyAreas, a)
}

// MatchInjuryAreas scans free-text injury notes for the fixed keyword
// vocabulary and returns the matched areas in shoulder, back, knee, wrist order.
func MatchInjuryAreas(details string) []BodyArea {
	lower := strings.ToLower(details)
	var areas []BodyArea
	for _, area := range keywordAreas {
		for _, kw := range injuryKeywords[area] {
			if strings.Contains(lower, kw) {
				areas = append(areas, area)
				break
			}
		}
	}
	return areas
}

// ExcludedExercises returns the exercises contraindicated for an area.
// The returned slice is a copy.
func ExcludedExercises(area BodyArea) []string {
	return slices.Clone(exclusions[area])
}
