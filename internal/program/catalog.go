package program

import "github.com/meltforce/fitcoach/internal/models"

// dayTemplate is a kind of strength day within a split.
type dayTemplate string

const (
	dayFullBody dayTemplate = "Full Body"
	dayUpper    dayTemplate = "Upper"
	dayLower    dayTemplate = "Lower"
	dayPush     dayTemplate = "Push"
	dayPull     dayTemplate = "Pull"
	dayLegs     dayTemplate = "Legs"
)

type catalogEntry struct {
	Name     string
	Compound bool
}

func compound(name string) catalogEntry  { return catalogEntry{Name: name, Compound: true} }
func accessory(name string) catalogEntry { return catalogEntry{Name: name} }

// catalog lists the exercises of each day template per location, compound
// lifts first. Names match the exclusion table in models.
var catalog = map[models.Location]map[dayTemplate][]catalogEntry{
	models.LocationGym: {
		dayFullBody: {
			compound("Squat"), compound("Bench Press"), compound("Barbell Row"),
			compound("Romanian Deadlift"), compound("Overhead Press"),
			accessory("Lat Pulldown"), accessory("Leg Curl"), accessory("Plank"),
		},
		dayUpper: {
			compound("Bench Press"), compound("Barbell Row"), compound("Overhead Press"),
			accessory("Lat Pulldown"), accessory("Incline Dumbbell Press"), accessory("Lateral Raise"),
			accessory("Biceps Curl"), accessory("Triceps Pushdown"),
		},
		dayLower: {
			compound("Squat"), compound("Romanian Deadlift"), compound("Leg Press"),
			accessory("Lunge"), accessory("Leg Curl"), accessory("Calf Raise"), accessory("Plank"),
		},
		dayPush: {
			compound("Bench Press"), compound("Overhead Press"), accessory("Incline Dumbbell Press"),
			accessory("Dips"), accessory("Lateral Raise"), accessory("Triceps Pushdown"),
		},
		dayPull: {
			compound("Deadlift"), compound("Barbell Row"), accessory("Lat Pulldown"),
			accessory("Seated Cable Row"), accessory("Face Pull"), accessory("Biceps Curl"),
		},
		dayLegs: {
			compound("Squat"), compound("Romanian Deadlift"), compound("Leg Press"),
			accessory("Bulgarian Split Squat"), accessory("Leg Curl"), accessory("Calf Raise"),
		},
	},
	models.LocationHome: {
		dayFullBody: {
			compound("Goblet Squat"), compound("Push-up"), compound("Dumbbell Row"),
			accessory("Glute Bridge"), accessory("Pike Push-up"), accessory("Lunge"), accessory("Plank"),
		},
		dayUpper: {
			compound("Push-up"), compound("Dumbbell Row"), accessory("Pike Push-up"),
			accessory("Dumbbell Floor Press"), accessory("Band Pull-apart"), accessory("Biceps Curl"),
		},
		dayLower: {
			compound("Goblet Squat"), accessory("Lunge"), accessory("Glute Bridge"),
			accessory("Single-leg Romanian Deadlift"), accessory("Calf Raise"), accessory("Plank"),
		},
		dayPush: {
			compound("Push-up"), accessory("Pike Push-up"), accessory("Dumbbell Floor Press"),
			accessory("Lateral Raise"), accessory("Bench Dip"),
		},
		dayPull: {
			compound("Dumbbell Row"), accessory("Inverted Row"), accessory("Band Pull-apart"),
			accessory("Biceps Curl"), accessory("Superman"),
		},
		dayLegs: {
			compound("Goblet Squat"), accessory("Lunge"), accessory("Bulgarian Split Squat"),
			accessory("Glute Bridge"), accessory("Calf Raise"), accessory("Jump Squat"),
		},
	},
}

// split is a named rotation of day templates.
type split struct {
	Name string
	Days []dayTemplate
}

var (
	splitFullBody   = split{Name: "Full Body", Days: []dayTemplate{dayFullBody}}
	splitUpperLower = split{Name: "Upper/Lower", Days: []dayTemplate{dayUpper, dayLower}}
	splitPPL        = split{Name: "Push/Pull/Legs", Days: []dayTemplate{dayPush, dayPull, dayLegs}}
)

func splitFor(frequency int) split {
	switch {
	case frequency <= 2:
		return splitFullBody
	case frequency <= 4:
		return splitUpperLower
	default:
		return splitPPL
	}
}

// prescription is the set/rep scheme of a compound lift for a goal.
type prescription struct {
	Sets         int
	Reps         string
	AccessoryRep string
	RestSeconds  int
	IntensityPct float64
}

var prescriptions = map[models.Goal]prescription{
	models.GoalStrength:    {Sets: 5, Reps: "3-5", AccessoryRep: "8-10", RestSeconds: 180, IntensityPct: 85},
	models.GoalHypertrophy: {Sets: 4, Reps: "8-12", AccessoryRep: "10-15", RestSeconds: 90, IntensityPct: 70},
	models.GoalFatLoss:     {Sets: 3, Reps: "12-15", AccessoryRep: "15-20", RestSeconds: 45, IntensityPct: 60},
	models.GoalEndurance:   {Sets: 3, Reps: "15-20", AccessoryRep: "15-20", RestSeconds: 45, IntensityPct: 55},
	models.GoalGeneral:     {Sets: 3, Reps: "8-12", AccessoryRep: "10-12", RestSeconds: 75, IntensityPct: 65},
}

// runRotation names the running sessions in weekly order.
var runRotation = []string{"Easy Run", "Intervals", "Long Run"}

var runMinutes = map[models.Level]int{
	models.LevelBeginner:     20,
	models.LevelIntermediate: 30,
	models.LevelAdvanced:     40,
}
