// Package strength holds one-rep-max estimation and baseline inference.
package strength

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/meltforce/fitcoach/internal/models"
)

// MaxEstimationReps caps the reps used by Estimate1RM. Estimates from longer
// sets are too noisy to be useful.
const MaxEstimationReps = 12

// Estimate1RM estimates a one-rep max with the Epley formula
// weight * (1 + reps/30). A single rep returns the weight unchanged.
func Estimate1RM(weight float64, reps int) float64 {
	if weight <= 0 || reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	reps = min(reps, MaxEstimationReps)
	return weight * (1 + float64(reps)/30)
}

// WorkingWeight returns the load for a percentage of a one-rep max, rounded to
// the nearest increment (2.5 kg for plates).
func WorkingWeight(oneRM, intensityPct, increment float64) float64 {
	if oneRM <= 0 || intensityPct <= 0 || increment <= 0 {
		return 0
	}
	raw := oneRM * intensityPct / 100
	return math.Round(raw/increment) * increment
}

// ProgressPoint is the best estimate for one exercise on one day.
type ProgressPoint struct {
	Date      string  `json:"date"`
	E1RM      float64 `json:"e1rm_kg"`
	WeightKg  float64 `json:"weight_kg"`
	Reps      int     `json:"reps"`
	TotalSets int     `json:"total_sets"`
}

// Progression returns the best e1RM per day for an exercise across completed
// workout logs, oldest first.
func Progression(logs []models.WorkoutLog, exercise string) []ProgressPoint {
	byDate := map[string]*ProgressPoint{}
	for _, l := range logs {
		if l.Status != models.WorkoutCompleted {
			continue
		}
		date := day(l.CompletedAt)
		for _, set := range l.Exercises {
			if set.ExerciseName != exercise {
				continue
			}
			p, ok := byDate[date]
			if !ok {
				p = &ProgressPoint{Date: date}
				byDate[date] = p
			}
			p.TotalSets++
			if e := Estimate1RM(set.WeightKg, set.Reps); e > p.E1RM {
				p.E1RM = math.Round(e*10) / 10
				p.WeightKg = set.WeightKg
				p.Reps = set.Reps
			}
		}
	}

	points := make([]ProgressPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

// BestEstimates returns the best e1RM per exercise across logs.
func BestEstimates(logs []models.WorkoutLog) map[string]float64 {
	best := map[string]float64{}
	for _, l := range logs {
		if l.Status != models.WorkoutCompleted {
			continue
		}
		for _, set := range l.Exercises {
			if e := Estimate1RM(set.WeightKg, set.Reps); e > best[set.ExerciseName] {
				best[set.ExerciseName] = e
			}
		}
	}
	return best
}

// ExerciseNames lists the distinct logged exercise names, sorted.
func ExerciseNames(logs []models.WorkoutLog) []string {
	var names []string
	for _, l := range logs {
		for _, set := range l.Exercises {
			if !slices.Contains(names, set.ExerciseName) {
				names = append(names, set.ExerciseName)
			}
		}
	}
	slices.Sort(names)
	return names
}

func day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
