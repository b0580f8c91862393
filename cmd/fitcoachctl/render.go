package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/meltforce/fitcoach/internal/models"
	"github.com/meltforce/fitcoach/internal/recovery"
	"github.com/meltforce/fitcoach/internal/workout"
)

var (
	subtext  = lipgloss.Color("#a6adc8")
	sapphire = lipgloss.Color("#74c7ec")
	green    = lipgloss.Color("#a6e3a1")
	peach    = lipgloss.Color("#fab387")
	border   = lipgloss.Color("#45475a")

	titleStyle = lipgloss.NewStyle().Foreground(sapphire).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(subtext)
	hotStyle   = lipgloss.NewStyle().Foreground(peach).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(green)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		Headers(headers...)
}

func mult(v float64) string {
	return "x" + strconv.FormatFloat(v, 'f', 2, 64)
}

func renderAdjustment(res models.AdjustmentResult, messages []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recovery adjustment"))
	b.WriteString("\n")

	t := newTable("Setting", "Value").
		Row("Mode", string(res.ExerciseMode)).
		Row("Volume", mult(res.VolumeMultiplier)).
		Row("Intensity", mult(res.IntensityMultiplier)).
		Row("Rest", mult(res.RestMultiplier))
	if len(res.SkipExercises) > 0 {
		t.Row("Skip", strings.Join(res.SkipExercises, ", "))
	}
	b.WriteString(t.String())
	b.WriteString("\n")

	rec := okStyle
	if recovery.Level(res) != recovery.RecommendNormal {
		rec = hotStyle
	}
	b.WriteString("Recommendation: " + rec.Render(res.Recommendation))
	for _, w := range res.Warnings {
		b.WriteString("\n" + hotStyle.Render("! ") + w)
	}
	for _, m := range messages {
		b.WriteString("\n" + mutedStyle.Render("- "+m))
	}
	return b.String()
}

func renderE1RM(oneRM float64, pcts []float64, working map[string]float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Estimated 1RM: %.1f kg", oneRM)))
	if len(pcts) == 0 {
		return b.String()
	}
	t := newTable("%1RM", "Working kg")
	for _, p := range pcts {
		key := strconv.FormatFloat(p, 'f', -1, 64)
		t.Row(key+"%", strconv.FormatFloat(working[key], 'f', 1, 64))
	}
	b.WriteString("\n")
	b.WriteString(t.String())
	return b.String()
}

func renderBest(sessions int, names []string, best map[string]float64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%d sessions", sessions)))
	if len(names) == 0 {
		return b.String()
	}
	t := newTable("Exercise", "Best e1RM kg")
	for _, n := range names {
		t.Row(n, strconv.FormatFloat(best[n], 'f', 1, 64))
	}
	b.WriteString("\n")
	b.WriteString(t.String())
	return b.String()
}

func renderProgram(p *models.TrainingProgram) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%s | %s | %s | %d days/week | %d min",
		p.Level, p.Goal, p.Location, p.Frequency, p.SessionDuration)))

	for i, day := range p.WeeklySplit.Days {
		b.WriteString("\n\n")
		b.WriteString(hotStyle.Render(fmt.Sprintf("Day %d: %s", i, day.Name)))
		if day.Type != models.DayStrength {
			b.WriteString(mutedStyle.Render(" (" + string(day.Type) + ")"))
		}
		if len(day.Exercises) == 0 {
			continue
		}
		t := newTable("Exercise", "Sets", "Reps", "Rest", "Load")
		for _, ex := range day.Exercises {
			load := ""
			switch {
			case ex.WeightKg > 0:
				load = strconv.FormatFloat(ex.WeightKg, 'f', 1, 64) + " kg"
			case ex.IntensityPct > 0:
				load = strconv.FormatFloat(ex.IntensityPct, 'f', 0, 64) + "%"
			}
			t.Row(ex.Name, strconv.Itoa(ex.Sets), ex.Reps, fmt.Sprintf("%ds", ex.RestSeconds), load)
		}
		b.WriteString("\n")
		b.WriteString(t.String())
	}
	return b.String()
}

func renderSession(s models.WorkoutSession, opts []workout.Resolution, history []historyEntry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Session: " + string(s.State)))
	if s.Active() {
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" (day %d, %s)", s.DayIndex, s.Date.Format(time.DateOnly))))
		if s.Adjustment != nil {
			b.WriteString(fmt.Sprintf("\nadjustment: %s, volume %s, intensity %s",
				s.Adjustment.ExerciseMode, mult(s.Adjustment.VolumeMultiplier), mult(s.Adjustment.IntensityMultiplier)))
		}
	}
	if len(opts) > 0 {
		names := make([]string, len(opts))
		for i, o := range opts {
			names[i] = string(o)
		}
		b.WriteString("\n" + hotStyle.Render("interrupted session, resolve with: "+strings.Join(names, " | ")))
	}
	if len(history) > 0 {
		t := newTable("Date", "Day", "Status")
		for _, h := range history {
			t.Row(h.Date.Format(time.DateOnly), strconv.Itoa(h.DayIndex), h.Status)
		}
		b.WriteString("\n")
		b.WriteString(t.String())
	}
	return b.String()
}
