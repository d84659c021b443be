// Package workout holds the pure plan and session derivations. Every function
// returns a new Plan value and leaves its input untouched.
package workout

import (
	"fmt"
	"net/url"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// Defaults applied to exercises added from the library.
const (
	DefaultSets = 3
	DefaultReps = "12"
	DefaultRest = 60
)

// Baseline loads chosen by the gender rule.
const (
	FeminineBaseline = "5kg"
	DefaultBaseline  = "10kg"
)

// BaselineLoad returns the starting load for a new exercise.
func BaselineLoad(prefs *models.Preferences) string {
	if prefs.Feminine() {
		return FeminineBaseline
	}
	return DefaultBaseline
}

// ClampDay bounds a day index to the plan's days. It returns -1 when the plan
// has no days.
func ClampDay(plan models.Plan, idx int) int {
	if len(plan.Days) == 0 {
		return -1
	}
	if idx < 0 {
		return 0
	}
	if idx > len(plan.Days)-1 {
		return len(plan.Days) - 1
	}
	return idx
}

// NewEmptyPlan builds a manual plan with a single empty day.
func NewEmptyPlan(n int, id string, at time.Time) models.Plan {
	return models.Plan{
		ID:        id,
		Name:      fmt.Sprintf("Treino Manual %d", n),
		CreatedAt: at,
		Days:      []models.Day{{Label: "Treino A", Description: "Personalize seu treino", Exercises: []models.Exercise{}}},
	}
}

// NewExerciseFromLibrary turns a catalog entry into a trackable exercise with
// DefaultSets rows at the baseline load.
func NewExerciseFromLibrary(lib models.LibraryExercise, prefs *models.Preferences, newID func() string) models.Exercise {
	base := BaselineLoad(prefs)
	sets := make([]models.SetDetail, DefaultSets)
	for i := range sets {
		sets[i] = models.SetDetail{ID: newID(), Weight: base, Reps: DefaultReps}
	}
	img := lib.ImageURL
	if img == "" {
		img = "https://loremflickr.com/800/600/gym," + url.PathEscape(lib.Name) + "/all"
	}
	return models.Exercise{
		ID:            newID(),
		Name:          lib.Name,
		EnglishName:   lib.EnglishName,
		MuscleGroup:   lib.MuscleGroup,
		Sets:          DefaultSets,
		Reps:          DefaultReps,
		Rest:          DefaultRest,
		InitialWeight: base,
		ImageURL:      img,
		ExecutionTip:  lib.ExecutionTip,
		SetDetails:    sets,
	}
}

// AddExercise appends ex to the day at ClampDay(plan, day). A plan without
// days gets a default day first.
func AddExercise(plan models.Plan, ex models.Exercise, day int) models.Plan {
	out := plan.Clone()
	if len(out.Days) == 0 {
		out.Days = append(out.Days, models.Day{Label: "Treino A", Description: "Personalizado", Exercises: []models.Exercise{}})
	}
	idx := ClampDay(out, day)
	out.Days[idx].Exercises = append(out.Days[idx].Exercises, ex.Clone())
	return out
}

// UpdateExercise applies fn to a copy of the exercise inside the given day.
func UpdateExercise(plan models.Plan, day int, exerciseID string, fn func(*models.Exercise)) (models.Plan, bool) {
	idx := ClampDay(plan, day)
	if idx < 0 {
		return plan, false
	}
	for i, ex := range plan.Days[idx].Exercises {
		if ex.ID != exerciseID {
			continue
		}
		out := plan.Clone()
		fn(&out.Days[idx].Exercises[i])
		return out, true
	}
	return plan, false
}

// RemoveExercise drops an exercise from the given day.
func RemoveExercise(plan models.Plan, day int, exerciseID string) (models.Plan, bool) {
	idx := ClampDay(plan, day)
	if idx < 0 {
		return plan, false
	}
	out := plan.Clone()
	kept := out.Days[idx].Exercises[:0]
	found := false
	for _, ex := range out.Days[idx].Exercises {
		if ex.ID == exerciseID {
			found = true
			continue
		}
		kept = append(kept, ex)
	}
	if !found {
		return plan, false
	}
	out.Days[idx].Exercises = kept
	return out, true
}

// ReplaceExercise substitutes repl for the exercise with the given id,
// keeping its position in the day.
func ReplaceExercise(plan models.Plan, day int, exerciseID string, repl models.Exercise) (models.Plan, bool) {
	return UpdateExercise(plan, day, exerciseID, func(ex *models.Exercise) {
		*ex = repl.Clone()
	})
}

// SetRest changes an exercise's rest seconds.
func SetRest(plan models.Plan, day int, exerciseID string, seconds int) (models.Plan, bool) {
	if seconds < 0 {
		seconds = 0
	}
	return UpdateExercise(plan, day, exerciseID, func(ex *models.Exercise) {
		ex.Rest = seconds
	})
}

// Toggle describes the outcome of ToggleSet.
type Toggle struct {
	// Completed is the new state of the set.
	Completed bool
	// Rest is the exercise's rest seconds, with DefaultRest when unset.
	Rest int
}

// StartsRest reports whether the toggle was the incomplete to complete edge.
func (t Toggle) StartsRest() bool { return t.Completed }

// ToggleSet flips one set's completed flag.
func ToggleSet(plan models.Plan, day int, exerciseID, setID string) (models.Plan, Toggle, bool) {
	var res Toggle
	found := false
	out, ok := UpdateExercise(plan, day, exerciseID, func(ex *models.Exercise) {
		for i := range ex.SetDetails {
			if ex.SetDetails[i].ID != setID {
				continue
			}
			ex.SetDetails[i].IsCompleted = !ex.SetDetails[i].IsCompleted
			res.Completed = ex.SetDetails[i].IsCompleted
			res.Rest = ex.Rest
			if res.Rest <= 0 {
				res.Rest = DefaultRest
			}
			found = true
			return
		}
	})
	if !ok || !found {
		return plan, Toggle{}, false
	}
	return out, res, true
}

// UpdateSet stores new raw load and/or reps text for a set. A load edit also
// becomes the exercise's baseline load.
func UpdateSet(plan models.Plan, day int, exerciseID, setID string, weight, reps *string) (models.Plan, bool) {
	found := false
	out, ok := UpdateExercise(plan, day, exerciseID, func(ex *models.Exercise) {
		for i := range ex.SetDetails {
			if ex.SetDetails[i].ID != setID {
				continue
			}
			if weight != nil {
				ex.SetDetails[i].Weight = *weight
				if *weight != "" {
					ex.InitialWeight = *weight
				}
			}
			if reps != nil {
				ex.SetDetails[i].Reps = *reps
			}
			found = true
			return
		}
	})
	if !ok || !found {
		return plan, false
	}
	return out, true
}

// FindExercise returns the exercise with the given id in the given day.
func FindExercise(plan models.Plan, day int, exerciseID string) (models.Exercise, bool) {
	idx := ClampDay(plan, day)
	if idx < 0 {
		return models.Exercise{}, false
	}
	for _, ex := range plan.Days[idx].Exercises {
		if ex.ID == exerciseID {
			return ex, true
		}
	}
	return models.Exercise{}, false
}
