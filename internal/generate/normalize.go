package generate

import (
	"math"
	"net/url"
	"strings"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// Fallbacks for fields a generator leaves out.
const (
	DefaultSets = 3
	DefaultReps = "12"
	DefaultRest = 60
)

// Normalizer turns raw generator output into plan entities. Given the same
// id sequence it is deterministic.
type Normalizer struct {
	NewID func() string
}

// Exercise enriches one raw exercise.
func (n Normalizer) Exercise(raw RawExercise, prefs *models.Preferences) models.Exercise {
	base := strings.TrimSpace(raw.InitialWeight)
	if base == "" {
		base = "10kg"
		if prefs.Feminine() {
			base = "5kg"
		}
	}

	sets := int(math.Round(raw.Sets))
	if sets <= 0 {
		sets = DefaultSets
	}
	rest := int(math.Round(raw.Rest))
	if rest <= 0 {
		rest = DefaultRest
	}
	reps := strings.TrimSpace(raw.Reps)
	if reps == "" {
		reps = DefaultReps
	}
	rowReps := strings.TrimSpace(strings.SplitN(reps, "-", 2)[0])
	if rowReps == "" {
		rowReps = DefaultReps
	}

	rows := make([]models.SetDetail, sets)
	for i := range rows {
		rows[i] = models.SetDetail{ID: n.NewID(), Weight: base, Reps: rowReps}
	}

	return models.Exercise{
		ID:            n.NewID(),
		Name:          raw.Name,
		EnglishName:   raw.EnglishName,
		MuscleGroup:   raw.MuscleGroup,
		Sets:          sets,
		Reps:          reps,
		Rest:          rest,
		InitialWeight: base,
		ImageURL:      ImageOrFallback(raw.ImageURL, raw.EnglishName, raw.Name),
		ExecutionTip:  raw.ExecutionTip,
		SetDetails:    rows,
	}
}

// Day enriches every exercise of a raw day, warmup included.
func (n Normalizer) Day(raw RawDay, prefs *models.Preferences) models.Day {
	d := models.Day{
		Label:       raw.Label,
		Description: raw.Description,
		Exercises:   make([]models.Exercise, 0, len(raw.Exercises)),
	}
	for _, ex := range raw.Warmup {
		d.Warmup = append(d.Warmup, n.Exercise(ex, prefs))
	}
	for _, ex := range raw.Exercises {
		d.Exercises = append(d.Exercises, n.Exercise(ex, prefs))
	}
	return d
}

// Days enriches a generated plan body.
func (n Normalizer) Days(raw []RawDay, prefs *models.Preferences) []models.Day {
	out := make([]models.Day, 0, len(raw))
	for _, d := range raw {
		out = append(out, n.Day(d, prefs))
	}
	return out
}

// ImageOrFallback keeps an http(s) image reference and otherwise builds a
// keyword placeholder from the English name, or the name.
func ImageOrFallback(ref, englishName, name string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	subject := englishName
	if subject == "" {
		subject = name
	}
	return "https://loremflickr.com/800/600/" + url.PathEscape(subject+",fitness,gym") + "/all"
}
