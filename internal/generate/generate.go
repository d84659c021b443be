// Package generate produces workout content from an external text generator
// and normalizes it into trackable plan entities.
package generate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// RawExercise is an exercise as returned by a generator, before ids, set rows
// and fallbacks are filled in. Numbers are floats because generators may
// emit 3.0 for 3.
type RawExercise struct {
	Name          string  `json:"name"`
	EnglishName   string  `json:"englishName"`
	MuscleGroup   string  `json:"muscleGroup"`
	Sets          float64 `json:"sets"`
	Reps          string  `json:"reps"`
	Rest          float64 `json:"rest"`
	InitialWeight string  `json:"initialWeight"`
	ImageURL      string  `json:"imageUrl"`
	ExecutionTip  string  `json:"executionTip"`
}

// RawDay is a generated training day.
type RawDay struct {
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Warmup      []RawExercise `json:"warmup,omitempty"`
	Exercises   []RawExercise `json:"exercises"`
}

// Client is the request/response contract of a content generator.
type Client interface {
	Plan(ctx context.Context, prefs models.Preferences) ([]RawDay, error)
	Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]RawExercise, error)
}

// Stages at which generation can fail.
const (
	StageRequest  = "request"
	StageStatus   = "status"
	StageDecode   = "decode"
	StageEmpty    = "empty"
	StageDisabled = "disabled"
)

// Error is a generation failure. No partial content accompanies it.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation failed at %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	// ErrNoAlternatives is returned when the generator offers no substitutes.
	ErrNoAlternatives = errors.New("no alternative exercises generated")
	// ErrDisabled is returned by the Disabled generator.
	ErrDisabled = errors.New("content generator disabled")
)

// IsFailure reports whether err is a generation failure.
func IsFailure(err error) bool {
	var ge *Error
	return errors.As(err, &ge)
}

func asFailure(stage string, err error) error {
	if IsFailure(err) {
		return err
	}
	return &Error{Stage: stage, Err: err}
}

// Disabled is a Client for installs without a generator.
type Disabled struct{}

func (Disabled) Plan(context.Context, models.Preferences) ([]RawDay, error) {
	return nil, &Error{Stage: StageDisabled, Err: ErrDisabled}
}

func (Disabled) Alternatives(context.Context, models.Exercise, models.Preferences) ([]RawExercise, error) {
	return nil, &Error{Stage: StageDisabled, Err: ErrDisabled}
}
