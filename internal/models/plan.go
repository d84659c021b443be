package models

import "time"

// SetDetail is one tracked row of an exercise. Weight and Reps keep the raw
// text the user typed.
type SetDetail struct {
	ID          string `json:"id"`
	Weight      string `json:"weight"`
	Reps        string `json:"reps"`
	IsCompleted bool   `json:"isCompleted"`
}

// Exercise is a movement inside a Day. Sets is the target count; SetDetails
// holds the tracked rows and may differ in length.
type Exercise struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	EnglishName   string      `json:"englishName"`
	MuscleGroup   string      `json:"muscleGroup"`
	Sets          int         `json:"sets"`
	Reps          string      `json:"reps"`
	Rest          int         `json:"rest"`
	InitialWeight string      `json:"initialWeight"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	ExecutionTip  string      `json:"executionTip"`
	SetDetails    []SetDetail `json:"setDetails"`
}

// Day is one training session template.
type Day struct {
	Label       string     `json:"label"`
	Description string     `json:"description"`
	Warmup      []Exercise `json:"warmup,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

// Plan is a multi-day workout program.
type Plan struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsAI      bool      `json:"isAI"`
	CreatedAt time.Time `json:"createdAt"`
	Days      []Day     `json:"days"`
}

// ActivePlan resolves the profile's active plan against the collection.
// A missing or stale reference falls back to the first plan; nil when the
// collection is empty.
func ActivePlan(plans []Plan, activePlanID string) *Plan {
	if len(plans) == 0 {
		return nil
	}
	for i := range plans {
		if plans[i].ID == activePlanID {
			return &plans[i]
		}
	}
	return &plans[0]
}

// Clone returns a deep copy so callers can mutate without touching shared state.
func (p Plan) Clone() Plan {
	out := p
	out.Days = make([]Day, len(p.Days))
	for i, d := range p.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := d
	out.Exercises = cloneExercises(d.Exercises)
	if d.Warmup != nil {
		out.Warmup = cloneExercises(d.Warmup)
	}
	return out
}

// Clone returns a deep copy of the exercise.
func (e Exercise) Clone() Exercise {
	out := e
	out.SetDetails = make([]SetDetail, len(e.SetDetails))
	copy(out.SetDetails, e.SetDetails)
	return out
}

func cloneExercises(in []Exercise) []Exercise {
	out := make([]Exercise, len(in))
	for i, e := range in {
		out[i] = e.Clone()
	}
	return out
}
