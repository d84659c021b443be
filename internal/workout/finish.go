package workout

import (
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// FinishDay derives the session record for a day from its live set state.
// Only id and at vary between two calls on an unchanged day.
func FinishDay(day models.Day, id string, at time.Time) models.Session {
	s := models.Session{
		ID:             id,
		Date:           at,
		DayLabel:       day.Label,
		DayDescription: day.Description,
		ExerciseCount:  len(day.Exercises),
		ExerciseLogs:   make([]models.ExerciseLog, 0, len(day.Exercises)),
	}
	for _, ex := range day.Exercises {
		s.TotalSets += ex.Sets
		log := ExerciseLog(ex)
		for _, set := range ex.SetDetails {
			if set.IsCompleted {
				s.CompletedSets++
			}
		}
		s.TotalVolume += log.Volume
		s.ExerciseLogs = append(s.ExerciseLogs, log)
	}
	return s
}

// ExerciseLog computes max load and volume (load × reps summed over rows).
// Non-numeric text contributes 0.
func ExerciseLog(ex models.Exercise) models.ExerciseLog {
	log := models.ExerciseLog{Name: ex.Name, EnglishName: ex.EnglishName}
	for _, set := range ex.SetDetails {
		load := ParseLoad(set.Weight)
		if load > log.MaxWeight {
			log.MaxWeight = load
		}
		log.Volume += load * float64(ParseReps(set.Reps))
	}
	return log
}
