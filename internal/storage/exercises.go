package storage

import (
	"context"
	"fmt"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// ListExercises returns the shared catalog ordered by name.
func (db *DB) ListExercises(ctx context.Context) ([]models.LibraryExercise, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, COALESCE(english_name, ''), COALESCE(muscle_group, ''),
		       COALESCE(equipment, ''), COALESCE(difficulty, ''),
		       COALESCE(image_url, ''), COALESCE(execution_tip, '')
		FROM exercises
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var out []models.LibraryExercise
	for rows.Next() {
		var e models.LibraryExercise
		if err := rows.Scan(&e.ID, &e.Name, &e.EnglishName, &e.MuscleGroup,
			&e.Equipment, &e.Difficulty, &e.ImageURL, &e.ExecutionTip); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
