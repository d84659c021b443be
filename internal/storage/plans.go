package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// ListPlans returns the user's plans, newest first.
func (db *DB) ListPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT plan_data FROM workout_plans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var plans []models.Plan
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning plan: %w", err)
		}
		var p models.Plan
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decoding plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// UpsertPlan stores the plan payload keyed by plan id. A plan id owned by a
// different user is left untouched.
func (db *DB) UpsertPlan(ctx context.Context, userID string, p models.Plan) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	created := p.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO workout_plans (id, user_id, plan_data, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET plan_data = EXCLUDED.plan_data
		WHERE workout_plans.user_id = EXCLUDED.user_id
	`, p.ID, userID, raw, created)
	if err != nil {
		return fmt.Errorf("upserting plan: %w", err)
	}
	return nil
}

// DeletePlan removes one of the user's plans.
func (db *DB) DeletePlan(ctx context.Context, userID, planID string) error {
	_, err := db.Pool.Exec(ctx,
		`DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`, planID, userID)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}
