package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// DefaultProfileName is used when a stored profile has no name.
const DefaultProfileName = "Atleta"

// profileRow mirrors the profiles table; every column except id is nullable.
type profileRow struct {
	ID           string
	Name         *string
	Email        *string
	BirthDate    *string
	Avatar       *string
	Level        *int
	XP           *int
	Metrics      []byte
	Preferences  []byte
	ActivePlanID *string
	Favorites    []string
}

// GetProfile returns the stored profile, or nil when none exists.
func (db *DB) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var r profileRow
	err := db.Pool.QueryRow(ctx, `
		SELECT id, name, email, birth_date, avatar, level, xp, metrics, preferences,
		       active_plan_id, favorite_exercise_ids
		FROM profiles WHERE id = $1
	`, id).Scan(&r.ID, &r.Name, &r.Email, &r.BirthDate, &r.Avatar, &r.Level, &r.XP,
		&r.Metrics, &r.Preferences, &r.ActivePlanID, &r.Favorites)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	p, err := r.profile()
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// profile fills defaults for missing columns.
func (r profileRow) profile() (models.Profile, error) {
	p := models.Profile{
		ID:                  r.ID,
		Name:                deref(r.Name),
		Email:               deref(r.Email),
		BirthDate:           deref(r.BirthDate),
		Avatar:              deref(r.Avatar),
		Level:               1,
		ActivePlanID:        deref(r.ActivePlanID),
		Metrics:             models.DefaultMetrics(),
		FavoriteExerciseIDs: r.Favorites,
	}
	if p.Name == "" {
		p.Name = DefaultProfileName
	}
	if r.Level != nil && *r.Level > 0 {
		p.Level = *r.Level
	}
	if r.XP != nil {
		p.XP = *r.XP
	}
	if p.FavoriteExerciseIDs == nil {
		p.FavoriteExerciseIDs = []string{}
	}
	if len(r.Metrics) > 0 && string(r.Metrics) != "null" {
		var m models.BodyMetrics
		if err := json.Unmarshal(r.Metrics, &m); err != nil {
			return p, fmt.Errorf("decoding metrics: %w", err)
		}
		p.Metrics = m
	}
	if len(r.Preferences) > 0 && string(r.Preferences) != "null" {
		var prefs models.Preferences
		if err := json.Unmarshal(r.Preferences, &prefs); err != nil {
			return p, fmt.Errorf("decoding preferences: %w", err)
		}
		p.Preferences = &prefs
	}
	return p, nil
}

// UpsertProfile inserts or replaces the profile row.
func (db *DB) UpsertProfile(ctx context.Context, p models.Profile) error {
	metrics, err := json.Marshal(p.Metrics)
	if err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	var prefs []byte
	if p.Preferences != nil {
		if prefs, err = json.Marshal(p.Preferences); err != nil {
			return fmt.Errorf("encoding preferences: %w", err)
		}
	}
	favorites := p.FavoriteExerciseIDs
	if favorites == nil {
		favorites = []string{}
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO profiles (id, name, email, birth_date, avatar, level, xp, metrics, preferences,
		                      active_plan_id, favorite_exercise_ids, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			birth_date = EXCLUDED.birth_date,
			avatar = EXCLUDED.avatar,
			level = EXCLUDED.level,
			xp = EXCLUDED.xp,
			metrics = EXCLUDED.metrics,
			preferences = EXCLUDED.preferences,
			active_plan_id = EXCLUDED.active_plan_id,
			favorite_exercise_ids = EXCLUDED.favorite_exercise_ids,
			updated_at = NOW()
	`, p.ID, p.Name, p.Email, nullable(p.BirthDate), nullable(p.Avatar), p.Level, p.XP,
		metrics, prefs, nullable(p.ActivePlanID), favorites)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
