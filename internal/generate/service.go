package generate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// MaxAlternatives caps the substitutes offered for one exercise.
const MaxAlternatives = 4

// Service composes a Client with the Normalizer.
type Service struct {
	client Client
	norm   Normalizer
	now    func() time.Time
	log    *slog.Logger
}

// NewService builds a Service with fresh uuid ids.
func NewService(client Client, log *slog.Logger) *Service {
	return &Service{
		client: client,
		norm:   Normalizer{NewID: models.NewID},
		now:    models.Timestamp,
		log:    log,
	}
}

// GeneratePlan asks the generator for a plan shaped by prefs.
func (s *Service) GeneratePlan(ctx context.Context, prefs models.Preferences) (models.Plan, error) {
	start := s.now()
	raw, err := s.client.Plan(ctx, prefs)
	if err != nil {
		s.log.Error("plan generation failed", "goal", prefs.Goal, "error", err)
		return models.Plan{}, asFailure(StageRequest, err)
	}
	if len(raw) == 0 {
		return models.Plan{}, &Error{Stage: StageEmpty, Err: errors.New("plan has no days")}
	}
	plan := models.Plan{
		ID:        s.norm.NewID(),
		Name:      "Treino IA - " + string(prefs.Goal),
		IsAI:      true,
		CreatedAt: s.now(),
		Days:      s.norm.Days(raw, &prefs),
	}
	s.log.Info("plan generated", "days", len(plan.Days), "duration", s.now().Sub(start))
	return plan, nil
}

// Alternatives returns up to MaxAlternatives substitutes for ex.
func (s *Service) Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]models.Exercise, error) {
	raw, err := s.client.Alternatives(ctx, ex, prefs)
	if err != nil {
		s.log.Error("alternatives generation failed", "exercise", ex.Name, "error", err)
		return nil, asFailure(StageRequest, err)
	}
	if len(raw) == 0 {
		return nil, &Error{Stage: StageEmpty, Err: ErrNoAlternatives}
	}
	if len(raw) > MaxAlternatives {
		raw = raw[:MaxAlternatives]
	}
	out := make([]models.Exercise, 0, len(raw))
	for _, r := range raw {
		out = append(out, s.norm.Exercise(r, &prefs))
	}
	return out, nil
}
