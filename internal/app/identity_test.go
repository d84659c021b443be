package app

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
)

type mapCache map[string]string

func (c mapCache) Get(key string) (string, bool, error) {
	v, ok := c[key]
	return v, ok, nil
}

func (c mapCache) Set(key, value string) error { c[key] = value; return nil }

func (c mapCache) Remove(key string) error { delete(c, key); return nil }

// emptyMirror holds no data and records the ids of upserted profiles.
type emptyMirror struct {
	profileIDs []string
}

func (m *emptyMirror) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return nil, nil
}

func (m *emptyMirror) UpsertProfile(ctx context.Context, p models.Profile) error {
	m.profileIDs = append(m.profileIDs, p.ID)
	return nil
}

func (m *emptyMirror) ListPlans(ctx context.Context, userID string) ([]models.Plan, error) {
	return nil, nil
}

func (m *emptyMirror) UpsertPlan(ctx context.Context, userID string, p models.Plan) error {
	return nil
}

func (m *emptyMirror) DeletePlan(ctx context.Context, userID, planID string) error { return nil }

func (m *emptyMirror) ListSessions(ctx context.Context, userID string) ([]models.Session, error) {
	return nil, nil
}

func (m *emptyMirror) InsertSession(ctx context.Context, userID string, s models.Session) error {
	return nil
}

func (m *emptyMirror) DeleteSessions(ctx context.Context, userID string) error { return nil }

func (m *emptyMirror) ListExercises(ctx context.Context) ([]models.LibraryExercise, error) {
	return nil, nil
}

// TestSignInAfterGuestKeepsCallerIdentity verifies a profile left in the
// device cache by the guest is adopted under the signed-in id and mirrored
// under it.
func TestSignInAfterGuestKeepsCallerIdentity(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	mirror := &emptyMirror{}
	facade := persist.New(mapCache{}, mirror, 0, log)
	if err := facade.SaveProfile(ctx, models.GuestID, models.NewProfile(models.GuestID, models.GuestEmail)); err != nil {
		t.Fatalf("seed guest profile: %v", err)
	}

	c, err := New(facade, &fakeGen{}, log, Options{Timer: &fakeTimer{}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Start(ctx, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SignIn(ctx, Identity{ID: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	st := c.Snapshot()
	if st.Profile == nil || st.Profile.ID != "alice" || st.Profile.Email != "alice@example.com" {
		t.Fatalf("profile = %+v, want alice", st.Profile)
	}

	if err := c.ToggleFavorite(ctx, "p1"); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if len(mirror.profileIDs) != 1 || mirror.profileIDs[0] != "alice" {
		t.Errorf("mirrored profile ids = %v, want [alice]", mirror.profileIDs)
	}
}
