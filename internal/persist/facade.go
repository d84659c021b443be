// Package persist is the single read/write surface over the local cache and
// the optional remote mirror. Writes land locally first; the mirror is best
// effort.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/localstore"
	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/storage"
)

// Cache is the local key/value store.
type Cache interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Mirror is the remote CRUD contract.
type Mirror interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	UpsertProfile(ctx context.Context, p models.Profile) error
	ListPlans(ctx context.Context, userID string) ([]models.Plan, error)
	UpsertPlan(ctx context.Context, userID string, p models.Plan) error
	DeletePlan(ctx context.Context, userID, planID string) error
	ListSessions(ctx context.Context, userID string) ([]models.Session, error)
	InsertSession(ctx context.Context, userID string, s models.Session) error
	DeleteSessions(ctx context.Context, userID string) error
	ListExercises(ctx context.Context) ([]models.LibraryExercise, error)
}

var (
	_ Mirror = (*storage.DB)(nil)
	_ Cache  = (*localstore.Store)(nil)
)

// Kind names an entity collection.
type Kind string

const (
	KindProfile Kind = "profile"
	KindPlans   Kind = "plans"
	KindHistory Kind = "history"
	KindLibrary Kind = "library"
)

// Key returns the local cache key for the kind.
func (k Kind) Key() string {
	switch k {
	case KindProfile:
		return localstore.KeyProfile
	case KindPlans:
		return localstore.KeyPlans
	case KindHistory:
		return localstore.KeyHistory
	default:
		return localstore.KeyLibrary
	}
}

// DefaultTimeout bounds every mirror call when none is configured.
const DefaultTimeout = 10 * time.Second

// Facade implements local-first persistence for every entity kind.
type Facade struct {
	cache   Cache
	mirror  Mirror
	timeout time.Duration
	log     *slog.Logger
}

// New builds a Facade. mirror may be nil when no remote is configured.
func New(cache Cache, mirror Mirror, timeout time.Duration, log *slog.Logger) *Facade {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Facade{cache: cache, mirror: mirror, timeout: timeout, log: log}
}

// RemoteEnabled reports whether operations for identity reach the mirror.
func (f *Facade) RemoteEnabled(identity string) bool {
	_, err := f.remote(identity)
	return err == nil
}

func (f *Facade) remote(identity string) (Mirror, error) {
	if f.mirror == nil || identity == "" || identity == models.GuestID {
		return nil, ErrRemoteUnavailable
	}
	return f.mirror, nil
}

// load fetches from the mirror when available. A non-empty result replaces the
// cached value; failures and empty results fall back to the cache.
func load[T any](ctx context.Context, f *Facade, kind Kind, identity string,
	fetch func(context.Context, Mirror) (T, bool, error)) (T, bool) {
	if m, err := f.remote(identity); err == nil {
		rctx, cancel := context.WithTimeout(ctx, f.timeout)
		v, ok, err := fetch(rctx, m)
		cancel()
		switch {
		case err != nil:
			f.log.Warn("remote read failed, using local cache", "kind", kind, "error", err)
		case ok:
			if err := f.writeLocal(kind, v); err != nil {
				f.log.Warn("caching remote value", "kind", kind, "error", err)
			}
			return v, true
		}
	}
	return readLocal[T](f, kind)
}

// save commits value (the full local collection) and then pushes to the mirror.
func save[T any](ctx context.Context, f *Facade, kind Kind, identity string, value T,
	push func(context.Context, Mirror) error) error {
	if err := f.writeLocal(kind, value); err != nil {
		return err
	}
	m, err := f.remote(identity)
	if err != nil {
		return nil
	}
	rctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := push(rctx, m); err != nil {
		f.log.Error("remote write failed", "kind", kind, "identity", identity, "error", err)
		return &RemoteError{Kind: kind, Op: "save", Err: err}
	}
	return nil
}

// bestEffort runs a remote operation whose failure is only logged.
func (f *Facade) bestEffort(ctx context.Context, kind Kind, identity, op string, fn func(context.Context, Mirror) error) {
	m, err := f.remote(identity)
	if err != nil {
		return
	}
	rctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := fn(rctx, m); err != nil {
		f.log.Error("remote "+op+" failed", "kind", kind, "identity", identity, "error", err)
	}
}

// readLocal decodes the cached value. A missing or corrupt entry reads as empty.
func readLocal[T any](f *Facade, kind Kind) (T, bool) {
	var v T
	raw, ok, err := f.cache.Get(kind.Key())
	if err != nil {
		f.log.Warn("reading local cache", "kind", kind, "error", err)
		return v, false
	}
	if !ok {
		return v, false
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		f.log.Warn("local cache corrupt, treating as empty", "kind", kind, "error", err)
		var zero T
		return zero, false
	}
	return v, true
}

func (f *Facade) writeLocal(kind Kind, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", kind, err)
	}
	if err := f.cache.Set(kind.Key(), string(raw)); err != nil {
		return fmt.Errorf("writing local %s: %w", kind, err)
	}
	return nil
}

// LoadProfile returns the stored profile, or nil for a new user.
func (f *Facade) LoadProfile(ctx context.Context, identity string) *models.Profile {
	p, ok := load(ctx, f, KindProfile, identity, func(ctx context.Context, m Mirror) (*models.Profile, bool, error) {
		p, err := m.GetProfile(ctx, identity)
		return p, p != nil, err
	})
	if !ok {
		return nil
	}
	return p
}

// SaveProfile stores the profile locally and mirrors it. The stored row is
// always keyed by identity.
func (f *Facade) SaveProfile(ctx context.Context, identity string, p models.Profile) error {
	if identity != "" {
		p.ID = identity
	}
	return save(ctx, f, KindProfile, identity, p, func(ctx context.Context, m Mirror) error {
		return m.UpsertProfile(ctx, p)
	})
}

// LoadPlans returns the plan collection, never nil.
func (f *Facade) LoadPlans(ctx context.Context, identity string) []models.Plan {
	plans, _ := load(ctx, f, KindPlans, identity, func(ctx context.Context, m Mirror) ([]models.Plan, bool, error) {
		plans, err := m.ListPlans(ctx, identity)
		return plans, len(plans) > 0, err
	})
	if plans == nil {
		return []models.Plan{}
	}
	return plans
}

// SavePlan merges the plan into the local collection, replacing by id, and
// mirrors it.
func (f *Facade) SavePlan(ctx context.Context, identity string, plan models.Plan) error {
	plans, _ := readLocal[[]models.Plan](f, KindPlans)
	merged := make([]models.Plan, 0, len(plans)+1)
	replaced := false
	for _, p := range plans {
		if p.ID == plan.ID {
			merged = append(merged, plan)
			replaced = true
			continue
		}
		merged = append(merged, p)
	}
	if !replaced {
		merged = append(merged, plan)
	}
	return save(ctx, f, KindPlans, identity, merged, func(ctx context.Context, m Mirror) error {
		return m.UpsertPlan(ctx, identity, plan)
	})
}

// DeletePlan removes the plan locally. Remote failures are logged only.
func (f *Facade) DeletePlan(ctx context.Context, identity, planID string) error {
	plans, _ := readLocal[[]models.Plan](f, KindPlans)
	kept := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		if p.ID != planID {
			kept = append(kept, p)
		}
	}
	if err := f.writeLocal(KindPlans, kept); err != nil {
		return err
	}
	f.bestEffort(ctx, KindPlans, identity, "delete", func(ctx context.Context, m Mirror) error {
		return m.DeletePlan(ctx, identity, planID)
	})
	return nil
}

// LoadHistory returns sessions most recent first, never nil.
func (f *Facade) LoadHistory(ctx context.Context, identity string) []models.Session {
	hist, _ := load(ctx, f, KindHistory, identity, func(ctx context.Context, m Mirror) ([]models.Session, bool, error) {
		s, err := m.ListSessions(ctx, identity)
		return s, len(s) > 0, err
	})
	if hist == nil {
		return []models.Session{}
	}
	return hist
}

// SaveSession prepends the session to local history and mirrors it.
func (f *Facade) SaveSession(ctx context.Context, identity string, s models.Session) error {
	hist, _ := readLocal[[]models.Session](f, KindHistory)
	updated := append([]models.Session{s}, hist...)
	return save(ctx, f, KindHistory, identity, updated, func(ctx context.Context, m Mirror) error {
		return m.InsertSession(ctx, identity, s)
	})
}

// ClearHistory drops all sessions. Remote failures are logged only.
func (f *Facade) ClearHistory(ctx context.Context, identity string) error {
	if err := f.cache.Remove(KindHistory.Key()); err != nil {
		return fmt.Errorf("clearing local history: %w", err)
	}
	f.bestEffort(ctx, KindHistory, identity, "clear", func(ctx context.Context, m Mirror) error {
		return m.DeleteSessions(ctx, identity)
	})
	return nil
}

// LoadLibrary returns the shared catalog: the mirror's when reachable, else
// the cached copy, else the built-in seed.
func (f *Facade) LoadLibrary(ctx context.Context, identity string) []models.LibraryExercise {
	lib, ok := load(ctx, f, KindLibrary, identity, func(ctx context.Context, m Mirror) ([]models.LibraryExercise, bool, error) {
		l, err := m.ListExercises(ctx)
		return l, len(l) > 0, err
	})
	if !ok || len(lib) == 0 {
		return models.LibrarySeed()
	}
	for i := range lib {
		if lib[i].ImageURL == "" {
			lib[i].ImageURL = models.FallbackImageURL
		}
	}
	return lib
}

// IsRemoteError reports whether err is a failed mirror write.
func IsRemoteError(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
