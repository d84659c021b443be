package mcp

import (
	"context"

	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
)

// DataSource is the read-only view the MCP tools query. Local (over the
// persistence façade) and HTTPClient (remote via REST API) satisfy it.
type DataSource interface {
	Profile(ctx context.Context, identity string) (*models.Profile, error)
	Plans(ctx context.Context, identity string) ([]models.Plan, error)
	History(ctx context.Context, identity string) ([]models.Session, error)
	Library(ctx context.Context, identity string) ([]models.LibraryExercise, error)
}

// Reader is the part of the façade Local needs.
type Reader interface {
	LoadProfile(ctx context.Context, identity string) *models.Profile
	LoadPlans(ctx context.Context, identity string) []models.Plan
	LoadHistory(ctx context.Context, identity string) []models.Session
	LoadLibrary(ctx context.Context, identity string) []models.LibraryExercise
}

// Compile-time checks.
var (
	_ Reader     = (*persist.Facade)(nil)
	_ DataSource = Local{}
)

// ReadOnlyCache serves reads from the wrapped cache and drops writes. The
// device cache is not keyed by identity, so MCP queries must not refresh it
// with another user's remote data.
type ReadOnlyCache struct {
	persist.Cache
}

func (ReadOnlyCache) Set(key, value string) error { return nil }

func (ReadOnlyCache) Remove(key string) error { return nil }

// Local reads through the persistence façade. Its loads degrade to cached
// data and never fail.
type Local struct {
	Store Reader
}

func (l Local) Profile(ctx context.Context, identity string) (*models.Profile, error) {
	return l.Store.LoadProfile(ctx, identity), nil
}

func (l Local) Plans(ctx context.Context, identity string) ([]models.Plan, error) {
	return l.Store.LoadPlans(ctx, identity), nil
}

func (l Local) History(ctx context.Context, identity string) ([]models.Session, error) {
	return l.Store.LoadHistory(ctx, identity), nil
}

func (l Local) Library(ctx context.Context, identity string) ([]models.LibraryExercise, error) {
	return l.Store.LoadLibrary(ctx, identity), nil
}
