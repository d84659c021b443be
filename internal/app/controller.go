// Package app is the plan/session state machine: it owns the current view
// and the in-memory entity snapshots, applies every user action and hands
// complete snapshots to the persistence layer.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
	"github.com/Qadosh7/Fit-Flow/internal/workout"
)

// Store is the persistence surface the controller writes through.
type Store interface {
	LoadProfile(ctx context.Context, identity string) *models.Profile
	SaveProfile(ctx context.Context, identity string, p models.Profile) error
	LoadPlans(ctx context.Context, identity string) []models.Plan
	SavePlan(ctx context.Context, identity string, p models.Plan) error
	DeletePlan(ctx context.Context, identity, planID string) error
	LoadHistory(ctx context.Context, identity string) []models.Session
	SaveSession(ctx context.Context, identity string, s models.Session) error
	ClearHistory(ctx context.Context, identity string) error
	LoadLibrary(ctx context.Context, identity string) []models.LibraryExercise
}

// Generator produces plans and exercise substitutes.
type Generator interface {
	GeneratePlan(ctx context.Context, prefs models.Preferences) (models.Plan, error)
	Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]models.Exercise, error)
}

var _ Store = (*persist.Facade)(nil)

// Identity is an authenticated user.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GuestIdentity is the offline profile.
var GuestIdentity = Identity{ID: models.GuestID, Email: models.GuestEmail}

// Options configure a Controller.
type Options struct {
	// RequireAuth starts at the auth view instead of entering as guest.
	RequireAuth bool
	Timer       Timer
	Now         func() time.Time
	NewID       func() string
}

// ReplaceState tracks a pending exercise substitution.
type ReplaceState struct {
	ExerciseID   string            `json:"exerciseId"`
	Loading      bool              `json:"loading"`
	Alternatives []models.Exercise `json:"alternatives"`
}

// MetricsUpdate carries the body metrics to change; nil fields are kept.
type MetricsUpdate struct {
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Chest  *float64 `json:"chest,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
	ArmL   *float64 `json:"armL,omitempty"`
	ArmR   *float64 `json:"armR,omitempty"`
	ThighL *float64 `json:"thighL,omitempty"`
	ThighR *float64 `json:"thighR,omitempty"`
}

// ProfileUpdate carries the profile fields to change; nil fields are kept.
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// Controller serializes all actions behind one mutex. Generator calls run
// without it and are applied only if the same identity is still signed in.
type Controller struct {
	mu sync.Mutex

	store       Store
	gen         Generator
	timer       Timer
	log         *slog.Logger
	now         func() time.Time
	newID       func() string
	requireAuth bool

	views      *viewMachine
	returnView View
	epoch      uint64

	identity *Identity
	profile  *models.Profile
	plans    []models.Plan
	history  []models.Session
	library  []models.LibraryExercise
	dayIdx   int
	replace  *ReplaceState
	notice   string
}

// New builds the controller in the loading view.
func New(store Store, gen Generator, log *slog.Logger, opts Options) (*Controller, error) {
	views, err := newViewMachine()
	if err != nil {
		return nil, err
	}
	c := &Controller{
		store:       store,
		gen:         gen,
		timer:       opts.Timer,
		log:         log,
		now:         opts.Now,
		newID:       opts.NewID,
		requireAuth: opts.RequireAuth,
		views:       views,
		returnView:  ViewDashboard,
		plans:       []models.Plan{},
		history:     []models.Session{},
	}
	if c.timer == nil {
		c.timer = NewRestTimer(func(id string) { log.Debug("rest finished", "exercise", id) })
	}
	if c.now == nil {
		c.now = models.Timestamp
	}
	if c.newID == nil {
		c.newID = models.NewID
	}
	return c, nil
}

// Start loads the library and either the given session, the guest profile, or
// moves to the auth view.
func (c *Controller) Start(ctx context.Context, session *Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := models.GuestID
	if session != nil {
		id = session.ID
	}
	c.library = c.store.LoadLibrary(ctx, id)

	switch {
	case session != nil:
		return c.loadUser(ctx, *session)
	case c.requireAuth:
		return c.views.Send(EventAuthRequired)
	default:
		return c.loadUser(ctx, GuestIdentity)
	}
}

// SignIn reloads everything for an authenticated identity. It is accepted
// from any view so that an auth state change always drives a full reload.
func (c *Controller) SignIn(ctx context.Context, id Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = ""
	if id.ID == "" || id.ID == models.GuestID {
		c.notice = noticeAuthentication
		return ErrAuthentication
	}
	c.library = c.store.LoadLibrary(ctx, id.ID)
	return c.loadUser(ctx, id)
}

// EnterGuest loads the offline profile.
func (c *Controller) EnterGuest(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = ""
	return c.loadUser(ctx, GuestIdentity)
}

// SignOut drops the in-memory user state and returns to the auth view.
func (c *Controller) SignOut() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.views.Send(EventSignOut); err != nil {
		return err
	}
	c.resetUser()
	return nil
}

func (c *Controller) resetUser() {
	c.epoch++
	c.timer.Stop()
	c.identity = nil
	c.profile = nil
	c.plans = []models.Plan{}
	c.history = []models.Session{}
	c.dayIdx = 0
	c.replace = nil
	c.returnView = ViewDashboard
}

// loadUser replaces all user state. Callers hold mu.
func (c *Controller) loadUser(ctx context.Context, id Identity) error {
	if c.views.Current() != ViewLoading {
		if err := c.views.Send(EventLoad); err != nil {
			return err
		}
	}
	c.resetUser()
	c.identity = &id

	profile := c.store.LoadProfile(ctx, id.ID)
	plans := c.store.LoadPlans(ctx, id.ID)
	history := c.store.LoadHistory(ctx, id.ID)
	if err := ctx.Err(); err != nil {
		c.identity = nil
		c.views.Send(EventLoadFailed)
		return fmt.Errorf("loading user data: %w", err)
	}

	if profile == nil {
		p := models.NewProfile(id.ID, id.Email)
		c.profile = &p
		c.log.Info("new user", "identity", id.ID)
		return c.views.Send(EventNewUser)
	}

	// The cache is shared by every identity on the device, so a fallback
	// read can return another user's profile.
	if profile.ID != id.ID {
		profile.ID = id.ID
		profile.Email = id.Email
	}
	if profile.Preferences == nil {
		prefs := models.DefaultPreferences()
		profile.Preferences = &prefs
	}
	if profile.FavoriteExerciseIDs == nil {
		profile.FavoriteExerciseIDs = []string{}
	}
	c.profile = profile
	c.plans = plans
	c.history = history
	c.log.Info("user loaded", "identity", id.ID, "plans", len(plans), "sessions", len(history))

	if len(plans) > 0 {
		return c.views.Send(EventPlansLoaded)
	}
	return c.views.Send(EventNoPlans)
}

// CompleteOnboarding generates the first plan from prefs.
func (c *Controller) CompleteOnboarding(ctx context.Context, prefs models.Preferences) error {
	c.mu.Lock()
	if err := c.require(ViewOnboarding); err != nil {
		c.mu.Unlock()
		return err
	}
	return c.generatePlan(ctx, prefs)
}

// SaveSettings stores new preferences, optionally regenerating the plan.
func (c *Controller) SaveSettings(ctx context.Context, prefs models.Preferences, regenerate bool) error {
	c.mu.Lock()
	if err := c.require(ViewSettings); err != nil {
		c.mu.Unlock()
		return err
	}
	if regenerate {
		return c.generatePlan(ctx, prefs)
	}
	defer c.mu.Unlock()

	p := c.cloneProfile()
	p.Preferences = &prefs
	c.profile = &p
	err := c.store.SaveProfile(ctx, c.identity.ID, p)
	if verr := c.back(); verr != nil {
		return verr
	}
	return err
}

// generatePlan is entered with mu held and returns with it released.
func (c *Controller) generatePlan(ctx context.Context, prefs models.Preferences) error {
	if err := c.views.Send(EventGenerate); err != nil {
		c.mu.Unlock()
		return err
	}
	epoch := c.epoch
	c.mu.Unlock()

	plan, genErr := c.gen.GeneratePlan(ctx, prefs)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || c.views.Current() != ViewGenerating {
		c.log.Info("discarding generation result for stale session")
		return ErrNotSignedIn
	}
	if genErr != nil {
		c.notice = noticeGenerationFailed
		if err := c.views.Send(EventGenerationFailed); err != nil {
			return err
		}
		return genErr
	}

	c.plans = append(c.plans, plan)
	p := c.cloneProfile()
	p.Preferences = &prefs
	p.ActivePlanID = plan.ID
	c.profile = &p
	c.dayIdx = 0

	// The profile row must exist remotely before a plan can reference it.
	err := persisted(
		c.store.SaveProfile(ctx, c.identity.ID, p),
		c.store.SavePlan(ctx, c.identity.ID, plan),
	)
	if verr := c.views.Send(EventGenerated); verr != nil {
		return verr
	}
	return err
}

// CreateEmptyPlan adds a manual plan, makes it active and opens it.
func (c *Controller) CreateEmptyPlan(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewDashboard); err != nil {
		return err
	}
	plan := workout.NewEmptyPlan(len(c.plans)+1, c.newID(), c.now())
	c.plans = append(c.plans, plan)
	p := c.cloneProfile()
	p.ActivePlanID = plan.ID
	c.profile = &p
	c.dayIdx = 0

	err := persisted(
		c.store.SaveProfile(ctx, c.identity.ID, p),
		c.store.SavePlan(ctx, c.identity.ID, plan),
	)
	if verr := c.views.Send(EventStartWorkout); verr != nil {
		return verr
	}
	return err
}

// SelectPlan makes planID the active plan.
func (c *Controller) SelectPlan(ctx context.Context, planID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewDashboard); err != nil {
		return err
	}
	if c.planIndex(planID) < 0 {
		return fmt.Errorf("plan %s: %w", planID, ErrNotFound)
	}
	p := c.cloneProfile()
	p.ActivePlanID = planID
	c.profile = &p
	c.dayIdx = 0
	return c.store.SaveProfile(ctx, c.identity.ID, p)
}

// DeletePlan removes a plan. A dangling active reference is left in place and
// resolves to the first remaining plan.
func (c *Controller) DeletePlan(ctx context.Context, planID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewDashboard); err != nil {
		return err
	}
	idx := c.planIndex(planID)
	if idx < 0 {
		return fmt.Errorf("plan %s: %w", planID, ErrNotFound)
	}
	plans := make([]models.Plan, 0, len(c.plans)-1)
	plans = append(plans, c.plans[:idx]...)
	c.plans = append(plans, c.plans[idx+1:]...)
	return c.store.DeletePlan(ctx, c.identity.ID, planID)
}

// SetDay selects the workout day, clamped to the active plan.
func (c *Controller) SetDay(idx int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewWorkout); err != nil {
		return err
	}
	plan := c.activePlan()
	if plan == nil {
		return ErrNoActivePlan
	}
	c.dayIdx = max(0, workout.ClampDay(*plan, idx))
	return nil
}

// ToggleSet flips a set. Completing it starts the rest countdown.
func (c *Controller) ToggleSet(ctx context.Context, exerciseID, setID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewWorkout); err != nil {
		return err
	}
	var res workout.Toggle
	err := c.updateActivePlan(ctx, func(p models.Plan) (models.Plan, bool) {
		out, t, ok := workout.ToggleSet(p, c.dayIdx, exerciseID, setID)
		res = t
		return out, ok
	}, func() {
		if res.StartsRest() {
			c.timer.Start(exerciseID, res.Rest)
		}
	})
	return err
}

// UpdateSet stores raw load and/or reps text for a set.
func (c *Controller) UpdateSet(ctx context.Context, exerciseID, setID string, weight, reps *string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewWorkout); err != nil {
		return err
	}
	return c.updateActivePlan(ctx, func(p models.Plan) (models.Plan, bool) {
		return workout.UpdateSet(p, c.dayIdx, exerciseID, setID, weight, reps)
	}, nil)
}

// RemoveExercise drops an exercise from the current day.
func (c *Controller) RemoveExercise(ctx context.Context, exerciseID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewWorkout); err != nil {
		return err
	}
	return c.updateActivePlan(ctx, func(p models.Plan) (models.Plan, bool) {
		return workout.RemoveExercise(p, c.dayIdx, exerciseID)
	}, nil)
}

// AddExerciseFromLibrary appends a catalog exercise to the current day.
func (c *Controller) AddExerciseFromLibrary(ctx context.Context, libraryID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = ""
	if err := c.require(ViewLibrary, ViewDashboard); err != nil {
		return err
	}
	lib, ok := models.FindLibraryExercise(c.library, libraryID)
	if !ok {
		return fmt.Errorf("library exercise %s: %w", libraryID, ErrNotFound)
	}
	if c.activePlan() == nil {
		c.notice = noticeNoActivePlan
		return ErrNoActivePlan
	}
	ex := workout.NewExerciseFromLibrary(lib, c.profile.Preferences, c.newID)
	return c.updateActivePlan(ctx, func(p models.Plan) (models.Plan, bool) {
		return workout.AddExercise(p, ex, c.dayIdx), true
	}, nil)
}

// StartReplace requests substitutes for an exercise of the current day.
func (c *Controller) StartReplace(ctx context.Context, exerciseID string) error {
	c.mu.Lock()
	c.notice = ""
	if err := c.require(ViewWorkout); err != nil {
		c.mu.Unlock()
		return err
	}
	plan := c.activePlan()
	if plan == nil {
		c.mu.Unlock()
		return ErrNoActivePlan
	}
	ex, ok := workout.FindExercise(*plan, c.dayIdx, exerciseID)
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("exercise %s: %w", exerciseID, ErrNotFound)
	}
	c.replace = &ReplaceState{ExerciseID: exerciseID, Loading: true, Alternatives: []models.Exercise{}}
	prefs := c.preferences()
	epoch := c.epoch
	c.mu.Unlock()

	alts, genErr := c.gen.Alternatives(ctx, ex, prefs)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch || c.replace == nil || c.replace.ExerciseID != exerciseID {
		return ErrNotSignedIn
	}
	c.replace.Loading = false
	if genErr != nil {
		c.notice = noticeAlternatives
		return genErr
	}
	c.replace.Alternatives = alts
	return nil
}

// SelectAlternative substitutes the chosen alternative in place.
func (c *Controller) SelectAlternative(ctx context.Context, alternativeID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewWorkout); err != nil {
		return err
	}
	if c.replace == nil {
		return fmt.Errorf("no pending replacement: %w", ErrNotFound)
	}
	var chosen *models.Exercise
	for i := range c.replace.Alternatives {
		if c.replace.Alternatives[i].ID == alternativeID {
			chosen = &c.replace.Alternatives[i]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("alternative %s: %w", alternativeID, ErrNotFound)
	}
	target, repl := c.replace.ExerciseID, *chosen
	return c.updateActivePlan(ctx, func(p models.Plan) (models.Plan, bool) {
		return workout.ReplaceExercise(p, c.dayIdx, target, repl)
	}, func() {
		c.replace = nil
	})
}

// CancelReplace clears the pending substitution.
func (c *Controller) CancelReplace() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.replace = nil
}

// FinishDay records the current day as a session and opens the history.
func (c *Controller) FinishDay(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewWorkout); err != nil {
		return err
	}
	plan := c.activePlan()
	if plan == nil {
		return ErrNoActivePlan
	}
	idx := workout.ClampDay(*plan, c.dayIdx)
	if idx < 0 {
		return fmt.Errorf("plan %s has no days: %w", plan.ID, ErrNotFound)
	}
	s := workout.FinishDay(plan.Days[idx], c.newID(), c.now())
	c.history = append([]models.Session{s}, c.history...)
	c.timer.Stop()
	c.replace = nil

	err := c.store.SaveSession(ctx, c.identity.ID, s)
	if verr := c.views.Send(EventFinish); verr != nil {
		return verr
	}
	return err
}

// ClearHistory drops all sessions.
func (c *Controller) ClearHistory(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewHistory); err != nil {
		return err
	}
	c.history = []models.Session{}
	return c.store.ClearHistory(ctx, c.identity.ID)
}

// ToggleFavorite adds or removes a library exercise from the favorites.
func (c *Controller) ToggleFavorite(ctx context.Context, exerciseID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewLibrary, ViewDashboard); err != nil {
		return err
	}
	p := c.cloneProfile()
	if p.IsFavorite(exerciseID) {
		kept := make([]string, 0, len(p.FavoriteExerciseIDs))
		for _, id := range p.FavoriteExerciseIDs {
			if id != exerciseID {
				kept = append(kept, id)
			}
		}
		p.FavoriteExerciseIDs = kept
	} else {
		p.FavoriteExerciseIDs = append(p.FavoriteExerciseIDs, exerciseID)
	}
	c.profile = &p
	return c.store.SaveProfile(ctx, c.identity.ID, p)
}

// UpdateMetrics merges body metrics and stamps the update time.
func (c *Controller) UpdateMetrics(ctx context.Context, m MetricsUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewDashboard); err != nil {
		return err
	}
	p := c.cloneProfile()
	if m.Weight != nil {
		p.Metrics.Weight = *m.Weight
	}
	if m.Height != nil {
		p.Metrics.Height = *m.Height
	}
	for _, f := range []struct {
		src *float64
		dst **float64
	}{
		{m.Chest, &p.Metrics.Chest}, {m.Waist, &p.Metrics.Waist}, {m.Hips, &p.Metrics.Hips},
		{m.ArmL, &p.Metrics.ArmL}, {m.ArmR, &p.Metrics.ArmR},
		{m.ThighL, &p.Metrics.ThighL}, {m.ThighR, &p.Metrics.ThighR},
	} {
		if f.src != nil {
			v := *f.src
			*f.dst = &v
		}
	}
	now := c.now()
	p.Metrics.LastUpdated = &now
	c.profile = &p
	return c.store.SaveProfile(ctx, c.identity.ID, p)
}

// UpdateProfile changes the editable profile fields.
func (c *Controller) UpdateProfile(ctx context.Context, u ProfileUpdate) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.require(ViewDashboard); err != nil {
		return err
	}
	p := c.cloneProfile()
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.BirthDate != nil {
		p.BirthDate = *u.BirthDate
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	c.profile = &p
	return c.store.SaveProfile(ctx, c.identity.ID, p)
}

// AdjustRest shifts the running countdown and keeps the new base as the
// exercise's rest.
func (c *Controller) AdjustRest(ctx context.Context, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.timer.Status()
	if st == nil {
		return fmt.Errorf("no rest running: %w", ErrNotFound)
	}
	base, ok := c.timer.Adjust(delta)
	if !ok {
		return fmt.Errorf("no rest running: %w", ErrNotFound)
	}
	plan := c.activePlan()
	if plan == nil {
		return nil
	}
	if _, found := workout.FindExercise(*plan, c.dayIdx, st.ExerciseID); !found {
		return nil
	}
	return c.updateActivePlan(ctx, func(p models.Plan) (models.Plan, bool) {
		return workout.SetRest(p, c.dayIdx, st.ExerciseID, base)
	}, nil)
}

// StopRest cancels the running countdown.
func (c *Controller) StopRest() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timer.Stop()
}

// OpenSettings shows the settings overlay.
func (c *Controller) OpenSettings() error { return c.openOverlay(EventOpenSettings) }

// OpenLibrary shows the library overlay.
func (c *Controller) OpenLibrary() error { return c.openOverlay(EventOpenLibrary) }

func (c *Controller) openOverlay(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	from := c.views.Current()
	if err := c.views.Send(ev); err != nil {
		return err
	}
	c.returnView = from
	return nil
}

// OpenHistory shows the history.
func (c *Controller) OpenHistory() error { return c.send(EventOpenHistory) }

// GoToDashboard leaves the workout for the dashboard.
func (c *Controller) GoToDashboard() error { return c.send(EventGoDashboard) }

// Reset returns to onboarding.
func (c *Controller) Reset() error { return c.send(EventReset) }

// StartWorkout opens the active plan, or onboarding when there is none.
func (c *Controller) StartWorkout() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activePlan() == nil {
		return c.views.Send(EventReset)
	}
	return c.views.Send(EventStartWorkout)
}

// Back leaves an overlay for the view it was opened from. History always
// returns to the dashboard.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.back()
}

func (c *Controller) back() error {
	if c.views.Current() == ViewHistory || c.returnView != ViewWorkout {
		return c.views.Send(EventBackDashboard)
	}
	return c.views.Send(EventBackWorkout)
}

func (c *Controller) send(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.views.Send(ev)
}

// require checks the current view and a signed-in user. Callers hold mu.
func (c *Controller) require(views ...View) error {
	if c.identity == nil || c.profile == nil {
		return ErrNotSignedIn
	}
	cur := c.views.Current()
	for _, v := range views {
		if cur == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidTransition, cur)
}

// updateActivePlan replaces the active plan with fn's result, runs applied
// and persists the new snapshot. Callers hold mu.
func (c *Controller) updateActivePlan(ctx context.Context, fn func(models.Plan) (models.Plan, bool), applied func()) error {
	active := c.activePlan()
	if active == nil {
		return ErrNoActivePlan
	}
	next, ok := fn(*active)
	if !ok {
		return ErrNotFound
	}
	c.plans[c.planIndex(next.ID)] = next
	if applied != nil {
		applied()
	}
	return c.store.SavePlan(ctx, c.identity.ID, next)
}

func (c *Controller) activePlan() *models.Plan {
	if c.profile == nil {
		return nil
	}
	return models.ActivePlan(c.plans, c.profile.ActivePlanID)
}

func (c *Controller) planIndex(id string) int {
	for i := range c.plans {
		if c.plans[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) preferences() models.Preferences {
	if c.profile == nil || c.profile.Preferences == nil {
		return models.DefaultPreferences()
	}
	return *c.profile.Preferences
}

// cloneProfile copies the profile so a mutation replaces the snapshot.
func (c *Controller) cloneProfile() models.Profile {
	p := *c.profile
	p.FavoriteExerciseIDs = append([]string{}, c.profile.FavoriteExerciseIDs...)
	if c.profile.Preferences != nil {
		prefs := *c.profile.Preferences
		prefs.FocusMuscles = append([]string(nil), prefs.FocusMuscles...)
		p.Preferences = &prefs
	}
	return p
}

// persisted folds façade results in call order. A local failure wins over a
// mirror failure.
func persisted(errs ...error) error {
	var remote error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !persist.IsRemoteError(err) {
			return err
		}
		if remote == nil {
			remote = err
		}
	}
	return remote
}
