package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/generate"
	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
)

type fakeStore struct {
	profile *models.Profile
	plans   []models.Plan
	history []models.Session
	library []models.LibraryExercise
	calls   []string
	saveErr error
}

func (s *fakeStore) LoadProfile(ctx context.Context, id string) *models.Profile {
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

func (s *fakeStore) SaveProfile(ctx context.Context, id string, p models.Profile) error {
	s.calls = append(s.calls, "SaveProfile")
	s.profile = &p
	return s.saveErr
}

func (s *fakeStore) LoadPlans(ctx context.Context, id string) []models.Plan {
	out := make([]models.Plan, 0, len(s.plans))
	for _, p := range s.plans {
		out = append(out, p.Clone())
	}
	return out
}

func (s *fakeStore) SavePlan(ctx context.Context, id string, p models.Plan) error {
	s.calls = append(s.calls, "SavePlan:"+p.ID)
	return s.saveErr
}

func (s *fakeStore) DeletePlan(ctx context.Context, id, planID string) error {
	s.calls = append(s.calls, "DeletePlan:"+planID)
	return nil
}

func (s *fakeStore) LoadHistory(ctx context.Context, id string) []models.Session {
	return append([]models.Session{}, s.history...)
}

func (s *fakeStore) SaveSession(ctx context.Context, id string, sess models.Session) error {
	s.calls = append(s.calls, "SaveSession")
	s.history = append([]models.Session{sess}, s.history...)
	return s.saveErr
}

func (s *fakeStore) ClearHistory(ctx context.Context, id string) error {
	s.calls = append(s.calls, "ClearHistory")
	s.history = nil
	return nil
}

func (s *fakeStore) LoadLibrary(ctx context.Context, id string) []models.LibraryExercise {
	if s.library == nil {
		return models.LibrarySeed()
	}
	return s.library
}

func (s *fakeStore) count(prefix string) int {
	n := 0
	for _, c := range s.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

type fakeGen struct {
	plan    models.Plan
	alts    []models.Exercise
	err     error
	started chan struct{}
	release chan struct{}
}

func (g *fakeGen) wait() {
	if g.started != nil {
		close(g.started)
	}
	if g.release != nil {
		<-g.release
	}
}

func (g *fakeGen) GeneratePlan(ctx context.Context, prefs models.Preferences) (models.Plan, error) {
	g.wait()
	return g.plan, g.err
}

func (g *fakeGen) Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]models.Exercise, error) {
	g.wait()
	return g.alts, g.err
}

type fakeTimer struct {
	starts  []RestStatus
	running *RestStatus
}

func (t *fakeTimer) Start(id string, seconds int) {
	t.starts = append(t.starts, RestStatus{ExerciseID: id, Seconds: seconds, Remaining: seconds})
	t.running = &RestStatus{ExerciseID: id, Seconds: seconds, Remaining: seconds}
}

func (t *fakeTimer) Adjust(delta int) (int, bool) {
	if t.running == nil {
		return 0, false
	}
	t.running.Seconds = max(0, t.running.Seconds+delta)
	t.running.Remaining = max(0, t.running.Remaining+delta)
	return t.running.Seconds, true
}

func (t *fakeTimer) Stop() { t.running = nil }

func (t *fakeTimer) Status() *RestStatus {
	if t.running == nil {
		return nil
	}
	s := *t.running
	return &s
}

var user = Identity{ID: "u1", Email: "ana@example.com"}

func newTestController(t *testing.T, store *fakeStore, gen *fakeGen, timer *fakeTimer, requireAuth bool) *Controller {
	t.Helper()
	n := 0
	c, err := New(store, gen, slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		RequireAuth: requireAuth,
		Timer:       timer,
		Now:         func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) },
		NewID: func() string {
			n++
			return fmt.Sprintf("id%d", n)
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func existingUser(plans ...models.Plan) *fakeStore {
	p := models.NewProfile(user.ID, user.Email)
	if len(plans) > 0 {
		p.ActivePlanID = plans[0].ID
	}
	return &fakeStore{profile: &p, plans: plans}
}

func pushPlan(id string) models.Plan {
	return models.Plan{ID: id, Name: id, Days: []models.Day{
		{Label: "A", Description: "Peito", Exercises: []models.Exercise{
			{ID: "supino", Name: "Supino", Sets: 3, Rest: 90, SetDetails: []models.SetDetail{
				{ID: "s1", Weight: "40kg", Reps: "10"}, {ID: "s2", Weight: "40kg", Reps: "10"}, {ID: "s3", Weight: "40kg", Reps: "10"},
			}},
			{ID: "cruci", Name: "Crucifixo", Sets: 3, SetDetails: []models.SetDetail{{ID: "c1"}}},
			{ID: "triceps", Name: "Tríceps", Sets: 3},
		}},
		{Label: "B", Description: "Costas", Exercises: []models.Exercise{}},
	}}
}

func startSignedIn(t *testing.T, c *Controller) {
	t.Helper()
	if err := c.Start(context.Background(), &user); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func wantView(t *testing.T, c *Controller, v View) {
	t.Helper()
	if got := c.Snapshot().View; got != v {
		t.Fatalf("view = %s, want %s", got, v)
	}
}

// TestStartGuestNewUser verifies an offline install enters as guest and a
// missing profile leads to onboarding.
func TestStartGuestNewUser(t *testing.T) {
	c := newTestController(t, &fakeStore{}, &fakeGen{}, &fakeTimer{}, false)
	if err := c.Start(context.Background(), nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := c.Snapshot()
	if s.View != ViewOnboarding || !s.Guest {
		t.Errorf("view = %s guest = %v, want onboarding guest", s.View, s.Guest)
	}
	if s.Profile == nil || s.Profile.Level != 1 || s.Profile.Name != "offline" {
		t.Errorf("profile = %+v", s.Profile)
	}
}

// TestStartRequiresAuth verifies the auth view and sign-in validation.
func TestStartRequiresAuth(t *testing.T) {
	c := newTestController(t, existingUser(pushPlan("p1")), &fakeGen{}, &fakeTimer{}, true)
	ctx := context.Background()
	if err := c.Start(ctx, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	wantView(t, c, ViewAuth)

	if err := c.SignIn(ctx, Identity{}); !errors.Is(err, ErrAuthentication) {
		t.Errorf("SignIn(empty) = %v, want ErrAuthentication", err)
	}
	if c.Snapshot().Notice == "" {
		t.Error("expected an auth notice")
	}
	if err := c.SignIn(ctx, user); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	wantView(t, c, ViewWorkout)
	if c.Snapshot().Notice != "" {
		t.Error("notice not cleared by successful sign in")
	}
}

// TestExistingUserWithoutPlans verifies the dashboard is the landing view.
func TestExistingUserWithoutPlans(t *testing.T) {
	c := newTestController(t, existingUser(), &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	wantView(t, c, ViewDashboard)
}

// TestOnboardingGeneratesPlan verifies the generated plan becomes active and
// the profile is persisted before the plan.
func TestOnboardingGeneratesPlan(t *testing.T) {
	store := &fakeStore{}
	gen := &fakeGen{plan: models.Plan{ID: "ai", Name: "Treino IA - Força", IsAI: true, Days: []models.Day{{Label: "A"}}}}
	c := newTestController(t, store, gen, &fakeTimer{}, false)
	startSignedIn(t, c)

	prefs := models.DefaultPreferences()
	prefs.Goal = models.GoalStrength
	if err := c.CompleteOnboarding(context.Background(), prefs); err != nil {
		t.Fatalf("CompleteOnboarding: %v", err)
	}
	s := c.Snapshot()
	if s.View != ViewWorkout || s.ActivePlan == nil || s.ActivePlan.ID != "ai" {
		t.Fatalf("view = %s active = %+v", s.View, s.ActivePlan)
	}
	if s.Profile.Preferences.Goal != models.GoalStrength {
		t.Errorf("goal = %q, want Força", s.Profile.Preferences.Goal)
	}
	if len(store.calls) != 2 || store.calls[0] != "SaveProfile" || store.calls[1] != "SavePlan:ai" {
		t.Errorf("calls = %v, want [SaveProfile SavePlan:ai]", store.calls)
	}
}

// TestOnboardingFailure verifies a generation failure surfaces a notice,
// lands on the dashboard and commits nothing.
func TestOnboardingFailure(t *testing.T) {
	store := &fakeStore{}
	gen := &fakeGen{err: &generate.Error{Stage: generate.StageStatus, Err: errors.New("429")}}
	c := newTestController(t, store, gen, &fakeTimer{}, false)
	startSignedIn(t, c)

	err := c.CompleteOnboarding(context.Background(), models.DefaultPreferences())
	if !generate.IsFailure(err) {
		t.Errorf("err = %v, want generation failure", err)
	}
	s := c.Snapshot()
	if s.View != ViewDashboard || s.Notice == "" || len(s.Plans) != 0 {
		t.Errorf("view = %s notice = %q plans = %d", s.View, s.Notice, len(s.Plans))
	}
	if len(store.calls) != 0 {
		t.Errorf("calls = %v, want none", store.calls)
	}
}

// TestToggleSetRestTimer verifies exactly one rest start with the exercise's
// seconds, and none when unchecking.
func TestToggleSetRestTimer(t *testing.T) {
	timer := &fakeTimer{}
	c := newTestController(t, existingUser(pushPlan("p1")), &fakeGen{}, timer, false)
	startSignedIn(t, c)
	ctx := context.Background()

	if err := c.ToggleSet(ctx, "supino", "s1"); err != nil {
		t.Fatalf("ToggleSet: %v", err)
	}
	if len(timer.starts) != 1 || timer.starts[0].Seconds != 90 || timer.starts[0].ExerciseID != "supino" {
		t.Fatalf("starts = %+v, want one 90s start", timer.starts)
	}
	sets := c.Snapshot().ActivePlan.Days[0].Exercises[0].SetDetails
	if !sets[0].IsCompleted || sets[1].IsCompleted {
		t.Errorf("sets = %+v", sets)
	}

	if err := c.ToggleSet(ctx, "supino", "s1"); err != nil {
		t.Fatalf("ToggleSet back: %v", err)
	}
	if len(timer.starts) != 1 {
		t.Errorf("starts = %d after uncheck, want 1", len(timer.starts))
	}
	if err := c.ToggleSet(ctx, "supino", "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown set err = %v, want ErrNotFound", err)
	}
}

// TestAddExerciseWithoutPlan verifies the user-facing error and that nothing
// is written.
func TestAddExerciseWithoutPlan(t *testing.T) {
	store := existingUser()
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	if err := c.OpenLibrary(); err != nil {
		t.Fatal(err)
	}
	lib := c.Library()

	err := c.AddExerciseFromLibrary(context.Background(), lib[0].ID)
	if !errors.Is(err, ErrNoActivePlan) {
		t.Errorf("err = %v, want ErrNoActivePlan", err)
	}
	if c.Snapshot().Notice == "" {
		t.Error("expected a notice")
	}
	if store.count("SavePlan") != 0 {
		t.Errorf("calls = %v, want no plan writes", store.calls)
	}
}

// TestAddExerciseFeminineBaseline runs the "Rosca Direta" scenario through the
// controller on the selected day.
func TestAddExerciseFeminineBaseline(t *testing.T) {
	store := existingUser(pushPlan("p1"))
	store.profile.Preferences.Gender = "Feminino"
	store.library = []models.LibraryExercise{{ID: "b1", Name: "Rosca Direta", MuscleGroup: "Bíceps"}}
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	ctx := context.Background()

	if err := c.SetDay(5); err != nil {
		t.Fatal(err)
	}
	if err := c.OpenLibrary(); err != nil {
		t.Fatal(err)
	}
	if err := c.AddExerciseFromLibrary(ctx, "b1"); err != nil {
		t.Fatalf("AddExerciseFromLibrary: %v", err)
	}
	day := c.Snapshot().ActivePlan.Days[1]
	if len(day.Exercises) != 1 {
		t.Fatalf("day B exercises = %d, want 1", len(day.Exercises))
	}
	ex := day.Exercises[0]
	if ex.Name != "Rosca Direta" || ex.InitialWeight != "5kg" {
		t.Errorf("exercise = %+v", ex)
	}
	for _, s := range ex.SetDetails {
		if s.Weight != "5kg" {
			t.Errorf("set weight = %q, want 5kg", s.Weight)
		}
	}
}

// TestDeleteActivePlanFallsBack verifies resolution moves to the first
// remaining plan without clearing the stored reference.
func TestDeleteActivePlanFallsBack(t *testing.T) {
	store := existingUser(pushPlan("p1"), pushPlan("p2"))
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	ctx := context.Background()
	if err := c.GoToDashboard(); err != nil {
		t.Fatal(err)
	}

	if err := c.DeletePlan(ctx, "p1"); err != nil {
		t.Fatalf("DeletePlan: %v", err)
	}
	s := c.Snapshot()
	if s.ActivePlan == nil || s.ActivePlan.ID != "p2" {
		t.Errorf("active = %+v, want p2", s.ActivePlan)
	}
	if s.Profile.ActivePlanID != "p1" {
		t.Errorf("activePlanId = %q, want dangling p1", s.Profile.ActivePlanID)
	}

	if err := c.DeletePlan(ctx, "p2"); err != nil {
		t.Fatal(err)
	}
	if s := c.Snapshot(); s.ActivePlan != nil {
		t.Errorf("active = %+v, want nil", s.ActivePlan)
	}
	if err := c.DeletePlan(ctx, "p2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

// TestReplaceFlow verifies both phases and position preservation.
func TestReplaceFlow(t *testing.T) {
	alts := []models.Exercise{{ID: "alt1", Name: "Crossover"}, {ID: "alt2", Name: "Peck Deck"}}
	c := newTestController(t, existingUser(pushPlan("p1")), &fakeGen{alts: alts}, &fakeTimer{}, false)
	startSignedIn(t, c)
	ctx := context.Background()

	if err := c.StartReplace(ctx, "cruci"); err != nil {
		t.Fatalf("StartReplace: %v", err)
	}
	r := c.Snapshot().Replace
	if r == nil || r.Loading || r.ExerciseID != "cruci" || len(r.Alternatives) != 2 {
		t.Fatalf("replace = %+v", r)
	}

	if err := c.SelectAlternative(ctx, "alt2"); err != nil {
		t.Fatalf("SelectAlternative: %v", err)
	}
	s := c.Snapshot()
	if s.Replace != nil {
		t.Error("replace not cleared")
	}
	exs := s.ActivePlan.Days[0].Exercises
	if exs[0].ID != "supino" || exs[1].ID != "alt2" || exs[2].ID != "triceps" {
		t.Errorf("order = %s %s %s", exs[0].ID, exs[1].ID, exs[2].ID)
	}
}

// TestReplaceFailure verifies a failed lookup keeps the plan and the target.
func TestReplaceFailure(t *testing.T) {
	gen := &fakeGen{err: &generate.Error{Stage: generate.StageRequest, Err: errors.New("offline")}}
	store := existingUser(pushPlan("p1"))
	c := newTestController(t, store, gen, &fakeTimer{}, false)
	startSignedIn(t, c)

	if err := c.StartReplace(context.Background(), "cruci"); !generate.IsFailure(err) {
		t.Errorf("err = %v, want generation failure", err)
	}
	s := c.Snapshot()
	if s.Notice == "" || s.Replace == nil || s.Replace.ExerciseID != "cruci" || s.Replace.Loading {
		t.Errorf("notice = %q replace = %+v", s.Notice, s.Replace)
	}
	if store.count("SavePlan") != 0 {
		t.Error("plan written after failed lookup")
	}
	c.CancelReplace()
	if c.Snapshot().Replace != nil {
		t.Error("cancel did not clear replace")
	}
}

// TestFinishDay verifies the session is derived, prepended, persisted and the
// history opened.
func TestFinishDay(t *testing.T) {
	store := existingUser(pushPlan("p1"))
	store.history = []models.Session{{ID: "older"}}
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	ctx := context.Background()
	_ = c.ToggleSet(ctx, "supino", "s1")
	_ = c.ToggleSet(ctx, "supino", "s2")

	if err := c.FinishDay(ctx); err != nil {
		t.Fatalf("FinishDay: %v", err)
	}
	s := c.Snapshot()
	if s.View != ViewHistory {
		t.Errorf("view = %s, want history", s.View)
	}
	if len(s.History) != 2 || s.History[1].ID != "older" {
		t.Fatalf("history = %+v", s.History)
	}
	got := s.History[0]
	if got.TotalSets != 9 || got.CompletedSets != 2 || got.ExerciseCount != 3 || got.TotalVolume != 1200 {
		t.Errorf("session = %+v", got)
	}
	if s.Rest != nil {
		t.Error("rest timer still running after finish")
	}
	if store.count("SaveSession") != 1 {
		t.Errorf("calls = %v", store.calls)
	}
}

// TestOverlayReturn verifies settings and library resume the view they were
// opened from and history always returns to the dashboard.
func TestOverlayReturn(t *testing.T) {
	c := newTestController(t, existingUser(pushPlan("p1")), &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)

	steps := []struct {
		name string
		do   func() error
		want View
	}{
		{"settings from workout", c.OpenSettings, ViewSettings},
		{"back", c.Back, ViewWorkout},
		{"library from workout", c.OpenLibrary, ViewLibrary},
		{"back", c.Back, ViewWorkout},
		{"dashboard", c.GoToDashboard, ViewDashboard},
		{"library from dashboard", c.OpenLibrary, ViewLibrary},
		{"back", c.Back, ViewDashboard},
		{"start workout", c.StartWorkout, ViewWorkout},
		{"history", c.OpenHistory, ViewHistory},
		{"back", c.Back, ViewDashboard},
	}
	for _, st := range steps {
		if err := st.do(); err != nil {
			t.Fatalf("%s: %v", st.name, err)
		}
		wantView(t, c, st.want)
	}
}

// TestInvalidTransition verifies actions outside their view are rejected
// without changing state.
func TestInvalidTransition(t *testing.T) {
	c := newTestController(t, existingUser(pushPlan("p1")), &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)

	if err := c.Back(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Back from workout = %v, want ErrInvalidTransition", err)
	}
	if err := c.ClearHistory(context.Background()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("ClearHistory from workout = %v", err)
	}
	wantView(t, c, ViewWorkout)
}

// TestStartWorkoutWithoutPlan verifies onboarding is offered instead.
func TestStartWorkoutWithoutPlan(t *testing.T) {
	c := newTestController(t, existingUser(), &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	if err := c.StartWorkout(); err != nil {
		t.Fatal(err)
	}
	wantView(t, c, ViewOnboarding)
}

// TestCreateEmptyPlan verifies numbering, activation and write order.
func TestCreateEmptyPlan(t *testing.T) {
	store := existingUser(pushPlan("p1"))
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	_ = c.GoToDashboard()

	if err := c.CreateEmptyPlan(context.Background()); err != nil {
		t.Fatalf("CreateEmptyPlan: %v", err)
	}
	s := c.Snapshot()
	if s.View != ViewWorkout || s.ActivePlan.Name != "Treino Manual 2" {
		t.Errorf("view = %s active = %q", s.View, s.ActivePlan.Name)
	}
	if store.calls[0] != "SaveProfile" {
		t.Errorf("calls = %v, want profile first", store.calls)
	}
}

// TestRemoteErrorKeepsLocalState verifies a mirror failure is reported but the
// mutation stands.
func TestRemoteErrorKeepsLocalState(t *testing.T) {
	store := existingUser(pushPlan("p1"))
	store.saveErr = &persist.RemoteError{Kind: persist.KindPlans, Op: "save", Err: errors.New("503")}
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)

	err := c.RemoveExercise(context.Background(), "triceps")
	if !persist.IsRemoteError(err) {
		t.Errorf("err = %v, want RemoteError", err)
	}
	if n := len(c.Snapshot().ActivePlan.Days[0].Exercises); n != 2 {
		t.Errorf("exercises = %d, want 2", n)
	}
}

// TestSignOutDiscardsGeneration verifies a result arriving after sign-out is
// not applied.
func TestSignOutDiscardsGeneration(t *testing.T) {
	store := &fakeStore{}
	gen := &fakeGen{
		plan:    models.Plan{ID: "late", Days: []models.Day{{}}},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := newTestController(t, store, gen, &fakeTimer{}, false)
	startSignedIn(t, c)

	done := make(chan error, 1)
	go func() { done <- c.CompleteOnboarding(context.Background(), models.DefaultPreferences()) }()
	<-gen.started
	wantView(t, c, ViewGenerating)

	if err := c.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	close(gen.release)
	if err := <-done; !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("err = %v, want ErrNotSignedIn", err)
	}
	s := c.Snapshot()
	if s.View != ViewAuth || len(s.Plans) != 0 || s.Identity != nil {
		t.Errorf("state = %+v", s)
	}
	if len(store.calls) != 0 {
		t.Errorf("calls = %v, want none", store.calls)
	}
}

// TestToggleFavoriteSymmetric verifies add then remove restores the set.
func TestToggleFavoriteSymmetric(t *testing.T) {
	store := existingUser()
	store.library = []models.LibraryExercise{{ID: "x", Name: "X"}}
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	ctx := context.Background()

	if err := c.ToggleFavorite(ctx, "x"); err != nil {
		t.Fatal(err)
	}
	s := c.Snapshot()
	if !s.Profile.IsFavorite("x") || len(s.Favorites) != 1 {
		t.Errorf("favorites = %v / %v", s.Profile.FavoriteExerciseIDs, s.Favorites)
	}
	if err := c.ToggleFavorite(ctx, "x"); err != nil {
		t.Fatal(err)
	}
	if ids := c.Snapshot().Profile.FavoriteExerciseIDs; len(ids) != 0 {
		t.Errorf("favorites = %v, want empty", ids)
	}
}

// TestUpdateMetrics verifies partial merge and the update stamp.
func TestUpdateMetrics(t *testing.T) {
	c := newTestController(t, existingUser(), &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	w, waist := 80.5, 90.0

	if err := c.UpdateMetrics(context.Background(), MetricsUpdate{Weight: &w, Waist: &waist}); err != nil {
		t.Fatal(err)
	}
	m := c.Snapshot().Profile.Metrics
	if m.Weight != 80.5 || m.Height != 175 || m.Waist == nil || *m.Waist != 90 {
		t.Errorf("metrics = %+v", m)
	}
	if m.LastUpdated == nil || m.LastUpdated.IsZero() {
		t.Error("lastUpdated not stamped")
	}
}

// TestAdjustRestPersists verifies the adjusted base becomes the exercise rest.
func TestAdjustRestPersists(t *testing.T) {
	timer := &fakeTimer{}
	c := newTestController(t, existingUser(pushPlan("p1")), &fakeGen{}, timer, false)
	startSignedIn(t, c)
	ctx := context.Background()

	if err := c.AdjustRest(ctx, 15); !errors.Is(err, ErrNotFound) {
		t.Errorf("AdjustRest without timer = %v, want ErrNotFound", err)
	}
	_ = c.ToggleSet(ctx, "supino", "s1")
	if err := c.AdjustRest(ctx, 15); err != nil {
		t.Fatalf("AdjustRest: %v", err)
	}
	if rest := c.Snapshot().ActivePlan.Days[0].Exercises[0].Rest; rest != 105 {
		t.Errorf("rest = %d, want 105", rest)
	}
	c.StopRest()
	if c.Snapshot().Rest != nil {
		t.Error("rest still running after StopRest")
	}
}

// TestSaveSettingsReturns verifies a plain save keeps plans and goes back.
func TestSaveSettingsReturns(t *testing.T) {
	store := existingUser(pushPlan("p1"))
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	if err := c.OpenSettings(); err != nil {
		t.Fatal(err)
	}
	prefs := models.DefaultPreferences()
	prefs.WeeklyFrequency = 2

	if err := c.SaveSettings(context.Background(), prefs, false); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	s := c.Snapshot()
	if s.View != ViewWorkout || s.Profile.Preferences.WeeklyFrequency != 2 || len(s.Plans) != 1 {
		t.Errorf("view = %s prefs = %+v plans = %d", s.View, s.Profile.Preferences, len(s.Plans))
	}
}

// TestClearHistory verifies history is emptied from the history view.
func TestClearHistory(t *testing.T) {
	store := existingUser()
	store.history = []models.Session{{ID: "a"}}
	c := newTestController(t, store, &fakeGen{}, &fakeTimer{}, false)
	startSignedIn(t, c)
	_ = c.OpenHistory()

	if err := c.ClearHistory(context.Background()); err != nil {
		t.Fatal(err)
	}
	if h := c.Snapshot().History; len(h) != 0 {
		t.Errorf("history = %+v", h)
	}
	if store.count("ClearHistory") != 1 {
		t.Errorf("calls = %v", store.calls)
	}
}
