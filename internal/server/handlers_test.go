package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Qadosh7/Fit-Flow/internal/app"
	"github.com/Qadosh7/Fit-Flow/internal/generate"
	"github.com/Qadosh7/Fit-Flow/internal/localstore"
	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
)

type stubGen struct {
	err error
}

func (g stubGen) GeneratePlan(ctx context.Context, prefs models.Preferences) (models.Plan, error) {
	if g.err != nil {
		return models.Plan{}, g.err
	}
	return models.Plan{ID: "ai", Name: "Treino IA - " + string(prefs.Goal), IsAI: true, Days: []models.Day{{
		Label: "A",
		Exercises: []models.Exercise{{
			ID: "e1", Name: "Supino", Sets: 1, Reps: "10", Rest: 45,
			SetDetails: []models.SetDetail{{ID: "s1", Weight: "20kg", Reps: "10"}},
		}},
	}}}, nil
}

func (g stubGen) Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]models.Exercise, error) {
	return nil, g.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer wires a guest controller over a real local cache.
func newTestServer(t *testing.T, gen stubGen, apiKey string) *Server {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	log := quietLogger()
	facade := persist.New(store, nil, 0, log)
	ctrl, err := app.New(facade, gen, log, app.Options{})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	if err := ctrl.Start(context.Background(), nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return New(ctrl, apiKey, log)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) app.State {
	t.Helper()
	var st app.State
	if err := json.NewDecoder(rec.Body).Decode(&st); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return st
}

// TestHandleMeDefault verifies the /api/v1/me endpoint returns the dev user
// identity when no Tailscale lookup is configured.
func TestHandleMeDefault(t *testing.T) {
	s := newTestServer(t, stubGen{}, "")
	rec := do(t, s, http.MethodGet, "/api/v1/me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "local" || info.Tailnet {
		t.Errorf("info = %+v, want local dev user", info)
	}
}

// TestOnboardingToWorkout drives the guest from onboarding through a set
// toggle and checks the rest countdown appears.
func TestOnboardingToWorkout(t *testing.T) {
	s := newTestServer(t, stubGen{}, "")

	st := decodeState(t, do(t, s, http.MethodGet, "/api/v1/state", ""))
	if st.View != app.ViewOnboarding || !st.Guest {
		t.Fatalf("view = %s guest = %v, want onboarding guest", st.View, st.Guest)
	}

	rec := do(t, s, http.MethodPost, "/api/v1/onboarding", `{"goal":"Força","weeklyFrequency":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("onboarding status = %d: %s", rec.Code, rec.Body.String())
	}
	st = decodeState(t, rec)
	if st.View != app.ViewWorkout || st.ActivePlan == nil || st.ActivePlan.Name != "Treino IA - Força" {
		t.Fatalf("view = %s active = %+v", st.View, st.ActivePlan)
	}

	rec = do(t, s, http.MethodPost, "/api/v1/exercises/e1/sets/s1/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", rec.Code)
	}
	st = decodeState(t, rec)
	if !st.ActivePlan.Days[0].Exercises[0].SetDetails[0].IsCompleted {
		t.Error("set not completed")
	}
	if st.Rest == nil || st.Rest.Seconds != 45 {
		t.Errorf("rest = %+v, want 45s countdown", st.Rest)
	}

	rec = do(t, s, http.MethodDelete, "/api/v1/timer", "")
	if st := decodeState(t, rec); st.Rest != nil {
		t.Error("rest still running after DELETE /timer")
	}
}

// TestStatusMapping verifies controller errors map to HTTP statuses.
func TestStatusMapping(t *testing.T) {
	s := newTestServer(t, stubGen{}, "")
	do(t, s, http.MethodPost, "/api/v1/onboarding", `{}`)

	tests := []struct {
		name, method, path, body string
		want                     int
	}{
		{"add outside library", http.MethodPost, "/api/v1/library/p1/add", "", http.StatusConflict},
		{"unknown set", http.MethodPost, "/api/v1/exercises/e1/sets/zz/toggle", "", http.StatusNotFound},
		{"unknown action", http.MethodPost, "/api/v1/navigate/nowhere", "", http.StatusNotFound},
		{"bad json", http.MethodPost, "/api/v1/workout/day", "{", http.StatusBadRequest},
		{"empty sign in", http.MethodPost, "/api/v1/auth/signin", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		rec := do(t, s, tt.method, tt.path, tt.body)
		if rec.Code != tt.want {
			t.Errorf("%s: status = %d, want %d", tt.name, rec.Code, tt.want)
		}
	}
}

// TestGenerationFailure verifies a failed generation answers 502 with the
// dashboard state and a notice.
func TestGenerationFailure(t *testing.T) {
	s := newTestServer(t, stubGen{err: &generate.Error{Stage: generate.StageStatus, Err: errors.New("quota")}}, "")

	rec := do(t, s, http.MethodPost, "/api/v1/onboarding", `{}`)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var body struct {
		Error string    `json:"error"`
		State app.State `json:"state"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.State.View != app.ViewDashboard || body.State.Notice == "" || body.Error == "" {
		t.Errorf("body = %+v", body)
	}
}

// TestLibraryFlow verifies filtering and adding from the library overlay.
func TestLibraryFlow(t *testing.T) {
	s := newTestServer(t, stubGen{}, "")
	do(t, s, http.MethodPost, "/api/v1/onboarding", `{}`)

	rec := do(t, s, http.MethodGet, "/api/v1/library?muscle_group=Peito", "")
	var lib []models.LibraryExercise
	if err := json.NewDecoder(rec.Body).Decode(&lib); err != nil {
		t.Fatal(err)
	}
	if len(lib) != 3 {
		t.Errorf("Peito exercises = %d, want 3", len(lib))
	}

	if rec := do(t, s, http.MethodPost, "/api/v1/navigate/library", ""); rec.Code != http.StatusOK {
		t.Fatalf("navigate status = %d", rec.Code)
	}
	rec = do(t, s, http.MethodPost, "/api/v1/library/p1/add", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d: %s", rec.Code, rec.Body.String())
	}
	st := decodeState(t, rec)
	if n := len(st.ActivePlan.Days[0].Exercises); n != 2 {
		t.Errorf("exercises = %d, want 2", n)
	}

	st = decodeState(t, do(t, s, http.MethodPost, "/api/v1/navigate/back", ""))
	if st.View != app.ViewWorkout {
		t.Errorf("view = %s, want workout", st.View)
	}
}

// TestAPIKeyRequired verifies the API is closed when a key is configured.
func TestAPIKeyRequired(t *testing.T) {
	s := newTestServer(t, stubGen{}, "secret")

	if rec := do(t, s, http.MethodGet, "/api/v1/state", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong key status = %d, want 403", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid key status = %d, want 200", rec.Code)
	}
}

// TestSignInWithTailnetIdentity verifies an empty sign-in body falls back to
// the WhoIs login.
func TestSignInWithTailnetIdentity(t *testing.T) {
	s := newTestServer(t, stubGen{}, "")
	s.SetTailscale(fakeWhoIs{login: "alice@example.com", name: "Alice"})

	rec := do(t, s, http.MethodPost, "/api/v1/auth/signin", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	st := decodeState(t, rec)
	if st.Identity == nil || st.Identity.ID != "alice@example.com" || st.Guest {
		t.Errorf("identity = %+v guest = %v", st.Identity, st.Guest)
	}
	if st.View != app.ViewOnboarding {
		t.Errorf("view = %s, want onboarding", st.View)
	}
}

// TestSignInRejectsOtherTailnetUser verifies a tailnet caller cannot sign in
// as a different identity.
func TestSignInRejectsOtherTailnetUser(t *testing.T) {
	s := newTestServer(t, stubGen{}, "")
	s.SetTailscale(fakeWhoIs{login: "alice@example.com", name: "Alice"})

	rec := do(t, s, http.MethodPost, "/api/v1/auth/signin", `{"id":"bob@example.com"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", rec.Code, rec.Body.String())
	}
	st := decodeState(t, do(t, s, http.MethodGet, "/api/v1/state", ""))
	if st.Identity == nil || st.Identity.ID != models.GuestID {
		t.Errorf("identity = %+v, want guest unchanged", st.Identity)
	}

	rec = do(t, s, http.MethodPost, "/api/v1/auth/signin", `{"id":"alice@example.com"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("own login status = %d: %s", rec.Code, rec.Body.String())
	}
	if st := decodeState(t, rec); st.Identity == nil || st.Identity.ID != "alice@example.com" {
		t.Errorf("identity = %+v, want alice", st.Identity)
	}
}
