package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Qadosh7/Fit-Flow/internal/app"
	"github.com/Qadosh7/Fit-Flow/internal/generate"
	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/Qadosh7/Fit-Flow/internal/persist"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.ctrl.Snapshot())
}

type signInRequest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// handleSignIn uses the posted identity. Tailnet requests always sign in as
// the WhoIs login and may not name anyone else.
func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if info := userInfoFromContext(r); info.Tailnet {
		if req.ID != "" && req.ID != info.Login {
			s.respond(w, r, app.ErrAuthentication)
			return
		}
		req.ID, req.Email = info.Login, info.Login
	}
	s.respond(w, r, s.ctrl.SignIn(r.Context(), app.Identity{ID: req.ID, Email: req.Email}))
}

func (s *Server) handleGuest(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.EnterGuest(r.Context()))
}

func (s *Server) handleSignOut(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.SignOut())
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	prefs := models.DefaultPreferences()
	if !decode(w, r, &prefs) {
		return
	}
	s.respond(w, r, s.ctrl.CompleteOnboarding(r.Context(), prefs))
}

type settingsRequest struct {
	Preferences models.Preferences `json:"preferences"`
	Regenerate  bool               `json:"regenerate"`
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	req := settingsRequest{Preferences: models.DefaultPreferences()}
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.SaveSettings(r.Context(), req.Preferences, req.Regenerate))
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.CreateEmptyPlan(r.Context()))
}

func (s *Server) handleSelectPlan(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.SelectPlan(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.DeletePlan(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handleSetDay(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.SetDay(req.Index))
}

func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.FinishDay(r.Context()))
}

func (s *Server) handleUpdateSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weight *string `json:"weight"`
		Reps   *string `json:"reps"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.UpdateSet(r.Context(), chi.URLParam(r, "ex"), chi.URLParam(r, "set"), req.Weight, req.Reps))
}

func (s *Server) handleToggleSet(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.ToggleSet(r.Context(), chi.URLParam(r, "ex"), chi.URLParam(r, "set")))
}

func (s *Server) handleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.RemoveExercise(r.Context(), chi.URLParam(r, "ex")))
}

func (s *Server) handleStartReplace(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.StartReplace(r.Context(), chi.URLParam(r, "ex")))
}

func (s *Server) handleSelectAlternative(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.SelectAlternative(r.Context(), req.ID))
}

func (s *Server) handleCancelReplace(w http.ResponseWriter, r *http.Request) {
	s.ctrl.CancelReplace()
	s.respond(w, r, nil)
}

func (s *Server) handleLibrary(w http.ResponseWriter, r *http.Request) {
	lib := s.ctrl.Library()
	group := r.URL.Query().Get("muscle_group")
	if group == "" {
		writeJSON(w, http.StatusOK, lib)
		return
	}
	out := make([]models.LibraryExercise, 0, len(lib))
	for _, ex := range lib {
		if ex.MuscleGroup == group {
			out = append(out, ex)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddFromLibrary(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.AddExerciseFromLibrary(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.ToggleFavorite(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, s.ctrl.ClearHistory(r.Context()))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	var req app.MetricsUpdate
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.UpdateMetrics(r.Context(), req))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var req app.ProfileUpdate
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.UpdateProfile(r.Context(), req))
}

func (s *Server) handleAdjustRest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if !decode(w, r, &req) {
		return
	}
	s.respond(w, r, s.ctrl.AdjustRest(r.Context(), req.Delta))
}

func (s *Server) handleStopRest(w http.ResponseWriter, r *http.Request) {
	s.ctrl.StopRest()
	s.respond(w, r, nil)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	actions := map[string]func() error{
		"settings":  s.ctrl.OpenSettings,
		"library":   s.ctrl.OpenLibrary,
		"history":   s.ctrl.OpenHistory,
		"dashboard": s.ctrl.GoToDashboard,
		"workout":   s.ctrl.StartWorkout,
		"reset":     s.ctrl.Reset,
		"back":      s.ctrl.Back,
	}
	action := chi.URLParam(r, "action")
	fn, ok := actions[action]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown action " + action})
		return
	}
	s.respond(w, r, fn())
}

// respond writes the snapshot after an action. A mirror failure still
// answers 200 because the local write went through.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil && !persist.IsRemoteError(err) {
		s.log.Debug("action rejected", "path", r.URL.Path, "error", err)
		writeJSON(w, statusFor(err), map[string]any{
			"error": err.Error(),
			"state": s.ctrl.Snapshot(),
		})
		return
	}
	if err != nil {
		s.log.Warn("remote sync failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, http.StatusOK, s.ctrl.Snapshot())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, app.ErrNoActivePlan), errors.Is(err, app.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, app.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, app.ErrAuthentication), errors.Is(err, app.ErrNotSignedIn):
		return http.StatusUnauthorized
	case generate.IsFailure(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
