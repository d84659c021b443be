package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Qadosh7/Fit-Flow/internal/app"
	"github.com/go-chi/chi/v5"
	"tailscale.com/client/tailscale/apitype"
)

// WhoIser resolves the tailnet identity behind a remote address. The tsnet
// local client satisfies it.
type WhoIser interface {
	WhoIs(ctx context.Context, remoteAddr string) (*apitype.WhoIsResponse, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	ctrl   *app.Controller
	whois  WhoIser
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the API unauthenticated.
func New(ctrl *app.Controller, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		ctrl:   ctrl,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetTailscale enables tailnet identity lookup for every request.
func (s *Server) SetTailscale(w WhoIser) {
	s.whois = w
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Use(s.identify)

		r.Get("/me", s.handleMe)
		r.Get("/state", s.handleState)

		r.Post("/auth/signin", s.handleSignIn)
		r.Post("/auth/guest", s.handleGuest)
		r.Post("/auth/signout", s.handleSignOut)

		r.Post("/onboarding", s.handleOnboarding)
		r.Put("/settings", s.handleSettings)

		r.Post("/plans", s.handleCreatePlan)
		r.Post("/plans/{id}/select", s.handleSelectPlan)
		r.Delete("/plans/{id}", s.handleDeletePlan)

		r.Post("/workout/day", s.handleSetDay)
		r.Post("/workout/finish", s.handleFinish)

		r.Patch("/exercises/{ex}/sets/{set}", s.handleUpdateSet)
		r.Post("/exercises/{ex}/sets/{set}/toggle", s.handleToggleSet)
		r.Delete("/exercises/{ex}", s.handleRemoveExercise)
		r.Post("/exercises/{ex}/replace", s.handleStartReplace)
		r.Post("/replace/select", s.handleSelectAlternative)
		r.Delete("/replace", s.handleCancelReplace)

		r.Get("/library", s.handleLibrary)
		r.Post("/library/{id}/add", s.handleAddFromLibrary)
		r.Post("/library/{id}/favorite", s.handleToggleFavorite)

		r.Delete("/history", s.handleClearHistory)

		r.Put("/profile/metrics", s.handleMetrics)
		r.Patch("/profile", s.handleProfile)

		r.Post("/timer/adjust", s.handleAdjustRest)
		r.Delete("/timer", s.handleStopRest)

		r.Post("/navigate/{action}", s.handleNavigate)
	})
}

// identify attaches the caller identity, from the tailnet when available.
func (s *Server) identify(next http.Handler) http.Handler {
	dev := DevIdentity(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.whois == nil {
			dev.ServeHTTP(w, r)
			return
		}
		TailscaleIdentity(s.whois, s.log)(next).ServeHTTP(w, r)
	})
}
