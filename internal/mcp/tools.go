package mcp

import (
	"context"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

const defaultHistoryLimit = 10

// --- Tool definitions ---

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Retrieve the athlete profile: level, XP, body metrics, training preferences and favorite exercises."),
)

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List workout plans, newest first, with day count and which one is active."),
)

var toolGetActivePlan = mcp.NewTool("get_active_plan",
	mcp.WithDescription("Retrieve the active workout plan with every day, exercise and set. Falls back to the first plan when the stored active plan no longer exists."),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("Retrieve finished workout sessions, newest first, with per-exercise max load and volume."),
	mcp.WithNumber("limit", mcp.Description("Maximum sessions to return. Defaults to 10.")),
)

var toolListLibrary = mcp.NewTool("list_library",
	mcp.WithDescription("List the exercise library with muscle group, equipment, difficulty and execution tips."),
	mcp.WithString("muscle_group", mcp.Description("Filter by muscle group"), mcp.Enum(models.MuscleGroups...)),
	mcp.WithBoolean("favorites_only", mcp.Description("Only return the athlete's favorite exercises")),
)

// planSummary is one row of list_plans.
type planSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsAI      bool      `json:"is_ai"`
	CreatedAt time.Time `json:"created_at"`
	Days      int       `json:"days"`
	Exercises int       `json:"exercises"`
	Active    bool      `json:"active"`
}

// --- Tool handlers ---

func (h *handlers) getProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.Profile(ctx, h.who(ctx))
	if err != nil {
		h.log.Error("mcp get_profile", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if p == nil {
		return mcp.NewToolResultError("no profile found; finish onboarding first"), nil
	}
	return jsonResult(p)
}

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	who := h.who(ctx)
	plans, err := h.ds.Plans(ctx, who)
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	activeID := ""
	if active := models.ActivePlan(plans, h.activePlanID(ctx, who)); active != nil {
		activeID = active.ID
	}

	out := make([]planSummary, 0, len(plans))
	for _, p := range plans {
		n := 0
		for _, d := range p.Days {
			n += len(d.Exercises)
		}
		out = append(out, planSummary{
			ID:        p.ID,
			Name:      p.Name,
			IsAI:      p.IsAI,
			CreatedAt: p.CreatedAt,
			Days:      len(p.Days),
			Exercises: n,
			Active:    p.ID == activeID,
		})
	}
	return jsonResult(out)
}

func (h *handlers) getActivePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	who := h.who(ctx)
	plans, err := h.ds.Plans(ctx, who)
	if err != nil {
		h.log.Error("mcp get_active_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	active := models.ActivePlan(plans, h.activePlanID(ctx, who))
	if active == nil {
		return mcp.NewToolResultError("no workout plans yet"), nil
	}
	return jsonResult(active)
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", defaultHistoryLimit)
	if limit <= 0 {
		return mcp.NewToolResultError("limit must be positive"), nil
	}
	sessions, err := h.ds.History(ctx, h.who(ctx))
	if err != nil {
		h.log.Error("mcp get_history", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return jsonResult(sessions)
}

func (h *handlers) listLibrary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	who := h.who(ctx)
	lib, err := h.ds.Library(ctx, who)
	if err != nil {
		h.log.Error("mcp list_library", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	group := req.GetString("muscle_group", "")
	var favorite func(string) bool
	if req.GetBool("favorites_only", false) {
		p, err := h.ds.Profile(ctx, who)
		if err != nil {
			return mcp.NewToolResultError("query failed: " + err.Error()), nil
		}
		favorite = func(id string) bool { return p != nil && p.IsFavorite(id) }
	}

	out := make([]models.LibraryExercise, 0, len(lib))
	for _, ex := range lib {
		if group != "" && ex.MuscleGroup != group {
			continue
		}
		if favorite != nil && !favorite(ex.ID) {
			continue
		}
		out = append(out, ex)
	}
	return jsonResult(out)
}

// activePlanID is the profile's stored reference, empty when unknown.
func (h *handlers) activePlanID(ctx context.Context, identity string) string {
	p, err := h.ds.Profile(ctx, identity)
	if err != nil {
		h.log.Warn("mcp profile lookup failed", "error", err)
		return ""
	}
	if p == nil {
		return ""
	}
	return p.ActivePlanID
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
