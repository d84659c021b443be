package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const identityKey contextKey = iota

// WithIdentity returns a context scoped to the given profile id.
func WithIdentity(ctx context.Context, identity string) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// identityFromContext returns the profile id injected by the transport layer,
// or fallback.
func identityFromContext(ctx context.Context, fallback string) string {
	if id, ok := ctx.Value(identityKey).(string); ok && id != "" {
		return id
	}
	return fallback
}

// New creates an MCP server with all tools and resources registered. Tools
// answer for identity unless the request context carries another one.
func New(ds DataSource, identity, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitFlow", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitFlow training data server. Read the athlete profile, workout plans, finished sessions and the exercise library. Read-only."),
	)

	h := &handlers{ds: ds, identity: identity, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGetProfile, Handler: h.getProfile},
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
		server.ServerTool{Tool: toolGetActivePlan, Handler: h.getActivePlan},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolListLibrary, Handler: h.listLibrary},
	)

	s.AddResources(
		server.ServerResource{Resource: resWeeklySummary, Handler: h.weeklySummary},
		server.ServerResource{Resource: resMuscleGroups, Handler: h.muscleGroups},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds       DataSource
	identity string
	log      *slog.Logger
}

func (h *handlers) who(ctx context.Context) string {
	return identityFromContext(ctx, h.identity)
}

// --- Resource definitions ---

var resWeeklySummary = mcp.NewResource(
	"fitflow://weekly_summary",
	"Weekly Summary",
	mcp.WithResourceDescription("Sessions finished in the last 7 days with completed sets and total volume"),
	mcp.WithMIMEType("application/json"),
)

var resMuscleGroups = mcp.NewResource(
	"fitflow://muscle_groups",
	"Muscle Groups",
	mcp.WithResourceDescription("Muscle groups of the exercise library, in display order"),
	mcp.WithMIMEType("application/json"),
)
