package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
)

type weeklySummary struct {
	From          string   `json:"from"`
	Sessions      int      `json:"sessions"`
	CompletedSets int      `json:"completed_sets"`
	TotalSets     int      `json:"total_sets"`
	TotalVolume   float64  `json:"total_volume"`
	Days          []string `json:"days"`
}

func summarize(sessions []models.Session, since time.Time) weeklySummary {
	sum := weeklySummary{From: since.Format("2006-01-02"), Days: []string{}}
	for _, s := range sessions {
		if s.Date.Before(since) {
			continue
		}
		sum.Sessions++
		sum.CompletedSets += s.CompletedSets
		sum.TotalSets += s.TotalSets
		sum.TotalVolume += s.TotalVolume
		sum.Days = append(sum.Days, s.DayLabel)
	}
	return sum
}

func (h *handlers) weeklySummary(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	sessions, err := h.ds.History(ctx, h.who(ctx))
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return jsonContents(req.Params.URI, summarize(sessions, today.AddDate(0, 0, -6)))
}

func (h *handlers) muscleGroups(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, models.MuscleGroups)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
