package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent REST endpoint with a JSON
// response schema.
type GeminiClient struct {
	Model   string
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewGeminiClient returns a client for model.
func NewGeminiClient(model, apiKey string) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{Model: model, APIKey: apiKey, BaseURL: geminiBaseURL, HTTP: http.DefaultClient}
}

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Plan requests a full multi-day plan.
func (c *GeminiClient) Plan(ctx context.Context, prefs models.Preferences) ([]RawDay, error) {
	var out struct {
		Days []RawDay `json:"days"`
	}
	schema := object(map[string]any{
		"days": array(object(map[string]any{
			"label":       str(),
			"description": str(),
			"exercises":   array(exerciseSchema()),
		}, "label", "description", "exercises")),
	}, "days")
	if err := c.generate(ctx, planPrompt(prefs), schema, &out); err != nil {
		return nil, err
	}
	return out.Days, nil
}

// Alternatives requests substitutes for ex.
func (c *GeminiClient) Alternatives(ctx context.Context, ex models.Exercise, prefs models.Preferences) ([]RawExercise, error) {
	var out struct {
		Alternatives []RawExercise `json:"alternatives"`
	}
	schema := object(map[string]any{
		"alternatives": array(exerciseSchema()),
	}, "alternatives")
	if err := c.generate(ctx, alternativesPrompt(ex, prefs), schema, &out); err != nil {
		return nil, err
	}
	return out.Alternatives, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, schema map[string]any, out any) error {
	if c.APIKey == "" {
		return &Error{Stage: StageRequest, Err: fmt.Errorf("gemini api key not configured")}
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   schema,
		},
	})
	if err != nil {
		return &Error{Stage: StageRequest, Err: err}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.BaseURL, "/"), url.PathEscape(c.Model), url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &Error{Stage: StageRequest, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &Error{Stage: StageRequest, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Error{Stage: StageStatus, Err: fmt.Errorf("gemini returned %s", resp.Status)}
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return &Error{Stage: StageDecode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return &Error{Stage: StageEmpty, Err: fmt.Errorf("gemini returned no candidates")}
	}

	text := stripFences(gr.Candidates[0].Content.Parts[0].Text)
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &Error{Stage: StageDecode, Err: fmt.Errorf("decoding generated content: %w", err)}
	}
	return nil
}

// stripFences removes a markdown code fence around a JSON payload.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func exerciseSchema() map[string]any {
	return object(map[string]any{
		"name":          str(),
		"englishName":   str(),
		"muscleGroup":   str(),
		"sets":          num(),
		"reps":          str(),
		"rest":          num(),
		"initialWeight": str(),
		"imageUrl":      str(),
		"executionTip":  str(),
	}, "name", "englishName", "muscleGroup", "sets", "reps", "rest", "initialWeight", "imageUrl", "executionTip")
}

func object(props map[string]any, required ...string) map[string]any {
	return map[string]any{"type": "OBJECT", "properties": props, "required": required}
}

func array(items map[string]any) map[string]any {
	return map[string]any{"type": "ARRAY", "items": items}
}

func str() map[string]any { return map[string]any{"type": "STRING"} }
func num() map[string]any { return map[string]any{"type": "NUMBER"} }
