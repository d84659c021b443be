package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Qadosh7/Fit-Flow/internal/app"
	"github.com/Qadosh7/Fit-Flow/internal/models"
)

// HTTPClient implements DataSource by calling the FitFlow REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale). The remote
// server answers for its signed-in user, so identity is ignored.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// may be empty.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) state(ctx context.Context) (*app.State, error) {
	var st app.State
	if err := c.get(ctx, "/api/v1/state", &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) Profile(ctx context.Context, _ string) (*models.Profile, error) {
	st, err := c.state(ctx)
	if err != nil {
		return nil, err
	}
	return st.Profile, nil
}

func (c *HTTPClient) Plans(ctx context.Context, _ string) ([]models.Plan, error) {
	st, err := c.state(ctx)
	if err != nil {
		return nil, err
	}
	return st.Plans, nil
}

func (c *HTTPClient) History(ctx context.Context, _ string) ([]models.Session, error) {
	st, err := c.state(ctx)
	if err != nil {
		return nil, err
	}
	return st.History, nil
}

func (c *HTTPClient) Library(ctx context.Context, _ string) ([]models.LibraryExercise, error) {
	var lib []models.LibraryExercise
	if err := c.get(ctx, "/api/v1/library", &lib); err != nil {
		return nil, err
	}
	return lib, nil
}
