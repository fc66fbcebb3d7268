package insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"context"

	"github.com/plantworks/facilityops/internal"
	"github.com/plantworks/facilityops/internal/inventory"
	"github.com/plantworks/facilityops/internal/machine"
	"github.com/plantworks/facilityops/internal/worklog"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Enabled bool
}

// Client talks to the analysis service over HTTP. A disabled or
// unconfigured client returns ErrInsightsOff from every call.
type Client struct {
	config Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(config Config, logger *slog.Logger) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *Client) available() bool {
	return c.config.Enabled && c.config.BaseURL != "" && c.config.APIKey != ""
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insights request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create insights request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("insights service unreachable", "path", path, "error", err)
		return nil, internal.ErrInsightsOff.WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("insights service returned error", "path", path, "status", resp.StatusCode)
		return nil, internal.ErrInsightsOff
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) InventoryInsights(ctx context.Context, items []inventory.Item, machines []machine.Machine) (string, error) {
	if !c.available() {
		return "", internal.ErrInsightsOff
	}

	raw, err := c.post(ctx, "/v1/insights/inventory", map[string]interface{}{
		"inventory": items,
		"machines":  machines,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", internal.ErrInsightsOff.WithCause(err)
	}
	return out.Text, nil
}

func (c *Client) AnalyzeEfficiency(ctx context.Context, logs []worklog.WorkLog) (*AnalysisResult, error) {
	if !c.available() {
		return nil, internal.ErrInsightsOff
	}

	raw, err := c.post(ctx, "/v1/insights/efficiency", map[string]interface{}{
		"logs": RecentWindow(logs),
	})
	if err != nil {
		return nil, err
	}

	// Some backends wrap the JSON in a markdown fence despite being
	// asked not to.
	text := strings.TrimSpace(string(raw))
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var result AnalysisResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		c.logger.Warn("insights response was not valid JSON", "error", err)
		return nil, internal.ErrInsightsOff.WithCause(err)
	}
	return &result, nil
}
