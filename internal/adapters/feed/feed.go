// Package feed is the HTTP adapter for the upstream stats service. It
// exposes one method per upstream resource, decodes into domain model
// types, and reports per-resource metrics.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/rinkside/internal/domain/model"
	"github.com/okian/rinkside/pkg/logger"
	"github.com/okian/rinkside/pkg/metrics"
)

// Default client configuration.
const (
	defaultBaseURL = "https://stats.rinkside.dev/api"
	defaultTimeout = 10 * time.Second
)

// Client talks to the upstream feed. Construct with New; the zero
// value is not usable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a feed client with configuration options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger.Get().Named("feed"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Games lists the games available upstream.
func (c *Client) Games(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	if err := c.getJSON(ctx, "games", "/games", &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Events returns the raw event rows for a game.
func (c *Client) Events(ctx context.Context, gameID string) ([]model.Event, error) {
	var events []model.Event
	if err := c.getJSON(ctx, "events", "/games/"+gameID+"/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Teams returns the two team display names for a game.
func (c *Client) Teams(ctx context.Context, gameID string) ([]string, error) {
	var teams []string
	if err := c.getJSON(ctx, "teams", "/games/"+gameID+"/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// Players returns the distinct primary actors for a game.
func (c *Client) Players(ctx context.Context, gameID string) ([]string, error) {
	var players []string
	if err := c.getJSON(ctx, "players", "/games/"+gameID+"/players", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// TimeRange returns the min and max event clock for a game.
func (c *Client) TimeRange(ctx context.Context, gameID string) (model.TimeRange, error) {
	var tr model.TimeRange
	if err := c.getJSON(ctx, "time-range", "/games/"+gameID+"/time-range", &tr); err != nil {
		return model.TimeRange{}, err
	}
	return tr, nil
}

// Stats proxies the upstream aggregate stats document without
// interpreting it.
func (c *Client) Stats(ctx context.Context, gameID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "stats", "/games/"+gameID+"/stats", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// getJSON performs one GET and decodes the body. The resource label
// keys the per-resource metrics.
func (c *Client) getJSON(ctx context.Context, resource, path string, out any) error {
	start := time.Now()
	metrics.RecordFeedRequest(resource)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		metrics.RecordFeedError(resource)
		return fmt.Errorf("%w: build request for %s: %w", ErrUpstream, resource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordFeedError(resource)
		metrics.RecordErrorByComponent("feed", "request_error")
		c.logger.Error(ctx, "upstream request failed",
			logger.String("resource", resource),
			logger.Error(err),
		)
		return fmt.Errorf("%w: %s: %w", ErrUpstream, resource, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	metrics.RecordFeedRequestLatency(resource, float64(time.Since(start).Milliseconds()))

	if resp.StatusCode != http.StatusOK {
		metrics.RecordFeedError(resource)
		metrics.RecordErrorByComponent("feed", "status_error")
		c.logger.Warn(ctx, "upstream returned non-200",
			logger.String("resource", resource),
			logger.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: %s: status %d", ErrUpstream, resource, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.RecordFeedError(resource)
		metrics.RecordErrorByComponent("feed", "decode_error")
		return fmt.Errorf("%w: %s: %w", ErrDecode, resource, err)
	}
	return nil
}
