package vehicle

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// ErrNotFound is returned when the registry has no record for a plate.
var ErrNotFound = fmt.Errorf("no car found with that plate number")

// Client looks up vehicle records from the registry API.
type Client struct {
	baseURL   string
	authToken string
	http      *http.Client
	logger    zerolog.Logger

	// session caches fetched records for the lifetime of the process.
	// It is an optimization only and is never read by the core flows.
	mu      sync.Mutex
	session map[string]Record
}

// NewClient creates a registry client.
func NewClient(baseURL, authToken string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		authToken: authToken,
		http:      &http.Client{Timeout: timeout},
		logger:    logger.With().Str("component", "vehicle").Logger(),
		session:   make(map[string]Record),
	}
}

// Lookup fetches the record for a normalized plate.
// Not-found and transport errors are returned to the caller; they are
// user-visible and must not touch any persisted record.
func (c *Client) Lookup(ctx context.Context, plate string) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/vehicles/"+plate, nil)
	if err != nil {
		return Record{}, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("X-AUTH-TOKEN", c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, fmt.Errorf("vehicle lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug().Str("plate", plate).Int("status", resp.StatusCode).Msg("registry returned non-OK")
		return Record{}, ErrNotFound
	}

	var rec Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode vehicle record: %w", err)
	}

	c.mu.Lock()
	c.session[plate] = rec
	c.mu.Unlock()

	return rec, nil
}

// SessionCached returns the session-cached record for a plate, if any.
func (c *Client) SessionCached(plate string) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.session[plate]
	return rec, ok
}
