package assist

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/skovgaard/platepilot/internal/vehicle"
)

// Client talks to the assist backend.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient creates an assist client with a bounded per-request timeout.
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "assist").Logger(),
	}
}

// Predict requests ranked plate completions.
// Timeouts and transport errors are returned as plain errors; the caller
// treats them all as the same non-fatal failure.
func (c *Client) Predict(ctx context.Context, req PredictRequest) (PredictResponse, error) {
	var resp PredictResponse
	if err := c.post(ctx, "/api/predict", req, &resp); err != nil {
		return PredictResponse{}, err
	}
	return resp, nil
}

// SendFeedback reports a relevance judgment. The response body is opaque and
// logged only.
func (c *Client) SendFeedback(ctx context.Context, license string, relevant bool) error {
	return c.post(ctx, "/api/feedback", feedbackRequest{License: license, Relevant: relevant}, nil)
}

// RecordLookup reports a lookup outcome for the backend's analytics.
func (c *Client) RecordLookup(ctx context.Context, license string, valid bool) error {
	return c.post(ctx, "/api/record", recordRequest{License: license, Valid: valid}, nil)
}

// CacheVehicle uploads a fetched vehicle record to the backend cache.
func (c *Client) CacheVehicle(ctx context.Context, license string, rec vehicle.Record) error {
	return c.post(ctx, "/api/cache_car", cacheCarRequest{License: license, CarData: rec}, nil)
}

// Ping checks backend reachability.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("assist backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("assist backend ping returned status %d", resp.StatusCode)
	}
	return nil
}

// post sends a JSON body and decodes the JSON response into out (when out is
// non-nil). Non-2xx statuses are errors.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	if out == nil {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Debug().Str("path", path).RawJSON("response", normalizeRaw(raw)).Msg("assist response")
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// normalizeRaw keeps debug logging safe when the backend returns a non-JSON
// or empty body.
func normalizeRaw(raw []byte) []byte {
	if json.Valid(raw) {
		return raw
	}
	return []byte("null")
}
