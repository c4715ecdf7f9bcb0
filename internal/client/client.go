// Package client talks to the airline server's editor endpoints. Each call
// is a single request/response exchange with no retries; retrying is the
// operator's decision.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gh-romi/CaelusDB/internal/models"
	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client implements editor.Collaborator over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL. Pass nil to use a default
// http.Client with a 15 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetAirlineSnapshot loads the airline-scoped reference bundle.
func (c *Client) GetAirlineSnapshot(ctx context.Context, airlineID uuid.UUID) (*models.AirlineSnapshot, error) {
	var snapshot models.AirlineSnapshot
	query := url.Values{"airline_id": {airlineID.String()}}
	if err := c.get(ctx, "/api/load-airline-data/", query, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetFlightDetail loads the full record of one flight.
func (c *Client) GetFlightDetail(ctx context.Context, flightID uuid.UUID) (*models.FlightDetail, error) {
	var detail models.FlightDetail
	query := url.Values{"flight_id": {flightID.String()}}
	if err := c.get(ctx, "/api/load-flight-detail/", query, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SubmitFlight creates or updates a flight, depending on whether the
// submission carries a flight id. The idempotency key keeps a retried
// submit after a transport failure from double-creating.
func (c *Client) SubmitFlight(ctx context.Context, submission *models.FlightSubmission) error {
	headers := map[string]string{"Idempotency-Key": uuid.NewString()}
	return c.post(ctx, "/api/save-flight/", submission, headers, nil)
}

// DeleteFlight removes a flight.
func (c *Client) DeleteFlight(ctx context.Context, flightID uuid.UUID) error {
	body := map[string]string{"flightId": flightID.String()}
	return c.post(ctx, "/api/delete-flight/", body, nil, nil)
}

// CheckCollisions asks the server for overlap/double-booking warnings. The
// warnings are returned verbatim for display.
func (c *Client) CheckCollisions(ctx context.Context, query *models.CollisionQuery) ([]string, error) {
	var result struct {
		Warnings []string `json:"warnings"`
	}
	if err := c.post(ctx, "/api/check-collisions/", query, nil, &result); err != nil {
		return nil, err
	}
	return result.Warnings, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, headers map[string]string, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", serverMessage(body, "no matching record"), models.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, serverMessage(body, "request failed"))
	}

	// The server may report failures inside a 200 body.
	var failure struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return fmt.Errorf("server error: %s", failure.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func serverMessage(body []byte, fallback string) string {
	var failure struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
		return failure.Error
	}
	return fallback
}
