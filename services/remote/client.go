// Package remote wraps the marketplace backend's availability endpoints. The
// backend owns persistence and booking reconciliation; this client only maps
// requests and responses.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tutorhive/models"
)

// AvailabilityClient is the thin injected client the schedule service talks
// through. FetchWeek returns (nil, nil) when the backend has no data for the
// week; transport and server errors come back as errors so callers can tell
// "empty week" apart from "backend unreachable".
type AvailabilityClient interface {
	FetchWeek(ctx context.Context, tutorID, weekStartDate string) (*models.RemoteWeek, error)
	SaveWeek(ctx context.Context, tutorID string, req *models.SaveWeekRequest) error
}

// HTTPAvailabilityClient talks to the backend REST API. No retry or backoff;
// a failed call surfaces to the caller, who retries manually.
type HTTPAvailabilityClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewHTTPAvailabilityClient(baseURL string, httpClient *http.Client) *HTTPAvailabilityClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPAvailabilityClient{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *HTTPAvailabilityClient) weekURL(tutorID, weekStartDate string) string {
	u := fmt.Sprintf("%s/api/tutors/%s/availability", c.BaseURL, url.PathEscape(tutorID))
	if weekStartDate != "" {
		u += "?weekStartDate=" + url.QueryEscape(weekStartDate)
	}
	return u
}

func (c *HTTPAvailabilityClient) FetchWeek(ctx context.Context, tutorID, weekStartDate string) (*models.RemoteWeek, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.weekURL(tutorID, weekStartDate), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("availability fetch failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// Well-formed "no data for this week".
		io.Copy(io.Discard, resp.Body)
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("availability fetch returned status %d", resp.StatusCode)
	}

	var week models.RemoteWeek
	if err := json.NewDecoder(resp.Body).Decode(&week); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}
	return &week, nil
}

func (c *HTTPAvailabilityClient) SaveWeek(ctx context.Context, tutorID string, saveReq *models.SaveWeekRequest) error {
	body, err := json.Marshal(saveReq)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.weekURL(tutorID, ""), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("availability save failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("availability save returned status %d", resp.StatusCode)
	}
	return nil
}
