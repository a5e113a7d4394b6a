// Package webex wraps the Webex REST API rooms endpoint.
package webex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/roomctl/roomctl/internal/core/domain"
	"github.com/roomctl/roomctl/internal/core/ports/driven"
)

// DefaultBaseURL is the Webex API base.
const DefaultBaseURL = "https://webexapis.com/v1"

// DefaultTimeout is the HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements the interface.
var _ driven.RoomLister = (*Client)(nil)

// Client is a thin rooms API client. It never mutates remote state.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a rooms client. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// ListRooms fetches up to max rooms the user is a member of, most recently
// active first. An unauthorized response maps to domain.ErrAuthExpired so
// callers can invalidate cached credentials.
func (c *Client) ListRooms(ctx context.Context, accessToken string, max int) ([]domain.Room, error) {
	q := url.Values{}
	q.Set("max", strconv.Itoa(max))
	q.Set("sortBy", "lastactivity")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rooms?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrAuthExpired
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list rooms failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Items []domain.Room `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode rooms response: %w", err)
	}

	if len(payload.Items) > max {
		payload.Items = payload.Items[:max]
	}
	return payload.Items, nil
}

// Ping probes the API without credentials. A 401 means the network path is
// fine and only authentication is missing, which is the expected outcome
// for an unauthenticated probe.
func (c *Client) Ping(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/people/me", nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("connectivity probe: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
