package cms

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

	"github.com/net-studio/intranet-sub001/config"
	"github.com/net-studio/intranet-sub001/models"
)

// Client performs authenticated JSON calls against the intranet CMS REST API.
// All resource APIs in this package share one client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient uses the values from the config and returns a CMS client
func NewClient(conf *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.CMSBaseURL, "/"),
		token:   conf.CMSAPIToken,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBase returns a client for an explicit base URL, used by tests
// to point at a local server.
func NewClientWithBase(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// do issues a single JSON request and decodes the response body into out when
// out is non-nil. Non-2xx statuses are returned as errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	var buf io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		buf = bytes.NewBuffer(jsonData)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("cms returned status %d for %s %s", resp.StatusCode, method, path)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// Response envelopes used by the CMS. Single records and lists both arrive
// under a `data` key; lists carry pagination under `meta.pagination`.

type collaboratorList struct {
	Data []models.Collaborator `json:"data"`
}

type tokenList struct {
	Data []models.PushToken `json:"data"`
}

type tokenEnvelope struct {
	Data models.PushToken `json:"data"`
}

type notificationList struct {
	Data []models.Notification `json:"data"`
	Meta struct {
		Pagination models.Pagination `json:"pagination"`
	} `json:"meta"`
}
