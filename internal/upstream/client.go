// Package upstream is the HTTP client for the remote activity sign-up
// service. It covers the four endpoints rollcall consumes: listing
// activities, teacher login, signup, and unregister.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/good-yellow-bee/rollcall/internal/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the activity service. The base URL is injectable so
// tests can point it at an httptest server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service at baseURL. A zero timeout
// falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches the full activity map. The map is keyed by activity name
// and replaces any previously fetched snapshot wholesale.
func (c *Client) List(ctx context.Context) (map[string]models.Activity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch activities: unexpected status %d", resp.StatusCode)
	}

	var activities map[string]models.Activity
	if err := json.NewDecoder(resp.Body).Decode(&activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

// Login verifies teacher credentials against the service. On success it
// returns the teacher identity; a non-2xx response becomes a
// *RejectionError carrying the server's detail message.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Teacher, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", nil)
	if err != nil {
		return nil, fmt.Errorf("build login request: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rejectionFromResponse(resp)
	}

	var body struct {
		Teacher models.Teacher `json:"teacher"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &body.Teacher, nil
}

// Signup enrolls email in the named activity, authenticated with creds.
// Returns the server's confirmation message.
func (c *Client) Signup(ctx context.Context, creds models.Credentials, activity, email string) (string, error) {
	return c.mutate(ctx, http.MethodPost, "signup", creds, activity, email)
}

// Unregister removes email from the named activity, authenticated with
// creds. Returns the server's confirmation message.
func (c *Client) Unregister(ctx context.Context, creds models.Credentials, activity, email string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, "unregister", creds, activity, email)
}

func (c *Client) mutate(ctx context.Context, method, action string, creds models.Credentials, activity, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/activities/%s/%s?email=%s",
		c.baseURL, url.PathEscape(activity), action, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", action, err)
	}
	req.SetBasicAuth(creds.Username, creds.Secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", rejectionFromResponse(resp)
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode %s response: %w", action, err)
	}
	return body.Message, nil
}

// rejectionFromResponse builds a RejectionError from a non-2xx response.
// The detail is best-effort: an unreadable or malformed body leaves it
// empty and the caller substitutes generic text.
func rejectionFromResponse(resp *http.Response) *RejectionError {
	rej := &RejectionError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return rej
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		rej.Detail = body.Detail
	}
	return rej
}
