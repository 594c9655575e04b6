package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/leadflowhq/leadflow/internal/model"
	"github.com/leadflowhq/leadflow/internal/reqid"
)

// HTTPClient implements LeadFlowClient using the LeadFlow HTTP/JSON REST API.
// The session credential is a server-set cookie held in the configured jar;
// it is attached on every request.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:5000/api"). The jar carries the session cookie;
// pass a persistent jar so the session survives across invocations.
func NewHTTPClient(baseURL string, jar http.CookieJar) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Auth ---

func (c *HTTPClient) Me(ctx context.Context) (*model.User, error) {
	var resp struct {
		User *model.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*model.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		User *model.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	var resp struct {
		User *model.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", map[string]string{}, nil)
}

// --- Lead CRUD ---

func (c *HTTPClient) ListLeads(ctx context.Context, req *ListLeadsRequest) (*ListLeadsResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("limit", strconv.Itoa(req.Limit))
	if req.Search != "" {
		q.Set("search", req.Search)
	}
	if len(req.Filters) > 0 {
		data, err := json.Marshal(req.Filters)
		if err != nil {
			return nil, fmt.Errorf("marshaling filters: %w", err)
		}
		q.Set("filters", string(data))
	}
	if req.SortBy != "" {
		q.Set("sortBy", req.SortBy)
	}
	if req.SortOrder != "" {
		q.Set("sortOrder", req.SortOrder)
	}

	var resp ListLeadsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/leads?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetLead(ctx context.Context, id string) (*model.Lead, error) {
	var resp struct {
		Lead *model.Lead `json:"lead"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/leads/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Lead, nil
}

func (c *HTTPClient) CreateLead(ctx context.Context, req *LeadRequest) (*model.Lead, error) {
	var lead model.Lead
	if err := c.doJSON(ctx, http.MethodPost, "/leads", req, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *HTTPClient) UpdateLead(ctx context.Context, id string, req *LeadRequest) (*model.Lead, error) {
	var lead model.Lead
	if err := c.doJSON(ctx, http.MethodPut, "/leads/"+url.PathEscape(id), req, &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

func (c *HTTPClient) DeleteLead(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/leads/"+url.PathEscape(id), nil, nil)
}

// --- Aggregates ---

func (c *HTTPClient) Stats(ctx context.Context) (*model.Stats, error) {
	var stats model.Stats
	if err := c.doJSON(ctx, http.MethodGet, "/leads/stats/overview", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsServerError reports whether err is a 5xx response or a transport failure.
// Both are surfaced to the user the same way: the server is misbehaving and
// the attempt is terminal.
func IsServerError(err error) bool {
	apiErr, ok := err.(*APIError)
	if !ok {
		return true
	}
	return apiErr.StatusCode >= 500
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON
// response. If result is nil, the response body is discarded (for DELETE/2xx
// responses). There are no retries and no client-side timeout; cancellation is
// the caller's responsibility via ctx.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rid, err := reqid.New()
	if err == nil {
		req.Header.Set("X-Request-ID", rid)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, RequestID: rid}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody)), RequestID: rid}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
