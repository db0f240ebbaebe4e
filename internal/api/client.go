package api

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

	"github.com/quickbites/admin-cli/internal/config"
	"github.com/quickbites/admin-cli/internal/models"
	"github.com/quickbites/admin-cli/internal/session"
	"github.com/quickbites/admin-cli/internal/utils"
)

// Client represents the backend API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	session    session.Store
}

// NewClient creates a new API client bound to a session store. Every
// request carries a Bearer header while the store holds a session.
func NewClient(baseURL string, store session.Store) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: config.Timeout(),
		},
		session: store,
	}
}

// do executes a single HTTP request and returns the response body.
// Non-2xx responses become an *utils.APIError carrying the message
// extracted from the body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	if c.session != nil && c.session.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+c.session.Token())
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, utils.NewAPIError(resp.StatusCode, extractMessage(data))
	}

	return data, nil
}

// extractMessage pulls the human-readable message out of an error
// response body.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return ""
}

// envelope is the wrapping object around paginated collection responses.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Page  int             `json:"page"`
	Pages int             `json:"pages"`
	Total int             `json:"total"`
}

// decodePage decodes a collection response. Most endpoints wrap the
// records in a pagination envelope; a few return a bare array, which is
// treated as a single page holding the whole collection.
func decodePage[T any](endpoint string, body []byte) (*models.Page[T], error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &utils.DecodeError{Endpoint: endpoint, Err: err}
		}
		return &models.Page[T]{Items: items, Page: 1, Pages: 1, Total: len(items)}, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, &utils.DecodeError{Endpoint: endpoint, Err: err}
	}
	if env.Data == nil {
		return nil, &utils.DecodeError{Endpoint: endpoint, Err: fmt.Errorf("missing data field")}
	}

	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, &utils.DecodeError{Endpoint: endpoint, Err: err}
	}

	page := &models.Page[T]{Items: items, Page: env.Page, Pages: env.Pages, Total: env.Total}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Pages < 1 {
		page.Pages = 1
	}
	if page.Total == 0 {
		page.Total = len(items)
	}
	return page, nil
}

// decodeOne decodes a single-record response, wrapped or bare.
func decodeOne[T any](endpoint string, body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && env.Data != nil {
		trimmed = env.Data
	}

	var record T
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, &utils.DecodeError{Endpoint: endpoint, Err: err}
	}
	return &record, nil
}

// GetList fetches one page of a collection resource
func GetList[T any](ctx context.Context, c *Client, resource string, params models.ListParams) (*models.Page[T], error) {
	path := "/api/" + resource

	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	for key, value := range params.Filter {
		if value != "" {
			query.Set(key, value)
		}
	}

	body, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}

	return decodePage[T](path, body)
}

// GetOne fetches a single record by identifier
func GetOne[T any](ctx context.Context, c *Client, resource, id string) (*T, error) {
	path := "/api/" + resource + "/" + id

	body, err := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, err
	}

	return decodeOne[T](path, body)
}

// Create posts a new record to a collection resource
func Create[T any](ctx context.Context, c *Client, resource string, payload any) (*T, error) {
	path := "/api/" + resource

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(data), "application/json")
	if err != nil {
		return nil, err
	}

	return decodeOne[T](path, body)
}

// Update puts changed fields to an existing record
func Update[T any](ctx context.Context, c *Client, resource, id string, payload any) (*T, error) {
	path := "/api/" + resource + "/" + id

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	body, err := c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(data), "application/json")
	if err != nil {
		return nil, err
	}

	return decodeOne[T](path, body)
}

// Delete removes a record by identifier
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	path := "/api/" + resource + "/" + id
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}
