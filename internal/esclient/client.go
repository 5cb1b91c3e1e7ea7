package esclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Common errors
var (
	ErrTargetRequired = errors.New("index or alias name cannot be empty")
	ErrEngineFailed   = errors.New("engine request failed")
)

// Client issues read and query requests against an Elasticsearch
// cluster's REST API. It is safe to share across tool handlers; it
// holds no mutable state beyond the underlying http.Client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a Client for the given base URL. The client carries no
// request timeout; a hung upstream call is cancelled only through the
// caller's context.
// TODO: attach apiKey as an Authorization header once the header
// scheme (ApiKey vs Bearer) is settled.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// ListIndices fetches the cluster's index catalog and projects each
// row to its summary fields.
func (c *Client) ListIndices(ctx context.Context) ([]IndexSummary, error) {
	var rows []catIndexRow
	if err := c.get(ctx, "/_cat/indices?format=json", &rows); err != nil {
		return nil, err
	}

	summaries := make([]IndexSummary, len(rows))
	for i, row := range rows {
		summaries[i] = IndexSummary{
			Index:     row.Index,
			Health:    row.Health,
			Status:    row.Status,
			DocsCount: row.DocsCount,
		}
	}
	return summaries, nil
}

// ListAliases fetches the cluster's alias catalog.
func (c *Client) ListAliases(ctx context.Context) ([]AliasSummary, error) {
	var rows []AliasSummary
	if err := c.get(ctx, "/_cat/aliases?format=json", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Mapping fetches the field mappings for an index or alias. The
// response is keyed by concrete index name; when target is an alias
// the engine resolves it, so the result may hold several entries.
func (c *Client) Mapping(ctx context.Context, target string) (map[string]json.RawMessage, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}

	var mappings map[string]json.RawMessage
	if err := c.get(ctx, "/"+url.PathEscape(target)+"/_mapping", &mappings); err != nil {
		return nil, err
	}
	return mappings, nil
}

// Search forwards queryBody verbatim as the request body of a search
// against the given index or alias. The body is validated only by
// surviving JSON marshaling, never against the query DSL schema.
func (c *Client) Search(ctx context.Context, target string, queryBody map[string]any) (*SearchResponse, error) {
	if target == "" {
		return nil, ErrTargetRequired
	}

	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	endpoint := c.baseURL + "/" + url.PathEscape(target) + "/_search"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var result SearchResponse
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get issues a GET against path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: status %d: %s", ErrEngineFailed, resp.StatusCode, excerpt(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// excerpt trims an error body so upstream stack traces do not flood
// the tool result.
func excerpt(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
