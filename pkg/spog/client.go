package spog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

const (
	apiV1SbomSearchPath     = "/api/v1/sbom/search"
	apiV1AdvisorySearchPath = "/api/v1/advisory/search"
)

// Client queries the SPOG API search endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// SearchSBOMs runs a free text query against the SBOM index.
// GET /api/v1/sbom/search?q=&offset=&limit=
func (c *Client) SearchSBOMs(ctx context.Context, token, q string, offset, limit int) (*v1.SbomSearchResult, error) {
	var result v1.SbomSearchResult
	if err := c.search(ctx, token, apiV1SbomSearchPath, q, offset, limit, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchAdvisories runs a free text query against the advisory index.
// GET /api/v1/advisory/search?q=&offset=&limit=
func (c *Client) SearchAdvisories(ctx context.Context, token, q string, offset, limit int) (*v1.AdvisorySearchResult, error) {
	var result v1.AdvisorySearchResult
	if err := c.search(ctx, token, apiV1AdvisorySearchPath, q, offset, limit, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) search(ctx context.Context, token, path, q string, offset, limit int, out any) error {
	params := url.Values{}
	params.Set("q", q)
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	zap.S().Named("spog").Debugw("search", "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode search result: %w", err)
		}
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return srvErrors.NewUnauthorizedError(endpoint)
	default:
		return fmt.Errorf("search %s failed: %s", path, resp.Status)
	}
}
