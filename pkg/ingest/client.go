package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

const (
	apiV1VexPath  = "/api/v1/vex"
	apiV1SbomPath = "/api/v1/sbom"

	defaultTimeout = 2 * time.Minute
)

// Client uploads documents to an ingestion service (advisory/VEX or SBOM).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadAdvisory stores one VEX document.
// POST /api/v1/vex
func (c *Client) UploadAdvisory(ctx context.Context, token, fixture string, doc []byte) error {
	return c.post(ctx, token, fixture, c.baseURL+apiV1VexPath, doc)
}

// UploadSBOM stores one SBOM under the given id.
// POST /api/v1/sbom?id={id}
func (c *Client) UploadSBOM(ctx context.Context, token, id string, doc []byte) error {
	u := c.baseURL + apiV1SbomPath + "?" + url.Values{"id": []string{id}}.Encode()
	return c.post(ctx, token, id, u, doc)
}

func (c *Client) post(ctx context.Context, token, fixture, endpoint string, doc []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("failed to build upload request for %q: %w", fixture, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	zap.S().Named("importer").Debugw("uploading fixture", "fixture", fixture, "url", endpoint, "size", len(doc))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return srvErrors.NewUnauthorizedError(endpoint)
	default:
		return srvErrors.NewUploadRejectedError(fixture, resp.StatusCode, resp.Status)
	}
}
