package test

import (
	"context"
	"sync"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
	"github.com/trustification/spog-ui-e2e/pkg/importer"
)

// MockTokenSource returns AccessToken (or Err) and counts the calls.
type MockTokenSource struct {
	AccessToken string
	Err         error

	mu    sync.Mutex
	calls int
}

func NewMockTokenSource(token string) *MockTokenSource {
	return &MockTokenSource{AccessToken: token}
}

func (m *MockTokenSource) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.AccessToken, m.Err
}

func (m *MockTokenSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Upload is one call recorded by MockUploader.
type Upload struct {
	Token string
	ID    string
	Body  []byte
}

// MockUploader records advisory and SBOM uploads. Errs maps a fixture name
// or SBOM id to the error returned for it.
type MockUploader struct {
	Errs map[string]error

	mu         sync.Mutex
	advisories []Upload
	sboms      []Upload
}

func NewMockUploader() *MockUploader {
	return &MockUploader{Errs: map[string]error{}}
}

func (m *MockUploader) UploadAdvisory(ctx context.Context, token, fixture string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advisories = append(m.advisories, Upload{Token: token, ID: fixture, Body: doc})
	return m.Errs[fixture]
}

func (m *MockUploader) UploadSBOM(ctx context.Context, token, id string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sboms = append(m.sboms, Upload{Token: token, ID: id, Body: doc})
	return m.Errs[id]
}

func (m *MockUploader) Advisories() []Upload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Upload(nil), m.advisories...)
}

func (m *MockUploader) SBOMs() []Upload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Upload(nil), m.sboms...)
}

// MockSearcher answers SBOM searches with a hit for every indexed name.
type MockSearcher struct {
	Err error

	mu      sync.Mutex
	indexed map[string]bool
	calls   int
}

func NewMockSearcher(indexed ...string) *MockSearcher {
	m := &MockSearcher{indexed: map[string]bool{}}
	m.Index(indexed...)
	return m
}

func (m *MockSearcher) Index(names ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range names {
		m.indexed[n] = true
	}
}

func (m *MockSearcher) SearchSBOMs(ctx context.Context, token, q string, offset, limit int) (*v1.SbomSearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	res := &v1.SbomSearchResult{Result: []v1.SbomSummary{}}
	if m.indexed[q] {
		res.Result = append(res.Result, v1.SbomSummary{ID: q, Name: q})
	}
	total := len(res.Result)
	res.Total = &total
	return res, nil
}

func (m *MockSearcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

var (
	_ importer.TokenSource      = (*MockTokenSource)(nil)
	_ importer.AdvisoryUploader = (*MockUploader)(nil)
	_ importer.SBOMUploader     = (*MockUploader)(nil)
	_ importer.SBOMSearcher     = (*MockSearcher)(nil)
)
