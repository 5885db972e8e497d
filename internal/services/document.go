package services

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/trustification/spog-ui-e2e/internal/models"
	"github.com/trustification/spog-ui-e2e/internal/store"
)

type DocumentService struct {
	store *store.Store
}

func NewDocumentService(st *store.Store) *DocumentService {
	return &DocumentService{store: st}
}

// InvalidDocumentError is returned when the body is not JSON.
type InvalidDocumentError struct {
	err error
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid document: %v", e.err)
}

func (e *InvalidDocumentError) Unwrap() error {
	return e.err
}

// Ingest validates body, derives its display name and stores it under
// (kind, id). Ingesting the same id again replaces the document.
func (s *DocumentService) Ingest(ctx context.Context, kind models.FixtureKind, id string, body []byte) (*models.Document, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, &InvalidDocumentError{err: err}
	}
	if _, ok := v.(map[string]any); !ok {
		return nil, &InvalidDocumentError{err: fmt.Errorf("expected a JSON object")}
	}

	doc := models.Document{
		Kind: kind,
		ID:   id,
		Name: models.DocumentName(kind, body, id),
		Body: body,
	}
	if err := s.store.Documents().Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save %s %q: %w", kind, id, err)
	}

	return &doc, nil
}

func (s *DocumentService) Get(ctx context.Context, kind models.FixtureKind, id string) (*models.Document, error) {
	return s.store.Documents().Get(ctx, kind, id)
}

type SearchParams struct {
	Kind   models.FixtureKind
	Query  string
	Limit  uint64
	Offset uint64
}

type SearchResult struct {
	Documents []models.Document
	Total     int
}

func (s *DocumentService) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	filters := []store.ListOption{
		store.ByKind(params.Kind),
		store.ByText(params.Query),
	}

	opts := append([]store.ListOption{}, filters...)
	opts = append(opts, store.WithDefaultSort())
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	docs, err := s.store.Documents().List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	// total count without pagination
	total, err := s.store.Documents().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Documents: docs,
		Total:     total,
	}, nil
}
