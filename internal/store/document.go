package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/trustification/spog-ui-e2e/internal/models"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

type DocumentStore struct {
	db QueryInterceptor
}

func NewDocumentStore(db QueryInterceptor) *DocumentStore {
	return &DocumentStore{db: db}
}

// Save inserts the document or replaces the one stored under the same
// kind and id.
func (s *DocumentStore) Save(ctx context.Context, doc models.Document) error {
	_, err := s.db.ExecContext(ctx, queryUpsertDocument, string(doc.Kind), doc.ID, doc.Name, doc.Body)
	return err
}

func (s *DocumentStore) Get(ctx context.Context, kind models.FixtureKind, id string) (*models.Document, error) {
	row := s.db.QueryRowContext(ctx, queryGetDocument, string(kind), id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewDocumentNotFoundError(string(kind), id)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentStore) List(ctx context.Context, opts ...ListOption) ([]models.Document, error) {
	builder := sq.Select("kind", "id", "name", "body", "created_at", "updated_at").From("documents")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	return docs, rows.Err()
}

// Count applies the filtering options only; paging and sorting options
// must not be passed.
func (s *DocumentStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From("documents")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*models.Document, error) {
	var (
		doc  models.Document
		kind string
	)
	if err := row.Scan(&kind, &doc.ID, &doc.Name, &doc.Body, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
		return nil, err
	}
	doc.Kind = models.FixtureKind(kind)
	return &doc, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByKind(kind models.FixtureKind) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"kind": string(kind)})
	}
}

// ByText matches a case-insensitive substring of the name or the id.
// An empty text matches everything.
func ByText(text string) ListOption {
	text = strings.TrimSpace(text)
	pattern := "%" + escapeLike(text) + "%"
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if text == "" {
			return b
		}
		return b.Where(sq.Or{
			sq.Expr(`name ILIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`id ILIKE ? ESCAPE '\'`, pattern),
		})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("name", "id")
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
