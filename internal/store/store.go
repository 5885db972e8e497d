package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db        *sql.DB
	documents *DocumentStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		documents: NewDocumentStore(NewQueryInterceptor(db)),
	}
}

func (s *Store) Documents() *DocumentStore {
	return s.documents
}

func (s *Store) Close() error {
	return s.db.Close()
}
