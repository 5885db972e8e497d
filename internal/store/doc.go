// Package store persists the documents received by the local mock services.
//
// It backs the "local" infra mode only: the suite never reads this database
// directly, it goes through the mock services' search endpoints.
//
//	┌──────────────────────────────────────────┐
//	│              Store (facade)              │
//	├──────────────────────────────────────────┤
//	│              DocumentStore               │
//	│                    ▼                     │
//	│                documents                 │
//	├──────────────────────────────────────────┤
//	│     QueryInterceptor (debug logging)     │
//	└──────────────────────────────────────────┘
//
// # Schema
//
// Created by migrations.Run from migrations/sql/:
//
//	documents (
//	    kind VARCHAR,          -- "sbom" or "advisory"
//	    id VARCHAR,            -- SBOM id (fixture filename) or advisory file name
//	    name VARCHAR,          -- display name extracted from the JSON
//	    body BLOB,
//	    created_at TIMESTAMP,
//	    updated_at TIMESTAMP,
//	    PRIMARY KEY (kind, id)
//	)
//
// Save is an UPSERT on (kind, id), so importing the same fixtures twice
// leaves one row per document.
//
// # List Options
//
// DocumentStore.List and Count take functional options that modify a
// squirrel.SelectBuilder:
//
//	docs, err := s.Documents().List(ctx,
//	    store.ByKind(models.FixtureKindSBOM),
//	    store.ByText("ubi"),
//	    store.WithDefaultSort(),
//	    store.WithLimit(10),
//	    store.WithOffset(0),
//	)
//
// ByText is a case-insensitive substring match on name or id. LIKE wildcards
// in the text are escaped.
package store
