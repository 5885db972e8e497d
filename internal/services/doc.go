// Package services implements the logic of the local mock services.
//
//	Handlers (HTTP endpoints)
//	    │
//	    ▼
//	DocumentService ──► Store (duckdb)
//
// # DocumentService
//
// Ingest accepts a JSON object, extracts a display name and upserts it:
//
//	SPDX        → name
//	CycloneDX   → metadata.component.name
//	CSAF / VEX  → document.tracking.id, then document.title
//
// The id (the fixture filename for SBOMs) is used when no name is found.
// A body that is not a JSON object yields InvalidDocumentError.
//
// Search pages through one kind with a case-insensitive substring filter and
// reports the unpaged total.
package services
