package store

// Document queries
const (
	queryGetDocument = `
		SELECT kind, id, name, body, created_at, updated_at
		FROM documents WHERE kind = ? AND id = ?`

	// re-importing a document replaces it and keeps its creation time
	queryUpsertDocument = `
		INSERT INTO documents (kind, id, name, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, now(), now())
		ON CONFLICT (kind, id) DO UPDATE SET
			name = EXCLUDED.name,
			body = EXCLUDED.body,
			updated_at = now()`
)
