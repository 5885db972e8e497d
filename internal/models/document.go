package models

import (
	"time"

	json "github.com/goccy/go-json"
)

// Document is an SBOM or advisory held by the local mock services.
type Document struct {
	Kind      FixtureKind
	ID        string
	Name      string
	Body      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

type documentHeader struct {
	// SPDX
	Name string `json:"name"`
	// CycloneDX
	Metadata struct {
		Component struct {
			Name string `json:"name"`
		} `json:"component"`
	} `json:"metadata"`
	// CSAF
	Document struct {
		Title    string `json:"title"`
		Tracking struct {
			ID string `json:"id"`
		} `json:"tracking"`
	} `json:"document"`
}

// DocumentName extracts a display name from an SPDX, CycloneDX or CSAF body.
// It falls back to the given id when no name can be found.
func DocumentName(kind FixtureKind, body []byte, fallback string) string {
	var h documentHeader
	if err := json.Unmarshal(body, &h); err != nil {
		return fallback
	}

	switch kind {
	case FixtureKindAdvisory:
		if h.Document.Tracking.ID != "" {
			return h.Document.Tracking.ID
		}
		if h.Document.Title != "" {
			return h.Document.Title
		}
	default:
		if h.Name != "" {
			return h.Name
		}
		if h.Metadata.Component.Name != "" {
			return h.Metadata.Component.Name
		}
	}

	return fallback
}
