package v1

import (
	"fmt"
	"time"

	"github.com/trustification/spog-ui-e2e/internal/models"
)

// SearchResult mirrors the paged envelope returned by the SPOG search endpoints.
type SearchResult[T any] struct {
	Total  *int `json:"total,omitempty"`
	Result []T  `json:"result"`
}

// SbomSummary is one hit of GET /api/v1/sbom/search.
// Only the fields the suite reads are declared.
type SbomSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Version     string    `json:"version,omitempty"`
	Purl        string    `json:"purl,omitempty"`
	Supplier    string    `json:"supplier,omitempty"`
	Href        string    `json:"href"`
	Description string    `json:"description,omitempty"`
	Created     time.Time `json:"created"`
}

// AdvisorySummary is one hit of GET /api/v1/advisory/search.
type AdvisorySummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Href  string `json:"href"`
}

type SbomSearchResult = SearchResult[SbomSummary]

type AdvisorySearchResult = SearchResult[AdvisorySummary]

// NewSbomSummaryFromModel converts a stored document to an API summary.
func NewSbomSummaryFromModel(doc models.Document) SbomSummary {
	return SbomSummary{
		ID:      doc.ID,
		Name:    doc.Name,
		Href:    fmt.Sprintf("/api/v1/sbom?id=%s", doc.ID),
		Created: doc.CreatedAt,
	}
}

// NewAdvisorySummaryFromModel converts a stored document to an API summary.
func NewAdvisorySummaryFromModel(doc models.Document) AdvisorySummary {
	return AdvisorySummary{
		ID:    doc.ID,
		Title: doc.Name,
		Href:  fmt.Sprintf("/api/v1/advisory?id=%s", doc.ID),
	}
}

// ErrorResponse is the body of every non-2xx answer of the mock services.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UploadResponse is returned by the mock ingestion endpoints.
type UploadResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
