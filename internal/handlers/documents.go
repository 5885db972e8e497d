package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
	"github.com/trustification/spog-ui-e2e/internal/models"
	"github.com/trustification/spog-ui-e2e/internal/services"
	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

const (
	defaultLimit = 10
	maxLimit     = 1000
)

// UploadVEX stores an advisory (POST /vex). The id is the optional "id"
// query parameter, or the document's tracking id.
func (h *Handler) UploadVEX(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	id := c.Query("id")
	if id == "" {
		id = models.DocumentName(models.FixtureKindAdvisory, body, "")
	}
	if id == "" {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "advisory has no tracking id"})
		return
	}

	h.ingest(c, models.FixtureKindAdvisory, id, body)
}

// UploadSBOM stores an SBOM under the "id" query parameter (POST /sbom?id=).
func (h *Handler) UploadSBOM(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "missing id"})
		return
	}

	body, ok := readBody(c)
	if !ok {
		return
	}

	h.ingest(c, models.FixtureKindSBOM, id, body)
}

func (h *Handler) ingest(c *gin.Context, kind models.FixtureKind, id string, body []byte) {
	doc, err := h.docSrv.Ingest(c.Request.Context(), kind, id, body)
	if err != nil {
		var invalid *services.InvalidDocumentError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: err.Error()})
			return
		}
		zap.S().Named("mock_services").Errorw("failed to store document", "kind", kind, "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to store document"})
		return
	}

	zap.S().Named("mock_services").Debugw("document stored", "kind", kind, "id", doc.ID, "name", doc.Name)
	c.JSON(http.StatusCreated, v1.UploadResponse{ID: doc.ID, Name: doc.Name})
}

// GetSBOM returns the stored SBOM as uploaded (GET /sbom?id=).
func (h *Handler) GetSBOM(c *gin.Context) {
	h.get(c, models.FixtureKindSBOM)
}

// GetAdvisory (GET /advisory?id=)
func (h *Handler) GetAdvisory(c *gin.Context) {
	h.get(c, models.FixtureKindAdvisory)
}

func (h *Handler) get(c *gin.Context, kind models.FixtureKind) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "missing id"})
		return
	}

	doc, err := h.docSrv.Get(c.Request.Context(), kind, id)
	if err != nil {
		if srvErrors.IsDocumentNotFoundError(err) {
			c.JSON(http.StatusNotFound, v1.ErrorResponse{Error: err.Error()})
			return
		}
		zap.S().Named("mock_services").Errorw("failed to get document", "kind", kind, "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "failed to get document"})
		return
	}

	c.Data(http.StatusOK, "application/json", doc.Body)
}

// SearchSBOMs (GET /sbom/search?q=&offset=&limit=)
func (h *Handler) SearchSBOMs(c *gin.Context) {
	result, ok := h.search(c, models.FixtureKindSBOM)
	if !ok {
		return
	}

	items := make([]v1.SbomSummary, 0, len(result.Documents))
	for _, doc := range result.Documents {
		items = append(items, v1.NewSbomSummaryFromModel(doc))
	}
	c.JSON(http.StatusOK, v1.SbomSearchResult{Total: &result.Total, Result: items})
}

// SearchAdvisories (GET /advisory/search?q=&offset=&limit=)
func (h *Handler) SearchAdvisories(c *gin.Context) {
	result, ok := h.search(c, models.FixtureKindAdvisory)
	if !ok {
		return
	}

	items := make([]v1.AdvisorySummary, 0, len(result.Documents))
	for _, doc := range result.Documents {
		items = append(items, v1.NewAdvisorySummaryFromModel(doc))
	}
	c.JSON(http.StatusOK, v1.AdvisorySearchResult{Total: &result.Total, Result: items})
}

func (h *Handler) search(c *gin.Context, kind models.FixtureKind) (*services.SearchResult, bool) {
	offset, err := queryUint(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "invalid offset"})
		return nil, false
	}
	limit, err := queryUint(c, "limit", defaultLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "invalid limit"})
		return nil, false
	}
	if limit == 0 || limit > maxLimit {
		limit = maxLimit
	}

	result, err := h.docSrv.Search(c.Request.Context(), services.SearchParams{
		Kind:   kind,
		Query:  c.Query("q"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		zap.S().Named("mock_services").Errorw("search failed", "kind", kind, "error", err)
		c.JSON(http.StatusInternalServerError, v1.ErrorResponse{Error: "search failed"})
		return nil, false
	}

	return result, true
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.ErrorResponse{Error: "failed to read body"})
		return nil, false
	}
	return body, true
}

func queryUint(c *gin.Context, name string, def uint64) (uint64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}
