package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	v1 "github.com/trustification/spog-ui-e2e/api/v1"
	"github.com/trustification/spog-ui-e2e/internal/services"
)

// TokenVerifier validates bearer tokens issued by the SSO realm.
type TokenVerifier interface {
	Verify(raw string) (*jwt.RegisteredClaims, error)
}

type Handler struct {
	docSrv   *services.DocumentService
	verifier TokenVerifier
}

func New(docSrv *services.DocumentService, verifier TokenVerifier) *Handler {
	return &Handler{
		docSrv:   docSrv,
		verifier: verifier,
	}
}

// RegisterHandlers mounts every route on a group prefixed with /api/v1.
func RegisterHandlers(router *gin.RouterGroup, h *Handler) {
	authenticated := router.Group("", h.Authenticate())
	authenticated.POST("/vex", h.UploadVEX)
	authenticated.POST("/sbom", h.UploadSBOM)
	authenticated.GET("/sbom", h.GetSBOM)
	authenticated.GET("/advisory", h.GetAdvisory)
	authenticated.GET("/sbom/search", h.SearchSBOMs)
	authenticated.GET("/advisory/search", h.SearchAdvisories)
}

// Authenticate rejects requests without a valid bearer token.
func (h *Handler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.ErrorResponse{Error: "missing bearer token"})
			return
		}

		claims, err := h.verifier.Verify(raw)
		if err != nil {
			zap.S().Named("mock_services").Debugw("token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, v1.ErrorResponse{Error: "invalid bearer token"})
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}
