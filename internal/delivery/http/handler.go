package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/glowmatch/backend/internal/domain"
	"github.com/glowmatch/backend/internal/infrastructure/dataset"
	"github.com/glowmatch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommender *usecase.RecommenderService
}

// NewHandler creates a new HTTP handler
func NewHandler(recommender *usecase.RecommenderService) *Handler {
	return &Handler{recommender: recommender}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "glowmatch-backend",
		"version": "1.0.0",
	})
}

// Recommend handles recommendation requests. An empty result list is a
// normal "no matches" outcome and still returns 200.
func (h *Handler) Recommend(c *gin.Context) {
	var request domain.RecommendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skinType is required"})
		return
	}

	snapshot, err := h.recommender.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	results, err := h.recommender.Recommend(snapshot, &request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if results == nil {
		results = []domain.RankedProduct{}
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// CatalogFacets returns the catalog's distinct attribute values so clients
// can populate their filter controls.
func (h *Handler) CatalogFacets(c *gin.Context) {
	snapshot, err := h.recommender.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.recommender.Facets(snapshot))
}

// UploadCatalog replaces the catalog from an uploaded CSV file and rebuilds
// the recommendation index. The snapshot swap is atomic: queries running
// against the previous catalog finish on the previous index.
func (h *Handler) UploadCatalog(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing CSV upload in 'file' field"})
		return
	}
	defer file.Close()

	rows, err := dataset.ReadTable(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := h.recommender.Reload(rows)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCatalog) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("[CATALOG] Reloaded from upload %q: %d products", header.Filename, snapshot.Catalog.Len())
	c.JSON(http.StatusOK, gin.H{
		"filename":     header.Filename,
		"productCount": snapshot.Catalog.Len(),
	})
}
