package handlers

import (
	"log"
	"net/http"

	"rightsguard-backend/service"

	"github.com/gin-gonic/gin"
)

// BundleHandler handles HTTP requests for the offline bundle
type BundleHandler struct {
	bundleService *service.BundleService
}

// NewBundleHandler creates a new bundle handler
func NewBundleHandler(bundleService *service.BundleService) *BundleHandler {
	return &BundleHandler{bundleService: bundleService}
}

// GetOfflineBundle handles GET /api/offline-bundle
func (h *BundleHandler) GetOfflineBundle(c *gin.Context) {
	bundle, err := h.bundleService.BuildOfflineBundle(c.Request.Context())
	if err != nil {
		log.Printf("Error building offline bundle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build offline bundle",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cards":         bundle.Cards,
		"organizations": bundle.Orgs,
		"generatedAt":   bundle.GeneratedAt,
	})
}

// ExportOfflineBundle handles POST /api/offline-bundle/export
func (h *BundleHandler) ExportOfflineBundle(c *gin.Context) {
	path, err := h.bundleService.ExportBundle(c.Request.Context())
	if err != nil {
		log.Printf("Error exporting offline bundle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export offline bundle",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"path": path,
	})
}
