package handlers

import (
	"log"
	"net/http"

	"rightsguard-backend/service"

	"github.com/gin-gonic/gin"
)

// OrgHandler handles HTTP requests for the legal-aid directory
type OrgHandler struct {
	contentService *service.ContentService
}

// NewOrgHandler creates a new organization handler
func NewOrgHandler(contentService *service.ContentService) *OrgHandler {
	return &OrgHandler{contentService: contentService}
}

// ListOrgs handles GET /api/legal-aid
func (h *OrgHandler) ListOrgs(c *gin.Context) {
	jurisdiction := c.Query("jurisdiction")

	orgs, err := h.contentService.GetOrgsByJurisdiction(c.Request.Context(), jurisdiction)
	if err != nil {
		log.Printf("Error fetching legal aid organizations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch legal aid organizations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"organizations": orgs,
		"total":         len(orgs),
		"filters": gin.H{
			"jurisdiction": jurisdiction,
		},
	})
}
