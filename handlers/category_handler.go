package handlers

import (
	"log"
	"net/http"

	"rightsguard-backend/models"
	"rightsguard-backend/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the scenario taxonomy and category views
type CategoryHandler struct {
	contentService *service.ContentService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(contentService *service.ContentService) *CategoryHandler {
	return &CategoryHandler{contentService: contentService}
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": models.ScenarioCategories,
	})
}

// GetCategoryCards handles GET /api/categories/:id/cards. Unknown categories
// return an empty list rather than an error.
func (h *CategoryHandler) GetCategoryCards(c *gin.Context) {
	categoryID := models.CategoryID(c.Param("id"))

	cards, err := h.contentService.GetCardsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		log.Printf("Error fetching cards for category %s: %v", categoryID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch rights cards",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cards": cards,
		"total": len(cards),
	})
}
