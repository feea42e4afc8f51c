package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rightsguard-backend/service"
	"rightsguard-backend/store"

	"github.com/gin-gonic/gin"
)

// CardHandler handles HTTP requests for rights cards
type CardHandler struct {
	contentService *service.ContentService
}

// NewCardHandler creates a new card handler
func NewCardHandler(contentService *service.ContentService) *CardHandler {
	return &CardHandler{contentService: contentService}
}

// ListCards handles GET /api/cards
func (h *CardHandler) ListCards(c *gin.Context) {
	query := service.CardQuery{
		Scenario:     c.Query("scenario"),
		Jurisdiction: c.Query("jurisdiction"),
		Language:     c.Query("language"),
		Search:       c.Query("search"),
		Limit:        c.Query("limit"),
	}

	result, err := h.contentService.QueryCards(c.Request.Context(), query)
	if err != nil {
		log.Printf("Error querying rights cards: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch rights cards",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cards":   result.Cards,
		"total":   result.Total,
		"filters": result.Filters,
	})
}

// GetCard handles GET /api/cards/:id
func (h *CardHandler) GetCard(c *gin.Context) {
	cardID := c.Param("id")

	card, err := h.contentService.GetCard(c.Request.Context(), cardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rights card not found",
			})
			return
		}
		log.Printf("Error fetching rights card %s: %v", cardID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch rights card",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"card": card,
	})
}

// GetCardScripts handles GET /api/cards/:id/scripts
func (h *CardHandler) GetCardScripts(c *gin.Context) {
	cardID := c.Param("id")

	scripts, err := h.contentService.GetScriptsByCard(c.Request.Context(), cardID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Rights card not found",
			})
			return
		}
		log.Printf("Error fetching scripts for card %s: %v", cardID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to fetch scripts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"scripts": scripts,
		"total":   len(scripts),
	})
}

// countParam parses the limit query param for the popular/recent views,
// defaulting to 5.
func countParam(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || n < 0 {
		return 5
	}
	return n
}

// PopularCards handles GET /api/popular-cards
func (h *CardHandler) PopularCards(c *gin.Context) {
	cards, err := h.contentService.GetPopularCards(c.Request.Context(), countParam(c))
	if err != nil {
		log.Printf("Error fetching popular cards: %v", err)
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

// RecentCards handles GET /api/recent-cards
func (h *CardHandler) RecentCards(c *gin.Context) {
	cards, err := h.contentService.GetRecentCards(c.Request.Context(), countParam(c))
	if err != nil {
		log.Printf("Error fetching recent cards: %v", err)
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
