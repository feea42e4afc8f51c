package handlers

import (
	"errors"
	"net/http"

	"rightsguard-backend/service"

	"github.com/gin-gonic/gin"
)

// ScriptHandler handles HTTP requests for guidance script generation
type ScriptHandler struct {
	scriptService *service.ScriptService
}

// NewScriptHandler creates a new script handler
func NewScriptHandler(scriptService *service.ScriptService) *ScriptHandler {
	return &ScriptHandler{scriptService: scriptService}
}

// GenerateScriptRequest represents the request body for script generation
type GenerateScriptRequest struct {
	Scenario     string `json:"scenario"`
	Jurisdiction string `json:"jurisdiction"`
	Language     string `json:"language"`
	Type         string `json:"type"`
	Context      string `json:"context"`
	CardID       string `json:"cardId"`
}

// GenerateScript handles POST /api/generate-script
func (h *ScriptHandler) GenerateScript(c *gin.Context) {
	var req GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	script, err := h.scriptService.GenerateScript(c.Request.Context(), service.ScriptRequest{
		Scenario:     req.Scenario,
		Jurisdiction: req.Jurisdiction,
		Language:     req.Language,
		Type:         req.Type,
		Context:      req.Context,
		CardID:       req.CardID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Scenario is required",
			})
			return
		}
		// Detail is logged by the service; the caller gets a generic message.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate script",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"script": script,
	})
}
