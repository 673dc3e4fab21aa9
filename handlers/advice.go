package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"styleforage/models"
	"styleforage/services/advice"

	"github.com/gin-gonic/gin"
)

// AdviceHandler fronts the AI style advice collaborator.
type AdviceHandler struct {
	Advice advice.Service
}

func NewAdviceHandler(svc advice.Service) *AdviceHandler {
	return &AdviceHandler{Advice: svc}
}

// GetStyleAdvice handles POST /api/style-advice. Input guards answer with
// 4xx before the collaborator is touched; a collaborator failure answers
// 500 with the static apology.
func (h *AdviceHandler) GetStyleAdvice(c *gin.Context) {
	var req models.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}
	if utf8.RuneCountInString(req.Query) > advice.MaxQueryLen {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query too long. Please keep it under 500 characters."})
		return
	}

	message, err := h.Advice.GetAdvice(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Service error",
			"message": message,
		})
		return
	}

	c.JSON(http.StatusOK, models.AdviceResponse{Message: message})
}
