package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seo-optimizer-backend/internal/middleware"
	"seo-optimizer-backend/internal/models"
	"seo-optimizer-backend/internal/services"
)

type OptimizeHandler struct {
	service *services.OptimizationService
}

func NewOptimizeHandler(service *services.OptimizationService) *OptimizeHandler {
	return &OptimizeHandler{service: service}
}

// Optimize godoc
// @Summary     Optimize content for SEO
// @Description Rewrites the submitted text via the configured generation provider and records the attempt in history.
// @Tags        optimize
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.OptimizeRequest true "Text to optimize"
// @Success     200 {object} models.OptimizeResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /optimize-content [post]
func (h *OptimizeHandler) Optimize(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	result, err := h.service.OptimizeText(c.Request.Context(), userID, req.Text)
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	if result.CompletionErr != nil {
		// Generation succeeded but the record update did not. The caller still
		// gets the text; the stored record keeps its processing status.
		c.JSON(http.StatusInternalServerError, models.OptimizeResponse{
			OptimizedText: result.OptimizedText,
			SEOScore:      result.SEOScore,
			Error:         result.CompletionErr.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.OptimizeResponse{
		OptimizedText: result.OptimizedText,
		SEOScore:      result.SEOScore,
	})
}

// requestUserID pulls the authenticated user id set by the auth middleware.
func requestUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, false
	}

	return userID, true
}
