package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"seo-optimizer-backend/internal/models"
	"seo-optimizer-backend/internal/services"
)

type GenerateHandler struct {
	service *services.OptimizationService
}

func NewGenerateHandler(service *services.OptimizationService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate godoc
// @Summary     Generate an article from topic tags
// @Description Produces a new article covering all submitted tags via the configured generation provider.
// @Tags        generate
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.GenerateRequest true "Topic tags"
// @Success     200 {object} models.GenerateResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /generate-content [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	if _, ok := requestUserID(c); !ok {
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	content, err := h.service.GenerateFromTags(c.Request.Context(), req.Tags)
	if err != nil {
		c.JSON(statusForError(err), models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{Content: content})
}
