package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seo-optimizer-backend/internal/models"
	"seo-optimizer-backend/internal/supabase"
)

// HistoryReader is the read side of the record store, consumed by the
// browsing UI. Every read is scoped to the authenticated user.
type HistoryReader interface {
	ListOptimizations(ctx context.Context, userID uuid.UUID) ([]models.OptimizationRecord, error)
	GetOptimization(ctx context.Context, recordID, userID uuid.UUID) (*models.OptimizationRecord, error)
}

type HistoryHandler struct {
	store HistoryReader
}

func NewHistoryHandler(store HistoryReader) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List godoc
// @Summary     List optimization history
// @Description Returns the caller's optimization records, newest first.
// @Tags        history
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.HistoryListResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	records, err := h.store.ListOptimizations(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list history",
			Message: err.Error(),
		})
		return
	}

	summaries := make([]models.RecordSummary, len(records))
	for i, record := range records {
		summaries[i] = models.RecordSummary{
			ID:        record.ID.String(),
			Status:    record.Status,
			CreatedAt: record.CreatedAt,
		}
		if record.SEOScore.Valid {
			score := int(record.SEOScore.Int64)
			summaries[i].SEOScore = &score
		}
	}

	c.JSON(http.StatusOK, models.HistoryListResponse{Records: summaries})
}

// Get godoc
// @Summary     Get one optimization record
// @Description Returns a single record owned by the caller. Records owned by other users yield 404.
// @Tags        history
// @Produce     json
// @Security    Bearer
// @Param       record_id path string true "Record ID (UUID)"
// @Success     200 {object} models.RecordResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /history/{record_id} [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	recordID, err := uuid.Parse(c.Param("record_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid record id"})
		return
	}

	record, err := h.store.GetOptimization(c.Request.Context(), recordID, userID)
	if errors.Is(err, supabase.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "record not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get record",
			Message: err.Error(),
		})
		return
	}

	response := models.RecordResponse{
		ID:           record.ID.String(),
		OriginalText: record.OriginalText,
		Status:       record.Status,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}

	if record.OptimizedText.Valid {
		response.OptimizedText = record.OptimizedText.String
	}
	if record.SEOScore.Valid {
		score := int(record.SEOScore.Int64)
		response.SEOScore = &score
	}
	if record.ErrorMessage.Valid {
		response.ErrorMessage = record.ErrorMessage.String
	}
	if len(record.Details) > 0 {
		var details map[string]interface{}
		if err := json.Unmarshal(record.Details, &details); err == nil {
			response.Details = details
		}
	}

	c.JSON(http.StatusOK, response)
}
