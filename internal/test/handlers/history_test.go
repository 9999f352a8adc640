package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seo-optimizer-backend/internal/models"
)

func seedRecord(store *mockStore, userID uuid.UUID, createdAt time.Time, status string) *models.OptimizationRecord {
	record := &models.OptimizationRecord{
		ID:           uuid.New(),
		UserID:       userID,
		OriginalText: "original",
		Status:       status,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	store.records[record.ID] = record
	return record
}

func TestHistoryList_OwnRecordsNewestFirst(t *testing.T) {
	store := newMockStore()
	gen := &mockGenerator{text: "irrelevant"}
	router := newRouter(store, gen, &stubAuthenticator{userID: testUserID})

	older := seedRecord(store, testUserID, time.Now().Add(-time.Hour), models.StatusCompleted)
	newer := seedRecord(store, testUserID, time.Now(), models.StatusProcessing)
	seedRecord(store, otherUserID, time.Now(), models.StatusCompleted)

	w := doJSON(router, "GET", "/history", "token", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HistoryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Records, 2)
	assert.Equal(t, newer.ID.String(), resp.Records[0].ID)
	assert.Equal(t, older.ID.String(), resp.Records[1].ID)
}

func TestHistoryGet_OwnRecord(t *testing.T) {
	store := newMockStore()
	gen := &mockGenerator{text: "irrelevant"}
	router := newRouter(store, gen, &stubAuthenticator{userID: testUserID})

	record := seedRecord(store, testUserID, time.Now(), models.StatusCompleted)
	record.OptimizedText.String = "optimized"
	record.OptimizedText.Valid = true
	record.SEOScore.Int64 = 85
	record.SEOScore.Valid = true
	record.Details = json.RawMessage(`{"score":85,"model":"gpt-4"}`)

	w := doJSON(router, "GET", "/history/"+record.ID.String(), "token", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, record.ID.String(), resp.ID)
	assert.Equal(t, "optimized", resp.OptimizedText)
	require.NotNil(t, resp.SEOScore)
	assert.Equal(t, 85, *resp.SEOScore)
	assert.Equal(t, "gpt-4", resp.Details["model"])
}

func TestHistoryGet_ForeignRecordIsNotFound(t *testing.T) {
	store := newMockStore()
	gen := &mockGenerator{text: "irrelevant"}
	router := newRouter(store, gen, &stubAuthenticator{userID: testUserID})

	foreign := seedRecord(store, otherUserID, time.Now(), models.StatusCompleted)

	w := doJSON(router, "GET", "/history/"+foreign.ID.String(), "token", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotContains(t, w.Body.String(), "original")
}

func TestHistoryGet_StorageFailureIsNotReportedAsMissing(t *testing.T) {
	store := newMockStore()
	gen := &mockGenerator{text: "irrelevant"}
	router := newRouter(store, gen, &stubAuthenticator{userID: testUserID})

	record := seedRecord(store, testUserID, time.Now(), models.StatusCompleted)
	store.getErr = errors.New("connection refused")

	w := doJSON(router, "GET", "/history/"+record.ID.String(), "token", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "record not found")
	assert.Contains(t, w.Body.String(), "failed to get record")
}

func TestHistoryGet_InvalidID(t *testing.T) {
	store := newMockStore()
	gen := &mockGenerator{text: "irrelevant"}
	router := newRouter(store, gen, &stubAuthenticator{userID: testUserID})

	w := doJSON(router, "GET", "/history/not-a-uuid", "token", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
