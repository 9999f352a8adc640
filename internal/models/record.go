package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Record lifecycle. A record starts at processing and moves to completed once
// the provider result has been persisted, or to failed when the provider call
// errors after the record was created.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

type OptimizationRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	OriginalText  string
	OptimizedText sql.NullString
	SEOScore      sql.NullInt64
	Status        string
	Details       json.RawMessage
	ErrorMessage  sql.NullString
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OptimizationDetails is stored alongside the final result for audit purposes.
type OptimizationDetails struct {
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
	Model     string    `json:"model"`
}
