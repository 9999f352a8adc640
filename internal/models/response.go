package models

import "time"

type OptimizeResponse struct {
	OptimizedText string `json:"optimized_text"`
	SEOScore      int    `json:"seo_score"`
	// Error is set when generation succeeded but the result could not be
	// persisted. The text and score are still returned so the caller is not
	// penalized for a storage failure.
	Error string `json:"error,omitempty"`
}

type GenerateResponse struct {
	Content string `json:"content"`
}

type HistoryListResponse struct {
	Records []RecordSummary `json:"records"`
}

type RecordSummary struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	SEOScore  *int      `json:"seo_score,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RecordResponse struct {
	ID            string                 `json:"id"`
	OriginalText  string                 `json:"original_text"`
	OptimizedText string                 `json:"optimized_text,omitempty"`
	SEOScore      *int                   `json:"seo_score,omitempty"`
	Status        string                 `json:"status"`
	Details       map[string]interface{} `json:"optimization_details,omitempty"`
	ErrorMessage  string                 `json:"error_message,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
