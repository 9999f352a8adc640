package supabase

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"seo-optimizer-backend/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("record not found")

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// NewDatabaseClientWithDB wraps an already-open connection pool.
func NewDatabaseClientWithDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

const recordColumns = `id, user_id, original_text, optimized_text, seo_score, status, optimization_details, error_message, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRecord reads one recordColumns row. optimization_details is NULL until
// the record completes, and database/sql will not scan NULL into a
// json.RawMessage, so it goes through a []byte intermediate.
func scanRecord(row rowScanner, record *models.OptimizationRecord) error {
	var details []byte
	if err := row.Scan(
		&record.ID, &record.UserID, &record.OriginalText, &record.OptimizedText,
		&record.SEOScore, &record.Status, &details, &record.ErrorMessage,
		&record.CreatedAt, &record.UpdatedAt,
	); err != nil {
		return err
	}
	record.Details = details
	return nil
}

// CreateOptimization inserts a new history record at status processing. The
// pipeline will not call the provider unless this insert succeeds.
func (d *DatabaseClient) CreateOptimization(ctx context.Context, userID uuid.UUID, originalText string) (*models.OptimizationRecord, error) {
	var record models.OptimizationRecord
	row := d.db.QueryRowContext(ctx, `
		INSERT INTO optimization_history (id, user_id, original_text, status)
		VALUES ($1, $2, $3, $4)
		RETURNING `+recordColumns+`
	`, uuid.New(), userID, originalText, models.StatusProcessing)
	if err := scanRecord(row, &record); err != nil {
		return nil, fmt.Errorf("failed to create optimization record: %w", err)
	}

	return &record, nil
}

// CompleteOptimization stores the provider result and moves the record to
// completed. Overwriting an already-completed record with the same payload is
// a no-op beyond the updated_at bump.
func (d *DatabaseClient) CompleteOptimization(ctx context.Context, recordID uuid.UUID, optimizedText string, seoScore int, model string) error {
	details, err := json.Marshal(models.OptimizationDetails{
		Score:     seoScore,
		Timestamp: time.Now().UTC(),
		Model:     model,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal optimization details: %w", err)
	}

	result, err := d.db.ExecContext(ctx, `
		UPDATE optimization_history
		SET optimized_text = $1, seo_score = $2, status = $3,
		    optimization_details = $4, error_message = NULL, updated_at = NOW()
		WHERE id = $5
	`, optimizedText, seoScore, models.StatusCompleted, details, recordID)
	if err != nil {
		return fmt.Errorf("failed to update optimization results: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update optimization results: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to update optimization results: %w", ErrNotFound)
	}

	return nil
}

// MarkOptimizationFailed records why a processing record never completed.
func (d *DatabaseClient) MarkOptimizationFailed(ctx context.Context, recordID uuid.UUID, reason string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE optimization_history
		SET status = $1, error_message = $2, updated_at = NOW()
		WHERE id = $3
	`, models.StatusFailed, reason, recordID)
	if err != nil {
		return fmt.Errorf("failed to mark optimization failed: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListOptimizations(ctx context.Context, userID uuid.UUID) ([]models.OptimizationRecord, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM optimization_history
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list optimization records: %w", err)
	}
	defer rows.Close()

	var records []models.OptimizationRecord
	for rows.Next() {
		var record models.OptimizationRecord
		if err := scanRecord(rows, &record); err != nil {
			return nil, fmt.Errorf("failed to scan optimization record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list optimization records: %w", err)
	}

	return records, nil
}

// GetOptimization fetches a single record. The user filter is part of the
// query so a foreign record is indistinguishable from a missing one.
func (d *DatabaseClient) GetOptimization(ctx context.Context, recordID, userID uuid.UUID) (*models.OptimizationRecord, error) {
	var record models.OptimizationRecord
	row := d.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM optimization_history
		WHERE id = $1 AND user_id = $2
	`, recordID, userID)
	err := scanRecord(row, &record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get optimization record: %w", err)
	}

	return &record, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
