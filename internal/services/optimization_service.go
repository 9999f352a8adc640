package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"seo-optimizer-backend/internal/models"
	"seo-optimizer-backend/internal/provider"
	"seo-optimizer-backend/internal/scoring"
)

// Validation failures. All are raised before any network or storage call.
var (
	ErrEmptyText   = errors.New("text must not be empty")
	ErrNoTags      = errors.New("at least one tag is required")
	ErrTooManyTags = errors.New("at most 4 tags are allowed")
	ErrBlankTag    = errors.New("tags must not be blank")
)

const maxTags = 4

// seoInstruction is the fixed system prompt for optimize mode.
const seoInstruction = `You are an SEO expert. Analyze and optimize the given content following these guidelines:
- Improve readability and structure
- Optimize keyword usage and density
- Add relevant LSI keywords
- Suggest better headings and meta descriptions
- Enhance content structure with proper heading hierarchy
Return the optimized content along with a detailed analysis of changes made.`

// HistoryStore is the slice of the record store the pipeline writes through.
// The pipeline is the only writer of optimization records.
type HistoryStore interface {
	CreateOptimization(ctx context.Context, userID uuid.UUID, originalText string) (*models.OptimizationRecord, error)
	CompleteOptimization(ctx context.Context, recordID uuid.UUID, optimizedText string, seoScore int, model string) error
	MarkOptimizationFailed(ctx context.Context, recordID uuid.UUID, reason string) error
}

// OptimizationService runs the request pipeline: validate, record, generate,
// finalize. Each stage is a sequential blocking call; a failure aborts the
// stages after it.
type OptimizationService struct {
	store     HistoryStore
	optimizer provider.Generator
	generator provider.Generator
	scorer    scoring.Strategy
}

func NewOptimizationService(store HistoryStore, optimizer, generator provider.Generator, scorer scoring.Strategy) *OptimizationService {
	return &OptimizationService{
		store:     store,
		optimizer: optimizer,
		generator: generator,
		scorer:    scorer,
	}
}

type OptimizeResult struct {
	RecordID      uuid.UUID
	OptimizedText string
	SEOScore      int
	// CompletionErr is set when the result could not be persisted. The text
	// and score are still valid; the record stays inconsistent.
	CompletionErr error
}

// OptimizeText rewrites text for SEO and tracks the attempt in history.
func (s *OptimizationService) OptimizeText(ctx context.Context, userID uuid.UUID, text string) (*OptimizeResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	// Never pay for generation we cannot record.
	record, err := s.store.CreateOptimization(ctx, userID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to create history record: %w", err)
	}

	optimized, err := s.optimizer.Generate(ctx, provider.Prompt{
		Instruction: seoInstruction,
		Input:       text,
	})
	if err != nil {
		// Best effort; the provider error is what the caller needs to see.
		_ = s.store.MarkOptimizationFailed(ctx, record.ID, err.Error())
		return nil, err
	}

	score := s.scorer.Score(text, optimized)

	result := &OptimizeResult{
		RecordID:      record.ID,
		OptimizedText: optimized,
		SEOScore:      score,
	}

	if err := s.store.CompleteOptimization(ctx, record.ID, optimized, score, s.optimizer.Model()); err != nil {
		result.CompletionErr = fmt.Errorf("failed to store optimization results: %w", err)
	}

	return result, nil
}

// GenerateFromTags produces a fresh article covering the given topics. No
// history record is created in this mode.
func (s *OptimizationService) GenerateFromTags(ctx context.Context, tags []string) (string, error) {
	if len(tags) == 0 {
		return "", ErrNoTags
	}
	if len(tags) > maxTags {
		return "", ErrTooManyTags
	}
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return "", ErrBlankTag
		}
	}

	prompt := fmt.Sprintf(
		"Generate an informative article about %s. The article should be well-structured and include relevant information about all selected topics.",
		strings.Join(tags, ", "),
	)

	content, err := s.generator.Generate(ctx, provider.Prompt{Input: prompt})
	if err != nil {
		return "", err
	}

	return content, nil
}
