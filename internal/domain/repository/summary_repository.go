package repository

import (
	"context"

	"github.com/floatchat-backend/internal/domain"
)

// SummaryRepository is the vector index of per-float summary sentences.
// Index internals belong to the storage engine; callers only embed and
// search.
type SummaryRepository interface {
	EnsureSchema(ctx context.Context) error

	// Upsert replaces a float's summary and embedding.
	Upsert(ctx context.Context, floatID, summary string, embedding []float32) error

	// Search returns the k nearest summaries to the query embedding,
	// closest first.
	Search(ctx context.Context, embedding []float32, k int) ([]domain.FloatSummary, error)
}
