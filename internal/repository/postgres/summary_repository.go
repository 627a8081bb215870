package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/embedding"
	"github.com/floatchat-backend/internal/pkg/errors"
)

type summaryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSummaryRepository(db *DB) repository.SummaryRepository {
	return &summaryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *summaryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS vector`); err != nil {
		r.logger.Error("Failed to create vector extension", zap.Error(err))
		return errors.ErrDatabaseError
	}

	// Column width must match the encoder output exactly.
	schema := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS float_summaries (
			float_id  TEXT PRIMARY KEY,
			summary   TEXT NOT NULL,
			embedding vector(%d) NOT NULL
		);
	`, embedding.Dim)
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		r.logger.Error("Failed to ensure summary schema", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *summaryRepository) Upsert(ctx context.Context, floatID, summary string, emb []float32) error {
	query := `
		INSERT INTO float_summaries (float_id, summary, embedding)
		VALUES ($1, $2, $3)
		ON CONFLICT (float_id) DO UPDATE SET
			summary   = EXCLUDED.summary,
			embedding = EXCLUDED.embedding
	`

	_, err := r.db.ExecContext(ctx, query, floatID, summary, pgvector.NewVector(emb))
	if err != nil {
		r.logger.Error("Failed to upsert float summary",
			zap.String("float_id", floatID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *summaryRepository) Search(ctx context.Context, emb []float32, k int) ([]domain.FloatSummary, error) {
	query := `
		SELECT float_id, summary, embedding <-> $1 AS score
		FROM float_summaries
		ORDER BY embedding <-> $1
		LIMIT $2
	`

	var hits []domain.FloatSummary
	if err := r.db.SelectContext(ctx, &hits, query, pgvector.NewVector(emb), k); err != nil {
		r.logger.Error("Failed to search float summaries", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return hits, nil
}
