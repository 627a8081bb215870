package repository

import (
	"context"
	"time"

	"github.com/floatchat-backend/internal/domain"
)

// CacheRepository backs query-result caching and shared-history storage.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// GetHistory returns a shared chat history, or nil when absent.
	GetHistory(ctx context.Context, id string) ([]domain.ChatMessage, error)

	// SetHistory stores a shared chat history under id with a TTL.
	SetHistory(ctx context.Context, id string, history []domain.ChatMessage, ttl time.Duration) error
}
