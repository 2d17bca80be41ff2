package repository

import (
	"context"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// SyncMetadata defines the interface for provider import bookkeeping
type SyncMetadata interface {
	Get(ctx context.Context, provider string) (*domain.SyncMetadata, error)
	Upsert(ctx context.Context, metadata *domain.SyncMetadata) error
}
