package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
)

// SyncMetadataRepository implements repository.SyncMetadata for PostgreSQL
type SyncMetadataRepository struct {
	pool *pgxpool.Pool
}

// NewSyncMetadataRepository creates a new SyncMetadataRepository
func NewSyncMetadataRepository(pool *pgxpool.Pool) repository.SyncMetadata {
	return &SyncMetadataRepository{pool: pool}
}

// Get retrieves the last import record for a provider
func (r *SyncMetadataRepository) Get(ctx context.Context, provider string) (*domain.SyncMetadata, error) {
	var meta domain.SyncMetadata
	err := r.pool.QueryRow(ctx,
		`SELECT provider, last_synced_at, rows_imported, rows_rejected, source_file
		 FROM sync_metadata WHERE provider = $1`, provider).
		Scan(&meta.Provider, &meta.LastSyncedAt, &meta.RowsImported, &meta.RowsRejected, &meta.SourceFile)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidProvider
		}
		return nil, fmt.Errorf("failed to get sync metadata: %w", err)
	}
	return &meta, nil
}

// Upsert records the outcome of a provider import
func (r *SyncMetadataRepository) Upsert(ctx context.Context, metadata *domain.SyncMetadata) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sync_metadata (provider, last_synced_at, rows_imported, rows_rejected, source_file)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (provider) DO UPDATE
		 SET last_synced_at = EXCLUDED.last_synced_at,
		     rows_imported = EXCLUDED.rows_imported,
		     rows_rejected = EXCLUDED.rows_rejected,
		     source_file = EXCLUDED.source_file`,
		metadata.Provider, metadata.LastSyncedAt, metadata.RowsImported,
		metadata.RowsRejected, metadata.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to upsert sync metadata: %w", err)
	}
	return nil
}
