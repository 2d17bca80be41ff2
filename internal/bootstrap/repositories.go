package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/whaamkabaam/trust-skin-hub/internal/database/postgres"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Box          repository.Box
	Category     repository.Category
	Operator     repository.Operator
	Content      repository.Content
	SyncMetadata repository.SyncMetadata
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Box:          postgres.NewBoxRepository(dbPool),
		Category:     postgres.NewCategoryRepository(dbPool),
		Operator:     postgres.NewOperatorRepository(dbPool),
		Content:      postgres.NewContentRepository(dbPool),
		SyncMetadata: postgres.NewSyncMetadataRepository(dbPool),
	}
}
