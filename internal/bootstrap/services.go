package bootstrap

import (
	"fmt"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/config"
	"github.com/whaamkabaam/trust-skin-hub/internal/content"
	"github.com/whaamkabaam/trust-skin-hub/internal/importer"
	"github.com/whaamkabaam/trust-skin-hub/internal/operator"
)

// Services holds all application services
type Services struct {
	Catalog  catalog.Service
	Operator operator.Service
	Content  content.Service
	Importer importer.Service
}

// InitializeServices wires repositories into application services
func InitializeServices(cfg *config.Config, repos *Repositories) (*Services, error) {
	catalogService, err := catalog.NewService(repos.Box, repos.Category, cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog service: %w", err)
	}

	return &Services{
		Catalog:  catalogService,
		Operator: operator.NewService(repos.Operator),
		Content:  content.NewService(repos.Content, repos.Operator),
		Importer: importer.NewService(repos.Box, repos.SyncMetadata),
	}, nil
}
