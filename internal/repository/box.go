package repository

import (
	"context"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Box defines the interface for box catalog persistence
type Box interface {
	GetAll(ctx context.Context, filter domain.BoxFilter) ([]domain.Box, error)
	GetByID(ctx context.Context, id int) (*domain.Box, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Box, error)

	// GetAllNames returns every box name with its slug, for fuzzy resolution
	GetAllNames(ctx context.Context) (map[string]string, error)

	Insert(ctx context.Context, box *domain.Box) (int, error)
	Update(ctx context.Context, boxID int, box *domain.Box) error
	Delete(ctx context.Context, boxID int) error

	// ReplaceItems swaps a box's full prize table in one transaction
	ReplaceItems(ctx context.Context, boxID int, items []domain.BoxItem) error
}
