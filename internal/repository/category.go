package repository

import (
	"context"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Category defines the interface for category persistence
type Category interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Insert(ctx context.Context, category *domain.Category) (int, error)
	Update(ctx context.Context, categoryID int, category *domain.Category) error
	Delete(ctx context.Context, categoryID int) error
}
