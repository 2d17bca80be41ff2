package repository

import (
	"context"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Content defines the interface for operator content block persistence
type Content interface {
	GetByOperator(ctx context.Context, operatorID string) ([]domain.ContentBlock, error)
	GetByID(ctx context.Context, blockID int) (*domain.ContentBlock, error)
	Insert(ctx context.Context, block *domain.ContentBlock) (int, error)
	Update(ctx context.Context, blockID int, block *domain.ContentBlock) error
	Delete(ctx context.Context, blockID int) error

	// Reorder rewrites positions for an operator's blocks to be contiguous
	Reorder(ctx context.Context, operatorID string, blockIDs []int) error
}
