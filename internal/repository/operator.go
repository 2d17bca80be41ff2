package repository

import (
	"context"
	"time"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// Operator defines the interface for operator persistence
type Operator interface {
	GetAll(ctx context.Context, publishedOnly bool) ([]domain.Operator, error)
	GetByID(ctx context.Context, id string) (*domain.Operator, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Operator, error)
	Insert(ctx context.Context, op *domain.Operator) error
	Update(ctx context.Context, op *domain.Operator) error
	Delete(ctx context.Context, id string) error

	// GetDuePublish returns scheduled operators whose publish time has passed
	GetDuePublish(ctx context.Context, now time.Time) ([]domain.Operator, error)
}
