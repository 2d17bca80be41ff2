// Package operator manages review-page lifecycle for mystery-box operators:
// creation, editing, status transitions and scheduled publishing.
package operator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/metrics"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
	"github.com/whaamkabaam/trust-skin-hub/internal/slug"
)

// MaxSlugRetries bounds the numeric-suffix search for a free slug
const MaxSlugRetries = 20

// Service defines the interface for operator lifecycle operations
type Service interface {
	List(ctx context.Context, publishedOnly bool) ([]domain.Operator, error)
	GetByID(ctx context.Context, id string) (*domain.Operator, error)
	GetBySlug(ctx context.Context, slugStr string) (*domain.Operator, error)
	Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error)
	Update(ctx context.Context, id string, op *domain.Operator) error
	Delete(ctx context.Context, id string) error
	ChangeStatus(ctx context.Context, id string, target domain.OperatorStatus) error
	SchedulePublish(ctx context.Context, id string, at time.Time) error
	PublishDue(ctx context.Context, now time.Time) (int, error)
}

type service struct {
	repo repository.Operator
}

// NewService creates a new operator service
func NewService(repo repository.Operator) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, publishedOnly bool) ([]domain.Operator, error) {
	operators, err := s.repo.GetAll(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}
	return operators, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.Operator, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slugStr string) (*domain.Operator, error) {
	return s.repo.GetBySlug(ctx, slug.Normalize(slugStr))
}

// Create inserts a new draft operator. A missing slug is generated from the
// name; collisions are retried with a numeric suffix.
func (s *service) Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error) {
	log := logger.FromContext(ctx)

	if op.Name == "" {
		return nil, fmt.Errorf("%w: operator name required", domain.ErrInvalidInput)
	}
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if op.Status == "" {
		op.Status = domain.StatusDraft
	}
	if !domain.IsValidOperatorStatus(string(op.Status)) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, op.Status)
	}

	base := op.Slug
	if base == "" {
		base = slug.Generate(op.Name)
	} else {
		base = slug.Normalize(base)
	}

	candidate := base
	for attempt := 1; ; attempt++ {
		op.Slug = candidate
		err := s.repo.Insert(ctx, op)
		if err == nil {
			log.Info("Operator created", "operator_id", op.ID, "slug", op.Slug)
			return op, nil
		}
		if !errors.Is(err, domain.ErrSlugTaken) {
			return nil, err
		}
		if attempt >= MaxSlugRetries {
			return nil, fmt.Errorf("%w: no free slug for %q", domain.ErrSlugTaken, base)
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt+1)
	}
}

func (s *service) Update(ctx context.Context, id string, op *domain.Operator) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	op.ID = existing.ID
	if op.Slug == "" {
		op.Slug = existing.Slug
	} else {
		op.Slug = slug.Normalize(op.Slug)
	}
	// Status changes go through ChangeStatus, not Update
	op.Status = existing.Status
	op.PublishAt = existing.PublishAt

	return s.repo.Update(ctx, op)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// ChangeStatus applies one lifecycle transition, enforcing the allowed graph
func (s *service) ChangeStatus(ctx context.Context, id string, target domain.OperatorStatus) error {
	log := logger.FromContext(ctx)

	if !domain.IsValidOperatorStatus(string(target)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidStatus, target)
	}

	op, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !op.Status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatus, op.Status, target)
	}

	op.Status = target
	if target != domain.StatusScheduled {
		op.PublishAt = nil
	}
	if err := s.repo.Update(ctx, op); err != nil {
		return err
	}

	if target == domain.StatusPublished {
		metrics.OperatorsPublished.Inc()
	}
	log.Info("Operator status changed", "operator_id", id, "status", target)
	return nil
}

// SchedulePublish moves an operator to scheduled with a future publish time
func (s *service) SchedulePublish(ctx context.Context, id string, at time.Time) error {
	if at.Before(time.Now()) {
		return fmt.Errorf("%w: publish time must be in the future", domain.ErrInvalidInput)
	}

	op, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !op.Status.CanTransitionTo(domain.StatusScheduled) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatus, op.Status, domain.StatusScheduled)
	}

	op.Status = domain.StatusScheduled
	op.PublishAt = &at
	return s.repo.Update(ctx, op)
}

// PublishDue flips every scheduled operator whose publish time has passed to
// published and returns how many were flipped.
func (s *service) PublishDue(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.repo.GetDuePublish(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to get due operators: %w", err)
	}

	published := 0
	for i := range due {
		op := due[i]
		op.Status = domain.StatusPublished
		op.PublishAt = nil
		if err := s.repo.Update(ctx, &op); err != nil {
			log.Error("Failed to publish scheduled operator", "operator_id", op.ID, "error", err)
			continue
		}
		metrics.OperatorsPublished.Inc()
		published++
	}

	if published > 0 {
		log.Info("Published scheduled operators", "count", published)
	}
	return published, nil
}
