// Package content manages the ordered content blocks that make up an
// operator review page.
package content

import (
	"context"
	"fmt"

	"github.com/whaamkabaam/trust-skin-hub/internal/concurrency"
	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
	"github.com/whaamkabaam/trust-skin-hub/internal/validation"
)

// Service defines the interface for content block operations
type Service interface {
	GetPage(ctx context.Context, operatorID string) ([]domain.ContentBlock, error)
	AddBlock(ctx context.Context, block *domain.ContentBlock) (int, error)
	UpdateBlock(ctx context.Context, blockID int, block *domain.ContentBlock) error
	DeleteBlock(ctx context.Context, blockID int) error
	ReorderBlocks(ctx context.Context, operatorID string, blockIDs []int) error
}

type service struct {
	repo      repository.Content
	operators repository.Operator
	payloads  *validation.PayloadValidator
	// locks serializes page mutations per operator: block positions are
	// read-modify-write, so concurrent edits to one page would race.
	locks *concurrency.LockManager
}

// NewService creates a new content service
func NewService(repo repository.Content, operators repository.Operator) Service {
	return &service{
		repo:      repo,
		operators: operators,
		payloads:  validation.MustNewPayloadValidator(),
		locks:     concurrency.NewLockManager(),
	}
}

func (s *service) GetPage(ctx context.Context, operatorID string) ([]domain.ContentBlock, error) {
	blocks, err := s.repo.GetByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content blocks: %w", err)
	}
	return blocks, nil
}

// AddBlock validates the typed payload and appends the block at the end of
// the operator's page.
func (s *service) AddBlock(ctx context.Context, block *domain.ContentBlock) (int, error) {
	log := logger.FromContext(ctx)

	if _, err := s.operators.GetByID(ctx, block.OperatorID); err != nil {
		return 0, err
	}
	if err := s.payloads.ValidatePayload(block.Type, block.Payload); err != nil {
		return 0, err
	}
	if _, err := block.DecodePayload(); err != nil {
		return 0, err
	}

	lock := s.locks.GetLock(block.OperatorID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.repo.GetByOperator(ctx, block.OperatorID)
	if err != nil {
		return 0, fmt.Errorf("failed to get content blocks: %w", err)
	}
	block.Position = len(existing)

	blockID, err := s.repo.Insert(ctx, block)
	if err != nil {
		return 0, err
	}
	log.Info("Content block added", "operator_id", block.OperatorID, "block_id", blockID, "type", block.Type)
	return blockID, nil
}

// UpdateBlock replaces a block's type, heading and payload in place
func (s *service) UpdateBlock(ctx context.Context, blockID int, block *domain.ContentBlock) error {
	if err := s.payloads.ValidatePayload(block.Type, block.Payload); err != nil {
		return err
	}
	if _, err := block.DecodePayload(); err != nil {
		return err
	}
	return s.repo.Update(ctx, blockID, block)
}

// DeleteBlock removes a block and reindexes the remaining positions so the
// page stays contiguous.
func (s *service) DeleteBlock(ctx context.Context, blockID int) error {
	block, err := s.repo.GetByID(ctx, blockID)
	if err != nil {
		return err
	}

	lock := s.locks.GetLock(block.OperatorID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.repo.Delete(ctx, blockID); err != nil {
		return err
	}

	remaining, err := s.repo.GetByOperator(ctx, block.OperatorID)
	if err != nil {
		return fmt.Errorf("failed to get content blocks: %w", err)
	}
	ids := make([]int, len(remaining))
	for i, b := range remaining {
		ids[i] = b.ID
	}
	if len(ids) == 0 {
		return nil
	}
	return s.repo.Reorder(ctx, block.OperatorID, ids)
}

// ReorderBlocks applies a full new ordering. The ID set must exactly cover
// the operator's current blocks.
func (s *service) ReorderBlocks(ctx context.Context, operatorID string, blockIDs []int) error {
	lock := s.locks.GetLock(operatorID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.repo.GetByOperator(ctx, operatorID)
	if err != nil {
		return fmt.Errorf("failed to get content blocks: %w", err)
	}
	if len(blockIDs) != len(existing) {
		return fmt.Errorf("%w: expected %d block IDs, got %d", domain.ErrInvalidInput, len(existing), len(blockIDs))
	}

	known := make(map[int]bool, len(existing))
	for _, b := range existing {
		known[b.ID] = true
	}
	seen := make(map[int]bool, len(blockIDs))
	for _, id := range blockIDs {
		if !known[id] {
			return fmt.Errorf("%w: block %d does not belong to operator", domain.ErrInvalidInput, id)
		}
		if seen[id] {
			return fmt.Errorf("%w: block %d listed twice", domain.ErrInvalidInput, id)
		}
		seen[id] = true
	}

	return s.repo.Reorder(ctx, operatorID, blockIDs)
}
