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

// ContentRepository implements repository.Content for PostgreSQL
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(pool *pgxpool.Pool) repository.Content {
	return &ContentRepository{pool: pool}
}

const contentColumns = `block_id, operator_id, block_type, heading, payload, position, created_at, updated_at`

func scanContentBlock(row pgx.Row) (*domain.ContentBlock, error) {
	var block domain.ContentBlock
	err := row.Scan(
		&block.ID,
		&block.OperatorID,
		&block.Type,
		&block.Heading,
		&block.Payload,
		&block.Position,
		&block.CreatedAt,
		&block.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// GetByOperator retrieves an operator's content blocks in page order
func (r *ContentRepository) GetByOperator(ctx context.Context, operatorID string) ([]domain.ContentBlock, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+contentColumns+` FROM content_blocks
		 WHERE operator_id = $1 ORDER BY position`, operatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content blocks: %w", err)
	}
	defer rows.Close()

	var blocks []domain.ContentBlock
	for rows.Next() {
		block, err := scanContentBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content block: %w", err)
		}
		blocks = append(blocks, *block)
	}
	return blocks, rows.Err()
}

// GetByID retrieves a single content block
func (r *ContentRepository) GetByID(ctx context.Context, blockID int) (*domain.ContentBlock, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+contentColumns+` FROM content_blocks WHERE block_id = $1`, blockID)

	block, err := scanContentBlock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentBlockNotFound
		}
		return nil, fmt.Errorf("failed to get content block: %w", err)
	}
	return block, nil
}

// Insert inserts a content block and returns its generated ID
func (r *ContentRepository) Insert(ctx context.Context, block *domain.ContentBlock) (int, error) {
	var blockID int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO content_blocks (operator_id, block_type, heading, payload, position)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING block_id`,
		block.OperatorID, block.Type, block.Heading, block.Payload, block.Position).Scan(&blockID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert content block: %w", err)
	}
	return blockID, nil
}

// Update updates a content block's type, heading and payload
func (r *ContentRepository) Update(ctx context.Context, blockID int, block *domain.ContentBlock) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE content_blocks
		 SET block_type = $2, heading = $3, payload = $4, updated_at = now()
		 WHERE block_id = $1`,
		blockID, block.Type, block.Heading, block.Payload)
	if err != nil {
		return fmt.Errorf("failed to update content block: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentBlockNotFound
	}
	return nil
}

// Delete removes a content block
func (r *ContentRepository) Delete(ctx context.Context, blockID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM content_blocks WHERE block_id = $1`, blockID)
	if err != nil {
		return fmt.Errorf("failed to delete content block: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentBlockNotFound
	}
	return nil
}

// Reorder rewrites positions for an operator's blocks in one transaction.
// blockIDs holds the desired order; positions are assigned 0..n-1.
func (r *ContentRepository) Reorder(ctx context.Context, operatorID string, blockIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for position, blockID := range blockIDs {
		tag, err := tx.Exec(ctx,
			`UPDATE content_blocks SET position = $3, updated_at = now()
			 WHERE block_id = $1 AND operator_id = $2`,
			blockID, operatorID, position)
		if err != nil {
			return fmt.Errorf("failed to reorder content block: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: block %d", domain.ErrContentBlockNotFound, blockID)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
