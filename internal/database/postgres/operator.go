package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
)

// OperatorRepository implements repository.Operator for PostgreSQL
type OperatorRepository struct {
	pool *pgxpool.Pool
}

// NewOperatorRepository creates a new OperatorRepository
func NewOperatorRepository(pool *pgxpool.Pool) repository.Operator {
	return &OperatorRepository{pool: pool}
}

const operatorColumns = `operator_id, operator_name, slug, site_url, status, rating, verdict_summary, publish_at, created_at, updated_at`

func scanOperator(row pgx.Row) (*domain.Operator, error) {
	var op domain.Operator
	err := row.Scan(
		&op.ID,
		&op.Name,
		&op.Slug,
		&op.SiteURL,
		&op.Status,
		&op.Rating,
		&op.VerdictSummary,
		&op.PublishAt,
		&op.CreatedAt,
		&op.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// GetAll retrieves all operators, optionally restricted to published pages
func (r *OperatorRepository) GetAll(ctx context.Context, publishedOnly bool) ([]domain.Operator, error) {
	query := `SELECT ` + operatorColumns + ` FROM operators`
	if publishedOnly {
		query += ` WHERE status = 'published'`
	}
	query += ` ORDER BY operator_name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get operators: %w", err)
	}
	defer rows.Close()

	var operators []domain.Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operator: %w", err)
		}
		operators = append(operators, *op)
	}
	return operators, rows.Err()
}

// GetByID retrieves an operator by ID
func (r *OperatorRepository) GetByID(ctx context.Context, id string) (*domain.Operator, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+operatorColumns+` FROM operators WHERE operator_id = $1`, id)

	op, err := scanOperator(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return op, nil
}

// GetBySlug retrieves an operator by slug
func (r *OperatorRepository) GetBySlug(ctx context.Context, slug string) (*domain.Operator, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+operatorColumns+` FROM operators WHERE slug = $1`, slug)

	op, err := scanOperator(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOperatorNotFound
		}
		return nil, fmt.Errorf("failed to get operator by slug: %w", err)
	}
	return op, nil
}

// Insert inserts a new operator
func (r *OperatorRepository) Insert(ctx context.Context, op *domain.Operator) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO operators (operator_id, operator_name, slug, site_url, status, rating, verdict_summary, publish_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		op.ID, op.Name, op.Slug, op.SiteURL, op.Status, op.Rating, op.VerdictSummary, op.PublishAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrSlugTaken, op.Slug)
		}
		return fmt.Errorf("failed to insert operator: %w", err)
	}
	return nil
}

// Update updates an existing operator
func (r *OperatorRepository) Update(ctx context.Context, op *domain.Operator) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE operators
		 SET operator_name = $2, slug = $3, site_url = $4, status = $5, rating = $6,
		     verdict_summary = $7, publish_at = $8, updated_at = now()
		 WHERE operator_id = $1`,
		op.ID, op.Name, op.Slug, op.SiteURL, op.Status, op.Rating, op.VerdictSummary, op.PublishAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrSlugTaken, op.Slug)
		}
		return fmt.Errorf("failed to update operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOperatorNotFound
	}
	return nil
}

// Delete removes an operator and, via cascade, its content blocks
func (r *OperatorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM operators WHERE operator_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOperatorNotFound
	}
	return nil
}

// GetDuePublish returns scheduled operators whose publish time has passed
func (r *OperatorRepository) GetDuePublish(ctx context.Context, now time.Time) ([]domain.Operator, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+operatorColumns+` FROM operators
		 WHERE status = 'scheduled' AND publish_at IS NOT NULL AND publish_at <= $1
		 ORDER BY publish_at`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due operators: %w", err)
	}
	defer rows.Close()

	var operators []domain.Operator
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan operator: %w", err)
		}
		operators = append(operators, *op)
	}
	return operators, rows.Err()
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
