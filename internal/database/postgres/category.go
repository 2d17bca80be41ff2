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

// CategoryRepository implements repository.Category for PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) repository.Category {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `category_id, category_name, slug, description, display_order, created_at, updated_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var cat domain.Category
	err := row.Scan(
		&cat.ID,
		&cat.Name,
		&cat.Slug,
		&cat.Description,
		&cat.DisplayOrder,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// GetAll retrieves all categories in display order
func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY display_order, category_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *cat)
	}
	return categories, rows.Err()
}

// GetBySlug retrieves a category by slug
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)

	cat, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return cat, nil
}

// Insert inserts a category and returns its generated ID
func (r *CategoryRepository) Insert(ctx context.Context, category *domain.Category) (int, error) {
	var categoryID int
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (category_name, slug, description, display_order)
		 VALUES ($1, $2, $3, $4)
		 RETURNING category_id`,
		category.Name, category.Slug, category.Description, category.DisplayOrder).Scan(&categoryID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrSlugTaken, category.Slug)
		}
		return 0, fmt.Errorf("failed to insert category: %w", err)
	}
	return categoryID, nil
}

// Update updates an existing category
func (r *CategoryRepository) Update(ctx context.Context, categoryID int, category *domain.Category) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE categories
		 SET category_name = $2, slug = $3, description = $4, display_order = $5, updated_at = now()
		 WHERE category_id = $1`,
		categoryID, category.Name, category.Slug, category.Description, category.DisplayOrder)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrSlugTaken, category.Slug)
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(ctx context.Context, categoryID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
