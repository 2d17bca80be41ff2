package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
)

// BoxRepository implements repository.Box for PostgreSQL
type BoxRepository struct {
	pool *pgxpool.Pool
}

// NewBoxRepository creates a new BoxRepository
func NewBoxRepository(pool *pgxpool.Pool) repository.Box {
	return &BoxRepository{pool: pool}
}

const boxColumns = `box_id, operator_id, box_name, slug, price, category, tags, provider, image_url, published, created_at, updated_at`

func scanBox(row pgx.Row) (*domain.Box, error) {
	var box domain.Box
	var operatorID *string
	err := row.Scan(
		&box.ID,
		&operatorID,
		&box.Name,
		&box.Slug,
		&box.Price,
		&box.Category,
		&box.Tags,
		&box.Provider,
		&box.ImageURL,
		&box.Published,
		&box.CreatedAt,
		&box.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if operatorID != nil {
		box.OperatorID = *operatorID
	}
	return &box, nil
}

// GetAll retrieves boxes matching the filter, without prize tables
func (r *BoxRepository) GetAll(ctx context.Context, filter domain.BoxFilter) ([]domain.Box, error) {
	var conditions []string
	var args []any

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Category != "" {
		addCondition("category = $%d", filter.Category)
	}
	if filter.Provider != "" {
		addCondition("provider = $%d", filter.Provider)
	}
	if filter.MinPrice > 0 {
		addCondition("price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		addCondition("price <= $%d", filter.MaxPrice)
	}
	if filter.PublishedOnly {
		conditions = append(conditions, "published = true")
	}

	query := `SELECT ` + boxColumns + ` FROM boxes`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY ` + sortClause(filter.SortBy)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get boxes: %w", err)
	}
	defer rows.Close()

	var boxes []domain.Box
	for rows.Next() {
		box, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box: %w", err)
		}
		boxes = append(boxes, *box)
	}
	return boxes, rows.Err()
}

func sortClause(sortBy string) string {
	switch sortBy {
	case domain.SortByPriceAsc:
		return "price, box_name"
	case domain.SortByPriceDesc:
		return "price DESC, box_name"
	case domain.SortByNewest:
		return "created_at DESC, box_name"
	default:
		return "box_name"
	}
}

// GetByID retrieves a box with its full prize table
func (r *BoxRepository) GetByID(ctx context.Context, id int) (*domain.Box, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+boxColumns+` FROM boxes WHERE box_id = $1`, id)

	box, err := scanBox(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoxNotFound
		}
		return nil, fmt.Errorf("failed to get box: %w", err)
	}

	if err := r.loadItems(ctx, box); err != nil {
		return nil, err
	}
	return box, nil
}

// GetBySlug retrieves a box by slug with its full prize table
func (r *BoxRepository) GetBySlug(ctx context.Context, slug string) (*domain.Box, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+boxColumns+` FROM boxes WHERE slug = $1`, slug)

	box, err := scanBox(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBoxNotFound
		}
		return nil, fmt.Errorf("failed to get box by slug: %w", err)
	}

	if err := r.loadItems(ctx, box); err != nil {
		return nil, err
	}
	return box, nil
}

func (r *BoxRepository) loadItems(ctx context.Context, box *domain.Box) error {
	rows, err := r.pool.Query(ctx,
		`SELECT item_name, item_value, drop_chance, image_url, item_type
		 FROM box_items WHERE box_id = $1 ORDER BY item_value DESC`, box.ID)
	if err != nil {
		return fmt.Errorf("failed to get box items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.BoxItem
		if err := rows.Scan(&item.Name, &item.Value, &item.DropChance, &item.Image, &item.Type); err != nil {
			return fmt.Errorf("failed to scan box item: %w", err)
		}
		box.Items = append(box.Items, item)
	}
	return rows.Err()
}

// GetAllNames returns every box name mapped to its slug
func (r *BoxRepository) GetAllNames(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT box_name, slug FROM boxes`)
	if err != nil {
		return nil, fmt.Errorf("failed to get box names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]string)
	for rows.Next() {
		var name, slug string
		if err := rows.Scan(&name, &slug); err != nil {
			return nil, fmt.Errorf("failed to scan box name: %w", err)
		}
		names[name] = slug
	}
	return names, rows.Err()
}

// Insert inserts a box and its prize table, returning the new box ID
func (r *BoxRepository) Insert(ctx context.Context, box *domain.Box) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var boxID int
	err = tx.QueryRow(ctx,
		`INSERT INTO boxes (operator_id, box_name, slug, price, category, tags, provider, image_url, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING box_id`,
		nullIfEmpty(box.OperatorID), box.Name, box.Slug, box.Price, box.Category,
		box.Tags, box.Provider, box.ImageURL, box.Published).Scan(&boxID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrSlugTaken, box.Slug)
		}
		return 0, fmt.Errorf("failed to insert box: %w", err)
	}

	if err := insertItems(ctx, tx, boxID, box.Items); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return boxID, nil
}

// Update updates a box's own fields, leaving its prize table untouched
func (r *BoxRepository) Update(ctx context.Context, boxID int, box *domain.Box) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE boxes
		 SET operator_id = $2, box_name = $3, slug = $4, price = $5, category = $6,
		     tags = $7, provider = $8, image_url = $9, published = $10, updated_at = now()
		 WHERE box_id = $1`,
		boxID, nullIfEmpty(box.OperatorID), box.Name, box.Slug, box.Price, box.Category,
		box.Tags, box.Provider, box.ImageURL, box.Published)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrSlugTaken, box.Slug)
		}
		return fmt.Errorf("failed to update box: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBoxNotFound
	}
	return nil
}

// Delete removes a box and, via cascade, its prize table
func (r *BoxRepository) Delete(ctx context.Context, boxID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM boxes WHERE box_id = $1`, boxID)
	if err != nil {
		return fmt.Errorf("failed to delete box: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBoxNotFound
	}
	return nil
}

// ReplaceItems swaps the box's full prize table in one transaction
func (r *BoxRepository) ReplaceItems(ctx context.Context, boxID int, items []domain.BoxItem) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `UPDATE boxes SET updated_at = now() WHERE box_id = $1`, boxID)
	if err != nil {
		return fmt.Errorf("failed to touch box: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBoxNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM box_items WHERE box_id = $1`, boxID); err != nil {
		return fmt.Errorf("failed to clear box items: %w", err)
	}

	if err := insertItems(ctx, tx, boxID, items); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, tx pgx.Tx, boxID int, items []domain.BoxItem) error {
	for _, item := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO box_items (box_id, item_name, item_value, drop_chance, image_url, item_type)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			boxID, item.Name, item.Value, item.DropChance, item.Image, item.Type)
		if err != nil {
			return fmt.Errorf("failed to insert box item: %w", err)
		}
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
