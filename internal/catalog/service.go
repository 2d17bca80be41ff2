// Package catalog serves the public box catalog: listing, search ranking,
// slug resolution and portfolio outcome analysis.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/logger"
	"github.com/whaamkabaam/trust-skin-hub/internal/metrics"
	"github.com/whaamkabaam/trust-skin-hub/internal/portfolio"
	"github.com/whaamkabaam/trust-skin-hub/internal/repository"
	"github.com/whaamkabaam/trust-skin-hub/internal/search"
	"github.com/whaamkabaam/trust-skin-hub/internal/slug"
)

// Resolution is the outcome of a slug lookup, including how it was resolved
type Resolution struct {
	Box          *domain.Box  `json:"box"`
	ResolvedSlug string       `json:"resolved_slug"`
	Fuzzy        bool         `json:"fuzzy"`
	Alternatives []slug.Match `json:"alternatives,omitempty"`
}

// Service defines the interface for catalog operations
type Service interface {
	ListBoxes(ctx context.Context, filter domain.BoxFilter) ([]domain.Box, error)
	SearchBoxes(ctx context.Context, query string, filter domain.BoxFilter) ([]domain.Box, error)
	GetBoxBySlug(ctx context.Context, rawSlug string) (*Resolution, error)
	ResolveSlug(ctx context.Context, rawSlug string) ([]slug.Match, error)
	AnalyzePortfolio(ctx context.Context, allocations []AllocationRequest) ([]portfolio.Scenario, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category *domain.Category) (int, error)
	UpdateCategory(ctx context.Context, categoryID int, category *domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int) error

	CreateBox(ctx context.Context, box *domain.Box) (int, error)
	UpdateBox(ctx context.Context, boxID int, box *domain.Box) error
	DeleteBox(ctx context.Context, boxID int) error
	ReplaceItems(ctx context.Context, boxID int, items []domain.BoxItem) error
}

// AllocationRequest selects a box by slug for portfolio analysis
type AllocationRequest struct {
	Slug     string `json:"slug" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type service struct {
	boxes      repository.Box
	categories repository.Category
	cache      *lru.Cache[string, *domain.Box]
}

// NewService creates a new catalog service. cacheSize bounds the box-by-slug
// cache; sizes below 1 are raised to 1.
func NewService(boxes repository.Box, categories repository.Category, cacheSize int) (Service, error) {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New[string, *domain.Box](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create box cache: %w", err)
	}
	return &service{
		boxes:      boxes,
		categories: categories,
		cache:      cache,
	}, nil
}

func (s *service) ListBoxes(ctx context.Context, filter domain.BoxFilter) ([]domain.Box, error) {
	if !domain.IsValidSortBy(filter.SortBy) {
		return nil, fmt.Errorf("%w: sort %q", domain.ErrInvalidInput, filter.SortBy)
	}
	boxes, err := s.boxes.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list boxes: %w", err)
	}
	return boxes, nil
}

// SearchBoxes ranks the filtered catalog by relevance to the query. A blank
// query degrades to a plain listing.
func (s *service) SearchBoxes(ctx context.Context, query string, filter domain.BoxFilter) ([]domain.Box, error) {
	log := logger.FromContext(ctx)

	boxes, err := s.boxes.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search boxes: %w", err)
	}

	metrics.SearchesPerformed.Inc()

	// Non-matching boxes only pad the tail of a ranked listing; drop them
	// before ranking unless the query is blank.
	candidates := boxes
	if strings.TrimSpace(query) != "" {
		candidates = make([]domain.Box, 0, len(boxes))
		for _, box := range boxes {
			if search.ScoreMultiWord(query, box.Name, box.Category, box.Tags) != nil {
				candidates = append(candidates, box)
			}
		}
	}

	ranked := search.SortByRelevance(candidates, query, nil)
	log.Debug("Search ranked", "query", query, "candidates", len(boxes), "results", len(ranked))
	return ranked, nil
}

// GetBoxBySlug looks up a box by its exact slug, falling back to fuzzy
// resolution over every box name when the exact lookup misses.
func (s *service) GetBoxBySlug(ctx context.Context, rawSlug string) (*Resolution, error) {
	log := logger.FromContext(ctx)
	normalized := slug.Normalize(rawSlug)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty slug", domain.ErrInvalidInput)
	}

	if box, ok := s.cache.Get(normalized); ok {
		metrics.CacheHits.Inc()
		return &Resolution{Box: box, ResolvedSlug: box.Slug}, nil
	}
	metrics.CacheMisses.Inc()

	box, err := s.boxes.GetBySlug(ctx, normalized)
	if err == nil {
		s.cache.Add(normalized, box)
		return &Resolution{Box: box, ResolvedSlug: box.Slug}, nil
	}
	if !errors.Is(err, domain.ErrBoxNotFound) {
		return nil, fmt.Errorf("failed to get box: %w", err)
	}

	matches, err := s.matchNames(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrBoxNotFound, rawSlug)
	}

	best := matches[0]
	box, err = s.boxes.GetBySlug(ctx, best.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get fuzzy-matched box: %w", err)
	}

	log.Info("Resolved slug fuzzily", "requested", rawSlug, "resolved", best.Slug, "score", best.Score)
	return &Resolution{
		Box:          box,
		ResolvedSlug: best.Slug,
		Fuzzy:        true,
		Alternatives: matches[1:],
	}, nil
}

// ResolveSlug returns every candidate match for a raw slug, best first
func (s *service) ResolveSlug(ctx context.Context, rawSlug string) ([]slug.Match, error) {
	normalized := slug.Normalize(rawSlug)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty slug", domain.ErrInvalidInput)
	}
	metrics.SlugResolutions.Inc()
	return s.matchNames(ctx, normalized)
}

func (s *service) matchNames(ctx context.Context, normalized string) ([]slug.Match, error) {
	names, err := s.boxes.GetAllNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get box names: %w", err)
	}

	candidates := make([]string, 0, len(names))
	for name := range names {
		candidates = append(candidates, name)
	}

	matches := slug.FindBestMatches(normalized, candidates)
	// FindBestMatches derives slugs from names; swap in the stored ones
	for i := range matches {
		if stored, ok := names[matches[i].OriginalName]; ok {
			matches[i].Slug = stored
		}
	}
	return matches, nil
}

// AnalyzePortfolio resolves each allocation's box and runs outcome analysis.
// Total cost is price times quantity summed across allocations.
func (s *service) AnalyzePortfolio(ctx context.Context, allocations []AllocationRequest) ([]portfolio.Scenario, error) {
	strategy := portfolio.Strategy{}
	for _, alloc := range allocations {
		if alloc.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
		}
		box, err := s.boxes.GetBySlug(ctx, slug.Normalize(alloc.Slug))
		if err != nil {
			if errors.Is(err, domain.ErrBoxNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrBoxNotFound, alloc.Slug)
			}
			return nil, fmt.Errorf("failed to get box for analysis: %w", err)
		}
		strategy.Allocations = append(strategy.Allocations, portfolio.Allocation{
			Box:      *box,
			Quantity: alloc.Quantity,
		})
		strategy.TotalCost += box.Price * float64(alloc.Quantity)
	}

	metrics.PortfolioAnalyses.Inc()
	return portfolio.Analyze(strategy), nil
}

func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a category, generating a slug from its name when absent
func (s *service) CreateCategory(ctx context.Context, category *domain.Category) (int, error) {
	if category.Name == "" {
		return 0, fmt.Errorf("%w: category name required", domain.ErrInvalidInput)
	}
	if category.Slug == "" {
		category.Slug = slug.Generate(category.Name)
	} else {
		category.Slug = slug.Normalize(category.Slug)
	}
	return s.categories.Insert(ctx, category)
}

func (s *service) UpdateCategory(ctx context.Context, categoryID int, category *domain.Category) error {
	if category.Name == "" {
		return fmt.Errorf("%w: category name required", domain.ErrInvalidInput)
	}
	category.Slug = slug.Normalize(category.Slug)
	if category.Slug == "" {
		category.Slug = slug.Generate(category.Name)
	}
	return s.categories.Update(ctx, categoryID, category)
}

func (s *service) DeleteCategory(ctx context.Context, categoryID int) error {
	return s.categories.Delete(ctx, categoryID)
}

// CreateBox inserts a box, generating a slug from its name when absent
func (s *service) CreateBox(ctx context.Context, box *domain.Box) (int, error) {
	if box.Slug == "" {
		box.Slug = slug.Generate(box.Name)
	} else {
		box.Slug = slug.Normalize(box.Slug)
	}
	if !domain.ValidProviders[box.Provider] {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, box.Provider)
	}

	boxID, err := s.boxes.Insert(ctx, box)
	if err != nil {
		return 0, err
	}
	return boxID, nil
}

func (s *service) UpdateBox(ctx context.Context, boxID int, box *domain.Box) error {
	current, err := s.boxes.GetByID(ctx, boxID)
	if err != nil {
		return err
	}

	// An update that omits the slug keeps the current one; a box must never
	// lose its URL identity.
	box.Slug = slug.Normalize(box.Slug)
	if box.Slug == "" {
		box.Slug = current.Slug
	}

	if err := s.boxes.Update(ctx, boxID, box); err != nil {
		return err
	}

	// Evict both keys so a rename cannot keep serving the old slug from cache
	s.cache.Remove(current.Slug)
	s.cache.Remove(box.Slug)
	return nil
}

func (s *service) DeleteBox(ctx context.Context, boxID int) error {
	box, err := s.boxes.GetByID(ctx, boxID)
	if err != nil {
		return err
	}
	if err := s.boxes.Delete(ctx, boxID); err != nil {
		return err
	}
	s.cache.Remove(box.Slug)
	return nil
}

func (s *service) ReplaceItems(ctx context.Context, boxID int, items []domain.BoxItem) error {
	box, err := s.boxes.GetByID(ctx, boxID)
	if err != nil {
		return err
	}
	if err := s.boxes.ReplaceItems(ctx, boxID, items); err != nil {
		return err
	}
	s.cache.Remove(box.Slug)
	return nil
}
