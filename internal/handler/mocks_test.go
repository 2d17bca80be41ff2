package handler

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/whaamkabaam/trust-skin-hub/internal/catalog"
	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/importer"
	"github.com/whaamkabaam/trust-skin-hub/internal/portfolio"
	"github.com/whaamkabaam/trust-skin-hub/internal/slug"
)

// MockCatalogService implements catalog.Service for testing
type MockCatalogService struct {
	mock.Mock
}

var _ catalog.Service = (*MockCatalogService)(nil)

func (m *MockCatalogService) ListBoxes(ctx context.Context, filter domain.BoxFilter) ([]domain.Box, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}

func (m *MockCatalogService) SearchBoxes(ctx context.Context, query string, filter domain.BoxFilter) ([]domain.Box, error) {
	args := m.Called(ctx, query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}

func (m *MockCatalogService) GetBoxBySlug(ctx context.Context, rawSlug string) (*catalog.Resolution, error) {
	args := m.Called(ctx, rawSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Resolution), args.Error(1)
}

func (m *MockCatalogService) ResolveSlug(ctx context.Context, rawSlug string) ([]slug.Match, error) {
	args := m.Called(ctx, rawSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slug.Match), args.Error(1)
}

func (m *MockCatalogService) AnalyzePortfolio(ctx context.Context, allocations []catalog.AllocationRequest) ([]portfolio.Scenario, error) {
	args := m.Called(ctx, allocations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portfolio.Scenario), args.Error(1)
}

func (m *MockCatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCatalogService) CreateCategory(ctx context.Context, category *domain.Category) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) UpdateCategory(ctx context.Context, categoryID int, category *domain.Category) error {
	args := m.Called(ctx, categoryID, category)
	return args.Error(0)
}

func (m *MockCatalogService) DeleteCategory(ctx context.Context, categoryID int) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func (m *MockCatalogService) CreateBox(ctx context.Context, box *domain.Box) (int, error) {
	args := m.Called(ctx, box)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) UpdateBox(ctx context.Context, boxID int, box *domain.Box) error {
	args := m.Called(ctx, boxID, box)
	return args.Error(0)
}

func (m *MockCatalogService) DeleteBox(ctx context.Context, boxID int) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockCatalogService) ReplaceItems(ctx context.Context, boxID int, items []domain.BoxItem) error {
	args := m.Called(ctx, boxID, items)
	return args.Error(0)
}

// MockOperatorService implements operator.Service for testing
type MockOperatorService struct {
	mock.Mock
}

func (m *MockOperatorService) List(ctx context.Context, publishedOnly bool) ([]domain.Operator, error) {
	args := m.Called(ctx, publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockOperatorService) GetByID(ctx context.Context, id string) (*domain.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) GetBySlug(ctx context.Context, slugStr string) (*domain.Operator, error) {
	args := m.Called(ctx, slugStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) Create(ctx context.Context, op *domain.Operator) (*domain.Operator, error) {
	args := m.Called(ctx, op)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorService) Update(ctx context.Context, id string, op *domain.Operator) error {
	args := m.Called(ctx, id, op)
	return args.Error(0)
}

func (m *MockOperatorService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOperatorService) ChangeStatus(ctx context.Context, id string, target domain.OperatorStatus) error {
	args := m.Called(ctx, id, target)
	return args.Error(0)
}

func (m *MockOperatorService) SchedulePublish(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockOperatorService) PublishDue(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

// MockContentService implements content.Service for testing
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) GetPage(ctx context.Context, operatorID string) ([]domain.ContentBlock, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContentBlock), args.Error(1)
}

func (m *MockContentService) AddBlock(ctx context.Context, block *domain.ContentBlock) (int, error) {
	args := m.Called(ctx, block)
	return args.Int(0), args.Error(1)
}

func (m *MockContentService) UpdateBlock(ctx context.Context, blockID int, block *domain.ContentBlock) error {
	args := m.Called(ctx, blockID, block)
	return args.Error(0)
}

func (m *MockContentService) DeleteBlock(ctx context.Context, blockID int) error {
	args := m.Called(ctx, blockID)
	return args.Error(0)
}

func (m *MockContentService) ReorderBlocks(ctx context.Context, operatorID string, blockIDs []int) error {
	args := m.Called(ctx, operatorID, blockIDs)
	return args.Error(0)
}

// MockImporterService implements importer.Service for testing
type MockImporterService struct {
	mock.Mock
}

func (m *MockImporterService) ImportCSV(ctx context.Context, provider, sourceFile string, r io.Reader) (*importer.Report, error) {
	args := m.Called(ctx, provider, sourceFile, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.Report), args.Error(1)
}
