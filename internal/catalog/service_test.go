package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

// MockBoxRepository implements repository.Box for testing
type MockBoxRepository struct {
	mock.Mock
}

func (m *MockBoxRepository) GetAll(ctx context.Context, filter domain.BoxFilter) ([]domain.Box, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Box), args.Error(1)
}

func (m *MockBoxRepository) GetByID(ctx context.Context, id int) (*domain.Box, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}

func (m *MockBoxRepository) GetBySlug(ctx context.Context, slug string) (*domain.Box, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Box), args.Error(1)
}

func (m *MockBoxRepository) GetAllNames(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockBoxRepository) Insert(ctx context.Context, box *domain.Box) (int, error) {
	args := m.Called(ctx, box)
	return args.Int(0), args.Error(1)
}

func (m *MockBoxRepository) Update(ctx context.Context, boxID int, box *domain.Box) error {
	args := m.Called(ctx, boxID, box)
	return args.Error(0)
}

func (m *MockBoxRepository) Delete(ctx context.Context, boxID int) error {
	args := m.Called(ctx, boxID)
	return args.Error(0)
}

func (m *MockBoxRepository) ReplaceItems(ctx context.Context, boxID int, items []domain.BoxItem) error {
	args := m.Called(ctx, boxID, items)
	return args.Error(0)
}

// MockCategoryRepository implements repository.Category for testing
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Insert(ctx context.Context, category *domain.Category) (int, error) {
	args := m.Called(ctx, category)
	return args.Int(0), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, categoryID int, category *domain.Category) error {
	args := m.Called(ctx, categoryID, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID int) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func newTestService(t *testing.T, boxes *MockBoxRepository, categories *MockCategoryRepository) Service {
	t.Helper()
	svc, err := NewService(boxes, categories, 16)
	require.NoError(t, err)
	return svc
}

func testBox(name, slug string, price float64) *domain.Box {
	return &domain.Box{
		Name:  name,
		Slug:  slug,
		Price: price,
		Items: []domain.BoxItem{
			{Name: "Common", Value: price / 2, DropChance: 90},
			{Name: "Rare", Value: price * 10, DropChance: 10},
		},
	}
}

func TestSearchBoxes_RanksByRelevance(t *testing.T) {
	boxes := new(MockBoxRepository)
	categories := new(MockCategoryRepository)
	svc := newTestService(t, boxes, categories)

	catalog := []domain.Box{
		{Name: "Beta Box", Tags: []string{"alpha"}},
		{Name: "Alpha Case"},
		{Name: "Unrelated"},
	}
	boxes.On("GetAll", mock.Anything, mock.Anything).Return(catalog, nil)

	results, err := svc.SearchBoxes(context.Background(), "alpha", domain.BoxFilter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	// Name prefix beats tag match
	assert.Equal(t, "Alpha Case", results[0].Name)
	assert.Equal(t, "Beta Box", results[1].Name)
}

func TestSearchBoxes_BlankQueryListsAll(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	catalog := []domain.Box{{Name: "B"}, {Name: "A"}}
	boxes.On("GetAll", mock.Anything, mock.Anything).Return(catalog, nil)

	results, err := svc.SearchBoxes(context.Background(), "  ", domain.BoxFilter{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Name)
}

func TestGetBoxBySlug_ExactHit(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	box := testBox("Apple Hype Box", "apple-hype", 50)
	boxes.On("GetBySlug", mock.Anything, "apple-hype").Return(box, nil).Once()

	res, err := svc.GetBoxBySlug(context.Background(), "Apple Hype!")
	require.NoError(t, err)
	assert.False(t, res.Fuzzy)
	assert.Equal(t, "apple-hype", res.ResolvedSlug)

	// Second lookup is served from cache, no extra repo call
	res, err = svc.GetBoxBySlug(context.Background(), "apple-hype")
	require.NoError(t, err)
	assert.Equal(t, "Apple Hype Box", res.Box.Name)
	boxes.AssertNumberOfCalls(t, "GetBySlug", 1)
}

func TestGetBoxBySlug_FuzzyFallback(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	boxes.On("GetBySlug", mock.Anything, "iphone-cases").Return(nil, domain.ErrBoxNotFound).Once()
	boxes.On("GetAllNames", mock.Anything).Return(map[string]string{
		"iPhone Case":  "iphone",
		"Samsung Case": "samsung",
	}, nil)
	box := testBox("iPhone Case", "iphone", 25)
	boxes.On("GetBySlug", mock.Anything, "iphone").Return(box, nil).Once()

	res, err := svc.GetBoxBySlug(context.Background(), "iphone-cases")
	require.NoError(t, err)
	assert.True(t, res.Fuzzy)
	assert.Equal(t, "iphone", res.ResolvedSlug)
}

func TestGetBoxBySlug_NoMatch(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	boxes.On("GetBySlug", mock.Anything, "zzz").Return(nil, domain.ErrBoxNotFound)
	boxes.On("GetAllNames", mock.Anything).Return(map[string]string{"iPhone Case": "iphone"}, nil)

	_, err := svc.GetBoxBySlug(context.Background(), "zzz")
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)
}

func TestGetBoxBySlug_EmptySlug(t *testing.T) {
	svc := newTestService(t, new(MockBoxRepository), new(MockCategoryRepository))

	_, err := svc.GetBoxBySlug(context.Background(), "!!!")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolveSlug_UsesStoredSlugs(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	boxes.On("GetAllNames", mock.Anything).Return(map[string]string{
		"Apple Hype Box": "custom-slug",
	}, nil)

	matches, err := svc.ResolveSlug(context.Background(), "apple hype")
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Equal(t, "custom-slug", matches[0].Slug)
}

func TestAnalyzePortfolio(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	box := testBox("Apple Hype Box", "apple-hype", 10)
	boxes.On("GetBySlug", mock.Anything, "apple-hype").Return(box, nil)

	scenarios, err := svc.AnalyzePortfolio(context.Background(), []AllocationRequest{
		{Slug: "apple-hype", Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, scenarios, 3)

	var total float64
	for _, sc := range scenarios {
		total += sc.Probability
	}
	assert.InDelta(t, 100, total, 0.001)
}

func TestAnalyzePortfolio_BadQuantity(t *testing.T) {
	svc := newTestService(t, new(MockBoxRepository), new(MockCategoryRepository))

	_, err := svc.AnalyzePortfolio(context.Background(), []AllocationRequest{
		{Slug: "apple-hype", Quantity: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalyzePortfolio_UnknownBox(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	boxes.On("GetBySlug", mock.Anything, "ghost").Return(nil, domain.ErrBoxNotFound)

	_, err := svc.AnalyzePortfolio(context.Background(), []AllocationRequest{
		{Slug: "ghost", Quantity: 1},
	})
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)
}

func TestListBoxes_InvalidSort(t *testing.T) {
	svc := newTestService(t, new(MockBoxRepository), new(MockCategoryRepository))

	_, err := svc.ListBoxes(context.Background(), domain.BoxFilter{SortBy: "chaos"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateBox_GeneratesSlug(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	boxes.On("Insert", mock.Anything, mock.MatchedBy(func(b *domain.Box) bool {
		return b.Slug == "myst-tech"
	})).Return(7, nil)

	box := &domain.Box{Name: "Mystery Tech Box", Provider: domain.ProviderManual}
	boxID, err := svc.CreateBox(context.Background(), box)
	require.NoError(t, err)
	assert.Equal(t, 7, boxID)
}

func TestCreateBox_RejectsUnknownProvider(t *testing.T) {
	svc := newTestService(t, new(MockBoxRepository), new(MockCategoryRepository))

	_, err := svc.CreateBox(context.Background(), &domain.Box{Name: "X", Provider: "shadyco"})
	assert.ErrorIs(t, err, domain.ErrInvalidProvider)
}

func TestDeleteBox_EvictsCache(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	box := testBox("Apple Hype Box", "apple-hype", 50)
	boxes.On("GetBySlug", mock.Anything, "apple-hype").Return(box, nil).Once()
	boxes.On("GetByID", mock.Anything, 1).Return(box, nil)
	boxes.On("Delete", mock.Anything, 1).Return(nil)

	// Warm the cache, delete, then the next lookup must hit the repo again
	_, err := svc.GetBoxBySlug(context.Background(), "apple-hype")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBox(context.Background(), 1))

	boxes.On("GetBySlug", mock.Anything, "apple-hype").Return(nil, domain.ErrBoxNotFound)
	boxes.On("GetAllNames", mock.Anything).Return(map[string]string{}, nil)
	_, err = svc.GetBoxBySlug(context.Background(), "apple-hype")
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)
}

func TestUpdateBox_RenameEvictsOldSlug(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	old := testBox("Alpha Crate", "alpha-crate", 10)
	boxes.On("GetBySlug", mock.Anything, "alpha-crate").Return(old, nil).Once()
	boxes.On("GetByID", mock.Anything, 1).Return(old, nil)
	boxes.On("Update", mock.Anything, 1, mock.Anything).Return(nil)

	// Warm the cache under the old slug, then rename the box
	_, err := svc.GetBoxBySlug(context.Background(), "alpha-crate")
	require.NoError(t, err)

	renamed := testBox("Alpha Crate", "alpha-crate-v2", 25)
	require.NoError(t, svc.UpdateBox(context.Background(), 1, renamed))

	// The old slug must reach the repo again instead of the stale cache entry
	boxes.On("GetBySlug", mock.Anything, "alpha-crate").Return(nil, domain.ErrBoxNotFound)
	boxes.On("GetAllNames", mock.Anything).Return(map[string]string{}, nil)
	_, err = svc.GetBoxBySlug(context.Background(), "alpha-crate")
	assert.ErrorIs(t, err, domain.ErrBoxNotFound)
}

func TestUpdateBox_PreservesSlugWhenOmitted(t *testing.T) {
	boxes := new(MockBoxRepository)
	svc := newTestService(t, boxes, new(MockCategoryRepository))

	boxes.On("GetByID", mock.Anything, 1).Return(testBox("Alpha Crate", "alpha-crate", 10), nil)
	boxes.On("Update", mock.Anything, 1, mock.MatchedBy(func(b *domain.Box) bool {
		return b.Slug == "alpha-crate"
	})).Return(nil)

	err := svc.UpdateBox(context.Background(), 1, &domain.Box{Name: "Alpha Crate", Price: 30})
	require.NoError(t, err)
	boxes.AssertExpectations(t)
}

func TestUpdateCategory_GeneratesSlugWhenOmitted(t *testing.T) {
	categories := new(MockCategoryRepository)
	svc := newTestService(t, new(MockBoxRepository), categories)

	categories.On("Update", mock.Anything, 3, mock.MatchedBy(func(c *domain.Category) bool {
		return c.Slug == "streetwear"
	})).Return(nil)

	err := svc.UpdateCategory(context.Background(), 3, &domain.Category{Name: "Streetwear"})
	require.NoError(t, err)
	categories.AssertExpectations(t)
}

func TestListCategories_PropagatesError(t *testing.T) {
	categories := new(MockCategoryRepository)
	svc := newTestService(t, new(MockBoxRepository), categories)

	categories.On("GetAll", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := svc.ListCategories(context.Background())
	assert.Error(t, err)
}
