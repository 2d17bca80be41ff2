package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
	"github.com/whaamkabaam/trust-skin-hub/internal/operator"
	"github.com/whaamkabaam/trust-skin-hub/internal/testing/leaktest"
)

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

func (m *MockOperatorService) GetBySlug(ctx context.Context, slug string) (*domain.Operator, error) {
	args := m.Called(ctx, slug)
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

var _ operator.Service = (*MockOperatorService)(nil)

func TestRunOnce_PublishesDue(t *testing.T) {
	svc := new(MockOperatorService)
	w := New(svc, time.Minute)

	fixed := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	svc.On("PublishDue", mock.Anything, fixed).Return(2, nil)

	w.RunOnce(context.Background())
	svc.AssertExpectations(t)
}

func TestRunOnce_SurvivesError(t *testing.T) {
	svc := new(MockOperatorService)
	w := New(svc, time.Minute)

	svc.On("PublishDue", mock.Anything, mock.Anything).Return(0, domain.ErrDatabaseError)

	// Must not panic; the next tick retries
	w.RunOnce(context.Background())
	svc.AssertExpectations(t)
}

func TestStartStop(t *testing.T) {
	svc := new(MockOperatorService)
	w := New(svc, 10*time.Millisecond)

	svc.On("PublishDue", mock.Anything, mock.Anything).Return(0, nil)

	ctx := context.Background()
	w.Start(ctx)
	time.Sleep(35 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	assert.NoError(t, w.Stop(stopCtx))

	// Immediate pass plus at least one tick
	assert.GreaterOrEqual(t, len(svc.Calls), 2)
}

func TestStartStop_NoGoroutineLeak(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		svc := new(MockOperatorService)
		w := New(svc, 10*time.Millisecond)
		svc.On("PublishDue", mock.Anything, mock.Anything).Return(0, nil)

		w.Start(context.Background())
		time.Sleep(25 * time.Millisecond)

		stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, w.Stop(stopCtx))
	})
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	svc := new(MockOperatorService)
	w := New(svc, 5*time.Millisecond)

	svc.On("PublishDue", mock.Anything, mock.Anything).Return(0, nil)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	assert.NoError(t, w.Stop(stopCtx))
}
