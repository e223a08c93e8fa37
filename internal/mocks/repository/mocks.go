// Package repository contains hand-maintained test doubles for the
// persistence interfaces, built on testify's mock package.
package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"nightmap/internal/domain/entity"
	"nightmap/internal/domain/repository"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute supports two return styles: a plain error, or a function with the
// same signature that is invoked with the actual arguments. The latter lets
// tests run the transactional closure against a factory of mocks and have its
// error propagate the way a real transaction manager would.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if execute, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return execute(ctx, fn)
	}

	return args.Error(0)
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) Accounts() repository.AccountRepository {
	return m.Called().Get(0).(repository.AccountRepository)
}

func (m *MockRepositoryFactory) Activities() repository.ActivityRepository {
	return m.Called().Get(0).(repository.ActivityRepository)
}

func (m *MockRepositoryFactory) Categories() repository.CategoryRepository {
	return m.Called().Get(0).(repository.CategoryRepository)
}

func (m *MockRepositoryFactory) Concerts() repository.ConcertRepository {
	return m.Called().Get(0).(repository.ConcertRepository)
}

func (m *MockRepositoryFactory) RefreshTokens() repository.RefreshTokenRepository {
	return m.Called().Get(0).(repository.RefreshTokenRepository)
}

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func NewMockAccountRepository(t *testing.T) *MockAccountRepository {
	m := &MockAccountRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uint64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateProfileAvatar(ctx context.Context, accountID uint64, avatar string) error {
	return m.Called(ctx, accountID, avatar).Error(0)
}

// MockActivityRepository is a mock implementation of repository.ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func NewMockActivityRepository(t *testing.T) *MockActivityRepository {
	m := &MockActivityRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockActivityRepository) FindByID(ctx context.Context, id uint64) (*entity.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) FindByName(ctx context.Context, name string) (*entity.Activity, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, int64, error) {
	args := m.Called(ctx, filter)
	var activities []*entity.Activity
	if args.Get(0) != nil {
		activities = args.Get(0).([]*entity.Activity)
	}

	return activities, args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) ListAll(ctx context.Context) ([]*entity.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

func (m *MockActivityRepository) Save(ctx context.Context, activity *entity.Activity) error {
	return m.Called(ctx, activity).Error(0)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func NewMockCategoryRepository(t *testing.T) *MockCategoryRepository {
	m := &MockCategoryRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryRepository) ListGenres(ctx context.Context) ([]*entity.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Genre), args.Error(1)
}

func (m *MockCategoryRepository) ListEventTypes(ctx context.Context) ([]*entity.EventType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.EventType), args.Error(1)
}

func (m *MockCategoryRepository) ListPriceCategories(ctx context.Context) ([]*entity.PriceCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PriceCategory), args.Error(1)
}

func (m *MockCategoryRepository) ListMoods(ctx context.Context) ([]*entity.Mood, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Mood), args.Error(1)
}

func (m *MockCategoryRepository) ListPinTypes(ctx context.Context) ([]*entity.PinType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.PinType), args.Error(1)
}

func (m *MockCategoryRepository) FindMood(ctx context.Context, id uint64) (*entity.Mood, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Mood), args.Error(1)
}

func (m *MockCategoryRepository) FindGenresByIDs(ctx context.Context, ids []uint64) ([]entity.Genre, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Genre), args.Error(1)
}

func (m *MockCategoryRepository) FindPinTypeByName(ctx context.Context, name string) (*entity.PinType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PinType), args.Error(1)
}

func (m *MockCategoryRepository) FindGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Genre), args.Error(1)
}

func (m *MockCategoryRepository) FindEventTypeByName(ctx context.Context, name string) (*entity.EventType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.EventType), args.Error(1)
}

func (m *MockCategoryRepository) FindPriceCategoryByName(ctx context.Context, name string) (*entity.PriceCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.PriceCategory), args.Error(1)
}

// MockConcertRepository is a mock implementation of repository.ConcertRepository.
type MockConcertRepository struct {
	mock.Mock
}

func NewMockConcertRepository(t *testing.T) *MockConcertRepository {
	m := &MockConcertRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockConcertRepository) List(ctx context.Context) ([]*entity.ConcertEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.ConcertEvent), args.Error(1)
}

func (m *MockConcertRepository) Create(ctx context.Context, event *entity.ConcertEvent) error {
	return m.Called(ctx, event).Error(0)
}

// MockRefreshTokenRepository is a mock implementation of repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func NewMockRefreshTokenRepository(t *testing.T) *MockRefreshTokenRepository {
	m := &MockRefreshTokenRepository{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRefreshTokenRepository) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

func (m *MockRefreshTokenRepository) DeleteRefreshTokensByAccountID(ctx context.Context, accountID uint64) error {
	return m.Called(ctx, accountID).Error(0)
}
