// Package usecase contains hand-maintained test doubles for the usecase
// interfaces, built on testify's mock package. Handler tests wire these in
// place of the real services.
package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/mock"

	"nightmap/internal/usecase"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func NewMockAuthUsecase(t *testing.T) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RefreshTokenOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockAuthUsecase) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *MockAuthUsecase) EmailAvailable(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

// MockProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

func NewMockProfileUsecase(t *testing.T) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProfileUsecase) GetAccount(ctx context.Context, accountID uint64) (*usecase.AccountView, error) {
	args := m.Called(ctx, accountID)
	if view, ok := args.Get(0).(*usecase.AccountView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, accountID uint64) (*usecase.ProfileView, error) {
	args := m.Called(ctx, accountID)
	if view, ok := args.Get(0).(*usecase.ProfileView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCatalogUsecase is a mock implementation of usecase.CatalogUsecase.
type MockCatalogUsecase struct {
	mock.Mock
}

func NewMockCatalogUsecase(t *testing.T) *MockCatalogUsecase {
	m := &MockCatalogUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogUsecase) ListActivities(ctx context.Context, input *usecase.ListActivitiesInput) (*usecase.ActivityPage, error) {
	args := m.Called(ctx, input)
	if page, ok := args.Get(0).(*usecase.ActivityPage); ok {
		return page, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) GetActivity(ctx context.Context, id uint64) (*usecase.ActivityView, error) {
	args := m.Called(ctx, id)
	if view, ok := args.Get(0).(*usecase.ActivityView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ToggleActive(ctx context.Context, id uint64) (*usecase.ToggleOutput, error) {
	args := m.Called(ctx, id)
	if output, ok := args.Get(0).(*usecase.ToggleOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ToggleLive(ctx context.Context, id uint64) (*usecase.ToggleOutput, error) {
	args := m.Called(ctx, id)
	if output, ok := args.Get(0).(*usecase.ToggleOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ListGenres(ctx context.Context) ([]usecase.CategoryView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]usecase.CategoryView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ListEventTypes(ctx context.Context) ([]usecase.CategoryView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]usecase.CategoryView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ListPriceCategories(ctx context.Context) ([]usecase.CategoryView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]usecase.CategoryView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ListMoods(ctx context.Context) ([]usecase.CategoryView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]usecase.CategoryView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCatalogUsecase) ListPinTypes(ctx context.Context) ([]usecase.PinTypeView, error) {
	args := m.Called(ctx)
	if views, ok := args.Get(0).([]usecase.PinTypeView); ok {
		return views, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockAdminUsecase is a mock implementation of usecase.AdminUsecase.
type MockAdminUsecase struct {
	mock.Mock
}

func NewMockAdminUsecase(t *testing.T) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminUsecase) SaveActivity(ctx context.Context, input *usecase.SaveActivityInput) (*usecase.ActivityView, error) {
	args := m.Called(ctx, input)
	if view, ok := args.Get(0).(*usecase.ActivityView); ok {
		return view, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminUsecase) ImportActivities(ctx context.Context, r io.Reader) (*usecase.ImportSummary, error) {
	args := m.Called(ctx, r)
	if summary, ok := args.Get(0).(*usecase.ImportSummary); ok {
		return summary, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminUsecase) ExportActivities(ctx context.Context, w io.Writer) error {
	args := m.Called(ctx, w)
	if export, ok := args.Get(0).(func(io.Writer) error); ok {
		return export(w)
	}

	return args.Error(0)
}
