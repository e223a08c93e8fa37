// Package service contains hand-maintained test doubles for the
// domain service interfaces, built on testify's mock package.
package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"nightmap/internal/domain/service"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	return m.Called(password).Error(0)
}

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func NewMockTokenService(t *testing.T) *MockTokenService {
	m := &MockTokenService{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) GenerateTokens(accountID uint64, roles []string) (string, string, error) {
	args := m.Called(accountID, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockTokenService) HashToken(tokenString string) string {
	return m.Called(tokenString).String(0)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// MockImageFetcher is a mock implementation of service.ImageFetcher.
type MockImageFetcher struct {
	mock.Mock
}

func NewMockImageFetcher(t *testing.T) *MockImageFetcher {
	m := &MockImageFetcher{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockImageFetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	args := m.Called(ctx, url)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}

	return data, args.String(1), args.Error(2)
}

// MockBlobStorage is a mock implementation of service.BlobStorage.
type MockBlobStorage struct {
	mock.Mock
}

func NewMockBlobStorage(t *testing.T) *MockBlobStorage {
	m := &MockBlobStorage{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBlobStorage) Store(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, data)

	return args.String(0), args.Error(1)
}

func (m *MockBlobStorage) URL(key string) string {
	return m.Called(key).String(0)
}

// MockPlaceLinkResolver is a mock implementation of service.PlaceLinkResolver.
type MockPlaceLinkResolver struct {
	mock.Mock
}

func NewMockPlaceLinkResolver(t *testing.T) *MockPlaceLinkResolver {
	m := &MockPlaceLinkResolver{}
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPlaceLinkResolver) Resolve(ctx context.Context, link string) *service.PlaceData {
	args := m.Called(ctx, link)
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*service.PlaceData)
}
