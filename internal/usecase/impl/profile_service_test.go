package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightmap/config"
	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	mockRepo "nightmap/internal/mocks/repository"
	mockSvc "nightmap/internal/mocks/service"
	"nightmap/internal/usecase"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	accountRepo *mockRepo.MockAccountRepository
	blobStorage *mockSvc.MockBlobStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	blobStorage := mockSvc.NewMockBlobStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Avatar: &config.AvatarConfig{DefaultURL: testDefaultAvatarURL},
	}

	service := NewProfileService(ProfileServiceParams{
		AccountRepo: accountRepo,
		BlobStorage: blobStorage,
		Config:      cfg,
		Logger:      logger,
	})

	return profileServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		blobStorage: blobStorage,
	}
}

func TestProfileService_GetAccount(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByID", ctx, uint64(3)).
		Return(&entity.Account{ID: 3, Username: "nightowl", Email: "owl@example.com"}, nil)

	view, err := fx.service.GetAccount(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, uint64(3), view.ID)
	assert.Equal(t, "nightowl", view.Username)
}

func TestProfileService_GetAccount_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByID", ctx, uint64(404)).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetAccount(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	profileUUID := uuid.New()
	account := &entity.Account{
		ID:       3,
		Username: "nightowl",
		Profile: &entity.UserProfile{
			AccountID:           3,
			UUID:                profileUUID,
			Nickname:            "Owl",
			Avatar:              "avatars/owl.png",
			FavoriteGenres:      []entity.Genre{{ID: 1, Name: "Techno"}},
			MoodForTonight:      &entity.Mood{ID: 2, Name: "Party"},
			BirthDate:           time.Date(2000, 5, 10, 0, 0, 0, 0, time.UTC),
			ActivationExpiresAt: time.Now().Add(24 * time.Hour),
		},
	}
	fx.accountRepo.On("FindByID", ctx, uint64(3)).Return(account, nil)
	fx.blobStorage.On("URL", "avatars/owl.png").Return("https://cdn.example.com/avatars/owl.png")

	view, err := fx.service.GetProfile(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, profileUUID.String(), view.UUID)
	assert.Equal(t, "Owl", view.Nickname)
	assert.Equal(t, "https://cdn.example.com/avatars/owl.png", view.AvatarURL)
	assert.Equal(t, "2000-05-10", view.BirthDate)
	require.Len(t, view.FavoriteGenres, 1)
	assert.Equal(t, "Techno", view.FavoriteGenres[0].Name)
	require.NotNil(t, view.MoodForTonight)
	assert.Equal(t, "Party", view.MoodForTonight.Name)
	assert.True(t, view.IsActive)
}

func TestProfileService_GetProfile_ExpiredActivation(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	account := &entity.Account{
		ID: 3,
		Profile: &entity.UserProfile{
			AccountID:           3,
			UUID:                uuid.New(),
			BirthDate:           time.Date(2000, 5, 10, 0, 0, 0, 0, time.UTC),
			ActivationExpiresAt: time.Now().Add(-time.Hour),
		},
	}
	fx.accountRepo.On("FindByID", ctx, uint64(3)).Return(account, nil)

	view, err := fx.service.GetProfile(ctx, 3)

	require.NoError(t, err)
	assert.False(t, view.IsActive)
	assert.Equal(t, testDefaultAvatarURL, view.AvatarURL)
}

func TestProfileService_GetProfile_Missing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByID", ctx, uint64(3)).Return(&entity.Account{ID: 3}, nil)

	_, err := fx.service.GetProfile(ctx, 3)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
