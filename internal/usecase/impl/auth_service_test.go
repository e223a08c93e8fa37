package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nightmap/config"
	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/domain/service"
	mockRepo "nightmap/internal/mocks/repository"
	mockSvc "nightmap/internal/mocks/service"
	"nightmap/internal/usecase"
)

const testDefaultAvatarURL = "https://cdn.example.com/default.png"

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	accountRepo      *mockRepo.MockAccountRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	imageFetcher     *mockSvc.MockImageFetcher
	blobStorage      *mockSvc.MockBlobStorage
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	imageFetcher := mockSvc.NewMockImageFetcher(t)
	blobStorage := mockSvc.NewMockBlobStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Avatar: &config.AvatarConfig{DefaultURL: testDefaultAvatarURL},
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		AccountRepo:      accountRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		ImageFetcher:     imageFetcher,
		BlobStorage:      blobStorage,
		Config:           cfg,
		Logger:           logger,
	})

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		accountRepo:      accountRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		imageFetcher:     imageFetcher,
		blobStorage:      blobStorage,
	}
}

// expectTransaction wires the transaction manager mock so the closure runs
// against the given factory and its error is returned as-is.
func expectTransaction(fx authServiceFixtures, ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	fx.txManager.On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

// expectSession wires the token pair generation and refresh token persistence.
func expectSession(t *testing.T, fx authServiceFixtures, accountID uint64, roles []string) {
	t.Helper()

	fx.tokenService.On("GenerateTokens", accountID, roles).Return("access-token", "refresh-token", nil).Once()
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash").Once()
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour).Once()
	fx.refreshTokenRepo.On("CreateRefreshToken", mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(args mock.Arguments) {
			token := args.Get(1).(*entity.RefreshToken)
			assert.Equal(t, accountID, token.AccountID)
			assert.Equal(t, "refresh-token-hash", token.TokenHash)
		}).
		Return(nil).
		Once()
}

func claimsFor(accountID uint64) *service.Claims {
	return &service.Claims{AccountID: accountID, Roles: []string{"user"}, Type: "refresh"}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:  "nightowl",
		Email:     "owl@example.com",
		Password:  "StrongPass123!",
		Nickname:  "Owl",
		BirthDate: "2000-05-10",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	txAccounts.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = 1
			assert.Equal(t, "hashed_password", account.PasswordHash)
			require.NotNil(t, account.Profile)
			assert.NotEqual(t, uuid.Nil, account.Profile.UUID)
		}).
		Return(nil)

	expectTransaction(fx, ctx, factory)
	expectSession(t, fx, 1, []string{"user"})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), output.Account.ID)
	assert.Equal(t, input.Username, output.Account.Username)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "Owl", output.Profile.Nickname)
	assert.Equal(t, "2000-05-10", output.Profile.BirthDate)
	assert.True(t, output.Profile.IsActive)
	assert.Equal(t, testDefaultAvatarURL, output.Profile.AvatarURL)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	existing := &entity.Account{ID: 7, Username: input.Username}
	txAccounts.On("FindByUsername", ctx, input.Username).Return(existing, nil)

	expectTransaction(fx, ctx, factory)

	_, err := fx.service.Register(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)
	input := validRegisterInput()
	input.Password = "weak"

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(errors.New("too short"))

	_, err := fx.service.Register(context.Background(), input)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_InvalidBirthDate(t *testing.T) {
	fx := createTestAuthService(t)
	input := validRegisterInput()
	input.BirthDate = "10/05/2000"

	_, err := fx.service.Register(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "birth_date")
}

func TestAuthService_Register_Underage(t *testing.T) {
	fx := createTestAuthService(t)
	input := validRegisterInput()
	input.BirthDate = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")

	_, err := fx.service.Register(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields()["birth_date"], "at least 18")
}

func TestAuthService_Register_UnknownMood(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	moodID := uint64(99)
	input.MoodForTonight = &moodID

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	txAccounts.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txCategories.On("FindMood", ctx, moodID).Return(nil, repository.ErrCategoryNotFound)

	expectTransaction(fx, ctx, factory)

	_, err := fx.service.Register(ctx, input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "mood_for_tonight")
}

func TestAuthService_Register_UnknownGenreRejectsWholeSet(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.FavoriteGenres = []uint64{1, 2}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	txAccounts.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)

	// Only one of the two ids resolves, so the whole set is rejected.
	txCategories.On("FindGenresByIDs", ctx, []uint64{1, 2}).
		Return([]entity.Genre{{ID: 1, Name: "Techno"}}, nil)

	expectTransaction(fx, ctx, factory)

	_, err := fx.service.Register(ctx, input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields(), "favorite_genres")
}

func TestAuthService_Register_DuplicateGenreIDsCollapse(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.FavoriteGenres = []uint64{2, 2, 5}

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	txAccounts.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)

	// The lookup sees each id once; a repeat is not an unknown id.
	txCategories.On("FindGenresByIDs", ctx, []uint64{2, 5}).
		Return([]entity.Genre{{ID: 2, Name: "House"}, {ID: 5, Name: "Disco"}}, nil)

	txAccounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = 1
			require.NotNil(t, account.Profile)
			assert.Len(t, account.Profile.FavoriteGenres, 2)
		}).
		Return(nil)

	expectTransaction(fx, ctx, factory)
	expectSession(t, fx, 1, []string{"user"})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Len(t, output.Profile.FavoriteGenres, 2)
}

func TestAuthService_Register_AvatarFetchFailureIsNotFatal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.ProfilePictureURL = "https://example.com/pic.jpg"

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	txAccounts.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 1
		}).
		Return(nil)

	fx.imageFetcher.On("Fetch", ctx, input.ProfilePictureURL).
		Return(nil, "", errors.New("connection refused"))

	expectTransaction(fx, ctx, factory)
	expectSession(t, fx, 1, []string{"user"})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, testDefaultAvatarURL, output.Profile.AvatarURL)
}

func TestAuthService_Register_StoresUploadedAvatar(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := validRegisterInput()
	input.ProfilePicture = []byte{0x89, 0x50, 0x4E, 0x47}
	input.ProfilePictureContentType = "image/png"

	fx.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	txCategories := mockRepo.NewMockCategoryRepository(t)
	factory.On("Accounts").Return(txAccounts)
	factory.On("Categories").Return(txCategories)

	txAccounts.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrAccountNotFound)
	txAccounts.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Account).ID = 1
		}).
		Return(nil)

	isAvatarKey := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "avatars/") && strings.HasSuffix(key, ".png")
	})
	fx.blobStorage.On("Store", ctx, isAvatarKey, "image/png", mock.Anything).
		Return("https://cdn.example.com/avatars/x.png", nil)
	fx.blobStorage.On("URL", isAvatarKey).Return("https://cdn.example.com/avatars/x.png")
	fx.accountRepo.On("UpdateProfileAvatar", ctx, uint64(1), isAvatarKey).Return(nil)

	expectTransaction(fx, ctx, factory)
	expectSession(t, fx, 1, []string{"user"})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/x.png", output.Profile.AvatarURL)
}

func TestAuthService_Login_WithUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{ID: 3, Username: "nightowl", Email: "owl@example.com", PasswordHash: "hashed"}
	fx.accountRepo.On("FindByUsername", ctx, "nightowl").Return(account, nil)
	fx.hasher.On("Check", "StrongPass123!", "hashed").Return(true)

	expectSession(t, fx, 3, []string{"user"})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "nightowl", Password: "StrongPass123!"})

	require.NoError(t, err)
	assert.Equal(t, uint64(3), output.Account.ID)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAuthService_Login_FallsBackToEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{ID: 3, Username: "nightowl", Email: "owl@example.com", PasswordHash: "hashed", IsStaff: true}
	fx.accountRepo.On("FindByUsername", ctx, "owl@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "owl@example.com").Return(account, nil)
	fx.hasher.On("Check", "StrongPass123!", "hashed").Return(true)

	// Staff accounts carry the admin role in their tokens.
	expectSession(t, fx, 3, []string{"user", "admin"})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "owl@example.com", Password: "StrongPass123!"})

	require.NoError(t, err)
	assert.Equal(t, "owl@example.com", output.Account.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	account := &entity.Account{ID: 3, Username: "nightowl", PasswordHash: "hashed"}
	fx.accountRepo.On("FindByUsername", ctx, "nightowl").Return(account, nil)
	fx.hasher.On("Check", "WrongPass123!", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "nightowl", Password: "WrongPass123!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "ghost").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh-token").
		Return(claimsFor(3), nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTokens := mockRepo.NewMockRefreshTokenRepository(t)
	txAccounts := mockRepo.NewMockAccountRepository(t)
	factory.On("RefreshTokens").Return(txTokens)
	factory.On("Accounts").Return(txAccounts)

	txTokens.On("FindRefreshTokenByHash", ctx, "refresh-token-hash").
		Return(&entity.RefreshToken{ID: uuid.New(), AccountID: 3, TokenHash: "refresh-token-hash"}, nil)
	txAccounts.On("FindByID", ctx, uint64(3)).
		Return(&entity.Account{ID: 3, Username: "nightowl"}, nil)

	fx.tokenService.On("GenerateTokens", uint64(3), []string{"user"}).
		Return("new-access-token", "unused-refresh", nil)

	expectTransaction(fx, ctx, factory)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.On("ValidateRefreshToken", "garbage").Return(nil, errors.New("parse error"))

	_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_SessionGone(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh-token").Return(claimsFor(3), nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTokens := mockRepo.NewMockRefreshTokenRepository(t)
	factory.On("RefreshTokens").Return(txTokens)

	txTokens.On("FindRefreshTokenByHash", ctx, "refresh-token-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	expectTransaction(fx, ctx, factory)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "refresh-token").Return(claimsFor(3), nil)
	fx.tokenService.On("HashToken", "refresh-token").Return("refresh-token-hash")
	fx.refreshTokenRepo.On("DeleteRefreshTokenByHash", ctx, "refresh-token-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})
	assert.NoError(t, err)
}

func TestAuthService_Logout_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.On("ValidateRefreshToken", "expired-token").Return(nil, errors.New("expired"))
	fx.tokenService.On("HashToken", "expired-token").Return("expired-token-hash")
	fx.refreshTokenRepo.On("DeleteRefreshTokenByHash", ctx, "expired-token-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "expired-token"})
	assert.NoError(t, err)
}

func TestAuthService_AvailabilityChecks(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByUsername", ctx, "free").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByUsername", ctx, "taken").Return(&entity.Account{ID: 1}, nil)
	fx.accountRepo.On("FindByEmail", ctx, "free@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.On("FindByEmail", ctx, "taken@example.com").Return(&entity.Account{ID: 1}, nil)

	available, err := fx.service.UsernameAvailable(ctx, "free")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = fx.service.UsernameAvailable(ctx, "taken")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = fx.service.EmailAvailable(ctx, "free@example.com")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = fx.service.EmailAvailable(ctx, "taken@example.com")
	require.NoError(t, err)
	assert.False(t, available)
}
