// Package impl contains the implementation of the application's business logic.
package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"nightmap/config"
	deliverycontext "nightmap/internal/delivery/context"
	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/domain/service"
	"nightmap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minRegistrationAge = 18

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	imageFetcher     service.ImageFetcher
	blobStorage      service.BlobStorage
	defaultAvatarURL string
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	ImageFetcher     service.ImageFetcher
	BlobStorage      service.BlobStorage
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	defaultAvatarURL := ""
	if params.Config != nil && params.Config.Avatar != nil {
		defaultAvatarURL = params.Config.Avatar.DefaultURL
	}

	return &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		imageFetcher:     params.ImageFetcher,
		blobStorage:      params.BlobStorage,
		defaultAvatarURL: defaultAvatarURL,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete registration process: the account and
// its profile commit or roll back together, while the avatar resolution runs
// after the commit and never fails the registration.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username), slog.String("email", input.Email))

	birthDate, err := parseBirthDate(input.BirthDate, time.Now())
	if err != nil {
		srv.log(ctx).Warn("Birth date validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredAccount *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accounts := repoFactory.Accounts()
		categories := repoFactory.Categories()

		if err := srv.checkIdentifiersFree(ctx, accounts, input.Username, input.Email); err != nil {
			return err
		}

		profile, err := srv.buildProfile(ctx, categories, input, birthDate)
		if err != nil {
			return err
		}

		newAccount := &entity.Account{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			Profile:      profile,
		}

		if err := accounts.Create(ctx, newAccount); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		registeredAccount = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	// The account and profile are committed. The avatar is resolved outside
	// the transaction so a slow or failing fetch cannot corrupt the write.
	srv.resolveAvatar(ctx, registeredAccount, input)

	accessToken, refreshToken, err := srv.issueSession(ctx, registeredAccount)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session after registration", slog.Any("accountID", registeredAccount.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session after registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", registeredAccount.ID))

	return &usecase.RegisterOutput{
		Account:      toAccountView(registeredAccount),
		Profile:      toProfileView(registeredAccount.Profile, srv.blobStorage, srv.defaultAvatarURL, time.Now()),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *authService) checkIdentifiersFree(ctx context.Context, accounts repository.AccountRepository, username, email string) error {
	if _, err := accounts.FindByUsername(ctx, username); err == nil {
		return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "username already registered")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check username availability")
	}

	if _, err := accounts.FindByEmail(ctx, email); err == nil {
		return errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

// buildProfile validates the profile references against the reference tables
// and assembles the profile entity. The genre set is all-or-nothing: one
// unknown id rejects the whole registration.
func (srv *authService) buildProfile(
	ctx context.Context,
	categories repository.CategoryRepository,
	input *usecase.RegisterInput,
	birthDate time.Time,
) (*entity.UserProfile, error) {
	var mood *entity.Mood
	if input.MoodForTonight != nil {
		found, err := categories.FindMood(ctx, *input.MoodForTonight)
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.NewValidationError(map[string]string{
				"mood_for_tonight": fmt.Sprintf("mood %d does not exist", *input.MoodForTonight),
			})
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve mood reference")
		}
		mood = found
	}

	var genres []entity.Genre
	if len(input.FavoriteGenres) > 0 {
		// Repeated ids collapse to one; the existence check is over the
		// distinct set.
		seen := make(map[uint64]struct{}, len(input.FavoriteGenres))
		ids := make([]uint64, 0, len(input.FavoriteGenres))
		for _, id := range input.FavoriteGenres {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}

		found, err := categories.FindGenresByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve favorite genres")
		}
		if len(found) != len(ids) {
			return nil, domainerrors.NewValidationError(map[string]string{
				"favorite_genres": "one or more genre ids do not exist",
			})
		}
		genres = found
	}

	now := time.Now()

	return &entity.UserProfile{
		UUID:                uuid.New(),
		Nickname:            input.Nickname,
		FavoriteGenres:      genres,
		MoodForTonight:      mood,
		BirthDate:           birthDate,
		ActivationExpiresAt: now.Add(entity.ActivationPeriod),
	}, nil
}

// resolveAvatar stores the uploaded picture, or downloads the one given by
// URL, and attaches the resulting object key to the committed profile.
// Failures are logged and swallowed.
func (srv *authService) resolveAvatar(ctx context.Context, account *entity.Account, input *usecase.RegisterInput) {
	data := input.ProfilePicture
	contentType := input.ProfilePictureContentType

	if len(data) == 0 && input.ProfilePictureURL != "" {
		fetched, fetchedType, err := srv.imageFetcher.Fetch(ctx, input.ProfilePictureURL)
		if err != nil {
			srv.log(ctx).Warn("Failed to fetch profile picture", slog.Any("accountID", account.ID), slog.Any("error", err))

			return
		}
		data = fetched
		contentType = fetchedType
	}

	if len(data) == 0 {
		return
	}

	key := avatarObjectKey(account.Profile.UUID, contentType)
	if _, err := srv.blobStorage.Store(ctx, key, contentType, bytes.NewReader(data)); err != nil {
		srv.log(ctx).Warn("Failed to store profile picture", slog.Any("accountID", account.ID), slog.Any("error", err))

		return
	}

	if err := srv.accountRepo.UpdateProfileAvatar(ctx, account.ID, key); err != nil {
		srv.log(ctx).Warn("Failed to attach profile picture", slog.Any("accountID", account.ID), slog.Any("error", err))

		return
	}

	account.Profile.Avatar = key
}

// issueSession generates the token pair and persists the refresh token hash.
func (srv *authService) issueSession(ctx context.Context, account *entity.Account) (string, string, error) {
	roles := entity.RolesOf(account)

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(account.ID, roles.ToStrings())
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate tokens")
	}

	newToken := &entity.RefreshToken{
		ID:        uuid.New(),
		AccountID: account.ID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newToken); err != nil {
		return "", "", errors.Wrap(err, "failed to store refresh token")
	}

	return accessToken, refreshTokenString, nil
}

// Login orchestrates the login process. The identifier matches the username
// first and falls back to the email.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("identifier", input.Identifier))

	account, err := srv.loadLoginAccount(ctx, input.Identifier)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, refreshToken, err := srv.issueSession(ctx, account)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("identifier", input.Identifier), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		Account:      toAccountView(account),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (srv *authService) loadLoginAccount(ctx context.Context, identifier string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account by username")
	}

	account, err = srv.accountRepo.FindByEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return account, nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself remains unchanged.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	var newAccessToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Verify the refresh token still backs a session.
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if _, err := repoFactory.RefreshTokens().FindRefreshTokenByHash(ctx, tokenHash); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
			}

			return errors.Wrap(err, "failed to look up refresh token")
		}

		// 2. Re-derive roles from the current account state.
		account, err := repoFactory.Accounts().FindByID(ctx, claims.AccountID)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		// 3. Generate only a new access token; the refresh token is not rotated.
		newAccessToken, _, err = srv.tokenService.GenerateTokens(account.ID, entity.RolesOf(account).ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute refresh token transaction", slog.Any("error", err))

		return nil, err
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// Logout invalidates a session by deleting its refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Info("Attempting to log out")

	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(input.RefreshToken)

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// UsernameAvailable reports whether the exact username is unregistered.
func (srv *authService) UsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := srv.accountRepo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check username availability")
	}

	return false, nil
}

// EmailAvailable reports whether the exact email is unregistered.
func (srv *authService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to check email availability")
	}

	return false, nil
}

// parseBirthDate validates the wire format and the minimum age.
func parseBirthDate(raw string, now time.Time) (time.Time, error) {
	birthDate, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, domainerrors.NewValidationError(map[string]string{
			"birth_date": "must be a valid date in YYYY-MM-DD format",
		})
	}

	probe := entity.UserProfile{BirthDate: birthDate}
	if probe.AgeAt(now) < minRegistrationAge {
		return time.Time{}, domainerrors.NewValidationError(map[string]string{
			"birth_date": fmt.Sprintf("you must be at least %d years old", minRegistrationAge),
		})
	}

	return birthDate, nil
}

func avatarObjectKey(profileUUID uuid.UUID, contentType string) string {
	ext := "bin"
	switch contentType {
	case "image/jpeg":
		ext = "jpg"
	case "image/png":
		ext = "png"
	case "image/gif":
		ext = "gif"
	case "image/webp":
		ext = "webp"
	}

	return fmt.Sprintf("avatars/%s.%s", profileUUID, ext)
}
