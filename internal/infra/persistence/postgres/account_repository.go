package postgres

import (
	"context"

	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) withProfile(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Profile").
		Preload("Profile.MoodForTonight").
		Preload("Profile.FavoriteGenres")
}

// FindByID retrieves a single account by its id, preloading the profile with
// its mood and favorite genres.
func (repo *accountRepository) FindByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.withProfile(ctx).First(&accountM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByUsername retrieves an account by its exact username.
func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.withProfile(ctx).Where("username = ?", username).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves an account by its exact email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.withProfile(ctx).Where("email = ?", email).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account together with its profile and the profile's
// favorite genre set. GORM's association handling writes all three tables.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username or email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid profile reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Backfill generated ids and timestamps onto the domain entity.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt
	if account.Profile != nil && accountM.Profile != nil {
		account.Profile.AccountID = accountM.Profile.AccountID
		account.Profile.CreatedAt = accountM.Profile.CreatedAt
		account.Profile.UpdatedAt = accountM.Profile.UpdatedAt
	}

	return nil
}

// Update modifies an existing account and its profile.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	if account.Profile != nil {
		if err := repo.db.WithContext(ctx).Save(fromProfileDomain(account.ID, account.Profile)).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
		}
	}

	return nil
}

// UpdateProfileAvatar sets only the avatar object key on a profile.
func (repo *accountRepository) UpdateProfileAvatar(ctx context.Context, accountID uint64, avatar string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserProfileModel{}).
		Where("account_id = ?", accountID).
		Update("avatar", avatar)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile avatar")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- mappers ---

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:           accountM.ID,
		Username:     accountM.Username,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		IsStaff:      accountM.IsStaff,
		CreatedAt:    accountM.CreatedAt,
		UpdatedAt:    accountM.UpdatedAt,
	}

	if accountM.Profile != nil {
		account.Profile = toProfileDomain(accountM.Profile)
	}

	return account
}

func toProfileDomain(profileM *model.UserProfileModel) *entity.UserProfile {
	profile := &entity.UserProfile{
		AccountID:           profileM.AccountID,
		UUID:                profileM.UUID,
		Nickname:            profileM.Nickname,
		Avatar:              profileM.Avatar,
		BirthDate:           profileM.BirthDate,
		ActivationExpiresAt: profileM.ActivationExpiresAt,
		CreatedAt:           profileM.CreatedAt,
		UpdatedAt:           profileM.UpdatedAt,
	}

	if profileM.MoodForTonight != nil {
		profile.MoodForTonight = &entity.Mood{ID: profileM.MoodForTonight.ID, Name: profileM.MoodForTonight.Name}
	}
	for _, genreM := range profileM.FavoriteGenres {
		profile.FavoriteGenres = append(profile.FavoriteGenres, entity.Genre{ID: genreM.ID, Name: genreM.Name})
	}

	return profile
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	accountM := &model.AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		IsStaff:      account.IsStaff,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}

	if account.Profile != nil {
		accountM.Profile = fromProfileDomain(account.ID, account.Profile)
	}

	return accountM
}

func fromProfileDomain(accountID uint64, profile *entity.UserProfile) *model.UserProfileModel {
	profileM := &model.UserProfileModel{
		AccountID:           accountID,
		UUID:                profile.UUID,
		Nickname:            profile.Nickname,
		Avatar:              profile.Avatar,
		BirthDate:           profile.BirthDate,
		ActivationExpiresAt: profile.ActivationExpiresAt,
		CreatedAt:           profile.CreatedAt,
		UpdatedAt:           profile.UpdatedAt,
	}

	if profile.MoodForTonight != nil {
		profileM.MoodForTonightID = &profile.MoodForTonight.ID
	}
	for _, genre := range profile.FavoriteGenres {
		profileM.FavoriteGenres = append(profileM.FavoriteGenres, model.GenreModel{ID: genre.ID, Name: genre.Name})
	}

	return profileM
}
