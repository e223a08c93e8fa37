package impl

import (
	"context"
	"log/slog"
	"time"

	"nightmap/config"
	deliverycontext "nightmap/internal/delivery/context"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/domain/service"
	"nightmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	accountRepo      repository.AccountRepository
	blobStorage      service.BlobStorage
	defaultAvatarURL string
	logger           *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	BlobStorage service.BlobStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	defaultAvatarURL := ""
	if params.Config != nil && params.Config.Avatar != nil {
		defaultAvatarURL = params.Config.Avatar.DefaultURL
	}

	return &profileService{
		accountRepo:      params.AccountRepo,
		blobStorage:      params.BlobStorage,
		defaultAvatarURL: defaultAvatarURL,
		logger:           params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAccount returns the caller's account summary.
func (srv *profileService) GetAccount(ctx context.Context, accountID uint64) (*usecase.AccountView, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountView(account), nil
}

// GetProfile returns the caller's profile. The activation flag is evaluated
// lazily against the current time; there is no background expiry job.
func (srv *profileService) GetProfile(ctx context.Context, accountID uint64) (*usecase.ProfileView, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.Profile == nil {
		srv.log(ctx).Warn("Account has no profile", slog.Any("accountID", accountID))

		return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
	}

	return toProfileView(account.Profile, srv.blobStorage, srv.defaultAvatarURL, time.Now()), nil
}
