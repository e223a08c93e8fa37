package impl

import (
	"context"
	"log/slog"

	deliverycontext "nightmap/internal/delivery/context"
	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// concertService implements the ConcertUsecase interface.
type concertService struct {
	concertRepo repository.ConcertRepository
	logger      *slog.Logger
}

// ConcertServiceParams holds dependencies for concertService, injected by Fx.
type ConcertServiceParams struct {
	fx.In

	ConcertRepo repository.ConcertRepository
	Logger      *slog.Logger
}

// NewConcertService is the constructor for concertService.
func NewConcertService(params ConcertServiceParams) usecase.ConcertUsecase {
	return &concertService{
		concertRepo: params.ConcertRepo,
		logger:      params.Logger,
	}
}

func (srv *concertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListConcerts returns every tracked concert event.
func (srv *concertService) ListConcerts(ctx context.Context) ([]*usecase.ConcertView, error) {
	events, err := srv.concertRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list concerts")
	}

	views := make([]*usecase.ConcertView, 0, len(events))
	for _, event := range events {
		views = append(views, toConcertView(event))
	}

	return views, nil
}

// CreateConcert records a new concert event.
func (srv *concertService) CreateConcert(ctx context.Context, input *usecase.CreateConcertInput) (*usecase.ConcertView, error) {
	if input.Name == "" {
		return nil, domainerrors.NewValidationError(map[string]string{"name": "name is required"})
	}
	if input.Date.IsZero() {
		return nil, domainerrors.NewValidationError(map[string]string{"date": "date is required"})
	}

	event := &entity.ConcertEvent{
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Date:      input.Date,
	}

	if err := srv.concertRepo.Create(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to create concert", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create concert")
	}

	srv.log(ctx).Info("Created concert", slog.Any("concertID", event.ID), slog.String("name", event.Name))

	return toConcertView(event), nil
}
