package impl

import (
	"context"
	"log/slog"

	"nightmap/config"
	deliverycontext "nightmap/internal/delivery/context"
	"nightmap/internal/domain/entity"
	domainerrors "nightmap/internal/domain/errors"
	"nightmap/internal/domain/repository"
	"nightmap/internal/domain/service"
	"nightmap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager       repository.TransactionManager
	activityRepo    repository.ActivityRepository
	categoryRepo    repository.CategoryRepository
	blobStorage     service.BlobStorage
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	CategoryRepo repository.CategoryRepository
	BlobStorage  service.BlobStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	defaultPageSize, maxPageSize := 20, 100
	if params.Config != nil && params.Config.Catalog != nil {
		defaultPageSize = params.Config.Catalog.DefaultPageSize
		maxPageSize = params.Config.Catalog.MaxPageSize
	}

	return &catalogService{
		txManager:       params.TxManager,
		activityRepo:    params.ActivityRepo,
		categoryRepo:    params.CategoryRepo,
		blobStorage:     params.BlobStorage,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListActivities returns one page of the public feed. Page and page size fall
// back to configured defaults; the page size is clamped to the maximum.
func (srv *catalogService) ListActivities(ctx context.Context, input *usecase.ListActivitiesInput) (*usecase.ActivityPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = srv.defaultPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}

	filter := repository.ActivityFilter{
		City:        input.City,
		GenreID:     input.GenreID,
		EventTypeID: input.EventTypeID,
		LiveOnly:    input.LiveOnly,
		Page:        page,
		PageSize:    pageSize,
	}

	activities, total, err := srv.activityRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list activities", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list activities")
	}

	items := make([]*usecase.ActivityView, 0, len(activities))
	for _, activity := range activities {
		items = append(items, toActivityView(activity, srv.blobStorage))
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &usecase.ActivityPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetActivity returns a single venue by id.
func (srv *catalogService) GetActivity(ctx context.Context, id uint64) (*usecase.ActivityView, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActivityNotFound, "activity not found")
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}

	return toActivityView(activity, srv.blobStorage), nil
}

// ToggleActive flips the is_active flag and returns the new value.
func (srv *catalogService) ToggleActive(ctx context.Context, id uint64) (*usecase.ToggleOutput, error) {
	return srv.toggleFlag(ctx, id, "is_active", func(activity *entity.Activity) bool {
		activity.IsActive = !activity.IsActive

		return activity.IsActive
	})
}

// ToggleLive flips the live flag and returns the new value.
func (srv *catalogService) ToggleLive(ctx context.Context, id uint64) (*usecase.ToggleOutput, error) {
	return srv.toggleFlag(ctx, id, "live", func(activity *entity.Activity) bool {
		activity.Live = !activity.Live

		return activity.Live
	})
}

// toggleFlag reads, flips and writes one flag inside a single transaction so
// concurrent toggles cannot lose updates.
func (srv *catalogService) toggleFlag(ctx context.Context, id uint64, field string, flip func(*entity.Activity) bool) (*usecase.ToggleOutput, error) {
	var newValue bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activities := repoFactory.Activities()

		activity, err := activities.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrActivityNotFound) {
				return errors.Wrap(domainerrors.ErrActivityNotFound, "activity not found")
			}

			return errors.Wrap(err, "failed to find activity")
		}

		newValue = flip(activity)

		if err := activities.Update(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to update activity flag")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to toggle activity flag", slog.Any("activityID", id), slog.String("field", field), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Toggled activity flag", slog.Any("activityID", id), slog.String("field", field), slog.Bool("value", newValue))

	return &usecase.ToggleOutput{ID: id, Field: field, Value: newValue}, nil
}

// ListGenres returns every musical genre reference row.
func (srv *catalogService) ListGenres(ctx context.Context) ([]usecase.CategoryView, error) {
	genres, err := srv.categoryRepo.ListGenres(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	views := make([]usecase.CategoryView, 0, len(genres))
	for _, genre := range genres {
		views = append(views, usecase.CategoryView{ID: genre.ID, Name: genre.Name})
	}

	return views, nil
}

// ListEventTypes returns every event type reference row.
func (srv *catalogService) ListEventTypes(ctx context.Context) ([]usecase.CategoryView, error) {
	eventTypes, err := srv.categoryRepo.ListEventTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list event types")
	}

	views := make([]usecase.CategoryView, 0, len(eventTypes))
	for _, eventType := range eventTypes {
		views = append(views, usecase.CategoryView{ID: eventType.ID, Name: eventType.Name})
	}

	return views, nil
}

// ListPriceCategories returns every price bracket reference row.
func (srv *catalogService) ListPriceCategories(ctx context.Context) ([]usecase.CategoryView, error) {
	priceCategories, err := srv.categoryRepo.ListPriceCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list price categories")
	}

	views := make([]usecase.CategoryView, 0, len(priceCategories))
	for _, priceCategory := range priceCategories {
		views = append(views, usecase.CategoryView{ID: priceCategory.ID, Name: priceCategory.Name})
	}

	return views, nil
}

// ListMoods returns every mood reference row.
func (srv *catalogService) ListMoods(ctx context.Context) ([]usecase.CategoryView, error) {
	moods, err := srv.categoryRepo.ListMoods(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moods")
	}

	views := make([]usecase.CategoryView, 0, len(moods))
	for _, mood := range moods {
		views = append(views, usecase.CategoryView{ID: mood.ID, Name: mood.Name})
	}

	return views, nil
}

// ListPinTypes returns every pin type with its resolved color name.
func (srv *catalogService) ListPinTypes(ctx context.Context) ([]usecase.PinTypeView, error) {
	pinTypes, err := srv.categoryRepo.ListPinTypes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pin types")
	}

	views := make([]usecase.PinTypeView, 0, len(pinTypes))
	for _, pinType := range pinTypes {
		view := usecase.PinTypeView{
			ID:          pinType.ID,
			Name:        pinType.Name,
			Description: pinType.Description,
			IsActive:    pinType.IsActive,
		}
		if pinType.Color != nil {
			view.Color = pinType.Color.Name
		}
		views = append(views, view)
	}

	return views, nil
}
