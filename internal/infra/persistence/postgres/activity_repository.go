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

// activityRepository implements the repository.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) withCategories(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("PinType").
		Preload("PinType.Color").
		Preload("Genre").
		Preload("EventType").
		Preload("PriceCategory")
}

// FindByID retrieves a single activity with its category references.
func (repo *activityRepository) FindByID(ctx context.Context, id uint64) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := repo.withCategories(ctx).First(&activityM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// FindByName retrieves an activity by its exact name.
func (repo *activityRepository) FindByName(ctx context.Context, name string) (*entity.Activity, error) {
	var activityM model.ActivityModel
	if err := repo.withCategories(ctx).Where("name = ?", name).First(&activityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by name")
	}

	return toActivityDomain(&activityM), nil
}

// List returns one page of active activities matching the filter and the
// total number of matches. Filters combine with logical AND; the city filter
// is a case-insensitive substring match.
func (repo *activityRepository) List(ctx context.Context, filter repository.ActivityFilter) ([]*entity.Activity, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivityModel{}).Where("is_active = ?", true)

	if filter.LiveOnly {
		query = query.Where("live = ?", true)
	}
	if filter.City != "" {
		query = query.Where("city ILIKE ?", "%"+filter.City+"%")
	}
	if filter.GenreID != nil {
		query = query.Where("genre_id = ?", *filter.GenreID)
	}
	if filter.EventTypeID != nil {
		query = query.Where("event_type_id = ?", *filter.EventTypeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count activities")
	}

	var activityMs []*model.ActivityModel
	err := query.
		Preload("PinType").
		Preload("PinType.Color").
		Preload("Genre").
		Preload("EventType").
		Preload("PriceCategory").
		Order("id").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&activityMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for _, activityM := range activityMs {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, total, nil
}

// ListAll returns every activity regardless of flags, ordered by id.
func (repo *activityRepository) ListAll(ctx context.Context) ([]*entity.Activity, error) {
	var activityMs []*model.ActivityModel
	if err := repo.withCategories(ctx).Order("id").Find(&activityMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all activities")
	}

	activities := make([]*entity.Activity, 0, len(activityMs))
	for _, activityM := range activityMs {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

// Create persists a new activity.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("referenced category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// Update modifies an existing activity. Zero-valued fields are written too,
// so callers must pass the full record.
func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Save(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("referenced category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update activity")
	}

	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// Save upserts an activity: rows with a non-zero id are updated, others
// inserted.
func (repo *activityRepository) Save(ctx context.Context, activity *entity.Activity) error {
	if activity.ID == 0 {
		return repo.Create(ctx, activity)
	}

	return repo.Update(ctx, activity)
}

// --- mappers ---

func toActivityDomain(activityM *model.ActivityModel) *entity.Activity {
	activity := &entity.Activity{
		ID:              activityM.ID,
		Name:            activityM.Name,
		Description:     activityM.Description,
		PinTypeID:       activityM.PinTypeID,
		Website:         activityM.Website,
		Address:         activityM.Address,
		URLAddress:      activityM.URLAddress,
		City:            activityM.City,
		Phone:           activityM.Phone,
		Email:           activityM.Email,
		Image:           activityM.Image,
		Latitude:        activityM.Latitude,
		Longitude:       activityM.Longitude,
		GenreID:         activityM.GenreID,
		EventTypeID:     activityM.EventTypeID,
		PriceCategoryID: activityM.PriceCategoryID,
		Live:            activityM.Live,
		BroadcastedLive: activityM.BroadcastedLive,
		Event:           activityM.Event,
		Mood:            activityM.Mood,
		Music:           activityM.Music,
		IsActive:        activityM.IsActive,
		CreatedAt:       activityM.CreatedAt,
		UpdatedAt:       activityM.UpdatedAt,
	}

	if activityM.PinType != nil {
		activity.PinType = toPinTypeDomain(activityM.PinType)
	}
	if activityM.Genre != nil {
		activity.Genre = &entity.Genre{ID: activityM.Genre.ID, Name: activityM.Genre.Name}
	}
	if activityM.EventType != nil {
		activity.EventType = &entity.EventType{ID: activityM.EventType.ID, Name: activityM.EventType.Name}
	}
	if activityM.PriceCategory != nil {
		activity.PriceCategory = &entity.PriceCategory{ID: activityM.PriceCategory.ID, Name: activityM.PriceCategory.Name}
	}

	return activity
}

func fromActivityDomain(activity *entity.Activity) *model.ActivityModel {
	return &model.ActivityModel{
		ID:              activity.ID,
		Name:            activity.Name,
		Description:     activity.Description,
		PinTypeID:       activity.PinTypeID,
		Website:         activity.Website,
		Address:         activity.Address,
		URLAddress:      activity.URLAddress,
		City:            activity.City,
		Phone:           activity.Phone,
		Email:           activity.Email,
		Image:           activity.Image,
		Latitude:        activity.Latitude,
		Longitude:       activity.Longitude,
		GenreID:         activity.GenreID,
		EventTypeID:     activity.EventTypeID,
		PriceCategoryID: activity.PriceCategoryID,
		Live:            activity.Live,
		BroadcastedLive: activity.BroadcastedLive,
		Event:           activity.Event,
		Mood:            activity.Mood,
		Music:           activity.Music,
		IsActive:        activity.IsActive,
		CreatedAt:       activity.CreatedAt,
		UpdatedAt:       activity.UpdatedAt,
	}
}

func toPinTypeDomain(pinTypeM *model.PinTypeModel) *entity.PinType {
	pinType := &entity.PinType{
		ID:          pinTypeM.ID,
		Name:        pinTypeM.Name,
		ColorID:     pinTypeM.ColorID,
		Description: pinTypeM.Description,
		IsActive:    pinTypeM.IsActive,
		CreatedAt:   pinTypeM.CreatedAt,
		UpdatedAt:   pinTypeM.UpdatedAt,
	}

	if pinTypeM.Color != nil {
		pinType.Color = &entity.PointColor{
			ID:          pinTypeM.Color.ID,
			Name:        pinTypeM.Color.Name,
			Description: pinTypeM.Color.Description,
		}
	}

	return pinType
}
