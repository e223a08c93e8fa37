package postgres

import (
	"context"

	"nightmap/internal/domain/entity"
	"nightmap/internal/domain/repository"
	"nightmap/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface
// using GORM. The reference tables are tiny, so every list query is unpaged.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// ListGenres returns every genre ordered by name.
func (repo *categoryRepository) ListGenres(ctx context.Context) ([]*entity.Genre, error) {
	var genreMs []*model.GenreModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&genreMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list genres")
	}

	genres := make([]*entity.Genre, 0, len(genreMs))
	for _, genreM := range genreMs {
		genres = append(genres, &entity.Genre{ID: genreM.ID, Name: genreM.Name})
	}

	return genres, nil
}

// ListEventTypes returns every event type ordered by name.
func (repo *categoryRepository) ListEventTypes(ctx context.Context) ([]*entity.EventType, error) {
	var eventTypeMs []*model.EventTypeModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&eventTypeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list event types")
	}

	eventTypes := make([]*entity.EventType, 0, len(eventTypeMs))
	for _, eventTypeM := range eventTypeMs {
		eventTypes = append(eventTypes, &entity.EventType{ID: eventTypeM.ID, Name: eventTypeM.Name})
	}

	return eventTypes, nil
}

// ListPriceCategories returns every price bracket ordered by name.
func (repo *categoryRepository) ListPriceCategories(ctx context.Context) ([]*entity.PriceCategory, error) {
	var priceCategoryMs []*model.PriceCategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&priceCategoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list price categories")
	}

	priceCategories := make([]*entity.PriceCategory, 0, len(priceCategoryMs))
	for _, priceCategoryM := range priceCategoryMs {
		priceCategories = append(priceCategories, &entity.PriceCategory{ID: priceCategoryM.ID, Name: priceCategoryM.Name})
	}

	return priceCategories, nil
}

// ListMoods returns every mood ordered by name.
func (repo *categoryRepository) ListMoods(ctx context.Context) ([]*entity.Mood, error) {
	var moodMs []*model.MoodModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&moodMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list moods")
	}

	moods := make([]*entity.Mood, 0, len(moodMs))
	for _, moodM := range moodMs {
		moods = append(moods, &entity.Mood{ID: moodM.ID, Name: moodM.Name})
	}

	return moods, nil
}

// ListPinTypes returns every pin type with its color, ordered by name.
func (repo *categoryRepository) ListPinTypes(ctx context.Context) ([]*entity.PinType, error) {
	var pinTypeMs []*model.PinTypeModel
	if err := repo.db.WithContext(ctx).Preload("Color").Order("name").Find(&pinTypeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pin types")
	}

	pinTypes := make([]*entity.PinType, 0, len(pinTypeMs))
	for _, pinTypeM := range pinTypeMs {
		pinTypes = append(pinTypes, toPinTypeDomain(pinTypeM))
	}

	return pinTypes, nil
}

// FindMood retrieves a mood by id.
func (repo *categoryRepository) FindMood(ctx context.Context, id uint64) (*entity.Mood, error) {
	var moodM model.MoodModel
	if err := repo.db.WithContext(ctx).First(&moodM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find mood")
	}

	return &entity.Mood{ID: moodM.ID, Name: moodM.Name}, nil
}

// FindGenresByIDs resolves a genre id set. The result holds only the ids
// that exist; callers compare lengths to detect unknown ids.
func (repo *categoryRepository) FindGenresByIDs(ctx context.Context, ids []uint64) ([]entity.Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var genreMs []*model.GenreModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&genreMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find genres by ids")
	}

	genres := make([]entity.Genre, 0, len(genreMs))
	for _, genreM := range genreMs {
		genres = append(genres, entity.Genre{ID: genreM.ID, Name: genreM.Name})
	}

	return genres, nil
}

// FindPinTypeByName retrieves a pin type by its exact display name.
func (repo *categoryRepository) FindPinTypeByName(ctx context.Context, name string) (*entity.PinType, error) {
	var pinTypeM model.PinTypeModel
	if err := repo.db.WithContext(ctx).Preload("Color").Where("name = ?", name).First(&pinTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find pin type by name")
	}

	return toPinTypeDomain(&pinTypeM), nil
}

// FindGenreByName retrieves a genre by its exact display name.
func (repo *categoryRepository) FindGenreByName(ctx context.Context, name string) (*entity.Genre, error) {
	var genreM model.GenreModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&genreM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find genre by name")
	}

	return &entity.Genre{ID: genreM.ID, Name: genreM.Name}, nil
}

// FindEventTypeByName retrieves an event type by its exact display name.
func (repo *categoryRepository) FindEventTypeByName(ctx context.Context, name string) (*entity.EventType, error) {
	var eventTypeM model.EventTypeModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&eventTypeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find event type by name")
	}

	return &entity.EventType{ID: eventTypeM.ID, Name: eventTypeM.Name}, nil
}

// FindPriceCategoryByName retrieves a price bracket by its exact display name.
func (repo *categoryRepository) FindPriceCategoryByName(ctx context.Context, name string) (*entity.PriceCategory, error) {
	var priceCategoryM model.PriceCategoryModel
	if err := repo.db.WithContext(ctx).Where("name = ?", name).First(&priceCategoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find price category by name")
	}

	return &entity.PriceCategory{ID: priceCategoryM.ID, Name: priceCategoryM.Name}, nil
}
