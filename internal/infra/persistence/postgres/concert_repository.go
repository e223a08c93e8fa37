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

// concertRepository implements the repository.ConcertRepository interface using GORM.
type concertRepository struct {
	db *gorm.DB
}

// NewConcertRepository is the constructor for concertRepository.
func NewConcertRepository(db *gorm.DB) repository.ConcertRepository {
	return &concertRepository{db: db}
}

// List returns every concert event ordered by date.
func (repo *concertRepository) List(ctx context.Context) ([]*entity.ConcertEvent, error) {
	var eventMs []*model.ConcertEventModel
	if err := repo.db.WithContext(ctx).Order("date").Find(&eventMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list concert events")
	}

	events := make([]*entity.ConcertEvent, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, &entity.ConcertEvent{
			ID:        eventM.ID,
			Name:      eventM.Name,
			Latitude:  eventM.Latitude,
			Longitude: eventM.Longitude,
			Date:      eventM.Date,
		})
	}

	return events, nil
}

// Create persists a new concert event.
func (repo *concertRepository) Create(ctx context.Context, event *entity.ConcertEvent) error {
	eventM := &model.ConcertEventModel{
		Name:      event.Name,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Date:      event.Date,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create concert event")
	}

	event.ID = eventM.ID

	return nil
}
