package repository

import (
	"context"

	"nightmap/internal/domain/entity"
)

// ConcertRepository defines persistence operations for calendar concert events.
type ConcertRepository interface {
	List(ctx context.Context) ([]*entity.ConcertEvent, error)
	Create(ctx context.Context, event *entity.ConcertEvent) error
}
