package repository

import (
	"context"
	"errors"

	"nightmap/internal/domain/entity"
)

// ErrActivityNotFound is returned when an activity id does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityFilter describes the listing filters, combined with logical AND.
type ActivityFilter struct {
	// City matches as a case-insensitive substring when non-empty.
	City string

	// GenreID and EventTypeID match exactly when non-nil.
	GenreID     *uint64
	EventTypeID *uint64

	// LiveOnly additionally restricts to live=true (the curated feed).
	// The public feed always restricts to is_active=true.
	LiveOnly bool

	// Page is 1-based; PageSize must be positive.
	Page     int
	PageSize int
}

// ActivityRepository defines persistence operations for the venue catalog.
type ActivityRepository interface {
	// FindByID retrieves a single activity with its category references.
	FindByID(ctx context.Context, id uint64) (*entity.Activity, error)

	// FindByName retrieves an activity by its exact name. The bulk import
	// uses the name as the natural key for upserts.
	FindByName(ctx context.Context, name string) (*entity.Activity, error)

	// List returns the page of active activities matching the filter and the
	// total number of matches across all pages.
	List(ctx context.Context, filter ActivityFilter) ([]*entity.Activity, int64, error)

	// ListAll returns every activity regardless of flags, ordered by id.
	// Used by the bulk export.
	ListAll(ctx context.Context) ([]*entity.Activity, error)

	// Create persists a new activity.
	Create(ctx context.Context, activity *entity.Activity) error

	// Update modifies an existing activity.
	Update(ctx context.Context, activity *entity.Activity) error

	// Save upserts an activity: rows with a non-zero id are updated,
	// others inserted. Used by the bulk import.
	Save(ctx context.Context, activity *entity.Activity) error
}
