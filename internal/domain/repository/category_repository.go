package repository

import (
	"context"
	"errors"

	"nightmap/internal/domain/entity"
)

// ErrCategoryNotFound is returned when a referenced category row is absent.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository serves the small reference tables: genres, event types,
// price categories, moods, pin types and point colors. Rows are admin-managed
// and rarely change.
type CategoryRepository interface {
	ListGenres(ctx context.Context) ([]*entity.Genre, error)
	ListEventTypes(ctx context.Context) ([]*entity.EventType, error)
	ListPriceCategories(ctx context.Context) ([]*entity.PriceCategory, error)
	ListMoods(ctx context.Context) ([]*entity.Mood, error)
	ListPinTypes(ctx context.Context) ([]*entity.PinType, error)

	// FindMood returns ErrCategoryNotFound when the id does not exist.
	FindMood(ctx context.Context, id uint64) (*entity.Mood, error)

	// FindGenresByIDs resolves a favorite-genre id set. The result length
	// equals the input length only when every id exists; callers use the
	// mismatch to reject the whole set.
	FindGenresByIDs(ctx context.Context, ids []uint64) ([]entity.Genre, error)

	// Name lookups used by the spreadsheet import, matching the exact
	// display name. Each returns ErrCategoryNotFound when absent.
	FindPinTypeByName(ctx context.Context, name string) (*entity.PinType, error)
	FindGenreByName(ctx context.Context, name string) (*entity.Genre, error)
	FindEventTypeByName(ctx context.Context, name string) (*entity.EventType, error)
	FindPriceCategoryByName(ctx context.Context, name string) (*entity.PriceCategory, error)
}
