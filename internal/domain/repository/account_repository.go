// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"nightmap/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account with its profile by database id.
	FindByID(ctx context.Context, id uint64) (*entity.Account, error)

	// FindByUsername retrieves an account by its exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByEmail retrieves an account by its exact email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account together with its profile and the
	// profile's favorite genre set.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account and its profile.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateProfileAvatar sets only the avatar object key on a profile.
	// Used by the best-effort avatar resolution after registration commits.
	UpdateProfileAvatar(ctx context.Context, accountID uint64, avatar string) error
}
