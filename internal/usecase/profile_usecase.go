package usecase

import (
	"context"
)

// ProfileUsecase exposes the read side of the caller's own account and
// profile.
type ProfileUsecase interface {
	// GetAccount returns the authenticated caller's account summary.
	GetAccount(ctx context.Context, accountID uint64) (*AccountView, error)

	// GetProfile returns the authenticated caller's profile. The active flag
	// is evaluated against the current time at read.
	GetProfile(ctx context.Context, accountID uint64) (*ProfileView, error)
}
