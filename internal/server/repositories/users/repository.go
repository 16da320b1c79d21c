// Package users persists identity records.
package users

import (
	"context"

	"github.com/avelichko/careernet/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the generated ID.
	// Violating the username or email uniqueness constraint yields
	// common.ErrDuplicateUsername / common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateProfile applies the non-nil fields of upd and returns the
	// updated record.
	UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) (*models.User, error)

	// Suggestions returns up to limit users that userID is not connected
	// with (and that are not userID itself).
	Suggestions(ctx context.Context, userID string, limit int) ([]*models.User, error)
}
