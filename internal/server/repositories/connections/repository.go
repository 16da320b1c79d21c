// Package connections persists connection requests between users.
package connections

import (
	"context"

	"github.com/avelichko/careernet/internal/server/models"
)

type Repository interface {
	// Create inserts a pending request. A second request for the same
	// pair yields common.ErrConnectionExists.
	Create(ctx context.Context, requesterID, recipientID string) (*models.Connection, error)

	GetByID(ctx context.Context, id string) (*models.Connection, error)
	UpdateStatus(ctx context.Context, id, status string) error

	// Exists reports whether any request links the two users, in either
	// direction and in any status.
	Exists(ctx context.Context, userA, userB string) (bool, error)

	// ListAccepted returns accepted connections involving userID.
	ListAccepted(ctx context.Context, userID string) ([]*models.Connection, error)

	// ListPending returns pending requests addressed to recipientID.
	ListPending(ctx context.Context, recipientID string) ([]*models.Connection, error)
}
