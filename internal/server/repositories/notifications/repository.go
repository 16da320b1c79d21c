// Package notifications persists user-addressed event records.
package notifications

import (
	"context"

	"github.com/avelichko/careernet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, n *models.Notification) (*models.Notification, error)
	GetByID(ctx context.Context, id string) (*models.Notification, error)

	// ListByRecipient returns the recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)

	MarkRead(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
