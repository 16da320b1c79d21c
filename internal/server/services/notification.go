package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/server/models"
	"github.com/avelichko/careernet/internal/server/repositories/repomanager"
)

// NotificationService exposes a user's notification inbox.
type NotificationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNotificationService(db *sql.DB, m repomanager.RepositoryManager) *NotificationService {
	return &NotificationService{db: db, repomanager: m}
}

func (s *NotificationService) List(ctx context.Context, userID string) ([]*models.Notification, error) {
	return s.repomanager.Notifications(s.db).ListByRecipient(ctx, userID)
}

// MarkRead flags a notification as read. Only the recipient may do so.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	repo := s.repomanager.Notifications(s.db)

	n, err := repo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != userID {
		return common.ErrForbidden
	}

	if err := repo.MarkRead(ctx, notificationID); err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}
	return nil
}

// Delete removes a notification. Only the recipient may do so.
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	repo := s.repomanager.Notifications(s.db)

	n, err := repo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != userID {
		return common.ErrForbidden
	}

	if err := repo.Delete(ctx, notificationID); err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}
	return nil
}
