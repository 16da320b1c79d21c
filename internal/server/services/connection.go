package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/dbx"
	"github.com/avelichko/careernet/internal/server/models"
	"github.com/avelichko/careernet/internal/server/repositories/repomanager"
)

// ConnectionService manages connection requests between users.
type ConnectionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewConnectionService(db *sql.DB, m repomanager.RepositoryManager) *ConnectionService {
	return &ConnectionService{db: db, repomanager: m}
}

// Request creates a pending request from requesterID to recipientID.
func (s *ConnectionService) Request(ctx context.Context, requesterID, recipientID string) (*models.Connection, error) {
	if requesterID == recipientID {
		return nil, common.ErrSelfConnection
	}

	// the recipient must exist
	if _, err := s.repomanager.Users(s.db).GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	repo := s.repomanager.Connections(s.db)

	exists, err := repo.Exists(ctx, requesterID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("error checking connection: %w", err)
	}
	if exists {
		return nil, common.ErrConnectionExists
	}

	conn, err := repo.Create(ctx, requesterID, recipientID)
	if err != nil {
		return nil, fmt.Errorf("error creating connection: %w", err)
	}
	return conn, nil
}

// Accept marks a pending request accepted and notifies the requester.
// Only the recipient may accept.
func (s *ConnectionService) Accept(ctx context.Context, userID, connectionID string) error {
	conn, err := s.repomanager.Connections(s.db).GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn.RecipientID != userID {
		return common.ErrForbidden
	}
	if conn.Status != models.ConnectionPending {
		return common.ErrConnectionNotPending
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Connections(tx).UpdateStatus(ctx, connectionID, models.ConnectionAccepted); err != nil {
			return err
		}
		_, err := s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
			RecipientID: conn.RequesterID,
			ActorID:     userID,
			Type:        models.NotificationConnectionAccepted,
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("error accepting connection: %w", err)
	}
	return nil
}

// Reject marks a pending request rejected. Only the recipient may reject.
func (s *ConnectionService) Reject(ctx context.Context, userID, connectionID string) error {
	repo := s.repomanager.Connections(s.db)

	conn, err := repo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn.RecipientID != userID {
		return common.ErrForbidden
	}
	if conn.Status != models.ConnectionPending {
		return common.ErrConnectionNotPending
	}

	if err := repo.UpdateStatus(ctx, connectionID, models.ConnectionRejected); err != nil {
		return fmt.Errorf("error rejecting connection: %w", err)
	}
	return nil
}

// List returns the user's accepted connections.
func (s *ConnectionService) List(ctx context.Context, userID string) ([]*models.Connection, error) {
	return s.repomanager.Connections(s.db).ListAccepted(ctx, userID)
}

// Pending returns requests awaiting the user's decision.
func (s *ConnectionService) Pending(ctx context.Context, userID string) ([]*models.Connection, error) {
	return s.repomanager.Connections(s.db).ListPending(ctx, userID)
}
