package services

import (
	"context"
	"testing"

	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionService_Request(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	t.Run("success", func(t *testing.T) {
		m := newFakeRepoManager()
		m.u.byID = &models.User{ID: "u2"}
		s := NewConnectionService(db, m)

		conn, err := s.Request(context.Background(), "u1", "u2")
		require.NoError(t, err)
		assert.Equal(t, models.ConnectionPending, conn.Status)
		assert.Equal(t, "u1", conn.RequesterID)
		assert.Equal(t, "u2", conn.RecipientID)
	})

	t.Run("self connection", func(t *testing.T) {
		m := newFakeRepoManager()
		s := NewConnectionService(db, m)

		_, err := s.Request(context.Background(), "u1", "u1")
		assert.ErrorIs(t, err, common.ErrSelfConnection)
	})

	t.Run("recipient missing", func(t *testing.T) {
		m := newFakeRepoManager()
		s := NewConnectionService(db, m)

		_, err := s.Request(context.Background(), "u1", "ghost")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})

	t.Run("already connected", func(t *testing.T) {
		m := newFakeRepoManager()
		m.u.byID = &models.User{ID: "u2"}
		m.c.exists = true
		s := NewConnectionService(db, m)

		_, err := s.Request(context.Background(), "u1", "u2")
		assert.ErrorIs(t, err, common.ErrConnectionExists)
	})

	t.Run("duplicate surfaced by store on race", func(t *testing.T) {
		m := newFakeRepoManager()
		m.u.byID = &models.User{ID: "u2"}
		m.c.createErr = common.ErrConnectionExists
		s := NewConnectionService(db, m)

		_, err := s.Request(context.Background(), "u1", "u2")
		assert.ErrorIs(t, err, common.ErrConnectionExists)
	})
}

func TestConnectionService_Accept(t *testing.T) {
	pending := func() *models.Connection {
		return &models.Connection{ID: "c1", RequesterID: "u1", RecipientID: "u2", Status: models.ConnectionPending}
	}

	t.Run("recipient accepts", func(t *testing.T) {
		db, mock := newSQLMockDB(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		m := newFakeRepoManager()
		m.c.conn = pending()
		s := NewConnectionService(db, m)

		err := s.Accept(context.Background(), "u2", "c1")
		require.NoError(t, err)
		assert.Equal(t, []string{models.ConnectionAccepted}, m.c.statusUpdates)

		require.Len(t, m.n.created, 1)
		n := m.n.created[0]
		assert.Equal(t, "u1", n.RecipientID)
		assert.Equal(t, "u2", n.ActorID)
		assert.Equal(t, models.NotificationConnectionAccepted, n.Type)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("only the recipient may accept", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		defer db.Close()

		m := newFakeRepoManager()
		m.c.conn = pending()
		s := NewConnectionService(db, m)

		err := s.Accept(context.Background(), "u1", "c1")
		assert.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("not pending", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		defer db.Close()

		m := newFakeRepoManager()
		c := pending()
		c.Status = models.ConnectionAccepted
		m.c.conn = c
		s := NewConnectionService(db, m)

		err := s.Accept(context.Background(), "u2", "c1")
		assert.ErrorIs(t, err, common.ErrConnectionNotPending)
	})

	t.Run("not found", func(t *testing.T) {
		db, _ := newSQLMockDB(t)
		defer db.Close()

		m := newFakeRepoManager()
		s := NewConnectionService(db, m)

		err := s.Accept(context.Background(), "u2", "missing")
		assert.ErrorIs(t, err, common.ErrorNotFound)
	})
}

func TestConnectionService_Reject(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	t.Run("recipient rejects without notification", func(t *testing.T) {
		m := newFakeRepoManager()
		m.c.conn = &models.Connection{ID: "c1", RequesterID: "u1", RecipientID: "u2", Status: models.ConnectionPending}
		s := NewConnectionService(db, m)

		err := s.Reject(context.Background(), "u2", "c1")
		require.NoError(t, err)
		assert.Equal(t, []string{models.ConnectionRejected}, m.c.statusUpdates)
		assert.Empty(t, m.n.created)
	})

	t.Run("only the recipient may reject", func(t *testing.T) {
		m := newFakeRepoManager()
		m.c.conn = &models.Connection{ID: "c1", RequesterID: "u1", RecipientID: "u2", Status: models.ConnectionPending}
		s := NewConnectionService(db, m)

		err := s.Reject(context.Background(), "u1", "c1")
		assert.ErrorIs(t, err, common.ErrForbidden)
	})
}

func TestNotificationService(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	t.Run("list", func(t *testing.T) {
		m := newFakeRepoManager()
		m.n.list = []*models.Notification{{ID: "n1"}, {ID: "n2"}}
		s := NewNotificationService(db, m)

		list, err := s.List(context.Background(), "u1")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("mark read", func(t *testing.T) {
		m := newFakeRepoManager()
		m.n.notif = &models.Notification{ID: "n1", RecipientID: "u1"}
		s := NewNotificationService(db, m)

		assert.NoError(t, s.MarkRead(context.Background(), "u1", "n1"))
	})

	t.Run("mark read of another user's notification", func(t *testing.T) {
		m := newFakeRepoManager()
		m.n.notif = &models.Notification{ID: "n1", RecipientID: "u1"}
		s := NewNotificationService(db, m)

		assert.ErrorIs(t, s.MarkRead(context.Background(), "u2", "n1"), common.ErrForbidden)
	})

	t.Run("delete", func(t *testing.T) {
		m := newFakeRepoManager()
		m.n.notif = &models.Notification{ID: "n1", RecipientID: "u1"}
		s := NewNotificationService(db, m)

		assert.NoError(t, s.Delete(context.Background(), "u1", "n1"))
	})

	t.Run("delete of another user's notification", func(t *testing.T) {
		m := newFakeRepoManager()
		m.n.notif = &models.Notification{ID: "n1", RecipientID: "u1"}
		s := NewNotificationService(db, m)

		assert.ErrorIs(t, s.Delete(context.Background(), "u2", "n1"), common.ErrForbidden)
	})

	t.Run("not found", func(t *testing.T) {
		m := newFakeRepoManager()
		s := NewNotificationService(db, m)

		assert.ErrorIs(t, s.MarkRead(context.Background(), "u1", "missing"), common.ErrorNotFound)
	})
}
