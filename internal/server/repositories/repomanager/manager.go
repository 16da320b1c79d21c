// Package repomanager hands out repository implementations over a shared
// database handle, so services can use the same repository inside or
// outside a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/avelichko/careernet/internal/dbx"
	"github.com/avelichko/careernet/internal/server/repositories/connections"
	"github.com/avelichko/careernet/internal/server/repositories/notifications"
	"github.com/avelichko/careernet/internal/server/repositories/posts"
	"github.com/avelichko/careernet/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Posts(db dbx.DBTX) posts.Repository
	Connections(db dbx.DBTX) connections.Repository
	Notifications(db dbx.DBTX) notifications.Repository
}
