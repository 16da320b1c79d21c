package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avelichko/careernet/internal/common"
	"github.com/avelichko/careernet/internal/dbx"
	"github.com/avelichko/careernet/internal/server/config"
	"github.com/avelichko/careernet/internal/server/models"
	connectionsrepo "github.com/avelichko/careernet/internal/server/repositories/connections"
	notificationsrepo "github.com/avelichko/careernet/internal/server/repositories/notifications"
	postsrepo "github.com/avelichko/careernet/internal/server/repositories/posts"
	usersrepo "github.com/avelichko/careernet/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "k"
	cfg.SessionValidityDuration = time.Hour
	return cfg
}

// --- fake repositories ---
//
// Lookup methods return the configured record, the configured error, or
// common.ErrorNotFound when neither is set.

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byID       *models.User
	byIDErr    error
	byUsername *models.User
	byUserErr  error
	byEmail    *models.User
	byEmailErr error

	updateOut *models.User
	updateErr error

	suggestions []*models.User
}

func pick(u *models.User, err error) (*models.User, error) {
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = "new-id"
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return pick(f.byID, f.byIDErr)
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return pick(f.byUsername, f.byUserErr)
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return pick(f.byEmail, f.byEmailErr)
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id string, upd *models.ProfileUpdate) (*models.User, error) {
	return pick(f.updateOut, f.updateErr)
}

func (f *fakeUsersRepo) Suggestions(ctx context.Context, userID string, limit int) ([]*models.User, error) {
	return f.suggestions, nil
}

type fakePostsRepo struct {
	createErr error

	post    *models.Post
	postErr error

	feed []*models.Post

	deleteErr error

	comments   []*models.Comment
	commentErr error

	hasLike    bool
	hasLikeErr error
	addLikeErr error
	rmLikeErr  error

	addedComments []*models.Comment
	addedLikes    int
	removedLikes  int
}

func (f *fakePostsRepo) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p.ID = "new-post"
	return p, nil
}

func (f *fakePostsRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if f.postErr != nil {
		return nil, f.postErr
	}
	if f.post != nil {
		return f.post, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakePostsRepo) Feed(ctx context.Context, limit int) ([]*models.Post, error) {
	return f.feed, nil
}

func (f *fakePostsRepo) Delete(ctx context.Context, id string) error { return f.deleteErr }

func (f *fakePostsRepo) AddComment(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	if f.commentErr != nil {
		return nil, f.commentErr
	}
	c.ID = "new-comment"
	f.addedComments = append(f.addedComments, c)
	return c, nil
}

func (f *fakePostsRepo) CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return f.comments, nil
}

func (f *fakePostsRepo) HasLike(ctx context.Context, postID, userID string) (bool, error) {
	return f.hasLike, f.hasLikeErr
}

func (f *fakePostsRepo) AddLike(ctx context.Context, postID, userID string) error {
	if f.addLikeErr == nil {
		f.addedLikes++
	}
	return f.addLikeErr
}

func (f *fakePostsRepo) RemoveLike(ctx context.Context, postID, userID string) error {
	if f.rmLikeErr == nil {
		f.removedLikes++
	}
	return f.rmLikeErr
}

type fakeConnectionsRepo struct {
	conn    *models.Connection
	connErr error

	exists    bool
	existsErr error

	createOut *models.Connection
	createErr error

	statusErr     error
	statusUpdates []string

	accepted []*models.Connection
	pending  []*models.Connection
}

func (f *fakeConnectionsRepo) Create(ctx context.Context, requesterID, recipientID string) (*models.Connection, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return &models.Connection{ID: "new-conn", RequesterID: requesterID, RecipientID: recipientID, Status: models.ConnectionPending}, nil
}

func (f *fakeConnectionsRepo) GetByID(ctx context.Context, id string) (*models.Connection, error) {
	if f.connErr != nil {
		return nil, f.connErr
	}
	if f.conn != nil {
		return f.conn, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeConnectionsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if f.statusErr == nil {
		f.statusUpdates = append(f.statusUpdates, status)
	}
	return f.statusErr
}

func (f *fakeConnectionsRepo) Exists(ctx context.Context, a, b string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeConnectionsRepo) ListAccepted(ctx context.Context, userID string) ([]*models.Connection, error) {
	return f.accepted, nil
}

func (f *fakeConnectionsRepo) ListPending(ctx context.Context, recipientID string) ([]*models.Connection, error) {
	return f.pending, nil
}

type fakeNotificationsRepo struct {
	created   []*models.Notification
	createErr error

	notif    *models.Notification
	notifErr error

	list []*models.Notification

	markReadErr error
	deleteErr   error
}

func (f *fakeNotificationsRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	n.ID = "new-notif"
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationsRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	if f.notifErr != nil {
		return nil, f.notifErr
	}
	if f.notif != nil {
		return f.notif, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeNotificationsRepo) ListByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	return f.list, nil
}

func (f *fakeNotificationsRepo) MarkRead(ctx context.Context, id string) error { return f.markReadErr }
func (f *fakeNotificationsRepo) Delete(ctx context.Context, id string) error   { return f.deleteErr }

type fakeRepoManager struct {
	u *fakeUsersRepo
	p *fakePostsRepo
	c *fakeConnectionsRepo
	n *fakeNotificationsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: &fakeUsersRepo{},
		p: &fakePostsRepo{},
		c: &fakeConnectionsRepo{},
		n: &fakeNotificationsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error           { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) Posts(db dbx.DBTX) postsrepo.Repository                 { return m.p }
func (m *fakeRepoManager) Connections(db dbx.DBTX) connectionsrepo.Repository     { return m.c }
func (m *fakeRepoManager) Notifications(db dbx.DBTX) notificationsrepo.Repository { return m.n }
