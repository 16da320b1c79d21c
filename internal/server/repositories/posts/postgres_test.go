package posts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avelichko/careernet/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelichko/careernet/internal/server/models"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestCreate_ReturnsGeneratedID(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("u1", "hello", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("p1", time.Now()))

	p, err := repo.Create(context.Background(), &models.Post{AuthorID: "u1", Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM posts p WHERE`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFeed_NewestFirst(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "author_id", "content", "image_key", "created_at", "likes"}).
		AddRow("p2", "u1", "newer", "", time.Now(), 3).
		AddRow("p1", "u2", "older", "", time.Now().Add(-time.Hour), 0)

	mock.ExpectQuery(`SELECT .+ FROM posts p ORDER BY p.created_at DESC`).
		WithArgs(20).
		WillReturnRows(rows)

	feed, err := repo.Feed(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "p2", feed[0].ID)
	assert.Equal(t, 3, feed[0].Likes)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM posts`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLikes_RoundTrip(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("p1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec(`INSERT INTO post_likes`).
		WithArgs("p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM post_likes`).
		WithArgs("p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	liked, err := repo.HasLike(context.Background(), "p1", "u1")
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.AddLike(context.Background(), "p1", "u1"))
	require.NoError(t, repo.RemoveLike(context.Background(), "p1", "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddComment(t *testing.T) {
	repo, mock, db := newMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs("p1", "u1", "nice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c1", time.Now()))

	c, err := repo.AddComment(context.Background(), &models.Comment{
		PostID: "p1", AuthorID: "u1", Content: "nice",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)
}
