// Package posts persists feed posts, their comments, and likes.
package posts

import (
	"context"

	"github.com/avelichko/careernet/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)

	// Feed returns the most recent posts, newest first.
	Feed(ctx context.Context, limit int) ([]*models.Post, error)

	Delete(ctx context.Context, id string) error

	AddComment(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	CommentsByPost(ctx context.Context, postID string) ([]*models.Comment, error)

	HasLike(ctx context.Context, postID, userID string) (bool, error)
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
}
