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

const feedLimit = 20

// PostService implements the feed: posts, comments, and like toggling.
// Comment and like writes that also raise a notification run inside one
// transaction.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPostService(db *sql.DB, m repomanager.RepositoryManager) *PostService {
	return &PostService{db: db, repomanager: m}
}

func (s *PostService) Create(ctx context.Context, authorID, content, imageKey string) (*models.Post, error) {
	if content == "" {
		return nil, common.ErrMissingFields
	}

	post, err := s.repomanager.Posts(s.db).Create(ctx, &models.Post{
		AuthorID: authorID,
		Content:  content,
		ImageKey: imageKey,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return post, nil
}

func (s *PostService) Feed(ctx context.Context) ([]*models.Post, error) {
	return s.repomanager.Posts(s.db).Feed(ctx, feedLimit)
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.repomanager.Posts(s.db).GetByID(ctx, id)
}

func (s *PostService) Comments(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.repomanager.Posts(s.db).CommentsByPost(ctx, postID)
}

// Delete removes a post. Only the author may delete their own post.
func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != userID {
		return common.ErrForbidden
	}

	if err := repo.Delete(ctx, postID); err != nil {
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}

// AddComment attaches a comment and notifies the post author, unless the
// author is commenting on their own post.
func (s *PostService) AddComment(ctx context.Context, userID, postID, content string) (*models.Comment, error) {
	if content == "" {
		return nil, common.ErrMissingFields
	}

	post, err := s.repomanager.Posts(s.db).GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{PostID: postID, AuthorID: userID, Content: content}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Posts(tx).AddComment(ctx, comment); err != nil {
			return err
		}
		if post.AuthorID != userID {
			_, err := s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
				RecipientID: post.AuthorID,
				ActorID:     userID,
				Type:        models.NotificationComment,
				PostID:      postID,
			})
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error adding comment: %w", err)
	}

	return comment, nil
}

// ToggleLike likes the post if the user has not liked it yet, otherwise
// removes the like. Returns the resulting liked state. A fresh like of
// another user's post raises a notification.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID string) (bool, error) {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	liked, err := repo.HasLike(ctx, postID, userID)
	if err != nil {
		return false, fmt.Errorf("error checking like: %w", err)
	}

	if liked {
		if err := repo.RemoveLike(ctx, postID, userID); err != nil {
			return false, fmt.Errorf("error removing like: %w", err)
		}
		return false, nil
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Posts(tx).AddLike(ctx, postID, userID); err != nil {
			return err
		}
		if post.AuthorID != userID {
			_, err := s.repomanager.Notifications(tx).Create(ctx, &models.Notification{
				RecipientID: post.AuthorID,
				ActorID:     userID,
				Type:        models.NotificationLike,
				PostID:      postID,
			})
			return err
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("error adding like: %w", err)
	}

	return true, nil
}
