package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/repositories"
)

// Users lists every user
func (s *Forum) Users(ctx context.Context) ([]models.User, error) {
	users, err := s.store.Users.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return nonNil(users), nil
}

// Posts lists every post
func (s *Forum) Posts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.store.Posts.GetAllPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return nonNil(posts), nil
}

// Post returns the post with the given id, or nil when there is none
func (s *Forum) Post(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.store.Posts.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// Comments lists the comments under parentID, or every comment when it is nil
func (s *Forum) Comments(ctx context.Context, parentID *uint) ([]models.Comment, error) {
	var (
		comments []models.Comment
		err      error
	)
	if parentID != nil {
		comments, err = s.store.Comments.GetCommentsByPostID(ctx, *parentID)
	} else {
		comments, err = s.store.Comments.GetComments(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return nonNil(comments), nil
}

// LikeCount counts the likes on exactly one of postID or commentID
func (s *Forum) LikeCount(ctx context.Context, postID, commentID *uint) (int64, error) {
	if _, _, err := ExactlyOneParent(postID, commentID); err != nil {
		return 0, err
	}
	count, err := s.store.Likes.CountLikes(ctx, postID, commentID)
	if err != nil {
		s.logger.WithFields(parentFields(postID, commentID)).WithError(err).Error("failed to count likes")
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

// nonNil keeps empty listings encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
