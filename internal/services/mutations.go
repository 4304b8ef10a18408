package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/repositories"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Login returns the user with the trimmed name, creating it on first use
func (s *Forum) Login(ctx context.Context, name string) (*models.User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, &InvalidArgumentError{Field: "name", Reason: "name cannot be an empty string"}
	}

	user, err := s.store.Users.GetUserByName(ctx, trimmed)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	user = &models.User{Name: trimmed, CreatedAt: s.now()}
	if err := s.store.Users.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		// a concurrent login inserted the same name first
		user, err = s.store.Users.GetUserByName(ctx, trimmed)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		return user, nil
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "name": user.Name}).Info("user created")
	return user, nil
}

// CreatePost creates a post owned by userID
func (s *Forum) CreatePost(ctx context.Context, userID uint, content string, title *string) (*models.Post, error) {
	if err := s.auth.ActorExists(ctx, userID); err != nil {
		return nil, s.rejected("createPost", userID, err)
	}

	post := &models.Post{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.store.Posts.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// EditPost replaces the content, and the title when given, of a post userID owns
func (s *Forum) EditPost(ctx context.Context, userID, id uint, content string, title *string) (*models.Post, error) {
	if err := s.auth.ActorOwnsResource(ctx, userID, id, models.ResourcePost); err != nil {
		return nil, s.rejected("editPost", userID, err)
	}

	post, err := s.store.Posts.UpdatePost(ctx, id, content, title)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Kind: models.ResourcePost.Name(), ID: id}
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// DeletePost deletes a post userID owns. Its comments and likes are removed by
// the store's cascade.
func (s *Forum) DeletePost(ctx context.Context, userID, id uint) error {
	if err := s.auth.ActorOwnsResource(ctx, userID, id, models.ResourcePost); err != nil {
		return s.rejected("deletePost", userID, err)
	}

	if err := s.store.Posts.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &NotFoundError{Kind: models.ResourcePost.Name(), ID: id}
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "post_id": id}).Info("post deleted")
	return nil
}

// CreateComment creates a comment under postID, gated by the comment rule of the policy
func (s *Forum) CreateComment(ctx context.Context, userID, postID uint, content string, title *string) (*models.Comment, error) {
	if err := s.auth.Authorize(ctx, s.policy.CommentRule, userID, postID, models.ResourcePost); err != nil {
		return nil, s.rejected("createComment", userID, err)
	}

	comment := &models.Comment{
		UserID:    userID,
		ParentID:  postID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.store.Comments.CreateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// EditComment replaces the content, and the title when given, of a comment userID owns
func (s *Forum) EditComment(ctx context.Context, userID, id uint, content string, title *string) (*models.Comment, error) {
	if err := s.auth.ActorOwnsResource(ctx, userID, id, models.ResourceComment); err != nil {
		return nil, s.rejected("editComment", userID, err)
	}

	comment, err := s.store.Comments.UpdateComment(ctx, id, content, title)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, &NotFoundError{Kind: models.ResourceComment.Name(), ID: id}
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// DeleteComment deletes a comment userID owns
func (s *Forum) DeleteComment(ctx context.Context, userID, id uint) error {
	if err := s.auth.ActorOwnsResource(ctx, userID, id, models.ResourceComment); err != nil {
		return s.rejected("deleteComment", userID, err)
	}

	if err := s.store.Comments.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &NotFoundError{Kind: models.ResourceComment.Name(), ID: id}
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}

// Like records userID's like on exactly one of postID or commentID.
// Liking the same parent twice fails with ConflictError.
func (s *Forum) Like(ctx context.Context, userID uint, postID, commentID *uint) error {
	kind, targetID, err := ExactlyOneParent(postID, commentID)
	if err != nil {
		return err
	}
	if err := s.auth.Authorize(ctx, s.policy.LikeRule, userID, targetID, kind); err != nil {
		return s.rejected("like", userID, err)
	}

	like := &models.Like{
		UserID:          userID,
		ParentPostID:    postID,
		ParentCommentID: commentID,
		CreatedAt:       s.now(),
	}
	if err := s.store.Likes.CreateLike(ctx, like); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return &ConflictError{Kind: kind.Name(), ID: targetID, Reason: ReasonAlreadyLiked}
		}
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}

// Unlike removes userID's like on exactly one of postID or commentID.
// Unliking a parent that was never liked fails with ConflictError.
func (s *Forum) Unlike(ctx context.Context, userID uint, postID, commentID *uint) error {
	kind, targetID, err := ExactlyOneParent(postID, commentID)
	if err != nil {
		return err
	}
	if err := s.auth.Authorize(ctx, s.policy.LikeRule, userID, targetID, kind); err != nil {
		return s.rejected("unlike", userID, err)
	}

	deleted, err := s.store.Likes.DeleteLike(ctx, userID, postID, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	if deleted == 0 {
		return &ConflictError{Kind: kind.Name(), ID: targetID, Reason: ReasonNotLiked}
	}
	return nil
}

// rejected logs a failed precondition and hands the error back unchanged
func (s *Forum) rejected(mutation string, userID uint, err error) error {
	entry := s.logger.WithFields(logrus.Fields{
		"mutation": mutation,
		"user_id":  userID,
		"error":    err.Error(),
	})
	if IsRejection(err) {
		entry.Debug("mutation rejected")
	} else {
		entry.Error("authorization lookup failed")
	}
	return err
}

func parentFields(postID, commentID *uint) logrus.Fields {
	return logrus.Fields{
		"post_id":    lo.FromPtr(postID),
		"comment_id": lo.FromPtr(commentID),
	}
}
