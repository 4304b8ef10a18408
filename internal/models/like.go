package models

import "time"

// Like targets exactly one post or one comment. The store enforces one like per
// (user, parent) pair through unique indexes and a check constraint on the parents.
type Like struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_post;uniqueIndex:idx_likes_user_comment"`
	ParentPostID    *uint     `json:"parent_post_id" gorm:"uniqueIndex:idx_likes_user_post"`
	ParentCommentID *uint     `json:"parent_comment_id" gorm:"uniqueIndex:idx_likes_user_comment"`
	CreatedAt       time.Time `json:"created_at"`
}

// LikeRequest accepts either the {id, type} form or explicit parent ids.
type LikeRequest struct {
	ID        *uint  `json:"id,omitempty"`
	Type      string `json:"type,omitempty" validate:"omitempty,oneof=post comment"`
	PostID    *uint  `json:"post_id,omitempty"`
	CommentID *uint  `json:"comment_id,omitempty"`
}

// Parents resolves the request into the (post, comment) pair handed to the like operations.
func (r LikeRequest) Parents() (postID, commentID *uint) {
	if r.Type == "" {
		return r.PostID, r.CommentID
	}
	if r.Type == ResourcePost.Name() {
		return r.ID, nil
	}
	return nil, r.ID
}
