package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`   // ID of the user who made the comment
	ParentID  uint      `json:"parent_id" gorm:"not null;index"` // ID of the post the comment belongs to
	Title     *string   `json:"title"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string  `json:"content" validate:"required,min=1,max=10000"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=300"`
}

// UpdateCommentRequest defines the request body for updating an existing comment
type UpdateCommentRequest struct {
	Content string  `json:"content" validate:"required,min=1,max=10000"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=300"`
}
