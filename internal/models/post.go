package models

import "time"

// Post is owned exclusively by the user that created it
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     *string   `json:"title"`
	Content   string    `json:"content" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string  `json:"content" validate:"required,min=1,max=10000"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=300"`
}

// UpdatePostRequest defines the request body for editing an existing post.
// A missing title leaves the stored title untouched.
type UpdatePostRequest struct {
	Content string  `json:"content" validate:"required,min=1,max=10000"`
	Title   *string `json:"title,omitempty" validate:"omitempty,max=300"`
}
