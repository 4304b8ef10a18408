package repositories

import (
	"context"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations.
// Exactly one of postID/commentID is expected to be non-nil.
type LikeRepository interface {
	// CreateLike inserts a like; a second like on the same parent yields ErrDuplicate
	CreateLike(ctx context.Context, like *models.Like) error
	// DeleteLike removes the user's like on the parent and reports how many rows went away
	DeleteLike(ctx context.Context, userID uint, postID, commentID *uint) (int64, error)
	CountLikes(ctx context.Context, postID, commentID *uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike creates a new like in PostgreSQL
func (r *PostgresLikeRepository) CreateLike(ctx context.Context, like *models.Like) error {
	return translateError(r.db.WithContext(ctx).Create(like).Error)
}

// DeleteLike deletes the user's like on the given parent
func (r *PostgresLikeRepository) DeleteLike(ctx context.Context, userID uint, postID, commentID *uint) (int64, error) {
	res := byParent(r.db.WithContext(ctx).Where("user_id = ?", userID), postID, commentID).
		Delete(&models.Like{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// CountLikes counts likes on the given parent
func (r *PostgresLikeRepository) CountLikes(ctx context.Context, postID, commentID *uint) (int64, error) {
	var count int64
	err := byParent(r.db.WithContext(ctx).Model(&models.Like{}), postID, commentID).Count(&count).Error
	return count, err
}

// byParent scopes a like query to one parent column. A nil pointer must match
// SQL NULL, which a plain equality would not.
func byParent(db *gorm.DB, postID, commentID *uint) *gorm.DB {
	if postID != nil {
		db = db.Where("parent_post_id = ?", *postID)
	} else {
		db = db.Where("parent_post_id IS NULL")
	}
	if commentID != nil {
		db = db.Where("parent_comment_id = ?", *commentID)
	} else {
		db = db.Where("parent_comment_id IS NULL")
	}
	return db
}
