package repositories

import (
	"context"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id uint) (*models.Comment, error)
	GetComments(ctx context.Context) ([]models.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	UpdateComment(ctx context.Context, id uint, content string, title *string) (*models.Comment, error)
	DeleteComment(ctx context.Context, id uint) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment creates a new comment in PostgreSQL
func (r *PostgresCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	return translateError(r.db.WithContext(ctx).Create(comment).Error)
}

// GetCommentByID retrieves a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) GetCommentByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &comment, nil
}

// GetComments retrieves every comment
func (r *PostgresCommentRepository) GetComments(ctx context.Context) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentsByPostID retrieves all comments for a specific post from PostgreSQL
func (r *PostgresCommentRepository) GetCommentsByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Where("parent_id = ?", postID).Order("created_at").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment sets content, and title when it is not nil, then returns the stored row
func (r *PostgresCommentRepository) UpdateComment(ctx context.Context, id uint, content string, title *string) (*models.Comment, error) {
	patch := map[string]interface{}{"content": content}
	if title != nil {
		patch["title"] = *title
	}

	res := r.db.WithContext(ctx).Model(&models.Comment{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetCommentByID(ctx, id)
}

// DeleteComment deletes a comment by ID from PostgreSQL
func (r *PostgresCommentRepository) DeleteComment(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
