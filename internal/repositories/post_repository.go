package repositories

import (
	"context"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uint) (*models.Post, error)
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	UpdatePost(ctx context.Context, id uint, content string, title *string) (*models.Post, error)
	DeletePost(ctx context.Context, id uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return translateError(r.db.WithContext(ctx).Create(post).Error)
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// GetAllPosts retrieves all posts, newest first
func (r *PostgresPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost sets content, and title when it is not nil, then returns the stored row
func (r *PostgresPostRepository) UpdatePost(ctx context.Context, id uint, content string, title *string) (*models.Post, error) {
	patch := map[string]interface{}{"content": content}
	if title != nil {
		patch["title"] = *title
	}

	res := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return nil, translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetPostByID(ctx, id)
}

// DeletePost deletes a post by ID. Comments and likes go with it through the
// foreign key cascade.
func (r *PostgresPostRepository) DeletePost(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
