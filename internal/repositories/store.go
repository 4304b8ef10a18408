package repositories

import (
	"context"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"gorm.io/gorm"
)

// ResourceRepository resolves ownership of ownable rows
type ResourceRepository interface {
	// OwnerOf returns the user id stored on the row of the given kind, or ErrNotFound
	OwnerOf(ctx context.Context, kind models.ResourceKind, id uint) (uint, error)
}

// Store is the handle passed to every service. Each field is backed by the same
// database connection pool.
type Store struct {
	Users     UserRepository
	Posts     PostRepository
	Comments  CommentRepository
	Likes     LikeRepository
	Resources ResourceRepository
}

// NewPostgresStore wires every repository onto db
func NewPostgresStore(db *gorm.DB) *Store {
	return &Store{
		Users:     NewPostgresUserRepository(db),
		Posts:     NewPostgresPostRepository(db),
		Comments:  NewPostgresCommentRepository(db),
		Likes:     NewPostgresLikeRepository(db),
		Resources: NewPostgresResourceRepository(db),
	}
}

// PostgresResourceRepository implements ResourceRepository for PostgreSQL
type PostgresResourceRepository struct {
	db *gorm.DB
}

// NewPostgresResourceRepository creates a new PostgresResourceRepository
func NewPostgresResourceRepository(db *gorm.DB) *PostgresResourceRepository {
	return &PostgresResourceRepository{db: db}
}

// OwnerOf reads the owner column of the table bound to kind
func (r *PostgresResourceRepository) OwnerOf(ctx context.Context, kind models.ResourceKind, id uint) (uint, error) {
	var owners []uint
	err := r.db.WithContext(ctx).
		Table(kind.Table()).
		Where("id = ?", id).
		Limit(1).
		Pluck(kind.OwnerColumn(), &owners).Error
	if err != nil {
		return 0, translateError(err)
	}
	if len(owners) == 0 {
		return 0, ErrNotFound
	}
	return owners[0], nil
}
