package services

import (
	"context"
	"time"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// Service defines the forum operations exposed to the transport layer.
// Every mutation takes the acting user id resolved by the session layer.
type Service interface {
	Login(ctx context.Context, name string) (*models.User, error)

	CreatePost(ctx context.Context, userID uint, content string, title *string) (*models.Post, error)
	EditPost(ctx context.Context, userID, id uint, content string, title *string) (*models.Post, error)
	DeletePost(ctx context.Context, userID, id uint) error

	CreateComment(ctx context.Context, userID, postID uint, content string, title *string) (*models.Comment, error)
	EditComment(ctx context.Context, userID, id uint, content string, title *string) (*models.Comment, error)
	DeleteComment(ctx context.Context, userID, id uint) error

	Like(ctx context.Context, userID uint, postID, commentID *uint) error
	Unlike(ctx context.Context, userID uint, postID, commentID *uint) error

	Users(ctx context.Context) ([]models.User, error)
	Posts(ctx context.Context) ([]models.Post, error)
	Post(ctx context.Context, id uint) (*models.Post, error)
	Comments(ctx context.Context, parentID *uint) ([]models.Comment, error)
	LikeCount(ctx context.Context, postID, commentID *uint) (int64, error)
}

// Forum implements Service on top of a repositories.Store
type Forum struct {
	store  *repositories.Store
	auth   *Authorizer
	policy Policy
	logger *logrus.Entry
	now    func() time.Time
}

// NewForum creates a Forum. A nil logger falls back to the logrus standard logger.
func NewForum(store *repositories.Store, policy Policy, logger *logrus.Logger) *Forum {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Forum{
		store:  store,
		auth:   NewAuthorizer(store),
		policy: policy,
		logger: logger.WithField("component", "forum"),
		now:    time.Now,
	}
}

var _ Service = (*Forum)(nil)
