package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/repositories"
)

// Authorizer holds the predicates every mutation is gated on. Each one either
// passes silently or fails with a typed error.
type Authorizer struct {
	users     repositories.UserRepository
	resources repositories.ResourceRepository
}

// NewAuthorizer creates an Authorizer reading from store
func NewAuthorizer(store *repositories.Store) *Authorizer {
	return &Authorizer{users: store.Users, resources: store.Resources}
}

// ActorExists fails with NotFoundError when no user has the given id
func (a *Authorizer) ActorExists(ctx context.Context, userID uint) error {
	if _, err := a.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return &NotFoundError{Kind: "user", ID: userID}
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}
	return nil
}

// ActorOwnsResource fails with NotFoundError when the row is missing and with
// ForbiddenError when it belongs to another user.
func (a *Authorizer) ActorOwnsResource(ctx context.Context, userID, resourceID uint, kind models.ResourceKind) error {
	owner, err := a.resourceOwner(ctx, resourceID, kind)
	if err != nil {
		return err
	}
	if owner != userID {
		return &ForbiddenError{Kind: kind.Name(), ID: resourceID, UserID: userID}
	}
	return nil
}

// Authorize applies rule to an action by userID on the resource
func (a *Authorizer) Authorize(ctx context.Context, rule Rule, userID, resourceID uint, kind models.ResourceKind) error {
	if rule == RuleAnyUser {
		if err := a.ActorExists(ctx, userID); err != nil {
			return err
		}
		_, err := a.resourceOwner(ctx, resourceID, kind)
		return err
	}
	return a.ActorOwnsResource(ctx, userID, resourceID, kind)
}

func (a *Authorizer) resourceOwner(ctx context.Context, resourceID uint, kind models.ResourceKind) (uint, error) {
	owner, err := a.resources.OwnerOf(ctx, kind, resourceID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return 0, &NotFoundError{Kind: kind.Name(), ID: resourceID}
		}
		return 0, fmt.Errorf("failed to look up %s owner: %w", kind, err)
	}
	return owner, nil
}

// ExactlyOneParent checks that a like names a single target and returns it.
// It never touches the store.
func ExactlyOneParent(postID, commentID *uint) (models.ResourceKind, uint, error) {
	switch {
	case postID != nil && commentID != nil:
		return 0, 0, &InvalidArgumentError{Field: "parent", Reason: "only one of post and comment may be set"}
	case postID != nil:
		return models.ResourcePost, *postID, nil
	case commentID != nil:
		return models.ResourceComment, *commentID, nil
	default:
		return 0, 0, &InvalidArgumentError{Field: "parent", Reason: "one of post and comment must be set"}
	}
}
