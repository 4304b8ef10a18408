package services

import (
	"errors"
	"fmt"
)

const (
	ReasonAlreadyLiked = "already liked"
	ReasonNotLiked     = "not liked"
)

// InvalidArgumentError reports malformed input: an empty name, both or neither
// like parent set.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a referenced user, post or comment that does not exist
type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// ForbiddenError reports an actor touching a resource it does not own
type ForbiddenError struct {
	Kind   string
	ID     uint
	UserID uint
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("user %d does not own %s %d", e.UserID, e.Kind, e.ID)
}

// ConflictError reports a duplicate like or an unlike without a like
type ConflictError struct {
	Kind   string
	ID     uint
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Kind, e.ID, e.Reason)
}

// IsInvalidArgument checks if an error is an InvalidArgumentError
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsForbidden checks if an error is a ForbiddenError
func IsForbidden(err error) bool {
	var target *ForbiddenError
	return errors.As(err, &target)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsRejection reports whether err is one of the request-scoped rejections above,
// as opposed to a store failure.
func IsRejection(err error) bool {
	return IsInvalidArgument(err) || IsNotFound(err) || IsForbidden(err) || IsConflict(err)
}
