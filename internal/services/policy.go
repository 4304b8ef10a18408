package services

import "fmt"

// Rule selects how a mutation on someone else's resource is authorized
type Rule string

const (
	// RuleOwner only lets the resource owner act on it
	RuleOwner Rule = "owner"
	// RuleAnyUser lets any existing user act on an existing resource
	RuleAnyUser Rule = "any-user"
)

// Policy holds the authorization rules for the two mutations that act on a
// parent resource owned by someone else. Edit and delete always require ownership.
type Policy struct {
	// CommentRule gates CreateComment against the parent post.
	// RuleOwner means only the post's owner may comment under it.
	CommentRule Rule
	// LikeRule gates Like and Unlike against the target post or comment
	LikeRule Rule
}

// DefaultPolicy requires ownership for comments and likes alike
func DefaultPolicy() Policy {
	return Policy{CommentRule: RuleOwner, LikeRule: RuleOwner}
}

// ParseRule converts a configuration value into a Rule
func ParseRule(s string) (Rule, error) {
	switch Rule(s) {
	case RuleOwner, RuleAnyUser:
		return Rule(s), nil
	default:
		return "", fmt.Errorf("unknown authorization rule %q", s)
	}
}

// NewPolicy builds a Policy from the configured comment and like rules
func NewPolicy(commentRule, likeRule string) (Policy, error) {
	comment, err := ParseRule(commentRule)
	if err != nil {
		return Policy{}, fmt.Errorf("comment policy: %w", err)
	}
	like, err := ParseRule(likeRule)
	if err != nil {
		return Policy{}, fmt.Errorf("like policy: %w", err)
	}
	return Policy{CommentRule: comment, LikeRule: like}, nil
}
