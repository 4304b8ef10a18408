package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/repositories"
)

// memStore is an in-memory stand-in for the Postgres store. It enforces the same
// constraints the migrations do: unique user names, one like per (user, parent)
// and cascading post deletes.
type memStore struct {
	mu       sync.Mutex
	nextID   uint
	users    map[uint]models.User
	posts    map[uint]models.Post
	comments map[uint]models.Comment
	likes    map[uint]models.Like
	calls    int
	failWith error
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint]models.User{},
		posts:    map[uint]models.Post{},
		comments: map[uint]models.Comment{},
		likes:    map[uint]models.Like{},
	}
}

func (m *memStore) store() *repositories.Store {
	return &repositories.Store{
		Users:     memUsers{m},
		Posts:     memPosts{m},
		Comments:  memComments{m},
		Likes:     memLikes{m},
		Resources: memResources{m},
	}
}

// enter locks the store and counts the access
func (m *memStore) enter() error {
	m.mu.Lock()
	m.calls++
	return m.failWith
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) accesses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type memUsers struct{ *memStore }

func (r memUsers) CreateUser(_ context.Context, user *models.User) error {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	for _, u := range r.users {
		if u.Name == user.Name {
			return repositories.ErrDuplicate
		}
	}
	user.ID = r.id()
	r.users[user.ID] = *user
	return nil
}

func (r memUsers) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &u, nil
}

func (r memUsers) GetUserByName(_ context.Context, name string) (*models.User, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	for _, u := range r.users {
		if u.Name == name {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r memUsers) GetUsers(_ context.Context) ([]models.User, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	var out []models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memPosts struct{ *memStore }

func (r memPosts) CreatePost(_ context.Context, post *models.Post) error {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	post.ID = r.id()
	r.posts[post.ID] = *post
	return nil
}

func (r memPosts) GetPostByID(_ context.Context, id uint) (*models.Post, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &p, nil
}

func (r memPosts) GetAllPosts(_ context.Context) ([]models.Post, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	var out []models.Post
	for _, p := range r.posts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memPosts) UpdatePost(_ context.Context, id uint, content string, title *string) (*models.Post, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	p.Content = content
	if title != nil {
		p.Title = title
	}
	r.posts[id] = p
	return &p, nil
}

func (r memPosts) DeletePost(_ context.Context, id uint) error {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if _, ok := r.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.posts, id)
	for cid, c := range r.comments {
		if c.ParentID == id {
			r.deleteCommentLocked(cid)
		}
	}
	for lid, l := range r.likes {
		if l.ParentPostID != nil && *l.ParentPostID == id {
			delete(r.likes, lid)
		}
	}
	return nil
}

func (m *memStore) deleteCommentLocked(id uint) {
	delete(m.comments, id)
	for lid, l := range m.likes {
		if l.ParentCommentID != nil && *l.ParentCommentID == id {
			delete(m.likes, lid)
		}
	}
}

type memComments struct{ *memStore }

func (r memComments) CreateComment(_ context.Context, comment *models.Comment) error {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if _, ok := r.posts[comment.ParentID]; !ok {
		return errors.New("foreign key violation")
	}
	comment.ID = r.id()
	r.comments[comment.ID] = *comment
	return nil
}

func (r memComments) GetCommentByID(_ context.Context, id uint) (*models.Comment, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &c, nil
}

func (r memComments) GetComments(ctx context.Context) ([]models.Comment, error) {
	return r.list(func(models.Comment) bool { return true })
}

func (r memComments) GetCommentsByPostID(_ context.Context, postID uint) ([]models.Comment, error) {
	return r.list(func(c models.Comment) bool { return c.ParentID == postID })
}

func (r memComments) list(keep func(models.Comment) bool) ([]models.Comment, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	var out []models.Comment
	for _, c := range r.comments {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memComments) UpdateComment(_ context.Context, id uint, content string, title *string) (*models.Comment, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return nil, err
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	c.Content = content
	if title != nil {
		c.Title = title
	}
	r.comments[id] = c
	return &c, nil
}

func (r memComments) DeleteComment(_ context.Context, id uint) error {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if _, ok := r.comments[id]; !ok {
		return repositories.ErrNotFound
	}
	r.deleteCommentLocked(id)
	return nil
}

type memLikes struct{ *memStore }

func sameParent(l models.Like, postID, commentID *uint) bool {
	eq := func(a, b *uint) bool {
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		return *a == *b
	}
	return eq(l.ParentPostID, postID) && eq(l.ParentCommentID, commentID)
}

func (r memLikes) CreateLike(_ context.Context, like *models.Like) error {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return err
	}
	if (like.ParentPostID == nil) == (like.ParentCommentID == nil) {
		return errors.New("check constraint violation")
	}
	for _, l := range r.likes {
		if l.UserID == like.UserID && sameParent(l, like.ParentPostID, like.ParentCommentID) {
			return repositories.ErrDuplicate
		}
	}
	like.ID = r.id()
	r.likes[like.ID] = *like
	return nil
}

func (r memLikes) DeleteLike(_ context.Context, userID uint, postID, commentID *uint) (int64, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return 0, err
	}
	var deleted int64
	for id, l := range r.likes {
		if l.UserID == userID && sameParent(l, postID, commentID) {
			delete(r.likes, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r memLikes) CountLikes(_ context.Context, postID, commentID *uint) (int64, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return 0, err
	}
	var count int64
	for _, l := range r.likes {
		if sameParent(l, postID, commentID) {
			count++
		}
	}
	return count, nil
}

type memResources struct{ *memStore }

func (r memResources) OwnerOf(_ context.Context, kind models.ResourceKind, id uint) (uint, error) {
	defer r.mu.Unlock()
	if err := r.enter(); err != nil {
		return 0, err
	}
	switch kind {
	case models.ResourcePost:
		if p, ok := r.posts[id]; ok {
			return p.UserID, nil
		}
	case models.ResourceComment:
		if c, ok := r.comments[id]; ok {
			return c.UserID, nil
		}
	}
	return 0, repositories.ErrNotFound
}
