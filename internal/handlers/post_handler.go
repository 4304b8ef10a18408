package handlers

import (
	"net/http"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	forum services.Service
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(forum services.Service) *PostHandler {
	return &PostHandler{forum: forum}
}

// RegisterPostRoutes registers post-related routes. Reads are public, writes go
// through auth.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.POST("/posts", h.CreatePost, auth)
	g.PUT("/posts/:id", h.UpdatePost, auth)
	g.DELETE("/posts/:id", h.DeletePost, auth)
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.forum.CreatePost(c.Request().Context(), userID, req.Content, req.Title)
	recordMutation("createPost", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID. A missing post is answered with null.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.forum.Post(c.Request().Context(), postID)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves every post, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.forum.Posts(c.Request().Context())
	if err != nil {
		return handleServiceError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// UpdatePost updates an existing post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.forum.EditPost(c.Request().Context(), userID, postID, req.Content, req.Title)
	recordMutation("editPost", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post along with its comments and likes
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.forum.DeletePost(c.Request().Context(), userID, postID)
	recordMutation("deletePost", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
