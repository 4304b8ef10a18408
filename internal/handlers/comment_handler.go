package handlers

import (
	"net/http"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	forum services.Service
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(forum services.Service) *CommentHandler {
	return &CommentHandler{forum: forum}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/comments", h.GetComments)
	g.GET("/posts/:id/comments", h.GetCommentsForPost)
	g.POST("/posts/:id/comments", h.CreateComment, auth)
	g.PUT("/comments/:id", h.UpdateComment, auth)
	g.DELETE("/comments/:id", h.DeleteComment, auth)
}

// CreateComment adds a comment under a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.forum.CreateComment(c.Request().Context(), userID, postID, req.Content, req.Title)
	recordMutation("createComment", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetComments lists comments, narrowed to one post by ?parent_id=
func (h *CommentHandler) GetComments(c echo.Context) error {
	parentID, err := optionalQueryID(c, "parent_id")
	if err != nil {
		return err
	}
	return h.listComments(c, parentID)
}

// GetCommentsForPost lists the comments under the post in the path
func (h *CommentHandler) GetCommentsForPost(c echo.Context) error {
	postID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	return h.listComments(c, &postID)
}

func (h *CommentHandler) listComments(c echo.Context, parentID *uint) error {
	comments, err := h.forum.Comments(c.Request().Context(), parentID)
	if err != nil {
		return handleServiceError(err)
	}
	return c.JSON(http.StatusOK, comments)
}

// UpdateComment updates an existing comment
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.forum.EditComment(c.Request().Context(), userID, commentID, req.Content, req.Title)
	recordMutation("editComment", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}
	commentID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = h.forum.DeleteComment(c.Request().Context(), userID, commentID)
	recordMutation("deleteComment", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
