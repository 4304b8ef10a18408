package handlers

import (
	"net/http"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes on posts and comments
type LikeHandler struct {
	forum services.Service
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(forum services.Service) *LikeHandler {
	return &LikeHandler{forum: forum}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/likes/count", h.CountLikes)
	g.POST("/likes", h.LikeResource, auth)
	g.DELETE("/likes", h.UnlikeResource, auth)
}

// LikeResource likes a post or a comment
func (h *LikeHandler) LikeResource(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req models.LikeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	postID, commentID := req.Parents()
	err = h.forum.Like(c.Request().Context(), userID, postID, commentID)
	recordMutation("like", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// UnlikeResource removes a like from a post or a comment
func (h *LikeHandler) UnlikeResource(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return err
	}

	var req models.LikeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	postID, commentID := req.Parents()
	err = h.forum.Unlike(c.Request().Context(), userID, postID, commentID)
	recordMutation("unlike", err)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// CountLikes returns the like count of ?post_id= or ?comment_id=
func (h *LikeHandler) CountLikes(c echo.Context) error {
	postID, err := optionalQueryID(c, "post_id")
	if err != nil {
		return err
	}
	commentID, err := optionalQueryID(c, "comment_id")
	if err != nil {
		return err
	}

	count, err := h.forum.LikeCount(c.Request().Context(), postID, commentID)
	if err != nil {
		return handleServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
