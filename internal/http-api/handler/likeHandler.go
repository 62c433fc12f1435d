package handler

import (
	"net/http"
	"strconv"

	"campusforum/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) toggle(c *gin.Context, param string, op func(userID, targetID int64) (int64, error)) {
	targetID, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	count, err := op(userID.(int64), targetID)
	if err != nil {
		switch err {
		case service.ErrAlreadyLiked, service.ErrNotLiked:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case service.ErrPostNotFound, service.ErrCommentNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes_count": count})
}

// LikePost handles POST /api/posts/:id/like
func (h *LikeHandler) LikePost(c *gin.Context) {
	h.toggle(c, "id", h.likeService.LikePost)
}

// UnlikePost handles DELETE /api/posts/:id/like
func (h *LikeHandler) UnlikePost(c *gin.Context) {
	h.toggle(c, "id", h.likeService.UnlikePost)
}

// LikeComment handles POST /api/comments/:id/like
func (h *LikeHandler) LikeComment(c *gin.Context) {
	h.toggle(c, "id", h.likeService.LikeComment)
}

// UnlikeComment handles DELETE /api/comments/:id/like
func (h *LikeHandler) UnlikeComment(c *gin.Context) {
	h.toggle(c, "id", h.likeService.UnlikeComment)
}
