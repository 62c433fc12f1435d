package handler

import (
	"net/http"
	"strconv"

	"campusforum/internal/http-api/dto"
	"campusforum/internal/http-api/repository"
	"campusforum/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create submits a new post; it enters the moderation queue as pending.
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID.(int64), req)
	if err != nil {
		if err == service.ErrCategoryNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToPostResponse(post))
}

// List returns one page of posts.
// GET /api/posts?page=1&page_size=10&category=2&status=approved&sort=hot
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	categoryID, _ := strconv.ParseInt(c.Query("category"), 10, 64)

	result, err := h.postService.List(repository.ListPostsQuery{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: categoryID,
		Status:     c.Query("status"),
		Sort:       c.Query("sort"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get returns the post detail and increments its view counter. Runs behind
// OptionalSession so pending posts stay visible to their author and admins.
// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var viewerID int64
	if v, exists := c.Get("userID"); exists {
		viewerID = v.(int64)
	}

	post, err := h.postService.Get(postID, viewerID)
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrPostNotVisible:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update is the admin post edit.
// PUT /api/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Update(postID, req)
	if err != nil {
		switch err {
		case service.ErrPostNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case service.ErrCategoryNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToPostResponse(post))
}

// Delete removes a post (admin only).
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.postService.Delete(postID); err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// ListPending returns the admin moderation queue.
// GET /api/admin/posts/pending
func (h *PostHandler) ListPending(c *gin.Context) {
	items, err := h.postService.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Approve moves a pending post to approved and notifies its author.
// POST /api/admin/posts/:id/approve
func (h *PostHandler) Approve(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := h.postService.Approve(c.Request.Context(), postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     post.ID,
		"title":  post.Title,
		"status": post.Status,
	})
}

// Reject moves a pending post to rejected, with an optional reason relayed
// to the author.
// POST /api/admin/posts/:id/reject
func (h *PostHandler) Reject(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req dto.RejectPostRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postService.Reject(c.Request.Context(), postID, req.Reason)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     post.ID,
		"title":  post.Title,
		"status": post.Status,
	})
}
