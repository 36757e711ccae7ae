package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaita02/social-media-network/internal/service"
)

// CommentHandler serves comment edits, gated by ownership
type CommentHandler struct {
	feed *service.FeedService
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(feed *service.FeedService) *CommentHandler {
	return &CommentHandler{feed: feed}
}

// UpdateComment handles PATCH /api/comments/:id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment is required"})
		return
	}

	comment, err := h.feed.UpdateComment(c.Request.Context(), currentUserID(c), id, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment handles DELETE /api/comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.feed.DeleteComment(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
