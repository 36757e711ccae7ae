package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/advaita02/social-media-network/internal/service"
)

// PostHandler serves the post feed, comments and reactions
type PostHandler struct {
	feed      *service.FeedService
	reactions *service.ReactionService
}

// NewPostHandler creates a new post handler
func NewPostHandler(feed *service.FeedService, reactions *service.ReactionService) *PostHandler {
	return &PostHandler{feed: feed, reactions: reactions}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	views, err := h.feed.ListPosts(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetPost handles GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	view, err := h.feed.GetPost(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input struct {
		Title         string `json:"title" binding:"required"`
		Content       string `json:"content"`
		TypeOfPost    string `json:"type_of_post"`
		MembershipIDs []uint `json:"membership_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	post, err := h.feed.CreatePost(c.Request.Context(), currentUserID(c),
		input.Title, input.Content, input.TypeOfPost, input.MembershipIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost handles PATCH /api/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.feed.UpdatePost(c.Request.Context(), currentUserID(c), id, input.Title, input.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetComments handles GET /api/posts/:id/comments
func (h *PostHandler) GetComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	comments, err := h.feed.ListComments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment handles POST /api/posts/:id/add_comment
func (h *PostHandler) AddComment(c *gin.Context) {
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

	comment, err := h.feed.AddComment(c.Request.Context(), currentUserID(c), id, input.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Like handles POST /api/posts/:id/like
func (h *PostHandler) Like(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		TypeOfLike uint `json:"type_of_like"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type_of_like is required"})
		return
	}

	view, err := h.reactions.Like(c.Request.Context(), currentUserID(c), id, input.TypeOfLike)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Unlike handles PATCH /api/posts/:id/unlike
func (h *PostHandler) Unlike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	like, err := h.reactions.Unlike(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"active": like.Active})
}

// UpdateLike handles PATCH /api/posts/:id/update_like
func (h *PostHandler) UpdateLike(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input struct {
		TypeOfLike uint `json:"type_of_like"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type_of_like is required"})
		return
	}

	like, err := h.reactions.UpdateLike(c.Request.Context(), currentUserID(c), id, input.TypeOfLike)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type_of_like": like.LikeTypeID})
}
