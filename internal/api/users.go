package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaita02/social-media-network/internal/service"
)

// UserHandler serves registration and profile reads
type UserHandler struct {
	accounts *service.AccountService
	feed     *service.FeedService
}

// NewUserHandler creates a new user handler
func NewUserHandler(accounts *service.AccountService, feed *service.FeedService) *UserHandler {
	return &UserHandler{accounts: accounts, feed: feed}
}

// Register handles POST /api/users
func (h *UserHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetMe handles GET /api/me
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.accounts.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetProfile handles GET /api/users/:id/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.accounts.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetUserPosts handles GET /api/users/:id/posts
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	views, err := h.feed.ListUserPosts(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
