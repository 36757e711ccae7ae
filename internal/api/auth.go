package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaita02/social-media-network/internal/service"
)

// AuthHandler issues tokens against stored credentials
type AuthHandler struct {
	accounts *service.AccountService
	auth     *AuthMiddleware
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *service.AccountService, auth *AuthMiddleware) *AuthHandler {
	return &AuthHandler{accounts: accounts, auth: auth}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.auth.IssueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
