package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/service"
)

// ReferenceHandler serves the small reference tables (like types, memberships)
type ReferenceHandler struct {
	reactions   *service.ReactionService
	memberships *db.MembershipRepository
}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler(reactions *service.ReactionService, memberships *db.MembershipRepository) *ReferenceHandler {
	return &ReferenceHandler{reactions: reactions, memberships: memberships}
}

// ListLikeTypes handles GET /api/liketypes
func (h *ReferenceHandler) ListLikeTypes(c *gin.Context) {
	types, err := h.reactions.ListLikeTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateLikeType handles POST /api/liketypes with get-or-create semantics
func (h *ReferenceHandler) CreateLikeType(c *gin.Context) {
	var input struct {
		NameType string `json:"name_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name_type is required"})
		return
	}

	likeType, err := h.reactions.EnsureLikeType(c.Request.Context(), input.NameType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, likeType)
}

// ListMemberships handles GET /api/memberships
func (h *ReferenceHandler) ListMemberships(c *gin.Context) {
	memberships, err := h.memberships.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberships)
}
