package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/pkg/config"
)

const (
	ctxUserIDKey  = "user_id"
	ctxIsStaffKey = "is_staff"
)

// tokenClaims is the JWT payload issued at login
type tokenClaims struct {
	UserID  uint `json:"uid"`
	IsStaff bool `json:"staff"`
	jwt.RegisteredClaims
}

// AuthMiddleware issues and verifies bearer tokens
type AuthMiddleware struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(cfg *config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// IssueToken signs a token for a user
func (m *AuthMiddleware) IssueToken(user *models.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		UserID:  user.ID,
		IsStaff: user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *AuthMiddleware) parseToken(c *gin.Context) *tokenClaims {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, "Bearer "), claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}

// RequireAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := m.parseToken(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxIsStaffKey, claims.IsStaff)
		c.Next()
	}
}

// OptionalAuth attaches the viewer's identity when a valid token is present
// and lets anonymous requests through
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := m.parseToken(c); claims != nil {
			c.Set(ctxUserIDKey, claims.UserID)
			c.Set(ctxIsStaffKey, claims.IsStaff)
		}
		c.Next()
	}
}

// RequireStaff rejects non-staff callers. Must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsStaffKey) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff access required"})
			return
		}
		c.Next()
	}
}

// currentUserID returns the authenticated user id, zero for anonymous
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
