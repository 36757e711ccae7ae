package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/pkg/config"
)

func newTestAuth() *AuthMiddleware {
	return NewAuthMiddleware(&config.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func newTestEngine(auth *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	engine.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": currentUserID(c)})
	})
	engine.GET("/optional", auth.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": currentUserID(c)})
	})
	engine.GET("/staff", auth.RequireAuth(), auth.RequireStaff(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func doRequest(engine *gin.Engine, token string) *httptest.ResponseRecorder {
	return doRequestPath(engine, "/protected", token)
}

func doRequestPath(engine *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	auth := newTestAuth()
	engine := newTestEngine(auth)

	rec := doRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsForgedToken(t *testing.T) {
	auth := newTestAuth()
	engine := newTestEngine(auth)

	other := NewAuthMiddleware(&config.AuthConfig{JWTSecret: "other-secret", TokenTTL: time.Hour})
	token, err := other.IssueToken(&models.User{ID: 1, Username: "mallory"})
	require.NoError(t, err)

	rec := doRequest(engine, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	expired := NewAuthMiddleware(&config.AuthConfig{JWTSecret: "test-secret", TokenTTL: -time.Minute})
	engine := newTestEngine(newTestAuth())

	token, err := expired.IssueToken(&models.User{ID: 1, Username: "late"})
	require.NoError(t, err)

	rec := doRequest(engine, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	auth := newTestAuth()
	engine := newTestEngine(auth)

	token, err := auth.IssueToken(&models.User{ID: 42, Username: "alice"})
	require.NoError(t, err)

	rec := doRequest(engine, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":42}`, rec.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	auth := newTestAuth()
	engine := newTestEngine(auth)

	// Anonymous passes with a zero user id.
	rec := doRequestPath(engine, "/optional", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":0}`, rec.Body.String())

	token, err := auth.IssueToken(&models.User{ID: 7, Username: "bob"})
	require.NoError(t, err)

	rec = doRequestPath(engine, "/optional", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":7}`, rec.Body.String())
}

func TestRequireStaff(t *testing.T) {
	auth := newTestAuth()
	engine := newTestEngine(auth)

	userToken, err := auth.IssueToken(&models.User{ID: 1, Username: "user"})
	require.NoError(t, err)
	staffToken, err := auth.IssueToken(&models.User{ID: 2, Username: "admin", IsStaff: true})
	require.NoError(t, err)

	rec := doRequestPath(engine, "/staff", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequestPath(engine, "/staff", staffToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
