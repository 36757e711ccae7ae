package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/advaita02/social-media-network/internal/cache"
	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/service"
	"github.com/advaita02/social-media-network/pkg/config"
	"github.com/advaita02/social-media-network/pkg/logging"
)

// Router sets up API routes
type Router struct {
	db     *db.DB
	cache  *cache.Cache
	cfg    *config.Config
	logger *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, cfg *config.Config) *Router {
	return &Router{
		db:     database,
		cache:  redisCache,
		cfg:    cfg,
		logger: logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	engine.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:  []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	// Repositories
	repo := db.NewRepository(r.db.DB)
	users := db.NewUserRepository(repo)
	posts := db.NewPostRepository(repo)
	comments := db.NewCommentRepository(repo)
	likes := db.NewLikeRepository(repo)
	memberships := db.NewMembershipRepository(repo)
	surveys := db.NewSurveyRepository(repo)
	stats := db.NewStatsRepository(repo)

	// Services
	feedSvc := service.NewFeedService(posts, comments, likes)
	reactionSvc := service.NewReactionService(likes, posts, feedSvc)
	accountSvc := service.NewAccountService(users)
	surveySvc := service.NewSurveyService(surveys)
	statsSvc := service.NewStatsService(stats)

	// Handlers
	auth := NewAuthMiddleware(&r.cfg.Auth)
	authHandler := NewAuthHandler(accountSvc, auth)
	userHandler := NewUserHandler(accountSvc, feedSvc)
	postHandler := NewPostHandler(feedSvc, reactionSvc)
	commentHandler := NewCommentHandler(feedSvc)
	surveyHandler := NewSurveyHandler(surveySvc)
	referenceHandler := NewReferenceHandler(reactionSvc, memberships)
	statsHandler := NewStatsHandler(statsSvc, r.cache)

	api := engine.Group("/api")
	{
		// Public
		api.POST("/users", userHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/users/:id/profile", userHandler.GetProfile)
		api.GET("/memberships", referenceHandler.ListMemberships)
		api.GET("/liketypes", referenceHandler.ListLikeTypes)
		api.GET("/surveys", surveyHandler.ListSurveys)
		api.GET("/surveys/:id", surveyHandler.GetSurvey)

		// Public reads that honor the viewer's identity when present
		viewer := api.Group("", auth.OptionalAuth())
		viewer.GET("/posts", postHandler.ListPosts)
		viewer.GET("/posts/:id", postHandler.GetPost)
		viewer.GET("/posts/:id/comments", postHandler.GetComments)
		viewer.GET("/users/:id/posts", userHandler.GetUserPosts)

		// Authenticated
		protected := api.Group("", auth.RequireAuth())
		protected.GET("/me", userHandler.GetMe)
		protected.POST("/posts", postHandler.CreatePost)
		protected.PATCH("/posts/:id", postHandler.UpdatePost)
		protected.POST("/posts/:id/add_comment", postHandler.AddComment)
		protected.POST("/posts/:id/like", postHandler.Like)
		protected.PATCH("/posts/:id/unlike", postHandler.Unlike)
		protected.PATCH("/posts/:id/update_like", postHandler.UpdateLike)
		protected.PATCH("/comments/:id", commentHandler.UpdateComment)
		protected.DELETE("/comments/:id", commentHandler.DeleteComment)
		protected.POST("/liketypes", referenceHandler.CreateLikeType)
		protected.POST("/surveys", surveyHandler.CreateSurvey)
		protected.POST("/answers/:id/vote", surveyHandler.Vote)
	}

	// Staff-only reporting
	adminStats := engine.Group("/admin-stats", auth.RequireAuth(), auth.RequireStaff())
	adminStats.GET("/users-by-year", statsHandler.UsersByYear)
	adminStats.GET("/posts-by-year", statsHandler.PostsByYear)
	adminStats.GET("/posts-by-month", statsHandler.PostsByMonth)
	adminStats.GET("/posts-by-quarter", statsHandler.PostsByQuarter)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	if err := r.db.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "DOWN",
			"service": "social-media-network-api",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "social-media-network-api",
	})
}
