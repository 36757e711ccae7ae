package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/models"
)

// testEnv wires the full service stack against an in-memory SQLite database.
type testEnv struct {
	gdb       *gorm.DB
	users     *db.UserRepository
	posts     *db.PostRepository
	comments  *db.CommentRepository
	likes     *db.LikeRepository
	surveys   *db.SurveyRepository
	stats     *db.StatsRepository
	feed      *FeedService
	reactions *ReactionService
	accounts  *AccountService
	surveySvc *SurveyService
	statsSvc  *StatsService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// The in-memory database is private to a single connection.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Migrate(gdb))

	repo := db.NewRepository(gdb)
	env := &testEnv{
		gdb:      gdb,
		users:    db.NewUserRepository(repo),
		posts:    db.NewPostRepository(repo),
		comments: db.NewCommentRepository(repo),
		likes:    db.NewLikeRepository(repo),
		surveys:  db.NewSurveyRepository(repo),
		stats:    db.NewStatsRepository(repo),
	}
	env.feed = NewFeedService(env.posts, env.comments, env.likes)
	env.reactions = NewReactionService(env.likes, env.posts, env.feed)
	env.accounts = NewAccountService(env.users)
	env.surveySvc = NewSurveyService(env.surveys)
	env.statsSvc = NewStatsService(env.stats)
	return env
}

func (e *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:   username,
		Email:      username + "@example.com",
		Password:   "irrelevant",
		IsActive:   true,
		DateJoined: time.Now().UTC(),
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *testEnv) createPost(t *testing.T, authorID uint, title string) *models.Post {
	t.Helper()
	post, err := e.feed.CreatePost(context.Background(), authorID, title, "some content", "", nil)
	require.NoError(t, err)
	return post
}

func (e *testEnv) createLikeType(t *testing.T, name string) *models.LikeType {
	t.Helper()
	likeType, err := e.likes.GetOrCreateType(context.Background(), name)
	require.NoError(t, err)
	return likeType
}

// likeRowCount counts all like rows regardless of the active flag.
func (e *testEnv) likeRowCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.gdb.Model(&models.Like{}).Count(&count).Error)
	return count
}
