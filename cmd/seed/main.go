package main

import (
	"context"
	"fmt"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/internal/service"
	"github.com/advaita02/social-media-network/pkg/config"
	"github.com/advaita02/social-media-network/pkg/logging"
)

// Seeds the reference tables and a handful of demo accounts and posts so a
// fresh database is usable right away.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.GetLogger().Sync()
	logger := logging.GetLogger()

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database.DB); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	ctx := context.Background()
	repo := db.NewRepository(database.DB)
	users := db.NewUserRepository(repo)
	posts := db.NewPostRepository(repo)
	comments := db.NewCommentRepository(repo)
	likes := db.NewLikeRepository(repo)
	memberships := db.NewMembershipRepository(repo)

	accountSvc := service.NewAccountService(users)
	feedSvc := service.NewFeedService(posts, comments, likes)

	// Reference data
	for _, name := range []string{"like", "love", "haha", "sad"} {
		if _, err := likes.GetOrCreateType(ctx, name); err != nil {
			logger.Fatal("Failed to seed like type", zap.String("name", name), zap.Error(err))
		}
	}
	for _, name := range []string{"default", "report", "announcement"} {
		if _, err := posts.GetOrCreateType(ctx, name); err != nil {
			logger.Fatal("Failed to seed post type", zap.String("name", name), zap.Error(err))
		}
	}

	existing, err := memberships.List(ctx)
	if err != nil {
		logger.Fatal("Failed to list memberships", zap.Error(err))
	}
	if len(existing) == 0 {
		for _, name := range []string{"default", "alumni 2020"} {
			if err := memberships.Create(ctx, &models.Membership{GroupName: name, Active: true}); err != nil {
				logger.Fatal("Failed to seed membership", zap.String("name", name), zap.Error(err))
			}
		}
	}

	// Demo accounts and posts
	gofakeit.Seed(0)
	for i := 0; i < 5; i++ {
		user, err := accountSvc.Register(ctx, service.RegisterInput{
			Username:  gofakeit.Username(),
			Email:     gofakeit.Email(),
			Password:  "password123",
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		})
		if err != nil {
			logger.Warn("Failed to seed user", zap.Error(err))
			continue
		}

		for j := 0; j < 2; j++ {
			if _, err := feedSvc.CreatePost(ctx, user.ID,
				gofakeit.Sentence(6), gofakeit.Paragraph(1, 3, 10, " "), "default", nil); err != nil {
				logger.Warn("Failed to seed post", zap.Error(err))
			}
		}
	}

	logger.Info("Seeding complete")
}
