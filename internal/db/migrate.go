package db

import (
	"gorm.io/gorm"

	"github.com/advaita02/social-media-network/internal/models"
)

// Migrate applies the schema for all entities. The composite unique index on
// likes (user_id, post_id) comes from the model tags and must exist before
// the reaction engine's upsert path is used.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Membership{},
		&models.User{},
		&models.PostType{},
		&models.LikeType{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Survey{},
		&models.Question{},
		&models.Answer{},
	)
}
