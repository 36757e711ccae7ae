package models

import (
	"time"
)

// Comment represents a user's comment on a post. A user may comment on the
// same post any number of times.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID    uint      `gorm:"not null;column:user_id" json:"user_id"`
	PostID    uint      `gorm:"not null;column:post_id" json:"post_id"`
	Comment   string    `gorm:"type:text;not null;column:comment" json:"comment"`
	Active    bool      `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post *Post `gorm:"foreignKey:PostID" json:"-"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
