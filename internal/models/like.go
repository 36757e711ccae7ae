package models

import (
	"time"
)

// Like represents a typed reaction linking one user to one post. At most one
// row exists per (user, post) pair; the composite unique index is the
// correctness anchor for concurrent like calls. Rows are never deleted in
// normal flow, deactivation flips active to false and keeps the slot.
type Like struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:likes_user_post_ux;column:user_id" json:"user_id"`
	PostID     uint      `gorm:"not null;uniqueIndex:likes_user_post_ux;column:post_id" json:"post_id"`
	LikeTypeID uint      `gorm:"not null;column:like_type_id" json:"type_of_like"`
	Active     bool      `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt  time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post     *Post     `gorm:"foreignKey:PostID" json:"-"`
	LikeType *LikeType `gorm:"foreignKey:LikeTypeID" json:"like_type,omitempty"`
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}

// LikeType is a small reference table naming reaction kinds
type LikeType struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	NameType string `gorm:"type:varchar(100);not null;uniqueIndex:like_types_name_ux;column:name_type" json:"name_type"`
}

// TableName specifies the table name for LikeType
func (LikeType) TableName() string {
	return "like_types"
}
