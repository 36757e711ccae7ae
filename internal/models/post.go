package models

import (
	"time"
)

// Post represents a user-authored post. Deactivation is a soft delete:
// the row stays, active flips to false.
type Post struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null;column:title" json:"title"`
	Content     string    `gorm:"type:text;not null;column:content" json:"content"`
	PostTypeID  uint      `gorm:"not null;column:post_type_id" json:"post_type_id"`
	CreatedByID uint      `gorm:"not null;column:created_by_id" json:"created_by_id"`
	Active      bool      `gorm:"not null;default:true;column:active" json:"active"`
	IsComment   bool      `gorm:"not null;default:true;column:is_comment" json:"is_comment"`
	CreatedAt   time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	PostType    *PostType    `gorm:"foreignKey:PostTypeID" json:"type_of_post,omitempty"`
	CreatedBy   *User        `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Memberships []Membership `gorm:"many2many:post_memberships;" json:"memberships,omitempty"`
}

// TableName specifies the table name for Post
func (Post) TableName() string {
	return "posts"
}

// PostType is a small reference table categorizing posts
type PostType struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	NameType string `gorm:"type:varchar(100);not null;uniqueIndex:post_types_name_ux;column:name_type" json:"name_type"`
}

// TableName specifies the table name for PostType
func (PostType) TableName() string {
	return "post_types"
}
