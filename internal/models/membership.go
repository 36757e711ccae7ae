package models

import (
	"time"
)

// Membership represents a named group. Users join memberships and posts
// declare the memberships allowed to view them.
type Membership struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	GroupName string    `gorm:"type:varchar(200);not null;column:group_name" json:"group_name"`
	Active    bool      `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

// TableName specifies the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
