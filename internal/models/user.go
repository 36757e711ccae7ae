package models

import (
	"time"
)

// User represents a registered account
type User struct {
	ID          uint       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username    string     `gorm:"type:varchar(150);not null;uniqueIndex:users_username_ux;column:username" json:"username"`
	Email       string     `gorm:"type:varchar(254);not null;column:email" json:"email"`
	Password    string     `gorm:"type:varchar(128);not null;column:password" json:"-"`
	FirstName   string     `gorm:"type:varchar(150);not null;default:'';column:first_name" json:"first_name"`
	LastName    string     `gorm:"type:varchar(150);not null;default:'';column:last_name" json:"last_name"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	NumberPhone string     `gorm:"type:varchar(20);not null;default:'';column:number_phone" json:"number_phone"`
	Avatar      string     `gorm:"type:varchar(1024);not null;default:'';column:avatar" json:"avatar"`
	CoverPhoto  string     `gorm:"type:varchar(1024);not null;default:'';column:cover_photo" json:"cover_photo"`
	IsActive    bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	IsStaff     bool       `gorm:"not null;default:false;column:is_staff" json:"is_staff"`
	DateJoined  time.Time  `gorm:"not null;column:date_joined" json:"date_joined"`
	CreatedAt   time.Time  `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	Memberships []Membership `gorm:"many2many:user_memberships;" json:"memberships,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// Normalize enforces write-path invariants. Staff accounts are always
// active; the reverse promotion never happens.
func (u *User) Normalize() {
	if u.IsStaff {
		u.IsActive = true
	}
}
