package models

import (
	"time"
)

// Survey owns ordered questions; each question owns ordered answers.
type Survey struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null;column:title" json:"title"`
	Description string    `gorm:"type:text;not null;column:description" json:"description"`
	CreatedByID uint      `gorm:"not null;column:created_by_id" json:"created_by_id"`
	Active      bool      `gorm:"not null;default:true;column:active" json:"active"`
	CreatedAt   time.Time `gorm:"not null;column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at" json:"updated_at"`

	// Relationships
	CreatedBy *User      `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Questions []Question `gorm:"foreignKey:SurveyID" json:"questions,omitempty"`
}

// TableName specifies the table name for Survey
func (Survey) TableName() string {
	return "surveys"
}

// Question belongs to a survey
type Question struct {
	ID       uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Content  string `gorm:"type:varchar(100);not null;column:content" json:"content"`
	SurveyID uint   `gorm:"not null;column:survey_id" json:"survey_id"`

	// Relationships
	Answers []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

// TableName specifies the table name for Question
func (Question) TableName() string {
	return "questions"
}

// Answer carries a vote counter. Quantity is an open counter, there is no
// per-user uniqueness on votes.
type Answer struct {
	ID         uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Content    string `gorm:"type:varchar(50);not null;column:content" json:"content"`
	Quantity   int    `gorm:"not null;default:0;column:quantity" json:"quantity"`
	QuestionID uint   `gorm:"not null;column:question_id" json:"question_id"`
}

// TableName specifies the table name for Answer
func (Answer) TableName() string {
	return "answers"
}
