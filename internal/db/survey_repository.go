package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/advaita02/social-media-network/internal/models"
)

// SurveyRepository provides survey-related database operations
type SurveyRepository struct {
	*Repository
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(repo *Repository) *SurveyRepository {
	return &SurveyRepository{Repository: repo}
}

// ListActive retrieves active surveys, newest first
func (r *SurveyRepository) ListActive(ctx context.Context) ([]*models.Survey, error) {
	var surveys []*models.Survey
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

// GetDetailed retrieves an active survey with questions and answers in
// declared (ascending id) order
func (r *SurveyRepository) GetDetailed(ctx context.Context, id uint) (*models.Survey, error) {
	var survey models.Survey
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("Questions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("questions.id ASC")
		}).
		Preload("Questions.Answers", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("answers.id ASC")
		}).
		Where("id = ? AND active = ?", id, true).
		First(&survey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &survey, nil
}

// Create creates a new survey
func (r *SurveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	return r.db.WithContext(ctx).Create(survey).Error
}

// GetAnswer retrieves an answer by ID
func (r *SurveyRepository) GetAnswer(ctx context.Context, id uint) (*models.Answer, error) {
	var answer models.Answer
	if err := r.db.WithContext(ctx).First(&answer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &answer, nil
}

// IncrementAnswerQuantity adds one vote to an answer. The increment happens
// in SQL so concurrent votes never lose updates.
func (r *SurveyRepository) IncrementAnswerQuantity(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Answer{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", 1)).Error
}
