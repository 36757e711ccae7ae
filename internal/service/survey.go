package service

import (
	"context"
	"strings"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/models"
)

// SurveyService serves surveys and records votes. A vote is a bare counter
// increment on the chosen answer; nothing stops a user voting twice.
type SurveyService struct {
	surveys *db.SurveyRepository
}

// NewSurveyService creates a new survey service
func NewSurveyService(surveys *db.SurveyRepository) *SurveyService {
	return &SurveyService{surveys: surveys}
}

// ListSurveys returns active surveys, newest first
func (s *SurveyService) ListSurveys(ctx context.Context) ([]*models.Survey, error) {
	return s.surveys.ListActive(ctx)
}

// GetSurvey returns an active survey with its questions and answers
func (s *SurveyService) GetSurvey(ctx context.Context, id uint) (*models.Survey, error) {
	survey, err := s.surveys.GetDetailed(ctx, id)
	if err != nil {
		return nil, err
	}
	if survey == nil {
		return nil, NewNotFound("survey")
	}
	return survey, nil
}

// CreateSurvey creates a survey with its questions and answers
func (s *SurveyService) CreateSurvey(ctx context.Context, creatorID uint, survey *models.Survey) (*models.Survey, error) {
	if creatorID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(survey.Title) == "" {
		return nil, NewValidation("title is required")
	}

	survey.CreatedByID = creatorID
	survey.Active = true
	if err := s.surveys.Create(ctx, survey); err != nil {
		return nil, err
	}
	return survey, nil
}

// Vote adds one to an answer's quantity and returns the updated row
func (s *SurveyService) Vote(ctx context.Context, userID, answerID uint) (*models.Answer, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}

	answer, err := s.surveys.GetAnswer(ctx, answerID)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return nil, NewNotFound("answer")
	}

	if err := s.surveys.IncrementAnswerQuantity(ctx, answerID); err != nil {
		return nil, err
	}
	return s.surveys.GetAnswer(ctx, answerID)
}
