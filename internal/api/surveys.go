package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/internal/service"
)

// SurveyHandler serves surveys and answer votes
type SurveyHandler struct {
	surveys *service.SurveyService
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveys *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveys: surveys}
}

// ListSurveys handles GET /api/surveys
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.surveys.ListSurveys(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// GetSurvey handles GET /api/surveys/:id
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	survey, err := h.surveys.GetSurvey(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, survey)
}

// CreateSurvey handles POST /api/surveys
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var input struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Questions   []struct {
			Content string   `json:"content"`
			Answers []string `json:"answers"`
		} `json:"questions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	survey := &models.Survey{
		Title:       input.Title,
		Description: input.Description,
	}
	for _, q := range input.Questions {
		question := models.Question{Content: q.Content}
		for _, a := range q.Answers {
			question.Answers = append(question.Answers, models.Answer{Content: a})
		}
		survey.Questions = append(survey.Questions, question)
	}

	created, err := h.surveys.CreateSurvey(c.Request.Context(), currentUserID(c), survey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Vote handles POST /api/answers/:id/vote
func (h *SurveyHandler) Vote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	answer, err := h.surveys.Vote(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}
