package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/advaita02/social-media-network/internal/models"
)

func createDemoSurvey(t *testing.T, env *testEnv, creatorID uint) *models.Survey {
	t.Helper()
	survey := &models.Survey{
		Title:       "lunch poll",
		Description: "where do we eat",
		Questions: []models.Question{
			{
				Content: "pick a place",
				Answers: []models.Answer{
					{Content: "noodles"},
					{Content: "rice"},
				},
			},
		},
	}
	created, err := env.surveySvc.CreateSurvey(context.Background(), creatorID, survey)
	require.NoError(t, err)
	return created
}

func TestCreateAndGetSurvey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "creator")
	created := createDemoSurvey(t, env, creator.ID)

	survey, err := env.surveySvc.GetSurvey(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, creator.ID, survey.CreatedByID)
	assert.True(t, survey.Active)
	require.Len(t, survey.Questions, 1)
	require.Len(t, survey.Questions[0].Answers, 2)
	assert.Equal(t, 0, survey.Questions[0].Answers[0].Quantity)

	_, err = env.surveySvc.GetSurvey(ctx, 9999)
	assert.True(t, IsNotFound(err))

	_, err = env.surveySvc.CreateSurvey(ctx, 0, &models.Survey{Title: "x"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.surveySvc.CreateSurvey(ctx, creator.ID, &models.Survey{Title: "  "})
	assert.True(t, IsValidation(err))
}

func TestVoteIncrementsQuantity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "creator")
	voter := env.createUser(t, "voter")
	created := createDemoSurvey(t, env, creator.ID)

	survey, err := env.surveySvc.GetSurvey(ctx, created.ID)
	require.NoError(t, err)
	answerID := survey.Questions[0].Answers[0].ID

	answer, err := env.surveySvc.Vote(ctx, voter.ID, answerID)
	require.NoError(t, err)
	assert.Equal(t, 1, answer.Quantity)

	// Nothing stops the same user voting again.
	answer, err = env.surveySvc.Vote(ctx, voter.ID, answerID)
	require.NoError(t, err)
	assert.Equal(t, 2, answer.Quantity)

	_, err = env.surveySvc.Vote(ctx, voter.ID, 9999)
	assert.True(t, IsNotFound(err))

	_, err = env.surveySvc.Vote(ctx, 0, answerID)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListSurveysSkipsInactive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	creator := env.createUser(t, "creator")
	active := createDemoSurvey(t, env, creator.ID)
	hidden := createDemoSurvey(t, env, creator.ID)

	require.NoError(t, env.gdb.Model(&models.Survey{}).
		Where("id = ?", hidden.ID).
		Update("active", false).Error)

	surveys, err := env.surveySvc.ListSurveys(ctx)
	require.NoError(t, err)
	require.Len(t, surveys, 1)
	assert.Equal(t, active.ID, surveys[0].ID)

	// The inactive survey is also unreachable directly.
	_, err = env.surveySvc.GetSurvey(ctx, hidden.ID)
	assert.True(t, IsNotFound(err))
}
