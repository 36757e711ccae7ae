package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeCreatesSingleRowPerPair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	viewer := env.createUser(t, "viewer")
	post := env.createPost(t, author.ID, "first post")
	like := env.createLikeType(t, "like")
	love := env.createLikeType(t, "love")

	view, err := env.reactions.Like(ctx, viewer.ID, post.ID, like.ID)
	require.NoError(t, err)
	assert.True(t, view.Liked)
	assert.Equal(t, int64(1), view.LikesCount)

	// Repeating with a different type replaces the type in place.
	view, err = env.reactions.Like(ctx, viewer.ID, post.ID, love.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.LikesCount)
	assert.Equal(t, int64(1), env.likeRowCount(t))

	row, err := env.likes.GetByUserPost(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, love.ID, row.LikeTypeID)
	assert.True(t, row.Active)
}

func TestLikeValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	post := env.createPost(t, author.ID, "a post")
	likeType := env.createLikeType(t, "like")

	_, err := env.reactions.Like(ctx, 0, post.ID, likeType.ID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.reactions.Like(ctx, author.ID, post.ID, 0)
	assert.True(t, IsValidation(err))

	_, err = env.reactions.Like(ctx, author.ID, post.ID, 9999)
	assert.True(t, IsNotFound(err))

	_, err = env.reactions.Like(ctx, author.ID, 9999, likeType.ID)
	assert.True(t, IsNotFound(err))

	assert.Equal(t, int64(0), env.likeRowCount(t))
}

func TestUnlikeIsIdempotentAfterFirstCall(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	viewer := env.createUser(t, "viewer")
	post := env.createPost(t, author.ID, "a post")
	likeType := env.createLikeType(t, "like")

	// Unliking without any like row is an error.
	_, err := env.reactions.Unlike(ctx, viewer.ID, post.ID)
	assert.True(t, IsNotFound(err))

	_, err = env.reactions.Like(ctx, viewer.ID, post.ID, likeType.ID)
	require.NoError(t, err)

	row, err := env.reactions.Unlike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, row.Active)

	// A second unlike succeeds and changes nothing.
	row, err = env.reactions.Unlike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, row.Active)
	assert.Equal(t, int64(1), env.likeRowCount(t))
}

func TestUpdateLikeRequiresExistingRow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	viewer := env.createUser(t, "viewer")
	post := env.createPost(t, author.ID, "a post")
	likeType := env.createLikeType(t, "like")

	_, err := env.reactions.UpdateLike(ctx, viewer.ID, post.ID, likeType.ID)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, int64(0), env.likeRowCount(t))
}

func TestUpdateLikeReactivatesAndRetypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	viewer := env.createUser(t, "viewer")
	post := env.createPost(t, author.ID, "a post")
	like := env.createLikeType(t, "like")
	love := env.createLikeType(t, "love")

	_, err := env.reactions.Like(ctx, viewer.ID, post.ID, love.ID)
	require.NoError(t, err)

	_, err = env.reactions.Unlike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)

	row, err := env.reactions.UpdateLike(ctx, viewer.ID, post.ID, like.ID)
	require.NoError(t, err)
	assert.True(t, row.Active)
	assert.Equal(t, like.ID, row.LikeTypeID)
	assert.Equal(t, int64(1), env.likeRowCount(t))
}

func TestReactionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	viewer := env.createUser(t, "viewer")
	post := env.createPost(t, author.ID, "a post")
	like := env.createLikeType(t, "like")
	love := env.createLikeType(t, "love")

	view, err := env.reactions.Like(ctx, viewer.ID, post.ID, love.ID)
	require.NoError(t, err)
	assert.True(t, view.Liked)

	_, err = env.reactions.Unlike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)

	view, err = env.feed.GetPost(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, view.Liked)
	assert.Equal(t, int64(0), view.LikesCount)

	row, err := env.reactions.UpdateLike(ctx, viewer.ID, post.ID, like.ID)
	require.NoError(t, err)
	assert.True(t, row.Active)
	assert.Equal(t, like.ID, row.LikeTypeID)

	_, err = env.reactions.Unlike(ctx, viewer.ID, post.ID)
	require.NoError(t, err)

	view, err = env.feed.GetPost(ctx, viewer.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, view.Liked)
	assert.Equal(t, int64(0), view.LikesCount)
	assert.Equal(t, int64(1), env.likeRowCount(t))
}

func TestEnsureLikeTypeGetOrCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.reactions.EnsureLikeType(ctx, "haha")
	require.NoError(t, err)

	second, err := env.reactions.EnsureLikeType(ctx, "haha")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = env.reactions.EnsureLikeType(ctx, "")
	assert.True(t, IsValidation(err))

	types, err := env.reactions.ListLikeTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}
