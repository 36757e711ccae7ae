package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPostsNewestFirstActiveOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	first := env.createPost(t, author.ID, "first")
	second := env.createPost(t, author.ID, "second")
	third := env.createPost(t, author.ID, "third")

	second.Active = false
	require.NoError(t, env.posts.Update(ctx, second))

	views, err := env.feed.ListPosts(ctx, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, third.ID, views[0].Post.ID)
	assert.Equal(t, first.ID, views[1].Post.ID)
}

func TestGetPostViewCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	post := env.createPost(t, author.ID, "counted")
	likeType := env.createLikeType(t, "like")

	_, err := env.reactions.Like(ctx, alice.ID, post.ID, likeType.ID)
	require.NoError(t, err)
	_, err = env.reactions.Like(ctx, bob.ID, post.ID, likeType.ID)
	require.NoError(t, err)
	_, err = env.feed.AddComment(ctx, bob.ID, post.ID, "nice")
	require.NoError(t, err)

	view, err := env.feed.GetPost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.LikesCount)
	assert.Equal(t, int64(1), view.CommentsCount)
	assert.True(t, view.Liked)
	assert.Len(t, view.Likes, 2)

	// An anonymous viewer sees the same counts but never liked=true.
	view, err = env.feed.GetPost(ctx, 0, post.ID)
	require.NoError(t, err)
	assert.False(t, view.Liked)
	assert.Equal(t, int64(2), view.LikesCount)
}

func TestCreatePostDefaultsAndValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")

	post, err := env.feed.CreatePost(ctx, author.ID, "untyped", "body", "", nil)
	require.NoError(t, err)

	postType, err := env.posts.GetTypeByID(ctx, post.PostTypeID)
	require.NoError(t, err)
	require.NotNil(t, postType)
	assert.Equal(t, "default", postType.NameType)

	_, err = env.feed.CreatePost(ctx, author.ID, "  ", "body", "", nil)
	assert.True(t, IsValidation(err))

	_, err = env.feed.CreatePost(ctx, 0, "title", "body", "", nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdatePostOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	other := env.createUser(t, "other")
	post := env.createPost(t, author.ID, "original")

	title := "edited"
	_, err := env.feed.UpdatePost(ctx, other.ID, post.ID, &title, nil)
	assert.True(t, IsPermission(err))

	updated, err := env.feed.UpdatePost(ctx, author.ID, post.ID, &title, nil)
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	assert.Equal(t, author.ID, updated.CreatedByID)
}

func TestAddCommentGuards(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	commenter := env.createUser(t, "commenter")
	post := env.createPost(t, author.ID, "open")

	_, err := env.feed.AddComment(ctx, commenter.ID, post.ID, "   ")
	assert.True(t, IsValidation(err))

	_, err = env.feed.AddComment(ctx, commenter.ID, 9999, "hello")
	assert.True(t, IsNotFound(err))

	post.IsComment = false
	require.NoError(t, env.posts.Update(ctx, post))
	_, err = env.feed.AddComment(ctx, commenter.ID, post.ID, "hello")
	assert.True(t, IsValidation(err))

	post.IsComment = true
	post.Active = false
	require.NoError(t, env.posts.Update(ctx, post))
	_, err = env.feed.AddComment(ctx, commenter.ID, post.ID, "hello")
	assert.True(t, IsNotFound(err))
}

func TestCommentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	author := env.createUser(t, "author")
	commenter := env.createUser(t, "commenter")
	other := env.createUser(t, "other")
	post := env.createPost(t, author.ID, "discussed")

	comment, err := env.feed.AddComment(ctx, commenter.ID, post.ID, "first")
	require.NoError(t, err)

	_, err = env.feed.UpdateComment(ctx, other.ID, comment.ID, "hijacked")
	assert.True(t, IsPermission(err))

	updated, err := env.feed.UpdateComment(ctx, commenter.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Comment)

	err = env.feed.DeleteComment(ctx, other.ID, comment.ID)
	assert.True(t, IsPermission(err))

	require.NoError(t, env.feed.DeleteComment(ctx, commenter.ID, comment.ID))

	comments, err := env.feed.ListComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	// The deleted comment is gone for edits too.
	_, err = env.feed.UpdateComment(ctx, commenter.ID, comment.ID, "again")
	assert.True(t, IsNotFound(err))
}

func TestListUserPosts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	env.createPost(t, alice.ID, "alice 1")
	env.createPost(t, bob.ID, "bob 1")
	env.createPost(t, alice.ID, "alice 2")

	views, err := env.feed.ListUserPosts(ctx, 0, alice.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, view := range views {
		assert.Equal(t, alice.ID, view.Post.CreatedByID)
	}
}
