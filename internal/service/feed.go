package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/pkg/logging"
)

// PostView is a post shaped for responses: the row plus its reaction state
// as seen by the viewer.
type PostView struct {
	*models.Post
	LikesCount    int64          `json:"likes_count"`
	CommentsCount int64          `json:"comments_count"`
	Liked         bool           `json:"liked"`
	Likes         []*models.Like `json:"posts_likes"`
}

// FeedService decides which posts and comments are visible. Visibility is
// driven by the active flags only. Posts carry a membership set but it is not
// consulted here, matching the shipped behavior; enforcing it would change
// which posts each user sees.
type FeedService struct {
	posts    *db.PostRepository
	comments *db.CommentRepository
	likes    *db.LikeRepository
	logger   *zap.Logger
}

// NewFeedService creates a new feed service
func NewFeedService(posts *db.PostRepository, comments *db.CommentRepository, likes *db.LikeRepository) *FeedService {
	return &FeedService{
		posts:    posts,
		comments: comments,
		likes:    likes,
		logger:   logging.WithComponent("feed-service"),
	}
}

// ListPosts returns active posts, newest first. viewerID 0 means anonymous.
func (s *FeedService) ListPosts(ctx context.Context, viewerID uint) ([]*PostView, error) {
	posts, err := s.posts.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.buildView(ctx, viewerID, post)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// ListUserPosts returns one author's active posts, newest first
func (s *FeedService) ListUserPosts(ctx context.Context, viewerID, authorID uint) ([]*PostView, error) {
	posts, err := s.posts.ListActiveByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		view, err := s.buildView(ctx, viewerID, post)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// GetPost returns the reaction-aware view of one active post
func (s *FeedService) GetPost(ctx context.Context, viewerID, postID uint) (*PostView, error) {
	post, err := s.posts.GetDetailed(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFound("post")
	}
	return s.buildView(ctx, viewerID, post)
}

func (s *FeedService) buildView(ctx context.Context, viewerID uint, post *models.Post) (*PostView, error) {
	likes, err := s.likes.ListActiveByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}

	var commentCount int64
	activeComments, err := s.comments.ListActiveByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	commentCount = int64(len(activeComments))

	liked := false
	if viewerID != 0 {
		liked, err = s.likes.HasActive(ctx, viewerID, post.ID)
		if err != nil {
			return nil, err
		}
	}

	return &PostView{
		Post:          post,
		LikesCount:    int64(len(likes)),
		CommentsCount: commentCount,
		Liked:         liked,
		Likes:         likes,
	}, nil
}

// CreatePost creates a post owned by authorID. The post type resolves by
// get-or-create on its name; an empty name falls back to the default type.
func (s *FeedService) CreatePost(ctx context.Context, authorID uint, title, content, typeName string, membershipIDs []uint) (*models.Post, error) {
	if authorID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(title) == "" {
		return nil, NewValidation("title is required")
	}
	if typeName == "" {
		typeName = "default"
	}

	postType, err := s.posts.GetOrCreateType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       title,
		Content:     content,
		PostTypeID:  postType.ID,
		CreatedByID: authorID,
		Active:      true,
		IsComment:   true,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if len(membershipIDs) > 0 {
		memberships := make([]models.Membership, 0, len(membershipIDs))
		for _, id := range membershipIDs {
			memberships = append(memberships, models.Membership{ID: id})
		}
		if err := s.posts.ReplaceMemberships(ctx, post, memberships); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Post created",
		zap.Uint("post_id", post.ID),
		zap.Uint("author_id", authorID))

	return post, nil
}

// UpdatePost updates title/content of an owned post. created_by is immutable.
func (s *FeedService) UpdatePost(ctx context.Context, userID, postID uint, title, content *string) (*models.Post, error) {
	post, err := s.posts.GetActiveByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFound("post")
	}
	if post.CreatedByID != userID {
		return nil, NewPermission("only the author can edit a post")
	}

	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return nil, NewValidation("title cannot be empty")
		}
		post.Title = *title
	}
	if content != nil {
		post.Content = *content
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CanComment reports whether a post accepts new comments
func (s *FeedService) CanComment(post *models.Post) bool {
	return post != nil && post.IsComment && post.Active
}

// ListComments returns a post's active comments in insertion order
func (s *FeedService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.comments.ListActiveByPost(ctx, postID)
}

// AddComment attaches a comment to an active post with commenting enabled
func (s *FeedService) AddComment(ctx context.Context, userID, postID uint, body string) (*models.Comment, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(body) == "" {
		return nil, NewValidation("comment is required")
	}

	post, err := s.posts.GetActiveByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFound("post")
	}
	if !s.CanComment(post) {
		return nil, NewValidation("commenting is disabled on this post")
	}

	comment := &models.Comment{
		UserID:  userID,
		PostID:  postID,
		Comment: body,
		Active:  true,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment edits an owned comment
func (s *FeedService) UpdateComment(ctx context.Context, userID, commentID uint, body string) (*models.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, NewValidation("comment is required")
	}

	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || !comment.Active {
		return nil, NewNotFound("comment")
	}
	if comment.UserID != userID {
		return nil, NewPermission("only the author can edit a comment")
	}

	comment.Comment = body
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment soft-deletes an owned comment
func (s *FeedService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil || !comment.Active {
		return NewNotFound("comment")
	}
	if comment.UserID != userID {
		return NewPermission("only the author can delete a comment")
	}

	comment.Active = false
	return s.comments.Update(ctx, comment)
}
