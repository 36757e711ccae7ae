package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/advaita02/social-media-network/internal/db"
	"github.com/advaita02/social-media-network/internal/models"
	"github.com/advaita02/social-media-network/pkg/logging"
	"github.com/advaita02/social-media-network/pkg/telemetry"
)

// ReactionService owns the like lifecycle for (user, post) pairs. Each pair
// holds at most one row, guarded by the composite unique index; every
// operation performs exactly one row upsert and no cascading writes. All
// cross-request coordination is delegated to the store, the service keeps no
// state of its own.
type ReactionService struct {
	likes  *db.LikeRepository
	posts  *db.PostRepository
	feed   *FeedService
	logger *zap.Logger
}

// NewReactionService creates a new reaction service
func NewReactionService(likes *db.LikeRepository, posts *db.PostRepository, feed *FeedService) *ReactionService {
	return &ReactionService{
		likes:  likes,
		posts:  posts,
		feed:   feed,
		logger: logging.WithComponent("reaction-service"),
	}
}

// Like reacts to a post with a required like type. If the pair has no row one
// is created active; if a row exists (active or not) it is forced active and
// its type replaced. Returns the post's reaction-aware view.
func (s *ReactionService) Like(ctx context.Context, userID, postID, likeTypeID uint) (*PostView, error) {
	ctx, span := telemetry.StartSpan(ctx, "reaction.like")
	defer span.End()

	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if likeTypeID == 0 {
		return nil, NewValidation("type_of_like is required")
	}

	post, err := s.posts.GetActiveByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFound("post")
	}

	likeType, err := s.likes.GetTypeByID(ctx, likeTypeID)
	if err != nil {
		return nil, err
	}
	if likeType == nil {
		return nil, NewNotFound("like type")
	}

	like := &models.Like{
		UserID:     userID,
		PostID:     postID,
		LikeTypeID: likeTypeID,
		Active:     true,
	}
	if err := s.likes.Upsert(ctx, like); err != nil {
		return nil, err
	}

	s.logger.Debug("Like upserted",
		zap.Uint("user_id", userID),
		zap.Uint("post_id", postID),
		zap.Uint("like_type_id", likeTypeID))

	return s.feed.GetPost(ctx, userID, postID)
}

// Unlike deactivates the caller's like on a post. Fails with NotFound when no
// row exists for the pair; otherwise forces active to false, so a second call
// is a no-op rather than an error.
func (s *ReactionService) Unlike(ctx context.Context, userID, postID uint) (*models.Like, error) {
	ctx, span := telemetry.StartSpan(ctx, "reaction.unlike")
	defer span.End()

	if userID == 0 {
		return nil, ErrUnauthorized
	}

	post, err := s.posts.GetActiveByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFound("post")
	}

	like, err := s.likes.GetByUserPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, NewNotFound("like")
	}

	like.Active = false
	if err := s.likes.Update(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// UpdateLike replaces the type of an existing like and forces it active
func (s *ReactionService) UpdateLike(ctx context.Context, userID, postID, likeTypeID uint) (*models.Like, error) {
	ctx, span := telemetry.StartSpan(ctx, "reaction.update_like")
	defer span.End()

	if userID == 0 {
		return nil, ErrUnauthorized
	}
	if likeTypeID == 0 {
		return nil, NewValidation("type_of_like is required")
	}

	post, err := s.posts.GetActiveByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, NewNotFound("post")
	}

	likeType, err := s.likes.GetTypeByID(ctx, likeTypeID)
	if err != nil {
		return nil, err
	}
	if likeType == nil {
		return nil, NewNotFound("like type")
	}

	like, err := s.likes.GetByUserPost(ctx, userID, postID)
	if err != nil {
		return nil, err
	}
	if like == nil {
		return nil, NewNotFound("like")
	}

	like.LikeTypeID = likeTypeID
	like.Active = true
	if err := s.likes.Update(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// EnsureLikeType fetches a like type by name, creating it when absent
func (s *ReactionService) EnsureLikeType(ctx context.Context, name string) (*models.LikeType, error) {
	if name == "" {
		return nil, NewValidation("name_type is required")
	}
	return s.likes.GetOrCreateType(ctx, name)
}

// ListLikeTypes returns all like types
func (s *ReactionService) ListLikeTypes(ctx context.Context) ([]*models.LikeType, error) {
	return s.likes.ListTypes(ctx)
}
