package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/advaita02/social-media-network/internal/models"
)

// LikeRepository provides reaction-related database operations
type LikeRepository struct {
	*Repository
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(repo *Repository) *LikeRepository {
	return &LikeRepository{Repository: repo}
}

// GetByUserPost retrieves the single like row for a (user, post) pair
func (r *LikeRepository) GetByUserPost(ctx context.Context, userID, postID uint) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Upsert inserts the like row or, when the (user_id, post_id) slot is already
// taken, reactivates it and replaces the type. The ON CONFLICT clause rides on
// the composite unique index, so two concurrent calls for the same pair can
// never produce two rows and a duplicate-key race never reaches the caller.
func (r *LikeRepository) Upsert(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"like_type_id": like.LikeTypeID,
			"active":       true,
			"updated_at":   time.Now().UTC(),
		}),
	}).Create(like).Error
}

// Update updates a like row
func (r *LikeRepository) Update(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Save(like).Error
}

// ListActiveByPost retrieves a post's active likes with user and type preloaded
func (r *LikeRepository) ListActiveByPost(ctx context.Context, postID uint) ([]*models.Like, error) {
	var likes []*models.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("LikeType").
		Where("post_id = ? AND active = ?", postID, true).
		Order("id ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// CountActiveByPost counts a post's active likes
func (r *LikeRepository) CountActiveByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ? AND active = ?", postID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasActive reports whether the viewer has an active like on the post
func (r *LikeRepository) HasActive(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ? AND active = ?", userID, postID, true).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetTypeByID retrieves a like type by ID
func (r *LikeRepository) GetTypeByID(ctx context.Context, id uint) (*models.LikeType, error) {
	var likeType models.LikeType
	if err := r.db.WithContext(ctx).First(&likeType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &likeType, nil
}

// GetOrCreateType fetches a like type by name, creating it when absent
func (r *LikeRepository) GetOrCreateType(ctx context.Context, name string) (*models.LikeType, error) {
	var likeType models.LikeType
	if err := r.db.WithContext(ctx).
		Where(models.LikeType{NameType: name}).
		FirstOrCreate(&likeType).Error; err != nil {
		return nil, err
	}
	return &likeType, nil
}

// ListTypes retrieves all like types
func (r *LikeRepository) ListTypes(ctx context.Context) ([]*models.LikeType, error) {
	var types []*models.LikeType
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
