package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/advaita02/social-media-network/internal/models"
)

// PostRepository provides post-related database operations
type PostRepository struct {
	*Repository
}

// NewPostRepository creates a new post repository
func NewPostRepository(repo *Repository) *PostRepository {
	return &PostRepository{Repository: repo}
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetActiveByID retrieves a post by ID, ignoring soft-deleted rows
func (r *PostRepository) GetActiveByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// GetDetailed retrieves an active post with author, type and memberships preloaded
func (r *PostRepository) GetDetailed(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("PostType").
		Preload("Memberships").
		Where("id = ? AND active = ?", id, true).
		First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// ListActive retrieves active posts ordered by creation recency. Ties on
// created_at break by descending id so the ordering is stable.
func (r *PostRepository) ListActive(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Preload("PostType").
		Where("active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListActiveByAuthor retrieves one author's active posts, newest first
func (r *PostRepository) ListActiveByAuthor(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.db.WithContext(ctx).
		Preload("PostType").
		Where("created_by_id = ? AND active = ?", authorID, true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Create creates a new post
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// Update updates a post
func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// GetOrCreateType fetches a post type by name, creating it when absent
func (r *PostRepository) GetOrCreateType(ctx context.Context, name string) (*models.PostType, error) {
	var postType models.PostType
	if err := r.db.WithContext(ctx).
		Where(models.PostType{NameType: name}).
		FirstOrCreate(&postType).Error; err != nil {
		return nil, err
	}
	return &postType, nil
}

// GetTypeByID retrieves a post type by ID
func (r *PostRepository) GetTypeByID(ctx context.Context, id uint) (*models.PostType, error) {
	var postType models.PostType
	if err := r.db.WithContext(ctx).First(&postType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &postType, nil
}

// ReplaceMemberships replaces a post's membership visibility set
func (r *PostRepository) ReplaceMemberships(ctx context.Context, post *models.Post, memberships []models.Membership) error {
	return r.db.WithContext(ctx).Model(post).Association("Memberships").Replace(memberships)
}
