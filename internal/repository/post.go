package repository

import (
	"context"
	"errors"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	HasLike(ctx context.Context, userID, postID uint) (bool, error)
	AddLike(ctx context.Context, userID, postID uint) error
	RemoveLike(ctx context.Context, userID, postID uint) error
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	if post.Likes == nil {
		post.Likes = []uint{}
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError(models.MsgPostNotFound)
			}
			return models.NewInternalError(err)
		}
		return r.attachLikes(ctx, []*models.Post{&post})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByAuthors returns all posts by the given author set, newest first.
func (r *postRepository) GetByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Post, error) {
	posts := []*models.Post{}
	if len(authorIDs) == 0 {
		return posts, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", authorIDs).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.attachLikes(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// attachLikes loads the like sets for the given posts in one query.
func (r *postRepository) attachLikes(ctx context.Context, posts []*models.Post) error {
	for _, p := range posts {
		p.Likes = []uint{}
	}
	if len(posts) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(posts))
	byID := make(map[uint]*models.Post, len(posts))
	for _, p := range posts {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Where("post_id IN ?", ids).
		Order("created_at ASC").
		Find(&likes).Error; err != nil {
		return models.NewInternalError(err)
	}
	for _, like := range likes {
		if p, ok := byID[like.PostID]; ok {
			p.Likes = append(p.Likes, like.UserID)
		}
	}
	return nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

func (r *postRepository) HasLike(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) AddLike(ctx context.Context, userID, postID uint) error {
	like := &models.Like{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		// A concurrent duplicate like is a no-op thanks to the unique pair index.
		if isUniqueConstraintError(err) {
			return nil
		}
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}

func (r *postRepository) RemoveLike(ctx context.Context, userID, postID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
