// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"ripple/internal/cache"
	"ripple/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users and the follow graph.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	FollowerIDs(ctx context.Context, userID uint) ([]uint, error)
	FollowingIDs(ctx context.Context, userID uint) ([]uint, error)
	IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error)
	AddFollow(ctx context.Context, followerID, followeeID uint) error
	RemoveFollow(ctx context.Context, followerID, followeeID uint) error
	ListBasicProfiles(ctx context.Context, ids []uint) ([]models.BasicProfile, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID reads the user row directly. The JSON cache serialization drops the
// password hash, so cached copies are for display reads only (see the user
// handler); everything feeding a write path must come from here.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(models.MsgUserNotFound)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.attachGraph(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.attachGraph(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.attachGraph(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// attachGraph loads the follower/following id sets for the user.
func (r *userRepository) attachGraph(ctx context.Context, user *models.User) error {
	followers, err := r.FollowerIDs(ctx, user.ID)
	if err != nil {
		return err
	}
	following, err := r.FollowingIDs(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Followers = followers
	user.Following = following
	return nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(models.MsgUserExists)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite phrasing covered for tests.
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError(models.MsgUserExists)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// Delete hard-deletes the user row together with the user's follow edges.
// Posts are intentionally left in place; the feed enrichment step tolerates
// authors that no longer resolve.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? OR followee_id = ?", id, id).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

func (r *userRepository) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Order("created_at ASC").
		Pluck("follower_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *userRepository) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Order("created_at ASC").
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *userRepository) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AddFollow inserts the directed edge follower -> followee. A single row
// backs both sides of the relation, so the insert is atomic for the pair.
func (r *userRepository) AddFollow(ctx context.Context, followerID, followeeID uint) error {
	follow := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.WithContext(ctx).Create(follow).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewForbiddenError(models.MsgAlreadyFollowing)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, followerID)
	cache.InvalidateUser(ctx, followeeID)
	return nil
}

func (r *userRepository) RemoveFollow(ctx context.Context, followerID, followeeID uint) error {
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, followerID)
	cache.InvalidateUser(ctx, followeeID)
	return nil
}

func (r *userRepository) ListBasicProfiles(ctx context.Context, ids []uint) ([]models.BasicProfile, error) {
	profiles := []models.BasicProfile{}
	if len(ids) == 0 {
		return profiles, nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Select("id", "username", "first_name", "last_name", "profile_picture").
		Where("id IN ?", ids).
		Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}
