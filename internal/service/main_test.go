package service

import (
	"context"

	"ripple/internal/models"
)

// stubUserRepo implements repository.UserRepository with per-test function
// fields. Unset fields panic, which surfaces unexpected calls immediately.
type stubUserRepo struct {
	getByIDFn           func(ctx context.Context, id uint) (*models.User, error)
	getByUsernameFn     func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn        func(ctx context.Context, email string) (*models.User, error)
	createFn            func(ctx context.Context, user *models.User) error
	updateFn            func(ctx context.Context, user *models.User) error
	deleteFn            func(ctx context.Context, id uint) error
	followerIDsFn       func(ctx context.Context, userID uint) ([]uint, error)
	followingIDsFn      func(ctx context.Context, userID uint) ([]uint, error)
	isFollowingFn       func(ctx context.Context, followerID, followeeID uint) (bool, error)
	addFollowFn         func(ctx context.Context, followerID, followeeID uint) error
	removeFollowFn      func(ctx context.Context, followerID, followeeID uint) error
	listBasicProfilesFn func(ctx context.Context, ids []uint) ([]models.BasicProfile, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserRepo) FollowerIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followerIDsFn(ctx, userID)
}

func (s *stubUserRepo) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}

func (s *stubUserRepo) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}

func (s *stubUserRepo) AddFollow(ctx context.Context, followerID, followeeID uint) error {
	return s.addFollowFn(ctx, followerID, followeeID)
}

func (s *stubUserRepo) RemoveFollow(ctx context.Context, followerID, followeeID uint) error {
	return s.removeFollowFn(ctx, followerID, followeeID)
}

func (s *stubUserRepo) ListBasicProfiles(ctx context.Context, ids []uint) ([]models.BasicProfile, error) {
	return s.listBasicProfilesFn(ctx, ids)
}

// stubPostRepo implements repository.PostRepository the same way.
type stubPostRepo struct {
	createFn       func(ctx context.Context, post *models.Post) error
	getByIDFn      func(ctx context.Context, id uint) (*models.Post, error)
	getByAuthorsFn func(ctx context.Context, authorIDs []uint) ([]*models.Post, error)
	updateFn       func(ctx context.Context, post *models.Post) error
	deleteFn       func(ctx context.Context, id uint) error
	hasLikeFn      func(ctx context.Context, userID, postID uint) (bool, error)
	addLikeFn      func(ctx context.Context, userID, postID uint) error
	removeLikeFn   func(ctx context.Context, userID, postID uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPostRepo) GetByAuthors(ctx context.Context, authorIDs []uint) ([]*models.Post, error) {
	return s.getByAuthorsFn(ctx, authorIDs)
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPostRepo) HasLike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.hasLikeFn(ctx, userID, postID)
}

func (s *stubPostRepo) AddLike(ctx context.Context, userID, postID uint) error {
	return s.addLikeFn(ctx, userID, postID)
}

func (s *stubPostRepo) RemoveLike(ctx context.Context, userID, postID uint) error {
	return s.removeLikeFn(ctx, userID, postID)
}
