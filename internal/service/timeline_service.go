package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// TimelineService assembles feeds out of the post and follow stores.
type TimelineService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	posts    *PostService
}

// NewTimelineService returns a new TimelineService.
func NewTimelineService(postRepo repository.PostRepository, userRepo repository.UserRepository, posts *PostService) *TimelineService {
	return &TimelineService{postRepo: postRepo, userRepo: userRepo, posts: posts}
}

// BuildTimeline returns the user's own posts merged with the posts of
// everyone the user follows, newest first, with author fields attached.
func (s *TimelineService) BuildTimeline(ctx context.Context, userID uint) ([]*models.Post, *models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	authors := append([]uint{userID}, user.Following...)
	posts, err := s.postRepo.GetByAuthors(ctx, authors)
	if err != nil {
		return nil, nil, err
	}

	s.posts.enrichAuthors(ctx, posts)
	return posts, user, nil
}

// BuildProfileFeed returns the named user's own posts, newest first, along
// with the resolved user.
func (s *TimelineService) BuildProfileFeed(ctx context.Context, username string) ([]*models.Post, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, models.NewNotFoundError(models.MsgUserNotFound)
	}

	posts, err := s.postRepo.GetByAuthors(ctx, []uint{user.ID})
	if err != nil {
		return nil, nil, err
	}

	s.posts.enrichAuthors(ctx, posts)
	return posts, user, nil
}
